/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package backend

import (
	"bytes"

	"github.com/figtable/attachcore/common"
	"github.com/figtable/attachcore/core"
	"github.com/figtable/attachcore/model"
	"github.com/trimmer-io/go-xmp/models/dc"
	"github.com/trimmer-io/go-xmp/models/xmp_base"
	"github.com/trimmer-io/go-xmp/xmp"
)

// DocumentMeta is the ambient, per-document metadata folded into every
// emitted AttachmentRecord's meta field.
type DocumentMeta struct {
	Title       string
	CreatorTool string
	Producer    string
	PdfHash     string
	PageCount   int
}

// loadDocumentMeta reads XMP metadata when present, falling back to the
// classic Info dictionary, and never fails the open: metadata is purely
// informational.
func loadDocumentMeta(r *model.PdfReader, pageCount int, hash string) DocumentMeta {
	meta := DocumentMeta{PdfHash: hash, PageCount: pageCount}

	if title, creator, ok := readXMPMeta(r); ok {
		meta.Title, meta.CreatorTool = title, creator
	}

	trailer, err := r.GetTrailer()
	if err != nil || trailer == nil {
		return meta
	}
	infoObj := trailer.Get("Info")
	ind, ok := core.GetIndirect(infoObj)
	if !ok || ind == nil {
		return meta
	}
	dict, ok := core.GetDict(ind.PdfObject)
	if !ok {
		return meta
	}
	if meta.Title == "" {
		if s, ok := core.GetStringVal(dict.Get("Title")); ok {
			meta.Title = s
		}
	}
	if meta.CreatorTool == "" {
		if s, ok := core.GetStringVal(dict.Get("Creator")); ok {
			meta.CreatorTool = s
		}
	}
	if s, ok := core.GetStringVal(dict.Get("Producer")); ok {
		meta.Producer = s
	}
	return meta
}

// readXMPMeta best-effort parses the document's XMP metadata stream, if
// any. It never returns an error: XMP is commonly absent or malformed and
// the backend must degrade gracefully (§4.10-style optional-input rule).
func readXMPMeta(r *model.PdfReader) (title, creator string, ok bool) {
	raw, found := catalogMetadataStream(r)
	if !found {
		return "", "", false
	}
	doc, err := xmp.Read(bytes.NewReader(raw))
	if err != nil {
		common.Log.Debug("backend: XMP parse failed: %v", err)
		return "", "", false
	}
	if m, err := doc.FindModel(dc.NsDC); err == nil && m != nil {
		if core, ok := m.(*dc.DublinCore); ok && len(core.Title) > 0 {
			title = core.Title.Default()
		}
	}
	if m, err := doc.FindModel(xmp_base.NsXmp); err == nil && m != nil {
		if base, ok := m.(*xmp_base.XmpBase); ok {
			creator = string(base.CreatorTool)
		}
	}
	return title, creator, title != "" || creator != ""
}

func catalogMetadataStream(r *model.PdfReader) ([]byte, bool) {
	dict, ok := catalogDict(r)
	if !ok {
		return nil, false
	}
	streamObj, ok := core.GetStream(dict.Get("Metadata"))
	if !ok || streamObj == nil {
		return nil, false
	}
	data, err := core.DecodeStream(streamObj)
	if err != nil {
		return nil, false
	}
	return data, true
}

// catalogDict resolves the PDF's document catalog (the trailer's /Root
// entry) without relying on the reader's unexported catalog cache.
func catalogDict(r *model.PdfReader) (*core.PdfObjectDictionary, bool) {
	trailer, err := r.GetTrailer()
	if err != nil || trailer == nil {
		return nil, false
	}
	ref, ok := trailer.Get("Root").(*core.PdfObjectReference)
	if !ok {
		return nil, false
	}
	obj, err := r.GetIndirectObjectByNumber(int(ref.ObjectNumber))
	if err != nil {
		return nil, false
	}
	ind, ok := core.GetIndirect(obj)
	if !ok {
		return nil, false
	}
	return core.GetDict(ind.PdfObject)
}
