/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package backend implements the narrow, read-only PDF adapter the
// extraction core is built against (§4.1): page iteration, text dict,
// drawings, images, and pixmap rendering. It is the only package that
// touches the teacher's PDF engine packages (model, extractor,
// contentstream, render) directly; every other package in this module
// operates on the geometry/text/drawing primitives defined here.
package backend

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/figtable/attachcore/common"
	"github.com/figtable/attachcore/model"
)

// OpenError is returned by Open when the file is missing, unreadable, or
// encrypted with a password this adapter cannot supply.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string { return fmt.Sprintf("backend: open %s: %v", e.Path, e.Err) }
func (e *OpenError) Unwrap() error { return e.Err }

// Document is a read-only view of an opened PDF file. It is NOT safe for
// concurrent use: the underlying model.PdfReader lazily resolves indirect
// objects into an unsynchronized cache on first reference, and any object
// shared across pages (a font, an XObject) can be resolved by two pages'
// worth of work at once. Concurrent callers must each open their own
// Document against the same path rather than share one (§5: "the PDF
// backend adapter is created once per worker — no sharing of page
// handles between workers").
type Document struct {
	path     string
	file     *os.File
	reader   *model.PdfReader
	numPages int
	hash     string
	meta     DocumentMeta
}

// Open opens the PDF at path. If the document is encrypted, Open makes a
// single empty-password decrypt attempt (matching the teacher's own
// reader.go contract) and fails with OpenError if that does not succeed.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}

	reader, err := model.NewPdfReader(f)
	if err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}

	if encrypted, err := reader.IsEncrypted(); err == nil && encrypted {
		ok, err := reader.Decrypt([]byte(""))
		if err != nil || !ok {
			f.Close()
			return nil, &OpenError{Path: path, Err: errors.New("encrypted PDF: empty password rejected")}
		}
		common.Log.Debug("backend: %s decrypted with empty password", path)
	}

	n, err := reader.GetNumPages()
	if err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if n == 0 {
		f.Close()
		return nil, &OpenError{Path: path, Err: errors.New("zero-page document")}
	}

	d := &Document{
		path:     path,
		file:     f,
		reader:   reader,
		numPages: n,
		hash:     hex.EncodeToString(h.Sum(nil)),
	}
	d.meta = loadDocumentMeta(reader, n, d.hash)
	return d, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.file.Close()
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int { return d.numPages }

// Meta returns the ambient document metadata (§3 DocumentMeta).
func (d *Document) Meta() DocumentMeta { return d.meta }

// Page returns a PageView for the given 1-based page number.
func (d *Document) Page(i int) (*Page, error) {
	if i < 1 || i > d.numPages {
		return nil, fmt.Errorf("backend: page %d out of range [1,%d]", i, d.numPages)
	}
	pdfPage, err := d.reader.GetPage(i)
	if err != nil {
		return nil, fmt.Errorf("backend: get page %d: %w", i, err)
	}
	return newPage(pdfPage, i)
}
