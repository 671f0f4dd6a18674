/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package attachment implements the §3 AttachmentRecord output contract:
// naming, PNG rendering, the atomic index write, and pruning of stale
// files (§4.9).
package attachment

import "github.com/figtable/attachcore/geometry"

// Meta mirrors §3's AttachmentRecord.meta: ambient document identity
// folded into every record so a downstream summarizer never needs to
// reopen the source PDF.
type Meta struct {
	PDFName        string `json:"pdf_name"`
	PDFHash        string `json:"pdf_hash"`
	PageCount      int    `json:"page_count"`
	ExtractorVer   string `json:"extractor_version"`
	Preset         string `json:"preset"`
}

// Layout mirrors §3's AttachmentRecord.layout.
type Layout struct {
	Columns           int     `json:"columns"`
	TypicalLineHeight float64 `json:"typical_line_height"`
}

// BBox is the JSON-friendly [x0,y0,x1,y1] form of a geometry.Rect.
type BBox [4]float64

// FromRect converts a geometry.Rect into its JSON array form.
func FromRect(r geometry.Rect) BBox {
	return BBox{r.X0, r.Y0, r.X1, r.Y1}
}

// Record is the full §3 AttachmentRecord output contract.
type Record struct {
	Kind        string `json:"kind"`
	Ident       string `json:"ident"`
	Page        int    `json:"page"`
	CaptionText string `json:"caption_text"`
	File        string `json:"file"`
	Continued   bool   `json:"continued,omitempty"`

	Meta   Meta   `json:"meta"`
	Layout Layout `json:"layout"`

	AnchorMode       string `json:"anchor_mode"`
	Side             string `json:"side"`
	GlobalAnchorUsed bool   `json:"global_anchor_used"`

	StagesApplied []string `json:"stages_applied"`
	Confidence    float64  `json:"confidence"`

	BBoxPt        BBox   `json:"bbox_pt"`
	DPI           int    `json:"dpi"`
	PixmapSizePx  [2]int `json:"pixmap_size_px"`

	DebugArtifacts []string `json:"debug_artifacts,omitempty"`
}
