/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package backend

import (
	"fmt"

	"github.com/figtable/attachcore/extractor"
	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/model"
)

// Page is a read-only view of one PDF page (§3 PageView). All bboxes it
// returns are in top-down page coordinates, i.e. origin top-left, y
// increasing down, matching the data model's convention -- the opposite
// of the underlying PDF's bottom-left, y-up convention.
type Page struct {
	pdfPage *model.PdfPage
	number  int
	mbox    model.PdfRectangle
	rect    geometry.Rect

	ext *extractor.Extractor
}

func newPage(pdfPage *model.PdfPage, number int) (*Page, error) {
	mbox, err := pdfPage.GetMediaBox()
	if err != nil {
		return nil, fmt.Errorf("backend: page %d has no media box: %w", number, err)
	}
	ext, err := extractor.New(pdfPage)
	if err != nil {
		return nil, fmt.Errorf("backend: page %d extractor: %w", number, err)
	}
	p := &Page{
		pdfPage: pdfPage,
		number:  number,
		mbox:    *mbox,
		ext:     ext,
	}
	p.rect = geometry.New(0, 0, mbox.Width(), mbox.Height())
	return p, nil
}

// Number returns the 1-based page number.
func (p *Page) Number() int { return p.number }

// Rect returns the page's bounding box in top-down page coordinates with
// the origin at the media box's top-left corner.
func (p *Page) Rect() geometry.Rect { return p.rect }

// topDown converts a bottom-left-origin, y-up PDF rectangle into this
// page's top-down coordinate system.
func (p *Page) topDown(r model.PdfRectangle) geometry.Rect {
	x0 := r.Llx - p.mbox.Llx
	x1 := r.Urx - p.mbox.Llx
	y0 := p.mbox.Ury - r.Ury
	y1 := p.mbox.Ury - r.Lly
	return geometry.New(x0, y0, x1, y1)
}

// topDownPoint converts a single PDF-space point into top-down page
// coordinates.
func (p *Page) topDownPoint(x, y float64) (float64, float64) {
	return x - p.mbox.Llx, p.mbox.Ury - y
}
