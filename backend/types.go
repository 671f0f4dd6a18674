/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package backend

import "github.com/figtable/attachcore/geometry"

// TextSpan is a run of text sharing one font and size, in top-down page
// coordinates.
type TextSpan struct {
	Text     string
	BBox     geometry.Rect
	Font     string
	FontSize float64
	Bold     bool
	Italic   bool
}

// TextLine is a sequence of spans read left-to-right on one baseline.
// Its BBox encloses all of its Spans' bboxes.
type TextLine struct {
	Spans []TextSpan
	BBox  geometry.Rect
}

// Text returns the concatenated text of the line's spans.
func (l TextLine) Text() string {
	s := ""
	for _, sp := range l.Spans {
		s += sp.Text
	}
	return s
}

// TextBlock is a paragraph: a run of TextLines with no intervening blank
// line. Its BBox encloses all of its Lines' bboxes.
type TextBlock struct {
	Lines []TextLine
	BBox  geometry.Rect
}

// ObjectKind classifies a DrawingObject.
type ObjectKind int

const (
	// KindRaster is a rasterized image (XObject image or inline image).
	KindRaster ObjectKind = iota
	// KindVectorPath is a filled or stroked vector path that is not a
	// thin line (a rectangle, curve, or polygon).
	KindVectorPath
	// KindLineSegment is a thin stroked path (a rule or grid line).
	KindLineSegment
)

// LineOrientation classifies a KindLineSegment for table scoring.
type LineOrientation int

const (
	// OrientNone applies to non-line objects.
	OrientNone LineOrientation = iota
	// OrientHorizontal is a line whose height is much smaller than its width.
	OrientHorizontal
	// OrientVertical is a line whose width is much smaller than its height.
	OrientVertical
)

// DrawingObject is a vector or raster object on a page, with the coarse
// classification table scoring needs (§3).
type DrawingObject struct {
	BBox ObjectBBox
	Kind ObjectKind
	// ColumnAligned is set for vector paths whose x-extent repeats at a
	// small number of stable positions across the page (used by table
	// scoring's column-alignment peak).
	ColumnAligned bool
	Orientation   LineOrientation
}

// ObjectBBox is an alias kept distinct from geometry.Rect at the call
// site to make "this came from the backend" explicit; it is structurally
// identical.
type ObjectBBox = geometry.Rect

// ImageRect is a raster image placed on the page.
type ImageRect struct {
	BBox geometry.Rect
}
