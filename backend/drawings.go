/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package backend

import (
	"github.com/figtable/attachcore/contentstream"
	"github.com/figtable/attachcore/core"
	"github.com/figtable/attachcore/extractor"
	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/model"
)

// ImageRects returns every raster image (XObject image or inline image)
// placed on the page, in top-down page coordinates. Grounded on the
// teacher's extractor.ExtractPageImages, which already resolves form
// XObjects and computes each image's placement matrix (ImageMark.CTM).
func (p *Page) ImageRects() ([]ImageRect, error) {
	images, err := p.ext.ExtractPageImages(&extractor.ImageExtractOptions{})
	if err != nil {
		return nil, err
	}
	rects := make([]ImageRect, 0, len(images.Images))
	for _, im := range images.Images {
		rects = append(rects, ImageRect{BBox: p.ctmUnitSquareBBox(im.CTM)})
	}
	return rects, nil
}

// ctmUnitSquareBBox transforms the unit square [0,1]x[0,1] (the space an
// image XObject is painted into) through m and returns its bounding box
// in top-down page coordinates.
func (p *Page) ctmUnitSquareBBox(m interface{ Transform(x, y float64) (float64, float64) }) geometry.Rect {
	corners := [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	var r geometry.Rect
	for i, c := range corners {
		x, y := m.Transform(c[0], c[1])
		x, y = p.topDownPoint(x, y)
		if i == 0 {
			r = geometry.New(x, y, x, y)
		} else {
			r = r.Union(geometry.New(x, y, x, y))
		}
	}
	return r
}

// Drawings returns the page's vector drawing objects: filled/stroked
// paths and rectangles, classified into KindVectorPath / KindLineSegment
// per §3. It walks the content stream with a contentstream.ContentStreamProcessor
// so that the CTM (including nested forms' "cm"/"q"/"Q") is tracked the
// same way the teacher's own extractor/image.go tracks image placement.
func (p *Page) Drawings() ([]DrawingObject, error) {
	contents, err := p.pdfPage.GetAllContentStreams()
	if err != nil {
		return nil, err
	}
	ops, err := contentstream.NewContentStreamParser(contents).Parse()
	if err != nil {
		return nil, err
	}

	collector := &drawingCollector{page: p}
	proc := contentstream.NewContentStreamProcessor(*ops)
	handler := func(op *contentstream.ContentStreamOperation, gs contentstream.GraphicsState, resources *model.PdfPageResources) error {
		collector.handle(op, gs)
		return nil
	}
	for _, operand := range []string{"m", "l", "c", "v", "y", "re", "h",
		"f", "F", "f*", "S", "s", "B", "B*", "b", "b*", "n"} {
		proc.AddHandler(contentstream.HandlerConditionEnumOperand, operand, handler)
	}
	if err := proc.Process(p.pdfPage.Resources); err != nil {
		return nil, err
	}
	return collector.objects, nil
}

// drawingCollector accumulates the current subpath(s) between path
// construction operators and the next painting operator, then emits one
// DrawingObject per paint with the union bbox of everything painted.
type drawingCollector struct {
	page     *Page
	curStart [2]float64
	curPos   [2]float64
	haveCur  bool
	path     geometry.Rect
	havePath bool

	objects []DrawingObject
}

func (c *drawingCollector) addPoint(x, y float64) {
	px, py := c.page.topDownPoint(x, y)
	pt := geometry.New(px, py, px, py)
	if !c.havePath {
		c.path = pt
		c.havePath = true
	} else {
		c.path = c.path.Union(pt)
	}
	c.curPos = [2]float64{x, y}
}

func (c *drawingCollector) handle(op *contentstream.ContentStreamOperation, gs contentstream.GraphicsState) {
	nums, _ := core.GetNumbersAsFloat(op.Params)
	tx := func(x, y float64) (float64, float64) { return gs.CTM.Transform(x, y) }

	switch op.Operand {
	case "m":
		if len(nums) == 2 {
			x, y := tx(nums[0], nums[1])
			c.curStart = [2]float64{x, y}
			c.addPoint(x, y)
			c.haveCur = true
		}
	case "l":
		if len(nums) == 2 {
			x, y := tx(nums[0], nums[1])
			c.addPoint(x, y)
		}
	case "c":
		if len(nums) == 6 {
			x1, y1 := tx(nums[0], nums[1])
			x2, y2 := tx(nums[2], nums[3])
			x3, y3 := tx(nums[4], nums[5])
			c.addPoint(x1, y1)
			c.addPoint(x2, y2)
			c.addPoint(x3, y3)
		}
	case "v", "y":
		if len(nums) == 4 {
			x1, y1 := tx(nums[0], nums[1])
			x2, y2 := tx(nums[2], nums[3])
			c.addPoint(x1, y1)
			c.addPoint(x2, y2)
		}
	case "re":
		if len(nums) == 4 {
			x, y, w, h := nums[0], nums[1], nums[2], nums[3]
			corners := [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
			for _, cr := range corners {
				px, py := tx(cr[0], cr[1])
				c.addPoint(px, py)
			}
			c.curStart = func() [2]float64 { px, py := tx(x, y); return [2]float64{px, py} }()
			c.haveCur = true
		}
	case "h":
		if c.haveCur {
			c.addPoint(c.curStart[0], c.curStart[1])
		}
	case "f", "F", "f*", "S", "s", "B", "B*", "b", "b*":
		if c.havePath {
			c.objects = append(c.objects, classify(c.path))
		}
		c.reset()
	case "n":
		c.reset()
	}
}

func (c *drawingCollector) reset() {
	c.havePath = false
	c.haveCur = false
	c.path = geometry.Rect{}
}

// classify assigns ObjectKind/LineOrientation to a painted path's bbox:
// thin bboxes (one dimension much smaller than the other, and smaller
// than a nominal rule thickness) are line segments; everything else with
// non-trivial area is a vector path.
func classify(bbox geometry.Rect) DrawingObject {
	const ruleThickness = 2.0
	w, h := bbox.Width(), bbox.Height()

	obj := DrawingObject{BBox: bbox, Kind: KindVectorPath}
	switch {
	case h <= ruleThickness && w > h:
		obj.Kind = KindLineSegment
		obj.Orientation = OrientHorizontal
	case w <= ruleThickness && h > w:
		obj.Kind = KindLineSegment
		obj.Orientation = OrientVertical
	}
	// Column alignment is assessed document-wide by the caller (anchor
	// package); here we only mark paths that are candidates: vertical
	// rules and narrow filled columns.
	if obj.Kind == KindVectorPath && w > 0 && w < 6 {
		obj.ColumnAligned = true
	}
	if obj.Kind == KindLineSegment && obj.Orientation == OrientVertical {
		obj.ColumnAligned = true
	}
	return obj
}
