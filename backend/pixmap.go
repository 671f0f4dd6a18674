/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package backend

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/figtable/attachcore/contentstream"
	"github.com/figtable/attachcore/core"
	"github.com/figtable/attachcore/extractor"
	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/model"
)

// RenderError reports a failure to rasterize a page or a requested clip.
type RenderError struct {
	Reason string
	Err    error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend: render: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("backend: render: %s", e.Reason)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Pixmap rasterizes the page at dpi and returns the sub-image covering clip
// (a rect in top-down page coordinates). dpi must be positive; clip must be
// a non-degenerate rect within the page bounds up to a small tolerance.
//
// The teacher's own render.ImageDevice cannot be used as-is: its image
// backend (render/context/image) is absent from the retrieved tree, and
// its supporting render/context.TextState relies on a Matrix.Clone method
// that was never defined. Rather than patch three independently broken
// pieces, this rasterizer walks the content stream directly, the same way
// Drawings does, and paints straight onto an RGBA canvas using
// golang.org/x/image/vector -- the teacher's own choice of rasterizer
// for PPI/image scaling work (see model/optimize/image_ppi.go).
func (p *Page) Pixmap(dpi int, clip geometry.Rect) (image.Image, error) {
	if dpi <= 0 {
		return nil, &RenderError{Reason: "dpi must be positive"}
	}
	if clip.IsEmpty() || clip.Width() <= 0 || clip.Height() <= 0 {
		return nil, &RenderError{Reason: "degenerate clip rect"}
	}

	scale := float64(dpi) / 72.0
	pageW := int(p.rect.Width()*scale + 0.5)
	pageH := int(p.rect.Height()*scale + 0.5)
	if pageW < 1 {
		pageW = 1
	}
	if pageH < 1 {
		pageH = 1
	}

	canvas := image.NewRGBA(image.Rect(0, 0, pageW, pageH))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	if err := p.paintVectors(canvas, scale); err != nil {
		return nil, &RenderError{Reason: "vector paint", Err: err}
	}
	if err := p.paintImages(canvas, scale); err != nil {
		return nil, &RenderError{Reason: "image paint", Err: err}
	}
	p.paintTextInk(canvas, scale)

	cx0 := int(clip.X0*scale + 0.5)
	cy0 := int(clip.Y0*scale + 0.5)
	cx1 := int(clip.X1*scale + 0.5)
	cy1 := int(clip.Y1*scale + 0.5)
	cropRect := image.Rect(cx0, cy0, cx1, cy1).Intersect(canvas.Bounds())
	if cropRect.Empty() {
		return nil, &RenderError{Reason: "clip does not overlap page"}
	}

	out := image.NewRGBA(image.Rect(0, 0, cropRect.Dx(), cropRect.Dy()))
	draw.Draw(out, out.Bounds(), canvas, cropRect.Min, draw.Src)
	return out, nil
}

// paintVectors walks the content stream and fills/strokes every painted
// path straight onto canvas, device pixels at scale*1pt.
func (p *Page) paintVectors(canvas *image.RGBA, scale float64) error {
	contents, err := p.pdfPage.GetAllContentStreams()
	if err != nil {
		return err
	}
	ops, err := contentstream.NewContentStreamParser(contents).Parse()
	if err != nil {
		return err
	}

	paint := &paintCollector{page: p, canvas: canvas, scale: scale,
		raster: vector.NewRasterizer(canvas.Bounds().Dx(), canvas.Bounds().Dy())}
	proc := contentstream.NewContentStreamProcessor(*ops)
	handler := func(op *contentstream.ContentStreamOperation, gs contentstream.GraphicsState, resources *model.PdfPageResources) error {
		paint.handle(op, gs)
		return nil
	}
	for _, operand := range []string{"m", "l", "c", "v", "y", "re", "h", "w",
		"f", "F", "f*", "S", "s", "B", "B*", "b", "b*", "n"} {
		proc.AddHandler(contentstream.HandlerConditionEnumOperand, operand, handler)
	}
	return proc.Process(p.pdfPage.Resources)
}

// paintCollector mirrors drawingCollector's path tracking but accumulates
// device-space polyline points (instead of a bbox) so paint ops can hand
// them to the rasterizer.
type paintCollector struct {
	page   *Page
	canvas *image.RGBA
	scale  float64
	raster *vector.Rasterizer

	curStart  [2]float64
	cur       [2]float64
	haveCur   bool
	points    [][2]float32
	lineWidth float64
}

func (c *paintCollector) toDevice(x, y float64) (float32, float32) {
	px, py := c.page.topDownPoint(x, y)
	return float32(px * c.scale), float32(py * c.scale)
}

func (c *paintCollector) addPoint(x, y float64) {
	dx, dy := c.toDevice(x, y)
	c.points = append(c.points, [2]float32{dx, dy})
	c.cur = [2]float64{x, y}
}

func (c *paintCollector) handle(op *contentstream.ContentStreamOperation, gs contentstream.GraphicsState) {
	nums, _ := core.GetNumbersAsFloat(op.Params)
	tx := func(x, y float64) (float64, float64) { return gs.CTM.Transform(x, y) }

	switch op.Operand {
	case "w":
		if len(nums) == 1 {
			c.lineWidth = nums[0]
		}
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
			c.addPoint(tx(nums[0], nums[1]))
			c.addPoint(tx(nums[2], nums[3]))
			c.addPoint(tx(nums[4], nums[5]))
		}
	case "v", "y":
		if len(nums) == 4 {
			c.addPoint(tx(nums[0], nums[1]))
			c.addPoint(tx(nums[2], nums[3]))
		}
	case "re":
		if len(nums) == 4 {
			x, y, w, h := nums[0], nums[1], nums[2], nums[3]
			corners := [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
			for _, cr := range corners {
				px, py := tx(cr[0], cr[1])
				c.addPoint(px, py)
			}
			sx, sy := tx(x, y)
			c.curStart = [2]float64{sx, sy}
			c.haveCur = true
		}
	case "h":
		if c.haveCur {
			c.addPoint(c.curStart[0], c.curStart[1])
		}
	case "f", "F", "f*":
		c.fill()
		c.reset()
	case "S", "s":
		c.stroke()
		c.reset()
	case "B", "B*", "b", "b*":
		c.fill()
		c.stroke()
		c.reset()
	case "n":
		c.reset()
	}
}

func (c *paintCollector) fill() {
	if len(c.points) < 3 {
		return
	}
	ink := color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	c.rasterizePolygon(ink)
}

func (c *paintCollector) stroke() {
	if len(c.points) < 2 {
		return
	}
	w := c.lineWidth * c.scale
	if w < 1 {
		w = 1
	}
	ink := color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	for i := 0; i+1 < len(c.points); i++ {
		c.rasterizeSegment(c.points[i], c.points[i+1], float32(w), ink)
	}
}

// rasterizePolygon fills the accumulated point list as a single polygon.
func (c *paintCollector) rasterizePolygon(ink color.NRGBA) {
	c.raster.Reset(c.canvas.Bounds().Dx(), c.canvas.Bounds().Dy())
	c.raster.MoveTo(c.points[0][0], c.points[0][1])
	for _, pt := range c.points[1:] {
		c.raster.LineTo(pt[0], pt[1])
	}
	c.raster.ClosePath()
	c.raster.Draw(c.canvas, c.canvas.Bounds(), image.NewUniform(ink), image.Point{})
}

// rasterizeSegment approximates a stroked line segment as a thin filled
// quad of width w, since vector.Rasterizer only fills polygons.
func (c *paintCollector) rasterizeSegment(a, b [2]float32, w float32, ink color.NRGBA) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	if dx == 0 && dy == 0 {
		return
	}
	nx, ny := -dy, dx
	norm := float32(math.Sqrt(float64(nx*nx + ny*ny)))
	if norm == 0 {
		norm = 1
	}
	nx, ny = nx/norm*w/2, ny/norm*w/2

	c.raster.Reset(c.canvas.Bounds().Dx(), c.canvas.Bounds().Dy())
	c.raster.MoveTo(a[0]+nx, a[1]+ny)
	c.raster.LineTo(b[0]+nx, b[1]+ny)
	c.raster.LineTo(b[0]-nx, b[1]-ny)
	c.raster.LineTo(a[0]-nx, a[1]-ny)
	c.raster.ClosePath()
	c.raster.Draw(c.canvas, c.canvas.Bounds(), image.NewUniform(ink), image.Point{})
}

func (c *paintCollector) reset() {
	c.points = c.points[:0]
	c.haveCur = false
}

// paintImages composites every raster XObject/inline image onto canvas at
// its placed position, mapping the unit square through the CTM's
// translation and axis-aligned scale. Rotated/sheared placements are
// approximated by their bounding box: acceptable here since Pixmap only
// feeds whitespace autocrop and the final crop export, not a faithful
// page renderer.
func (p *Page) paintImages(canvas *image.RGBA, scale float64) error {
	images, err := p.ext.ExtractPageImages(&extractor.ImageExtractOptions{})
	if err != nil {
		return err
	}
	for _, im := range images.Images {
		img, err := im.Image.ToGoImage()
		if err != nil {
			continue
		}
		bbox := p.ctmUnitSquareBBox(im.CTM)
		dst := image.Rect(
			int(bbox.X0*scale+0.5), int(bbox.Y0*scale+0.5),
			int(bbox.X1*scale+0.5), int(bbox.Y1*scale+0.5),
		).Intersect(canvas.Bounds())
		if dst.Empty() {
			continue
		}
		drawScaled(canvas, dst, img)
	}
	return nil
}

// drawScaled nearest-neighbor scales src into dst on canvas; good enough
// for autocrop/whitespace detection, not meant for print-quality output.
func drawScaled(canvas *image.RGBA, dst image.Rectangle, src image.Image) {
	sb := src.Bounds()
	dw, dh := dst.Dx(), dst.Dy()
	if dw <= 0 || dh <= 0 || sb.Dx() <= 0 || sb.Dy() <= 0 {
		return
	}
	for y := 0; y < dh; y++ {
		sy := sb.Min.Y + y*sb.Dy()/dh
		for x := 0; x < dw; x++ {
			sx := sb.Min.X + x*sb.Dx()/dw
			canvas.Set(dst.Min.X+x, dst.Min.Y+y, src.At(sx, sy))
		}
	}
}

// paintTextInk paints a coarse ink approximation for every text span: a
// partially-transparent fill of the span's bbox. The teacher's glyph
// rasterization path (render/context.TextState.DoTj) depends on an
// embedded TrueType font per span and a Matrix.Clone method that is
// absent from this tree, so exact glyph shapes are out of reach here;
// what whitespace autocrop needs is ink presence, not letterforms, and a
// density-matched fill gives it that.
func (p *Page) paintTextInk(canvas *image.RGBA, scale float64) {
	blocks, err := p.TextDict()
	if err != nil {
		return
	}
	ink := color.NRGBA{R: 0, G: 0, B: 0, A: 110}
	for _, block := range blocks {
		for _, line := range block.Lines {
			for _, span := range line.Spans {
				r := image.Rect(
					int(span.BBox.X0*scale), int(span.BBox.Y0*scale),
					int(span.BBox.X1*scale+0.5), int(span.BBox.Y1*scale+0.5),
				).Intersect(canvas.Bounds())
				if r.Empty() {
					continue
				}
				draw.DrawMask(canvas, r, image.NewUniform(ink), image.Point{}, image.NewUniform(ink), image.Point{}, draw.Over)
			}
		}
	}
}
