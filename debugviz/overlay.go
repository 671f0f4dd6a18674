/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package debugviz renders the optional per-attachment debug overlay
// (§4.11): the page region around an attachment with the baseline/after_A/
// after_B/after_D candidate rects drawn as colored outline boxes, plus a
// legend of stage names and the acceptance decision.
package debugviz

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/geometry"
)

// StageBox is one candidate rect to outline, labeled and colored by stage.
type StageBox struct {
	Label string
	Rect  geometry.Rect
	Color color.RGBA
}

// Stage colors, chosen for contrast against a typical page render.
var (
	ColorBaseline = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	ColorAfterA   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	ColorAfterB   = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	ColorAfterD   = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	ColorAccepted = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

const (
	marginPt     = 24.0
	legendSizePt = 10.0
	legendGapPt  = 4.0
	outlineWidth = 2
)

// Render draws boxes over the page region spanning their union (padded by
// marginPt and clamped to the page), appends a legend line per entry below
// the image, and writes the PNG to outDir/debug/<stem>.png. It returns the
// path relative to outDir for AttachmentRecord.debug_artifacts.
//
// A font-discovery or shaping failure degrades to boxes with no legend
// text rather than failing the run: the overlay is a debugging aid, never
// required for acceptance (§4.11 is entirely optional).
func Render(page *backend.Page, dpi int, boxes []StageBox, legend []string, outDir, stem string) (string, error) {
	if len(boxes) == 0 {
		return "", fmt.Errorf("debugviz: render %s: no boxes", stem)
	}

	region := boxes[0].Rect
	for _, b := range boxes[1:] {
		region = region.Union(b.Rect)
	}
	region = region.Pad(marginPt).Clamp(page.Rect())

	base, err := page.Pixmap(dpi, region)
	if err != nil {
		return "", fmt.Errorf("debugviz: render %s: %w", stem, err)
	}

	scale := float64(dpi) / 72.0
	bounds := base.Bounds()
	legendBandHeight := len(legend)*int((legendSizePt+legendGapPt)*scale) + int(legendGapPt*scale)

	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()+legendBandHeight))
	draw.Draw(canvas, image.Rect(0, 0, bounds.Dx(), bounds.Dy()), base, bounds.Min, draw.Src)
	if legendBandHeight > 0 {
		band := image.Rect(0, bounds.Dy(), canvas.Bounds().Dx(), canvas.Bounds().Dy())
		draw.Draw(canvas, band, image.NewUniform(color.White), image.Point{}, draw.Src)
	}

	for _, box := range boxes {
		drawRectOutline(canvas, toPixelRect(box.Rect, region, scale), box.Color)
	}
	drawLegend(canvas, bounds.Dy(), legend, scale)

	return writeOverlay(canvas, outDir, stem)
}

func toPixelRect(r, region geometry.Rect, scale float64) image.Rectangle {
	return image.Rect(
		int((r.X0-region.X0)*scale), int((r.Y0-region.Y0)*scale),
		int((r.X1-region.X0)*scale), int((r.Y1-region.Y0)*scale),
	)
}

func drawRectOutline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	fill := image.NewUniform(c)
	segs := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+outlineWidth), // top
		image.Rect(r.Min.X, r.Max.Y-outlineWidth, r.Max.X, r.Max.Y), // bottom
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+outlineWidth, r.Max.Y), // left
		image.Rect(r.Max.X-outlineWidth, r.Min.Y, r.Max.X, r.Max.Y), // right
	}
	for _, seg := range segs {
		draw.Draw(img, seg.Intersect(img.Bounds()), fill, image.Point{}, draw.Src)
	}
}

func writeOverlay(canvas *image.RGBA, outDir, stem string) (string, error) {
	debugDir := filepath.Join(outDir, "debug")
	if err := os.MkdirAll(debugDir, 0o755); err != nil {
		return "", fmt.Errorf("debugviz: mkdir %s: %w", debugDir, err)
	}

	relPath := filepath.Join("debug", stem+".png")
	finalPath := filepath.Join(outDir, relPath)
	tmpPath := finalPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("debugviz: create %s: %w", tmpPath, err)
	}
	if err := png.Encode(f, canvas); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("debugviz: encode %s: %w", finalPath, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("debugviz: close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("debugviz: rename into place %s: %w", finalPath, err)
	}
	return relPath, nil
}
