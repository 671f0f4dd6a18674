/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package refine

import (
	"image"
	"image/color"

	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/config"
	"github.com/figtable/attachcore/geometry"
)

// PhaseD renders window at the output DPI, builds a text mask over the
// near 60% of the window for figures (tables keep their text), and
// autocrops the result to its tight non-white bbox with threshold
// AutocropWhiteTh, subject to the far-edge guard and shrink-limit
// protections (§4.7). This is the only phase aware of pixels; everything
// else in the pipeline stays in PDF points.
func PhaseD(c config.Config, isFigure, above bool, capRect geometry.Rect, window geometry.Rect, page *backend.Page, blocks []backend.TextBlock) (geometry.Rect, []string, error) {
	if window.IsEmpty() {
		return window, nil, nil
	}
	img, err := page.Pixmap(c.DPI, window)
	if err != nil {
		return window, []string{"D-render-failed"}, err
	}

	scale := float64(c.DPI) / 72.0
	bounds := img.Bounds()

	mask := buildTextMask(isFigure, above, window, blocks, scale, bounds)

	tight, found := tightBBox(img, mask, c.AutocropWhiteTh)
	if !found {
		return window, []string{"D-no-content"}, nil
	}

	pad := float64(c.AutocropPadPx)
	tight = image.Rect(
		tight.Min.X-int(pad), tight.Min.Y-int(pad),
		tight.Max.X+int(pad), tight.Max.Y+int(pad),
	).Intersect(bounds)

	// Convert the pixel-space tight bbox back to PDF points, relative to
	// window's own origin.
	cropped := geometry.New(
		window.X0+float64(tight.Min.X)/scale,
		window.Y0+float64(tight.Min.Y)/scale,
		window.X0+float64(tight.Max.X)/scale,
		window.Y0+float64(tight.Max.Y)/scale,
	)

	// Far-edge guard: never shrink the far edge by more than
	// ProtectFarEdgePx (converted to points).
	guardPt := float64(c.ProtectFarEdgePx) / scale
	cropped = applyFarEdgeGuard(cropped, window, above, guardPt)

	// Shrink limit: reject the autocrop outright if it shrank the area
	// or height too aggressively.
	preArea := window.Area()
	preHeight := window.Height()
	minHeightPt := float64(c.AutocropMinHeightPx) / scale

	if cropped.Area() < preArea*(1-c.AutocropShrinkLimit) || cropped.Height() < minHeightPt {
		grown := growNearEdgeBack(window, above, float64(c.NearEdgePadPx)/scale, capRect)
		return grown, []string{"D-shrink-rejected", "D-near-edge-regrow"}, nil
	}
	_ = preHeight

	return cropped, []string{"D-autocrop"}, nil
}

// buildTextMask returns a mask of pixel rects to treat as white (i.e.
// exclude from the non-white bbox search) -- paragraph-shaped lines on
// the near 60% of the window, figures only (§4.7).
func buildTextMask(isFigure, above bool, window geometry.Rect, blocks []backend.TextBlock, scale float64, bounds image.Rectangle) []image.Rectangle {
	if !isFigure {
		return nil
	}
	nearBandHeight := window.Height() * 0.60
	var mask []image.Rectangle
	for _, block := range blocks {
		for _, line := range block.Lines {
			inter := line.BBox.Intersect(window)
			if inter.IsEmpty() {
				continue
			}
			dist := window.DistanceFromNear(above, line.BBox.NearY(above))
			if dist < 0 || dist > nearBandHeight {
				continue
			}
			if line.BBox.Width() < 0.5*window.Width() {
				continue
			}
			px := image.Rect(
				int((inter.X0-window.X0)*scale), int((inter.Y0-window.Y0)*scale),
				int((inter.X1-window.X0)*scale), int((inter.Y1-window.Y0)*scale),
			).Intersect(bounds)
			if !px.Empty() {
				mask = append(mask, px)
			}
		}
	}
	return mask
}

func isMasked(mask []image.Rectangle, x, y int) bool {
	for _, m := range mask {
		if (image.Point{X: x, Y: y}).In(m) {
			return true
		}
	}
	return false
}

// tightBBox scans img for the tight bounding box of pixels darker than
// whiteTh (0-255 threshold against luminance), skipping masked pixels.
func tightBBox(img image.Image, mask []image.Rectangle, whiteTh int) (image.Rectangle, bool) {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y
	found := false

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if isMasked(mask, x, y) {
				continue
			}
			if luminance(img.At(x, y)) >= whiteTh {
				continue
			}
			found = true
			if x < minX {
				minX = x
			}
			if x+1 > maxX {
				maxX = x + 1
			}
			if y < minY {
				minY = y
			}
			if y+1 > maxY {
				maxY = y + 1
			}
		}
	}
	if !found {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX, maxY), true
}

func luminance(c color.Color) int {
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit components; reduce to the familiar 0-255 scale
	// via the same Rec.601 weights the teacher's imageutil grayscale
	// conversion uses.
	return int((299*r + 587*g + 114*b) / 1000 >> 8)
}

// applyFarEdgeGuard never lets the far edge move inward by more than
// guardPt relative to window's own far edge. For an "above" window the
// far edge is Y0, so shrinking inward means newFar growing past
// origFar+guardPt; for a "below" window the far edge is Y1, so shrinking
// inward means newFar dropping below origFar-guardPt.
func applyFarEdgeGuard(cropped, window geometry.Rect, above bool, guardPt float64) geometry.Rect {
	origFar := window.FarY(above)
	newFar := cropped.FarY(above)
	if above {
		maxFar := origFar + guardPt
		if newFar > maxFar {
			cropped = cropped.WithFarEdge(above, maxFar)
		}
	} else {
		minFar := origFar - guardPt
		if newFar < minFar {
			cropped = cropped.WithFarEdge(above, minFar)
		}
	}
	return cropped
}

// growNearEdgeBack grows the near edge of window back outward by padPt,
// on shrink-limit rejection, never crossing the caption boundary.
func growNearEdgeBack(window geometry.Rect, above bool, padPt float64, capRect geometry.Rect) geometry.Rect {
	near := window.NearY(above)
	var grown float64
	if above {
		grown = near + padPt
		if grown > capRect.Y0 {
			grown = capRect.Y0
		}
	} else {
		grown = near - padPt
		if grown < capRect.Y1 {
			grown = capRect.Y1
		}
	}
	return window.WithNearEdge(above, grown)
}
