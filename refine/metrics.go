/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package refine implements the three-phase crop refinement (§4.5-4.7):
// Phase A text trim, Phase B object alignment, Phase D whitespace
// autocrop. Each phase is a pure function (Rect, Context) -> (Rect,
// trace) per §9's "per-phase pipeline" design note; the acceptance gate
// (package gate) is the only place that picks a winner among the
// intermediate rects this package produces.
package refine

import (
	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/geometry"
)

// Metrics is the post-stage measurement set §3's RefinementResult
// records: height/area/ink/object-coverage/component-count/text-line-count,
// plus the paragraph coverage the acceptance gate tiers on.
type Metrics struct {
	Height            float64
	Area              float64
	InkDensity        float64
	ObjectCoverage    float64
	ComponentCount    int
	TextLineCount     int
	ParagraphCoverage float64
}

// ComputeMetrics measures rect against the page's text/drawing/image
// content. All measurement stays in PDF points (§9 "coordinate vs.
// pixel"): ink/coverage are area fractions, not rendered pixel counts.
func ComputeMetrics(rect geometry.Rect, blocks []backend.TextBlock, drawings []backend.DrawingObject, images []backend.ImageRect) Metrics {
	if rect.IsEmpty() {
		return Metrics{}
	}
	area := rect.Area()

	var textInk, objInk, paragraphHeight float64
	var lineCount int
	for _, block := range blocks {
		for _, line := range block.Lines {
			inter := line.BBox.Intersect(rect)
			if inter.IsEmpty() {
				continue
			}
			lineCount++
			textInk += inter.Area()
			if line.BBox.Width() >= 0.5*rect.Width() {
				paragraphHeight += inter.Height()
			}
		}
	}

	var objRects []geometry.Rect
	for _, d := range drawings {
		inter := d.BBox.Intersect(rect)
		if inter.IsEmpty() {
			continue
		}
		objInk += inter.Area()
		objRects = append(objRects, d.BBox)
	}
	for _, im := range images {
		inter := im.BBox.Intersect(rect)
		if inter.IsEmpty() {
			continue
		}
		objInk += inter.Area()
		objRects = append(objRects, im.BBox)
	}

	return Metrics{
		Height:            rect.Height(),
		Area:              area,
		InkDensity:        clamp01((textInk + objInk) / area),
		ObjectCoverage:    clamp01(objInk / area),
		ComponentCount:    countComponents(objRects, 6),
		TextLineCount:     lineCount,
		ParagraphCoverage: clamp01(paragraphHeight / rect.Height()),
	}
}

// FarCoverage computes paragraph coverage restricted to the far 50% of
// baseline, the figure §4.8's gate tiers on.
func FarCoverage(baseline geometry.Rect, side bool, blocks []backend.TextBlock) float64 {
	if baseline.IsEmpty() {
		return 0
	}
	half := baseline.CenterY()
	var far geometry.Rect
	if side {
		// side==true means "above": the far half is the top half.
		far = geometry.New(baseline.X0, baseline.Y0, baseline.X1, half)
	} else {
		far = geometry.New(baseline.X0, half, baseline.X1, baseline.Y1)
	}
	var paragraphHeight float64
	for _, block := range blocks {
		for _, line := range block.Lines {
			inter := line.BBox.Intersect(far)
			if inter.IsEmpty() {
				continue
			}
			if line.BBox.Width() >= 0.5*baseline.Width() {
				paragraphHeight += inter.Height()
			}
		}
	}
	if far.Height() <= 0 {
		return 0
	}
	return clamp01(paragraphHeight / far.Height())
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// countComponents merges rects within gap of each other into connected
// components (shared union-find used by anchor scoring and Phase B).
func countComponents(rects []geometry.Rect, gap float64) int {
	n := len(rects)
	if n == 0 {
		return 0
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rects[i].Pad(gap).Overlaps(rects[j]) {
				union(i, j)
			}
		}
	}
	roots := map[int]bool{}
	for i := range rects {
		roots[find(i)] = true
	}
	return len(roots)
}
