/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package anchor

import (
	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/geometry"
)

// windowMetrics holds the geometric (pt-domain) approximations anchor
// scoring needs. Everything here stays in PDF points, never pixels
// (§9 "Coordinate vs. pixel"): "ink" and "coverage" are area fractions
// over text/object bboxes rather than rendered pixel counts, which is
// exact for Phase D's job (pixel autocrop) but only an approximation
// here -- good enough to rank candidate windows against each other.
type windowMetrics struct {
	Ink                   float64
	ObjectCoverage        float64
	ParagraphCoverage     float64
	ComponentCount        int
	HorizontalLineDensity float64
	ColumnAlignPeak       float64
}

func computeWindowMetrics(window geometry.Rect, blocks []backend.TextBlock, drawings []backend.DrawingObject, images []backend.ImageRect, typicalLineHeight float64) windowMetrics {
	if window.IsEmpty() {
		return windowMetrics{}
	}
	area := window.Area()

	var textInk, objInk float64
	var paragraphHeight float64
	var horizLines int

	for _, block := range blocks {
		for _, line := range block.Lines {
			inter := line.BBox.Intersect(window)
			if inter.IsEmpty() {
				continue
			}
			textInk += inter.Area()
			if line.BBox.Width() >= 0.5*window.Width() {
				paragraphHeight += inter.Height()
			}
		}
	}

	var objRects []geometry.Rect
	for _, d := range drawings {
		inter := d.BBox.Intersect(window)
		if inter.IsEmpty() {
			continue
		}
		objInk += inter.Area()
		objRects = append(objRects, d.BBox)
		if d.Kind == backend.KindLineSegment && d.Orientation == backend.OrientHorizontal {
			horizLines++
		}
	}
	for _, im := range images {
		inter := im.BBox.Intersect(window)
		if inter.IsEmpty() {
			continue
		}
		objInk += inter.Area()
		objRects = append(objRects, im.BBox)
	}

	m := windowMetrics{
		Ink:               clamp01((textInk + objInk) / area),
		ObjectCoverage:    clamp01(objInk / area),
		ParagraphCoverage: clamp01(paragraphHeight / window.Height()),
		ComponentCount:    countComponents(objRects, 6),
		ColumnAlignPeak:   columnAlignPeak(drawings, window),
	}
	if typicalLineHeight > 0 {
		expectedRows := window.Height() / typicalLineHeight
		if expectedRows > 0 {
			m.HorizontalLineDensity = clamp01(float64(horizLines) / expectedRows)
		}
	}
	return m
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

// columnAlignPeak counts the largest cluster of column-aligned vector
// paths sharing a near-identical x0 within window, normalized by the
// total count of column-aligned candidates (Open Question #2: raster
// lines are excluded, only vector paths/vertical rules count).
func columnAlignPeak(drawings []backend.DrawingObject, window geometry.Rect) float64 {
	var xs []float64
	for _, d := range drawings {
		if !d.ColumnAligned {
			continue
		}
		if d.BBox.Intersect(window).IsEmpty() {
			continue
		}
		xs = append(xs, d.BBox.X0)
	}
	if len(xs) == 0 {
		return 0
	}
	const tol = 3.0
	best := 0
	for i, x := range xs {
		count := 0
		for _, y := range xs {
			if abs(x-y) <= tol {
				count++
			}
		}
		if count > best {
			best = count
		}
		_ = i
	}
	return clamp01(float64(best) / float64(len(xs)))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// countComponents merges rects within gap of each other into connected
// components and returns the component count (shared by anchor scoring
// and refine Phase B, §4.6).
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
