/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package anchor

import (
	"fmt"
	"math"

	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/caption"
	"github.com/figtable/attachcore/config"
	"github.com/figtable/attachcore/geometry"
)

// edgeSnapToleranceP is how close a window edge must land to a
// horizontal line segment before it is snapped onto it (§4.4 "edge snap
// ... within 14 pt").
const edgeSnapTolerancePt = 14.0

// selectV2 runs the multi-scale scan (§4.4 V2). It returns ok=false when
// no candidate window scores above zero anywhere on the page (the
// "degenerate page" failure mode), so the caller can fall back to V1.
func selectV2(c config.Config, cap caption.Caption, isFigure bool, ctx PageContext, forced Side, isForced bool, globalSide func() (Side, bool)) (Choice, bool) {
	sides := []Side{Above, Below}
	if isForced {
		sides = []Side{forced}
	} else if gs, ok := globalSide(); ok {
		sides = []Side{gs}
	}

	var best geometry.Rect
	bestScore := math.Inf(-1)
	var bestSide Side
	var trace []string
	found := false

	for _, side := range sides {
		rect, score, ok := scanSide(c, cap, isFigure, ctx, side, &trace)
		if ok && score > bestScore {
			best, bestScore, bestSide, found = rect, score, side, true
		}
	}
	if !found {
		return Choice{}, false
	}

	best = snapEdges(best, bestSide, ctx.Drawings)
	trace = append(trace, fmt.Sprintf("v2-%s-score=%.3f", bestSide, bestScore))
	return Choice{Caption: cap, Side: bestSide, Baseline: best, ScanTrace: trace}, true
}

// scanSide generates candidate windows flush to the caption on the near
// side at every (height, y-step) combination in the scan grid, honoring
// the mid-line guard and page bounds, and returns the highest-scoring one.
func scanSide(c config.Config, cap caption.Caption, isFigure bool, ctx PageContext, side Side, trace *[]string) (geometry.Rect, float64, bool) {
	l := ctx.PageRect.X0 + c.MarginXPt
	r := ctx.PageRect.X1 - c.MarginXPt

	nearBound := cap.Rect.Y0 - c.CaptionGapPt
	farBoundGuard := ctx.PrevCaptionBottom + c.CaptionMidGuardPt
	if side == Below {
		nearBound = cap.Rect.Y1 + c.CaptionGapPt
		farBoundGuard = ctx.NextCaptionTop - c.CaptionMidGuardPt
	}

	best := geometry.Rect{}
	bestScore := math.Inf(-1)
	found := false

	for _, h := range c.ScanHeights {
		for step := 0.0; step <= h; step += c.ScanStepPt {
			var win geometry.Rect
			if side == Above {
				top := nearBound - h + step
				bottom := nearBound - step
				if top < ctx.PageRect.Y0 {
					top = ctx.PageRect.Y0
				}
				if top < farBoundGuard {
					top = farBoundGuard
				}
				if bottom <= top {
					continue
				}
				win = geometry.New(l, top, r, bottom)
			} else {
				top := nearBound + step
				bottom := nearBound + h - step
				if bottom > ctx.PageRect.Y1 {
					bottom = ctx.PageRect.Y1
				}
				if bottom > farBoundGuard {
					bottom = farBoundGuard
				}
				if bottom <= top {
					continue
				}
				win = geometry.New(l, top, r, bottom)
			}
			if win.IsEmpty() {
				continue
			}
			score := scoreCandidate(c, win, isFigure, ctx, cap, side)
			if score > bestScore {
				best, bestScore, found = win, score, true
			}
		}
	}
	if found {
		*trace = append(*trace, fmt.Sprintf("v2-scan-%s", side))
	}
	return best, bestScore, found && bestScore > 0
}

const scanDistLambda = 0.12

// scoreCandidate scores one scan candidate per §4.4's figure/table
// formulas.
func scoreCandidate(c config.Config, win geometry.Rect, isFigure bool, ctx PageContext, cap caption.Caption, side Side) float64 {
	lineH := 12.0
	m := computeWindowMetrics(win, ctx.Blocks, ctx.Drawings, ctx.Images, lineH)
	dist := distanceFromCaption(win, cap, side)
	pageH := ctx.PageRect.Height()
	if pageH <= 0 {
		pageH = 1
	}
	lambda := c.ScanDistLambda
	if lambda == 0 {
		lambda = scanDistLambda
	}
	distTerm := lambda * (dist / pageH)
	layoutPenalty := ctx.Layout.ParagraphPenalty(win)

	if isFigure {
		componentsTerm := 0.08 * math.Min(1, float64(m.ComponentCount)/3)
		return 0.55*m.Ink + 0.25*m.ObjectCoverage - 0.20*m.ParagraphCoverage + componentsTerm - distTerm - 0.10*layoutPenalty
	}
	return 0.40*m.Ink + 0.25*m.ColumnAlignPeak + 0.20*m.HorizontalLineDensity + 0.15*m.ObjectCoverage - 0.25*m.ParagraphCoverage - distTerm - 0.10*layoutPenalty
}

// distanceFromCaption is the gap between the window's near edge and the
// caption's own near-side edge.
func distanceFromCaption(win geometry.Rect, cap caption.Caption, side Side) float64 {
	if side == Above {
		return math.Abs(cap.Rect.Y0 - win.Y1)
	}
	return math.Abs(win.Y0 - cap.Rect.Y1)
}

// snapEdges snaps the top/bottom edges of rect onto the nearest
// horizontal line segment within edgeSnapTolerancePt, independently per
// edge (§4.4 "edge snap").
func snapEdges(rect geometry.Rect, side Side, drawings []backend.DrawingObject) geometry.Rect {
	if top := nearestHorizontalLineY(rect.X0, rect.X1, rect.Y0, drawings); top != nil && math.Abs(*top-rect.Y0) <= edgeSnapTolerancePt {
		rect.Y0 = *top
	}
	if bottom := nearestHorizontalLineY(rect.X0, rect.X1, rect.Y1, drawings); bottom != nil && math.Abs(*bottom-rect.Y1) <= edgeSnapTolerancePt {
		rect.Y1 = *bottom
	}
	return rect
}

func nearestHorizontalLineY(x0, x1, y float64, drawings []backend.DrawingObject) *float64 {
	var best *float64
	bestDist := math.Inf(1)
	for _, d := range drawings {
		if d.Kind != backend.KindLineSegment || d.Orientation != backend.OrientHorizontal {
			continue
		}
		if d.BBox.X1 < x0 || d.BBox.X0 > x1 {
			continue
		}
		ly := (d.BBox.Y0 + d.BBox.Y1) / 2
		dist := math.Abs(ly - y)
		if dist < bestDist {
			bestDist = dist
			v := ly
			best = &v
		}
	}
	return best
}
