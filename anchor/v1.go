/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package anchor

import (
	"github.com/figtable/attachcore/caption"
	"github.com/figtable/attachcore/config"
	"github.com/figtable/attachcore/geometry"
)

// selectV1 builds both the above and below windows per §4.4 V1 and picks
// one: a forced direction wins outright; otherwise the higher-scoring
// window wins, requiring below to beat above by >=2% to avoid ties
// (below is the more common orientation in the corpus this spec targets).
func selectV1(c config.Config, cap caption.Caption, isFigure bool, ctx PageContext, forced Side, isForced bool) Choice {
	above := v1Window(c, cap, ctx, Above)
	below := v1Window(c, cap, ctx, Below)

	if isForced {
		rect := above
		if forced == Below {
			rect = below
		}
		return Choice{Caption: cap, Side: forced, Baseline: rect, ScanTrace: []string{"v1-forced"}}
	}

	lineH := 12.0
	aboveScore := v1Score(above, ctx, lineH)
	belowScore := v1Score(below, ctx, lineH)

	side := Above
	rect := above
	trace := "v1-above"
	if belowScore > aboveScore*1.02 {
		side = Below
		rect = below
		trace = "v1-below"
	}
	if rect.IsEmpty() {
		return Choice{Caption: cap, Side: side, Baseline: geometry.Rect{}, ScanTrace: []string{trace, "v1-degenerate"}}
	}
	return Choice{Caption: cap, Side: side, Baseline: rect, ScanTrace: []string{trace}}
}

// v1Window constructs the simple two-window baseline (§4.4 V1) for the
// given side, clamped to the page and respecting the neighboring
// caption's edge as the outer bound.
func v1Window(c config.Config, cap caption.Caption, ctx PageContext, side Side) geometry.Rect {
	l := ctx.PageRect.X0 + c.MarginXPt
	r := ctx.PageRect.X1 - c.MarginXPt
	if side == Above {
		top := ctx.PageRect.Y0
		if ctx.PrevCaptionBottom+8 > top {
			top = ctx.PrevCaptionBottom + 8
		}
		if cap.Rect.Y0-c.ClipHeightPt > top {
			top = cap.Rect.Y0 - c.ClipHeightPt
		}
		bottom := cap.Rect.Y0 - c.CaptionGapPt
		if bottom <= top {
			return geometry.Rect{}
		}
		return geometry.New(l, top, r, bottom)
	}
	top := cap.Rect.Y1 + c.CaptionGapPt
	bottom := ctx.PageRect.Y1
	if ctx.NextCaptionTop-8 < bottom {
		bottom = ctx.NextCaptionTop - 8
	}
	if top+c.ClipHeightPt < bottom {
		bottom = top + c.ClipHeightPt
	}
	if bottom <= top {
		return geometry.Rect{}
	}
	return geometry.New(l, top, r, bottom)
}

// v1Score applies the V1 scoring formula 0.6*ink + 0.4*object_coverage.
func v1Score(window geometry.Rect, ctx PageContext, lineH float64) float64 {
	if window.IsEmpty() {
		return -1
	}
	m := computeWindowMetrics(window, ctx.Blocks, ctx.Drawings, ctx.Images, lineH)
	return 0.6*m.Ink + 0.4*m.ObjectCoverage
}
