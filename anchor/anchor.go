/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package anchor selects the baseline crop window around a chosen
// caption: the simple two-window selector (V1) and the default
// multi-scale scanner (V2), plus the document-wide direction vote that
// biases V2 toward whichever side the document consistently prefers
// (§4.4).
package anchor

import (
	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/caption"
	"github.com/figtable/attachcore/config"
	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/layout"
)

// Side is the direction a window extends from its caption.
type Side int

const (
	Above Side = iota
	Below
)

func (s Side) String() string {
	if s == Below {
		return "below"
	}
	return "above"
}

// PageContext bundles everything a selector needs about the page a
// caption lives on: its objects, its neighboring captions (for the
// mid-line guard and the V1 prev/next bounds), and its rect.
type PageContext struct {
	PageRect  geometry.Rect
	Blocks    []backend.TextBlock
	Drawings  []backend.DrawingObject
	Images    []backend.ImageRect

	// PrevCaptionBottom/NextCaptionTop are the nearest neighboring
	// caption edges on the same page, in reading order; zero-value
	// (PageRect.Y0/Y1) when there is none.
	PrevCaptionBottom float64
	NextCaptionTop    float64

	// Layout is the optional §4.10 layout model for this page; nil when
	// layout_driven=off or the model could not be built. Every scorer
	// degrades gracefully when it is nil.
	Layout *layout.Model
}

// Choice is the selector's output: the baseline window and how it was
// chosen.
type Choice struct {
	Caption    caption.Caption
	Side       Side
	Baseline   geometry.Rect
	ScanTrace  []string
	Degenerate bool // true when §4.4's "baseline-empty" fallback fired
}

// isIDForced reports whether the force-direction id lists pin this
// caption's side (§4.4, §6 force_*_ids / force_table_*_ids).
func isIDForced(c config.Config, cap caption.Caption, isFigure bool) (Side, bool) {
	key := cap.Ident.Key()
	if isFigure {
		if c.ForceAboveIDs[key] {
			return Above, true
		}
		if c.ForceBelowIDs[key] {
			return Below, true
		}
		return 0, false
	}
	if c.ForceTableAboveIDs[key] {
		return Above, true
	}
	if c.ForceTableBelowIDs[key] {
		return Below, true
	}
	return 0, false
}

// Select runs the configured anchor mode (V1 or V2) for one caption,
// honoring forced direction and falling back from V2 -> V1 ->
// baseline-empty on degenerate pages (§4.4 failure modes).
func Select(c config.Config, cap caption.Caption, isFigure bool, ctx PageContext, globalSide func() (Side, bool)) Choice {
	forced, isForced := isIDForced(c, cap, isFigure)

	if c.AnchorMode == config.AnchorV1 {
		return selectV1(c, cap, isFigure, ctx, forced, isForced)
	}

	choice, ok := selectV2(c, cap, isFigure, ctx, forced, isForced, globalSide)
	if ok {
		return choice
	}
	v1 := selectV1(c, cap, isFigure, ctx, forced, isForced)
	if !v1.Baseline.IsEmpty() {
		v1.ScanTrace = append(v1.ScanTrace, "v2-degenerate-fallback-v1")
		return v1
	}
	return baselineEmpty(c, cap, forced, isForced)
}

// baselineEmpty is the last-resort fallback (§4.4): a best-effort rect
// of cap.width x clip_h centered on the caption.
func baselineEmpty(c config.Config, cap caption.Caption, forced Side, isForced bool) Choice {
	side := Above
	if isForced {
		side = forced
	}
	half := c.ClipHeightPt / 2
	cy := cap.Rect.CenterY()
	rect := geometry.New(cap.Rect.X0, cy-half, cap.Rect.X1, cy+half)
	return Choice{
		Caption:    cap,
		Side:       side,
		Baseline:   rect,
		ScanTrace:  []string{"baseline-empty"},
		Degenerate: true,
	}
}
