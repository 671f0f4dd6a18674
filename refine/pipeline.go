/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package refine

import (
	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/config"
	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/layout"
)

// Pipeline holds the three key rects and their metrics alive until the
// acceptance gate decides which one wins (§9 "retaining multiple
// candidate rects for fallback"): Baseline (the anchor's own output),
// AfterA (Phase A only), and AfterD (A then B then D).
type Pipeline struct {
	Baseline geometry.Rect
	AfterA   geometry.Rect
	AfterB   geometry.Rect
	AfterD   geometry.Rect

	BaselineMetrics Metrics
	AfterAMetrics   Metrics
	AfterDMetrics   Metrics
	FarCoverage     float64

	Trace []string
}

// Input bundles the page content a refinement run needs.
type Input struct {
	IsFigure bool
	Above    bool
	CapText  string
	CapRect  geometry.Rect
	Baseline geometry.Rect
	Blocks   []backend.TextBlock
	Drawings []backend.DrawingObject
	Images   []backend.ImageRect
	Page     *backend.Page
	Layout   *layout.Model
}

// Run executes Phase A, then B, then D in sequence, recording every
// intermediate rect and its metrics so the acceptance gate can pick
// among refined / A-only / baseline without re-running any phase.
func Run(c config.Config, in Input) Pipeline {
	p := Pipeline{Baseline: in.Baseline}
	p.BaselineMetrics = ComputeMetrics(in.Baseline, in.Blocks, in.Drawings, in.Images)
	p.FarCoverage = FarCoverage(in.Baseline, in.Above, in.Blocks)

	if !c.TextTrim {
		p.AfterA = in.Baseline
	} else {
		rect, trace := PhaseA(c, in.Above, in.CapText, in.Baseline, in.Blocks, in.Layout)
		p.AfterA = rect
		p.Trace = append(p.Trace, trace...)
	}
	p.AfterAMetrics = ComputeMetrics(p.AfterA, in.Blocks, in.Drawings, in.Images)

	bRect, bTrace := PhaseB(c, in.IsFigure, in.Above, p.AfterA, in.Drawings, in.Images)
	p.AfterB = bRect
	p.Trace = append(p.Trace, bTrace...)

	if !c.Autocrop || in.Page == nil {
		p.AfterD = p.AfterB
	} else {
		dRect, dTrace, err := PhaseD(c, in.IsFigure, in.Above, in.CapRect, p.AfterB, in.Page, in.Blocks)
		p.Trace = append(p.Trace, dTrace...)
		if err != nil {
			p.AfterD = p.AfterB
			p.Trace = append(p.Trace, "D-error-fallback")
		} else {
			p.AfterD = dRect
		}
	}
	p.AfterDMetrics = ComputeMetrics(p.AfterD, in.Blocks, in.Drawings, in.Images)

	return p
}
