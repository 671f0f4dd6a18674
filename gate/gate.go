/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package gate implements the tiered acceptance gate and the
// refined -> A-only -> baseline fallback chain (§4.8). It is a pure
// function over the metrics package refine already computed, per §9's
// "acceptance gate is a separate pure function" design note.
package gate

import (
	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/refine"
)

// Stage names the final rect a Decision selected (§3 RefinementResult.stage).
type Stage string

const (
	Refined Stage = "refined"
	AOnly   Stage = "a_only"
	Baseline Stage = "baseline"
)

// Decision is the gate's verdict: which rect/stage won and why.
type Decision struct {
	Stage  Stage
	Rect   geometry.Rect
	Reason string
}

// tier is one row of the §4.8 tiered threshold table.
type tier struct {
	minFarCoverage float64 // inclusive lower bound; tiers are checked highest-first
	heightRatio    float64
	areaRatio      float64
	inkRatio       float64
	coverageRatio  float64
}

var tiers = []tier{
	{minFarCoverage: 0.60, heightRatio: 0.35, areaRatio: 0.25, inkRatio: 0.70, coverageRatio: 0.70},
	{minFarCoverage: 0.30, heightRatio: 0.45, areaRatio: 0.35, inkRatio: 0.75, coverageRatio: 0.75},
	{minFarCoverage: 0.18, heightRatio: 0.50, areaRatio: 0.40, inkRatio: 0.80, coverageRatio: 0.80},
	{minFarCoverage: 0.0, heightRatio: 0.60, areaRatio: 0.55, inkRatio: 0.90, coverageRatio: 0.85},
}

// tierFor picks the applicable row for a given far_coverage value; the
// gate is monotone (§8 property 6) because changing far_coverage only
// ever moves which single row applies, never alters a row's own values.
func tierFor(farCoverage float64) tier {
	for _, t := range tiers {
		if farCoverage >= t.minFarCoverage {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

const (
	aOnlyHeightRatio = 0.60
	aOnlyAreaRatio   = 0.55
)

// Decide runs the acceptance gate: it first checks the refined (post-D)
// metrics against baseline under the far_coverage-selected tier; on
// failure it tries A-only; on failure it reverts to baseline. Every
// decision records its reason in Reason, meant to be fed straight into
// the per-attachment trace and run log (§4.8 "observable in the run log").
func Decide(p refine.Pipeline) Decision {
	t := tierFor(p.FarCoverage)
	base := p.BaselineMetrics

	if passesTier(t, base, p.AfterDMetrics) && keepsComponents(base, p.AfterDMetrics) {
		return Decision{Stage: Refined, Rect: p.AfterD, Reason: "passed acceptance gate"}
	}

	if ratio(p.AfterAMetrics.Height, base.Height) >= aOnlyHeightRatio &&
		ratio(p.AfterAMetrics.Area, base.Area) >= aOnlyAreaRatio {
		return Decision{Stage: AOnly, Rect: p.AfterA, Reason: "refined rejected; A-only accepted"}
	}

	return Decision{Stage: Baseline, Rect: p.Baseline, Reason: "refined and A-only both rejected; reverted to baseline"}
}

// passesTier reports whether refined clears every one of the tier's
// four ratio thresholds against baseline (§4.8 "pass iff all hold").
func passesTier(t tier, base, refined refine.Metrics) bool {
	return ratio(refined.Height, base.Height) >= t.heightRatio &&
		ratio(refined.Area, base.Area) >= t.areaRatio &&
		ratio(refined.InkDensity, base.InkDensity) >= t.inkRatio &&
		ratio(refined.ObjectCoverage, base.ObjectCoverage) >= t.coverageRatio
}

// keepsComponents enforces "if baseline had >=2 components, refined must
// keep >=2 components" (§4.8).
func keepsComponents(base, refined refine.Metrics) bool {
	if base.ComponentCount < 2 {
		return true
	}
	return refined.ComponentCount >= 2
}

// ratio is refined/base's metric ratio; a base of exactly 0 means
// "nothing to preserve", so any refined value trivially passes (a ratio
// threshold comparing two zeros is meaningless otherwise).
func ratio(value, base float64) float64 {
	if base <= 0 {
		return 1
	}
	return value / base
}
