/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/refine"
)

func baselineRect() geometry.Rect {
	return geometry.New(0, 0, 100, 100)
}

func TestDecideAcceptsRefinedWhenAllRatiosClearTopTier(t *testing.T) {
	base := refine.Metrics{Height: 100, Area: 10000, InkDensity: 0.5, ObjectCoverage: 0.5, ComponentCount: 1}
	p := refine.Pipeline{
		Baseline:        baselineRect(),
		AfterD:          baselineRect(),
		BaselineMetrics: base,
		AfterDMetrics:   base,
		FarCoverage:     0.65,
	}

	d := Decide(p)
	assert.Equal(t, Refined, d.Stage)
	assert.Equal(t, p.AfterD, d.Rect)
}

func TestDecideFallsBackToAOnlyWhenRefinedFailsTier(t *testing.T) {
	base := refine.Metrics{Height: 100, Area: 10000, InkDensity: 0.5, ObjectCoverage: 0.5, ComponentCount: 1}
	refined := refine.Metrics{Height: 10, Area: 100, InkDensity: 0.1, ObjectCoverage: 0.1, ComponentCount: 1}
	aOnly := refine.Metrics{Height: 70, Area: 6000, InkDensity: 0.5, ObjectCoverage: 0.5, ComponentCount: 1}

	p := refine.Pipeline{
		Baseline:        baselineRect(),
		AfterA:          geometry.New(0, 0, 100, 70),
		AfterD:          geometry.New(0, 0, 10, 10),
		BaselineMetrics: base,
		AfterAMetrics:   aOnly,
		AfterDMetrics:   refined,
		FarCoverage:     0.0,
	}

	d := Decide(p)
	assert.Equal(t, AOnly, d.Stage)
	assert.Equal(t, p.AfterA, d.Rect)
}

func TestDecideRevertsToBaselineWhenBothFail(t *testing.T) {
	base := refine.Metrics{Height: 100, Area: 10000, InkDensity: 0.5, ObjectCoverage: 0.5, ComponentCount: 1}
	poor := refine.Metrics{Height: 5, Area: 50, InkDensity: 0.05, ObjectCoverage: 0.05, ComponentCount: 1}

	p := refine.Pipeline{
		Baseline:        baselineRect(),
		AfterA:          geometry.New(0, 0, 10, 5),
		AfterD:          geometry.New(0, 0, 10, 5),
		BaselineMetrics: base,
		AfterAMetrics:   poor,
		AfterDMetrics:   poor,
		FarCoverage:     0.0,
	}

	d := Decide(p)
	assert.Equal(t, Baseline, d.Stage)
	assert.Equal(t, p.Baseline, d.Rect)
}

func TestDecideRejectsWhenComponentCountDrops(t *testing.T) {
	base := refine.Metrics{Height: 100, Area: 10000, InkDensity: 0.5, ObjectCoverage: 0.5, ComponentCount: 3}
	refined := refine.Metrics{Height: 100, Area: 10000, InkDensity: 0.5, ObjectCoverage: 0.5, ComponentCount: 1}
	aOnly := refine.Metrics{Height: 60, Area: 5600, InkDensity: 0.5, ObjectCoverage: 0.5, ComponentCount: 1}

	p := refine.Pipeline{
		Baseline:        baselineRect(),
		AfterA:          geometry.New(0, 0, 100, 60),
		AfterD:          baselineRect(),
		BaselineMetrics: base,
		AfterAMetrics:   aOnly,
		AfterDMetrics:   refined,
		FarCoverage:     0.65,
	}

	d := Decide(p)
	assert.Equal(t, AOnly, d.Stage, "component count drop from 3 to 1 must reject the refined stage even though ratios pass")
}

func TestTierForIsMonotoneInFarCoverage(t *testing.T) {
	low := tierFor(0.05)
	high := tierFor(0.65)
	assert.GreaterOrEqual(t, high.heightRatio, 0.0)
	assert.Less(t, high.heightRatio, low.heightRatio, "higher far_coverage must select a looser (lower-threshold) tier")
}

func TestRatioTreatsZeroBaselineAsPassing(t *testing.T) {
	assert.Equal(t, 1.0, ratio(0, 0))
	assert.Equal(t, 1.0, ratio(5, 0))
}
