/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/config"
	"github.com/figtable/attachcore/geometry"
)

func paraLine(x0, y0, x1, y1, fontSize float64) backend.TextLine {
	r := geometry.New(x0, y0, x1, y1)
	return backend.TextLine{BBox: r, Spans: []backend.TextSpan{{Text: "a full width paragraph line of body text", FontSize: fontSize, BBox: r}}}
}

func TestPhaseATrimsAdjacentParagraphLine(t *testing.T) {
	c := config.Default()
	window := geometry.New(0, 0, 600, 200)
	// A line hugging the near edge (above=true -> near edge is Y1=200).
	block := backend.TextBlock{Lines: []backend.TextLine{paraLine(0, 185, 600, 199, 10)}}

	rect, trace := PhaseA(c, true, "Figure 1: caption", window, []backend.TextBlock{block}, nil)
	assert.Contains(t, trace, "A1")
	assert.Less(t, rect.Y1, window.Y1, "A1 should have pulled the near edge in from the adjacent paragraph line")
}

func TestPhaseALeavesCaptionPrefixUntrimmed(t *testing.T) {
	c := config.Default()
	window := geometry.New(0, 0, 600, 200)
	capText := "Figure 1: a caption that repeats in the window"
	block := backend.TextBlock{Lines: []backend.TextLine{paraLine(0, 185, 600, 199, 10)}}
	block.Lines[0].Spans[0].Text = capText
	block.Lines[0].BBox = block.Lines[0].Spans[0].BBox

	rect, trace := PhaseA(c, true, capText, window, []backend.TextBlock{block}, nil)
	assert.Empty(t, trace, "a line matching the caption text itself must never be trimmed")
	assert.Equal(t, window, rect)
}

func TestPhaseAReturnsWindowUnchangedWhenEmpty(t *testing.T) {
	c := config.Default()
	empty := geometry.Rect{}
	rect, trace := PhaseA(c, true, "", empty, nil, nil)
	assert.Equal(t, empty, rect)
	assert.Nil(t, trace)
}

func TestComputeMetricsEmptyRectIsZeroValue(t *testing.T) {
	m := ComputeMetrics(geometry.Rect{}, nil, nil, nil)
	assert.Equal(t, Metrics{}, m)
}

func TestComputeMetricsCountsOverlappingInk(t *testing.T) {
	rect := geometry.New(0, 0, 100, 100)
	blocks := []backend.TextBlock{{Lines: []backend.TextLine{paraLine(0, 0, 100, 50, 10)}}}
	drawings := []backend.DrawingObject{{BBox: geometry.New(0, 50, 100, 100)}}

	m := ComputeMetrics(rect, blocks, drawings, nil)
	assert.InDelta(t, 100, m.Height, 1e-9)
	assert.InDelta(t, 10000, m.Area, 1e-9)
	assert.InDelta(t, 1.0, m.InkDensity, 1e-6, "the paragraph line and drawing together should fully cover rect")
	assert.Equal(t, 1, m.TextLineCount)
}

func TestFarCoverageUsesFarHalfOnly(t *testing.T) {
	baseline := geometry.New(0, 0, 100, 100)
	// Above=true: far half is the top half, y in [0,50].
	nearLine := paraLine(0, 60, 100, 90, 10)
	farLine := paraLine(0, 0, 100, 40, 10)

	covFar := FarCoverage(baseline, true, []backend.TextBlock{{Lines: []backend.TextLine{farLine}}})
	covNear := FarCoverage(baseline, true, []backend.TextBlock{{Lines: []backend.TextLine{nearLine}}})
	assert.Greater(t, covFar, 0.0)
	assert.Equal(t, 0.0, covNear, "a line entirely in the near half must not contribute to far coverage")
}

func TestRunSkipsPhaseDWhenAutocropOffOrPageNil(t *testing.T) {
	c := config.Default()
	c.Autocrop = false
	baseline := geometry.New(0, 0, 200, 200)

	p := Run(c, Input{IsFigure: true, Above: true, Baseline: baseline, CapRect: geometry.New(0, 200, 200, 220)})
	assert.Equal(t, p.AfterB, p.AfterD)
	assert.NotContains(t, p.Trace, "D-error-fallback")
}

func TestRunWithTextTrimOffKeepsBaselineThroughPhaseA(t *testing.T) {
	c := config.Default()
	c.TextTrim = false
	c.Autocrop = false
	baseline := geometry.New(0, 0, 200, 200)

	p := Run(c, Input{IsFigure: true, Above: true, Baseline: baseline})
	require.Equal(t, baseline, p.AfterA)
}

func TestExpandFarEdgeStopsOnceObjectNoLongerFlush(t *testing.T) {
	window := geometry.New(0, 0, 200, 200)
	// Flush against the far edge after one 60pt step (window.Y0 == -60),
	// but nowhere near it after a second step: the loop must stop there
	// instead of walking all the way to objectPadExpandMax.
	objs := []geometry.Rect{geometry.New(0, -61, 200, 0)}

	result := expandFarEdge(objs, window, true)
	assert.InDelta(t, -120, result.Y0, 1e-9, "expansion should stop after the step that leaves the object no longer flush")
}

func TestExpandFarEdgeCapsAtObjectPadExpandMax(t *testing.T) {
	window := geometry.New(0, 0, 200, 200)
	// An object flush at every step boundary up to objectPadExpandMax
	// keeps the loop going; it must still stop at the 200pt cap.
	objs := []geometry.Rect{
		geometry.New(0, -60, 200, 0),
		geometry.New(0, -120, 200, 0),
		geometry.New(0, -180, 200, 0),
		geometry.New(0, -200, 200, 0),
	}

	result := expandFarEdge(objs, window, true)
	assert.InDelta(t, -200, result.Y0, 1e-9, "total expansion must not exceed objectPadExpandMax")
}

func TestApplyFarEdgeGuardClampsOverShrunkAboveWindow(t *testing.T) {
	window := geometry.New(0, 0, 100, 100)
	cropped := geometry.New(0, 15, 100, 100) // far edge (Y0) shrank inward by 15pt
	guarded := applyFarEdgeGuard(cropped, window, true, 10)
	assert.InDelta(t, 10, guarded.Y0, 1e-9, "a shrink past the guard must be clamped back to origFar+guardPt")
}

func TestApplyFarEdgeGuardLeavesWithinGuardAboveWindowUntouched(t *testing.T) {
	window := geometry.New(0, 0, 100, 100)
	cropped := geometry.New(0, 5, 100, 100) // far edge shrank inward by only 5pt, within the 10pt guard
	guarded := applyFarEdgeGuard(cropped, window, true, 10)
	assert.InDelta(t, 5, guarded.Y0, 1e-9, "a shrink within the guard must not be altered")
}

func TestApplyFarEdgeGuardClampsOverShrunkBelowWindow(t *testing.T) {
	window := geometry.New(0, 0, 100, 100)
	cropped := geometry.New(0, 0, 100, 85) // far edge (Y1) shrank inward by 15pt
	guarded := applyFarEdgeGuard(cropped, window, false, 10)
	assert.InDelta(t, 90, guarded.Y1, 1e-9, "a shrink past the guard must be clamped back to origFar-guardPt")
}

func TestApplyFarEdgeGuardLeavesWithinGuardBelowWindowUntouched(t *testing.T) {
	window := geometry.New(0, 0, 100, 100)
	cropped := geometry.New(0, 0, 100, 95) // far edge shrank inward by only 5pt, within the 10pt guard
	guarded := applyFarEdgeGuard(cropped, window, false, 10)
	assert.InDelta(t, 95, guarded.Y1, 1e-9, "a shrink within the guard must not be altered")
}
