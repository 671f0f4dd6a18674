/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/caption"
	"github.com/figtable/attachcore/config"
	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/ident"
)

func fig(id string, rect geometry.Rect) caption.Caption {
	return caption.Caption{Kind: caption.Figure, Ident: ident.ID{Text: id}, Page: 1, Rect: rect, Score: 80}
}

func basePageContext() PageContext {
	return PageContext{
		PageRect:          geometry.New(0, 0, 612, 792),
		PrevCaptionBottom: 0,
		NextCaptionTop:    792,
	}
}

func noVote() (Side, bool) { return 0, false }

// denseDrawingBelow returns a drawing object filling most of the window
// below a caption ending at capBottom, enough to make the below window
// outscore an empty above window.
func denseDrawingBelow(capBottom float64) []backend.DrawingObject {
	return []backend.DrawingObject{{BBox: geometry.New(20, capBottom+10, 592, capBottom+400)}}
}

func TestSelectForcedAboveWinsRegardlessOfScore(t *testing.T) {
	c := config.Default()
	c.AnchorMode = config.AnchorV1
	c.ForceAboveIDs = map[string]bool{"1": true}
	cap := fig("1", geometry.New(20, 600, 592, 620))

	choice := Select(c, cap, true, basePageContext(), noVote)
	assert.Equal(t, Above, choice.Side)
	assert.Contains(t, choice.ScanTrace, "v1-forced")
}

func TestSelectV1PrefersBelowWhenItScoresHigher(t *testing.T) {
	c := config.Default()
	c.AnchorMode = config.AnchorV1
	cap := fig("1", geometry.New(20, 400, 592, 420))
	ctx := basePageContext()
	ctx.Drawings = denseDrawingBelow(cap.Rect.Y1)

	choice := Select(c, cap, true, ctx, noVote)
	assert.Equal(t, Below, choice.Side)
}

func TestBaselineEmptyFallbackProducesCenteredRect(t *testing.T) {
	c := config.Default()
	cap := fig("1", geometry.New(20, 400, 592, 420))

	choice := baselineEmpty(c, cap, Above, false)
	require.True(t, choice.Degenerate)
	assert.InDelta(t, cap.Rect.CenterY(), choice.Baseline.CenterY(), 1e-6)
	assert.InDelta(t, c.ClipHeightPt, choice.Baseline.Height(), 1e-6)
}

func TestPreflightDecidesBelowWhenMarginCleared(t *testing.T) {
	c := config.Default()
	c.GlobalAnchor = config.Auto
	c.GlobalAnchorMarginFig = 0.02

	ctx := basePageContext()
	ctx.Drawings = denseDrawingBelow(320)
	captions := []CaptionContext{
		{
			Caption: fig("1", geometry.New(20, 300, 592, 320)),
			Ctx:     ctx,
		},
	}

	vote := Preflight(c, captions, true)
	assert.True(t, vote.Decided)
	assert.Equal(t, Below, vote.Side)
	assert.Equal(t, "below", vote.String())
}

func TestPreflightStaysAutoWhenGlobalAnchorOff(t *testing.T) {
	c := config.Default()
	c.GlobalAnchor = config.Off

	vote := Preflight(c, nil, true)
	assert.False(t, vote.Decided)
	assert.Equal(t, "auto", vote.String())
}

func TestAsFuncReflectsDecidedVote(t *testing.T) {
	v := GlobalVote{Side: Below, Decided: true}
	side, ok := v.AsFunc()()
	assert.True(t, ok)
	assert.Equal(t, Below, side)

	v2 := GlobalVote{Decided: false}
	_, ok2 := v2.AsFunc()()
	assert.False(t, ok2)
}
