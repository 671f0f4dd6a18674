/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package caption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/ident"
)

func TestMatchCaptionLineFigure(t *testing.T) {
	cases := []struct {
		text     string
		wantKind Kind
		wantID   string
	}{
		{"Figure 1: Overview of the pipeline.", Figure, "1"},
		{"Fig. 2 shows the results.", Figure, "2"},
		{"Extended Data Figure A1. Supplementary detail.", Figure, "A1"},
		{"Supplementary Figure S1: raw counts.", Figure, "S1"},
		{"图1：总体流程。", Figure, "1"},
		{"Table IV: Ablation study.", Table, "IV"},
		{"表2 对比结果", Table, "2"},
	}
	for _, tc := range cases {
		kind, id, ok := matchCaptionLine(tc.text)
		require.True(t, ok, tc.text)
		assert.Equal(t, tc.wantKind, kind, tc.text)
		assert.Equal(t, tc.wantID, id, tc.text)
	}
}

func TestMatchCaptionLineRejectsMentions(t *testing.T) {
	_, _, ok := matchCaptionLine("As shown in Figure 1, the results are consistent.")
	assert.False(t, ok)

	_, _, ok = matchCaptionLine("This is a sentence about figures in general.")
	assert.False(t, ok)
}

func TestPositionScoreThresholds(t *testing.T) {
	caption := geometry.New(100, 200, 300, 212)
	near := geometry.New(100, 100, 300, 195) // 5pt gap
	assert.Equal(t, 40.0, positionScore(caption, []geometry.Rect{near}))

	far := geometry.New(100, 0, 300, 100) // 100pt gap
	assert.Equal(t, 8.0, positionScore(caption, []geometry.Rect{far}))

	assert.Equal(t, 0.0, positionScore(caption, nil))
}

func TestFormatScoreBoldSoloPunctuated(t *testing.T) {
	line := flatLine{text: "Figure 1: Overview.", bold: true, soloInBlock: true}
	assert.Equal(t, 30.0, formatScore(line))

	plain := flatLine{text: "Figure 1 continues without punctuation", bold: false, soloInBlock: false}
	assert.Equal(t, 0.0, formatScore(plain))
}

func TestSelectAcceptsMaxAboveThreshold(t *testing.T) {
	weak := Candidate{Kind: Figure, Page: 1, Text: "Figure 1"}
	weak.Components = ScoreComponents{Position: 0, Format: 0, Structure: 0, Context: 0}
	id, err := ident.Parse("1")
	require.NoError(t, err)
	weak.Ident = id

	strong := weak
	strong.Components = ScoreComponents{Position: 40, Format: 15}

	captions, uncertain := Select([]Candidate{weak, strong}, false)
	require.Len(t, captions, 1)
	assert.Equal(t, strong.Score(), captions[0].Score)
	assert.Empty(t, uncertain)
}

func TestSelectMarksUncertainBelowThreshold(t *testing.T) {
	id, err := ident.Parse("2")
	require.NoError(t, err)
	weak := Candidate{Kind: Table, Page: 1, Ident: id, Components: ScoreComponents{Position: 8}}

	captions, uncertain := Select([]Candidate{weak}, false)
	assert.Empty(t, captions)
	require.Len(t, uncertain, 1)
	assert.Equal(t, Table, uncertain[0].Kind)
}
