/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/geometry"
)

func titleBlock(text string, fontSize float64, rect geometry.Rect) backend.TextBlock {
	return backend.TextBlock{
		BBox: rect,
		Lines: []backend.TextLine{
			{BBox: rect, Spans: []backend.TextSpan{{Text: text, FontSize: fontSize, BBox: rect}}},
		},
	}
}

func paragraphBlock(rect geometry.Rect, lines int) backend.TextBlock {
	b := backend.TextBlock{BBox: rect}
	lineHeight := rect.Height() / float64(lines)
	for i := 0; i < lines; i++ {
		y0 := rect.Y0 + float64(i)*lineHeight
		lr := geometry.New(rect.X0, y0, rect.X1, y0+lineHeight)
		b.Lines = append(b.Lines, backend.TextLine{
			BBox:  lr,
			Spans: []backend.TextSpan{{Text: "a run of ordinary paragraph text", FontSize: 10, BBox: lr}},
		})
	}
	return b
}

func TestBuildReturnsErrorForEmptyPage(t *testing.T) {
	m, err := Build(nil, 10)
	assert.Nil(t, m)
	require.Error(t, err)
	var be *BuildError
	assert.ErrorAs(t, err, &be)
}

func TestBuildClassifiesShortLargeFontLineAsTitle(t *testing.T) {
	rect := geometry.New(72, 40, 300, 60)
	blocks := []backend.TextBlock{titleBlock("Introduction", 16, rect)}

	m, err := Build(blocks, 10)
	require.NoError(t, err)
	require.Len(t, m.Titles, 1)
	assert.Empty(t, m.Paragraphs)
	assert.Equal(t, rect, m.Titles[0])
}

func TestBuildDoesNotClassifySentenceEndingLineAsTitle(t *testing.T) {
	rect := geometry.New(72, 40, 300, 60)
	blocks := []backend.TextBlock{titleBlock("This is a sentence.", 16, rect)}

	m, err := Build(blocks, 10)
	require.NoError(t, err)
	assert.Empty(t, m.Titles)
}

func TestBuildClassifiesMultiLineBlockAsParagraph(t *testing.T) {
	rect := geometry.New(72, 100, 500, 220)
	blocks := []backend.TextBlock{paragraphBlock(rect, 4)}

	m, err := Build(blocks, 10)
	require.NoError(t, err)
	assert.Empty(t, m.Titles)
	require.Len(t, m.Paragraphs, 1)
	assert.Equal(t, rect, m.Paragraphs[0])
}

func TestParagraphPenaltyIsZeroForNilModel(t *testing.T) {
	var m *Model
	assert.Equal(t, 0.0, m.ParagraphPenalty(geometry.New(0, 0, 10, 10)))
}

func TestParagraphPenaltyScalesWithOverlapFraction(t *testing.T) {
	m := &Model{Paragraphs: []geometry.Rect{geometry.New(0, 0, 50, 100)}}
	window := geometry.New(0, 0, 100, 100)

	penalty := m.ParagraphPenalty(window)
	assert.InDelta(t, 0.5, penalty, 1e-9)
}

func TestTitleOverlapsFindsOnlyIntersectingTitles(t *testing.T) {
	m := &Model{Titles: []geometry.Rect{
		geometry.New(0, 0, 50, 50),
		geometry.New(200, 200, 250, 250),
	}}

	hits := m.TitleOverlaps(geometry.New(10, 10, 60, 60))
	require.Len(t, hits, 1)
	assert.Equal(t, m.Titles[0], hits[0])
}

func TestTitleOverlapsIsEmptyForNilModel(t *testing.T) {
	var m *Model
	assert.Nil(t, m.TitleOverlaps(geometry.New(0, 0, 10, 10)))
}
