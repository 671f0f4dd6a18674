/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package layout implements the optional §4.10 layout model: a coarse
// paragraph/title block classifier built from the same TextBlock data
// every other stage already has. It is guidance only -- every consumer
// must degrade gracefully when a *Model is nil (layout_driven=off, or
// BuildError).
package layout

import (
	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/geometry"
)

// BuildError reports that the layout model could not be built for a
// page; callers treat this as non-fatal (§7 LayoutModelUnavailable) and
// proceed unguided.
type BuildError struct {
	Reason string
}

func (e *BuildError) Error() string { return "layout: " + e.Reason }

// Model holds the two inputs §4.10 says the layout model contributes:
// paragraph blocks (downweight overlapping anchor windows) and title
// blocks (vetoed from Phase A3's far-side crop, a "chapter-title mask").
type Model struct {
	Paragraphs []geometry.Rect
	Titles     []geometry.Rect
}

const (
	titleMaxChars    = 80
	titleMinFontSize = 11.0
	paragraphMinLine = 3
)

// Build classifies a page's text blocks into paragraph and title blocks.
// A block is a title when it is a single short line with an
// above-typical font size and no trailing sentence punctuation; it is a
// paragraph when it has at least paragraphMinLine lines of roughly
// full-width text. Everything else is left unclassified (neither list).
func Build(blocks []backend.TextBlock, typicalFontSize float64) (*Model, error) {
	if len(blocks) == 0 {
		return nil, &BuildError{Reason: "no text blocks on page"}
	}
	m := &Model{}
	for _, block := range blocks {
		if len(block.Lines) == 1 {
			line := block.Lines[0]
			text := line.Text()
			maxFont := 0.0
			for _, sp := range line.Spans {
				if sp.FontSize > maxFont {
					maxFont = sp.FontSize
				}
			}
			threshold := titleMinFontSize
			if typicalFontSize > 0 {
				threshold = typicalFontSize * 1.15
			}
			if len(text) <= titleMaxChars && maxFont >= threshold && !endsWithSentencePunct(text) {
				m.Titles = append(m.Titles, block.BBox)
				continue
			}
		}
		if len(block.Lines) >= paragraphMinLine {
			m.Paragraphs = append(m.Paragraphs, block.BBox)
		}
	}
	return m, nil
}

func endsWithSentencePunct(s string) bool {
	for _, suffix := range []string{".", "。", "!", "?"} {
		if len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix {
			return true
		}
	}
	return false
}

// ParagraphPenalty returns the fraction of window's area covered by
// known paragraph blocks, a downweight anchor scoring subtracts from a
// candidate window's score when the layout model is available (§4.10a).
func (m *Model) ParagraphPenalty(window geometry.Rect) float64 {
	if m == nil || window.IsEmpty() {
		return 0
	}
	var covered float64
	for _, p := range m.Paragraphs {
		covered += p.Intersect(window).Area()
	}
	area := window.Area()
	if area <= 0 {
		return 0
	}
	frac := covered / area
	if frac > 1 {
		frac = 1
	}
	return frac
}

// TitleOverlaps returns every title block overlapping rect, used by
// Phase A3 to veto section headings from the far-side crop (§4.10b).
func (m *Model) TitleOverlaps(rect geometry.Rect) []geometry.Rect {
	if m == nil {
		return nil
	}
	var out []geometry.Rect
	for _, t := range m.Titles {
		if t.Overlaps(rect) {
			out = append(out, t)
		}
	}
	return out
}
