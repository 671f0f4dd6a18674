/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package backend

import (
	"strings"

	"github.com/figtable/attachcore/extractor"
	"github.com/figtable/attachcore/geometry"
)

// TextDict returns the page's text grouped into blocks of lines of
// spans, in reading order, in top-down page coordinates (§3
// TextSpan/Line/Block). The extractor's own reading-order marks only
// flag paragraph boundaries explicitly (a run of two Meta "\n" marks,
// see extractor.PageText.computeViews); line boundaries within a
// paragraph are recovered geometrically here by comparing consecutive
// spans' vertical centers (sameLine).
func (p *Page) TextDict() ([]TextBlock, error) {
	pageText, _, _, err := p.ext.ExtractPageText()
	if err != nil {
		return nil, err
	}
	marks := pageText.Marks().Elements()
	return p.groupMarks(marks), nil
}

func (p *Page) groupMarks(marks []extractor.TextMark) []TextBlock {
	var blocks []TextBlock
	var curBlock []TextLine
	var curLine []TextSpan
	newlineRun := 0

	flushLine := func() {
		if len(curLine) == 0 {
			return
		}
		line := TextLine{Spans: curLine}
		for _, s := range curLine {
			line.BBox = line.BBox.Union(s.BBox)
		}
		curBlock = append(curBlock, line)
		curLine = nil
	}
	flushBlock := func() {
		flushLine()
		if len(curBlock) == 0 {
			return
		}
		block := TextBlock{Lines: curBlock}
		for _, l := range curBlock {
			block.BBox = block.BBox.Union(l.BBox)
		}
		blocks = append(blocks, block)
		curBlock = nil
	}

	for _, tm := range marks {
		if tm.Meta && tm.Text == "\n" {
			newlineRun++
			flushLine()
			if newlineRun >= 2 {
				flushBlock()
			}
			continue
		}
		if tm.Meta && strings.TrimSpace(tm.Text) == "" {
			// A space/meta mark that isn't a line break: keep accumulating
			// the current line, but don't reset the newline run.
			continue
		}
		newlineRun = 0
		if strings.TrimSpace(tm.Text) == "" {
			continue
		}

		bbox := p.topDown(tm.BBox)
		fontName := ""
		if tm.Font != nil {
			fontName = tm.Font.BaseFont()
		}
		lower := strings.ToLower(fontName)

		span := TextSpan{
			Text:     tm.Text,
			BBox:     bbox,
			Font:     fontName,
			FontSize: tm.FontSize,
			Bold:     strings.Contains(lower, "bold") || strings.Contains(lower, "black") || strings.Contains(lower, "heavy"),
			Italic:   strings.Contains(lower, "italic") || strings.Contains(lower, "oblique"),
		}

		if n := len(curLine); n > 0 && sameLine(curLine[n-1].BBox, span.BBox) {
			curLine = append(curLine, span)
		} else {
			flushLine()
			curLine = append(curLine, span)
		}
	}
	flushBlock()
	return blocks
}

// sameLine reports whether two adjacent span bboxes belong on the same
// baseline: their vertical centers are within a third of the shorter
// span's height.
func sameLine(a, b geometry.Rect) bool {
	ha, hb := a.Height(), b.Height()
	tol := ha
	if hb < tol {
		tol = hb
	}
	tol = tol/3 + 0.5
	return absf(a.CenterY()-b.CenterY()) <= tol
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
