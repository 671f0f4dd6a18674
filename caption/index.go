/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package caption

import (
	"strings"

	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/ident"
)

var (
	captionKeywords = []string{"shows", "illustrates", "展示", "comparison"}
	referenceKeywords = []string{"as shown in", "如图所示", "see figure", "see table"}
)

// flatLine is one text line in page reading order, carrying enough
// context (sibling count within its block) to score Format/Structure.
type flatLine struct {
	text        string
	rect        geometry.Rect
	bold        bool
	soloInBlock bool
}

func flatten(blocks []backend.TextBlock) []flatLine {
	var lines []flatLine
	for _, block := range blocks {
		for _, line := range block.Lines {
			bold := false
			for _, sp := range line.Spans {
				if sp.Bold {
					bold = true
					break
				}
			}
			lines = append(lines, flatLine{
				text:        line.Text(),
				rect:        line.BBox,
				bold:        bold,
				soloInBlock: len(block.Lines) == 1,
			})
		}
	}
	return lines
}

// BuildIndex scans every text line on the page and returns one Candidate
// per line that opens with a figure/table caption marker (§4.3 index
// build).
func BuildIndex(page *backend.Page) ([]Candidate, error) {
	blocks, err := page.TextDict()
	if err != nil {
		return nil, err
	}
	drawings, err := page.Drawings()
	if err != nil {
		return nil, err
	}
	images, err := page.ImageRects()
	if err != nil {
		return nil, err
	}

	lines := flatten(blocks)
	var objBoxes []geometry.Rect
	for _, d := range drawings {
		objBoxes = append(objBoxes, d.BBox)
	}
	for _, im := range images {
		objBoxes = append(objBoxes, im.BBox)
	}

	var candidates []Candidate
	for i, line := range lines {
		kind, idText, ok := matchCaptionLine(line.text)
		if !ok {
			continue
		}
		id, err := ident.Parse(idText)
		if err != nil {
			continue
		}
		var next string
		if i+1 < len(lines) {
			next = strings.TrimSpace(lines[i+1].text)
		}
		candidates = append(candidates, Candidate{
			Kind:       kind,
			Ident:      id,
			Page:       page.Number(),
			Rect:       line.rect,
			Text:       line.text,
			Components: scoreLine(line, next, objBoxes),
		})
	}
	return candidates, nil
}

// scoreLine computes the 4-axis score for a caption candidate (§4.3).
func scoreLine(line flatLine, next string, objBoxes []geometry.Rect) ScoreComponents {
	return ScoreComponents{
		Position:  positionScore(line.rect, objBoxes),
		Format:    formatScore(line),
		Structure: structureScore(line.text, next),
		Context:   contextScore(line.text, next),
	}
}

func positionScore(r geometry.Rect, objBoxes []geometry.Rect) float64 {
	if len(objBoxes) == 0 {
		return 0
	}
	best := -1.0
	for _, obj := range objBoxes {
		d := rectGap(r, obj)
		if best < 0 || d < best {
			best = d
		}
	}
	switch {
	case best < 10:
		return 40
	case best < 20:
		return 35
	case best < 40:
		return 28
	case best < 80:
		return 18
	case best < 150:
		return 8
	default:
		return 0
	}
}

// rectGap is the gap between two rects: 0 if they overlap, the vertical
// gap if their x-ranges overlap (the common caption/figure relationship),
// otherwise the Euclidean distance between their nearest corners.
func rectGap(a, b geometry.Rect) float64 {
	if a.Overlaps(b) {
		return 0
	}
	xOverlap := a.X0 < b.X1 && b.X0 < a.X1
	if xOverlap {
		if a.Y1 <= b.Y0 {
			return b.Y0 - a.Y1
		}
		return a.Y0 - b.Y1
	}
	dx := 0.0
	if a.X1 < b.X0 {
		dx = b.X0 - a.X1
	} else if b.X1 < a.X0 {
		dx = a.X0 - b.X1
	}
	dy := 0.0
	if a.Y1 < b.Y0 {
		dy = b.Y0 - a.Y1
	} else if b.Y1 < a.Y0 {
		dy = a.Y0 - b.Y1
	}
	return dx + dy // Manhattan distance is enough for this thresholded score
}

func formatScore(line flatLine) float64 {
	score := 0.0
	if line.bold {
		score += 15
	}
	if line.soloInBlock {
		score += 10
	}
	trimmed := strings.TrimRight(strings.TrimSpace(line.text), " ")
	for _, suffix := range []string{".", ":", "：", "。"} {
		if strings.HasSuffix(trimmed, suffix) {
			score += 5
			break
		}
	}
	return score
}

func structureScore(text, next string) float64 {
	score := 0.0
	next = strings.TrimSpace(next)
	if len(next) >= 3 && len(next) < 300 {
		score += 12
	}
	if len(text) >= 300 {
		score -= 8
	}
	return score
}

func contextScore(text, next string) float64 {
	haystack := strings.ToLower(text + " " + next)
	score := 0.0
	for _, kw := range captionKeywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			score += 10
			break
		}
	}
	for _, kw := range referenceKeywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			score -= 15
			break
		}
	}
	return score
}
