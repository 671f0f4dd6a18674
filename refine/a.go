/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package refine

import (
	"strings"

	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/config"
	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/layout"
)

const (
	// a1MaxRemovalFrac bounds A1's own contribution (§4.5 "at most 25%
	// of baseline height removed at A1").
	a1MaxRemovalFrac = 0.25
	// totalAMaxRemovalFrac bounds the whole of Phase A (§4.5 contract).
	totalAMaxRemovalFrac = 0.50

	minParagraphFont = 7.0
	maxParagraphFont = 16.0
)

// lineInfo is a text line reduced to the fields Phase A's geometry needs.
type lineInfo struct {
	bbox    geometry.Rect
	text    string
	hasPara bool // has a span in [minParagraphFont,maxParagraphFont]
}

func flattenLines(blocks []backend.TextBlock) []lineInfo {
	var out []lineInfo
	for _, block := range blocks {
		for _, line := range block.Lines {
			li := lineInfo{bbox: line.BBox, text: line.Text()}
			for _, sp := range line.Spans {
				if sp.FontSize >= minParagraphFont && sp.FontSize <= maxParagraphFont {
					li.hasPara = true
					break
				}
			}
			out = append(out, li)
		}
	}
	return out
}

// isParagraphShaped reports whether a line counts as body text for A1/A2
// (§4.5: "width >= 0.5*window width; font in [7,16] pt").
func isParagraphShaped(l lineInfo, windowWidth float64) bool {
	return l.hasPara && l.bbox.Width() >= 0.5*windowWidth
}

// isCaptionPrefix protects the caption's own (possibly multi-line) text
// from being trimmed by A1/A2/A3 (§4.5 "multi-line captions themselves
// are protected").
func isCaptionPrefix(l lineInfo, capText string) bool {
	lt := strings.TrimSpace(l.text)
	ct := strings.TrimSpace(capText)
	if lt == "" || ct == "" {
		return false
	}
	return strings.HasPrefix(ct, lt) || strings.HasPrefix(lt, ct)
}

// PhaseA runs the three text-trim sub-phases plus the exact-two-line
// heuristic (§4.5), returning the trimmed rect and a trace of the
// sub-phases that actually moved an edge.
func PhaseA(c config.Config, above bool, capText string, window geometry.Rect, blocks []backend.TextBlock, layoutModel *layout.Model) (geometry.Rect, []string) {
	if window.IsEmpty() {
		return window, nil
	}
	lines := flattenLines(blocks)
	baselineHeight := window.Height()
	var trace []string

	nearY := window.NearY(above)
	farY := window.FarY(above)
	width := window.Width()

	if newNear, ok := tryExactTwoLine(lines, above, nearY, c, capText); ok {
		nearY = newNear
		trace = append(trace, "A-exact-two-line")
	} else {
		n1 := a1NearAdjacent(lines, above, nearY, c.AdjacentThPt, capText, width)
		if moved(above, nearY, n1) {
			limit := clampRemoval(above, nearY, n1, baselineHeight*a1MaxRemovalFrac)
			if limit != nearY {
				nearY = limit
				trace = append(trace, "A1")
			}
		}
		n2 := a2NearDistant(lines, above, nearY, c.AdjacentThPt, c.FarTextThPt, capText, width, c.Preset)
		if moved(above, nearY, n2) {
			nearY = n2
			trace = append(trace, "A2")
		}
	}

	n3 := a3FarSide(lines, above, nearY, farY, c.FarSideMinDistPt, c.FarSideParaMinRatio, width, layoutModel)
	if moved(!above, farY, n3) {
		farY = n3
		trace = append(trace, "A3")
	}

	removed := baselineHeight - absDiff(nearY, farY)
	if removed > baselineHeight*totalAMaxRemovalFrac {
		// Total-A contract: grow the near edge back out just enough to
		// stay within the 50% cap, keeping the far-side trim intact.
		over := removed - baselineHeight*totalAMaxRemovalFrac
		nearY = shiftBack(above, nearY, over)
	}

	result := window
	result = result.WithNearEdge(above, nearY)
	result = result.WithFarEdge(above, farY)
	if result.IsEmpty() || result.Height() <= 0 {
		return window, nil
	}
	return result, trace
}

// moved reports whether an edge actually changed value.
func moved(above bool, from, to float64) bool {
	_ = above
	return to != from
}

// absDiff returns |a-b|.
func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

// clampRemoval limits how far the near edge may move from `from` so that
// no more than maxRemoval points are trimmed.
func clampRemoval(above bool, from, to, maxRemoval float64) float64 {
	delta := to - from
	if delta < 0 {
		delta = -delta
	}
	if delta <= maxRemoval {
		return to
	}
	_ = above
	if to > from {
		return from + maxRemoval
	}
	return from - maxRemoval
}

// shiftBack moves the near edge back toward its original position by d
// points, reducing how much Phase A removed.
func shiftBack(above bool, nearY, d float64) float64 {
	if above {
		return nearY - d
	}
	return nearY + d
}

// a1NearAdjacent trims paragraph-shaped lines within adjacentTh of the
// near edge (§4.5 A1).
func a1NearAdjacent(lines []lineInfo, above bool, nearY, adjacentTh float64, capText string, width float64) float64 {
	edge := nearY
	for _, l := range lines {
		if isCaptionPrefix(l, capText) {
			continue
		}
		if !isParagraphShaped(l, width) {
			continue
		}
		dist := distFromEdge(above, nearY, l.bbox)
		if dist < 0 || dist > adjacentTh {
			continue
		}
		edge = pushPast(above, edge, l.bbox)
	}
	return edge
}

// a2NearDistant trims the mid band (adjacentTh, farTextTh] when
// aggregated paragraph coverage there is >=30% (§4.5 A2). In "robust"
// preset mode the whole mid band is trimmed at once (aggressive);
// otherwise only runs of lines with <20pt gaps between them trim
// (conservative).
func a2NearDistant(lines []lineInfo, above bool, nearY, adjacentTh, farTextTh float64, capText string, width float64, preset string) float64 {
	var band []lineInfo
	for _, l := range lines {
		if isCaptionPrefix(l, capText) {
			continue
		}
		if !isParagraphShaped(l, width) {
			continue
		}
		dist := distFromEdge(above, nearY, l.bbox)
		if dist <= adjacentTh || dist > farTextTh {
			continue
		}
		band = append(band, l)
	}
	if len(band) == 0 {
		return nearY
	}
	var covered float64
	for _, l := range band {
		covered += l.bbox.Height()
	}
	span := farTextTh - adjacentTh
	if span <= 0 || covered/span < 0.30 {
		return nearY
	}

	edge := nearY
	if preset == "robust" {
		for _, l := range band {
			edge = pushPast(above, edge, l.bbox)
		}
		return edge
	}
	// conservative: only trim consecutive runs whose gap is <20pt.
	sortByDistance(band, above, nearY)
	for i, l := range band {
		if i > 0 {
			gap := distFromEdge(above, nearY, l.bbox) - distFromEdge(above, nearY, band[i-1].bbox)
			if gap >= 20 {
				break
			}
		}
		edge = pushPast(above, edge, l.bbox)
	}
	return edge
}

// a3FarSide trims the far side when paragraph coverage beyond
// farSideMinDist is >= the configured ratio, falling back to a
// bullet/long-line heuristic (§4.5 A3). The far-side font-range Open
// Question (§9 #1) is resolved: the paragraph-shaped rule keeps the
// [7,16] range, the character-count fallback does not.
func a3FarSide(lines []lineInfo, above bool, nearY, farY, farSideMinDist, minRatio float64, width float64, layoutModel *layout.Model) float64 {
	var farLines []lineInfo
	for _, l := range lines {
		dist := distFromEdge(above, nearY, l.bbox)
		if dist <= farSideMinDist {
			continue
		}
		// Only consider lines actually on the far side of the window.
		if above && l.bbox.Y1 > nearY {
			continue
		}
		if !above && l.bbox.Y0 < nearY {
			continue
		}
		farLines = append(farLines, l)
	}

	edge := farY
	// Chapter-title mask (§4.10b): a title block overlapping the far
	// side is vetoed from the crop regardless of the paragraph-coverage
	// test below.
	for _, t := range layoutModel.TitleOverlaps(geometry.New(0, minF(nearY, farY), 1e9, maxF(nearY, farY))) {
		edge = pushPastFar(above, edge, t)
	}

	if len(farLines) == 0 {
		return edge
	}
	farY = edge

	var paraCovered float64
	for _, l := range farLines {
		if isParagraphShaped(l, width) {
			paraCovered += l.bbox.Height()
		}
	}
	span := absDiff(nearY, farY) - farSideMinDist
	if span > 0 && paraCovered/span >= minRatio {
		for _, l := range farLines {
			if isParagraphShaped(l, width) {
				edge = pushPastFar(above, edge, l.bbox)
			}
		}
		return edge
	}

	// Fallback heuristic: bullets or long text lines beyond escalating
	// distance thresholds.
	for _, l := range farLines {
		trimmed := strings.TrimSpace(l.text)
		dist := distFromEdge(above, nearY, l.bbox)
		isBullet := strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "·")
		longEnough := (dist > 15 && len(trimmed) > 60) || (dist > 20 && len(trimmed) > 30) || dist > 25
		if isBullet || longEnough {
			edge = pushPastFar(above, edge, l.bbox)
		}
	}
	return edge
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// distFromEdge returns the distance of bbox from the near edge, measured
// along the axis away from the caption; negative if bbox sits on the
// wrong side.
func distFromEdge(above bool, nearY float64, bbox geometry.Rect) float64 {
	if above {
		return nearY - bbox.Y1
	}
	return bbox.Y0 - nearY
}

// pushPast moves the near edge past bbox, away from the caption.
func pushPast(above bool, edge float64, bbox geometry.Rect) float64 {
	if above {
		if bbox.Y0 < edge {
			return bbox.Y0
		}
		return edge
	}
	if bbox.Y1 > edge {
		return bbox.Y1
	}
	return edge
}

// pushPastFar moves the far edge inward, just past bbox (toward the
// caption), shrinking the window from the far side.
func pushPastFar(above bool, edge float64, bbox geometry.Rect) float64 {
	if above {
		// far edge for "above" is Y0 (the top); pushing inward raises it.
		if bbox.Y1 > edge {
			return bbox.Y1
		}
		return edge
	}
	if bbox.Y0 < edge {
		return bbox.Y0
	}
	return edge
}

func sortByDistance(lines []lineInfo, above bool, nearY float64) {
	for i := 1; i < len(lines); i++ {
		for j := i; j > 0 && distFromEdge(above, nearY, lines[j].bbox) < distFromEdge(above, nearY, lines[j-1].bbox); j-- {
			lines[j], lines[j-1] = lines[j-1], lines[j]
		}
	}
}

// tryExactTwoLine implements the "Abstract tail + blank" protection
// (§4.5): if the band up to 3.5*L from the near edge contains exactly
// two aligned lines whose combined height matches 2*L within 35%, trim
// them as a single unit.
func tryExactTwoLine(lines []lineInfo, above bool, nearY float64, c config.Config, capText string) (float64, bool) {
	l := c.AdjacentThPt / 2.0 // adjacentTh == 2.0*L, so L == adjacentTh/2
	if l <= 0 {
		return 0, false
	}
	band := 3.5 * l
	var candidates []lineInfo
	for _, li := range lines {
		if isCaptionPrefix(li, capText) {
			continue
		}
		dist := distFromEdge(above, nearY, li.bbox)
		if dist < 0 || dist > band {
			continue
		}
		candidates = append(candidates, li)
	}
	if len(candidates) != 2 {
		return 0, false
	}
	combined := candidates[0].bbox.Height() + candidates[1].bbox.Height()
	target := 2 * l
	tolerance := target * 0.35
	if absDiff(combined, target) > tolerance {
		return 0, false
	}
	edge := nearY
	for _, li := range candidates {
		edge = pushPast(above, edge, li.bbox)
	}
	return edge, true
}
