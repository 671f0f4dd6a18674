/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package docmetrics estimates document-wide typography metrics -- typical
// font size, typical line height/gap, and column count -- by sampling a
// handful of pages. These metrics drive the adaptive thresholds consumed
// by the refine and caption-scoring packages (§4.2).
package docmetrics

import (
	"sort"

	"github.com/figtable/attachcore/backend"
)

// Metrics summarizes a document's typography for adaptive thresholding.
type Metrics struct {
	TypicalFontSize   float64
	TypicalLineHeight float64
	TypicalLineGap    float64
	MedianLineHeight  float64
	P75LineHeight     float64
	Columns           int
}

// defaultLineHeight is the conservative fallback used when too few lines
// survive the sampling filters to compute a robust aggregate.
const defaultLineHeight = 12.0

const (
	minLineHeight  = 3.0
	minLineWidth   = 10.0
	minSpanFont    = 8.0
	maxSpanFont    = 14.0
	maxSamplePages = 5
)

// Probe samples up to maxSamplePages pages of doc and returns its typical
// typography metrics.
func Probe(doc *backend.Document) (Metrics, error) {
	n := doc.PageCount()
	if n > maxSamplePages {
		n = maxSamplePages
	}

	var heights, fontSizes []float64
	var gaps []float64
	var columnStarts []float64

	for i := 1; i <= n; i++ {
		page, err := doc.Page(i)
		if err != nil {
			return Metrics{}, err
		}
		blocks, err := page.TextDict()
		if err != nil {
			continue
		}

		var prevLineY0 float64
		havePrev := false
		for _, block := range blocks {
			for _, line := range block.Lines {
				h := line.BBox.Height()
				w := line.BBox.Width()
				if h < minLineHeight || w < minLineWidth {
					continue
				}
				heights = append(heights, h)
				columnStarts = append(columnStarts, line.BBox.X0)
				for _, sp := range line.Spans {
					if sp.FontSize >= minSpanFont && sp.FontSize <= maxSpanFont {
						fontSizes = append(fontSizes, sp.FontSize)
					}
				}
				if havePrev {
					gap := line.BBox.Y0 - prevLineY0
					if gap > 0 {
						gaps = append(gaps, gap)
					}
				}
				prevLineY0 = line.BBox.Y1
				havePrev = true
			}
		}
	}

	m := Metrics{
		TypicalLineHeight: defaultLineHeight,
		MedianLineHeight:  defaultLineHeight,
		P75LineHeight:     defaultLineHeight,
		TypicalLineGap:    defaultLineHeight * 0.5,
		Columns:           1,
	}
	if len(heights) > 0 {
		m.MedianLineHeight = percentile(heights, 0.5)
		m.P75LineHeight = percentile(heights, 0.75)
		m.TypicalLineHeight = m.MedianLineHeight
	}
	if len(fontSizes) > 0 {
		m.TypicalFontSize = percentile(fontSizes, 0.5)
	}
	if len(gaps) > 0 {
		m.TypicalLineGap = percentile(gaps, 0.5)
	}
	m.Columns = columnCount(columnStarts)
	return m, nil
}

// percentile returns the p-th percentile (0<=p<=1) of values using
// nearest-rank on a sorted copy; values is left untouched.
func percentile(values []float64, p float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	idx := int(p * float64(len(sorted)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// columnCount clusters line x0 starting positions into at most two stable
// groups via a 1-D gap search: sort the starts, find the largest gap, and
// accept a two-column split only if that gap exceeds 24pt and both sides
// of it together hold more than 60% of the sampled starts from positions
// stable around their own cluster mean.
func columnCount(starts []float64) int {
	if len(starts) < 8 {
		return 1
	}
	sorted := append([]float64(nil), starts...)
	sort.Float64s(sorted)

	bestGap := 0.0
	bestIdx := -1
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i] - sorted[i-1]
		if gap > bestGap {
			bestGap = gap
			bestIdx = i
		}
	}
	if bestGap <= 24 || bestIdx <= 0 {
		return 1
	}

	left := sorted[:bestIdx]
	right := sorted[bestIdx:]
	if len(left) == 0 || len(right) == 0 {
		return 1
	}
	stableFrac := func(cluster []float64) float64 {
		mean := 0.0
		for _, v := range cluster {
			mean += v
		}
		mean /= float64(len(cluster))
		stable := 0
		for _, v := range cluster {
			if abs(v-mean) <= 18 {
				stable++
			}
		}
		return float64(stable) / float64(len(cluster))
	}
	covered := (stableFrac(left)*float64(len(left)) + stableFrac(right)*float64(len(right))) / float64(len(sorted))
	if covered > 0.60 {
		return 2
	}
	return 1
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
