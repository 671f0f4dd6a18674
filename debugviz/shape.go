/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package debugviz

import (
	"bytes"

	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// measureLine shapes s at sizePt with go-text/typesetting and returns its
// advance width in pixels, used to size the legend box before freetype
// rasterizes the same run. Shaping failures degrade to a width estimate
// rather than aborting the overlay: the legend is advisory, never
// authoritative.
func measureLine(fontData []byte, s string, sizePt float64) float64 {
	face, err := gofont.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return estimateWidth(s, sizePt)
	}

	shaper := shaping.HarfbuzzShaper{}
	runes := []rune(s)
	out := shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.I(int(sizePt)),
	})
	return float64(out.Advance) / 64.0
}

func estimateWidth(s string, sizePt float64) float64 {
	return float64(len(s)) * sizePt * 0.58
}
