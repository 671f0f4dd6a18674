/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package anchor

import (
	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/caption"
	"github.com/figtable/attachcore/config"
)

// CaptionContext is everything the vote preflight and V2 scan need for
// one caption: its page geometry and neighbors, bundled so callers can
// build it once per caption and reuse it across the vote and Select.
type CaptionContext struct {
	Caption caption.Caption
	Ctx     PageContext
}

// Vote runs the §4.4 "global direction vote" preflight over every
// caption of one kind (figure or table) in the document: for each
// caption it computes the best-above and best-below V2 score (skipping
// the caption's own scan's degenerate-page cases) and accumulates
// totals. It returns a closure suitable as the globalSide argument to
// Select, plus the resolved GlobalVote for the run log/record.
type GlobalVote struct {
	Side    Side
	Decided bool // false means "auto": every id decides individually
}

func (v GlobalVote) String() string {
	if !v.Decided {
		return "auto"
	}
	return v.Side.String()
}

// Preflight computes the global direction vote for one attachment kind.
func Preflight(c config.Config, captions []CaptionContext, isFigure bool) GlobalVote {
	if c.GlobalAnchor == config.Off {
		return GlobalVote{Decided: false}
	}
	var aboveTotal, belowTotal float64
	for _, cc := range captions {
		var trace []string
		_, aboveScore, aboveOK := scanSide(c, cc.Caption, isFigure, cc.Ctx, Above, &trace)
		_, belowScore, belowOK := scanSide(c, cc.Caption, isFigure, cc.Ctx, Below, &trace)
		if aboveOK {
			aboveTotal += aboveScore
		}
		if belowOK {
			belowTotal += belowScore
		}
	}
	margin := c.GlobalAnchorMarginFor(isFigure)
	if belowTotal > aboveTotal*(1+margin) {
		return GlobalVote{Side: Below, Decided: true}
	}
	return GlobalVote{Decided: false}
}

// AsFunc adapts a GlobalVote into the globalSide closure Select expects.
func (v GlobalVote) AsFunc() func() (Side, bool) {
	return func() (Side, bool) {
		if !v.Decided {
			return 0, false
		}
		return v.Side, true
	}
}

// BuildCaptionContexts pairs each selected caption of one page with the
// PageContext it needs for scanning, deriving PrevCaptionBottom/
// NextCaptionTop from the other captions on the same page (in reading
// order by Y) so the mid-line guard has real neighbors to work with.
func BuildCaptionContexts(page *backend.Page, pageCaptions []caption.Caption, blocks []backend.TextBlock, drawings []backend.DrawingObject, images []backend.ImageRect) []CaptionContext {
	sorted := append([]caption.Caption(nil), pageCaptions...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Rect.Y0 < sorted[j-1].Rect.Y0; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	out := make([]CaptionContext, 0, len(sorted))
	for i, cap := range sorted {
		prevBottom := page.Rect().Y0
		if i > 0 {
			prevBottom = sorted[i-1].Rect.Y1
		}
		nextTop := page.Rect().Y1
		if i+1 < len(sorted) {
			nextTop = sorted[i+1].Rect.Y0
		}
		out = append(out, CaptionContext{
			Caption: cap,
			Ctx: PageContext{
				PageRect:          page.Rect(),
				Blocks:            blocks,
				Drawings:          drawings,
				Images:            images,
				PrevCaptionBottom: prevBottom,
				NextCaptionTop:    nextTop,
			},
		})
	}
	return out
}
