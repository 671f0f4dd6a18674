/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractcore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/figtable/attachcore/anchor"
	"github.com/figtable/attachcore/attachment"
	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/caption"
	"github.com/figtable/attachcore/common"
	"github.com/figtable/attachcore/config"
	"github.com/figtable/attachcore/debugviz"
	"github.com/figtable/attachcore/docmetrics"
	"github.com/figtable/attachcore/gate"
	"github.com/figtable/attachcore/refine"
)

// emitResult is one caption's full processing outcome.
type emitResult struct {
	record  attachment.Record
	event   logEvent
	warning bool
}

// anchorModeName renders cfg.AnchorMode the way AttachmentRecord.anchor_mode
// names it (§3).
func anchorModeName(mode config.AnchorMode) string {
	if mode == config.AnchorV1 {
		return "v1"
	}
	return "v2"
}

// processCaption runs one selected caption through anchor selection,
// refinement, the acceptance gate, and PNG/debug rendering, returning the
// record to emit. A render failure returns ok=false and a warning event;
// the caller does not append anything to Result.Records for it.
func processCaption(c config.Config, page *backend.Page, cap caption.Caption, ctx anchor.PageContext, vote anchor.GlobalVote,
	continued bool, names *attachment.NameRegistry, pdfName string, docMeta backend.DocumentMeta, lineMetrics docmetrics.Metrics,
	outDir string) (emitResult, bool) {

	isFigure := cap.Kind == caption.Figure
	choice := anchor.Select(c, cap, isFigure, ctx, vote.AsFunc())

	blocks, drawings, images := ctx.Blocks, ctx.Drawings, ctx.Images
	pipeline := refine.Run(c, refine.Input{
		IsFigure: isFigure,
		Above:    choice.Side == anchor.Above,
		CapText:  cap.Text,
		CapRect:  cap.Rect,
		Baseline: choice.Baseline,
		Blocks:   blocks,
		Drawings: drawings,
		Images:   images,
		Page:     page,
		Layout:   ctx.Layout,
	})
	decision := gate.Decide(pipeline)

	baseName := attachment.BuildBaseName(isFigure, cap.Ident.Text, cap.Text, c.MaxCaptionWords, continued, cap.Page)
	name, collided := names.Claim(baseName)

	pixmapSize, err := attachment.WritePNG(page, decision.Rect, c.DPI, outDir, name)
	if err != nil {
		wrapped := wrapRender(fmt.Sprintf("render %s", name), err)
		return emitResult{
			event: logEvent{Event: "render-failed", Kind: cap.Kind.String(), Ident: cap.Ident.Text, Page: cap.Page, Reason: wrapped.Error()},
		}, false
	}

	stagesApplied := append([]string(nil), pipeline.Trace...)
	stagesApplied = append(stagesApplied, fmt.Sprintf("gate:%s", decision.Stage))
	if collided {
		stagesApplied = append(stagesApplied, "naming-collision")
	}

	var debugArtifacts []string
	if c.DebugViz {
		if rel, err := renderDebugOverlay(page, c.DPI, pipeline, decision, cap, outDir, name); err == nil {
			debugArtifacts = append(debugArtifacts, rel)
		}
	}

	rec := attachment.Record{
		Kind:        cap.Kind.String(),
		Ident:       cap.Ident.Text,
		Page:        cap.Page,
		CaptionText: cap.Text,
		File:        name,
		Continued:   continued,

		Meta: attachment.Meta{
			PDFName:      pdfName,
			PDFHash:      docMeta.PdfHash,
			PageCount:    docMeta.PageCount,
			ExtractorVer: common.Version,
			Preset:       c.Preset,
		},
		Layout: attachment.Layout{
			Columns:           lineMetrics.Columns,
			TypicalLineHeight: lineMetrics.TypicalLineHeight,
		},

		AnchorMode:       anchorModeName(c.AnchorMode),
		Side:             choice.Side.String(),
		GlobalAnchorUsed: vote.Decided,

		StagesApplied: stagesApplied,
		Confidence:    confidenceFrom(cap.Score, decision.Stage),

		BBoxPt:       attachment.FromRect(decision.Rect),
		DPI:          c.DPI,
		PixmapSizePx: pixmapSize,

		DebugArtifacts: debugArtifacts,
	}

	rejected := decision.Stage != gate.Refined
	return emitResult{
		record: rec,
		event: logEvent{
			Event: "emit-decision", Kind: rec.Kind, Ident: rec.Ident, Page: rec.Page,
			Stage: string(decision.Stage), Reason: decision.Reason,
		},
		warning: rejected,
	}, true
}

// confidenceFrom blends the caption's own score with whether the gate
// accepted the refined rect: a caption that scored well but whose
// refinement was rejected back to baseline is reported with lower
// confidence than one that cleared the gate outright.
func confidenceFrom(captionScore float64, stage gate.Stage) float64 {
	base := captionScore / 100
	if base > 1 {
		base = 1
	}
	if base < 0 {
		base = 0
	}
	switch stage {
	case gate.Refined:
		return base
	case gate.AOnly:
		return base * 0.85
	default:
		return base * 0.7
	}
}

func renderDebugOverlay(page *backend.Page, dpi int, p refine.Pipeline, d gate.Decision, cap caption.Caption, outDir, name string) (string, error) {
	boxes := []debugviz.StageBox{
		{Label: "baseline", Rect: p.Baseline, Color: debugviz.ColorBaseline},
		{Label: "after_A", Rect: p.AfterA, Color: debugviz.ColorAfterA},
		{Label: "after_B", Rect: p.AfterB, Color: debugviz.ColorAfterB},
		{Label: "after_D", Rect: p.AfterD, Color: debugviz.ColorAfterD},
		{Label: string(d.Stage), Rect: d.Rect, Color: debugviz.ColorAccepted},
	}
	legend := []string{
		fmt.Sprintf("%s %s (p%d)", cap.Kind.String(), cap.Ident.Text, cap.Page),
		fmt.Sprintf("stage=%s far_coverage=%.2f", d.Stage, p.FarCoverage),
	}
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return debugviz.Render(page, dpi, boxes, legend, outDir, stem)
}
