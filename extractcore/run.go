/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractcore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/figtable/attachcore/anchor"
	"github.com/figtable/attachcore/attachment"
	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/caption"
	"github.com/figtable/attachcore/common"
	"github.com/figtable/attachcore/config"
	"github.com/figtable/attachcore/docmetrics"
	"github.com/figtable/attachcore/layout"
)

// pageAssets is everything the anchor/refine stage needs about one page,
// computed once during the parallel gather phase and reused read-only by
// the per-caption render phase.
type pageAssets struct {
	blocks   []backend.TextBlock
	drawings []backend.DrawingObject
	images   []backend.ImageRect
	layout   *layout.Model
	contexts []anchor.CaptionContext
}

type capKey struct {
	kind  caption.Kind
	ident string
	page  int
}

// Run executes the full pipeline for one PDF (§2): open, probe, build the
// caption index serially, gather per-page assets and the global direction
// vote, then fan out anchor selection, refinement, the acceptance gate,
// and rendering across a bounded worker pool (§5). Only ErrInput and
// ErrIndexWrite propagate; every other stage failure is folded into the
// returned RunStats and the run.log.jsonl trace (§7).
func Run(req Request) (Result, error) {
	var stats RunStats

	doc, err := backend.Open(req.PDFPath)
	if err != nil {
		return Result{}, wrapInput(fmt.Sprintf("open %s", req.PDFPath), err)
	}
	defer doc.Close()

	lineMetrics, err := docmetrics.Probe(doc)
	if err != nil {
		return Result{}, wrapInput("probe document metrics", err)
	}

	cfg := config.Default()
	cfg = cfg.Merge(config.AdaptiveDefaults(config.LineMetrics{TypicalLineHeight: lineMetrics.TypicalLineHeight}))
	cfg = cfg.Merge(config.FromEnv())
	if req.CLIPatch != nil {
		cfg = cfg.Merge(req.CLIPatch)
	}

	if err := ensureOutputDir(req.OutputDir); err != nil {
		return Result{}, wrapInput("prepare output dir", err)
	}

	candidates, err := buildIndexSerially(doc)
	if err != nil {
		return Result{}, wrapInput("build caption index", err)
	}
	stats.PagesProcessed = doc.PageCount()

	captions, uncertain := caption.Select(candidates, cfg.AllowContinued)
	stats.CaptionsDetected = len(captions)
	stats.CaptionsUncertain = len(uncertain)

	var events []logEvent
	for _, u := range uncertain {
		events = append(events, logEvent{
			Event: "caption-uncertain", Kind: u.Kind.String(), Ident: u.Ident.Text,
			Reason: fmt.Sprintf("best score %.1f below acceptance threshold", u.BestScore),
		})
	}

	continuedOf := markContinued(captions)
	byPage := groupByPage(captions)

	pages := make([]int, 0, len(byPage))
	for p := range byPage {
		pages = append(pages, p)
	}
	sort.Ints(pages)

	assets := map[int]*pageAssets{}
	var assetsMu sync.Mutex
	var figureContexts, tableContexts []anchor.CaptionContext
	var voteMu sync.Mutex

	workers := resolveWorkers(cfg.Workers)

	// Each worker goroutine gets its own backend.Document opened against
	// the same path, rather than sharing doc above: backend.Document is
	// not safe for concurrent Page() calls (§5).
	workerDocs := make([]*backend.Document, workers)
	for w := range workerDocs {
		wd, err := backend.Open(req.PDFPath)
		if err != nil {
			for _, opened := range workerDocs[:w] {
				opened.Close()
			}
			return Result{}, wrapInput(fmt.Sprintf("open %s for worker %d", req.PDFPath, w), err)
		}
		workerDocs[w] = wd
	}
	defer func() {
		for _, wd := range workerDocs {
			wd.Close()
		}
	}()

	forEachPage(workers, pages, func(w, i int) {
		page, err := workerDocs[w].Page(i)
		if err != nil {
			voteMu.Lock()
			events = append(events, logEvent{Event: "page-open-failed", Page: i, Reason: err.Error()})
			stats.Warnings++
			voteMu.Unlock()
			return
		}
		blocks, err := page.TextDict()
		if err != nil {
			blocks = nil
		}
		drawings, err := page.Drawings()
		if err != nil {
			drawings = nil
		}
		images, err := page.ImageRects()
		if err != nil {
			images = nil
		}

		var lm *layout.Model
		if cfg.LayoutDriven != config.Off {
			if built, err := layout.Build(blocks, lineMetrics.TypicalFontSize); err == nil {
				lm = built
			} else {
				voteMu.Lock()
				events = append(events, logEvent{Event: "layout-model-unavailable", Page: i, Reason: err.Error()})
				stats.Warnings++
				voteMu.Unlock()
			}
		}

		contexts := anchor.BuildCaptionContexts(page, byPage[i], blocks, drawings, images)
		for idx := range contexts {
			contexts[idx].Ctx.Layout = lm
		}

		assetsMu.Lock()
		assets[i] = &pageAssets{blocks: blocks, drawings: drawings, images: images, layout: lm, contexts: contexts}
		assetsMu.Unlock()

		voteMu.Lock()
		for _, cc := range contexts {
			if cc.Caption.Kind == caption.Figure {
				figureContexts = append(figureContexts, cc)
			} else {
				tableContexts = append(tableContexts, cc)
			}
		}
		voteMu.Unlock()
	})

	figureVote := anchor.Preflight(cfg, figureContexts, true)
	tableVote := anchor.Preflight(cfg, tableContexts, false)

	pdfName := filepath.Base(req.PDFPath)
	docMeta := doc.Meta()
	names := attachment.NewNameRegistry()
	var namesMu sync.Mutex

	var records []attachment.Record
	var recordsMu sync.Mutex

	forEachPage(workers, pages, func(w, i int) {
		pa := assets[i]
		if pa == nil {
			return
		}
		page, err := workerDocs[w].Page(i)
		if err != nil {
			recordsMu.Lock()
			events = append(events, logEvent{Event: "page-open-failed", Page: i, Reason: err.Error()})
			stats.Warnings++
			recordsMu.Unlock()
			return
		}

		for _, cc := range pa.contexts {
			cap := cc.Caption
			vote := tableVote
			if cap.Kind == caption.Figure {
				vote = figureVote
			}
			continued := continuedOf[capKey{kind: cap.Kind, ident: cap.Ident.Key(), page: cap.Page}]

			namesMu.Lock()
			res, ok := processCaption(cfg, page, cap, cc.Ctx, vote, continued, names, pdfName, docMeta, lineMetrics, req.OutputDir)
			namesMu.Unlock()

			recordsMu.Lock()
			events = append(events, res.event)
			if !ok {
				stats.Warnings++
			} else {
				records = append(records, res.record)
				stats.AttachmentsEmitted++
				if res.warning {
					stats.Rejections++
				}
			}
			recordsMu.Unlock()
		}
	})

	if err := attachment.WriteIndex(req.OutputDir, records); err != nil {
		return Result{Records: records, Stats: stats}, wrapIndexWrite("write index", err)
	}
	if cfg.PruneImages {
		if _, err := attachment.Prune(req.OutputDir, records); err != nil {
			events = append(events, logEvent{Event: "prune-failed", Reason: err.Error()})
			stats.Warnings++
		}
	}
	if cfg.CSVManifest {
		if err := attachment.WriteCSVManifest(req.OutputDir, records); err != nil {
			events = append(events, logEvent{Event: "csv-manifest-failed", Reason: err.Error()})
			stats.Warnings++
		}
	}
	if err := writeRunLog(req.OutputDir, records, events, stats); err != nil {
		common.Log.Warning("extractcore: write run log: %v", err)
	}

	return Result{Records: records, Stats: stats}, nil
}

// buildIndexSerially scans every page in document order (§5 "the caption
// index built as a serial first pass"), since identifier uniqueness is
// judged document-wide and must see every candidate before Select runs.
func buildIndexSerially(doc *backend.Document) ([]caption.Candidate, error) {
	var all []caption.Candidate
	for i := 1; i <= doc.PageCount(); i++ {
		page, err := doc.Page(i)
		if err != nil {
			return nil, err
		}
		candidates, err := caption.BuildIndex(page)
		if err != nil {
			return nil, err
		}
		all = append(all, candidates...)
	}
	return all, nil
}

func groupByPage(captions []caption.Caption) map[int][]caption.Caption {
	out := map[int][]caption.Caption{}
	for _, c := range captions {
		out[c.Page] = append(out[c.Page], c)
	}
	return out
}

// markContinued flags every caption after the first (by page) sharing a
// (kind, ident) as a continuation (§4.9 "_continued_pN" naming), relevant
// only when AllowContinued lets Select keep more than one Caption per id.
func markContinued(captions []caption.Caption) map[capKey]bool {
	type groupKey struct {
		kind  caption.Kind
		ident string
	}
	groups := map[groupKey][]caption.Caption{}
	for _, c := range captions {
		gk := groupKey{c.Kind, c.Ident.Key()}
		groups[gk] = append(groups[gk], c)
	}

	out := map[capKey]bool{}
	for _, list := range groups {
		sort.Slice(list, func(i, j int) bool { return list[i].Page < list[j].Page })
		for i, c := range list {
			out[capKey{kind: c.Kind, ident: c.Ident.Key(), page: c.Page}] = i > 0
		}
	}
	return out
}

func ensureOutputDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
