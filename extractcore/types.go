/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package extractcore wires the full data flow (§2): backend ->
// docmetrics -> layout -> caption index/scorer -> anchor selector (with
// global direction vote) -> refine A->B->D -> gate -> attachment
// renderer/index/pruner. It owns none of the stages' logic; it only
// sequences them and accumulates RunStats.
package extractcore

import (
	"github.com/figtable/attachcore/attachment"
	"github.com/figtable/attachcore/config"
)

// Request is the single external entry point's input (§9 Non-goals:
// "a single extractcore.Request{PDFPath, OutputDir, Config} in").
type Request struct {
	PDFPath   string
	OutputDir string

	// CLIPatch is applied last in the built-in -> adaptive -> env -> CLI
	// merge order (§9); nil means no CLI overrides.
	CLIPatch config.Patch
}

// RunStats are the per-run counters threaded as a value through the
// pipeline (§3 RunStats, §9 "no ambient state") and emitted as the
// summary line of run.log.jsonl.
type RunStats struct {
	PagesProcessed     int `json:"pages_processed"`
	CaptionsDetected   int `json:"captions_detected"`
	CaptionsUncertain  int `json:"captions_uncertain"`
	AttachmentsEmitted int `json:"attachments_emitted"`
	Warnings           int `json:"warnings"`
	Rejections         int `json:"rejections"`
}

// Result is the single external entry point's output.
type Result struct {
	Records []attachment.Record
	Stats   RunStats
}
