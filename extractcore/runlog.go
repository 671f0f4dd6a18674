/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractcore

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/figtable/attachcore/attachment"
)

// logEvent is one line of run.log.jsonl: either a per-record emission
// event or (with Summary set) the closing RunStats line.
type logEvent struct {
	Event   string            `json:"event"`
	Kind    string            `json:"kind,omitempty"`
	Ident   string            `json:"ident,omitempty"`
	Page    int               `json:"page,omitempty"`
	Stage   string            `json:"stage,omitempty"`
	Reason  string            `json:"reason,omitempty"`
	Summary *RunStats         `json:"summary,omitempty"`
}

// writeRunLog writes outDir/run.log.jsonl: one line per accepted
// record's emission, one line per uncertain/rejected caption, and a
// trailing summary line carrying the final RunStats (§3 RunStats "emitted
// as the summary line of run.log.jsonl").
func writeRunLog(outDir string, records []attachment.Record, events []logEvent, stats RunStats) error {
	path := filepath.Join(outDir, "run.log.jsonl")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("extractcore: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)

	for _, r := range records {
		if err := enc.Encode(logEvent{Event: "emitted", Kind: r.Kind, Ident: r.Ident, Page: r.Page}); err != nil {
			return err
		}
	}
	for _, ev := range events {
		if err := enc.Encode(ev); err != nil {
			return err
		}
	}
	statsCopy := stats
	if err := enc.Encode(logEvent{Event: "summary", Summary: &statsCopy}); err != nil {
		return err
	}
	return w.Flush()
}
