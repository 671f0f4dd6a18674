/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package attachment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/figtable/attachcore/ident"
)

// IndexWriteError reports that the atomic index write failed; it is
// fatal to the run (§7 IndexWriteError) and pruning must not proceed.
type IndexWriteError struct {
	Path string
	Err  error
}

func (e *IndexWriteError) Error() string {
	return fmt.Sprintf("attachment: write index %s: %v", e.Path, e.Err)
}
func (e *IndexWriteError) Unwrap() error { return e.Err }

// kindRank orders figure before table for the index's document-order
// sort (§4.9 "(page, kind_rank(figure<table), ident_sort_key)").
func kindRank(kind string) int {
	if kind == "figure" {
		return 0
	}
	return 1
}

// SortRecords orders records in document order: by page, then kind
// (figure before table), then the identifier's natural ordering.
func SortRecords(records []Record) {
	parsed := make([]ident.ID, len(records))
	for i, r := range records {
		id, err := ident.Parse(r.Ident)
		if err == nil {
			parsed[i] = id
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Page != records[j].Page {
			return records[i].Page < records[j].Page
		}
		ri, rj := kindRank(records[i].Kind), kindRank(records[j].Kind)
		if ri != rj {
			return ri < rj
		}
		return ident.Compare(parsed[i], parsed[j]) < 0
	})
}

// WriteIndex marshals records to outDir/index.json, writing through a
// temp file and renaming into place (§4.9 "write-then-rename"), so a run
// that crashes mid-write leaves any previous index intact (§5).
func WriteIndex(outDir string, records []Record) error {
	SortRecords(records)
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &IndexWriteError{Path: filepath.Join(outDir, "index.json"), Err: err}
	}

	finalPath := filepath.Join(outDir, "index.json")
	tmpPath := finalPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return &IndexWriteError{Path: finalPath, Err: err}
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return &IndexWriteError{Path: finalPath, Err: err}
	}
	return nil
}
