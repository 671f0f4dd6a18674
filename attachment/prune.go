/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package attachment

import (
	"os"
	"path/filepath"
	"strings"
)

// Prune deletes every Figure_*/Table_* file in outDir not referenced by
// records (§4.9, §4.10/§3 invariant 4). The caller must only invoke this
// after WriteIndex has succeeded (§4.9 "pruning never runs if the index
// write failed"); it never runs as a side effect of a failed write.
func Prune(outDir string, records []Record) ([]string, error) {
	referenced := map[string]bool{}
	for _, r := range records {
		referenced[r.File] = true
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !isAttachmentFile(name) {
			continue
		}
		if referenced[name] {
			continue
		}
		if err := os.Remove(filepath.Join(outDir, name)); err != nil {
			return removed, err
		}
		removed = append(removed, name)
	}
	return removed, nil
}

func isAttachmentFile(name string) bool {
	return strings.HasPrefix(name, "Figure_") || strings.HasPrefix(name, "Table_")
}
