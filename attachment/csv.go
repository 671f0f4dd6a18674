/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package attachment

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSVManifest writes the optional CSV manifest mirroring
// (kind, ident, page, caption, file, continued) (§6).
func WriteCSVManifest(outDir string, records []Record) error {
	f, err := os.Create(filepath.Join(outDir, "manifest.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"kind", "ident", "page", "caption", "file", "continued"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Kind, r.Ident, strconv.Itoa(r.Page), r.CaptionText, r.File,
			strconv.FormatBool(r.Continued),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
