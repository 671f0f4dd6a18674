/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package attachment

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"

	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/geometry"
)

// WritePNG renders rect at dpi and writes it to outDir/name, via a temp
// file that is renamed into place on success (§5 "partially written
// files are always written to a temp name and renamed on success"). It
// sniffs the encoded bytes with filetype before the rename as a cheap
// guard against a corrupt pixmap silently producing a non-PNG file.
func WritePNG(page *backend.Page, rect geometry.Rect, dpi int, outDir, name string) (pixmapSize [2]int, err error) {
	img, err := page.Pixmap(dpi, rect)
	if err != nil {
		return pixmapSize, fmt.Errorf("attachment: render %s: %w", name, err)
	}
	b := img.Bounds()
	pixmapSize = [2]int{b.Dx(), b.Dy()}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return pixmapSize, fmt.Errorf("attachment: encode %s: %w", name, err)
	}
	if kind, err := filetype.Match(buf.Bytes()); err != nil || kind.Extension != "png" {
		return pixmapSize, fmt.Errorf("attachment: %s did not sniff as a PNG after encoding", name)
	}

	finalPath := filepath.Join(outDir, name)
	tmpPath := finalPath + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		return pixmapSize, fmt.Errorf("attachment: write temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return pixmapSize, fmt.Errorf("attachment: rename into place for %s: %w", name, err)
	}
	return pixmapSize, nil
}
