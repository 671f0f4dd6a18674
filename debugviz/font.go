/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package debugviz

import (
	"fmt"
	"os"
	"sync"

	"github.com/adrg/sysfont"
	"github.com/unidoc/freetype/truetype"
)

// legendFont locates a system sans-serif font once per process and caches
// both its raw bytes and its parsed truetype.Font, mirroring the renderer
// package's per-call sysfont.Finder usage (render/renderer.go) but
// memoized since debugviz draws many overlays per run. The raw bytes are
// kept alongside the parsed font so shape.go can hand the same font data
// to go-text/typesetting without re-locating it on disk.
type legendFont struct {
	once sync.Once
	data []byte
	ttf  *truetype.Font
	err  error
}

var defaultLegendFont legendFont

// Font returns the cached legend font bytes and its truetype.Font parse.
// A lookup failure is cached too, so repeated calls don't re-walk the
// filesystem.
func (f *legendFont) Font() ([]byte, *truetype.Font, error) {
	f.once.Do(func() {
		finder := sysfont.NewFinder(&sysfont.FinderOpts{
			Extensions: []string{".ttf", ".ttc"},
		})
		font := finder.Match("sans-serif")
		if font == nil || font.Filename == "" {
			f.err = fmt.Errorf("debugviz: no system sans-serif font found")
			return
		}
		data, err := os.ReadFile(font.Filename)
		if err != nil {
			f.err = fmt.Errorf("debugviz: read font %s: %w", font.Filename, err)
			return
		}
		ttf, err := truetype.Parse(data)
		if err != nil {
			f.err = fmt.Errorf("debugviz: parse font %s: %w", font.Filename, err)
			return
		}
		f.data, f.ttf = data, ttf
	})
	return f.data, f.ttf, f.err
}
