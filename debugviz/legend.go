/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package debugviz

import (
	"image"
	"image/color"

	"github.com/unidoc/freetype"
)

// drawLegend rasterizes each legend line left-aligned below the image at
// y=top, truncating any line go-text/typesetting measures as wider than
// the canvas. A missing/unparseable system font silently skips the
// legend text; the outline boxes alone still convey the stage rects.
func drawLegend(img *image.RGBA, top int, lines []string, scale float64) {
	if len(lines) == 0 {
		return
	}
	data, ttf, err := defaultLegendFont.Font()
	if err != nil {
		return
	}

	sizePx := legendSizePt * scale
	maxWidth := float64(img.Bounds().Dx()) - marginPt*scale/2

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(ttf)
	c.SetFontSize(sizePx)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(color.Black))

	lineHeight := int((legendSizePt + legendGapPt) * scale)
	y := top + lineHeight
	for _, line := range lines {
		line = truncateToWidth(data, line, sizePx, maxWidth)
		pt := freetype.Pt(int(marginPt*scale/4), y)
		if _, err := c.DrawString(line, pt); err != nil {
			return
		}
		y += lineHeight
	}
}

func truncateToWidth(fontData []byte, line string, sizePx, maxWidth float64) string {
	for len([]rune(line)) > 1 && measureLine(fontData, line, sizePx) > maxWidth {
		r := []rune(line)
		line = string(r[:len(r)-1])
	}
	return line
}
