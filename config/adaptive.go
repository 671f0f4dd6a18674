/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package config

// LineMetrics is the subset of docmetrics.Metrics adaptive defaults
// depend on. Declared locally (instead of importing docmetrics) to keep
// config free of a dependency on the package that, in turn, is consumed
// by everything downstream of config -- avoiding an import cycle.
type LineMetrics struct {
	TypicalLineHeight float64
}

// AdaptiveDefaults derives the §4.2 adaptive thresholds
// (adjacent_th=2.0L, far_text_th=10.0L, text_trim_gap=0.5L,
// far_side_min_dist=8.0L) from the document's typical line height L. It
// is a no-op (identity patch) when AdaptiveLineHeight is false on the
// config being patched.
func AdaptiveDefaults(m LineMetrics) Patch {
	return func(c Config) Config {
		if !c.AdaptiveLineHeight {
			return c
		}
		l := m.TypicalLineHeight
		if l <= 0 {
			return c
		}
		c.AdjacentThPt = 2.0 * l
		c.FarTextThPt = 10.0 * l
		c.TextTrimGapPt = 0.5 * l
		c.FarSideMinDistPt = 8.0 * l
		return c
	}
}
