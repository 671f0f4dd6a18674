/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package config

import (
	"os"
	"strconv"
	"strings"
)

// envPrefix namespaces every recognized environment variable, e.g.
// ATTACHCORE_DPI, ATTACHCORE_AUTOCROP.
const envPrefix = "ATTACHCORE_"

// FromEnv returns a Patch that applies any recognized ATTACHCORE_* environment
// variable on top of the config it is given. Unset variables leave their
// field untouched. This is the third tier in the built-in -> adaptive ->
// environment -> CLI priority order (§9).
func FromEnv() Patch {
	return func(c Config) Config {
		if v, ok := envInt("DPI"); ok {
			c.DPI = v
		}
		if v, ok := envFloat("CLIP_HEIGHT_PT"); ok {
			c.ClipHeightPt = v
		}
		if v, ok := envFloat("MARGIN_X_PT"); ok {
			c.MarginXPt = v
		}
		if v, ok := envFloat("CAPTION_GAP_PT"); ok {
			c.CaptionGapPt = v
		}
		if v, ok := envBool("TEXT_TRIM"); ok {
			c.TextTrim = v
		}
		if v, ok := envBool("AUTOCROP"); ok {
			c.Autocrop = v
		}
		if v, ok := envBool("ADAPTIVE_LINE_HEIGHT"); ok {
			c.AdaptiveLineHeight = v
		}
		if v, ok := envBool("ALLOW_CONTINUED"); ok {
			c.AllowContinued = v
		}
		if v, ok := envBool("PRUNE_IMAGES"); ok {
			c.PruneImages = v
		}
		if v, ok := envString("ANCHOR_MODE"); ok {
			if strings.EqualFold(v, "v1") {
				c.AnchorMode = AnchorV1
			} else if strings.EqualFold(v, "v2") {
				c.AnchorMode = AnchorV2
			}
		}
		if v, ok := envString("FORCE_ABOVE_IDS"); ok {
			c.ForceAboveIDs = idSet(v)
		}
		if v, ok := envString("FORCE_BELOW_IDS"); ok {
			c.ForceBelowIDs = idSet(v)
		}
		if v, ok := envString("FORCE_TABLE_ABOVE_IDS"); ok {
			c.ForceTableAboveIDs = idSet(v)
		}
		if v, ok := envString("FORCE_TABLE_BELOW_IDS"); ok {
			c.ForceTableBelowIDs = idSet(v)
		}
		if v, ok := envString("PRESET"); ok {
			c.Preset = v
		}
		if v, ok := envInt("WORKERS"); ok {
			c.Workers = v
		}
		if v, ok := envBool("DEBUG_VIZ"); ok {
			c.DebugViz = v
		}
		if v, ok := envBool("CSV_MANIFEST"); ok {
			c.CSVManifest = v
		}
		return c
	}
}

func idSet(csv string) map[string]bool {
	set := map[string]bool{}
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			set[part] = true
		}
	}
	return set
}

func envString(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	return v, ok && v != ""
}

func envInt(name string) (int, bool) {
	s, ok := envString(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func envFloat(name string) (float64, bool) {
	s, ok := envString(name)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func envBool(name string) (bool, bool) {
	s, ok := envString(name)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(s)
	return b, err == nil
}
