/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package config builds the immutable configuration record every phase
// of the extraction core reads from (§6, §9 "Dynamic config and
// environment overrides"). It is assembled once per run by merging, in
// increasing priority: built-in defaults, adaptive (document-derived)
// defaults, environment variables, and CLI flags. No phase reads
// process-wide state directly; everything flows through a *Config value
// passed by reference.
package config

// AnchorMode selects between the simple two-window selector (V1) and the
// multi-scale scanning selector (V2, the default).
type AnchorMode int

const (
	AnchorV2 AnchorMode = iota
	AnchorV1
)

// TriState models a three-way on/off/auto option (§6 layout_driven,
// global_anchor).
type TriState int

const (
	Auto TriState = iota
	On
	Off
)

// Config is the full set of recognized options from §6, with their
// documented built-in defaults. A Config value is never mutated in
// place; Merge returns a new value.
type Config struct {
	DPI            int
	ClipHeightPt   float64
	MarginXPt      float64
	CaptionGapPt   float64
	ScanHeights    []float64
	ScanStepPt     float64
	ScanDistLambda float64
	CaptionMidGuardPt float64

	TextTrim            bool
	AdjacentThPt        float64
	FarTextThPt         float64
	TextTrimGapPt       float64
	FarSideMinDistPt    float64
	FarSideParaMinRatio float64

	ObjectPadPt         float64
	ObjectMinAreaRatio  float64
	ObjectMergeGapPt    float64

	Autocrop             bool
	AutocropPadPx        int
	AutocropWhiteTh      int
	AutocropShrinkLimit  float64
	AutocropMinHeightPx  int
	ProtectFarEdgePx     int
	NearEdgePadPx        int
	RefineNearEdgeOnly   bool

	SmartCaptionDetection bool
	LayoutDriven          TriState
	AdaptiveLineHeight    bool
	GlobalAnchor          TriState
	GlobalAnchorMarginFig   float64
	GlobalAnchorMarginTable float64

	AllowContinued bool
	AnchorMode     AnchorMode

	PruneImages bool

	ForceAboveIDs      map[string]bool
	ForceBelowIDs      map[string]bool
	ForceTableAboveIDs map[string]bool
	ForceTableBelowIDs map[string]bool

	MaxCaptionWords int
	Preset          string

	// Workers bounds the per-page worker pool extractcore.Run fans out
	// to (§5); 0 means runtime.GOMAXPROCS(0).
	Workers int

	// DebugViz turns on the optional per-attachment overlay (§4.11).
	DebugViz bool

	// CSVManifest turns on the optional manifest.csv output (§6).
	CSVManifest bool
}

// Default returns the built-in default configuration (§6).
func Default() Config {
	return Config{
		DPI:               300,
		ClipHeightPt:      650,
		MarginXPt:         20,
		CaptionGapPt:      5,
		ScanHeights:       []float64{150, 220, 300, 400, 520, 650},
		ScanStepPt:        14,
		ScanDistLambda:    0.12,
		CaptionMidGuardPt: 6,

		TextTrim:            true,
		AdjacentThPt:        24,
		FarTextThPt:         300,
		TextTrimGapPt:       12,
		FarSideMinDistPt:    100,
		FarSideParaMinRatio: 0.20,

		ObjectPadPt:        8,
		ObjectMinAreaRatio: 0.012,
		ObjectMergeGapPt:   6,

		Autocrop:            true,
		AutocropPadPx:       30,
		AutocropWhiteTh:     250,
		AutocropShrinkLimit: 0.30,
		AutocropMinHeightPx: 80,
		ProtectFarEdgePx:    14,
		NearEdgePadPx:       32,
		RefineNearEdgeOnly:  true,

		SmartCaptionDetection:   true,
		LayoutDriven:            On,
		AdaptiveLineHeight:      true,
		GlobalAnchor:            Auto,
		GlobalAnchorMarginFig:   0.02,
		GlobalAnchorMarginTable: 0.03,

		AllowContinued: false,
		AnchorMode:     AnchorV2,

		PruneImages: true,

		ForceAboveIDs:      map[string]bool{},
		ForceBelowIDs:      map[string]bool{},
		ForceTableAboveIDs: map[string]bool{},
		ForceTableBelowIDs: map[string]bool{},

		MaxCaptionWords: 12,
		Preset:          "robust",

		Workers:     0,
		DebugViz:    false,
		CSVManifest: false,
	}
}

// ObjectMinAreaRatioFor returns the area-ratio threshold for the given
// kind ("figure" or "table" share different constants, §4.6).
func (c Config) ObjectMinAreaRatioFor(isFigure bool) float64 {
	if isFigure {
		return c.ObjectMinAreaRatio
	}
	// Tables use a lower bar (0.005) per §4.6; figures keep the
	// configured default (0.012).
	return 0.005
}

// GlobalAnchorMarginFor returns the vote margin for the given kind
// (§4.4 global direction vote: 0.02 figures, 0.03 tables).
func (c Config) GlobalAnchorMarginFor(isFigure bool) float64 {
	if isFigure {
		return c.GlobalAnchorMarginFig
	}
	return c.GlobalAnchorMarginTable
}

// Merge layers override on top of base: any field override sets on a
// non-zero-value basis is unwieldy for a struct this wide, so Merge
// instead takes a patch function, keeping the "built-in -> adaptive ->
// environment -> CLI" priority order explicit at each call site:
//
//	cfg := config.Default()
//	cfg = cfg.Merge(adaptiveDefaults(doc))
//	cfg = cfg.Merge(config.FromEnv())
//	cfg = cfg.Merge(cliOverrides)
func (c Config) Merge(patch Patch) Config {
	return patch(c)
}

// Patch mutates a copy of a Config and returns it; Merge applies one.
type Patch func(Config) Config
