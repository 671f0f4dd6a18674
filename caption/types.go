/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package caption builds the per-document caption index: every
// figure/table-naming line, scored on four axes, and the selection that
// picks one Caption per (kind, ident) (§4.3).
package caption

import (
	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/ident"
)

// Kind is the attachment kind a caption names.
type Kind int

const (
	// Figure captions start with "Figure"/"Fig."/"图".
	Figure Kind = iota
	// Table captions start with "Table"/"表".
	Table
)

func (k Kind) String() string {
	if k == Table {
		return "table"
	}
	return "figure"
}

// ScoreComponents breaks a candidate's total score into its four axes, so
// the run log and debug visualizer can show why a caption was or was not
// selected.
type ScoreComponents struct {
	Position  float64
	Format    float64
	Structure float64
	Context   float64
}

// Total sums the four axes; Select compares this against the acceptance
// threshold.
func (s ScoreComponents) Total() float64 {
	return s.Position + s.Format + s.Structure + s.Context
}

// Candidate is one textual occurrence of a caption-like line.
type Candidate struct {
	Kind       Kind
	Ident      ident.ID
	Page       int
	Rect       geometry.Rect
	Text       string
	Components ScoreComponents
}

// Score is the candidate's total score (§4.3 "total ≤100").
func (c Candidate) Score() float64 { return c.Components.Total() }

// Caption is the chosen candidate for a given (kind, ident).
type Caption struct {
	Kind  Kind
	Ident ident.ID
	Page  int
	Rect  geometry.Rect
	Text  string
	Score float64
}
