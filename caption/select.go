/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package caption

import "github.com/figtable/attachcore/ident"

// acceptThreshold is the minimum total score a candidate needs to be
// selectable (§4.3 "pick the maximum if score >= 25").
const acceptThreshold = 25.0

// UncertainID names an (kind, ident) pair no candidate cleared the
// acceptance threshold for; the caller logs a warning and emits no
// attachment for it.
type UncertainID struct {
	Kind      Kind
	Ident     ident.ID
	BestScore float64
}

type captionKey struct {
	kind  Kind
	ident string
	page  int // only used when allowContinued
}

// Select picks, for each (kind, ident) -- or (kind, ident, page) when
// allowContinued is set -- the highest-scoring candidate, provided its
// score clears acceptThreshold.
func Select(candidates []Candidate, allowContinued bool) (captions []Caption, uncertain []UncertainID) {
	best := map[captionKey]Candidate{}
	order := []captionKey{}

	for _, c := range candidates {
		key := captionKey{kind: c.Kind, ident: c.Ident.Key()}
		if allowContinued {
			key.page = c.Page
		}
		cur, seen := best[key]
		if !seen {
			order = append(order, key)
			best[key] = c
			continue
		}
		if c.Score() > cur.Score() {
			best[key] = c
		}
	}

	for _, key := range order {
		c := best[key]
		if c.Score() >= acceptThreshold {
			captions = append(captions, Caption{
				Kind:  c.Kind,
				Ident: c.Ident,
				Page:  c.Page,
				Rect:  c.Rect,
				Text:  c.Text,
				Score: c.Score(),
			})
			continue
		}
		uncertain = append(uncertain, UncertainID{Kind: c.Kind, Ident: c.Ident, BestScore: c.Score()})
	}
	return captions, uncertain
}
