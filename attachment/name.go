/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package attachment

import (
	"fmt"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeSlug reduces raw caption text to an ASCII-safe filename
// fragment: whitespace collapses to "_", anything outside the ASCII
// safe set is dropped (§4.9 "ASCII safe set, whitespace to _").
func sanitizeSlug(raw string, maxWords int) string {
	fields := strings.Fields(raw)
	if maxWords > 0 && len(fields) > maxWords {
		fields = fields[:maxWords]
	}
	joined := strings.Join(fields, "_")
	joined = unsafeChars.ReplaceAllString(joined, "")
	joined = strings.Trim(joined, "_.")
	if joined == "" {
		joined = "untitled"
	}
	return joined
}

// kindPrefix returns the filename prefix for a kind ("Figure"/"Table").
func kindPrefix(isFigure bool) string {
	if isFigure {
		return "Figure"
	}
	return "Table"
}

// BuildBaseName constructs the un-suffixed filename for a record (§4.9):
// {Figure,Table}_<ident>_<slug>[_continued_p<page>].png
func BuildBaseName(isFigure bool, ident, captionText string, maxCaptionWords int, continued bool, page int) string {
	slug := sanitizeSlug(captionText, maxCaptionWords)
	name := fmt.Sprintf("%s_%s_%s", kindPrefix(isFigure), sanitizeSlug(ident, 0), slug)
	if continued {
		name = fmt.Sprintf("%s_continued_p%d", name, page)
	}
	return name + ".png"
}

// NameRegistry resolves collisions deterministically: the same base name
// requested twice gets "_1", "_2", ... suffixes before the extension
// (§3 "if two records would collide after filename sanitisation").
type NameRegistry struct {
	used map[string]int
}

// NewNameRegistry returns an empty registry.
func NewNameRegistry() *NameRegistry {
	return &NameRegistry{used: map[string]int{}}
}

// Claim returns a filename guaranteed unique within this registry,
// reporting whether a collision suffix had to be appended (so the
// caller can log the NamingCollision warning per §7).
func (r *NameRegistry) Claim(baseName string) (string, bool) {
	n, seen := r.used[baseName]
	r.used[baseName] = n + 1
	if !seen {
		return baseName, false
	}
	ext := ".png"
	stem := strings.TrimSuffix(baseName, ext)
	for {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if _, taken := r.used[candidate]; !taken {
			r.used[candidate] = 1
			return candidate, true
		}
		n++
	}
}
