/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package ident implements the caption Identifier described in the data
// model: a tagged variant that keeps the original textual form (needed
// for filenames) while still comparing and ordering by scheme.
package ident

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Tag distinguishes the identifier scheme. Ordering follows the tag
// value: main numeric ids sort before appendix letters, before Roman
// numerals, before supplementary ids.
type Tag int

const (
	// Numeric is a plain "1", "2", ... identifier.
	Numeric Tag = iota
	// Appendix is an "A1", "B2", ... identifier.
	Appendix
	// Roman is a Roman-numeral identifier such as "IV".
	Roman
	// Supplementary is an "S1" identifier.
	Supplementary
	// SupplementaryAppendix is a "SA1" identifier.
	SupplementaryAppendix
)

// ID is a parsed caption identifier. Text preserves the identifier
// exactly as it appeared in the caption, so it can be reused verbatim in
// output filenames; Tag and Num/Letter drive ordering and force-list
// lookups.
type ID struct {
	Text   string
	Tag    Tag
	Letter rune // set for Appendix and SupplementaryAppendix, else 0
	Num    int
}

// String returns the original textual form of the identifier.
func (id ID) String() string { return id.Text }

// Key returns a string uniquely identifying (kind, ident) pairs usable as
// a map key; callers combine it with the attachment kind.
func (id ID) Key() string { return id.Text }

var romanPattern = regexp.MustCompile(`^(?i)(X{0,3})(IX|IV|V?I{0,3})$`)

var romanValues = []struct {
	symbol string
	value  int
}{
	{"X", 10}, {"IX", 9}, {"V", 5}, {"IV", 4}, {"I", 1},
}

// romanToInt converts a Roman numeral in [1,39] to its integer value. It
// returns ok=false for anything outside that range or malformed input.
func romanToInt(s string) (int, bool) {
	up := strings.ToUpper(s)
	if up == "" || !romanPattern.MatchString(up) {
		return 0, false
	}
	n := 0
	rest := up
	for _, rv := range romanValues {
		for strings.HasPrefix(rest, rv.symbol) {
			n += rv.value
			rest = rest[len(rv.symbol):]
		}
	}
	if rest != "" || n == 0 {
		return 0, false
	}
	return n, true
}

var (
	appendixPattern      = regexp.MustCompile(`^([A-Z])(\d+)$`)
	supplementaryPattern = regexp.MustCompile(`^[Ss]\s*(\d+)$`)
	supplementaryApxPtn  = regexp.MustCompile(`^[Ss]\s*([A-Z])(\d+)$`)
	numericPattern       = regexp.MustCompile(`^\d+$`)
)

// Parse interprets raw (the identifier text captured by a caption regex,
// e.g. "S1", "A2", "IV", "3") into an ID. Roman numerals are only
// recognized when raw contains no digits, matching the §3 grammar
// ([A-Z]?\d+ | Roman I-X | leading S + digits).
func Parse(raw string) (ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ID{}, fmt.Errorf("ident: empty identifier")
	}

	if m := supplementaryApxPtn.FindStringSubmatch(raw); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return ID{}, fmt.Errorf("ident: %w", err)
		}
		return ID{Text: raw, Tag: SupplementaryAppendix, Letter: rune(m[1][0]), Num: n}, nil
	}
	if m := supplementaryPattern.FindStringSubmatch(raw); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return ID{}, fmt.Errorf("ident: %w", err)
		}
		return ID{Text: raw, Tag: Supplementary, Num: n}, nil
	}
	if m := appendixPattern.FindStringSubmatch(raw); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return ID{}, fmt.Errorf("ident: %w", err)
		}
		return ID{Text: raw, Tag: Appendix, Letter: rune(m[1][0]), Num: n}, nil
	}
	if numericPattern.MatchString(raw) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return ID{}, fmt.Errorf("ident: %w", err)
		}
		return ID{Text: raw, Tag: Numeric, Num: n}, nil
	}
	if n, ok := romanToInt(raw); ok {
		return ID{Text: raw, Tag: Roman, Num: n}, nil
	}
	return ID{}, fmt.Errorf("ident: %q does not match any known identifier scheme", raw)
}

// Compare orders a before b: scheme first (Numeric < Appendix < Roman <
// Supplementary < SupplementaryAppendix), then by letter, then by the
// natural numeric suffix. It never conflates ids of different schemes
// even when their numeric part matches, e.g. "S1" != "1".
func Compare(a, b ID) int {
	if a.Tag != b.Tag {
		if a.Tag < b.Tag {
			return -1
		}
		return 1
	}
	if a.Letter != b.Letter {
		if a.Letter < b.Letter {
			return -1
		}
		return 1
	}
	switch {
	case a.Num < b.Num:
		return -1
	case a.Num > b.Num:
		return 1
	default:
		return 0
	}
}
