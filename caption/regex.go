/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package caption

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// idToken matches the <id> grammar shared by both kinds: a supplementary
// appendix id ("SA1"), a supplementary id ("S1"), an appendix id ("A1"),
// a bare numeral, or a Roman numeral I-X. Order matters: the longer/more
// specific prefixes must be tried before the bare forms they contain.
const idToken = `(?:SA\s*\d+|S\s*\d+|[A-Z]\s*\d+|\d+|[IVX]+)`

var (
	figurePattern = regexp.MustCompile(
		`(?i)^(?:Extended Data |Supplementary )?(?:Figure|Fig\.?|图)\s*(` + idToken + `)(?:\s*[.:，,]|\b)`)
	tablePattern = regexp.MustCompile(
		`(?i)^(?:Extended Data |Supplementary )?(?:Table|表)\s*(` + idToken + `)(?:\s*[.:，,]|\b)`)
)

// normalizeLine applies Unicode NFKC normalization so that full-width CJK
// punctuation and spacing (e.g. "图1：") compare equal to their ASCII
// counterparts under the patterns above.
func normalizeLine(s string) string {
	return norm.NFKC.String(s)
}

// matchCaptionLine reports whether text opens with a figure/table caption
// marker, returning the kind and the raw identifier token (still possibly
// containing internal whitespace, e.g. "S 1").
func matchCaptionLine(text string) (kind Kind, idToken string, ok bool) {
	normalized := normalizeLine(strings.TrimSpace(text))
	if m := figurePattern.FindStringSubmatch(normalized); m != nil {
		return Figure, strings.ReplaceAll(m[1], " ", ""), true
	}
	if m := tablePattern.FindStringSubmatch(normalized); m != nil {
		return Table, strings.ReplaceAll(m[1], " ", ""), true
	}
	return 0, "", false
}
