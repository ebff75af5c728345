// Package util provides text helpers shared by the keyword pipeline and the tag collection.
package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

func isTrademark(r rune) bool {
	return r == '®' || r == '™'
}

// NormalizeName strips trademark glyphs, collapses whitespace runs to a
// single space and trims the result.
func NormalizeName(raw string) string {
	s, _, err := transform.String(runes.Remove(runes.Predicate(isTrademark)), raw)
	if err != nil {
		// the remover cannot fail on valid input; fall back to a rune filter
		s = strings.Map(func(r rune) rune {
			if isTrademark(r) {
				return -1
			}
			return r
		}, raw)
	}
	return strings.Join(strings.Fields(s), " ")
}

var (
	punctuationRe = regexp.MustCompile("[-_,.:\"';`~!@#$%^&*()\\[\\]{}|\\\\/?<>=؛ـ٠–]")
	inlineSpaceRe = regexp.MustCompile(`[^\S\n]+`)
)

// SanitizeTag replaces punctuation with spaces and collapses runs of
// whitespace other than newlines, so a raw tag can be compared against the
// collection. Newlines inside the tag are kept.
func SanitizeTag(s string) string {
	s = punctuationRe.ReplaceAllString(s, " ")
	s = inlineSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SplitTags splits a comma or Arabic-comma separated list and drops blank parts
func SplitTags(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '،'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
