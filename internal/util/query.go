package util

import "strings"

// NormalizeQuery lowercases and trims lightweight punctuation/spacing.
func NormalizeQuery(q string) string {
	s := strings.ToLower(NormalizeName(q))
	s = strings.NewReplacer("-", " ", "_", " ", "/", " ", ".", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// ExpandQueryVariants generates the spellings a catalog search should try for
// one query, in a stable order. Examples:
//   - "i5-1235U" -> ["i5-1235u", "i5 1235u", "i51235u"]
//   - "sd 8 gen 3" -> ["sd 8 gen 3", "sd8gen3"]
func ExpandQueryVariants(q string) []string {
	base := strings.ToLower(NormalizeName(q))
	if base == "" {
		return nil
	}

	var out []string
	seen := map[string]struct{}{}
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(base)
	spaced := NormalizeQuery(base)
	add(spaced)
	add(strings.ReplaceAll(spaced, " ", ""))

	return out
}
