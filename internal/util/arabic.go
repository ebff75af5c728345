package util

import "strings"

var arabicDigits = strings.NewReplacer(
	"0", "٠",
	"1", "١",
	"2", "٢",
	"3", "٣",
	"4", "٤",
	"5", "٥",
	"6", "٦",
	"7", "٧",
	"8", "٨",
	"9", "٩",
)

// ContainsArabic reports whether s has a rune in the Arabic block (U+0600–U+06FF)
func ContainsArabic(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r >= 0x0600 && r <= 0x06FF
	})
}

// ContainsWesternDigit reports whether s has an ASCII digit
func ContainsWesternDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// ToArabicDigits replaces ASCII digits with Arabic-Indic digits
func ToArabicDigits(s string) string {
	return arabicDigits.Replace(s)
}

// ArabicNumeralDuplicates returns the keywords in order without duplicates.
// A keyword mixing Arabic text with Western digits is followed by a copy
// using Arabic-Indic digits ("رايزن 7" -> "رايزن 7", "رايزن ٧").
func ArabicNumeralDuplicates(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, kw := range keywords {
		add(kw)
		if ContainsWesternDigit(kw) && ContainsArabic(kw) {
			add(ToArabicDigits(kw))
		}
	}
	return out
}
