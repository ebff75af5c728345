package keywords

import "strings"

// typo is a single misspelling substitution
type typo struct {
	from string
	to   string
}

// commonTypos lists misspellings seen in Arabic and English CPU searches.
var commonTypos = []typo{
	// Intel/AMD
	{arIntel, "انتيل"},
	{arIntel, "أنتل"},
	{arProcessor2, "بروسسور"},
	{arProcessor2, "برسيسور"},
	{arRyzen, "رايزين"},
	{arRyzen, "ريزن"},
	{arAMD, "اي ام دي"},

	// Qualcomm
	{arQualcomm, "كوالكم"},
	{arQualcomm, "كولكوم"},
	{arSnapdragon, "سنابدراجون"},
	{arSnapdragon, "سناب دراقون"},
	{arSnapdragon, "snap dragon"},
	{"snapdragon", "snap dragon"},

	// MediaTek
	{arMediaTek, "ميدياتيك"},
	{arMediaTek, "ميديا تك"},
	{arDimensity, "ديمينسيتي"},
	{arDimensity, "دايمنسيتي"},
	{arHelio, "هليو"},
	{"mediatek", "media tek"},
}

// addTypos applies every substitution to a snapshot of the set, so typos are
// never stacked on top of other typos.
func addTypos(set *OrderedSet, opts Options) {
	for _, kw := range set.Values() {
		for _, t := range commonTypos {
			if strings.Contains(kw, t.from) {
				addKeyword(set, strings.ReplaceAll(kw, t.from, t.to))
			}
		}

		if opts.StripSpaces && strings.Contains(kw, " ") {
			set.Add(strings.ReplaceAll(kw, " ", ""))
		}
	}
}
