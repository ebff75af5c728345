package keywords

import (
	"regexp"
	"strings"
)

var seriesDigitRe = regexp.MustCompile(`\d`)

func addAbbreviations(set *OrderedSet, info CPUInfo) {
	if info.Model == "" {
		return
	}

	switch info.Brand {
	case BrandIntel:
		full := info.Model + info.Suffix
		addKeyword(set, info.Series+"-"+full)
		addKeyword(set, info.Series+full)
	case BrandAMD:
		if digit := seriesDigitRe.FindString(info.Series); digit != "" {
			full := info.Model + info.Suffix
			addKeyword(set, "r"+digit+" "+full)
			addKeyword(set, "r"+digit+full)
		}
	case BrandQualcomm:
		addQualcommAbbreviations(set, info.Model)
	case BrandMediaTek:
		addMediaTekAbbreviations(set, info)
	}
}

func addQualcommAbbreviations(set *OrderedSet, model string) {
	model = strings.Join(strings.Fields(model), " ")
	short := strings.ReplaceAll(model, " ", "")

	addKeyword(set, "sd"+short)
	addKeyword(set, "sd "+model)
	addKeyword(set, "sd "+short)

	if strings.Contains(model, "gen") {
		addKeyword(set, short)
		addKeyword(set, genSpacingRe.ReplaceAllString(model, "gen"))
	}

	if strings.Contains(model, "+") {
		noPlus := strings.ReplaceAll(model, "+", "")
		addKeyword(set, "sd"+strings.ReplaceAll(noPlus, " ", ""))
		addKeyword(set, noPlus)
	}
}

func addMediaTekAbbreviations(set *OrderedSet, info CPUInfo) {
	model := strings.ToLower(info.Model)

	addKeyword(set, "mtk "+model)
	addKeyword(set, "mtk"+model)

	if info.Series == "dimensity" {
		addKeyword(set, "d"+model)
		addKeyword(set, "d "+model)
	}

	// letter-prefixed models like G99 or P90
	if model[0] >= 'a' && model[0] <= 'z' && info.Series == "helio" {
		addKeyword(set, "helio"+model)
		addKeyword(set, "helio "+model)
	}
}
