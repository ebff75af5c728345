package keywords

import (
	"regexp"
	"strings"
)

// Arabic vocabulary shared by the pattern, typo and abbreviation stages.
const (
	arIntel      = "انتل"
	arIntelCore  = "انتل كور"
	arRyzen      = "رايزن"
	arAMD        = "ايه ام دي"
	arQualcomm   = "كوالكوم"
	arSnapdragon = "سناب دراجون"
	arMediaTek   = "ميدياتك"
	arDimensity  = "ديمنسيتي"
	arHelio      = "هيليو"
	arGaming     = "جيمنج"
	arProcessor  = "معالج"
	arProcessor2 = "بروسيسور"
	arGeneration = "جيل"
)

var genSpacingRe = regexp.MustCompile(`(?i)\s*gen\s*`)

// addKeyword lower-cases v, collapses whitespace and inserts it
func addKeyword(set *OrderedSet, v string) {
	set.Add(strings.Join(strings.Fields(strings.ToLower(v)), " "))
}

func addSearchPatterns(set *OrderedSet, info CPUInfo) {
	if info.Model == "" {
		return
	}

	switch info.Brand {
	case BrandIntel:
		addIntelPatterns(set, info)
	case BrandAMD:
		addAMDPatterns(set, info)
	case BrandQualcomm:
		addQualcommPatterns(set, info)
	case BrandMediaTek:
		addMediaTekPatterns(set, info)
	}
}

func addIntelPatterns(set *OrderedSet, info CPUInfo) {
	series, model, suffix := info.Series, info.Model, info.Suffix
	full := model + suffix

	addKeyword(set, series+" "+full)
	addKeyword(set, series+" "+model+" "+suffix)
	addKeyword(set, arIntel+" "+series+" "+full)
	addKeyword(set, arIntel+" "+series+" "+model+" "+suffix)
	addKeyword(set, arProcessor+" "+series+" "+full)
	addKeyword(set, "core "+series+" "+full)
	addKeyword(set, arIntelCore+" "+series+" "+full)
	addKeyword(set, arProcessor2+" "+series+" "+full)

	// many people leave the suffix off
	addKeyword(set, series+" "+model)
	addKeyword(set, arIntel+" "+series+" "+model)
	addKeyword(set, arProcessor+" "+series+" "+model)

	if ar, ok := SuffixArabic(suffix); ok {
		addKeyword(set, series+" "+model+" "+ar)
		addKeyword(set, arIntel+" "+series+" "+model+" "+ar)
	}

	addGenerationPatterns(set, info)
}

func addAMDPatterns(set *OrderedSet, info CPUInfo) {
	series, model, suffix := info.Series, info.Model, info.Suffix
	full := model + suffix
	tier := strings.TrimSpace(strings.Replace(series, "ryzen", "", 1))

	addKeyword(set, series+" "+full)
	addKeyword(set, series+" "+model+" "+suffix)
	addKeyword(set, "amd "+series+" "+full)
	addKeyword(set, "amd "+series+" "+model+" "+suffix)
	addKeyword(set, arRyzen+" "+tier+" "+full)
	addKeyword(set, arProcessor+" "+arRyzen+" "+tier+" "+full)
	addKeyword(set, arAMD+" "+arRyzen+" "+tier+" "+full)
	addKeyword(set, arProcessor2+" amd "+series+" "+full)

	addKeyword(set, series+" "+model)
	addKeyword(set, "amd "+series+" "+model)
	addKeyword(set, arRyzen+" "+tier+" "+model)

	if ar, ok := SuffixArabic(suffix); ok {
		addKeyword(set, arRyzen+" "+tier+" "+model+" "+ar)
	}

	addGenerationPatterns(set, info)
}

func addGenerationPatterns(set *OrderedSet, info CPUInfo) {
	if info.Generation == "" || info.Series == "" {
		return
	}
	addKeyword(set, info.Series+" "+arGeneration+" "+info.Generation)
	addKeyword(set, info.Series+" generation "+info.Generation)
}

func addQualcommPatterns(set *OrderedSet, info CPUInfo) {
	model := strings.Join(strings.Fields(info.Model), " ")
	short := strings.ReplaceAll(model, " ", "")

	addKeyword(set, "snapdragon "+model)
	addKeyword(set, info.Series+" "+model)
	addKeyword(set, arQualcomm+" "+model)
	addKeyword(set, arQualcomm+" "+arSnapdragon+" "+model)
	addKeyword(set, arSnapdragon+" "+model)
	addKeyword(set, "سنابدراجون "+model)
	addKeyword(set, arProcessor+" snapdragon "+model)
	addKeyword(set, arProcessor+" "+arSnapdragon+" "+model)
	addKeyword(set, arProcessor+" "+arQualcomm+" "+model)
	addKeyword(set, "qualcomm snapdragon "+model)
	addKeyword(set, "qualcomm "+model)
	addKeyword(set, arProcessor2+" snapdragon "+model)
	addKeyword(set, arProcessor2+" "+arQualcomm+" "+model)

	addKeyword(set, "sd "+model)
	addKeyword(set, "sd"+short)
	addKeyword(set, "sd "+short)

	if strings.Contains(model, "gen") {
		addKeyword(set, short)
		addKeyword(set, "snapdragon"+short)
		addKeyword(set, "snapdragon "+short)

		// "8 gen3" and "8gen 3"
		spacedBefore := genSpacingRe.ReplaceAllString(model, " gen")
		spacedAfter := genSpacingRe.ReplaceAllString(model, "gen ")
		addKeyword(set, spacedBefore)
		addKeyword(set, "snapdragon "+spacedBefore)
		addKeyword(set, spacedAfter)
		addKeyword(set, "snapdragon "+spacedAfter)
	}

	if strings.Contains(model, "+") {
		noPlus := strings.ReplaceAll(model, "+", "")
		addKeyword(set, "snapdragon "+noPlus)
		addKeyword(set, "sd "+noPlus)
		addKeyword(set, arProcessor+" snapdragon "+noPlus)
	}
}

func addMediaTekPatterns(set *OrderedSet, info CPUInfo) {
	chipset := info.Series
	model := strings.ToLower(info.Model)

	addKeyword(set, chipset+" "+model)
	addKeyword(set, "mediatek "+chipset+" "+model)

	switch chipset {
	case "dimensity":
		addKeyword(set, arDimensity+" "+model)
		addKeyword(set, arMediaTek+" "+arDimensity+" "+model)
		addKeyword(set, arProcessor+" "+arDimensity+" "+model)
		addKeyword(set, arProcessor+" dimensity "+model)
		addKeyword(set, "d"+model)
		addKeyword(set, "d "+model)
	case "helio":
		addKeyword(set, arHelio+" "+model)
		addKeyword(set, arMediaTek+" "+arHelio+" "+model)
		addKeyword(set, arProcessor+" "+arHelio+" "+model)
		addKeyword(set, arProcessor+" helio "+model)
		if strings.HasPrefix(model, "g") {
			addKeyword(set, "helio gaming "+model)
			addKeyword(set, arHelio+" "+arGaming+" "+model)
		}
	}

	addKeyword(set, arProcessor+" mediatek "+model)
	addKeyword(set, arProcessor+" "+arMediaTek+" "+model)
	addKeyword(set, arProcessor2+" mediatek "+model)

	// without the chipset name
	addKeyword(set, "mediatek "+model)
	addKeyword(set, arMediaTek+" "+model)
}
