// Package keywords expands CPU model names into search keyword variants.
package keywords

import (
	"regexp"
	"strconv"
	"strings"
)

// Brand identifies the processor family a CPU name belongs to
type Brand int

const (
	BrandUnknown Brand = iota
	BrandIntel
	BrandAMD
	BrandQualcomm
	BrandMediaTek
)

// String returns the lower-case brand name, or "" for BrandUnknown
func (b Brand) String() string {
	switch b {
	case BrandIntel:
		return "intel"
	case BrandAMD:
		return "amd"
	case BrandQualcomm:
		return "qualcomm"
	case BrandMediaTek:
		return "mediatek"
	default:
		return ""
	}
}

// MarshalText lets Brand serialize as its name in JSON responses
func (b Brand) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// CPUInfo holds the fields extracted from a CPU name
type CPUInfo struct {
	Brand      Brand  `json:"brand"`
	Series     string `json:"series"`
	Model      string `json:"model"`
	Suffix     string `json:"suffix"`
	Generation string `json:"generation"`
}

// brandRules are evaluated in order; the first match wins.
var brandRules = []struct {
	brand   Brand
	pattern *regexp.Regexp
}{
	{BrandIntel, regexp.MustCompile(`(?i)intel|core`)},
	{BrandAMD, regexp.MustCompile(`(?i)amd|ryzen`)},
	{BrandQualcomm, regexp.MustCompile(`(?i)qualcomm|snapdragon`)},
	{BrandMediaTek, regexp.MustCompile(`(?i)mediatek|dimensity|helio`)},
}

var (
	intelSeriesRe    = regexp.MustCompile(`(?i)core\s*ultra|i[3579]|pentium|xeon`)
	amdSeriesRe      = regexp.MustCompile(`(?i)ryzen\s*[3579]`)
	qualcommSeriesRe = regexp.MustCompile(`(?i)snapdragon`)
	mediatekSeriesRe = regexp.MustCompile(`(?i)dimensity|helio`)

	qualcommModelRe = regexp.MustCompile(`(?i)(\d+[a-z]*[+]?\s*gen\s*\d+|\d{3,4}[a-z]*)`)
	mediatekModelRe = regexp.MustCompile(`(?i)([a-z]\d{2,4}|\d{3,4})`)
	numericModelRe  = regexp.MustCompile(`(\d{3,5})`)

	suffixRe     = regexp.MustCompile(`(?i)(\d{3,5})([A-Z]{1,2})\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ClassifyBrand returns the brand a CPU name belongs to
func ClassifyBrand(name string) Brand {
	for _, rule := range brandRules {
		if rule.pattern.MatchString(name) {
			return rule.brand
		}
	}
	return BrandUnknown
}

// ParseCPUInfo extracts brand, series, model, suffix and generation from a
// normalized CPU name. Fields that cannot be found are left empty.
func ParseCPUInfo(name string) CPUInfo {
	info := CPUInfo{Brand: ClassifyBrand(name)}

	switch info.Brand {
	case BrandIntel:
		info.Series = whitespaceRe.ReplaceAllString(strings.ToLower(intelSeriesRe.FindString(name)), " ")
		info.Model = firstGroup(numericModelRe, name)
		if len(info.Model) >= 4 {
			info.Generation = info.Model[:2]
			if n, err := strconv.Atoi(info.Model[:2]); err == nil && n > 20 {
				info.Generation = info.Model[:1]
			}
		}
	case BrandAMD:
		info.Series = strings.ToLower(amdSeriesRe.FindString(name))
		info.Model = firstGroup(numericModelRe, name)
		if len(info.Model) >= 4 {
			info.Generation = info.Model[:1]
		}
	case BrandQualcomm:
		info.Series = "snapdragon"
		if m := qualcommSeriesRe.FindString(name); m != "" {
			info.Series = strings.ToLower(m)
		}
		info.Model = strings.ToLower(firstGroup(qualcommModelRe, name))
	case BrandMediaTek:
		info.Series = strings.ToLower(mediatekSeriesRe.FindString(name))
		info.Model = firstGroup(mediatekModelRe, name)
	default:
		info.Model = firstGroup(numericModelRe, name)
	}

	if m := suffixRe.FindStringSubmatch(name); m != nil {
		info.Suffix = strings.ToUpper(m[2])
	}

	return info
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// suffixArabic maps suffix codes to their Arabic transliteration
var suffixArabic = map[string]string{
	"U":  "يو",
	"F":  "اف",
	"G":  "جي",
	"K":  "كي",
	"H":  "اتش",
	"HS": "اتش اس",
	"HX": "اتش اكس",
	"X":  "اكس",
	"P":  "بي",
}

// SuffixArabic returns the Arabic transliteration of a suffix code
func SuffixArabic(code string) (string, bool) {
	v, ok := suffixArabic[strings.ToUpper(code)]
	return v, ok
}
