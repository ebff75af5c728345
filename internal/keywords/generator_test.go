package keywords

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCPUInfo(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want CPUInfo
	}{
		{
			name: "intel core",
			in:   "Intel Core i5-1235U",
			want: CPUInfo{Brand: BrandIntel, Series: "i5", Model: "1235", Suffix: "U", Generation: "12"},
		},
		{
			name: "intel single digit generation",
			in:   "Intel Core i7 9750H",
			want: CPUInfo{Brand: BrandIntel, Series: "i7", Model: "9750", Suffix: "H", Generation: "9"},
		},
		{
			name: "intel core ultra",
			in:   "Intel Core Ultra 7 155H",
			want: CPUInfo{Brand: BrandIntel, Series: "core ultra", Model: "155", Suffix: "H"},
		},
		{
			name: "amd ryzen",
			in:   "AMD Ryzen 9 7940HS",
			want: CPUInfo{Brand: BrandAMD, Series: "ryzen 9", Model: "7940", Suffix: "HS", Generation: "7"},
		},
		{
			name: "qualcomm gen with plus",
			in:   "Qualcomm Snapdragon 7+ Gen 2",
			want: CPUInfo{Brand: BrandQualcomm, Series: "snapdragon", Model: "7+ gen 2"},
		},
		{
			name: "qualcomm letter suffixed model",
			in:   "Snapdragon 7s Gen 2",
			want: CPUInfo{Brand: BrandQualcomm, Series: "snapdragon", Model: "7s gen 2"},
		},
		{
			name: "intel without suffix",
			in:   "Intel Core i5-12400",
			want: CPUInfo{Brand: BrandIntel, Series: "i5", Model: "12400", Generation: "12"},
		},
		{
			name: "intel without series",
			in:   "Intel Celeron N4020",
			want: CPUInfo{Brand: BrandIntel, Model: "4020", Generation: "4"},
		},
		{
			name: "qualcomm numeric",
			in:   "Snapdragon 888",
			want: CPUInfo{Brand: BrandQualcomm, Series: "snapdragon", Model: "888"},
		},
		{
			name: "mediatek dimensity",
			in:   "MediaTek Dimensity 9200",
			want: CPUInfo{Brand: BrandMediaTek, Series: "dimensity", Model: "9200"},
		},
		{
			name: "mediatek helio letter model",
			in:   "MediaTek Helio G99",
			want: CPUInfo{Brand: BrandMediaTek, Series: "helio", Model: "G99"},
		},
		{
			name: "unknown",
			in:   "Potato Chip X1",
			want: CPUInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCPUInfo(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseCPUInfo(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestClassifyBrandOrder(t *testing.T) {
	// intel is checked first even when another brand is named
	assert.Equal(t, BrandIntel, ClassifyBrand("Intel vs AMD Ryzen"))
	assert.Equal(t, BrandAMD, ClassifyBrand("ryzen 5 5500u"))
	assert.Equal(t, BrandQualcomm, ClassifyBrand("SNAPDRAGON 8 gen 3"))
	assert.Equal(t, BrandMediaTek, ClassifyBrand("helio g99"))
	assert.Equal(t, BrandUnknown, ClassifyBrand("apple m2"))
}

func TestSuffixArabic(t *testing.T) {
	ar, ok := SuffixArabic("hs")
	require.True(t, ok)
	assert.Equal(t, "اتش اس", ar)

	_, ok = SuffixArabic("Z")
	assert.False(t, ok)
}

func TestGenerateCPUKeywordsScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "intel",
			in:   "Intel Core i5-1235U",
			want: []string{"i5 1235u", "i5-1235u", "i51235u", "انتل i5 1235u", "i5 جيل 12", "i5 1235 يو"},
		},
		{
			name: "amd",
			in:   "AMD Ryzen 9 7940HS",
			want: []string{"ryzen 9 7940hs", "amd ryzen 9 7940hs", "رايزن 9 7940hs", "r9 7940hs", "r97940hs", "ryzen 9 جيل 7"},
		},
		{
			name: "qualcomm",
			in:   "Qualcomm Snapdragon 7+ Gen 2",
			want: []string{"snapdragon 7+ gen 2", "sd7+gen2", "snapdragon 7 gen 2", "سناب دراجون 7+ gen 2"},
		},
		{
			name: "qualcomm gen spacing",
			in:   "Snapdragon 8 Gen 3",
			want: []string{"sd8gen3", "sd 8 gen 3", "8gen3", "8 gen3", "8gen 3", "snapdragon 8gen3"},
		},
		{
			name: "qualcomm letter suffixed model",
			in:   "Snapdragon 7s Gen 2",
			want: []string{"snapdragon 7s gen 2", "sd7sgen2", "7sgen2", "sd 7s gen 2"},
		},
		{
			name: "intel without suffix",
			in:   "Intel Core i5-12400",
			want: []string{"i5 12400", "i5-12400", "i512400", "انتل i5 12400", "i5 جيل 12"},
		},
		{
			name: "mediatek dimensity",
			in:   "MediaTek Dimensity 9200",
			want: []string{"dimensity 9200", "d9200", "d 9200", "mtk 9200", "mtk9200", "ديمنسيتي 9200"},
		},
		{
			name: "mediatek helio gaming",
			in:   "MediaTek Helio G99",
			want: []string{"helio g99", "helio gaming g99", "heliog99", "mtkg99", "هيليو جيمنج g99"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCPUKeywords(tt.in)
			for _, kw := range tt.want {
				assert.Contains(t, got, kw)
			}
		})
	}
}

func TestGenerateUnknownBrandIsSingleton(t *testing.T) {
	assert.Equal(t, []string{"potato chip x1"}, GenerateCPUKeywords("Potato Chip X1"))
}

func TestGenerateTypos(t *testing.T) {
	got := GenerateCPUKeywords("Intel Core i5-1235U")
	assert.Contains(t, got, "انتيل i5 1235u")
	assert.Contains(t, got, "أنتل i5 1235u")
	assert.Contains(t, got, "بروسسور i5 1235u")

	got = GenerateCPUKeywords("MediaTek Dimensity 9200")
	assert.Contains(t, got, "media tek dimensity 9200")
	assert.Contains(t, got, "ميدياتيك 9200")
}

func TestGenerateInvariants(t *testing.T) {
	names := []string{
		"Intel Core i5-1235U",
		"Intel® Core™ i7-13700H",
		"Intel Core i5-12400",
		"Intel Celeron N4020",
		"Snapdragon 7s Gen 2",
		"AMD Ryzen 7 5800X",
		"Qualcomm Snapdragon 8 Gen 3",
		"Snapdragon 8+ Gen 1",
		"MediaTek Dimensity 9200",
		"MediaTek Helio G99",
		"Potato Chip X1",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			got := GenerateCPUKeywords(name)
			require.NotEmpty(t, got)

			seen := map[string]bool{}
			for _, kw := range got {
				assert.NotEmpty(t, strings.TrimSpace(kw), "blank keyword")
				assert.Equal(t, strings.TrimSpace(kw), kw, "keyword %q has surrounding spaces", kw)
				assert.NotContains(t, kw, "  ", "keyword %q has a double space", kw)
				assert.Equal(t, strings.ToLower(kw), kw, "keyword not lower-cased")
				assert.False(t, seen[kw], "duplicate keyword %q", kw)
				seen[kw] = true
			}

			assert.Equal(t, got, GenerateCPUKeywords(name), "output must be deterministic")
		})
	}
}

func TestGenerateNormalizesInput(t *testing.T) {
	plain := GenerateCPUKeywords("Intel Core i7-13700H")
	marked := GenerateCPUKeywords("  Intel®   Core™ i7-13700H ")
	assert.Equal(t, plain, marked)
	assert.Equal(t, "intel core i7-13700h", plain[0])
}

func TestGenerateBrandIsolation(t *testing.T) {
	for _, kw := range GenerateCPUKeywords("AMD Ryzen 5 5500U") {
		assert.NotContains(t, kw, "snapdragon")
		assert.NotContains(t, kw, "mtk")
		assert.NotContains(t, kw, "انتل")
	}
	for _, kw := range GenerateCPUKeywords("MediaTek Dimensity 9200") {
		assert.NotContains(t, kw, "ryzen")
		assert.NotContains(t, kw, "sd")
	}
	for _, name := range []string{"Intel Core i5-1235U", "Qualcomm Snapdragon 8 Gen 3"} {
		for _, kw := range GenerateCPUKeywords(name) {
			assert.NotContains(t, kw, "ryzen", name)
			assert.NotContains(t, kw, "dimensity", name)
			assert.NotContains(t, kw, "mtk", name)
		}
	}
	for _, kw := range GenerateCPUKeywords("Intel Core i5-1235U") {
		assert.NotContains(t, kw, "snapdragon")
	}
}

func TestGenerateSkipsGenerationWithoutSeries(t *testing.T) {
	got := GenerateCPUKeywords("Intel Celeron N4020")
	assert.Contains(t, got, "4020")
	assert.Contains(t, got, "انتل 4020")
	for _, kw := range got {
		assert.NotContains(t, kw, "جيل")
		assert.NotContains(t, kw, "generation")
	}
}

func TestStripSpacesOption(t *testing.T) {
	const name = "Intel Core i5-1235U"
	const stripped = "انتلi51235u"

	assert.False(t, NewGenerator(Options{}).Options().StripSpaces)
	assert.NotContains(t, NewGenerator(Options{}).Generate(name), stripped)
	assert.Contains(t, NewGenerator(Options{StripSpaces: true}).Generate(name), stripped)
}

func TestCache(t *testing.T) {
	cache, err := NewCache(NewGenerator(Options{}), 2)
	require.NoError(t, err)

	first := cache.Expand("Intel Core i5-1235U")
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, BrandIntel, first.Info.Brand)

	// same normalized key
	second := cache.Expand(" Intel®  Core i5-1235U")
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, first, second)

	// callers own their slices
	second.Keywords[0] = "mutated"
	assert.Equal(t, "intel core i5-1235u", cache.Generate("Intel Core i5-1235U")[0])

	cache.Expand("AMD Ryzen 5 5500U")
	cache.Expand("MediaTek Helio G99")
	assert.Equal(t, 2, cache.Len())
}

func TestCacheDefaultSize(t *testing.T) {
	cache, err := NewCache(NewGenerator(Options{}), 0)
	require.NoError(t, err)
	assert.Equal(t, GenerateCPUKeywords("Snapdragon 888"), cache.Generate("Snapdragon 888"))
}
