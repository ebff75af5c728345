// Package formatter renders keyword, tag and catalog results as markdown text.
package formatter

import (
	"fmt"
	"strings"

	"github.com/cloudnationhq/cpu-keywords-mcp/internal/keywords"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/util"
)

const (
	sectionEnglish = "English"
	sectionArabic  = "Arabic"
	sectionMixed   = "Mixed"
)

// KeywordSummary renders an expansion with its parsed fields and keywords
// grouped by script
func KeywordSummary(exp keywords.Expansion) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Keywords for '%s' (%d)\n\n", exp.Name, len(exp.Keywords)))
	b.WriteString(CPUInfoSummary(exp.Info))
	b.WriteString("\n")

	sections := groupKeywordsByScript(exp.Keywords)
	for _, section := range sections.order {
		b.WriteString(fmt.Sprintf("## %s (%d)\n\n", section, len(sections.entries[section])))
		for _, kw := range sections.entries[section] {
			b.WriteString(fmt.Sprintf("- %s\n", kw))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Comma separated\n\n")
	b.WriteString(strings.Join(exp.Keywords, ","))
	b.WriteString("\n")
	return b.String()
}

// CPUInfoSummary renders the parsed CPU fields
func CPUInfoSummary(info keywords.CPUInfo) string {
	var b strings.Builder
	b.WriteString("CPU Info\n")
	b.WriteString(fmt.Sprintf("- Brand: %s\n", orDash(info.Brand.String())))
	b.WriteString(fmt.Sprintf("- Series: %s\n", orDash(info.Series)))
	b.WriteString(fmt.Sprintf("- Model: %s\n", orDash(info.Model)))
	b.WriteString(fmt.Sprintf("- Suffix: %s\n", orDash(info.Suffix)))
	b.WriteString(fmt.Sprintf("- Generation: %s\n", orDash(info.Generation)))
	return b.String()
}

// KeywordList renders plain keywords, one per line
func KeywordList(title string, kws []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s (%d)\n\n", title, len(kws)))
	for _, kw := range kws {
		b.WriteString(fmt.Sprintf("- %s\n", kw))
	}
	return b.String()
}

type sectionGrouping struct {
	order   []string
	entries map[string][]string
}

func groupKeywordsByScript(kws []string) sectionGrouping {
	grouping := sectionGrouping{
		order:   []string{},
		entries: make(map[string][]string),
	}

	for _, kw := range kws {
		section := scriptOf(kw)
		grouping.entries[section] = append(grouping.entries[section], kw)
	}

	for _, preferred := range []string{sectionEnglish, sectionArabic, sectionMixed} {
		if len(grouping.entries[preferred]) > 0 {
			grouping.order = append(grouping.order, preferred)
		}
	}

	return grouping
}

func scriptOf(kw string) string {
	if !util.ContainsArabic(kw) {
		return sectionEnglish
	}
	if strings.ContainsFunc(kw, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}) {
		return sectionMixed
	}
	return sectionArabic
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
