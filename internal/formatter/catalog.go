package formatter

import (
	"fmt"
	"strings"

	"github.com/cloudnationhq/cpu-keywords-mcp/pkg/catalog"
)

// SearchResults renders catalog search hits
func SearchResults(res *catalog.SearchResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Search Results for '%s' (%d matches)\n\n", res.Query, res.Total))

	if len(res.Variants) > 1 {
		b.WriteString(fmt.Sprintf("Variants tried: %s\n\n", strings.Join(res.Variants, ", ")))
	}

	if len(res.CPUs) == 0 {
		b.WriteString("No CPUs found matching your query.\n")
		return b.String()
	}

	for _, m := range res.CPUs {
		b.WriteString(fmt.Sprintf("**%s**", m.Name))
		if m.Exact {
			b.WriteString(" *[exact]*")
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  Brand: %s, Series: %s, Model: %s%s\n", orDash(m.Brand), orDash(m.Series), m.Model, m.Suffix))
		b.WriteString(fmt.Sprintf("  Matching keywords: %d\n\n", m.Matches))
	}
	return b.String()
}

// IndexSummary renders the outcome of an indexing run
func IndexSummary(progress *catalog.IndexProgress) string {
	var b strings.Builder
	b.WriteString("# Index Completed\n\n")
	if len(progress.Files) > 0 {
		b.WriteString(fmt.Sprintf("Catalog files: %d\n", len(progress.Files)))
	}
	b.WriteString(fmt.Sprintf("Indexed %d/%d CPU names\n", progress.IndexedNames, progress.TotalNames))
	if progress.SkippedNames > 0 {
		b.WriteString(fmt.Sprintf("Skipped (blank): %d\n", progress.SkippedNames))
	}

	if len(progress.Errors) > 0 {
		b.WriteString(fmt.Sprintf("\n%d errors occurred:\n", len(progress.Errors)))
		for i, err := range progress.Errors {
			if i >= 10 {
				b.WriteString(fmt.Sprintf("... and %d more errors\n", len(progress.Errors)-10))
				break
			}
			b.WriteString(fmt.Sprintf("- %s\n", err))
		}
	}
	return b.String()
}

// CPUList renders indexed CPUs
func CPUList(cpus []catalog.CPU) string {
	if len(cpus) == 0 {
		return "No CPUs indexed. Run index_cpus to add CPU names.\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Indexed CPUs (%d)\n\n", len(cpus)))
	for i, cpu := range cpus {
		if i >= maxListed {
			b.WriteString(fmt.Sprintf("... and %d more CPUs\n", len(cpus)-maxListed))
			break
		}
		b.WriteString(fmt.Sprintf("- %s (%s)\n", cpu.Name, orDash(cpu.Brand)))
	}
	return b.String()
}
