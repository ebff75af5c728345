package formatter

import (
	"fmt"
	"strings"

	"github.com/cloudnationhq/cpu-keywords-mcp/internal/tags"
)

const maxListed = 50

// TagList renders the tags visible under filter along with the counters the
// widget shows ("Showing 3 of 120").
func TagList(all, visible []string, filter string) string {
	var b strings.Builder
	if filter != "" {
		b.WriteString(fmt.Sprintf("# Tags matching '%s'\n\n", filter))
	} else {
		b.WriteString("# Tags\n\n")
	}
	b.WriteString(fmt.Sprintf("Showing %d of %d keywords\n\n", len(visible), len(all)))

	if len(visible) == 0 {
		b.WriteString("No keywords added\n")
		return b.String()
	}

	for i, tag := range visible {
		if i >= maxListed {
			b.WriteString(fmt.Sprintf("... and %d more keywords\n", len(visible)-maxListed))
			break
		}
		b.WriteString(fmt.Sprintf("%d. %s\n", i, tag))
	}
	return b.String()
}

// BatchSummary renders the outcome of adding a list of tags
func BatchSummary(res tags.Result) string {
	var b strings.Builder
	if res.Added > 0 {
		b.WriteString(fmt.Sprintf("%d Keyword added successfully!\n", res.Added))
	} else {
		b.WriteString(fmt.Sprintf("%d Keyword deleted!\n", res.Rejected()))
	}

	writeRejected(&b, "Duplicates", res.Duplicates)
	writeRejected(&b, "Brand conflicts", res.BrandConflicts)
	writeRejected(&b, "Category conflicts", res.CategoryConflicts)
	return b.String()
}

func writeRejected(b *strings.Builder, title string, values []string) {
	if len(values) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("- %s (%d): %s\n", title, len(values), strings.Join(values, ", ")))
}
