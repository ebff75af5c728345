// Package catalog defines shared data structures for indexed CPU names.
package catalog

import "time"

// CPU represents an indexed CPU name with its generated keywords
type CPU struct {
	Name       string    `json:"name"`
	Brand      string    `json:"brand"`
	Series     string    `json:"series"`
	Model      string    `json:"model"`
	Suffix     string    `json:"suffix"`
	Generation string    `json:"generation"`
	Keywords   []string  `json:"keywords,omitempty"`
	IndexedAt  time.Time `json:"indexed_at"`
}

// Match is a CPU returned by a search
type Match struct {
	CPU
	Exact   bool `json:"exact"`
	Matches int  `json:"matches"`
}

// SearchQuery represents a search request
type SearchQuery struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// SearchResult represents search results
type SearchResult struct {
	Query    string   `json:"query"`
	Variants []string `json:"variants"`
	CPUs     []Match  `json:"cpus"`
	Total    int      `json:"total"`
}

// IndexProgress reports the outcome of an indexing run
type IndexProgress struct {
	TotalNames   int
	IndexedNames int
	SkippedNames int
	Files        []string
	Errors       []string
}
