// Package tags manages an ordered, duplicate-free collection of keyword tags.
package tags

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/cloudnationhq/cpu-keywords-mcp/internal/util"
)

var (
	ErrBlank            = errors.New("tag cannot be blank")
	ErrDuplicate        = errors.New("tag already exists")
	ErrBrandConflict    = errors.New("tag already exists in brand keywords")
	ErrCategoryConflict = errors.New("tag already exists in category keywords")
	ErrIndexOutOfRange  = errors.New("tag index out of range")
)

// KeywordGenerator expands a single tag into the keywords to store
type KeywordGenerator interface {
	Generate(name string) []string
}

// Reserved holds names owned by brand and category keyword lists. Tags
// matching them are rejected.
type Reserved struct {
	Brands     []string
	Categories []string
}

func (r Reserved) isBrand(tag string) bool {
	return slices.Contains(r.Brands, strings.ToLower(tag))
}

func (r Reserved) isCategory(tag string) bool {
	return slices.Contains(r.Categories, strings.ToLower(tag))
}

// Result summarizes a batch insert
type Result struct {
	Added             int      `json:"added"`
	Duplicates        []string `json:"duplicates"`
	BrandConflicts    []string `json:"brand_conflicts"`
	CategoryConflicts []string `json:"category_conflicts"`
}

// Rejected returns the number of candidates that were not added
func (r Result) Rejected() int {
	return len(r.Duplicates) + len(r.BrandConflicts) + len(r.CategoryConflicts)
}

// Collection is an ordered tag list with a one-step undo for Clear.
// It is not safe for concurrent use.
type Collection struct {
	gen      KeywordGenerator
	reserved Reserved
	logger   *zap.Logger

	tags     []string
	snapshot []string
}

// New creates an empty collection
func New(gen KeywordGenerator, reserved Reserved, logger *zap.Logger) *Collection {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collection{gen: gen, reserved: reserved, logger: logger}
}

// Add sanitizes raw, expands it through the keyword generator and appends
// every keyword not already present. It returns the keywords that were added.
func (c *Collection) Add(raw string) ([]string, error) {
	tag := util.SanitizeTag(raw)
	if tag == "" {
		return nil, ErrBlank
	}
	if c.contains(tag) || c.contains(strings.ToLower(tag)) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, tag)
	}
	if c.reserved.isBrand(tag) {
		return nil, fmt.Errorf("%w: %s", ErrBrandConflict, tag)
	}
	if c.reserved.isCategory(tag) {
		return nil, fmt.Errorf("%w: %s", ErrCategoryConflict, tag)
	}

	var added []string
	for _, kw := range c.gen.Generate(tag) {
		if c.contains(kw) {
			continue
		}
		c.tags = append(c.tags, kw)
		added = append(added, kw)
	}
	c.sort()

	c.logger.Debug("tag added", zap.String("tag", tag), zap.Int("keywords", len(added)))
	return added, nil
}

// AddBatch adds a comma or Arabic-comma separated list of tags, lower-cased and
// with Arabic-numeral duplicates, and reports what happened to each candidate.
// A tag repeated within the batch counts as a duplicate.
func (c *Collection) AddBatch(raw string) Result {
	var candidates []string
	for _, p := range util.SplitTags(raw) {
		tag := strings.ToLower(util.SanitizeTag(p))
		candidates = append(candidates, util.ArabicNumeralDuplicates([]string{tag})...)
	}

	var res Result
	for _, tag := range candidates {
		switch {
		case tag == "":
			continue
		case c.contains(tag):
			res.Duplicates = append(res.Duplicates, tag)
		case c.reserved.isBrand(tag):
			res.BrandConflicts = append(res.BrandConflicts, tag)
		case c.reserved.isCategory(tag):
			res.CategoryConflicts = append(res.CategoryConflicts, tag)
		default:
			c.tags = append(c.tags, tag)
			res.Added++
		}
	}

	if res.Added > 0 {
		c.sort()
	}

	c.logger.Debug("batch added",
		zap.Int("added", res.Added),
		zap.Int("duplicates", len(res.Duplicates)),
		zap.Int("brand_conflicts", len(res.BrandConflicts)),
		zap.Int("category_conflicts", len(res.CategoryConflicts)))
	return res
}

// Remove deletes the tag at index within the view selected by filter (the
// whole collection when filter is empty) and returns it.
func (c *Collection) Remove(index int, filter string) (string, error) {
	view := c.Filter(filter)
	if index < 0 || index >= len(view) {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	tag := view[index]
	pos := slices.Index(c.tags, tag)
	c.tags = slices.Delete(c.tags, pos, pos+1)
	return tag, nil
}

// Edit removes the tag at index within the filtered view and returns it so
// the caller can re-submit an edited version.
func (c *Collection) Edit(index int, filter string) (string, error) {
	return c.Remove(index, filter)
}

// Clear empties the collection, keeping a snapshot for Undo. Clearing an
// empty collection does nothing.
func (c *Collection) Clear() int {
	if len(c.tags) == 0 {
		return 0
	}
	n := len(c.tags)
	c.snapshot = c.tags
	c.tags = nil
	return n
}

// Undo restores the snapshot taken by the last Clear. It reports whether
// anything was restored.
func (c *Collection) Undo() bool {
	if len(c.snapshot) == 0 {
		return false
	}
	c.tags = c.snapshot
	c.snapshot = nil
	return true
}

// Filter returns the tags containing query, compared lower-cased. An empty
// query returns every tag.
func (c *Collection) Filter(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.Tags()
	}
	var out []string
	for _, tag := range c.tags {
		if strings.Contains(tag, query) {
			out = append(out, tag)
		}
	}
	return out
}

// Tags returns a copy of all tags
func (c *Collection) Tags() []string {
	return slices.Clone(c.tags)
}

// Len returns the number of tags
func (c *Collection) Len() int {
	return len(c.tags)
}

// Export joins every tag with commas, ignoring any filter
func (c *Collection) Export() string {
	return strings.Join(c.tags, ",")
}

func (c *Collection) contains(tag string) bool {
	return slices.Contains(c.tags, tag)
}

// sort orders tags by length, shortest first, keeping insertion order for ties.
func (c *Collection) sort() {
	slices.SortStableFunc(c.tags, func(a, b string) int {
		return len([]rune(a)) - len([]rune(b))
	})
}
