package mcp

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cloudnationhq/cpu-keywords-mcp/internal/database"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/formatter"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/tags"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/util"
	"github.com/cloudnationhq/cpu-keywords-mcp/pkg/catalog"
)

type toolHandler func(ctx context.Context, args any) map[string]any

func (s *Server) toolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"generate_cpu_keywords":     s.handleGenerateKeywords,
		"parse_cpu_info":            s.handleParseCPUInfo,
		"duplicate_arabic_numerals": s.handleDuplicateArabicNumerals,
		"add_tag":                   s.handleAddTag,
		"add_tags":                  s.handleAddTags,
		"list_tags":                 s.handleListTags,
		"remove_tag":                s.handleRemoveTag,
		"edit_tag":                  s.handleEditTag,
		"clear_tags":                s.handleClearTags,
		"undo_clear":                s.handleUndoClear,
		"export_tags":               s.handleExportTags,
		"index_cpus":                s.handleIndexCPUs,
		"search_cpus":               s.handleSearchCPUs,
		"get_cpu":                   s.handleGetCPU,
		"list_cpus":                 s.handleListCPUs,
	}
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func numberProp(description string) map[string]any {
	return map[string]any{"type": "number", "description": description}
}

func toolDefinitions() []map[string]any {
	filterProp := stringProp("Optional: only consider tags containing this text")

	return []map[string]any{
		{
			"name":        "generate_cpu_keywords",
			"description": "Expand a CPU model name (e.g. 'Intel Core i5-1235U') into Arabic/English search keyword variants",
			"inputSchema": objectSchema(map[string]any{
				"name":  stringProp("CPU model name"),
				"limit": numberProp("Optional: only return the first N keywords"),
			}, "name"),
		},
		{
			"name":        "parse_cpu_info",
			"description": "Show the brand, series, model, suffix and generation parsed from a CPU name",
			"inputSchema": objectSchema(map[string]any{
				"name": stringProp("CPU model name"),
			}, "name"),
		},
		{
			"name":        "duplicate_arabic_numerals",
			"description": "Sanitize a comma separated tag list and add Arabic-Indic digit copies of tags mixing Arabic text and digits",
			"inputSchema": objectSchema(map[string]any{
				"tags": stringProp("Tags separated by ',' or '،'"),
			}, "tags"),
		},
		{
			"name":        "add_tag",
			"description": "Add one tag to the collection, expanding CPU names into all their keyword variants",
			"inputSchema": objectSchema(map[string]any{
				"tag":    stringProp("Tag or CPU name"),
				"filter": filterProp,
			}, "tag"),
		},
		{
			"name":        "add_tags",
			"description": "Add a comma separated list of tags as-is, reporting duplicates and reserved brand/category names",
			"inputSchema": objectSchema(map[string]any{
				"tags": stringProp("Tags separated by ',' or '،'"),
			}, "tags"),
		},
		{
			"name":        "list_tags",
			"description": "List the tags in the collection, shortest first",
			"inputSchema": objectSchema(map[string]any{
				"filter": filterProp,
			}),
		},
		{
			"name":        "remove_tag",
			"description": "Remove the tag at an index of the (optionally filtered) tag list",
			"inputSchema": objectSchema(map[string]any{
				"index":  numberProp("Index in the listed tags"),
				"filter": filterProp,
			}, "index"),
		},
		{
			"name":        "edit_tag",
			"description": "Take the tag at an index out of the collection so an edited version can be added back",
			"inputSchema": objectSchema(map[string]any{
				"index":  numberProp("Index in the listed tags"),
				"filter": filterProp,
			}, "index"),
		},
		{
			"name":        "clear_tags",
			"description": "Remove every tag; undo_clear restores them",
			"inputSchema": objectSchema(map[string]any{}),
		},
		{
			"name":        "undo_clear",
			"description": "Restore the tags removed by the last clear_tags",
			"inputSchema": objectSchema(map[string]any{}),
		},
		{
			"name":        "export_tags",
			"description": "Return every tag joined with commas, ready to paste",
			"inputSchema": objectSchema(map[string]any{}),
		},
		{
			"name":        "index_cpus",
			"description": "Generate and index keywords for CPU names so search_cpus can find them",
			"inputSchema": objectSchema(map[string]any{
				"names": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "CPU model names",
				},
				"directory": stringProp("Optional: directory of *.txt catalog files, one CPU name per line"),
			}),
		},
		{
			"name":        "search_cpus",
			"description": "Find indexed CPUs by any keyword variant (e.g. 'r5 5500u', 'sd8gen3', 'انتل i5 1235u')",
			"inputSchema": objectSchema(map[string]any{
				"query": stringProp("Search query"),
				"limit": numberProp("Maximum number of results (default: 10)"),
			}, "query"),
		},
		{
			"name":        "get_cpu",
			"description": "Show an indexed CPU with all of its keywords",
			"inputSchema": objectSchema(map[string]any{
				"name": stringProp("CPU model name"),
			}, "name"),
		},
		{
			"name":        "list_cpus",
			"description": "List all indexed CPUs",
			"inputSchema": objectSchema(map[string]any{}),
		},
	}
}

func (s *Server) handleGenerateKeywords(_ context.Context, args any) map[string]any {
	a, err := UnmarshalArgs[struct {
		Name  string `json:"name"`
		Limit int    `json:"limit"`
	}](args)
	if err != nil {
		return ErrorResponse("Error: Invalid CPU name")
	}
	if util.NormalizeName(a.Name) == "" {
		return ErrorResponse("Field cannot be blank!")
	}

	exp := s.keywords.Expand(a.Name)
	if a.Limit > 0 && len(exp.Keywords) > a.Limit {
		exp.Keywords = exp.Keywords[:a.Limit]
	}
	return SuccessResponse(formatter.KeywordSummary(exp))
}

func (s *Server) handleParseCPUInfo(_ context.Context, args any) map[string]any {
	a, err := UnmarshalArgs[struct {
		Name string `json:"name"`
	}](args)
	if err != nil {
		return ErrorResponse("Error: Invalid CPU name")
	}
	return SuccessResponse(formatter.CPUInfoSummary(s.keywords.Expand(a.Name).Info))
}

func (s *Server) handleDuplicateArabicNumerals(_ context.Context, args any) map[string]any {
	a, err := UnmarshalArgs[struct {
		Tags string `json:"tags"`
	}](args)
	if err != nil {
		return ErrorResponse("Error: Invalid tags")
	}

	var sanitized []string
	for _, t := range util.SplitTags(a.Tags) {
		if t = util.SanitizeTag(t); t != "" {
			sanitized = append(sanitized, t)
		}
	}
	return SuccessResponse(formatter.KeywordList("Tags", util.ArabicNumeralDuplicates(sanitized)))
}

func (s *Server) handleAddTag(_ context.Context, args any) map[string]any {
	a, err := UnmarshalArgs[struct {
		Tag    string `json:"tag"`
		Filter string `json:"filter"`
	}](args)
	if err != nil {
		return ErrorResponse("Error: Invalid tag")
	}

	added, err := s.tags.Add(a.Tag)
	if err != nil {
		return ErrorResponse(tagErrorMessage(err))
	}

	text := fmt.Sprintf("Keyword added successfully! (%d keywords)\n\n", len(added))
	return SuccessResponse(text + formatter.TagList(s.tags.Tags(), s.tags.Filter(a.Filter), a.Filter))
}

func (s *Server) handleAddTags(_ context.Context, args any) map[string]any {
	a, err := UnmarshalArgs[struct {
		Tags string `json:"tags"`
	}](args)
	if err != nil {
		return ErrorResponse("Error: Invalid tags")
	}

	res := s.tags.AddBatch(a.Tags)
	return TextResponse(formatter.BatchSummary(res), res.Added == 0)
}

func (s *Server) handleListTags(_ context.Context, args any) map[string]any {
	a, err := UnmarshalArgs[struct {
		Filter string `json:"filter"`
	}](args)
	if err != nil {
		return ErrorResponse("Error: Invalid filter")
	}
	return SuccessResponse(formatter.TagList(s.tags.Tags(), s.tags.Filter(a.Filter), a.Filter))
}

type indexArgs struct {
	Index  int    `json:"index"`
	Filter string `json:"filter"`
}

func (s *Server) handleRemoveTag(_ context.Context, args any) map[string]any {
	a, err := UnmarshalArgs[indexArgs](args)
	if err != nil {
		return ErrorResponse("Error: Invalid index")
	}

	tag, err := s.tags.Remove(a.Index, a.Filter)
	if err != nil {
		return ErrorResponse(tagErrorMessage(err))
	}
	return SuccessResponse(fmt.Sprintf("Keyword removed: %s\n", tag))
}

func (s *Server) handleEditTag(_ context.Context, args any) map[string]any {
	a, err := UnmarshalArgs[indexArgs](args)
	if err != nil {
		return ErrorResponse("Error: Invalid index")
	}

	tag, err := s.tags.Edit(a.Index, a.Filter)
	if err != nil {
		return ErrorResponse(tagErrorMessage(err))
	}
	return SuccessResponse(fmt.Sprintf("Editing keyword: %s\nSubmit the new version with add_tag.\n", tag))
}

func (s *Server) handleClearTags(_ context.Context, _ any) map[string]any {
	n := s.tags.Clear()
	if n == 0 {
		return SuccessResponse("No keywords to clear\n")
	}
	return SuccessResponse(fmt.Sprintf("Keywords cleared successfully! (%d removed, run undo_clear to restore)\n", n))
}

func (s *Server) handleUndoClear(_ context.Context, _ any) map[string]any {
	if !s.tags.Undo() {
		return ErrorResponse("Nothing to restore\n")
	}
	return SuccessResponse(fmt.Sprintf("Keywords restored successfully! (%d keywords)\n", s.tags.Len()))
}

func (s *Server) handleExportTags(_ context.Context, _ any) map[string]any {
	if s.tags.Len() == 0 {
		return ErrorResponse("No keywords added\n")
	}
	return SuccessResponse(s.tags.Export())
}

func (s *Server) handleIndexCPUs(ctx context.Context, args any) map[string]any {
	a, err := UnmarshalArgs[struct {
		Names     []string `json:"names"`
		Directory string   `json:"directory"`
	}](args)
	if err != nil {
		return ErrorResponse("Error: Invalid CPU names")
	}
	if len(a.Names) == 0 && a.Directory == "" {
		return ErrorResponse("Error: names or directory is required")
	}

	total := &catalog.IndexProgress{}
	if len(a.Names) > 0 {
		progress, err := s.indexer.IndexNames(ctx, a.Names)
		if err != nil {
			return ErrorResponse(fmt.Sprintf("Index failed: %v", err))
		}
		mergeProgress(total, progress)
	}
	if a.Directory != "" {
		progress, err := s.indexer.IndexDirectory(ctx, a.Directory)
		if err != nil {
			return ErrorResponse(fmt.Sprintf("Index failed: %v", err))
		}
		mergeProgress(total, progress)
	}

	return SuccessResponse(formatter.IndexSummary(total))
}

func mergeProgress(dst, src *catalog.IndexProgress) {
	dst.TotalNames += src.TotalNames
	dst.IndexedNames += src.IndexedNames
	dst.SkippedNames += src.SkippedNames
	dst.Files = append(dst.Files, src.Files...)
	dst.Errors = append(dst.Errors, src.Errors...)
}

func (s *Server) handleSearchCPUs(ctx context.Context, args any) map[string]any {
	a, err := UnmarshalArgs[catalog.SearchQuery](args)
	if err != nil {
		return ErrorResponse("Error: Invalid search query")
	}
	if a.Limit <= 0 {
		a.Limit = s.opts.SearchLimit
	}

	res, err := s.indexer.Search(ctx, a)
	if err != nil {
		s.logger.Error("search failed", zap.String("query", a.Query), zap.Error(err))
		return ErrorResponse(fmt.Sprintf("Error searching CPUs: %v", err))
	}
	return SuccessResponse(formatter.SearchResults(res))
}

func (s *Server) handleGetCPU(ctx context.Context, args any) map[string]any {
	a, err := UnmarshalArgs[struct {
		Name string `json:"name"`
	}](args)
	if err != nil {
		return ErrorResponse("Error: Invalid CPU name")
	}

	cpu, err := s.indexer.Lookup(ctx, a.Name)
	if errors.Is(err, database.ErrNotFound) {
		return ErrorResponse(fmt.Sprintf("CPU '%s' not found", a.Name))
	}
	if err != nil {
		return ErrorResponse(fmt.Sprintf("Error loading CPU: %v", err))
	}
	return SuccessResponse(formatter.KeywordList(cpu.Name, cpu.Keywords))
}

func (s *Server) handleListCPUs(ctx context.Context, _ any) map[string]any {
	cpus, err := s.indexer.List(ctx)
	if err != nil {
		return ErrorResponse(fmt.Sprintf("Error loading CPUs: %v", err))
	}
	return SuccessResponse(formatter.CPUList(cpus))
}

func tagErrorMessage(err error) string {
	switch {
	case errors.Is(err, tags.ErrBlank):
		return "Field cannot be blank!"
	case errors.Is(err, tags.ErrDuplicate):
		return "Keyword already exists!"
	case errors.Is(err, tags.ErrBrandConflict):
		return "Keyword already exists in brand keywords!"
	case errors.Is(err, tags.ErrCategoryConflict):
		return "Keyword already exists in category keywords!"
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
