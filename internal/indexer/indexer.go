// Package indexer builds a searchable keyword index for CPU names.
package indexer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cloudnationhq/cpu-keywords-mcp/internal/database"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/keywords"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/repository"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/util"
	"github.com/cloudnationhq/cpu-keywords-mcp/pkg/catalog"
)

// Expander turns a CPU name into its keyword expansion
type Expander interface {
	Expand(name string) keywords.Expansion
}

// Indexer stores CPU keyword expansions and answers searches over them
type Indexer struct {
	db       *database.DB
	expander Expander
	logger   *zap.Logger
}

// NewIndexer creates a new indexer
func NewIndexer(db *database.DB, expander Expander, logger *zap.Logger) *Indexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Indexer{db: db, expander: expander, logger: logger}
}

// IndexNames expands and stores every CPU name. Names that normalize to an
// empty string are skipped; storage errors are collected in the progress.
func (i *Indexer) IndexNames(ctx context.Context, names []string) (*catalog.IndexProgress, error) {
	progress := &catalog.IndexProgress{TotalNames: len(names)}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return progress, err
		}

		exp := i.expander.Expand(name)
		if exp.Name == "" {
			progress.SkippedNames++
			continue
		}

		cpu := database.CPU{
			Name:       exp.Name,
			Brand:      exp.Info.Brand.String(),
			Series:     exp.Info.Series,
			Model:      exp.Info.Model,
			Suffix:     exp.Info.Suffix,
			Generation: exp.Info.Generation,
		}
		if _, err := i.db.UpsertCPU(ctx, cpu, exp.Keywords); err != nil {
			errMsg := fmt.Sprintf("Failed to index %s: %v", exp.Name, err)
			i.logger.Warn("index failed", zap.String("cpu", exp.Name), zap.Error(err))
			progress.Errors = append(progress.Errors, errMsg)
			continue
		}

		i.logger.Debug("indexed cpu", zap.String("cpu", exp.Name), zap.Int("keywords", len(exp.Keywords)))
		progress.IndexedNames++
	}

	return progress, nil
}

// IndexDirectory indexes every catalog file found in basePath
func (i *Indexer) IndexDirectory(ctx context.Context, basePath string) (*catalog.IndexProgress, error) {
	manager := repository.NewManager(basePath)
	files, err := manager.ScanCatalogFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find catalog files: %w", err)
	}

	i.logger.Info("indexing catalog directory", zap.String("path", basePath), zap.Int("files", len(files)))

	total := &catalog.IndexProgress{Files: files}
	for _, file := range files {
		names, err := repository.ReadCatalog(file)
		if err != nil {
			total.Errors = append(total.Errors, err.Error())
			continue
		}

		progress, err := i.IndexNames(ctx, names)
		if progress != nil {
			total.TotalNames += progress.TotalNames
			total.IndexedNames += progress.IndexedNames
			total.SkippedNames += progress.SkippedNames
			total.Errors = append(total.Errors, progress.Errors...)
		}
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// Search finds indexed CPUs whose keywords match the query or one of its spelling variants
func (i *Indexer) Search(ctx context.Context, query catalog.SearchQuery) (*catalog.SearchResult, error) {
	variants := util.ExpandQueryVariants(query.Query)
	result := &catalog.SearchResult{Query: query.Query, Variants: variants}
	if len(variants) == 0 {
		return result, nil
	}

	hits, err := i.db.SearchCPUs(ctx, variants, query.Limit)
	if err != nil {
		return nil, err
	}

	for _, hit := range hits {
		result.CPUs = append(result.CPUs, catalog.Match{
			CPU:     toCatalogCPU(hit.CPU, nil),
			Exact:   hit.Exact,
			Matches: hit.Matches,
		})
	}
	result.Total = len(result.CPUs)

	i.logger.Debug("catalog search", zap.String("query", query.Query), zap.Int("hits", result.Total))
	return result, nil
}

// Lookup returns an indexed CPU together with its keywords
func (i *Indexer) Lookup(ctx context.Context, name string) (*catalog.CPU, error) {
	cpu, err := i.db.GetCPU(ctx, util.NormalizeName(name))
	if err != nil {
		return nil, err
	}
	kws, err := i.db.GetKeywords(ctx, cpu.ID)
	if err != nil {
		return nil, err
	}
	out := toCatalogCPU(*cpu, kws)
	return &out, nil
}

// List returns every indexed CPU without keywords
func (i *Indexer) List(ctx context.Context) ([]catalog.CPU, error) {
	cpus, err := i.db.ListCPUs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.CPU, 0, len(cpus))
	for _, cpu := range cpus {
		out = append(out, toCatalogCPU(cpu, nil))
	}
	return out, nil
}

func toCatalogCPU(cpu database.CPU, kws []string) catalog.CPU {
	return catalog.CPU{
		Name:       cpu.Name,
		Brand:      cpu.Brand,
		Series:     cpu.Series,
		Model:      cpu.Model,
		Suffix:     cpu.Suffix,
		Generation: cpu.Generation,
		Keywords:   kws,
		IndexedAt:  cpu.IndexedAt,
	}
}
