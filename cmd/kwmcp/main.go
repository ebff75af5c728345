package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloudnationhq/cpu-keywords-mcp/internal/config"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/database"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/indexer"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/keywords"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/logging"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/parser"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/tags"
	"github.com/cloudnationhq/cpu-keywords-mcp/pkg/mcp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "kwmcp",
		Short:         "CPU keyword expansion server",
		Long:          `Expand CPU model names into Arabic/English search keywords, over MCP stdio or from the command line`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(newServeCommand())
	root.AddCommand(newGenerateCommand())
	root.AddCommand(newDuplicateCommand())
	root.AddCommand(newSearchCommand())
	return root
}

// app holds everything built from the loaded config
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	keywords *keywords.Cache
	tags     *tags.Collection
	db       *database.DB
	indexer  *indexer.Indexer
	catalog  []string
}

func (a *app) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close database", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

// newApp loads config and builds the generator, tag collection and
// in-memory catalog index.
func newApp(cmd *cobra.Command) (*app, error) {
	boot := logging.BootstrapLogger()
	cfg, err := config.Load(cmd.Flags(), boot)
	if err != nil {
		return nil, err
	}

	logger, err := logging.BuildLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	logger.Debug("configuration loaded", zap.String("config", cfg.Dump()))

	gen := keywords.NewGenerator(keywords.Options{StripSpaces: cfg.TypoStripSpaces})
	cache, err := keywords.NewCache(gen, cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	var reserved tags.Reserved
	var seed []string
	if cfg.VocabularyFile != "" {
		vocab, err := parser.ParseVocabulary(cfg.VocabularyFile)
		if err != nil {
			return nil, err
		}
		reserved = tags.Reserved{Brands: vocab.Brands, Categories: vocab.Categories}
		seed = vocab.Catalog
		logger.Info("vocabulary loaded",
			zap.String("file", cfg.VocabularyFile),
			zap.Int("brands", len(vocab.Brands)),
			zap.Int("categories", len(vocab.Categories)),
			zap.Int("catalog", len(vocab.Catalog)))
	}

	db, err := database.Open(database.MemoryDSN)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		keywords: cache,
		tags:     tags.New(cache, reserved, logger),
		db:       db,
		indexer:  indexer.NewIndexer(db, cache, logger),
		catalog:  seed,
	}, nil
}

// seedIndex indexes the vocabulary catalog and the catalog directory
func (a *app) seedIndex(ctx context.Context) error {
	if len(a.catalog) > 0 {
		progress, err := a.indexer.IndexNames(ctx, a.catalog)
		if err != nil {
			return err
		}
		a.logger.Info("catalog indexed", zap.Int("indexed", progress.IndexedNames), zap.Int("errors", len(progress.Errors)))
	}
	if a.cfg.CatalogDir != "" {
		progress, err := a.indexer.IndexDirectory(ctx, a.cfg.CatalogDir)
		if err != nil {
			return err
		}
		a.logger.Info("catalog directory indexed",
			zap.String("path", a.cfg.CatalogDir),
			zap.Int("files", len(progress.Files)),
			zap.Int("indexed", progress.IndexedNames),
			zap.Int("errors", len(progress.Errors)))
	}
	return nil
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the keyword tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			if err := a.seedIndex(ctx); err != nil {
				return err
			}

			server := mcp.NewServer(a.keywords, a.tags, a.indexer, a.logger, mcp.Options{SearchLimit: a.cfg.SearchLimit})
			a.logger.Info("starting MCP server on stdio")
			if err := server.Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}
