package indexer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudnationhq/cpu-keywords-mcp/internal/database"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/keywords"
	"github.com/cloudnationhq/cpu-keywords-mcp/pkg/catalog"
)

func newTestIndexer(t *testing.T) *Indexer {
	t.Helper()
	db, err := database.Open(database.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewIndexer(db, keywords.NewGenerator(keywords.Options{}), nil)
}

func TestIndexNames(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndexer(t)

	progress, err := idx.IndexNames(ctx, []string{"Intel Core i5-1235U", " ™ ", "AMD Ryzen 5 5500U"})
	require.NoError(t, err)
	assert.Equal(t, 3, progress.TotalNames)
	assert.Equal(t, 2, progress.IndexedNames)
	assert.Equal(t, 1, progress.SkippedNames)
	assert.Empty(t, progress.Errors)

	cpus, err := idx.List(ctx)
	require.NoError(t, err)
	require.Len(t, cpus, 2)
	assert.Equal(t, "AMD Ryzen 5 5500U", cpus[0].Name)
	assert.Equal(t, "amd", cpus[0].Brand)
	assert.Equal(t, "ryzen 5", cpus[0].Series)
}

func TestIndexNamesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	progress, err := newTestIndexer(t).IndexNames(ctx, []string{"Snapdragon 888"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, progress.IndexedNames)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndexer(t)
	_, err := idx.IndexNames(ctx, []string{"Intel Core i5-1235U", "AMD Ryzen 5 5500U", "Qualcomm Snapdragon 8 Gen 3"})
	require.NoError(t, err)

	tests := []struct {
		query string
		want  string
	}{
		{"r5 5500u", "AMD Ryzen 5 5500U"},
		{"I5-1235U", "Intel Core i5-1235U"},
		{"sd8gen3", "Qualcomm Snapdragon 8 Gen 3"},
		{"انتل i5 1235u", "Intel Core i5-1235U"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res, err := idx.Search(ctx, catalog.SearchQuery{Query: tt.query, Limit: 5})
			require.NoError(t, err)
			require.NotEmpty(t, res.CPUs)
			assert.Equal(t, tt.want, res.CPUs[0].Name)
			assert.True(t, res.CPUs[0].Exact)
			assert.Equal(t, len(res.CPUs), res.Total)
		})
	}

	res, err := idx.Search(ctx, catalog.SearchQuery{Query: "   "})
	require.NoError(t, err)
	assert.Zero(t, res.Total)
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndexer(t)
	_, err := idx.IndexNames(ctx, []string{"MediaTek Dimensity 9200"})
	require.NoError(t, err)

	cpu, err := idx.Lookup(ctx, "  MediaTek   Dimensity 9200")
	require.NoError(t, err)
	assert.Equal(t, "mediatek", cpu.Brand)
	assert.Equal(t, keywords.GenerateCPUKeywords("MediaTek Dimensity 9200"), cpu.Keywords)

	_, err = idx.Lookup(ctx, "Helio G99")
	assert.True(t, errors.Is(err, database.ErrNotFound))
}

func TestIndexDirectory(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "laptops.txt"), []byte("# laptops\nIntel Core i7-13700H\nAMD Ryzen 7 5800X\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "phones.txt"), []byte("Snapdragon 888\n\nMediaTek Helio G99\n"), 0o644))

	idx := newTestIndexer(t)
	progress, err := idx.IndexDirectory(ctx, dir)
	require.NoError(t, err)
	assert.Len(t, progress.Files, 2)
	assert.Equal(t, 4, progress.TotalNames)
	assert.Equal(t, 4, progress.IndexedNames)

	_, err = idx.IndexDirectory(ctx, filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
