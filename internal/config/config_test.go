package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("kwmcp", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(newFlagSet(t), nil)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 512, cfg.CacheSize)
	assert.Equal(t, 10, cfg.SearchLimit)
	assert.False(t, cfg.TypoStripSpaces)
	assert.Empty(t, cfg.VocabularyFile)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := "log_level: warn\nsearch_limit: 20\ncache_size: 64\ntypo_strip_spaces: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kwmcp.yaml"), []byte(yaml), 0o644))
	t.Setenv("KWMCP_SEARCH_LIMIT", "30")
	t.Setenv("KWMCP_CACHE_SIZE", "96")

	cfg, err := Load(newFlagSet(t, "--cache_size=128"), nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel, "config file over defaults")
	assert.True(t, cfg.TypoStripSpaces)
	assert.Equal(t, 30, cfg.SearchLimit, "env over config file")
	assert.Equal(t, 128, cfg.CacheSize, "flag over env")
}

func TestLoadExplicitConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"env": "prod", "search_limit": 5}`), 0o644))

	cfg, err := Load(newFlagSet(t, "--config", path), nil)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 5, cfg.SearchLimit)

	_, err = Load(newFlagSet(t, "--config", path+".missing"), nil)
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{"env", []string{"--env=staging"}},
		{"log level", []string{"--log_level=verbose"}},
		{"cache size", []string{"--cache_size=0"}},
		{"search limit", []string{"--search_limit=-1"}},
		{"catalog dir", []string{"--catalog_dir=" + filepath.Join(t.TempDir(), "missing")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newFlagSet(t, tt.args...), nil)
			assert.ErrorContains(t, err, "configuration errors")
		})
	}
}

func TestDump(t *testing.T) {
	assert.Contains(t, Config{LogLevel: "debug"}.Dump(), `"LogLevel": "debug"`)
}
