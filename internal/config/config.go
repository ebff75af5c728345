// Package config loads kwmcp settings from flags, environment and config files.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cloudnationhq/cpu-keywords-mcp/internal/logging"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "KWMCP"

// Config holds the runtime settings
type Config struct {
	Env      string `mapstructure:"env"`       // "dev" | "prod"
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error …

	// VocabularyFile is an optional HCL file with reserved brand/category
	// names and a catalog of CPU names to index at startup.
	VocabularyFile string `mapstructure:"vocabulary_file"`
	// CatalogDir is an optional directory of *.txt catalog files.
	CatalogDir string `mapstructure:"catalog_dir"`

	TypoStripSpaces bool `mapstructure:"typo_strip_spaces"`
	CacheSize       int  `mapstructure:"cache_size"`
	SearchLimit     int  `mapstructure:"search_limit"`
}

// Dump returns the config as indented JSON for debug logging
func (c Config) Dump() string {
	b, _ := json.MarshalIndent(c, "", "  ")
	return string(b)
}

// BindFlags defines the config flags on fs
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a config file (yaml, yml, json or toml)")
	fs.String("env", "dev", `Runtime environment "dev"|"prod"`)
	fs.String("log_level", "info", "Log level")
	fs.String("vocabulary_file", "", "HCL vocabulary file with reserved names and catalog")
	fs.String("catalog_dir", "", "Directory of *.txt CPU catalog files to index")
	fs.Bool("typo_strip_spaces", false, "Also add space-free copies of every keyword")
	fs.Int("cache_size", 512, "Number of keyword expansions to cache")
	fs.Int("search_limit", 10, "Default maximum number of catalog search results")
}

func allKeys() []string {
	return []string{
		"env", "log_level",
		"vocabulary_file", "catalog_dir",
		"typo_strip_spaces", "cache_size", "search_limit",
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("vocabulary_file", "")
	v.SetDefault("catalog_dir", "")
	v.SetDefault("typo_strip_spaces", false)
	v.SetDefault("cache_size", 512)
	v.SetDefault("search_limit", 10)
}

// Load merges defaults → config file → env vars → explicit flags into one Config.
// Final precedence (highest wins): flags(explicit) > env > config > defaults.
//
// The config file is the --config flag when set, otherwise the first of
// kwmcp.{yaml,yml,json,toml} found in the working directory.
func Load(fs *pflag.FlagSet, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for _, k := range allKeys() {
		_ = v.BindEnv(k)
	}

	if err := mergeConfigFile(v, fs, logger); err != nil {
		return nil, err
	}

	setDefaults(v)

	if fs != nil {
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Changed && f.Name != "config" {
				_ = v.BindPFlag(f.Name, f)
			}
		})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func mergeConfigFile(v *viper.Viper, fs *pflag.FlagSet, logger *zap.Logger) error {
	var explicit string
	if fs != nil {
		if f := fs.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
	}

	candidates := []string{explicit}
	if explicit == "" {
		candidates = candidates[:0]
		for _, ext := range [...]string{"yaml", "yml", "json", "toml"} {
			candidates = append(candidates, "kwmcp."+ext)
		}
	}

	for _, file := range candidates {
		b, err := os.ReadFile(file)
		if err != nil {
			if explicit != "" {
				return fmt.Errorf("cannot read config file %s: %w", file, err)
			}
			continue
		}

		v.SetConfigType(strings.TrimPrefix(filepath.Ext(file), "."))
		if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
			if explicit != "" {
				return fmt.Errorf("cannot decode config file %s: %w", file, err)
			}
			logger.Warn("cannot decode config file", zap.String("file", file), zap.Error(err))
			continue
		}

		logger.Info("Loaded config file", zap.String("file", file))
		return nil
	}
	return nil
}

func validate(cfg Config) error {
	var invalid []string

	if cfg.Env != "dev" && cfg.Env != "prod" {
		invalid = append(invalid, `env must be "dev" or "prod"`)
	}
	if !logging.IsValidLogLevel(cfg.LogLevel) {
		invalid = append(invalid, "log_level must be one of "+strings.Join(logging.ValidLogLevels, ", "))
	}
	if cfg.CacheSize <= 0 {
		invalid = append(invalid, "cache_size must be > 0")
	}
	if cfg.SearchLimit <= 0 {
		invalid = append(invalid, "search_limit must be > 0")
	}
	if cfg.CatalogDir != "" {
		if st, err := os.Stat(cfg.CatalogDir); err != nil || !st.IsDir() {
			invalid = append(invalid, "catalog_dir must be an existing directory")
		}
	}

	if len(invalid) == 0 {
		return nil
	}
	return fmt.Errorf("configuration errors: invalid: %s", strings.Join(invalid, ", "))
}
