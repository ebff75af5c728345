// Package repository manages filesystem access to CPU catalog files.
package repository

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CatalogExt is the extension of catalog files: plain text, one CPU name per line
const CatalogExt = ".txt"

// Manager manages catalog directory operations
type Manager struct {
	basePath string
}

// NewManager creates a new repository manager
func NewManager(basePath string) *Manager {
	return &Manager{
		basePath: basePath,
	}
}

// BasePath returns the catalog directory
func (m *Manager) BasePath() string {
	return m.basePath
}

// ScanCatalogFiles lists the catalog files in the base path, sorted by name
func (m *Manager) ScanCatalogFiles(ctx context.Context) ([]string, error) {
	if _, err := os.Stat(m.basePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("base path does not exist: %s", m.basePath)
	}

	entries, err := os.ReadDir(m.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", m.basePath, err)
	}

	var files []string
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), CatalogExt) {
			files = append(files, filepath.Join(m.basePath, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// ReadCatalog returns the CPU names in a catalog file. Blank lines and lines
// starting with '#' are skipped.
func ReadCatalog(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return names, nil
}
