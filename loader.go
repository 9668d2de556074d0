package wptokens

import (
	"fmt"
	"os"

	"github.com/yacobolo/wptokens/internal/themejson"
)

// Load is the main entry point: it locates the theme.json for config, parses it and
// feeds it to store.
func Load(config Config, store *themejson.Store) (*LoadResult, error) {
	// 1. Locate theme.json
	path, err := ResolveThemeFile(config)
	if err != nil {
		return nil, fmt.Errorf("resolve theme: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(os.Stderr, "Using %s\n", path)
	}

	// 2. Parse and apply
	if err := loadInto(store, path); err != nil {
		return nil, err
	}

	// 3. Summarize
	result := &LoadResult{
		ThemePath:      path,
		CategoryCounts: make(map[themejson.Category]int, len(themejson.Categories)),
	}
	for _, spec := range themejson.Categories {
		n := len(store.Tokens(spec.Category))
		result.CategoryCounts[spec.Category] = n
		result.TokensLoaded += n

		if config.Verbose {
			fmt.Fprintf(os.Stderr, "  %-10s %d tokens\n", spec.Category, n)
		}
	}

	result.Warnings = findDuplicateNames(store.ToArray())

	return result, nil
}

// Reload re-reads the file recorded in store's source path
func Reload(store *themejson.Store) error {
	path := store.SourcePath()
	if path == "" {
		return ErrThemeNotFound
	}
	return loadInto(store, path)
}

// ReadThemeFile reads and parses a theme.json file
func ReadThemeFile(path string) (themejson.Value, error) {
	// #nosec G304 - path comes from discovery or user configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return themejson.Value{}, fmt.Errorf("read file: %w", err)
	}

	doc, err := themejson.Decode(data)
	if err != nil {
		return themejson.Value{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

func loadInto(store *themejson.Store, path string) error {
	doc, err := ReadThemeFile(path)
	if err != nil {
		return err
	}

	store.SetSourcePath(path)
	if err := store.Update(doc); err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}
