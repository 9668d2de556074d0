package wptokens

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

const stylesheetName = "*.{css,sass,scss,less}"

// StylesheetPattern matches the files completion and linting apply to
const StylesheetPattern = "**/" + stylesheetName

// FileLocation tracks where a reference or declaration was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column (exact start of the token)
	Text   string // Full line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// StylesheetScan is everything found in the scanned stylesheets
type StylesheetScan struct {
	References   []PropertyReference
	Declarations []Declaration
	Stats        ScanStats
	Warnings     []string
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// IsStylesheet reports whether path is a file completions are offered in
func IsStylesheet(path string) bool {
	ok, err := doublestar.Match(stylesheetName, filepath.Base(path))
	return err == nil && ok
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		// Try to load .gitignore from current directory
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// Gracefully degrade - no .gitignore is fine
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning
//
// Two-layer filtering:
// 1. Pattern check (fast): Skip node_modules and minified bundles
// 2. Gitignore check: Skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	slashed := filepath.ToSlash(path)
	if isVendored(slashed) {
		return true
	}
	if strings.HasSuffix(slashed, ".min.css") {
		return true
	}

	// Absolute paths (like /tmp/...) should not be affected by project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanStylesheets parses every stylesheet matching the given patterns
func ScanStylesheets(scanPatterns []string, verbose bool) (*StylesheetScan, error) {
	files, stats, err := expandGlobPatternsWithStats(scanPatterns)
	if err != nil {
		return nil, err
	}

	if verbose && stats.FilesSkipped > 0 {
		fmt.Fprintf(os.Stderr, "✓ Scanned %d files (skipped %d vendored/ignored files)\n",
			stats.FilesScanned, stats.FilesSkipped)
	}

	scan := &StylesheetScan{Stats: stats}
	for _, file := range files {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(file)
		if err != nil {
			// Keep going, report it
			scan.Warnings = append(scan.Warnings, fmt.Sprintf("Failed to read %s: %v", file, err))
			continue
		}

		refs, decls := ParseStylesheet(string(content), file)
		scan.References = append(scan.References, refs...)
		scan.Declarations = append(scan.Declarations, decls...)
	}

	return scan, nil
}

// expandGlobPatternsWithStats expands globs and tracks statistics
func expandGlobPatternsWithStats(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}
