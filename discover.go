package wptokens

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ThemeFileName is the file WordPress reads theme settings from
const ThemeFileName = "theme.json"

// ErrThemeNotFound is returned when no theme.json can be located
var ErrThemeNotFound = errors.New("theme.json file not found")

// MultipleThemesError is returned when discovery finds more than one theme.json
// and the caller has to choose
type MultipleThemesError struct {
	Paths []string
}

func (e *MultipleThemesError) Error() string {
	return fmt.Sprintf("multiple theme.json files found: %s", strings.Join(e.Paths, ", "))
}

var themeDirPattern = regexp.MustCompile(`^(.*/wp-content/themes/[^/]+/)`)

// ThemePathFromFile returns the theme.json path of the theme containing file,
// or "" when file is not inside wp-content/themes/<theme>/
func ThemePathFromFile(file string) string {
	m := themeDirPattern.FindStringSubmatch(filepath.ToSlash(file))
	if m == nil {
		return ""
	}
	return filepath.FromSlash(m[1] + ThemeFileName)
}

// FindThemeFiles lists theme.json candidates below workspace.
// userPath may name a theme.json file or a directory to search instead of
// the whole workspace. node_modules and gitignored paths are skipped.
func FindThemeFiles(workspace, userPath string) ([]string, error) {
	if strings.HasSuffix(userPath, ThemeFileName) {
		return []string{inWorkspace(workspace, userPath)}, nil
	}

	root := workspace
	if userPath != "" {
		root = inWorkspace(workspace, userPath)
	}
	if root == "" {
		root = "."
	}

	// Use doublestar for ** glob support
	matches, err := doublestar.Glob(os.DirFS(root), "**/"+ThemeFileName)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", root, err)
	}

	gi := loadWorkspaceIgnore(root)

	seen := make(map[string]bool)
	files := make([]string, 0, len(matches))
	for _, match := range matches {
		if isVendored(match) {
			continue
		}
		if gi != nil && gi.MatchesPath(match) {
			continue
		}

		path := filepath.Join(root, filepath.FromSlash(match))
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files, nil
}

// ResolveThemeFile picks the theme.json to load: an explicit theme.json path, then the
// theme containing the active file, then a search of the configured directory or workspace.
func ResolveThemeFile(config Config) (string, error) {
	if strings.HasSuffix(config.ThemePath, ThemeFileName) {
		return inWorkspace(config.Workspace, config.ThemePath), nil
	}

	if config.ThemePath == "" && config.ActiveFile != "" {
		if path := ThemePathFromFile(config.ActiveFile); path != "" {
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}

	files, err := FindThemeFiles(config.Workspace, config.ThemePath)
	if err != nil {
		return "", err
	}

	switch len(files) {
	case 0:
		return "", ErrThemeNotFound
	case 1:
		return files[0], nil
	default:
		return "", &MultipleThemesError{Paths: files}
	}
}

// inWorkspace resolves a relative user path against the workspace
func inWorkspace(workspace, path string) string {
	if filepath.IsAbs(path) || workspace == "" {
		return path
	}
	return filepath.Join(workspace, path)
}

// isVendored reports whether a slash-separated relative path goes through node_modules
func isVendored(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if part == "node_modules" {
			return true
		}
	}
	return false
}

// loadWorkspaceIgnore compiles root/.gitignore. A missing file is not an error.
func loadWorkspaceIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
