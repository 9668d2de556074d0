package wptokens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStylesheet(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"style.css", true},
		{"assets/scss/_mixins.scss", true},
		{"/abs/theme/editor.sass", true},
		{"legacy.less", true},
		{"theme.json", false},
		{"functions.php", false},
		{"style.css.map", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStylesheet(tt.path))
		})
	}
}

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular stylesheet", path: "/tmp/theme/style.css", want: false},
		{name: "node_modules", path: "/tmp/theme/node_modules/pkg/index.css", want: true},
		{name: "minified bundle", path: "/tmp/theme/build/app.min.css", want: true},
		{name: "relative node_modules", path: "node_modules/x.scss", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldSkipFile(tt.path))
		})
	}
}

func TestExpandGlobPatternsWithStats(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{
		"style.css",
		"assets/editor.scss",
		"assets/app.min.css",
		"node_modules/lib/lib.css",
		"functions.php",
	}
	for _, f := range files {
		path := filepath.Join(tmpDir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("a { color: red; }"), 0644))
	}

	pattern := filepath.Join(tmpDir, StylesheetPattern)
	// The same pattern twice must not count files twice
	matches, stats, err := expandGlobPatternsWithStats([]string{pattern, pattern})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(tmpDir, "style.css"),
		filepath.Join(tmpDir, "assets", "editor.scss"),
	}, matches)
	assert.Equal(t, 4, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 2, stats.FilesSkipped)
}

func TestExpandGlobPatternsWithStats_BadPattern(t *testing.T) {
	_, _, err := expandGlobPatternsWithStats([]string{"[unclosed"})
	require.Error(t, err)
}

func TestScanStylesheets(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.css"),
		[]byte("a { color: var(--wp--preset--color--a); }"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "b.scss"),
		[]byte("b { margin: var(--wp--preset--spacing--20); }"), 0644))

	scan, err := ScanStylesheets([]string{filepath.Join(tmpDir, "*.{css,scss}")}, false)
	require.NoError(t, err)

	assert.Equal(t, 2, scan.Stats.FilesScanned)
	assert.Len(t, scan.References, 2)
	assert.Len(t, scan.Declarations, 2)
	assert.Empty(t, scan.Warnings)
}
