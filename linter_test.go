package wptokens

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/wptokens/internal/themejson"
)

func lintTokens() []themejson.Token {
	return []themejson.Token{
		{Name: "wp--preset--color--primary", Value: themejson.String("#000")},
		{Name: "wp--preset--color--secondary", Value: themejson.String("#FFF")},
		{Name: "wp--custom--spacing", Value: themejson.String("1rem")},
	}
}

func lintScan() *StylesheetScan {
	return &StylesheetScan{
		References: []PropertyReference{
			{Name: "wp--preset--color--primary", Location: FileLocation{File: "a.css", Line: 1, Column: 16}},
			{Name: "wp--preset--color--primry", Location: FileLocation{File: "a.css", Line: 2, Column: 16, Text: "  color: var(--wp--preset--color--primry);"}},
			{Name: "wp--custom--nothing-like-this-at-all", Location: FileLocation{File: "a.css", Line: 3, Column: 16}},
		},
		Declarations: []Declaration{
			{Property: "background", Value: "#fff", Location: FileLocation{File: "a.css", Line: 4, Column: 15}},
			{Property: "color", Value: "red", Location: FileLocation{File: "a.css", Line: 5, Column: 10}},
			{Property: "--brand", Value: "#FFF", Location: FileLocation{File: "a.css", Line: 6, Column: 11}},
		},
		Stats: ScanStats{FilesDiscovered: 1, FilesScanned: 1},
	}
}

func TestAnalyzeUsage(t *testing.T) {
	result := analyzeUsage(lintTokens(), lintScan(), true)

	assert.Equal(t, 3, result.TokensDefined)
	assert.Equal(t, 1, result.TokensReferenced)
	assert.Equal(t, 3, result.References)
	assert.Equal(t, 2, result.UnknownReferences)
	assert.Equal(t, 1, result.HardcodedValues)
	assert.Equal(t, 1, result.FilesScanned)
	assert.InDelta(t, 33.3, result.UsagePercentage, 0.1)

	require.Len(t, result.Issues, 3)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)

	// Typo gets a suggestion
	typo := result.Issues[0]
	assert.Equal(t, SeverityError, typo.Severity)
	assert.Equal(t, fmt.Sprintf(IssueDidYouMean, "--wp--preset--color--primry", "--wp--preset--color--primary"), typo.Text)
	require.NotNil(t, typo.Replacement)
	assert.Equal(t, "--wp--preset--color--primary", typo.Replacement.NewText)
	assert.Equal(t, len("--wp--preset--color--primry"), typo.Replacement.InlineLength)
	assert.Equal(t, []string{"  color: var(--wp--preset--color--primry);"}, typo.SourceLines)
	assert.Equal(t, IssuePos{Filename: "a.css", Line: 2, Column: 16}, typo.Pos)

	// Nothing close enough
	unknown := result.Issues[1]
	assert.Equal(t, fmt.Sprintf(IssueUnknownProperty, "--wp--custom--nothing-like-this-at-all"), unknown.Text)
	assert.Nil(t, unknown.Replacement)

	// Hardcoded values compare case-insensitively
	hardcoded := result.Issues[2]
	assert.Equal(t, SeverityWarning, hardcoded.Severity)
	require.NotNil(t, hardcoded.Replacement)
	assert.Equal(t, "var(--wp--preset--color--secondary)", hardcoded.Replacement.NewText)
	assert.Equal(t, 4, hardcoded.Replacement.InlineLength)

	require.Len(t, result.UnusedTokens, 2)
	assert.Equal(t, "wp--preset--color--secondary", result.UnusedTokens[0].Name)
	assert.Equal(t, "wp--custom--spacing", result.UnusedTokens[1].Name)
}

func TestAnalyzeUsage_HardcodedDisabled(t *testing.T) {
	result := analyzeUsage(lintTokens(), lintScan(), false)

	assert.Equal(t, 0, result.HardcodedValues)
	assert.Equal(t, 0, result.WarningCount)
	assert.Len(t, result.Issues, 2)
}

func TestAnalyzeUsage_NoTokens(t *testing.T) {
	result := analyzeUsage(nil, &StylesheetScan{}, true)

	assert.Equal(t, 0, result.TokensDefined)
	assert.Zero(t, result.UsagePercentage)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.UnusedTokens)
}

func TestTokensByValue(t *testing.T) {
	tokens := []themejson.Token{
		{Name: "wp--preset--color--a", Value: themejson.String("#ABC")},
		{Name: "wp--preset--color--b", Value: themejson.String("#abc")},
		{Name: "wp--custom--n", Value: themejson.Number("2")},
		{Name: "wp--custom--empty", Value: themejson.String("")},
	}

	byValue := tokensByValue(tokens)
	require.Len(t, byValue, 1)
	assert.Equal(t, "wp--preset--color--a", byValue["#abc"].Name)
}

func TestClosestName(t *testing.T) {
	names := []string{
		"wp--preset--color--primary",
		"wp--preset--color--secondary",
		"wp--preset--spacing--20",
		"wp--preset--spacing--30",
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "one typo", in: "wp--preset--color--primry", want: "wp--preset--color--primary"},
		{name: "tie goes to alphabetical first", in: "wp--preset--spacing--40", want: "wp--preset--spacing--20"},
		{name: "too far", in: "wp--custom--whatever", want: ""},
		{name: "exact match", in: "wp--preset--spacing--30", want: "wp--preset--spacing--30"},
		{name: "distance counts runes", in: "wp--preset--color--primäry", want: "wp--preset--color--primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, closestName(tt.in, names))
		})
	}

	assert.Empty(t, closestName("anything", nil))
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "a"}, {Text: "b"}, {Text: "c"},
	}

	t.Run("max issues per linter", func(t *testing.T) {
		limited, truncated := limitIssues(issues, LintConfig{MaxIssuesPerLinter: 2})
		assert.Len(t, limited, 2)
		assert.Equal(t, 3, truncated)
	})

	t.Run("max same issues", func(t *testing.T) {
		limited, truncated := limitIssues(issues, LintConfig{MaxSameIssues: 1})
		require.Len(t, limited, 3)
		assert.Equal(t, "a", limited[0].Text)
		assert.Equal(t, "b", limited[1].Text)
		assert.Equal(t, "c", limited[2].Text)
		assert.Equal(t, 2, truncated)
	})

	t.Run("both limits", func(t *testing.T) {
		limited, truncated := limitIssues(issues, LintConfig{MaxIssuesPerLinter: 4, MaxSameIssues: 2})
		assert.Len(t, limited, 3)
		assert.Equal(t, 2, truncated)
	})
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[░░░░░░░░░░░░░░░░░░░░] 0.0%", progressBar(0))
	assert.Equal(t, "[██████████░░░░░░░░░░] 50.0%", progressBar(50))
	assert.Equal(t, "[████████████████████] 100.0%", progressBar(100))
}

func TestLintEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()

	css := `.wp-block-button {
	background: var(--wp--preset--color--primary);
	color: var(--wp--preset--color--secundary);
	border-color: #FFF;
}
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "blocks.css"), []byte(css), 0644))

	scss := `.card { padding: var(--wp--custom--spacing); }`
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "scss"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "scss", "card.scss"), []byte(scss), 0644))

	// Minified bundles are skipped
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "app.min.css"), []byte("a{color:var(--wp--nope)}"), 0644))

	config := LintConfig{
		ScanPaths: []string{filepath.Join(tmpDir, StylesheetPattern)},
		Hardcoded: true,
	}

	result, err := Lint(config, lintTokens())
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 3, result.References)
	assert.Equal(t, 2, result.TokensReferenced)
	assert.Equal(t, 1, result.UnknownReferences)
	assert.Equal(t, 1, result.HardcodedValues)

	require.Len(t, result.Issues, 2)
	assert.Equal(t, filepath.Join(tmpDir, "blocks.css"), result.Issues[0].Pos.Filename)
	assert.Equal(t, 3, result.Issues[0].Pos.Line)
	assert.Equal(t, 13, result.Issues[0].Pos.Column)
	assert.Contains(t, result.Issues[0].Text, `did you mean "--wp--preset--color--secondary"?`)

	require.Len(t, result.UnusedTokens, 1)
	assert.Equal(t, "wp--preset--color--secondary", result.UnusedTokens[0].Name)
}

func TestLint_MaxIssues(t *testing.T) {
	tmpDir := t.TempDir()
	css := "a {\n" +
		"  color: var(--wp--x);\n" +
		"  color: var(--wp--x);\n" +
		"  color: var(--wp--x);\n" +
		"}\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.css"), []byte(css), 0644))

	result, err := Lint(LintConfig{
		ScanPaths:     []string{filepath.Join(tmpDir, "*.css")},
		MaxSameIssues: 1,
	}, lintTokens())
	require.NoError(t, err)

	assert.Len(t, result.Issues, 1)
	assert.Equal(t, 2, result.TruncatedCount)
	assert.Equal(t, 3, result.ErrorCount)
}
