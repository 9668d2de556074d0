package wptokens

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  color: var(--wp--x);",
			column:     15,
			want:       "              ^", // 14 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\tbackground: var(--wp--y);",
			column:     17,
			want:       "\t\t              ^", // 2 tabs + 14 spaces + caret (column 17 in string)
		},
		{
			name:       "start of line",
			sourceLine: "--wp--x: 1px;",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "a { color: red; }",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result LintResult
		want   string
	}{
		{
			name:   "no issues",
			result: LintResult{},
			want:   "0 issues:",
		},
		{
			name: "errors only",
			result: LintResult{Issues: []Issue{
				{FromLinter: LinterName, Severity: SeverityError},
			}},
			want: "1 issue:",
		},
		{
			name: "errors and warnings",
			result: LintResult{Issues: []Issue{
				{FromLinter: LinterName, Severity: SeverityError},
				{FromLinter: LinterName, Severity: SeverityWarning},
				{FromLinter: LinterName, Severity: SeverityWarning},
			}},
			want: "3 issues (1 error, 2 warnings):",
		},
		{
			name: "truncated",
			result: LintResult{
				Issues:         []Issue{{FromLinter: LinterName, Severity: SeverityError}},
				TruncatedCount: 4,
			},
			want: "1 issue (4 issues truncated):",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := NewReporter(&buf, LintConfig{})
			reporter.useColors = false
			reporter.PrintSummary(tt.result)
			require.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestPrintIssues_SortedByPosition(t *testing.T) {
	issues := []Issue{
		{FromLinter: LinterName, Text: "second", Pos: IssuePos{Filename: "b.css", Line: 1, Column: 1}},
		{FromLinter: LinterName, Text: "first", Pos: IssuePos{Filename: "a.css", Line: 3, Column: 9}},
	}

	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printLinterName: true}
	reporter.PrintIssues(issues)

	out := buf.String()
	require.Less(t, strings.Index(out, "a.css:3:9: first (wptokens)"), strings.Index(out, "b.css:1:1: second (wptokens)"))
}
