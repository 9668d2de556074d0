package wptokens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/yacobolo/wptokens/internal/themejson"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths []string // Patterns to scan (e.g., "assets/**/*.{css,scss}")
	Verbose   bool
	Strict    bool // Exit with code 1 if any issue is found
	Hardcoded bool // Warn when a declaration value equals a token value

	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (wptokens) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

// LintResult contains linting analysis results
type LintResult struct {
	// Statistics
	TokensDefined     int     // Tokens loaded from theme.json
	TokensReferenced  int     // Distinct tokens used via var()
	UsagePercentage   float64 // TokensReferenced / TokensDefined
	References        int     // Total var(--wp--*) references
	UnknownReferences int     // References to properties theme.json does not define
	HardcodedValues   int     // Declarations repeating a token value
	FilesScanned      int

	// Issues in golangci-lint format
	Issues         []Issue
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues dropped by max-issues-per-linter / max-same-issues

	UnusedTokens []themejson.Token
	Warnings     []string
}

// maxSuggestionDistance bounds the edit distance of "did you mean" suggestions
const maxSuggestionDistance = 3

// Lint checks var(--wp--*) references in stylesheets against tokens
func Lint(config LintConfig, tokens []themejson.Token) (*LintResult, error) {
	// Step 1: Scan stylesheets
	scan, err := ScanStylesheets(config.ScanPaths, config.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	// Step 2: Analyze usage
	result := analyzeUsage(tokens, scan, config.Hardcoded)

	// Step 3: Apply issue limiting if configured
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// analyzeUsage matches scanned references and declarations against the token set
func analyzeUsage(tokens []themejson.Token, scan *StylesheetScan, hardcoded bool) *LintResult {
	result := &LintResult{
		TokensDefined: len(tokens),
		References:    len(scan.References),
		FilesScanned:  scan.Stats.FilesScanned,
		Warnings:      append([]string(nil), scan.Warnings...),
	}

	defined := make(map[string]bool, len(tokens))
	names := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !defined[tok.Name] {
			defined[tok.Name] = true
			names = append(names, tok.Name)
		}
	}

	used := make(map[string]bool)
	for _, ref := range scan.References {
		if defined[ref.Name] {
			used[ref.Name] = true
			continue
		}

		result.UnknownReferences++
		issue := Issue{
			FromLinter:  LinterName,
			Text:        fmt.Sprintf(IssueUnknownProperty, "--"+ref.Name),
			Severity:    SeverityError,
			SourceLines: []string{ref.Location.Text},
			Pos:         issuePos(ref.Location),
		}
		if suggestion := closestName(ref.Name, names); suggestion != "" {
			issue.Text = fmt.Sprintf(IssueDidYouMean, "--"+ref.Name, "--"+suggestion)
			issue.Replacement = &Replacement{
				NewText:      "--" + suggestion,
				InlineLength: len(ref.Name) + 2,
			}
		}
		result.Issues = append(result.Issues, issue)
	}

	if hardcoded {
		byValue := tokensByValue(tokens)
		for _, decl := range scan.Declarations {
			// Custom property definitions are where values belong
			if strings.HasPrefix(decl.Property, "--") {
				continue
			}
			tok, ok := byValue[strings.ToLower(decl.Value)]
			if !ok {
				continue
			}

			result.HardcodedValues++
			result.Issues = append(result.Issues, Issue{
				FromLinter:  LinterName,
				Text:        fmt.Sprintf(IssueHardcodedValue, decl.Value, tok.CustomProperty(), tok.CustomProperty()),
				Severity:    SeverityWarning,
				SourceLines: []string{decl.Location.Text},
				Pos:         issuePos(decl.Location),
				Replacement: &Replacement{
					NewText:      "var(" + tok.CustomProperty() + ")",
					InlineLength: len(decl.Value),
				},
			})
		}
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	result.TokensReferenced = len(used)
	if len(names) > 0 {
		result.UsagePercentage = float64(len(used)) / float64(len(names)) * 100
	}

	for _, tok := range tokens {
		if !used[tok.Name] {
			result.UnusedTokens = append(result.UnusedTokens, tok)
		}
	}

	return result
}

func issuePos(loc FileLocation) IssuePos {
	return IssuePos{Filename: loc.File, Line: loc.Line, Column: loc.Column}
}

// tokensByValue indexes string tokens by lower-cased value; the first token wins
func tokensByValue(tokens []themejson.Token) map[string]themejson.Token {
	byValue := make(map[string]themejson.Token)
	for _, tok := range tokens {
		if tok.Value.Kind() != themejson.KindString || tok.Value.Text() == "" {
			continue
		}
		key := strings.ToLower(tok.Value.Text())
		if _, exists := byValue[key]; !exists {
			byValue[key] = tok
		}
	}
	return byValue
}

// closestName returns the known name with the smallest edit distance to name,
// or "" if none is within maxSuggestionDistance. Ties go to the alphabetically first name.
func closestName(name string, names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, candidate := range sorted {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}

// progressBar renders a 20-cell usage bar
func progressBar(percentage float64) string {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	fmt.Fprintf(&b, "] %.1f%%", percentage)
	return b.String()
}
