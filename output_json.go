package wptokens

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/wptokens/internal/themejson"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Summary   JSONSummary       `json:"summary"`
	Stats     JSONStats         `json:"stats"`
	Issues    []JSONIssue       `json:"issues"`
	Unused    []themejson.Token `json:"unused_tokens"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains token usage statistics
type JSONStats struct {
	TokensDefined     int     `json:"tokens_defined"`
	TokensReferenced  int     `json:"tokens_referenced"`
	UsagePercentage   float64 `json:"usage_percentage"`
	References        int     `json:"references"`
	UnknownReferences int     `json:"unknown_references"`
	HardcodedValues   int     `json:"hardcoded_values"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Linter     string `json:"linter"`
	Source     string `json:"source,omitempty"`     // Optional source line
	Suggestion string `json:"suggestion,omitempty"` // Replacement text, if any
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		suggestion := ""
		if issue.Replacement != nil {
			suggestion = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:       issue.Pos.Filename,
			Line:       issue.Pos.Line,
			Column:     issue.Pos.Column,
			Severity:   issue.Severity,
			Message:    issue.Text,
			Linter:     issue.FromLinter,
			Source:     source,
			Suggestion: suggestion,
		}
	}

	unused := result.UnusedTokens
	if unused == nil {
		unused = []themejson.Token{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			TokensDefined:     result.TokensDefined,
			TokensReferenced:  result.TokensReferenced,
			UsagePercentage:   result.UsagePercentage,
			References:        result.References,
			UnknownReferences: result.UnknownReferences,
			HardcodedValues:   result.HardcodedValues,
		},
		Issues: jsonIssues,
		Unused: unused,
	}
}
