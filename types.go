package wptokens

import "github.com/yacobolo/wptokens/internal/themejson"

// Config holds theme discovery and loading configuration
type Config struct {
	Workspace  string // "." (root searched for theme.json)
	ThemePath  string // "wp-content/themes/demo" or ".../theme.json" (user override, file or directory)
	ActiveFile string // File being edited; its wp-content/themes/<theme>/ directory wins over search
	Verbose    bool   // Enable debug logging
}

// LoadResult contains loading stats
type LoadResult struct {
	ThemePath      string
	TokensLoaded   int
	CategoryCounts map[themejson.Category]int
	Warnings       []string
}

// ListFormat is the output format of the token listing
type ListFormat string

const (
	// ListText prints aligned name/value pairs
	ListText ListFormat = "text"
	// ListJSON prints [{"name": ..., "value": ...}]
	ListJSON ListFormat = "json"
	// ListCSS prints a :root rule declaring every property
	ListCSS ListFormat = "css"
	// ListYAML prints a sequence of name/value mappings
	ListYAML ListFormat = "yaml"
)

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and unused tokens only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + unused tokens
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// TokenSource is the read side of a themejson.Store
type TokenSource interface {
	ToArray() []themejson.Token
	Tokens(category themejson.Category) []themejson.Token
}
