package wptokens

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "wptokens"
	Text        string       `json:"Text"`        // "unknown theme.json property \"--wp--preset--color--primry\""
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "assets/css/blocks.css"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the property name)
}

// Replacement provides an automated fix suggestion
type Replacement struct {
	NewText      string // "--wp--preset--color--primary"
	InlineLength int    // Length of text to replace
}

// LinterName is reported as FromLinter on every issue
const LinterName = "wptokens"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue message templates
const (
	IssueUnknownProperty = "unknown theme.json property %q"
	IssueDidYouMean      = "unknown theme.json property %q, did you mean %q?"
	IssueHardcodedValue  = "hardcoded value %q matches %s, use var(%s)"
)
