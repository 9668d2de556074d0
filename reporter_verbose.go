package wptokens

import (
	"fmt"
	"io"
)

// maxUnusedListed caps the unused token list in summaries
const maxUnusedListed = 10

// VerboseReporter handles detailed statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "theme.json Token Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------------------")

	fmt.Fprintf(r.w, "Tokens Defined:      %d\n", result.TokensDefined)
	fmt.Fprintf(r.w, "Tokens Referenced:   %d (%.1f%%)\n", result.TokensReferenced, result.UsagePercentage)
	fmt.Fprintf(r.w, "var() References:    %d\n", result.References)
	fmt.Fprintf(r.w, "Unknown References:  %d\n", result.UnknownReferences)
	fmt.Fprintf(r.w, "Hardcoded Values:    %d\n", result.HardcodedValues)
	fmt.Fprintf(r.w, "Files Scanned:       %d\n", result.FilesScanned)
}

// PrintAdoptionProgress shows visual progress bar
func (r *VerboseReporter) PrintAdoptionProgress(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Token Usage", r.useColors))
	fmt.Fprintln(r.w, "-----------")
	fmt.Fprintln(r.w, progressBar(result.UsagePercentage))
}

// PrintUnusedTokens lists tokens no stylesheet references
func (r *VerboseReporter) PrintUnusedTokens(result LintResult) {
	if len(result.UnusedTokens) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Unused Tokens", r.useColors))
	fmt.Fprintln(r.w, "-------------")

	for i, tok := range result.UnusedTokens {
		if i >= maxUnusedListed {
			fmt.Fprintf(r.w, "... and %d more\n", len(result.UnusedTokens)-maxUnusedListed)
			break
		}
		fmt.Fprintf(r.w, "%d. %s: %s\n", i+1, tok.CustomProperty(), tok.Value.Text())
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
