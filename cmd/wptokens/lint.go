package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/wptokens"
)

// errLintFailed makes the process exit 1 after the report has been printed
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint var(--wp--*) references in stylesheets",
	Long: `Check that every var(--wp--*) reference in CSS, SCSS, Sass and LESS files names a
property theme.json defines. Reports unknown properties with suggestions, unused tokens, and
optionally hardcoded values that duplicate a token.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", []string{wptokens.StylesheetPattern}, "File patterns to scan for var() references")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("hardcoded", false, "Warn about declaration values that equal a token value")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (wptokens) suffix on issues")

	_ = lintCmd.RegisterFlagCompletionFunc("output-format", cobra.FixedCompletions(
		[]string{"issues", "summary", "full", "json"}, cobra.ShellCompDirectiveNoFileComp))
}

func runLint(cmd *cobra.Command) error {
	store, _, err := loadTheme(buildConfig())
	if err != nil {
		return err
	}

	lintConfig := buildLintConfig()
	lintResult, err := wptokens.Lint(lintConfig, store.ToArray())
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := wptokens.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		wptokens.WriteOutput(cmd.OutOrStdout(), lintResult, format, lintConfig)
	}

	// Exit code logic - "Soft Gate" approach
	if lintConfig.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if lintResult.ErrorCount+lintResult.WarningCount > 0 {
			return errLintFailed
		}
	} else if lintResult.ErrorCount > 0 {
		// Default mode: only errors fail the build
		return errLintFailed
	}

	return nil
}
