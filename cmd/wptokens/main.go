// Package main provides the wptokens CLI for inspecting the CSS custom properties a
// WordPress theme.json generates.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/wptokens"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Lint failures have already been reported
		if !errors.Is(err, errLintFailed) {
			useColors := getBoolWithFallback("color", "color", false)
			fmt.Fprintf(os.Stderr, "%s %v\n", wptokens.RenderStyle(wptokens.StyleRed, "Error:", useColors), err)
		}
		os.Exit(1)
	}
}
