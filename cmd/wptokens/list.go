package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/wptokens"
	"github.com/yacobolo/wptokens/internal/themejson"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the custom properties generated from theme.json",
	Long: `Print every --wp--* custom property theme.json generates, in WordPress order:
custom, color, gradient, fontFamily, fontSizes, spacing, layout.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runList,
}

func init() {
	f := listCmd.Flags()
	f.StringP("format", "f", "text", "Output format: text|json|yaml|css")
	f.String("category", "", "Only list one category (custom, color, gradient, fontFamily, fontSizes, spacing, layout)")

	_ = listCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"text", "json", "yaml", "css"}, cobra.ShellCompDirectiveNoFileComp))
	_ = listCmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(themejson.Categories))
		for _, spec := range themejson.Categories {
			names = append(names, string(spec.Category))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func runList(cmd *cobra.Command, _ []string) error {
	format, err := wptokens.ParseListFormat(getStringWithFallback("format", "list.format", "text"))
	if err != nil {
		return err
	}

	store, result, err := loadTheme(buildConfig())
	if err != nil {
		return err
	}

	tokens, err := wptokens.FilterCategory(store, getStringWithFallback("category", "list.category", ""))
	if err != nil {
		return err
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	if getBoolWithFallback("verbose", "verbose", false) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Loaded %d tokens from %s\n", result.TokensLoaded, result.ThemePath)
	}

	useColors := getBoolWithFallback("color", "color", false)
	return wptokens.WriteTokens(cmd.OutOrStdout(), tokens, format, useColors)
}
