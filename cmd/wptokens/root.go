package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/wptokens"
	"github.com/yacobolo/wptokens/internal/themejson"
)

var rootCmd = &cobra.Command{
	Use:   "wptokens",
	Short: "Inspect the CSS custom properties generated from a WordPress theme.json",
	Long: `Flatten theme.json settings into the --wp--* custom properties WordPress emits.
List them, complete them while editing stylesheets, and lint var() references against them.`,
	// Default behavior: run list when no subcommand is given.
	// We must call loadConfig here because PreRunE of listCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runList(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")
	rootCmd.PersistentFlags().String("theme", "", "theme.json file, or directory to search for one")
	rootCmd.PersistentFlags().String("workspace", ".", "Workspace root searched for theme.json")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadTheme resolves and loads the configured theme.json into a new store.
// Load warnings go to stderr unless --quiet is set.
func loadTheme(config wptokens.Config) (*themejson.Store, *wptokens.LoadResult, error) {
	store := themejson.NewStore()

	result, err := wptokens.Load(config, store)
	if err != nil {
		var multi *wptokens.MultipleThemesError
		if errors.As(err, &multi) {
			return nil, nil, fmt.Errorf("%w (pick one with --theme)", err)
		}
		return nil, nil, err
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}

	return store, result, nil
}
