package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/wptokens"
)

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Print completion items for a stylesheet cursor position",
	Long: `Print the custom properties to offer at a cursor, as JSON, for editor integration.

With --file, --line and --column the fragment under the cursor is read from the file (or from
stdin with --stdin) and the theme containing the file is preferred. With --prefix the items
starting with that prefix are printed. Without either, every token is printed.`,
	Example: `  wptokens complete --file assets/style.css --line 12 --column 20
  wptokens complete --prefix=--wp--preset--color`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runComplete,
}

func init() {
	f := completeCmd.Flags()
	f.String("file", "", "Stylesheet being edited")
	f.Int("line", 1, "1-based cursor line")
	f.Int("column", 1, "1-based cursor column")
	f.Bool("stdin", false, "Read the buffer content from stdin instead of --file")
	f.String("prefix", "", "Complete this prefix instead of reading a cursor position")
}

func runComplete(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	file, _ := flags.GetString("file")
	prefix, _ := flags.GetString("prefix")

	config := buildConfig()
	config.ActiveFile = file

	store, _, err := loadTheme(config)
	if err != nil {
		return err
	}
	tokens := store.ToArray()

	var items []wptokens.CompletionItem
	if file != "" {
		content, err := readBuffer(cmd, file)
		if err != nil {
			return err
		}
		line, _ := flags.GetInt("line")
		column, _ := flags.GetInt("column")
		items = wptokens.CompleteAt(tokens, file, content, line, column)
	} else {
		items = wptokens.Complete(tokens, prefix)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(items)
}

// readBuffer returns the editor buffer: stdin when --stdin is set, otherwise the file on disk
func readBuffer(cmd *cobra.Command, file string) (string, error) {
	if useStdin, _ := cmd.Flags().GetBool("stdin"); useStdin {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	// #nosec G304 - path comes from the editor
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file, err)
	}
	return string(data), nil
}
