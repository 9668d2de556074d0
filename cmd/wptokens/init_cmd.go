package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default " + defaultConfigPath + " config file",
	Long:  `Create a ` + defaultConfigPath + ` configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# wptokens configuration
# Docs: https://github.com/yacobolo/wptokens

# Shared settings
workspace: .
# theme: wp-content/themes/my-theme/theme.json
verbose: false

# Token listing
list:
  format: text             # text | json | yaml | css
  category: ""             # custom | color | gradient | fontFamily | fontSizes | spacing | layout

# Linting settings
lint:
  paths:
    - "**/*.{css,sass,scss,less}"
  strict: false
  hardcoded: false         # warn when a value duplicates a token
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

# Watch mode
watch:
  debounce: 500ms
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
