package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/sheetfn/packages/core/config"
	"github.com/spf13/cobra"
)

var (
	forceInit  bool
	globalInit bool
	jsonInit   bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sheetfn config file",
	Long: `Create a sheetfn config file in the current directory, or in the user
config directory with --global.

This creates:
  - sheetfn.yaml   - Configuration file (sheetfn.json with --json)
  - example.json   - Example document for 'sheetfn flatten'

Examples:
  sheetfn init
  sheetfn init --global
  sheetfn init --json --force`,
	Args: usageArgs(cobra.NoArgs),
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
	initCmd.Flags().BoolVarP(&globalInit, "global", "g", false, "Write to the user config directory instead of the current one")
	initCmd.Flags().BoolVar(&jsonInit, "json", false, "Write the config as JSON")
}

func initCommand(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	if globalInit {
		dir = config.XDGConfigDir()
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	configFile := filepath.Join(dir, "sheetfn.yaml")
	if jsonInit {
		configFile = filepath.Join(dir, "sheetfn.json")
	}
	exampleFile := filepath.Join(dir, "example.json")

	files := []string{configFile}
	if !globalInit {
		files = append(files, exampleFile)
	}
	if !forceInit {
		for _, f := range files {
			if _, err := os.Stat(f); err == nil {
				return usageError{fmt.Errorf("file already exists: %s (use --force to overwrite)", f)}
			}
		}
	}

	if jsonInit {
		err = config.DefaultConfig().SaveConfig(configFile)
	} else {
		err = os.WriteFile(configFile, []byte(config.Sample()), 0644)
	}
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	if globalInit {
		return nil
	}

	exampleContent := `{
  "products": [
    {"id": 1, "title": "Phone", "price": 549, "dimensions": {"width": 7, "height": 15}},
    {"id": 2, "title": "Laptop", "price": 1299, "tags": ["work", "travel"]}
  ],
  "total": 2
}
`
	if err := os.WriteFile(exampleFile, []byte(exampleContent), 0644); err != nil {
		return fmt.Errorf("failed to create example file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", exampleFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\nsheetfn initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'sheetfn flatten example.json --key products' to try it.\n")

	return nil
}
