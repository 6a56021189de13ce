// =============================================================================
// AI Inventory Consolidator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// (download, consolidate, analyze, combine, version) are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (inventory)
//   ├── downloadCmd    (inventory download)
//   ├── consolidateCmd (inventory consolidate)
//   ├── analyzeCmd     (inventory analyze)
//   ├── combineCmd     (inventory combine)
//   └── versionCmd     (inventory version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose progress output when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "AI Inventory Consolidator - Normalize federal agency AI use case inventories",
	Long: `AI Inventory Consolidator ingests the AI use case inventory files that
federal agencies publish independently (CSV, XLSX, occasionally HTML), each in
its own schema, and produces a single normalized dataset plus year-over-year
stage-of-development reports.

The hard part is schema reconciliation: for every agency file the tool has to
locate ~30 semantically defined fields whose column labels, header position,
and naming conventions differ per agency and per reporting year, and collapse
free-text stage values into one canonical taxonomy.

Typical workflow:
  inventory download     # fetch files listed in data/raw/agencies.csv
  inventory consolidate  # data/raw/** -> consolidated CSV + issue log
  inventory analyze      # cross-year stage reports
  inventory combine      # slim combined 2024+2025 export`,

	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand given: print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output",
	)
}
