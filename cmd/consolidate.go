// =============================================================================
// AI Inventory Consolidator - Consolidate Command
// =============================================================================
//
// The consolidate command is the main pipeline: it walks data/raw/, loads
// every agency inventory file, runs schema reconciliation over each, and
// writes the consolidated CSV plus the issue log.
//
// FAILURE POLICY:
//   Individual file failures never abort the run; they are recorded in the
//   issue log and processing continues with the next file.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/ai-inventory-consolidator/internal/config"
	"github.com/ginjaninja78/ai-inventory-consolidator/internal/consolidate"
)

// workers overrides the configured consolidation concurrency.
var workers int

// consolidateCmd represents the 'consolidate' command.
var consolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Consolidate raw agency inventory files into a single CSV",
	Long: `The consolidate command scans the raw data directory (one folder per
agency), loads each CSV/XLSX inventory file, reconciles its schema against
the canonical field catalog, and writes:

  - the consolidated inventory CSV (one row per use case)
  - a consolidation log with per-agency counts and every issue found

Agency folders are independent; --workers processes several concurrently.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if workers > 0 {
			cfg.MaxConcurrency = workers
		}

		c := consolidate.New(cfg)
		if err := c.Run(); err != nil {
			return err
		}
		return c.SaveResults()
	},
}

func init() {
	rootCmd.AddCommand(consolidateCmd)

	consolidateCmd.Flags().IntVar(
		&workers,
		"workers",
		0,
		"Number of agency folders to process concurrently (default from config)",
	)
}
