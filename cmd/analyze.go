// =============================================================================
// AI Inventory Consolidator - Analyze Command
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/ai-inventory-consolidator/internal/analyze"
	"github.com/ginjaninja78/ai-inventory-consolidator/internal/config"
)

// analyzeCmd represents the 'analyze' command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Generate cross-year stage-of-development reports",
	Long: `The analyze command re-buckets both consolidated inventories into the
shared 3-stage model, joins agencies across years, and writes the stage
breakdown and year-over-year comparison CSVs to the summary directory.

Both consolidated inventories must exist; a missing input is fatal.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return analyze.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
