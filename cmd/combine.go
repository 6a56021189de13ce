// =============================================================================
// AI Inventory Consolidator - Combine Command
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/ai-inventory-consolidator/internal/combine"
	"github.com/ginjaninja78/ai-inventory-consolidator/internal/config"
)

// combineCmd represents the 'combine' command.
var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine both years into a slim Year/Agency/Name/Retired export",
	Long: `The combine command merges the 2024 and 2025 consolidated inventories
into one slim CSV with a Year column, title-cased agency names, and a Retired
flag derived from the stage text of either taxonomy.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return combine.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(combineCmd)
}
