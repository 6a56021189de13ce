// =============================================================================
// AI Inventory Consolidator - Download Command
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/ai-inventory-consolidator/internal/config"
	"github.com/ginjaninja78/ai-inventory-consolidator/internal/download"
)

// downloadCmd represents the 'download' command.
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download inventory files for agencies that have URLs but no files",
	Long: `The download command reads the agency registry (agencies.csv), finds
agencies that have an inventory URL but no files on disk, and downloads each
file under a fixed per-request timeout. Failed downloads are reported and
logged; they never abort the run.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		d := download.New(cfg)
		if err := d.ScanAgencies(); err != nil {
			return err
		}

		if len(d.ToDownload) == 0 {
			rule := strings.Repeat("=", 80)
			fmt.Println("\n" + rule)
			fmt.Println("NO NEW FILES TO DOWNLOAD")
			fmt.Println(rule)
			fmt.Println("\nAll agencies either have files or no URLs.")
			if len(d.Skipped) > 0 {
				fmt.Printf("\n%d agencies already have files.\n", len(d.Skipped))
			}
			return nil
		}

		d.DownloadAll()
		return d.PrintSummary()
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
}
