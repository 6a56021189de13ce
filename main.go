// =============================================================================
// AI Inventory Consolidator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the AI Inventory Consolidator CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   inventory download     - Download missing agency inventory files
//   inventory consolidate  - Consolidate raw agency files into one CSV
//   inventory analyze      - Generate cross-year stage reports
//   inventory combine      - Combine both years into a slim export
//   inventory version      - Display the application version
//
// ARCHITECTURE:
//   cmd/           : CLI command definitions (Cobra)
//   internal/      : Core business logic (not for external import)
//   pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/ai-inventory-consolidator/cmd"
)

// main is the entry point of the application. It simply calls the Execute
// function from the cmd package, which initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
