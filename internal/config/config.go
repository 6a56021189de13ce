// =============================================================================
// AI Inventory Consolidator - Configuration Module
// =============================================================================
//
// This module loads and manages the main application configuration. The
// configuration covers the directory layout of the data pipeline and the
// handful of tunables the commands share (download timeout, concurrency).
//
// DIRECTORY LAYOUT:
//   data/raw/<agency-slug>/   : one folder per agency holding its source files
//   data/raw/agencies.csv     : agency -> inventory URL registry
//   data/clean/               : consolidated per-year CSVs and combined export
//   data/clean/summary/       : cross-year stage reports
//   data/build/               : consolidation and download logs
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the global application configuration, loaded from config.yaml.
type Config struct {
	// RawDir is the directory holding one subdirectory per agency with that
	// agency's raw inventory files. Default: "data/raw"
	RawDir string `yaml:"raw_dir"`

	// CleanDir is the directory where consolidated outputs are written.
	// Default: "data/clean"
	CleanDir string `yaml:"clean_dir"`

	// BuildDir is the directory where run logs are written.
	// Default: "data/build"
	BuildDir string `yaml:"build_dir"`

	// SummaryDir is the directory where cross-year stage reports are written.
	// Default: "data/clean/summary"
	SummaryDir string `yaml:"summary_dir"`

	// AgenciesFile is the CSV registry of agencies and their inventory URLs,
	// consumed by the download command. Default: "data/raw/agencies.csv"
	AgenciesFile string `yaml:"agencies_file"`

	// Consolidated2024 is the file name (under CleanDir) of the 2024
	// consolidated inventory. The 2024 file predates this tool and is stored
	// Latin-1 encoded. Default: "2024_consolidated_ai_inventory_raw_v2.csv"
	Consolidated2024 string `yaml:"consolidated_2024"`

	// Consolidated2025 is the file name (under CleanDir) of the 2025
	// consolidated inventory produced by the consolidate command.
	// Default: "2025_consolidated_ai_inventory.csv"
	Consolidated2025 string `yaml:"consolidated_2025"`

	// CombinedFile is the file name (under CleanDir) of the slim combined
	// 2024+2025 export. Default: "combined_2024_2025_ai_inventory.csv"
	CombinedFile string `yaml:"combined_file"`

	// ConsolidationLog is the file name (under BuildDir) of the issue log
	// written alongside the consolidated CSV. Default: "consolidation_log.txt"
	ConsolidationLog string `yaml:"consolidation_log"`

	// DownloadLog is the file name (under BuildDir) of the download log.
	// Default: "download_log.txt"
	DownloadLog string `yaml:"download_log"`

	// DownloadTimeoutSeconds is the per-request wall-clock timeout for the
	// download command. A timeout is a plain per-item failure. Default: 30
	DownloadTimeoutSeconds int `yaml:"download_timeout_seconds"`

	// DownloadDelayMillis is the pause between consecutive downloads, to be
	// polite to agency servers. Default: 500
	DownloadDelayMillis int `yaml:"download_delay_millis"`

	// MaxConcurrency is the maximum number of agency folders to consolidate
	// concurrently. Files within one agency are always processed in order.
	// Default: 1 (sequential)
	MaxConcurrency int `yaml:"max_concurrency"`
}

// Load reads the main configuration from a YAML file, applies defaults, and
// creates any missing output directories.
//
// A missing configuration file is not an error: every setting has a default,
// so the tool runs out of the box from a repository checkout.
func Load(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Fall through to defaults.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := ensureDirectories(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.RawDir == "" {
		cfg.RawDir = filepath.Join("data", "raw")
	}
	if cfg.CleanDir == "" {
		cfg.CleanDir = filepath.Join("data", "clean")
	}
	if cfg.BuildDir == "" {
		cfg.BuildDir = filepath.Join("data", "build")
	}
	if cfg.SummaryDir == "" {
		cfg.SummaryDir = filepath.Join(cfg.CleanDir, "summary")
	}
	if cfg.AgenciesFile == "" {
		cfg.AgenciesFile = filepath.Join(cfg.RawDir, "agencies.csv")
	}
	if cfg.Consolidated2024 == "" {
		cfg.Consolidated2024 = "2024_consolidated_ai_inventory_raw_v2.csv"
	}
	if cfg.Consolidated2025 == "" {
		cfg.Consolidated2025 = "2025_consolidated_ai_inventory.csv"
	}
	if cfg.CombinedFile == "" {
		cfg.CombinedFile = "combined_2024_2025_ai_inventory.csv"
	}
	if cfg.ConsolidationLog == "" {
		cfg.ConsolidationLog = "consolidation_log.txt"
	}
	if cfg.DownloadLog == "" {
		cfg.DownloadLog = "download_log.txt"
	}
	if cfg.DownloadTimeoutSeconds == 0 {
		cfg.DownloadTimeoutSeconds = 30
	}
	if cfg.DownloadDelayMillis == 0 {
		cfg.DownloadDelayMillis = 500
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = 1
	}
}

// ensureDirectories creates the output directories if they don't exist.
// RawDir is deliberately not created here: an empty raw directory means
// there is nothing to consolidate, and that should surface as such.
func ensureDirectories(cfg *Config) error {
	dirs := []string{
		cfg.CleanDir,
		cfg.BuildDir,
		cfg.SummaryDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// =============================================================================
// PATH HELPERS
// =============================================================================

// Consolidated2024Path returns the full path of the 2024 consolidated CSV.
func (c *Config) Consolidated2024Path() string {
	return filepath.Join(c.CleanDir, c.Consolidated2024)
}

// Consolidated2025Path returns the full path of the 2025 consolidated CSV.
func (c *Config) Consolidated2025Path() string {
	return filepath.Join(c.CleanDir, c.Consolidated2025)
}

// CombinedPath returns the full path of the combined 2024+2025 export.
func (c *Config) CombinedPath() string {
	return filepath.Join(c.CleanDir, c.CombinedFile)
}

// ConsolidationLogPath returns the full path of the consolidation issue log.
func (c *Config) ConsolidationLogPath() string {
	return filepath.Join(c.BuildDir, c.ConsolidationLog)
}

// DownloadLogPath returns the full path of the download log.
func (c *Config) DownloadLogPath() string {
	return filepath.Join(c.BuildDir, c.DownloadLog)
}
