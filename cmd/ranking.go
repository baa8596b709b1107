package cmd

import (
	"fmt"

	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/internal/starstore"
	"github.com/huangsam/stargaze/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rankingSetup loads minimal configuration needed for ranking history operations.
// This is used by commands that need history access without full shared setup.
func rankingSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get ranking-related config values
	backendStr := viper.GetString("ranking-backend")
	connStr := viper.GetString("ranking-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.StoreBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.StoreBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config (no series store for ranking commands)
	if err := starstore.InitStores("", "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize ranking history: %w", err)
	}

	cfg.RankingBackend = backend
	cfg.RankingDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// rankingSetupWrapper wraps rankingSetup to provide PreRunE for ranking commands.
func rankingSetupWrapper(_ *cobra.Command, _ []string) error {
	return rankingSetup()
}

// rankingMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func rankingMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get ranking-related config values
	backendStr := viper.GetString("ranking-backend")
	connStr := viper.GetString("ranking-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.StoreBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.StoreBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetRankingDBFilePath()
	}

	cfg.RankingBackend = backend
	cfg.RankingDBConnect = connStr

	return nil
}

// rankingMigrateSetupWrapper wraps rankingMigrateSetup to provide PreRunE for migrate command.
func rankingMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return rankingMigrateSetup()
}

// rankingCmd focused on ranking history management.
var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Manage historical ranking runs and exports",
	Long: `Manage historical ranking data used for trend tracking and reporting.

When enabled, Stargaze tracks every ranking run, storing:
- Run metadata (timestamp, quarter, configuration, duration)
- Every ranked row (rank, window, gains) per run

This enables longitudinal analysis of how the leaderboard shifts from
quarter to quarter, and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show ranking history statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all ranking history
  migrate - Run database schema migrations

Examples:
  # Check ranking history status
  stargaze ranking status

  # Export for analysis in pandas/DuckDB
  stargaze ranking export --output-file ranking-data.parquet`,
}

// rankingClearCmd clears the ranking history.
var rankingClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical ranking data",
	Long: `Delete all stored ranking runs and ranked rows.

WARNING: This action cannot be undone. Consider exporting data first.

Use this when:
- Resetting trend tracking
- Database storage is full
- Starting fresh ranking history

Examples:
  # Export before clearing
  stargaze ranking export --output-file backup.parquet
  stargaze ranking clear

  # Clear and start fresh
  stargaze ranking clear`,
	PreRunE: rankingSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := starstore.ClearRanking(cfg.RankingBackend, contract.GetRankingDBFilePath(), cfg.RankingDBConnect); err != nil {
			contract.LogFatal("Failed to clear ranking history", err)
		}
		fmt.Println("Ranking history cleared successfully.")
	},
}

// rankingStatusCmd shows ranking history status.
var rankingStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display ranking history statistics and connection details",
	Long: `Show detailed information about historical ranking tracking.

Displays:
- Backend type and connection status
- Total number of ranking runs stored
- Last and oldest run timestamps
- Total ranked rows across all runs
- Database table sizes

Use this to:
- Verify ranking history is enabled and working
- Monitor data accumulation over time
- Check database connection health

Examples:
  # Check ranking history status
  stargaze ranking status`,
	PreRunE: rankingSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := starstore.Manager.GetRankingStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get ranking status", err)
		}
		starstore.PrintRankingStatus(status)
	},
}

// rankingExportCmd exports ranking history to Parquet files.
var rankingExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export historical data to Parquet for BI tools and analytics",
	Long: `Export all stored ranking history to Parquet format for use with analytics tools.

Exports two datasets:
- Ranking runs - metadata about each ranking execution
- Ranked rows - every leaderboard row per run

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  stargaze ranking export --output-file stargaze-data.parquet

  # Use with DuckDB for analysis
  stargaze ranking export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.ranked_rows.parquet') LIMIT 10"`,
	PreRunE: rankingSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := starstore.ExecuteRankingExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export ranking history", err)
		}
	},
}

// rankingMigrateCmd runs database migrations for the ranking store.
var rankingMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the ranking history store.

Migrations allow:
- Upgrading to new schema versions when Stargaze is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  stargaze ranking migrate

  # Migrate to specific version
  stargaze ranking migrate --target-version 2

  # Rollback to previous version
  stargaze ranking migrate --target-version 0`,
	PreRunE: rankingMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := starstore.MigrateRanking(cfg.RankingBackend, cfg.RankingDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
