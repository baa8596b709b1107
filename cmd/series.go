package cmd

import (
	"fmt"

	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/internal/starstore"
	"github.com/huangsam/stargaze/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// seriesSetup loads minimal configuration needed for series store operations.
// This is used by commands that need store access without full shared setup.
func seriesSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get series-related config values
	backend := schema.StoreBackend(viper.GetString("series-backend"))
	connStr := viper.GetString("series-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the series store with the loaded config (no ranking history for series commands)
	if err := starstore.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize series store: %w", err)
	}

	cfg.SeriesBackend = backend
	cfg.SeriesDBConnect = connStr

	return nil
}

// seriesSetupWrapper wraps seriesSetup to provide PreRunE for series commands.
func seriesSetupWrapper(_ *cobra.Command, _ []string) error {
	return seriesSetup()
}

// seriesCmd focused on series store management.
//
// Note: Series subcommands use minimal initialization (seriesSetup) instead of
// the full sharedSetup used by analytics commands. This avoids quarter parsing
// and smoothing validation for simple store operations.
var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Manage stored star history (the raw data for all analytics)",
	Long: `Manage the store that holds fetched star history per repository.

Every fetch writes a full cumulative star timeline into this store, and
the rank, forecast and weeks commands all read from it.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status - Show store statistics and connection info
  clear  - Remove all stored star history

Examples:
  # Check series store status
  stargaze series status

  # Start over with a fresh store
  stargaze series clear`,
}

// seriesClearCmd clears the series store.
var seriesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored star history",
	Long: `Delete all fetched star history from the configured backend.

Use this when:
- Stored timelines may be stale after a long gap between fetches
- A repository was renamed or transferred
- Testing fetch behavior from a clean slate

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the series table

Examples:
  # Clear SQLite store (default)
  stargaze series clear

  # Clear MySQL store (set connection string via env variable)
  STARGAZE_SERIES_BACKEND=mysql STARGAZE_SERIES_DB_CONNECT="..." stargaze series clear`,
	PreRunE: seriesSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := starstore.ClearSeries(cfg.SeriesBackend, contract.GetSeriesDBFilePath(), cfg.SeriesDBConnect); err != nil {
			contract.LogFatal("Failed to clear series store", err)
		}
		fmt.Println("Series store cleared successfully.")
	},
}

// seriesStatusCmd shows series store status.
var seriesStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display series store statistics and connection details",
	Long: `Show detailed information about the stored star history.

Displays:
- Backend type and connection status
- Total number of repositories stored
- Last and first fetch timestamps
- Store database size

Use this to:
- Verify the store is working and connected
- See how much history has accumulated
- Check when data was last refreshed

Examples:
  # Check series store status
  stargaze series status`,
	PreRunE: seriesSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := starstore.Manager.GetSeriesStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get series status", err)
		}
		starstore.PrintSeriesStatus(status)
	},
}
