// Package cmd defines the command-line interface for stargaze.
package cmd

import (
	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(weeksCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(rankingCmd)

	// Add the series subcommands to the parent series command
	seriesCmd.AddCommand(seriesClearCmd)
	seriesCmd.AddCommand(seriesStatusCmd)

	// Add the ranking subcommands to the parent ranking command
	rankingCmd.AddCommand(rankingClearCmd)
	rankingCmd.AddCommand(rankingStatusCmd)
	rankingCmd.AddCommand(rankingExportCmd)
	rankingCmd.AddCommand(rankingMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("quarter", "q", "", "Quarter to rank in YYYY-Qn form (empty = latest complete quarter)")
	rootCmd.PersistentFlags().Int("horizon", contract.DefaultHorizon, "Number of weeks to forecast ahead")
	rootCmd.PersistentFlags().Float64("alpha", 0.3, "Level smoothing factor, in (0, 1)")
	rootCmd.PersistentFlags().Float64("beta", 0.1, "Trend smoothing factor, in (0, 1)")
	rootCmd.PersistentFlags().Float64("gamma", 0.3, "Seasonal smoothing factor, in (0, 1)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("token", "", "GitHub API token (prefer STARGAZE_TOKEN env variable)")
	rootCmd.PersistentFlags().String("api-base-url", "", "Override the GitHub API base URL (e.g., GitHub Enterprise)")
	rootCmd.PersistentFlags().String("series-backend", string(schema.SQLiteBackend), "Series store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("series-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("ranking-backend", "", "Ranking history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("ranking-db-connect", "", "Database connection string for ranking history (must differ from series-db-connect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of rankingMigrateCmd to Viper
	rankingMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(rankingMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding ranking migrate flags", err)
	}
}
