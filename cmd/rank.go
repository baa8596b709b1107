package cmd

import (
	"github.com/huangsam/stargaze/core"
	"github.com/huangsam/stargaze/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd ranks repositories by quarterly star growth.
var rankCmd = &cobra.Command{
	Use:   "rank [owner/name ...]",
	Short: "Rank repositories by their best 90-day star growth in a quarter.",
	Long: `Rank stored repositories by relative star growth inside a quarter.

For each repository, every 90-day window ending inside the quarter is
evaluated and the window with the highest relative gain wins. Repositories
need at least 1000 stars at the window start to qualify, which keeps tiny
projects with noisy ratios out of the leaderboard.

Results are ranked from highest to lowest relative gain and labeled by
growth tier (Explosive, Rapid, Steady, Modest).

Without positional arguments, every repository in the series store is
considered. Pass owner/name arguments to restrict the field.

Examples:
  # Rank everything stored for the latest complete quarter
  stargaze rank

  # Rank a specific quarter
  stargaze rank --quarter 2025-Q2

  # Rank a handful of repositories and keep the top 10
  stargaze rank golang/go rust-lang/rust --limit 10

  # Export the leaderboard to CSV for tracking
  stargaze rank --output csv --output-file ranking.csv`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run ranking", err)
		}
	},
}
