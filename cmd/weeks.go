package cmd

import (
	"github.com/huangsam/stargaze/core"
	"github.com/huangsam/stargaze/internal/contract"
	"github.com/spf13/cobra"
)

// weeksCmd shows the stored weekly star history.
var weeksCmd = &cobra.Command{
	Use:   "weeks [owner/name ...]",
	Short: "Show the weekly star history stored for repositories.",
	Long: `Print the week-by-week star gains stored in the series store.

Weeks follow the ISO-8601 calendar (Monday start) and gaps between the
first and last active week are filled with zero-star weeks, so the
output is a dense, contiguous timeline. This is the same series the
forecast command feeds into Holt-Winters.

Without positional arguments, every repository in the series store is
printed. Pass owner/name arguments to restrict the field.

Examples:
  # Show weekly history for one repository
  stargaze weeks golang/go

  # Dump all stored history as CSV
  stargaze weeks --output csv --output-file weeks.csv`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWeeks(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show weekly history", err)
		}
	},
}
