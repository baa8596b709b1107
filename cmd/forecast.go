package cmd

import (
	"github.com/huangsam/stargaze/core"
	"github.com/huangsam/stargaze/internal/contract"
	"github.com/spf13/cobra"
)

// forecastCmd predicts future weekly star counts.
var forecastCmd = &cobra.Command{
	Use:   "forecast [owner/name ...]",
	Short: "Forecast weekly star gains with Holt-Winters smoothing.",
	Long: `Predict weekly star gains for stored repositories.

Uses additive Holt-Winters triple exponential smoothing over the weekly
star history, with a 52-week season to capture yearly patterns like
conference cycles and holiday slumps. Repositories with less than
54 weeks of history produce zero predictions rather than guesses.

The smoothing factors are tunable:
  --alpha  level (how fast the baseline adapts)
  --beta   trend (how fast the slope adapts)
  --gamma  seasonality (how fast the weekly pattern adapts)

Without positional arguments, every repository in the series store is
forecast. Pass owner/name arguments to restrict the field.

Examples:
  # Forecast the next 12 weeks for everything stored
  stargaze forecast

  # Forecast half a year ahead for one repository
  stargaze forecast golang/go --horizon 26

  # Tune smoothing for a fast-moving project
  stargaze forecast vercel/next.js --alpha 0.5 --gamma 0.2

  # Export predictions as JSON
  stargaze forecast --output json --output-file forecast.json`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteForecast(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run forecast", err)
		}
	},
}
