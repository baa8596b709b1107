package cmd

import (
	"github.com/huangsam/stargaze/core"
	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/internal/gh"
	"github.com/spf13/cobra"
)

// fetchCmd pulls star history from the GitHub API into the series store.
var fetchCmd = &cobra.Command{
	Use:   "fetch <owner/name> [owner/name ...]",
	Short: "Fetch star history for repositories from the GitHub API.",
	Long: `Download the full star timeline for one or more repositories and
store it in the series store for later ranking and forecasting.

Each stargazer event is timestamped, so the complete cumulative star
history can be rebuilt from scratch on every fetch. Repository metadata
(current stars, language, owner) is captured alongside when available.

Star timestamps beyond the first 40,000 stars are not exposed by the
GitHub API, so very large repositories get a truncated early history.

A token raises the API rate limit from 60 to 5000 requests per hour:
  export STARGAZE_TOKEN=ghp_yourtoken

Examples:
  # Fetch a single repository
  stargaze fetch golang/go

  # Fetch several at once
  stargaze fetch golang/go rust-lang/rust python/cpython

  # Fetch from a GitHub Enterprise instance
  stargaze fetch myorg/internal --api-base-url https://github.example.com/api/v3`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		client := gh.NewClient(nil, cfg.APIBaseURL, cfg.Token)
		if err := core.ExecuteFetch(rootCtx, cfg, client, storeManager); err != nil {
			contract.LogFatal("Cannot fetch star history", err)
		}
	},
}
