package core

import (
	"fmt"

	"github.com/huangsam/stargaze/core/agg"
	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/internal/outwriter"
)

// ExecuteWeeks prints the densified weekly star series for each configured
// repository. This is the exact input the forecaster consumes, which makes
// it the fastest way to sanity-check a stored series.
func ExecuteWeeks(cfg *contract.Config, mgr contract.StoreManager) error {
	store := mgr.GetSeriesStore()
	if store == nil {
		return fmt.Errorf("no series store configured")
	}

	repos, err := resolveRepos(cfg, store)
	if err != nil {
		return err
	}

	var firstErr error
	for _, repo := range repos {
		doc, err := loadSeries(store, repo)
		if err != nil {
			contract.LogWarn("Skipping repository", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		dense := agg.DensifyWeeks(doc.Weekly)
		if err := outwriter.WriteWeeks(repo, dense, cfg); err != nil {
			return err
		}
	}
	return firstErr
}
