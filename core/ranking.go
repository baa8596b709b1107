package core

import (
	"fmt"
	"time"

	"github.com/huangsam/stargaze/core/algo"
	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/internal/outwriter"
	"github.com/huangsam/stargaze/schema"
)

// BuildQuarterRanking runs the growth-window scan over every repository's
// cumulative series and assembles the ranked top rows for the configured
// quarter. Repositories without an eligible positive-gain window are dropped
// before ranking; enumeration order is the store's fixed listing order, which
// the stable sort preserves for equal gains.
func BuildQuarterRanking(cfg *contract.Config, mgr contract.StoreManager) (schema.QuarterRanking, error) {
	ranking := schema.QuarterRanking{Quarter: cfg.Quarter, GeneratedAt: time.Now().UTC()}

	store := mgr.GetSeriesStore()
	if store == nil {
		return ranking, fmt.Errorf("no series store configured")
	}

	repos, err := resolveRepos(cfg, store)
	if err != nil {
		return ranking, err
	}

	var rows []schema.RankedRow
	for _, repo := range repos {
		doc, err := loadSeries(store, repo)
		if err != nil {
			contract.LogWarn("Skipping repository", err)
			continue
		}

		result := algo.BestWindow(doc.Cumulative, cfg.QuarterStart, cfg.QuarterEnd)
		if !result.Eligible || result.RelGain <= 0 {
			continue
		}

		rows = append(rows, schema.RankedRow{
			Repo:        repo,
			Quarter:     cfg.Quarter,
			RelGain:     schema.RoundRelGain(result.RelGain),
			AbsGain:     result.AbsGain,
			WindowStart: result.WindowStart,
			WindowEnd:   result.WindowEnd,
			StartValue:  result.StartValue,
			EndValue:    result.EndValue,
			Meta:        doc.Meta, // attached opaquely, may be nil
		})
	}

	limit := cfg.ResultLimit
	if limit > algo.RankLimit {
		limit = algo.RankLimit
	}
	ranking.Rows = algo.RankRows(rows, limit)
	return ranking, nil
}

// ExecuteRank builds the quarterly ranking, records the run in the ranking
// store and writes the rows using the configured output format.
func ExecuteRank(cfg *contract.Config, mgr contract.StoreManager) error {
	started := time.Now()

	ranking, err := BuildQuarterRanking(cfg, mgr)
	if err != nil {
		return err
	}

	recordRankingRun(cfg, mgr, ranking, started)
	return outwriter.WriteRanking(ranking, cfg, time.Since(started))
}

// recordRankingRun persists the run and its rows when a ranking store is
// configured. Persistence failures are warnings, not fatal: the ranking
// itself already succeeded.
func recordRankingRun(cfg *contract.Config, mgr contract.StoreManager, ranking schema.QuarterRanking, started time.Time) {
	store := mgr.GetRankingStore()
	if store == nil {
		return
	}

	params := map[string]any{
		"quarter": cfg.Quarter,
		"limit":   cfg.ResultLimit,
	}
	runID, err := store.BeginRun(cfg.Quarter, started, params)
	if err != nil {
		contract.LogWarn("Could not record ranking run", err)
		return
	}

	for _, row := range ranking.Rows {
		if err := store.RecordRow(runID, row); err != nil {
			contract.LogWarn("Could not record ranked row", err)
			return
		}
	}

	if err := store.EndRun(runID, time.Now(), len(ranking.Rows)); err != nil {
		contract.LogWarn("Could not finalize ranking run", err)
	}
}
