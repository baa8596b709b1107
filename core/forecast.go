package core

import (
	"fmt"
	"time"

	"github.com/huangsam/stargaze/core/agg"
	"github.com/huangsam/stargaze/core/algo"
	"github.com/huangsam/stargaze/core/timewin"
	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/internal/outwriter"
	"github.com/huangsam/stargaze/schema"
)

// BuildForecast projects 'horizon' future weeks of star activity for one
// repository from its weekly series. Inactive weeks are densified to zeros
// first so the seasonal profile stays aligned. The forecast weeks advance 7
// days per step from the last observed week's end; a repository with no
// observed weeks anchors on the week before 'now' and forecasts zeros.
func BuildForecast(repo string, weekly []schema.WeekRecord, sm algo.Smoothing, horizon int, now time.Time) schema.ForecastRow {
	dense := agg.DensifyWeeks(weekly)
	predictions := algo.HoltWinters(agg.WeeklyTotals(dense), sm, horizon)

	row := schema.ForecastRow{Repo: repo, Horizon: horizon}

	var lastEnd time.Time
	if len(dense) > 0 {
		lastWeek := dense[len(dense)-1]
		row.LastWeek = lastWeek.Week
		lastEnd = lastWeek.End
	} else {
		// No history at all: anchor on the Sunday before the current week
		// so offset +1 names the week in progress.
		start, _, err := timewin.WeekBounds(timewin.WeekKey(now))
		if err == nil {
			lastEnd = start.AddDate(0, 0, -1)
		}
	}

	row.Points = make([]schema.ForecastPoint, horizon)
	for k := 1; k <= horizon; k++ {
		start := lastEnd.AddDate(0, 0, 7*(k-1)+1)
		row.Points[k-1] = schema.ForecastPoint{
			Offset:    fmt.Sprintf("+%d", k),
			Start:     start,
			End:       start.AddDate(0, 0, 6),
			Predicted: predictions[k-1],
		}
	}
	return row
}

// BuildForecasts projects forecasts for the configured repositories, in
// store enumeration order when no explicit repos were given.
func BuildForecasts(cfg *contract.Config, mgr contract.StoreManager) ([]schema.ForecastRow, error) {
	store := mgr.GetSeriesStore()
	if store == nil {
		return nil, fmt.Errorf("no series store configured")
	}

	repos, err := resolveRepos(cfg, store)
	if err != nil {
		return nil, err
	}

	sm := algo.Smoothing{Alpha: cfg.Alpha, Beta: cfg.Beta, Gamma: cfg.Gamma}
	now := time.Now().UTC()

	rows := make([]schema.ForecastRow, 0, len(repos))
	for _, repo := range repos {
		doc, err := loadSeries(store, repo)
		if err != nil {
			contract.LogWarn("Skipping repository", err)
			continue
		}
		rows = append(rows, BuildForecast(repo, doc.Weekly, sm, cfg.Horizon, now))
	}
	return rows, nil
}

// ExecuteForecast builds forecasts and writes them using the configured
// output format.
func ExecuteForecast(cfg *contract.Config, mgr contract.StoreManager) error {
	started := time.Now()

	rows, err := BuildForecasts(cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteForecasts(rows, cfg, time.Since(started))
}
