package core

import (
	"testing"
	"time"

	"github.com/huangsam/stargaze/core/algo"
	"github.com/huangsam/stargaze/core/timewin"
	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/internal/starstore"
	"github.com/huangsam/stargaze/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func week(key string, total int, y int, m time.Month, d int) schema.WeekRecord {
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return schema.WeekRecord{Week: key, Total: total, Start: start, End: start.AddDate(0, 0, 6)}
}

func TestBuildForecast_AnchorsOnLastObservedWeek(t *testing.T) {
	weekly := []schema.WeekRecord{
		week("2025-W01", 5, 2024, time.December, 30),
		week("2025-W02", 8, 2025, time.January, 6),
	}

	row := BuildForecast("alpha/a", weekly, algo.DefaultSmoothing(), 3, time.Now().UTC())

	assert.Equal(t, "alpha/a", row.Repo)
	assert.Equal(t, 3, row.Horizon)
	assert.Equal(t, "2025-W02", row.LastWeek)
	require.Len(t, row.Points, 3)

	// Forecast weeks advance 7 days per step from the last observed Sunday.
	assert.Equal(t, "+1", row.Points[0].Offset)
	assert.Equal(t, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), row.Points[0].Start)
	assert.Equal(t, time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), row.Points[0].End)
	assert.Equal(t, "+3", row.Points[2].Offset)
	assert.Equal(t, time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC), row.Points[2].Start)

	// Two weeks of history cannot seed a 52-week season: all zeros.
	for _, p := range row.Points {
		assert.Equal(t, 0, p.Predicted)
	}
}

func TestBuildForecast_GapsAreDensifiedBeforeSmoothing(t *testing.T) {
	// W01 and W04 active, W02/W03 silent. The dense series ends at W04.
	weekly := []schema.WeekRecord{
		week("2025-W01", 5, 2024, time.December, 30),
		week("2025-W04", 2, 2025, time.January, 20),
	}

	row := BuildForecast("alpha/a", weekly, algo.DefaultSmoothing(), 2, time.Now().UTC())

	assert.Equal(t, "2025-W04", row.LastWeek)
	require.Len(t, row.Points, 2)
	assert.Equal(t, time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC), row.Points[0].Start)
}

func TestBuildForecast_NoHistoryAnchorsOnCurrentWeek(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC) // Wednesday of 2025-W03

	row := BuildForecast("empty/repo", nil, algo.DefaultSmoothing(), 2, now)

	assert.Empty(t, row.LastWeek)
	require.Len(t, row.Points, 2)
	// Offset +1 names the week in progress.
	assert.Equal(t, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), row.Points[0].Start)
	assert.Equal(t, time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), row.Points[0].End)
	assert.Equal(t, 0, row.Points[0].Predicted)
}

func TestBuildForecast_LongHistoryPredictsNonNegative(t *testing.T) {
	weekly := make([]schema.WeekRecord, 0, 60)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // a Monday
	for i := range 60 {
		d := start.AddDate(0, 0, 7*i)
		weekly = append(weekly, schema.WeekRecord{
			Week:  timewin.WeekKey(d),
			Total: 10,
			Start: d,
			End:   d.AddDate(0, 0, 6),
		})
	}

	row := BuildForecast("steady/repo", weekly, algo.DefaultSmoothing(), 4, time.Now().UTC())

	require.Len(t, row.Points, 4)
	for _, p := range row.Points {
		assert.GreaterOrEqual(t, p.Predicted, 0)
	}
}

func TestBuildForecasts_SkipsMissingRepos(t *testing.T) {
	mockStore := &starstore.MockSeriesStore{}
	mockMgr := &starstore.MockStoreManager{}
	mockMgr.On("GetSeriesStore").Return(mockStore)

	mockStore.On("ListRepos").Return([]string{"alpha/a", "gone/repo"}, nil)
	mockStore.On("Get", "alpha/a").Return(seriesDoc(t, schema.RepoSeries{
		Repo: "alpha/a",
		Weekly: []schema.WeekRecord{
			week("2025-W01", 5, 2024, time.December, 30),
		},
	}), SeriesDocVersion, int64(0), nil)
	mockStore.On("Get", "gone/repo").Return(nil, 0, int64(0), assert.AnError)

	cfg := &contract.Config{
		Horizon: 2,
		Alpha:   algo.DefaultAlpha,
		Beta:    algo.DefaultBeta,
		Gamma:   algo.DefaultGamma,
	}

	rows, err := BuildForecasts(cfg, mockMgr)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alpha/a", rows[0].Repo)
	assert.Equal(t, 2, rows[0].Horizon)
}

func TestBuildForecasts_NoSeriesStore(t *testing.T) {
	mockMgr := &starstore.MockStoreManager{}
	mockMgr.On("GetSeriesStore").Return(nil)

	_, err := BuildForecasts(&contract.Config{Horizon: 2}, mockMgr)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no series store")
}
