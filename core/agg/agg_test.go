package agg

import (
	"testing"
	"time"

	"github.com/huangsam/stargaze/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestBuildDaily(t *testing.T) {
	events := []time.Time{
		ts(2025, 1, 2, 9),
		ts(2025, 1, 2, 23),
		ts(2025, 1, 5, 0),
		ts(2025, 1, 1, 12), // out of order on purpose
	}

	daily := BuildDaily(events)
	require.Len(t, daily, 3)
	assert.Equal(t, ts(2025, 1, 1, 0), daily[0].Date)
	assert.Equal(t, 1, daily[0].Count)
	assert.Equal(t, ts(2025, 1, 2, 0), daily[1].Date)
	assert.Equal(t, 2, daily[1].Count)
	assert.Equal(t, ts(2025, 1, 5, 0), daily[2].Date)
	assert.Equal(t, 1, daily[2].Count)
}

func TestBuildCumulative(t *testing.T) {
	daily := []schema.DailyCount{
		{Date: ts(2025, 1, 1, 0), Count: 3},
		{Date: ts(2025, 1, 4, 0), Count: 2},
		{Date: ts(2025, 2, 1, 0), Count: 5},
	}

	cumulative := BuildCumulative(daily)
	require.Len(t, cumulative, 3)
	assert.Equal(t, 3, cumulative[0].Total)
	assert.Equal(t, 5, cumulative[1].Total)
	assert.Equal(t, 10, cumulative[2].Total)

	assert.Empty(t, BuildCumulative(nil))
}

func TestBuildWeekly(t *testing.T) {
	// Jan 13-19 2025 is ISO week 3, Jan 20-26 is week 4.
	events := []time.Time{
		ts(2025, 1, 13, 10),
		ts(2025, 1, 19, 22),
		ts(2025, 1, 21, 5),
	}

	weekly := BuildWeekly(events)
	require.Len(t, weekly, 2)

	assert.Equal(t, "2025-W03", weekly[0].Week)
	assert.Equal(t, 2, weekly[0].Total)
	assert.Equal(t, ts(2025, 1, 13, 0), weekly[0].Start)
	assert.Equal(t, ts(2025, 1, 19, 0), weekly[0].End)

	assert.Equal(t, "2025-W04", weekly[1].Week)
	assert.Equal(t, 1, weekly[1].Total)
}

func TestDensifyWeeks(t *testing.T) {
	// Active in week 3 and week 6, inactive in between.
	events := []time.Time{
		ts(2025, 1, 15, 0),
		ts(2025, 2, 5, 0),
	}
	weekly := BuildWeekly(events)
	require.Len(t, weekly, 2)

	dense := DensifyWeeks(weekly)
	require.Len(t, dense, 4)
	assert.Equal(t, "2025-W03", dense[0].Week)
	assert.Equal(t, 1, dense[0].Total)
	assert.Equal(t, "2025-W04", dense[1].Week)
	assert.Zero(t, dense[1].Total)
	assert.Equal(t, "2025-W05", dense[2].Week)
	assert.Zero(t, dense[2].Total)
	assert.Equal(t, "2025-W06", dense[3].Week)
	assert.Equal(t, 1, dense[3].Total)

	// Consecutive weeks stay contiguous.
	for i := 1; i < len(dense); i++ {
		assert.Equal(t, dense[i-1].Start.AddDate(0, 0, 7), dense[i].Start)
	}
}

func TestDensifyWeeksDegenerate(t *testing.T) {
	assert.Empty(t, DensifyWeeks(nil))

	single := []schema.WeekRecord{{Week: "2025-W03", Total: 2, Start: ts(2025, 1, 13, 0), End: ts(2025, 1, 19, 0)}}
	assert.Equal(t, single, DensifyWeeks(single))
}

func TestWeeklyTotals(t *testing.T) {
	weeks := []schema.WeekRecord{
		{Week: "2025-W01", Total: 4},
		{Week: "2025-W02", Total: 0},
		{Week: "2025-W03", Total: 7},
	}
	assert.Equal(t, []float64{4, 0, 7}, WeeklyTotals(weeks))
}

func TestBuildSeries(t *testing.T) {
	events := []time.Time{ts(2025, 1, 2, 9), ts(2025, 1, 2, 10)}
	meta := &schema.RepoMeta{Stars: 1234, Language: "Go"}
	fetched := ts(2025, 3, 1, 0)

	doc := BuildSeries("golang/go", events, meta, fetched)
	assert.Equal(t, "golang/go", doc.Repo)
	assert.Equal(t, fetched, doc.FetchedAt)
	assert.Len(t, doc.Daily, 1)
	assert.Len(t, doc.Weekly, 1)
	assert.Len(t, doc.Cumulative, 1)
	assert.Equal(t, 2, doc.Cumulative[0].Total)
	assert.Same(t, meta, doc.Meta)
}
