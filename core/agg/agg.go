// Package agg reduces raw chronological star events into the daily, weekly
// and cumulative series the ranking and forecasting logic consumes.
package agg

import (
	"sort"
	"time"

	"github.com/huangsam/stargaze/core/timewin"
	"github.com/huangsam/stargaze/schema"
)

// BuildDaily buckets star events per calendar day. Only days with at least
// one event appear; output is sorted ascending by date.
func BuildDaily(events []time.Time) []schema.DailyCount {
	counts := make(map[time.Time]int)
	for _, ev := range events {
		counts[timewin.DayOf(ev)]++
	}

	daily := make([]schema.DailyCount, 0, len(counts))
	for d, c := range counts {
		daily = append(daily, schema.DailyCount{Date: d, Count: c})
	}
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date.Before(daily[j].Date)
	})
	return daily
}

// BuildCumulative folds daily counts into the running-total series. One
// entry per active day; days without events are implied by the previous
// entry (left-continuous step function).
func BuildCumulative(daily []schema.DailyCount) []schema.CumulativePoint {
	cumulative := make([]schema.CumulativePoint, 0, len(daily))
	total := 0
	for _, d := range daily {
		total += d.Count
		cumulative = append(cumulative, schema.CumulativePoint{Date: d.Date, Total: total})
	}
	return cumulative
}

// BuildWeekly buckets star events per ISO week. Only weeks with at least one
// event appear; output is sorted ascending by week key with Monday/Sunday
// bounds attached.
func BuildWeekly(events []time.Time) []schema.WeekRecord {
	totals := make(map[string]int)
	for _, ev := range events {
		totals[timewin.WeekKey(ev)]++
	}

	weeks := make([]schema.WeekRecord, 0, len(totals))
	for key, total := range totals {
		start, end, err := timewin.WeekBounds(key)
		if err != nil {
			// Keys come from WeekKey, so bounds cannot fail.
			continue
		}
		weeks = append(weeks, schema.WeekRecord{Week: key, Total: total, Start: start, End: end})
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Start.Before(weeks[j].Start)
	})
	return weeks
}

// DensifyWeeks fills inactive weeks between the first and last observed
// weeks with explicit zero-total records. The forecaster indexes its
// seasonal profile by position modulo the season length, so a gapped series
// would silently misalign seasons for low-activity repositories.
func DensifyWeeks(weeks []schema.WeekRecord) []schema.WeekRecord {
	if len(weeks) < 2 {
		return weeks
	}

	totals := make(map[string]int, len(weeks))
	for _, w := range weeks {
		totals[w.Week] = w.Total
	}

	var dense []schema.WeekRecord
	last := weeks[len(weeks)-1].Start
	for start := weeks[0].Start; !start.After(last); start = start.AddDate(0, 0, 7) {
		key := timewin.WeekKey(start)
		dense = append(dense, schema.WeekRecord{
			Week:  key,
			Total: totals[key],
			Start: start,
			End:   start.AddDate(0, 0, 6),
		})
	}
	return dense
}

// WeeklyTotals extracts the numeric series the forecaster consumes.
func WeeklyTotals(weeks []schema.WeekRecord) []float64 {
	totals := make([]float64, len(weeks))
	for i, w := range weeks {
		totals[i] = float64(w.Total)
	}
	return totals
}

// BuildSeries assembles the full stored document for one repository from its
// raw star events and optional passthrough metadata.
func BuildSeries(repo string, events []time.Time, meta *schema.RepoMeta, fetchedAt time.Time) schema.RepoSeries {
	daily := BuildDaily(events)
	return schema.RepoSeries{
		Repo:       repo,
		FetchedAt:  fetchedAt,
		Daily:      daily,
		Weekly:     BuildWeekly(events),
		Cumulative: BuildCumulative(daily),
		Meta:       meta,
	}
}
