// Package timewin has calendar math for ISO weeks and calendar quarters.
// Rankings and aggregation both depend on these helpers, so week and quarter
// keys stay stable across runs.
package timewin

import (
	"fmt"
	"time"
)

// WeekKey returns the ISO-8601 year-week key for a date, e.g. "2025-W03".
// ISO week numbering is Thursday-anchored: the year component is the year of
// the Thursday in the date's week, so dates near Jan 1 can land in the
// previous or next ISO year.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// WeekBounds returns the Monday and Sunday of the ISO week named by key.
// Both bounds are midnight UTC; the Sunday is the start of the last day, not
// an exclusive end.
func WeekBounds(key string) (time.Time, time.Time, error) {
	var year, week int
	if _, err := fmt.Sscanf(key, "%d-W%d", &year, &week); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid week key %q (expected YYYY-Wnn): %w", key, err)
	}
	if week < 1 || week > 53 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid week number %d in key %q", week, key)
	}

	// Jan 4 is always inside ISO week 1. Walk back to its Monday, then
	// advance whole weeks.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -mondayOffset(jan4))
	start := monday.AddDate(0, 0, (week-1)*7)

	// Reject week numbers past the end of the ISO year (e.g. W53 in a
	// 52-week year rolls into week 1 of the next year).
	if WeekKey(start) != fmt.Sprintf("%04d-W%02d", year, week) {
		return time.Time{}, time.Time{}, fmt.Errorf("week %q does not exist", key)
	}

	return start, start.AddDate(0, 0, 6), nil
}

// mondayOffset returns how many days t is past its week's Monday (0-6).
func mondayOffset(t time.Time) int {
	// time.Weekday is Sunday-based; shift so Monday becomes 0.
	return (int(t.Weekday()) + 6) % 7
}

// QuarterKey returns the quarter identifier for a year and quarter number,
// e.g. "2025-Q1".
func QuarterKey(year, quarter int) string {
	return fmt.Sprintf("%04d-Q%d", year, quarter)
}

// ParseQuarterKey parses a "YYYY-Qn" identifier into year and quarter number.
func ParseQuarterKey(key string) (int, int, error) {
	var year, quarter int
	if _, err := fmt.Sscanf(key, "%d-Q%d", &year, &quarter); err != nil {
		return 0, 0, fmt.Errorf("invalid quarter key %q (expected YYYY-Qn): %w", key, err)
	}
	if quarter < 1 || quarter > 4 {
		return 0, 0, fmt.Errorf("invalid quarter number %d in key %q", quarter, key)
	}
	return year, quarter, nil
}

// QuarterBounds returns the first and last calendar day of a quarter, both
// midnight UTC. Quarters are fixed month ranges (Q1 Jan 1 - Mar 31, Q2 Apr 1 -
// Jun 30, Q3 Jul 1 - Sep 30, Q4 Oct 1 - Dec 31); the boundaries are days of
// month, not day counts, so leap years need no adjustment.
func QuarterBounds(year, quarter int) (time.Time, time.Time, error) {
	if quarter < 1 || quarter > 4 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid quarter number %d (expected 1-4)", quarter)
	}
	startMonth := time.Month(3*(quarter-1) + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0).AddDate(0, 0, -1)
	return start, end, nil
}

// DayOf truncates a timestamp to its calendar day, midnight UTC. Series
// entries and window bounds are always day-granular.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
