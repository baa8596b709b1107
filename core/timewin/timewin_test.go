package timewin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekKey(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "mid year",
			date:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			expected: "2025-W03",
		},
		{
			name:     "dec 31 belongs to next iso year",
			date:     time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			expected: "2025-W01",
		},
		{
			name:     "jan 1 belongs to previous iso year",
			date:     time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "2026-W53",
		},
		{
			name:     "week one starts on jan 4 anchor",
			date:     time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
			expected: "2025-W01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekKey(tt.date))
		})
	}
}

func TestWeekBoundsRoundTrip(t *testing.T) {
	// For any date, WeekBounds(WeekKey(date)) must yield a Monday-start
	// 7-day window containing the date.
	dates := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC),
	}

	for _, d := range dates {
		key := WeekKey(d)
		start, end, err := WeekBounds(key)
		require.NoError(t, err, "date %s key %s", d, key)

		assert.Equal(t, time.Monday, start.Weekday())
		assert.Equal(t, time.Sunday, end.Weekday())
		assert.Equal(t, start.AddDate(0, 0, 6), end)
		assert.False(t, d.Before(start), "window start %s after date %s", start, d)
		assert.False(t, d.After(end.AddDate(0, 0, 1)), "window end %s before date %s", end, d)
	}
}

func TestWeekBoundsInvalid(t *testing.T) {
	for _, key := range []string{"", "2025", "2025-W00", "2025-W54", "abc-Wxx"} {
		_, _, err := WeekBounds(key)
		assert.Error(t, err, "key %q should be rejected", key)
	}

	// 2025 has 52 ISO weeks, so W53 rolls into the next year and is invalid.
	_, _, err := WeekBounds("2025-W53")
	assert.Error(t, err)

	// 2026 has 53 ISO weeks, W53 is fine.
	start, _, err := WeekBounds("2026-W53")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 28, 0, 0, 0, 0, time.UTC), start)
}

func TestQuarterBounds(t *testing.T) {
	tests := []struct {
		quarter  int
		expStart time.Time
		expEnd   time.Time
	}{
		{1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)},
		{2, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
		{3, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)},
		{4, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		start, end, err := QuarterBounds(2025, tt.quarter)
		require.NoError(t, err)
		assert.Equal(t, tt.expStart, start)
		assert.Equal(t, tt.expEnd, end)
	}

	// Mar 31 is fixed regardless of leap years.
	_, end, err := QuarterBounds(2024, 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), end)

	_, _, err = QuarterBounds(2025, 0)
	assert.Error(t, err)
	_, _, err = QuarterBounds(2025, 5)
	assert.Error(t, err)
}

func TestQuarterKeyRoundTrip(t *testing.T) {
	assert.Equal(t, "2025-Q1", QuarterKey(2025, 1))

	year, q, err := ParseQuarterKey("2025-Q4")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 4, q)

	for _, bad := range []string{"", "2025", "2025-Q0", "2025-Q5", "Q1-2025"} {
		_, _, err := ParseQuarterKey(bad)
		assert.Error(t, err, "key %q should be rejected", bad)
	}
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2025, 3, 15, 23, 59, 58, 123, time.FixedZone("X", 3600))
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), DayOf(ts))
}
