package algo

import (
	"testing"
	"time"

	"github.com/huangsam/stargaze/schema"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValueAsOf(t *testing.T) {
	series := []schema.CumulativePoint{
		{Date: day(2025, 1, 10), Total: 100},
		{Date: day(2025, 2, 1), Total: 250},
		{Date: day(2025, 3, 20), Total: 900},
	}

	tests := []struct {
		name     string
		query    time.Time
		expected int
	}{
		{name: "before first entry", query: day(2025, 1, 9), expected: 0},
		{name: "exact match on first entry", query: day(2025, 1, 10), expected: 100},
		{name: "between entries", query: day(2025, 1, 25), expected: 100},
		{name: "exact match on middle entry", query: day(2025, 2, 1), expected: 250},
		{name: "after last entry", query: day(2026, 1, 1), expected: 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValueAsOf(series, tt.query))
		})
	}
}

func TestValueAsOfEmptySeries(t *testing.T) {
	assert.Equal(t, 0, ValueAsOf(nil, day(2025, 1, 1)))
	assert.Equal(t, 0, ValueAsOf([]schema.CumulativePoint{}, day(2025, 1, 1)))
}
