// Package algo has the pure growth-ranking and forecasting algorithms.
// Everything here operates on in-memory values with no side effects, so the
// callers own all I/O and persistence.
package algo

import (
	"time"

	"github.com/huangsam/stargaze/schema"
)

// ValueAsOf answers "how many stars did the repository have as of day".
// The cumulative series is a left-continuous step function: the answer is the
// total of the latest entry dated at or before day, or 0 when the series is
// empty or every entry postdates the target.
func ValueAsOf(series []schema.CumulativePoint, day time.Time) int {
	value := 0
	for _, p := range series {
		if p.Date.After(day) {
			// Series is sorted ascending, nothing later can match.
			break
		}
		value = p.Total
	}
	return value
}
