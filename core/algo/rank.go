package algo

import (
	"sort"

	"github.com/huangsam/stargaze/schema"
)

// RankLimit is the maximum number of rows in a quarterly ranking.
const RankLimit = 100

// RankRows sorts rows by relative gain in descending order, truncates to the
// top 'limit' rows and assigns dense ranks 1..N. The sort is stable: rows
// with equal relative gain keep their input enumeration order. Callers are
// expected to have filtered ineligible rows already.
func RankRows(rows []schema.RankedRow, limit int) []schema.RankedRow {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].RelGain > rows[j].RelGain
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
