// Package schema has models, constants and shared helpers for all parts of stargaze.
package schema

import "time"

// CumulativePoint is one entry of a repository's cumulative star series.
// The series is sorted ascending by date with non-decreasing totals, and is
// sparse: only days on which the running total changed appear.
type CumulativePoint struct {
	Date  time.Time `json:"date"`
	Total int       `json:"total"`
}

// WeekRecord is one ISO week of star activity for a repository.
// Start and End are the Monday and Sunday bounding the week.
type WeekRecord struct {
	Week  string    `json:"week"` // ISO year-week key, e.g. "2025-W03"
	Total int       `json:"total"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DailyCount is one calendar day of star activity for a repository.
type DailyCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// RepoMeta carries passthrough metadata for a repository. The ranking and
// forecasting logic attaches it to output rows without inspecting it; the
// enrichment collaborators own its contents.
type RepoMeta struct {
	Stars    int    `json:"stars"`
	Owner    string `json:"owner,omitempty"`
	Company  string `json:"company,omitempty"`
	Language string `json:"language,omitempty"`
}

// RepoSeries is the stored per-repository document: aggregated star series
// plus optional metadata. This is the unit of storage in the series store.
type RepoSeries struct {
	Repo       string            `json:"repo"` // "owner/name"
	FetchedAt  time.Time         `json:"fetched_at"`
	Daily      []DailyCount      `json:"daily,omitempty"`
	Weekly     []WeekRecord      `json:"weekly,omitempty"`
	Cumulative []CumulativePoint `json:"cumulative,omitempty"`
	Meta       *RepoMeta         `json:"meta,omitempty"`
}

// WindowResult is the best 90-day growth window found for one repository
// within one quarter. Eligible is false when no window cleared the starting
// star floor with positive gain; the remaining fields are then zero.
type WindowResult struct {
	Eligible    bool      `json:"eligible"`
	RelGain     float64   `json:"rel_gain"`
	AbsGain     int       `json:"abs_gain"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	StartValue  int       `json:"start_value"`
	EndValue    int       `json:"end_value"`
}

// RankedRow is one entry of a quarterly growth ranking.
type RankedRow struct {
	Repo        string    `json:"repo"`
	Quarter     string    `json:"quarter"` // e.g. "2025-Q1"
	Rank        int       `json:"rank"`
	RelGain     float64   `json:"rel_gain"`
	AbsGain     int       `json:"abs_gain"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	StartValue  int       `json:"start_value"`
	EndValue    int       `json:"end_value"`
	Meta        *RepoMeta `json:"meta,omitempty"` // attached opaquely, may be nil
}

// QuarterRanking holds one full ranking run for a quarter.
type QuarterRanking struct {
	Quarter     string      `json:"quarter"`
	GeneratedAt time.Time   `json:"generated_at"`
	Rows        []RankedRow `json:"rows"`
}

// ForecastPoint is a single projected week of star activity.
type ForecastPoint struct {
	Offset    string    `json:"offset"` // forward offset label, "+1".."+N"
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Predicted int       `json:"predicted"`
}

// ForecastRow is the projected weekly star counts for one repository.
type ForecastRow struct {
	Repo     string          `json:"repo"`
	Horizon  int             `json:"horizon"`
	LastWeek string          `json:"last_week,omitempty"` // last observed ISO week, empty if none
	Points   []ForecastPoint `json:"points"`
}
