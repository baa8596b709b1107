package schema

import "time"

// SeriesStatus holds status information about the series store.
type SeriesStatus struct {
	Backend        string
	Connected      bool
	TotalRepos     int
	LastFetchTime  time.Time
	FirstFetchTime time.Time
	TableSizeBytes int64
}

// RankingStatus holds status information about the ranking-history store.
type RankingStatus struct {
	Backend       string
	Connected     bool
	TotalRuns     int64
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
	TotalRows     int64
	TableSizes    map[string]int64
}

// RankingRunRecord is one recorded ranking invocation.
type RankingRunRecord struct {
	RunID         int64
	Quarter       string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalRepos    *int32
	ConfigParams  *string
}

// RankedRowRecord is one persisted ranked row, keyed by its parent run.
type RankedRowRecord struct {
	RunID       int64
	Repo        string
	Quarter     string
	Rank        int32
	RelGain     float64
	AbsGain     int32
	WindowStart time.Time
	WindowEnd   time.Time
	StartValue  int32
	EndValue    int32
}
