// Package parquet provides data structures and functions for exporting
// stargaze ranking data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
)

// RankingRun represents a single quarterly ranking run with metadata.
// This struct maps to the stargaze_ranking_runs database table.
type RankingRun struct {
	// RunID is the unique identifier for this ranking run
	RunID int64 `parquet:"run_id,snappy"`

	// Quarter is the quarter that was ranked, e.g. "2025-Q1"
	Quarter string `parquet:"quarter,snappy"`

	// StartTime is when the ranking began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the ranking completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the ranking run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalRepos is the number of repositories ranked in this run
	TotalRepos *int32 `parquet:"total_repos,optional,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RankedRow represents one ranked repository within a run.
// This struct maps to the stargaze_ranked_rows database table.
type RankedRow struct {
	// RunID references the parent ranking run
	RunID int64 `parquet:"run_id,snappy"`

	// Repo is the "owner/name" repository identifier
	Repo string `parquet:"repo,snappy"`

	// Quarter is the quarter the row belongs to
	Quarter string `parquet:"quarter,snappy"`

	// Rank is the 1-based position within the run
	Rank int32 `parquet:"rank,snappy"`

	// RelGain is the relative star gain of the best window
	RelGain float64 `parquet:"rel_gain,snappy"`

	// AbsGain is the absolute star gain of the best window
	AbsGain int32 `parquet:"abs_gain,snappy"`

	// WindowStart is the first day of the best window
	WindowStart time.Time `parquet:"window_start,snappy"`

	// WindowEnd is the last day of the best window
	WindowEnd time.Time `parquet:"window_end,snappy"`

	// StartValue is the cumulative star count at the window start
	StartValue int32 `parquet:"start_value,snappy"`

	// EndValue is the cumulative star count at the window end
	EndValue int32 `parquet:"end_value,snappy"`
}

// WriteRankingRunsParquet writes a slice of RankingRun structs to a Parquet file.
func WriteRankingRunsParquet(data []RankingRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the RankingRun struct tags
	writer := parquet.NewGenericWriter[RankingRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRankedRowsParquet writes a slice of RankedRow structs to a Parquet file.
func WriteRankedRowsParquet(data []RankedRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[RankedRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRankedRows streams RankedRow structs to an already-open writer. The
// output dispatcher uses this when parquet is selected as the output mode.
func WriteRankedRows(w io.Writer, data []RankedRow) error {
	writer := parquet.NewGenericWriter[RankedRow](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet stream: %w", err)
	}
	return writer.Close()
}
