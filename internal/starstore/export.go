package starstore

import (
	"errors"
	"fmt"

	"github.com/huangsam/stargaze/internal/parquet"
	"github.com/huangsam/stargaze/schema"
)

// ExecuteRankingExport exports the recorded ranking history to Parquet files.
func ExecuteRankingExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the ranking store
	store := Manager.GetRankingStore()
	if store == nil {
		return errors.New("no ranking store configured")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get ranking status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no ranking history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total ranking runs: %d\n", status.TotalRuns)
	fmt.Printf("Total ranked rows: %d\n", status.TableSizes[rankedRowsTable])

	// Retrieve all ranking runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve ranking runs: %w", err)
	}

	// Retrieve all ranked rows
	rankedRows, err := store.GetAllRows()
	if err != nil {
		return fmt.Errorf("failed to retrieve ranked rows: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := convertRunRecords(runs)
	parquetRows := convertRowRecords(rankedRows)

	// Write ranking runs to Parquet
	runsFile := outputFile + ".ranking_runs.parquet"
	if err := parquet.WriteRankingRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write ranking runs: %w", err)
	}
	fmt.Printf("Exported %d ranking runs to: %s\n", len(parquetRuns), runsFile)

	// Write ranked rows to Parquet
	rowsFile := outputFile + ".ranked_rows.parquet"
	if err := parquet.WriteRankedRowsParquet(parquetRows, rowsFile); err != nil {
		return fmt.Errorf("failed to write ranked rows: %w", err)
	}
	fmt.Printf("Exported %d ranked rows to: %s\n", len(parquetRows), rowsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}

// convertRunRecords converts stored run records to their Parquet form.
func convertRunRecords(records []schema.RankingRunRecord) []parquet.RankingRun {
	runs := make([]parquet.RankingRun, len(records))
	for i, r := range records {
		runs[i] = parquet.RankingRun{
			RunID:         r.RunID,
			Quarter:       r.Quarter,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			RunDurationMs: r.RunDurationMs,
			TotalRepos:    r.TotalRepos,
			ConfigParams:  r.ConfigParams,
		}
	}
	return runs
}

// convertRowRecords converts stored ranked rows to their Parquet form.
func convertRowRecords(records []schema.RankedRowRecord) []parquet.RankedRow {
	rows := make([]parquet.RankedRow, len(records))
	for i, r := range records {
		rows[i] = parquet.RankedRow{
			RunID:       r.RunID,
			Repo:        r.Repo,
			Quarter:     r.Quarter,
			Rank:        r.Rank,
			RelGain:     r.RelGain,
			AbsGain:     r.AbsGain,
			WindowStart: r.WindowStart,
			WindowEnd:   r.WindowEnd,
			StartValue:  r.StartValue,
			EndValue:    r.EndValue,
		}
	}
	return rows
}
