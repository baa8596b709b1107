package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/internal/parquet"
	"github.com/huangsam/stargaze/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRanking outputs the quarterly ranking, dispatching based on the output format configured.
func WriteRanking(ranking schema.QuarterRanking, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankingJSON(ranking, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRankingCSV(ranking, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeRankingParquet(ranking, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingTable(ranking, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRankingJSON handles opening the file and calling the JSON writer.
func writeRankingJSON(ranking schema.QuarterRanking, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONRankedRow struct {
			Label string `json:"label"`
			schema.RankedRow
		}
		type JSONRanking struct {
			Quarter     string          `json:"quarter"`
			GeneratedAt time.Time       `json:"generated_at"`
			Rows        []JSONRankedRow `json:"rows"`
		}

		output := JSONRanking{
			Quarter:     ranking.Quarter,
			GeneratedAt: ranking.GeneratedAt,
			Rows:        make([]JSONRankedRow, len(ranking.Rows)),
		}
		for i, r := range ranking.Rows {
			output.Rows[i] = JSONRankedRow{
				Label:     contract.GetPlainLabel(r.RelGain),
				RankedRow: r,
			}
		}
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeRankingCSV handles opening the file and calling the CSV writer.
func writeRankingCSV(ranking schema.QuarterRanking, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeRankingRows(csvWriter, ranking, fmtFloat)
	}, "Wrote CSV")
}

// writeRankingParquet converts ranked rows to their columnar form and streams
// them out. A run id of zero marks rows that were never persisted.
func writeRankingParquet(ranking schema.QuarterRanking, cfg *contract.Config) error {
	rows := make([]parquet.RankedRow, len(ranking.Rows))
	for i, r := range ranking.Rows {
		rows[i] = parquet.RankedRow{
			Repo:        r.Repo,
			Quarter:     r.Quarter,
			Rank:        int32(r.Rank),
			RelGain:     r.RelGain,
			AbsGain:     int32(r.AbsGain),
			WindowStart: r.WindowStart,
			WindowEnd:   r.WindowEnd,
			StartValue:  int32(r.StartValue),
			EndValue:    int32(r.EndValue),
		}
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return parquet.WriteRankedRows(w, rows)
	}, "Wrote Parquet")
}

// writeRankingTable generates and writes the human-readable table.
func writeRankingTable(ranking schema.QuarterRanking, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Repo", "Gain", "Tier", "Stars +", "Window", "Start", "End"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxRepoWidth := getMaxTableRepoWidth(cfg)
	var data [][]string
	for _, r := range ranking.Rows {
		row := []string{
			strconv.Itoa(r.Rank),
			contract.TruncateRepo(r.Repo, maxRepoWidth),
			fmtFloat(r.RelGain),
			tierLabel(r.RelGain, cfg),
			strconv.Itoa(r.AbsGain),
			fmt.Sprintf("%s..%s",
				r.WindowStart.Format(contract.DateFormat),
				r.WindowEnd.Format(contract.DateFormat)),
			schema.FormatStars(r.StartValue),
			schema.FormatStars(r.EndValue),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalGain := 0
	for _, r := range ranking.Rows {
		totalGain += r.AbsGain
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d repos for %s (total stars gained: %d)\n", len(ranking.Rows), ranking.Quarter, totalGain); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Ranking completed in %v. Series backend: %s\n", duration, cfg.SeriesBackend); err != nil {
		return err
	}
	return nil
}

// writeRankingRows writes the ranking in CSV format.
func writeRankingRows(w *csv.Writer, ranking schema.QuarterRanking, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"repo",
		"quarter",
		"rel_gain",
		"abs_gain",
		"window_start",
		"window_end",
		"start_value",
		"end_value",
		"label",
		"language",
		"stars",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range ranking.Rows {
		language, stars := "", ""
		if r.Meta != nil {
			language = r.Meta.Language
			stars = strconv.Itoa(r.Meta.Stars)
		}
		rec := []string{
			strconv.Itoa(r.Rank),
			r.Repo,
			r.Quarter,
			fmtFloat(r.RelGain),
			strconv.Itoa(r.AbsGain),
			r.WindowStart.Format(contract.DateFormat),
			r.WindowEnd.Format(contract.DateFormat),
			strconv.Itoa(r.StartValue),
			strconv.Itoa(r.EndValue),
			contract.GetPlainLabel(r.RelGain),
			language,
			stars,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
