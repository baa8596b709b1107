package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteForecasts outputs forecast rows, dispatching based on the output format configured.
func WriteForecasts(rows []schema.ForecastRow, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeForecastJSON(rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeForecastCSV(rows, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeForecastTable(rows, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeForecastJSON handles opening the file and calling the JSON writer.
func writeForecastJSON(rows []schema.ForecastRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, rows)
	}, "Wrote JSON")
}

// writeForecastCSV handles opening the file and calling the CSV writer.
func writeForecastCSV(rows []schema.ForecastRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()

		header := []string{"repo", "offset", "week_start", "week_end", "predicted", "last_week"}
		if err := csvWriter.Write(header); err != nil {
			return err
		}
		for _, row := range rows {
			for _, p := range row.Points {
				rec := []string{
					row.Repo,
					p.Offset,
					p.Start.Format(contract.DateFormat),
					p.End.Format(contract.DateFormat),
					strconv.Itoa(p.Predicted),
					row.LastWeek,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	}, "Wrote CSV")
}

// writeForecastTable generates and writes the human-readable table. Points of
// all repos share one table; the repo column repeats per projected week.
func writeForecastTable(rows []schema.ForecastRow, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Repo", "Week", "Start", "End", "Predicted"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxRepoWidth := getMaxTableRepoWidth(cfg)
	var data [][]string
	for _, row := range rows {
		for _, p := range row.Points {
			data = append(data, []string{
				contract.TruncateRepo(row.Repo, maxRepoWidth),
				p.Offset,
				p.Start.Format(contract.DateFormat),
				p.End.Format(contract.DateFormat),
				strconv.Itoa(p.Predicted),
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	horizon := 0
	if len(rows) > 0 {
		horizon = rows[0].Horizon
	}
	if _, err := fmt.Fprintf(writer, "Forecast for %d repos over %d weeks\n", len(rows), horizon); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Forecast completed in %v. Series backend: %s\n", duration, cfg.SeriesBackend); err != nil {
		return err
	}
	return nil
}
