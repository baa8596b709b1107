package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteWeeks outputs one repository's weekly star series, dispatching based
// on the output format configured.
func WriteWeeks(repo string, weeks []schema.WeekRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			type JSONWeeks struct {
				Repo  string              `json:"repo"`
				Weeks []schema.WeekRecord `json:"weeks"`
			}
			return writeJSON(w, JSONWeeks{Repo: repo, Weeks: weeks})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()

			header := []string{"repo", "week", "start", "end", "stars"}
			if err := csvWriter.Write(header); err != nil {
				return err
			}
			for _, wk := range weeks {
				rec := []string{
					repo,
					wk.Week,
					wk.Start.Format(contract.DateFormat),
					wk.End.Format(contract.DateFormat),
					strconv.Itoa(wk.Total),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeeksTable(repo, weeks, w)
		}, "Wrote table")
	}
}

// writeWeeksTable generates and writes the human-readable table.
func writeWeeksTable(repo string, weeks []schema.WeekRecord, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Week", "Start", "End", "Stars"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	total := 0
	var data [][]string
	for _, wk := range weeks {
		total += wk.Total
		data = append(data, []string{
			wk.Week,
			wk.Start.Format(contract.DateFormat),
			wk.End.Format(contract.DateFormat),
			strconv.Itoa(wk.Total),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "%s: %d stars across %d weeks\n", repo, total, len(weeks))
	return err
}
