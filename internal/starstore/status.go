package starstore

import (
	"fmt"

	"github.com/huangsam/stargaze/schema"
)

// PrintSeriesStatus prints series store status information.
func PrintSeriesStatus(status schema.SeriesStatus) {
	fmt.Printf("Series Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Repos: %d\n", status.TotalRepos)
	if status.TotalRepos > 0 {
		fmt.Printf("Last Fetch: %s\n", status.LastFetchTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Fetch: %s\n", status.FirstFetchTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Table Size: %d bytes\n", status.TableSizeBytes)
}

// PrintRankingStatus prints ranking store status information.
func PrintRankingStatus(status schema.RankingStatus) {
	fmt.Printf("Ranking Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.TotalRuns > 0 {
		fmt.Printf("Last Run ID: %d\n", status.LastRunID)
		fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Run: %s\n", status.OldestRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Total Ranked Rows: %d\n", status.TotalRows)
	}
	fmt.Println("Table Sizes:")
	for table, size := range status.TableSizes {
		fmt.Printf("  %s: %d rows\n", table, size)
	}
}
