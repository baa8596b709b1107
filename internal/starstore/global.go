package starstore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/schema"
)

// seriesTable is the name of the table for series documents.
const seriesTable = "stargaze_series"

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global store manager with separate series and ranking stores.
// seriesBackend and seriesConnStr can be empty to disable series storage.
// rankingBackend and rankingConnStr can be empty to disable ranking history.
func InitStores(seriesBackend schema.StoreBackend, seriesConnStr string, rankingBackend schema.StoreBackend, rankingConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var err error

		// Initialize Series Store only if backend is configured
		var seriesStore contract.SeriesStore
		if seriesBackend != "" {
			seriesStore, err = NewSeriesStore(seriesTable, seriesBackend, seriesConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize series store: %w", err)
				return
			}
		}

		// Initialize Ranking Store only if backend is configured
		var rankingStore contract.RankingStore
		if rankingBackend != "" {
			rankingStore, err = NewRankingStore(rankingBackend, rankingConnStr)
			if err != nil {
				if seriesStore != nil {
					_ = seriesStore.Close()
				}
				initErr = fmt.Errorf("failed to initialize ranking store: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.series = seriesStore
		Manager.ranking = rankingStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.series != nil {
			_ = Manager.series.Close()
		}
		if Manager.ranking != nil {
			_ = Manager.ranking.Close()
		}
	})
}

// ClearSeries clears the series data for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearSeries(backend schema.StoreBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, seriesTable)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, seriesTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported series backend for clearing: %s", backend)
	}
}

// ClearRanking clears the ranking history for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the ranking tables.
// For NoneBackend, it does nothing.
func ClearRanking(backend schema.StoreBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		// Clear ranking tables
		tables := []string{rankingRunsTable, rankedRowsTable}
		for _, table := range tables {
			if err := clearSQLTable("mysql", connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.PostgreSQLBackend:
		// Clear ranking tables
		tables := []string{rankingRunsTable, rankedRowsTable}
		for _, table := range tables {
			if err := clearSQLTable("pgx", connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported ranking backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
