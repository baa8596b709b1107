// Package starstore persists star series documents and ranking history
// across multiple database backends.
package starstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// SeriesStoreImpl handles durable series storage using various database backends.
type SeriesStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.StoreBackend
	driverName string
	connStr    string
}

var _ contract.SeriesStore = &SeriesStoreImpl{} // Compile-time check

// NewSeriesStore initializes and returns a new SeriesStore based on the backend type.
func NewSeriesStore(tableName string, backend schema.StoreBackend, connStr string) (contract.SeriesStore, error) {
	// Validate table name to prevent SQL injection
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetSeriesDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled persistence
		return &SeriesStoreImpl{
			db:         nil,
			tableName:  tableName,
			backend:    backend,
			driverName: "",
			connStr:    connStr,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported series backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	query := getCreateSeriesTableQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &SeriesStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// getCreateSeriesTableQuery returns the CREATE TABLE query for the given backend.
func getCreateSeriesTableQuery(tableName string, backend schema.StoreBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				repo VARCHAR(255) PRIMARY KEY,
				series_doc BLOB NOT NULL,
				doc_version INT NOT NULL,
				fetched_at BIGINT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				repo TEXT PRIMARY KEY,
				series_doc BYTEA NOT NULL,
				doc_version INTEGER NOT NULL,
				fetched_at BIGINT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				repo TEXT PRIMARY KEY,
				series_doc BLOB NOT NULL,
				doc_version INTEGER NOT NULL,
				fetched_at INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

// Get retrieves the raw series document, schema version and fetch timestamp.
func (ss *SeriesStoreImpl) Get(repo string) ([]byte, int, int64, error) {
	// Return not found error for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil, 0, 0, sql.ErrNoRows
	}

	var doc []byte
	var version int
	var fetchedAt int64

	// Use backend-specific placeholder
	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	placeholder := ss.getPlaceholder()
	query := fmt.Sprintf(`SELECT series_doc, doc_version, fetched_at FROM %s WHERE repo = %s`, quotedTableName, placeholder)
	row := ss.db.QueryRow(query, repo)

	if err := row.Scan(&doc, &version, &fetchedAt); err != nil {
		return nil, 0, 0, err
	}
	return doc, version, fetchedAt, nil
}

// Put inserts or replaces the series document for a repository.
func (ss *SeriesStoreImpl) Put(repo string, doc []byte, version int, fetchedAt int64) error {
	// Skip for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}

	// Use backend-specific UPSERT
	query := ss.getUpsertQuery()
	_, err := ss.db.Exec(query, repo, doc, version, fetchedAt)
	return err
}

// ListRepos returns all stored repository ids ordered by name.
func (ss *SeriesStoreImpl) ListRepos() ([]string, error) {
	// No repos for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	query := fmt.Sprintf(`SELECT repo FROM %s ORDER BY repo`, quotedTableName)
	rows, err := ss.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list repos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var repos []string
	for rows.Next() {
		var repo string
		if err := rows.Scan(&repo); err != nil {
			return nil, fmt.Errorf("failed to scan repo: %w", err)
		}
		repos = append(repos, repo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating repos: %w", err)
	}
	return repos, nil
}

// getPlaceholder returns the parameter placeholder for the backend.
func (ss *SeriesStoreImpl) getPlaceholder() string {
	switch ss.backend {
	case schema.PostgreSQLBackend:
		return "$1"
	default: // SQLite and MySQL
		return "?"
	}
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ss *SeriesStoreImpl) getUpsertQuery() string {
	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	switch ss.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (repo, series_doc, doc_version, fetched_at) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE series_doc = new.series_doc, doc_version = new.doc_version, fetched_at = new.fetched_at`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (repo, series_doc, doc_version, fetched_at) VALUES ($1, $2, $3, $4)
			ON CONFLICT (repo) DO UPDATE SET series_doc = EXCLUDED.series_doc, doc_version = EXCLUDED.doc_version, fetched_at = EXCLUDED.fetched_at`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (repo, series_doc, doc_version, fetched_at) VALUES (?, ?, ?, ?)`, quotedTableName)
	}
}

// Close closes the underlying DB connection.
func (ss *SeriesStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}

// GetStatus returns status information about the series store.
func (ss *SeriesStoreImpl) GetStatus() (schema.SeriesStatus, error) {
	status := schema.SeriesStatus{
		Backend:   string(ss.backend),
		Connected: ss.db != nil,
	}

	if ss.backend == schema.NoneBackend || ss.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(ss.tableName, ss.backend)

	// Get total repos
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	row := ss.db.QueryRow(countQuery)
	if err := row.Scan(&status.TotalRepos); err != nil {
		return status, fmt.Errorf("failed to get total repos: %w", err)
	}

	if status.TotalRepos == 0 {
		return status, nil
	}

	// Get last fetch time
	lastQuery := fmt.Sprintf("SELECT MAX(fetched_at) FROM %s", quotedTableName)
	row = ss.db.QueryRow(lastQuery)
	var lastTs int64
	if err := row.Scan(&lastTs); err != nil {
		return status, fmt.Errorf("failed to get last fetch time: %w", err)
	}
	status.LastFetchTime = time.Unix(lastTs, 0)

	// Get first fetch time
	firstQuery := fmt.Sprintf("SELECT MIN(fetched_at) FROM %s", quotedTableName)
	row = ss.db.QueryRow(firstQuery)
	var firstTs int64
	if err := row.Scan(&firstTs); err != nil {
		return status, fmt.Errorf("failed to get first fetch time: %w", err)
	}
	status.FirstFetchTime = time.Unix(firstTs, 0)

	// Estimate table size (approximate)
	// For SQLite, use page_count * page_size
	// For others, use database-specific size queries with a rough fallback
	if ss.backend == schema.SQLiteBackend {
		sizeQuery := "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()"
		row = ss.db.QueryRow(sizeQuery)
		if err := row.Scan(&status.TableSizeBytes); err != nil {
			// If pragma fails, skip size
			status.TableSizeBytes = 0
		}
	} else {
		switch ss.backend {
		case schema.MySQLBackend:
			// Fallback rough estimate if information_schema query fails
			status.TableSizeBytes = int64(status.TotalRepos) * 1000

			cfg, err := mysql.ParseDSN(ss.connStr)
			if err != nil {
				break
			}
			dbName := cfg.DBName
			if dbName == "" {
				break
			}
			sizeQuery := "SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?"
			row := ss.db.QueryRow(sizeQuery, dbName, ss.tableName)
			if err := row.Scan(&status.TableSizeBytes); err != nil {
				status.TableSizeBytes = int64(status.TotalRepos) * 1000
			}
		case schema.PostgreSQLBackend:
			sizeQuery := "SELECT pg_total_relation_size($1)"
			row = ss.db.QueryRow(sizeQuery, ss.tableName)
			if err := row.Scan(&status.TableSizeBytes); err != nil {
				status.TableSizeBytes = int64(status.TotalRepos) * 1000 // Fallback rough estimate
			}
		default:
			status.TableSizeBytes = int64(status.TotalRepos) * 1000 // Rough estimate
		}
	}

	return status, nil
}
