// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/stargaze/schema"
)

// StarClient defines the operations needed to collect star data from a
// hosting provider. The core analytics never touch the network; this
// interface lets the fetch layer be tested with a stub server.
type StarClient interface {
	// ListStarEvents returns the chronological starred-at timestamps for a
	// repository, oldest first.
	ListStarEvents(ctx context.Context, owner, name string) ([]time.Time, error)

	// GetRepoMeta returns passthrough metadata for a repository.
	GetRepoMeta(ctx context.Context, owner, name string) (*schema.RepoMeta, error)
}

// SeriesStore is a key-value store of per-repository series documents keyed
// by "owner/name". Implementations must be safe for sequential use from the
// CLI; the core iterates repos in the enumeration order the store returns.
type SeriesStore interface {
	// Put inserts or replaces the series document for a repository.
	Put(repo string, doc []byte, version int, fetchedAt int64) error

	// Get retrieves the raw document, schema version and fetch timestamp.
	Get(repo string) ([]byte, int, int64, error)

	// ListRepos returns all stored repository ids in a fixed order.
	ListRepos() ([]string, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.SeriesStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// RankingStore records ranking invocations and their rows for later export
// and cross-run comparison.
type RankingStore interface {
	// BeginRun creates a new ranking run and returns its unique ID.
	BeginRun(quarter string, startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the ranking run with completion data.
	EndRun(runID int64, endTime time.Time, totalRepos int) error

	// RecordRow stores one ranked row under a run.
	RecordRow(runID int64, row schema.RankedRow) error

	// GetAllRuns retrieves all recorded ranking runs.
	GetAllRuns() ([]schema.RankingRunRecord, error)

	// GetAllRows retrieves all recorded ranked rows.
	GetAllRows() ([]schema.RankedRowRecord, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.RankingStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for accessing the configured stores.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetSeriesStore() SeriesStore
	GetRankingStore() RankingStore
}
