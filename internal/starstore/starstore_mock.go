package starstore

import (
	"time"

	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetSeriesStore implements the StoreManager interface.
func (m *MockStoreManager) GetSeriesStore() contract.SeriesStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SeriesStore)
	return store
}

// GetRankingStore implements the StoreManager interface.
func (m *MockStoreManager) GetRankingStore() contract.RankingStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RankingStore)
	return store
}

// MockSeriesStore is a mock implementation of SeriesStore for testing.
type MockSeriesStore struct {
	mock.Mock
}

var _ contract.SeriesStore = &MockSeriesStore{} // Compile-time check

// Put implements the SeriesStore interface.
func (m *MockSeriesStore) Put(repo string, doc []byte, version int, fetchedAt int64) error {
	args := m.Called(repo, doc, version, fetchedAt)
	return args.Error(0)
}

// Get implements the SeriesStore interface.
func (m *MockSeriesStore) Get(repo string) ([]byte, int, int64, error) {
	args := m.Called(repo)
	doc, _ := args.Get(0).([]byte)
	return doc, args.Int(1), args.Get(2).(int64), args.Error(3)
}

// ListRepos implements the SeriesStore interface.
func (m *MockSeriesStore) ListRepos() ([]string, error) {
	args := m.Called()
	repos, _ := args.Get(0).([]string)
	return repos, args.Error(1)
}

// GetStatus implements the SeriesStore interface.
func (m *MockSeriesStore) GetStatus() (schema.SeriesStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.SeriesStatus), args.Error(1)
}

// Close implements the SeriesStore interface.
func (m *MockSeriesStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockRankingStore is a mock implementation of RankingStore for testing.
type MockRankingStore struct {
	mock.Mock
}

var _ contract.RankingStore = &MockRankingStore{} // Compile-time check

// BeginRun implements the RankingStore interface.
func (m *MockRankingStore) BeginRun(quarter string, startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(quarter, startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RankingStore interface.
func (m *MockRankingStore) EndRun(runID int64, endTime time.Time, totalRepos int) error {
	args := m.Called(runID, endTime, totalRepos)
	return args.Error(0)
}

// RecordRow implements the RankingStore interface.
func (m *MockRankingStore) RecordRow(runID int64, row schema.RankedRow) error {
	args := m.Called(runID, row)
	return args.Error(0)
}

// GetAllRuns implements the RankingStore interface.
func (m *MockRankingStore) GetAllRuns() ([]schema.RankingRunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RankingRunRecord)
	return runs, args.Error(1)
}

// GetAllRows implements the RankingStore interface.
func (m *MockRankingStore) GetAllRows() ([]schema.RankedRowRecord, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]schema.RankedRowRecord)
	return rows, args.Error(1)
}

// GetStatus implements the RankingStore interface.
func (m *MockRankingStore) GetStatus() (schema.RankingStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RankingStatus), args.Error(1)
}

// Close implements the RankingStore interface.
func (m *MockRankingStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
