package contract

import (
	"context"
	"time"

	"github.com/huangsam/stargaze/schema"
	"github.com/stretchr/testify/mock"
)

// MockStarClient is a mock implementation of StarClient for testing.
type MockStarClient struct {
	mock.Mock
}

var _ StarClient = &MockStarClient{} // Compile-time check

// ListStarEvents implements the StarClient interface.
func (m *MockStarClient) ListStarEvents(ctx context.Context, owner, name string) ([]time.Time, error) {
	ret := m.Called(ctx, owner, name)
	events, _ := ret.Get(0).([]time.Time)
	return events, ret.Error(1)
}

// GetRepoMeta implements the StarClient interface.
func (m *MockStarClient) GetRepoMeta(ctx context.Context, owner, name string) (*schema.RepoMeta, error) {
	ret := m.Called(ctx, owner, name)
	meta, _ := ret.Get(0).(*schema.RepoMeta)
	return meta, ret.Error(1)
}
