//go:build basic

// Package integration contains integration tests for stargaze.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStargazeWithSQLite exercises the CLI end to end against the default
// SQLite backend, with HOME pointed at a temp dir so no user state is touched.
func TestStargazeWithSQLite(t *testing.T) {
	home := t.TempDir()
	origHome := os.Getenv("HOME")
	_ = os.Setenv("HOME", home)
	defer func() { _ = os.Setenv("HOME", origHome) }()

	// Version never touches the stores
	err := runStargazeCommand(t, "version")
	require.NoError(t, err)

	// Rank with an empty store produces an empty leaderboard, not an error
	err = runStargazeCommand(t, "rank", "--quarter", "2025-Q1")
	require.NoError(t, err)

	// Forecast with an empty store behaves the same way
	err = runStargazeCommand(t, "forecast", "--horizon", "4")
	require.NoError(t, err)

	// Store management against the fresh SQLite files
	err = runStargazeCommand(t, "series", "status")
	require.NoError(t, err)

	err = runStargazeCommand(t, "series", "clear")
	require.NoError(t, err)
}
