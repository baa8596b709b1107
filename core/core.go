// Package core orchestrates star-growth analytics: loading series documents,
// running the quarterly growth ranking and projecting weekly star counts.
package core

import (
	"encoding/json"
	"fmt"

	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/schema"
)

// SeriesDocVersion is the schema version written alongside every stored
// series document. Bump when RepoSeries changes shape incompatibly.
const SeriesDocVersion = 1

// loadSeries fetches and decodes one repository's series document.
func loadSeries(store contract.SeriesStore, repo string) (*schema.RepoSeries, error) {
	raw, version, _, err := store.Get(repo)
	if err != nil {
		return nil, fmt.Errorf("no series stored for %s: %w", repo, err)
	}
	if version != SeriesDocVersion {
		return nil, fmt.Errorf("series document for %s has version %d, expected %d (re-fetch to upgrade)", repo, version, SeriesDocVersion)
	}

	var doc schema.RepoSeries
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("corrupt series document for %s: %w", repo, err)
	}
	return &doc, nil
}

// resolveRepos returns the repositories to operate on: the explicit
// positional arguments when given, otherwise every repo in the store.
func resolveRepos(cfg *contract.Config, store contract.SeriesStore) ([]string, error) {
	if len(cfg.Repos) > 0 {
		return cfg.Repos, nil
	}
	repos, err := store.ListRepos()
	if err != nil {
		return nil, fmt.Errorf("failed to list stored repositories: %w", err)
	}
	return repos, nil
}
