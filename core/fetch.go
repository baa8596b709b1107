package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/stargaze/core/agg"
	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/schema"
)

// FetchRepo collects star events and metadata for one repository, aggregates
// them into a series document and stores it. Metadata failures are tolerated:
// the series is still usable for ranking and forecasting without it.
func FetchRepo(ctx context.Context, repo string, client contract.StarClient, store contract.SeriesStore) (*schema.RepoSeries, error) {
	owner, name, err := schema.SplitRepoName(repo)
	if err != nil {
		return nil, err
	}

	events, err := client.ListStarEvents(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch star events for %s: %w", repo, err)
	}

	meta, err := client.GetRepoMeta(ctx, owner, name)
	if err != nil {
		contract.LogWarn("Could not fetch repository metadata", err)
		meta = nil
	}

	fetchedAt := time.Now().UTC()
	doc := agg.BuildSeries(repo, events, meta, fetchedAt)

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode series for %s: %w", repo, err)
	}
	if err := store.Put(repo, raw, SeriesDocVersion, fetchedAt.Unix()); err != nil {
		return nil, fmt.Errorf("failed to store series for %s: %w", repo, err)
	}
	return &doc, nil
}

// ExecuteFetch fetches and stores series documents for every configured
// repository. One failing repository does not abort the rest; the first
// failure is reported after all repos were attempted.
func ExecuteFetch(ctx context.Context, cfg *contract.Config, client contract.StarClient, mgr contract.StoreManager) error {
	store := mgr.GetSeriesStore()
	if store == nil {
		return fmt.Errorf("no series store configured")
	}
	if len(cfg.Repos) == 0 {
		return fmt.Errorf("no repositories given to fetch")
	}

	var firstErr error
	for _, repo := range cfg.Repos {
		doc, err := FetchRepo(ctx, repo, client, store)
		if err != nil {
			contract.LogWarn("Fetch failed", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		total := 0
		if n := len(doc.Cumulative); n > 0 {
			total = doc.Cumulative[n-1].Total
		}
		fmt.Printf("Fetched %s: %s stars across %d active weeks\n",
			repo, schema.FormatStars(total), len(doc.Weekly))
	}
	return firstErr
}
