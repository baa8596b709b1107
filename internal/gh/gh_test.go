package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStarEvents_SinglePage(t *testing.T) {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/rocket/stargazers", r.URL.Path)
		assert.Equal(t, "application/vnd.github.star+json", r.Header.Get("Accept"))

		events := []map[string]string{
			{"starred_at": base.Format(time.RFC3339)},
			{"starred_at": base.Add(time.Hour).Format(time.RFC3339)},
		}
		_ = json.NewEncoder(w).Encode(events)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "")
	events, err := client.ListStarEvents(context.Background(), "acme", "rocket")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, base, events[0])
	assert.Equal(t, base.Add(time.Hour), events[1])
}

func TestListStarEvents_Pagination(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		// First page is full, second page is short, no third request expected
		require.LessOrEqual(t, page, 2)
		count := starPageSize
		if page == 2 {
			count = 3
		}

		events := make([]map[string]string, count)
		for i := range events {
			offset := (page-1)*starPageSize + i
			events[i] = map[string]string{"starred_at": base.Add(time.Duration(offset) * time.Minute).Format(time.RFC3339)}
		}
		_ = json.NewEncoder(w).Encode(events)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "")
	events, err := client.ListStarEvents(context.Background(), "acme", "rocket")
	require.NoError(t, err)
	assert.Len(t, events, starPageSize+3)
	assert.Equal(t, base, events[0])
	assert.Equal(t, base.Add(time.Duration(starPageSize+2)*time.Minute), events[len(events)-1])
}

func TestListStarEvents_AuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "secret-token")
	events, err := client.ListStarEvents(context.Background(), "acme", "rocket")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestListStarEvents_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "")
	_, err := client.ListStarEvents(context.Background(), "acme", "gone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repository not found")
}

func TestListStarEvents_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).Unix()))
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "")
	_, err := client.ListStarEvents(context.Background(), "acme", "rocket")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
	assert.Contains(t, err.Error(), "2025-06-01T00:00:00Z")
}

func TestGetRepoMeta(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/rocket", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"stargazers_count": 15400,
			"language":         "Go",
			"owner":            map[string]string{"login": "acme", "type": "Organization"},
		})
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "")
	meta, err := client.GetRepoMeta(context.Background(), "acme", "rocket")
	require.NoError(t, err)
	assert.Equal(t, 15400, meta.Stars)
	assert.Equal(t, "Go", meta.Language)
	assert.Equal(t, "acme", meta.Owner)
	assert.Equal(t, "acme", meta.Company)
}

func TestGetRepoMeta_UserOwner(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"stargazers_count": 10,
			"language":         "Rust",
			"owner":            map[string]string{"login": "octocat", "type": "User"},
		})
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "")
	meta, err := client.GetRepoMeta(context.Background(), "octocat", "hello-world")
	require.NoError(t, err)
	assert.Equal(t, "octocat", meta.Owner)
	// Individual accounts carry no company affiliation
	assert.Empty(t, meta.Company)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(nil, "", "")
	assert.Equal(t, DefaultAPIBaseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
}
