package contract

import (
	"testing"
	"time"

	"github.com/huangsam/stargaze/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation, for tests to mutate.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Quarter:        "2025-Q1",
		Horizon:        12,
		Alpha:          0.3,
		Beta:           0.1,
		Gamma:          0.3,
		Limit:          100,
		Precision:      2,
		Output:         "text",
		Color:          "yes",
		SeriesBackend:  "sqlite",
		RankingBackend: "none",
	}
}

func TestProcessAndValidateSuccess(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.RepoArgs = []string{"golang/go", "kubernetes/kubernetes"}

	err := ProcessAndValidate(cfg, input, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "2025-Q1", cfg.Quarter)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), cfg.QuarterStart)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), cfg.QuarterEnd)
	assert.Equal(t, 12, cfg.Horizon)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.SeriesBackend)
	assert.Equal(t, schema.NoneBackend, cfg.RankingBackend)
	assert.True(t, cfg.UseColors)
	assert.Len(t, cfg.Repos, 2)
}

func TestProcessAndValidateEmptyBackendDisablesStore(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.RankingBackend = ""

	require.NoError(t, ProcessAndValidate(cfg, input, time.Now()))
	assert.Equal(t, schema.StoreBackend(""), cfg.RankingBackend)
}

func TestProcessAndValidateDefaultQuarter(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Quarter = ""

	now := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ProcessAndValidate(cfg, input, now))
	assert.Equal(t, "2025-Q1", cfg.Quarter)
}

func TestProcessAndValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{name: "bad repo name", mutate: func(in *ConfigRawInput) { in.RepoArgs = []string{"not-a-repo"} }},
		{name: "bad quarter", mutate: func(in *ConfigRawInput) { in.Quarter = "2025-Q7" }},
		{name: "zero horizon", mutate: func(in *ConfigRawInput) { in.Horizon = 0 }},
		{name: "huge horizon", mutate: func(in *ConfigRawInput) { in.Horizon = 500 }},
		{name: "alpha out of range", mutate: func(in *ConfigRawInput) { in.Alpha = 1.0 }},
		{name: "beta out of range", mutate: func(in *ConfigRawInput) { in.Beta = 0 }},
		{name: "gamma out of range", mutate: func(in *ConfigRawInput) { in.Gamma = -0.5 }},
		{name: "zero limit", mutate: func(in *ConfigRawInput) { in.Limit = 0 }},
		{name: "limit too large", mutate: func(in *ConfigRawInput) { in.Limit = 5000 }},
		{name: "bad output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }},
		{name: "bad color", mutate: func(in *ConfigRawInput) { in.Color = "maybe" }},
		{name: "bad backend", mutate: func(in *ConfigRawInput) { in.SeriesBackend = "oracle" }},
		{name: "mysql without conn string", mutate: func(in *ConfigRawInput) { in.SeriesBackend = "mysql" }},
		{name: "postgresql without conn string", mutate: func(in *ConfigRawInput) { in.RankingBackend = "postgresql" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input, time.Now()))
		})
	}
}

func TestProcessAndValidatePrecisionClamped(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Precision = 0
	require.NoError(t, ProcessAndValidate(cfg, input, time.Now()))
	assert.Equal(t, 1, cfg.Precision)

	input = validInput()
	input.Precision = 10
	require.NoError(t, ProcessAndValidate(cfg, input, time.Now()))
	assert.Equal(t, 6, cfg.Precision)
}

func TestLatestCompleteQuarter(t *testing.T) {
	tests := []struct {
		now      time.Time
		expected string
	}{
		{time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "2024-Q4"},
		{time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), "2025-Q1"},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "2025-Q3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, LatestCompleteQuarter(tt.now))
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Quarter: "2025-Q1", Repos: []string{"a/b"}}
	clone := cfg.Clone()
	clone.Repos[0] = "c/d"
	assert.Equal(t, "a/b", cfg.Repos[0])
	assert.Equal(t, cfg.Quarter, clone.Quarter)
}
