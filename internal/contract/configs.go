package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/stargaze/core/timewin"
	"github.com/huangsam/stargaze/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 100
	MaxResultLimit     = 1000
	DefaultHorizon     = 12
	MaxHorizon         = 104
	DefaultPrecision   = 2
)

// DateFormat is the calendar-day representation used in all output.
const DateFormat = "2006-01-02"

// Config holds the validated runtime configuration.
type Config struct {
	Repos []string // positional owner/name arguments, empty = all stored repos

	Quarter      string // "YYYY-Qn"
	QuarterStart time.Time
	QuarterEnd   time.Time

	Horizon int
	Alpha   float64
	Beta    float64
	Gamma   float64

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // terminal width override (0 = auto-detect)
	UseColors   bool

	Token      string // API token, prefer env var over config file
	APIBaseURL string

	SeriesBackend    schema.StoreBackend
	SeriesDBConnect  string // please use env var as this is plaintext
	RankingBackend   schema.StoreBackend
	RankingDBConnect string // please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct before validation.
type ConfigRawInput struct {
	// Set manually from positional args, so no tag.
	RepoArgs []string

	Quarter          string  `mapstructure:"quarter"`
	Horizon          int     `mapstructure:"horizon"`
	Alpha            float64 `mapstructure:"alpha"`
	Beta             float64 `mapstructure:"beta"`
	Gamma            float64 `mapstructure:"gamma"`
	Limit            int     `mapstructure:"limit"`
	Precision        int     `mapstructure:"precision"`
	Output           string  `mapstructure:"output"`
	OutputFile       string  `mapstructure:"output-file"`
	Width            int     `mapstructure:"width"`
	Color            string  `mapstructure:"color"`
	Token            string  `mapstructure:"token"`
	APIBaseURL       string  `mapstructure:"api-base-url"`
	SeriesBackend    string  `mapstructure:"series-backend"`
	SeriesDBConnect  string  `mapstructure:"series-db-connect"`
	RankingBackend   string  `mapstructure:"ranking-backend"`
	RankingDBConnect string  `mapstructure:"ranking-db-connect"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Repos != nil {
		clone.Repos = make([]string, len(c.Repos))
		copy(clone.Repos, c.Repos)
	}
	return &clone
}

// ProcessAndValidate turns raw input into a validated Config. It parses the
// quarter key into calendar bounds, checks smoothing parameters and limits,
// and normalizes backend names. The zero quarter means "latest complete
// quarter relative to now".
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	// Repos: validate the owner/name shape up front.
	for _, r := range input.RepoArgs {
		if _, _, err := schema.SplitRepoName(r); err != nil {
			return err
		}
	}
	cfg.Repos = input.RepoArgs

	// Quarter selection.
	quarter := input.Quarter
	if quarter == "" {
		quarter = LatestCompleteQuarter(now)
	}
	year, q, err := timewin.ParseQuarterKey(quarter)
	if err != nil {
		return err
	}
	start, end, err := timewin.QuarterBounds(year, q)
	if err != nil {
		return err
	}
	cfg.Quarter = timewin.QuarterKey(year, q)
	cfg.QuarterStart = start
	cfg.QuarterEnd = end

	// Forecast parameters.
	if input.Horizon <= 0 || input.Horizon > MaxHorizon {
		return fmt.Errorf("horizon must be between 1 and %d, got %d", MaxHorizon, input.Horizon)
	}
	cfg.Horizon = input.Horizon
	for name, v := range map[string]float64{"alpha": input.Alpha, "beta": input.Beta, "gamma": input.Gamma} {
		if v <= 0 || v >= 1 {
			return fmt.Errorf("%s must be in (0, 1), got %g", name, v)
		}
	}
	cfg.Alpha = input.Alpha
	cfg.Beta = input.Beta
	cfg.Gamma = input.Gamma

	// Result shaping.
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit
	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 6 {
		cfg.Precision = 6
	}

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q (expected text, csv, json or parquet)", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	// Collection settings.
	cfg.Token = input.Token
	cfg.APIBaseURL = input.APIBaseURL

	// Store backends.
	seriesBackend, err := validateBackend("series-backend", input.SeriesBackend)
	if err != nil {
		return err
	}
	cfg.SeriesBackend = seriesBackend
	cfg.SeriesDBConnect = input.SeriesDBConnect

	rankingBackend, err := validateBackend("ranking-backend", input.RankingBackend)
	if err != nil {
		return err
	}
	cfg.RankingBackend = rankingBackend
	cfg.RankingDBConnect = input.RankingDBConnect

	if err := ValidateConnectionString(cfg.SeriesBackend, cfg.SeriesDBConnect); err != nil {
		return err
	}
	return ValidateConnectionString(cfg.RankingBackend, cfg.RankingDBConnect)
}

// RevalidateQuarter re-parses a quarter key into calendar bounds on an
// already-validated config. Callers that accept a quarter override after the
// initial validation pass (like the MCP handlers) use this.
func RevalidateQuarter(cfg *Config, quarter string) error {
	year, q, err := timewin.ParseQuarterKey(quarter)
	if err != nil {
		return err
	}
	start, end, err := timewin.QuarterBounds(year, q)
	if err != nil {
		return err
	}
	cfg.Quarter = timewin.QuarterKey(year, q)
	cfg.QuarterStart = start
	cfg.QuarterEnd = end
	return nil
}

// validateBackend normalizes and checks a store backend name. The empty
// string is allowed and means the store is disabled entirely.
func validateBackend(flag, raw string) (schema.StoreBackend, error) {
	if raw == "" {
		return "", nil
	}
	backend := schema.StoreBackend(strings.ToLower(raw))
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return "", fmt.Errorf("invalid %s %q (expected sqlite, mysql, postgresql or none)", flag, raw)
	}
	return backend, nil
}

// ValidateConnectionString checks that SQL server backends have a connection
// string configured. SQLite falls back to a default file path and None needs
// nothing.
func ValidateConnectionString(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("mysql backend requires a connection string (user:password@tcp(host:port)/dbname)")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("postgresql backend requires a connection string (host=... port=... user=... dbname=...)")
		}
	}
	return nil
}

// LatestCompleteQuarter returns the key of the most recent quarter that has
// fully elapsed as of now.
func LatestCompleteQuarter(now time.Time) string {
	year := now.Year()
	q := (int(now.Month())-1)/3 + 1
	q--
	if q == 0 {
		year--
		q = 4
	}
	return timewin.QuarterKey(year, q)
}
