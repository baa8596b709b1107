package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Growth tier label constants.
const (
	ExplosiveValue = "Explosive" // relative gain >= 1.0 over the window
	RapidValue     = "Rapid"     // relative gain >= 0.5
	SteadyValue    = "Steady"    // relative gain >= 0.2
	ModestValue    = "Modest"    // everything below
)

// Color variables for console output.
var (
	ExplosiveColor = color.New(color.FgRed, color.Bold)     // outlier growth, the headline rows
	RapidColor     = color.New(color.FgMagenta, color.Bold) // strong sustained growth
	SteadyColor    = color.New(color.FgYellow)              // healthy growth, not bold
	ModestColor    = color.New(color.FgCyan)                // informational
)

// GetPlainLabel returns a plain text growth tier for a relative gain. This is
// the core logic used for CSV, JSON and table printing.
func GetPlainLabel(relGain float64) string {
	switch {
	case relGain >= 1.0:
		return ExplosiveValue
	case relGain >= 0.5:
		return RapidValue
	case relGain >= 0.2:
		return SteadyValue
	default:
		return ModestValue
	}
}

// GetColorLabel returns a colored growth tier for console tables. It uses
// GetPlainLabel to determine the string, then applies the matching color.
func GetColorLabel(relGain float64) string {
	text := GetPlainLabel(relGain)

	switch text {
	case ExplosiveValue:
		return ExplosiveColor.Sprint(text)
	case RapidValue:
		return RapidColor.Sprint(text)
	case SteadyValue:
		return SteadyColor.Sprint(text)
	default: // "Modest"
		return ModestColor.Sprint(text)
	}
}

// TruncateRepo truncates a repository name to a maximum width with ellipsis
// prefix, keeping the distinctive tail of long names visible. Requires
// maxWidth > 3 so there is room for the "..." prefix plus content.
func TruncateRepo(repo string, maxWidth int) string {
	runes := []rune(repo)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return repo
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetSeriesDBFilePath returns the path to the SQLite DB file for series storage.
func GetSeriesDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".stargaze_series.db"
	}
	return filepath.Join(homeDir, ".stargaze_series.db")
}

// GetRankingDBFilePath returns the path to the SQLite DB file for ranking history.
func GetRankingDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".stargaze_ranking.db"
	}
	return filepath.Join(homeDir, ".stargaze_ranking.db")
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided path, falling back to os.Stdout for the empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}
