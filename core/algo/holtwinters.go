package algo

import "math"

// Holt-Winters tunables. The season length matches the weekly cadence of the
// input series: one seasonal slot per ISO week of the year.
const (
	SeasonLength    = 52
	DefaultAlpha    = 0.3
	DefaultBeta     = 0.1
	DefaultGamma    = 0.3
	DefaultHorizon  = 12
	minSeriesLength = SeasonLength + 2
)

// Smoothing holds the Holt-Winters smoothing parameters. All three must lie
// in (0, 1); validation happens at config time, not here.
type Smoothing struct {
	Alpha float64 // level
	Beta  float64 // trend
	Gamma float64 // seasonal
}

// DefaultSmoothing returns the standard smoothing parameters.
func DefaultSmoothing() Smoothing {
	return Smoothing{Alpha: DefaultAlpha, Beta: DefaultBeta, Gamma: DefaultGamma}
}

// HoltWinters projects 'horizon' future values from a weekly series using
// additive triple exponential smoothing. The input must be contiguous:
// one value per elapsed ISO week with inactive weeks filled as explicit
// zeros, otherwise the modulo-indexed seasonal slots misalign.
//
// A series shorter than SeasonLength+2 cannot seed a season profile; the
// contract for that case is a horizon of zeros, never an error, so new or
// short-lived repositories degrade gracefully.
//
// Projections are clamped to non-negative integers since fractional or
// negative star counts are meaningless.
func HoltWinters(values []float64, sm Smoothing, horizon int) []int {
	out := make([]int, horizon)
	if len(values) < minSeriesLength {
		return out
	}

	// Additive decomposition seed: first observation as level, first
	// difference as trend, first season of offsets as the seasonal profile.
	level := values[0]
	trend := values[1] - values[0]
	season := make([]float64, SeasonLength)
	for i := 0; i < SeasonLength; i++ {
		season[i] = values[i] - values[0]
	}

	// Single chronological pass over the whole series, no re-estimation.
	for t, y := range values {
		i := t % SeasonLength
		prevLevel := level
		level = sm.Alpha*(y-season[i]) + (1-sm.Alpha)*(level+trend)
		trend = sm.Beta*(level-prevLevel) + (1-sm.Beta)*trend
		season[i] = sm.Gamma*(y-level) + (1-sm.Gamma)*season[i]
	}

	lastIndex := len(values) - 1
	for k := 1; k <= horizon; k++ {
		j := (lastIndex + k) % SeasonLength
		predicted := level + float64(k)*trend + season[j]
		out[k-1] = int(math.Max(0, math.Round(predicted)))
	}
	return out
}
