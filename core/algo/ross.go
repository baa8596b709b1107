package algo

import (
	"time"

	"github.com/huangsam/stargaze/schema"
)

// Window scan tunables.
const (
	// WindowDays is the inclusive length of the growth window.
	WindowDays = 90

	// EligibilityFloor is the minimum star count at the window start for the
	// window to be considered at all. Windows below the floor are skipped,
	// not scored as zero, so a repository that crossed the floor mid-quarter
	// competes only on its post-floor windows.
	EligibilityFloor = 1000
)

// BestWindow finds the 90-day window with the highest relative star growth
// whose end falls inside [quarterStart, quarterEnd]. Every calendar day in
// the quarter is treated as a candidate window end; the window start is 89
// days earlier, so the window spans exactly WindowDays inclusive days.
//
// The comparison is strict, so the first maximum encountered wins: ties
// between distinct window ends resolve to the earliest qualifying end date.
// When no eligible window exists (short series, floor never cleared, or no
// positive gain) the zero-value result with Eligible=false is returned.
func BestWindow(series []schema.CumulativePoint, quarterStart, quarterEnd time.Time) schema.WindowResult {
	var best schema.WindowResult
	if len(series) == 0 {
		return best
	}

	for end := quarterStart; !end.After(quarterEnd); end = end.AddDate(0, 0, 1) {
		start := end.AddDate(0, 0, -(WindowDays - 1))
		startValue := ValueAsOf(series, start)
		if startValue < EligibilityFloor {
			continue
		}

		endValue := ValueAsOf(series, end)
		gain := endValue - startValue

		// startValue > 0 is guaranteed by the floor; the guard keeps the
		// ratio defined if the floor is ever lowered.
		var rel float64
		if startValue > 0 {
			rel = float64(gain) / float64(startValue)
		}

		if rel > best.RelGain {
			best = schema.WindowResult{
				Eligible:    true,
				RelGain:     rel,
				AbsGain:     gain,
				WindowStart: start,
				WindowEnd:   end,
				StartValue:  startValue,
				EndValue:    endValue,
			}
		}
	}

	return best
}
