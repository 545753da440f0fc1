package engine

import "time"

// NextInterval applies one step of the difficulty ramp for a reward that brought
// the score to score. The threshold score itself leaves the interval unchanged,
// and the result never drops below the floor.
func NextInterval(score int, interval time.Duration, r Rules) time.Duration {
	if interval <= r.MinInterval {
		return r.MinInterval
	}

	var step time.Duration
	switch {
	case score < r.RampThreshold:
		step = r.RampFastStep
	case score > r.RampThreshold:
		step = r.RampSlowStep
	default:
		return interval
	}

	next := interval - step
	if next < r.MinInterval {
		next = r.MinInterval
	}
	return next
}
