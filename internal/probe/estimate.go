package probe

import (
	"context"
	"errors"
	"path/filepath"
)

// ErrInvalidTotalDuration is returned when no clip contributed a positive
// duration: without a total there is no progress denominator, so the render
// cannot proceed.
var ErrInvalidTotalDuration = errors.New("total input duration is zero (no probe succeeded)")

// Logger is the minimal logging interface needed by Estimate. Defined here
// (rather than importing the logging package) so probe stays dependency-light
// and testable with a mock logger.
type Logger interface {
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// proberFn is swapped out in tests to avoid invoking a real ffprobe.
var proberFn = Duration

// Total is the estimator outcome: the summed input duration and how many
// clips were skipped because their probe failed or parsed to nothing.
type Total struct {
	Seconds float64
	Skipped int
}

// Estimate probes every path and sums the durations. A failed or unparseable
// probe is a per-clip warning: the clip contributes 0 seconds but stays in
// the render. When nothing contributes, ErrInvalidTotalDuration is returned.
// The context is checked between clips so an interrupt lands promptly.
func Estimate(ctx context.Context, paths []string, verbose bool, log Logger) (Total, error) {
	var total Total

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		res, err := proberFn(path)
		if err != nil {
			log.Warn("Probe failed for %s, excluding from duration total: %v",
				filepath.Base(path), err)
			total.Skipped++
			continue
		}
		if res.Duration <= 0 {
			log.Warn("No duration reported for %s, excluding from duration total",
				filepath.Base(path))
			total.Skipped++
			continue
		}

		log.Debug(verbose, "  %s: %.3fs", filepath.Base(path), res.Duration)
		total.Seconds += res.Duration
	}

	if total.Seconds <= 0 {
		return total, ErrInvalidTotalDuration
	}
	return total, nil
}
