package pipeline

import "time"

// RunStats summarizes one pipeline run for the final report.
type RunStats struct {
	RunID           string
	Clips           int
	SkippedProbes   int     // Clips excluded from the duration total.
	InputSeconds    float64 // Summed probed duration of the inputs.
	ExpectedSeconds float64 // InputSeconds × slow-down factor.
	OutputBytes     int64
	Elapsed         time.Duration
}
