// Package filtergraph composes the ffmpeg video filter chain for a render:
// downscale, blur, time-stretch, optional motion interpolation, temporal
// blend, frame-rate resample, and pixel format normalization.
package filtergraph

import (
	"strconv"
	"strings"
)

// Weights is a temporal blend weight table. Divisor is the normalization
// denominator and must equal the sum of Taps, or blended output brightness
// drifts. ffmpeg's tmix normalizes by the tap sum when no explicit scale is
// given, so the table satisfying Sum()==Divisor is exactly what keeps the
// composed filter brightness-neutral.
type Weights struct {
	Taps    []int
	Divisor int
}

// Sum returns the total of all taps.
func (w Weights) Sum() int {
	total := 0
	for _, t := range w.Taps {
		total += t
	}
	return total
}

// String renders the taps as the space-separated list tmix expects.
func (w Weights) String() string {
	parts := make([]string, len(w.Taps))
	for i, t := range w.Taps {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, " ")
}

// blendPresets maps blend window size to its hand-tuned triangular weight
// table. New window sizes are additions to this table, not new code paths.
var blendPresets = map[int]Weights{
	8: {
		Taps:    []int{1, 2, 3, 4, 4, 3, 2, 1},
		Divisor: 20,
	},
	12: {
		Taps:    []int{1, 2, 3, 4, 5, 6, 6, 5, 4, 3, 2, 1},
		Divisor: 42,
	},
	15: {
		Taps:    []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 8, 7, 6, 5, 4, 3},
		Divisor: 78,
	},
	16: {
		Taps:    []int{1, 2, 3, 4, 5, 6, 7, 8, 8, 7, 6, 5, 4, 3, 2, 1},
		Divisor: 72,
	},
}

// BlendWeights returns the weight table for a window size. ok is false when
// the size has no tuned table; callers then fall back to an unweighted blend.
func BlendWeights(window int) (Weights, bool) {
	w, ok := blendPresets[window]
	return w, ok
}

// PresetWindows lists the window sizes with tuned weight tables, for
// diagnostics output.
func PresetWindows() []int {
	sizes := make([]int, 0, len(blendPresets))
	for n := range blendPresets {
		sizes = append(sizes, n)
	}
	return sizes
}
