package filtergraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Strawby/slowglass/internal/config"
)

// Compose builds the comma-joined video filter chain for rc. It is a pure
// function and never fails; invalid parameter values are rejected by
// config.RenderConfig.Validate before the chain reaches the encoder.
//
// Stage order is fixed:
//
//	scale (optional) → gblur (optional) → setpts → minterpolate (optional)
//	→ tmix → fps → format=yuv420p
//
// Time-stretch precedes the blend so tmix averages already-stretched frames;
// interpolation sits between them so the blend window sees the dense
// intermediate stream.
func Compose(rc config.RenderConfig) string {
	var stages []string

	if rc.ScaleWidth > 0 {
		// -2 derives the height from the aspect ratio rounded to an even
		// value, which yuv420p requires.
		stages = append(stages, fmt.Sprintf("scale=%d:-2", rc.ScaleWidth))
	}

	if rc.BlurSigma > 0 {
		stages = append(stages, "gblur=sigma="+formatSigma(rc.BlurSigma))
	}

	stages = append(stages, fmt.Sprintf("setpts=%d*PTS", rc.SlowFactor))

	if rc.InterpolateFPS > 0 {
		stages = append(stages, fmt.Sprintf(
			"minterpolate=fps=%d:mi_mode=mci:mc_mode=aobmc:vsbmc=1", rc.InterpolateFPS))
	}

	stages = append(stages, blendStage(rc.BlendWindow))
	stages = append(stages, fmt.Sprintf("fps=%d", rc.OutputFPS))
	stages = append(stages, "format=yuv420p")

	return strings.Join(stages, ",")
}

// blendStage renders the tmix stage for a window size, using the tuned weight
// table when one exists and an unweighted average otherwise.
func blendStage(window int) string {
	if w, ok := BlendWeights(window); ok {
		return fmt.Sprintf("tmix=frames=%d:weights='%s'", window, w.String())
	}
	return fmt.Sprintf("tmix=frames=%d", window)
}

// formatSigma renders the blur sigma without trailing zeros (1.5 not 1.50,
// 2 not 2.00) so composed graphs stay stable across config round-trips.
func formatSigma(sigma float64) string {
	return strconv.FormatFloat(sigma, 'f', -1, 64)
}
