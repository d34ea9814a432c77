package config

import (
	"fmt"
	"sort"
	"strings"
)

// BuiltinPresets are the render configurations available without a preset file.
//
// "cinematic" is the heavy look: deep slow-down, wide weighted blend,
// motion interpolation to 240 fps before blending, film tune. "ambient" is
// the fast background variant: lighter slow-down, narrower blend, quick
// encode for quiet loops behind page content.
var BuiltinPresets = map[string]RenderConfig{
	"cinematic": {
		SlowFactor:     10,
		BlendWindow:    15,
		OutputFPS:      30,
		ScaleWidth:     1920,
		BlurSigma:      0.8,
		InterpolateFPS: 240,
		CRF:            18,
		SpeedPreset:    "slow",
		Tune:           "film",
	},
	"ambient": {
		SlowFactor:  6,
		BlendWindow: 12,
		OutputFPS:   24,
		ScaleWidth:  1280,
		CRF:         23,
		SpeedPreset: "veryfast",
	},
}

// ResolvePreset returns the render parameters for name, consulting the
// optional preset file first so users can shadow a built-in.
func ResolvePreset(name string, fromFile map[string]RenderConfig) (RenderConfig, error) {
	if rc, ok := fromFile[name]; ok {
		return rc, nil
	}
	if rc, ok := BuiltinPresets[name]; ok {
		return rc, nil
	}
	return RenderConfig{}, fmt.Errorf("unknown preset %q (available: %s)",
		name, strings.Join(presetNames(fromFile), ", "))
}

func presetNames(fromFile map[string]RenderConfig) []string {
	seen := make(map[string]bool, len(BuiltinPresets)+len(fromFile))
	var names []string
	for n := range BuiltinPresets {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for n := range fromFile {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
