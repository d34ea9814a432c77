package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// presetFile is the YAML document shape:
//
//	presets:
//	  dreamy:
//	    slow: 12
//	    window: 16
//	    fps: 24
//	    scale: 1920
//	    blur: 1.2
//	    interpolate: 240
//	    crf: 20
//	    preset: medium
//	    tune: film
type presetFile struct {
	Presets map[string]presetEntry `yaml:"presets"`
}

// presetEntry uses pointers so absent keys inherit the base preset values
// instead of zeroing them.
type presetEntry struct {
	Slow        *int     `yaml:"slow"`
	Window      *int     `yaml:"window"`
	FPS         *int     `yaml:"fps"`
	Scale       *int     `yaml:"scale"`
	Blur        *float64 `yaml:"blur"`
	Interpolate *int     `yaml:"interpolate"`
	CRF         *int     `yaml:"crf"`
	Preset      *string  `yaml:"preset"`
	Tune        *string  `yaml:"tune"`
	Base        string   `yaml:"base"` // Built-in preset to inherit from; default "cinematic".
}

// LoadPresetFile reads a YAML preset file and returns the render configs it
// defines. Each entry starts from its base built-in preset and overrides only
// the keys present in the file. Entries are validated eagerly so a broken
// preset file fails at startup, not mid-pipeline.
func LoadPresetFile(path string) (map[string]RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}

	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse preset file %s: %w", path, err)
	}
	if len(pf.Presets) == 0 {
		return nil, fmt.Errorf("preset file %s defines no presets", path)
	}

	out := make(map[string]RenderConfig, len(pf.Presets))
	for name, entry := range pf.Presets {
		base := entry.Base
		if base == "" {
			base = "cinematic"
		}
		rc, ok := BuiltinPresets[base]
		if !ok {
			return nil, fmt.Errorf("preset %q: unknown base %q", name, base)
		}

		applyEntry(&rc, &entry)
		if err := rc.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		out[name] = rc
	}
	return out, nil
}

func applyEntry(rc *RenderConfig, e *presetEntry) {
	if e.Slow != nil {
		rc.SlowFactor = *e.Slow
	}
	if e.Window != nil {
		rc.BlendWindow = *e.Window
	}
	if e.FPS != nil {
		rc.OutputFPS = *e.FPS
	}
	if e.Scale != nil {
		rc.ScaleWidth = *e.Scale
	}
	if e.Blur != nil {
		rc.BlurSigma = *e.Blur
	}
	if e.Interpolate != nil {
		rc.InterpolateFPS = *e.Interpolate
	}
	if e.CRF != nil {
		rc.CRF = *e.CRF
	}
	if e.Preset != nil {
		rc.SpeedPreset = *e.Preset
	}
	if e.Tune != nil {
		rc.Tune = *e.Tune
	}
}
