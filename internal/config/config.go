// Package config holds runtime configuration: render presets, defaults, CLI
// flag parsing, env overrides, and validation. The zero-flag invocation
// renders the current directory with the "cinematic" preset.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// RenderConfig parameterizes one render: how much to slow the footage down,
// how aggressively to blend it, and how to encode the result. It is a plain
// value; the filtergraph composer treats it as read-only input.
type RenderConfig struct {
	// SlowFactor multiplies presentation timestamps (setpts). 1 = realtime.
	SlowFactor int `yaml:"slow"`

	// BlendWindow is the tmix frame count. Windows 8, 12, 15 and 16 have
	// hand-tuned weight tables; any other value blends uniformly.
	BlendWindow int `yaml:"window"`

	// OutputFPS is the final frame rate after blending.
	OutputFPS int `yaml:"fps"`

	// ScaleWidth is the downscale target width (height derived, kept even).
	// 0 disables scaling.
	ScaleWidth int `yaml:"scale"`

	// BlurSigma is the gaussian blur strength. Values <= 0 disable the stage.
	BlurSigma float64 `yaml:"blur"`

	// InterpolateFPS enables motion-compensated interpolation to an
	// intermediate rate (e.g. 240) before blending. 0 disables it.
	InterpolateFPS int `yaml:"interpolate"`

	// Encoder knobs.
	CRF         int    `yaml:"crf"`
	SpeedPreset string `yaml:"preset"`
	Tune        string `yaml:"tune"`
}

// Config holds all runtime settings. Populated by [DefaultConfig], then
// mutated by [ApplyEnv] and [ParseFlags] before being passed (by pointer)
// to the packages that need it.
type Config struct {
	// Paths.
	InputDir     string // Directory scanned for numbered clips.
	OutputName   string // Basename of the rendered file, written into InputDir.
	ManifestName string // Basename of the concat manifest, written into InputDir.

	// Preset selection.
	PresetName string // Built-in or preset-file name.
	PresetFile string // Optional YAML file with additional presets.

	// Active render parameters (resolved preset + per-knob overrides).
	Render RenderConfig

	// Behavior flags.
	DryRun    bool
	Verbose   bool
	CheckOnly bool

	// Display and logging.
	ColorMode ColorMode
	LogFile   string
}

// DefaultConfig returns a Config with the "cinematic" preset active and the
// current directory as input, matching the zero-argument script invocation.
func DefaultConfig() Config {
	return Config{
		InputDir:     ".",
		OutputName:   "render.mp4",
		ManifestName: "concat_list.txt",
		PresetName:   "cinematic",
		Render:       BuiltinPresets["cinematic"],
		ColorMode:    ColorAuto,
	}
}

// Known libx264 speed presets and tunes, for validation.
var (
	x264SpeedPresets = map[string]bool{
		"ultrafast": true, "superfast": true, "veryfast": true,
		"faster": true, "fast": true, "medium": true,
		"slow": true, "slower": true, "veryslow": true, "placebo": true,
	}
	x264Tunes = map[string]bool{
		"film": true, "animation": true, "grain": true,
		"stillimage": true, "fastdecode": true, "zerolatency": true,
	}
)

// Validate checks enum fields and render parameter ranges. The filtergraph
// composer never fails, so garbage must be rejected here before the encoder
// is handed a filter string.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.OutputName == "" || strings.ContainsRune(c.OutputName, filepath.Separator) {
		return errors.New("output name must be a bare filename")
	}
	if c.ManifestName == "" || strings.ContainsRune(c.ManifestName, filepath.Separator) {
		return errors.New("manifest name must be a bare filename")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("input directory must not be empty")
	}
	return c.Render.Validate()
}

// Validate checks the render parameters for values the encoder would choke on.
func (r *RenderConfig) Validate() error {
	if r.SlowFactor < 1 {
		return fmt.Errorf("slow-down factor must be >= 1, got %d", r.SlowFactor)
	}
	if r.BlendWindow < 1 {
		return fmt.Errorf("blend window must be >= 1, got %d", r.BlendWindow)
	}
	if r.OutputFPS < 1 {
		return fmt.Errorf("output fps must be >= 1, got %d", r.OutputFPS)
	}
	if r.ScaleWidth < 0 {
		return fmt.Errorf("scale width must not be negative, got %d", r.ScaleWidth)
	}
	if r.ScaleWidth > 0 && r.ScaleWidth%2 != 0 {
		return fmt.Errorf("scale width must be even, got %d", r.ScaleWidth)
	}
	if r.InterpolateFPS < 0 {
		return fmt.Errorf("interpolation fps must not be negative, got %d", r.InterpolateFPS)
	}
	if r.InterpolateFPS > 0 && r.InterpolateFPS < r.OutputFPS {
		return fmt.Errorf("interpolation fps (%d) must not be below output fps (%d)",
			r.InterpolateFPS, r.OutputFPS)
	}
	if r.CRF < 0 || r.CRF > 51 {
		return fmt.Errorf("crf must be in 0..51, got %d", r.CRF)
	}
	if !x264SpeedPresets[r.SpeedPreset] {
		return fmt.Errorf("unknown x264 preset %q", r.SpeedPreset)
	}
	if r.Tune != "" && !x264Tunes[r.Tune] {
		return fmt.Errorf("unknown x264 tune %q", r.Tune)
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}
