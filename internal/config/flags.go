package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into render knobs, preset selection, behavior, and display.
// Knob flags override the resolved preset only when actually passed, so preset
// values hold unless the user asks otherwise (tracked via FlagSet.Visit).

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses args (normally os.Args[1:]) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (unknown flag,
// bad preset, extra positional args). The optional positional argument is the
// input directory.
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("slowglass", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var (
		showHelp    bool
		showVersion bool
		forceColor  bool
		noColor     bool
		knobs       RenderConfig
	)

	definePresetFlags(fs, cfg)
	defineKnobFlags(fs, &knobs)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &forceColor, &noColor)
	fs.BoolVar(&showHelp, "help", false, "Show this help")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")
	fs.BoolVar(&showVersion, "version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "slowglass v"+version)
		os.Exit(0)
	}

	if forceColor {
		cfg.ColorMode = ColorAlways
	}
	if noColor {
		cfg.ColorMode = ColorNever
	}

	if err := parsePositionalArgs(fs, cfg); err != nil {
		return err
	}

	return resolveRender(fs, cfg, &knobs)
}

// definePresetFlags registers preset selection and output naming.
func definePresetFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.PresetName, "preset", cfg.PresetName, "Render preset: cinematic | ambient | name from --presets file")
	fs.StringVar(&cfg.PresetName, "P", cfg.PresetName, "Same as --preset")
	fs.StringVar(&cfg.PresetFile, "presets", cfg.PresetFile, "YAML file with additional presets")
	fs.StringVar(&cfg.OutputName, "out", cfg.OutputName, "Output filename (written into the input directory)")
	fs.StringVar(&cfg.OutputName, "o", cfg.OutputName, "Same as --out")
}

// defineKnobFlags registers per-parameter overrides applied on top of the
// resolved preset. Values land in a scratch RenderConfig; only flags the user
// actually passed are copied over (see resolveRender).
func defineKnobFlags(fs *flag.FlagSet, k *RenderConfig) {
	fs.IntVar(&k.SlowFactor, "slow", 0, "Slow-down factor (timestamp multiplier)")
	fs.IntVar(&k.BlendWindow, "window", 0, "Temporal blend window (frames)")
	fs.IntVar(&k.OutputFPS, "fps", 0, "Output frame rate")
	fs.IntVar(&k.ScaleWidth, "scale", 0, "Downscale width, 0 to disable")
	fs.Float64Var(&k.BlurSigma, "blur", 0, "Gaussian blur sigma, 0 to disable")
	fs.IntVar(&k.InterpolateFPS, "interpolate", 0, "Motion interpolation fps, 0 to disable")
	fs.IntVar(&k.CRF, "crf", 0, "x264 CRF quality (0-51)")
	fs.StringVar(&k.SpeedPreset, "x264-preset", "", "x264 speed preset (e.g. slow, veryfast)")
	fs.StringVar(&k.Tune, "tune", "", "x264 tune (e.g. film), empty to disable")
}

// defineBehaviorFlags registers dry-run, check, verbose.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; print the encoder command without running it")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run toolchain diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (tee encoder stderr)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
}

// defineDisplayFlags registers --color/--no-color and --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, forceColor, noColor *bool) {
	fs.BoolVar(forceColor, "color", false, "Force colored logs")
	fs.BoolVar(noColor, "no-color", false, "Disable colored logs")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// parsePositionalArgs accepts zero or one positional argument: the input
// directory. No argument keeps the default (current directory).
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	switch fs.NArg() {
	case 0:
		return nil
	case 1:
		cfg.InputDir = NormalizeDirArg(fs.Arg(0))
		return nil
	default:
		return fmt.Errorf("expected at most one input directory, got %d arguments", fs.NArg())
	}
}

// resolveRender loads the preset file (if any), resolves the named preset,
// and applies the knob flags the user actually passed.
func resolveRender(fs *flag.FlagSet, cfg *Config, knobs *RenderConfig) error {
	var fromFile map[string]RenderConfig
	if cfg.PresetFile != "" {
		var err error
		fromFile, err = LoadPresetFile(cfg.PresetFile)
		if err != nil {
			return err
		}
	}

	rc, err := ResolvePreset(cfg.PresetName, fromFile)
	if err != nil {
		return err
	}

	passed := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { passed[f.Name] = true })

	if passed["slow"] {
		rc.SlowFactor = knobs.SlowFactor
	}
	if passed["window"] {
		rc.BlendWindow = knobs.BlendWindow
	}
	if passed["fps"] {
		rc.OutputFPS = knobs.OutputFPS
	}
	if passed["scale"] {
		rc.ScaleWidth = knobs.ScaleWidth
	}
	if passed["blur"] {
		rc.BlurSigma = knobs.BlurSigma
	}
	if passed["interpolate"] {
		rc.InterpolateFPS = knobs.InterpolateFPS
	}
	if passed["crf"] {
		rc.CRF = knobs.CRF
	}
	if passed["x264-preset"] {
		rc.SpeedPreset = knobs.SpeedPreset
	}
	if passed["tune"] {
		rc.Tune = knobs.Tune
	}

	cfg.Render = rc
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprint(os.Stderr, `slowglass - cinematic slow-motion batch renderer

Usage:
  slowglass [flags] [input_dir]

Scans input_dir (default: current directory) for numbered clips, concatenates
them in descending numeric order, and renders one slowed, temporally blended
video next to the sources.

Flags:
`)
	fs.PrintDefaults()
	fmt.Fprint(os.Stderr, `
Examples:
  slowglass                          # cinematic preset, current directory
  slowglass --preset ambient ./clips
  slowglass --slow 12 --window 16 --out loop.mp4 ./clips
  slowglass --presets render.yaml --preset dreamy ./clips
`)
}
