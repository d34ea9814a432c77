package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Strawby/slowglass/internal/config"
	"github.com/Strawby/slowglass/internal/display"
	"github.com/Strawby/slowglass/internal/ffmpeg"
	"github.com/Strawby/slowglass/internal/filtergraph"
	"github.com/Strawby/slowglass/internal/logging"
	"github.com/Strawby/slowglass/internal/probe"
)

// progressBarWidth is the cell count of the in-place render bar.
const progressBarWidth = 40

// Swapped out in tests to run the pipeline without ffmpeg/ffprobe binaries.
var (
	estimatorFn = probe.Estimate
	executorFn  = ffmpeg.Execute
)

// Run drives the whole pipeline for one directory: collect → manifest →
// estimate → compose → render. All failures are terminal for the run; only
// per-clip probe failures are tolerated (they shrink the duration total but
// keep the clip in the render). Returns the stats and the first fatal error.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	stats := RunStats{RunID: shortRunID()}
	start := time.Now()

	// --- Collect ---
	clips, err := Collect(cfg.InputDir, cfg.OutputName)
	if err != nil {
		return stats, err
	}
	stats.Clips = len(clips)
	log.Info("[%s] Found %d clips in %s", stats.RunID, len(clips), cfg.InputDir)
	for i, c := range clips {
		log.Debug(cfg.Verbose, "  %2d. %s (key %d)", i+1, filepath.Base(c.Path), c.Key)
	}

	// --- Manifest ---
	manifestPath := filepath.Join(cfg.InputDir, cfg.ManifestName)
	if err := WriteManifest(clips, manifestPath); err != nil {
		return stats, err
	}
	log.Debug(cfg.Verbose, "Manifest: %s", manifestPath)

	// --- Duration estimate ---
	log.Info("Probing clip durations...")
	total, err := estimatorFn(ctx, Paths(clips), cfg.Verbose, log)
	stats.SkippedProbes = total.Skipped
	if err != nil {
		return stats, err
	}
	if total.Skipped > 0 {
		log.Warn("%d of %d clips excluded from the duration estimate", total.Skipped, len(clips))
	}

	stats.InputSeconds = total.Seconds
	stats.ExpectedSeconds = total.Seconds * float64(cfg.Render.SlowFactor)
	log.Info("Input duration: %s, expected output: %s (x%d slow-down)",
		display.FormatSeconds(stats.InputSeconds),
		display.FormatSeconds(stats.ExpectedSeconds),
		cfg.Render.SlowFactor)

	// --- Compose and build ---
	chain := filtergraph.Compose(cfg.Render)
	outputPath := filepath.Join(cfg.InputDir, cfg.OutputName)
	args := ffmpeg.Build(cfg.Render, manifestPath, chain, outputPath)

	logRenderHeader(cfg, log)
	log.Debug(cfg.Verbose, "Filter graph: %s", chain)

	if cfg.DryRun {
		log.Warn("DRY RUN: encoder not invoked")
		log.Info("%s", ffmpeg.CommandString(args))
		stats.Elapsed = time.Since(start)
		return stats, nil
	}

	// --- Render ---
	log.Render("Rendering %s", cfg.OutputName)
	bar := display.NewBar(os.Stdout, progressBarWidth)
	err = executorFn(ctx, args, stats.ExpectedSeconds, cfg.Verbose, func(p ffmpeg.Progress) {
		bar.Update(p.Percent, p.ElapsedSec, p.ExpectedSec)
	})
	bar.Finish()

	if err != nil {
		var exitErr *ffmpeg.ExitError
		if errors.As(err, &exitErr) {
			log.Error("Render failed (exit %d); partial output left at %s", exitErr.ExitCode, outputPath)
			logStderrTail(log, exitErr.Stderr)
		}
		return stats, err
	}

	// --- Report ---
	if fi, err := os.Stat(outputPath); err == nil {
		stats.OutputBytes = fi.Size()
	}
	stats.Elapsed = time.Since(start)

	log.Success("Rendered %s (%s) in %s",
		cfg.OutputName, display.FormatBytes(stats.OutputBytes), stats.Elapsed.Round(time.Second))
	return stats, nil
}

func logRenderHeader(cfg *config.Config, log *logging.Logger) {
	r := cfg.Render
	log.Info("Preset: %s", cfg.PresetName)
	log.Info("Blend: %d-frame window, %d fps out", r.BlendWindow, r.OutputFPS)
	if r.InterpolateFPS > 0 {
		log.Info("Interpolation: motion-compensated to %d fps", r.InterpolateFPS)
	}
	if r.ScaleWidth > 0 {
		log.Info("Scale: %dpx wide, aspect preserved", r.ScaleWidth)
	}
	if r.BlurSigma > 0 {
		log.Info("Blur: sigma %.2f", r.BlurSigma)
	}
	tune := r.Tune
	if tune == "" {
		tune = "none"
	}
	log.Info("Encode: libx264 crf %d, preset %s, tune %s", r.CRF, r.SpeedPreset, tune)
}

func logStderrTail(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	log.Error("Last encoder output:")
	for _, l := range strings.Split(strings.TrimSpace(stderr), "\n") {
		log.Error("  %s", l)
	}
}

// shortRunID returns a compact run identifier for log correlation.
func shortRunID() string {
	return uuid.NewString()[:8]
}
