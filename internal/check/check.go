// Package check provides system diagnostics (--check mode) and the
// pre-pipeline dependency gate (CheckDeps) for ffmpeg, ffprobe, libx264,
// and the blend/interpolation filters.
package check

import (
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/Strawby/slowglass/internal/config"
	"github.com/Strawby/slowglass/internal/filtergraph"
)

// Sentinel errors returned by CheckDeps when a required tool or filter is missing.
var (
	ErrFfmpegNotFound     = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound    = errors.New("ffprobe not found on PATH")
	ErrX264Unavailable    = errors.New("libx264 test encode failed")
	ErrMinterpolateBroken = errors.New("motion interpolation requested but minterpolate test failed")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: tool presence and versions,
// encoder and filter test runs, and the tuned blend window inventory.
// Informational only; it does not stop on failure. Returns false when any
// check failed so the caller can exit non-zero.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkTool(log, "ffmpeg")
	ok = checkTool(log, "ffprobe") && ok
	ok = checkX264(log) && ok
	ok = checkFilter(log, "tmix", "tmix=frames=4") && ok
	ok = checkFilter(log, "minterpolate", "minterpolate=fps=60") && ok

	windows := filtergraph.PresetWindows()
	sort.Ints(windows)
	labels := make([]string, len(windows))
	for i, n := range windows {
		labels[i] = fmt.Sprintf("%d", n)
	}
	log.Info("Tuned blend windows: %s (others blend uniformly)", strings.Join(labels, ", "))

	return ok
}

// checkTool verifies the tool is on PATH and logs its version line.
func checkTool(log Logger, name string) bool {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return false
	}
	out, err := exec.Command(name, "-version").Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return true
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
	return true
}

// checkX264 runs a minimal libx264 encode to verify the encoder works.
func checkX264(log Logger) bool {
	log.Info("Testing libx264...")
	if runSilent("ffmpeg", x264TestArgs()...) {
		log.Success("libx264 works")
		return true
	}
	log.Error("libx264 test encode failed")
	return false
}

// checkFilter runs a short lavfi render through the given filter expression.
func checkFilter(log Logger, name, expr string) bool {
	log.Info("Testing %s...", name)
	if runSilent("ffmpeg", filterTestArgs(expr)...) {
		log.Success("%s works", name)
		return true
	}
	log.Error("%s test failed", name)
	return false
}

// CheckDeps is the pre-pipeline validation gate: ffmpeg and ffprobe must be
// on PATH, libx264 must pass a short test encode, and when the active config
// requests motion interpolation the minterpolate filter must work too.
// Returns a sentinel error on the first failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}

	if !runSilent("ffmpeg", x264TestArgs()...) {
		return ErrX264Unavailable
	}

	if cfg.Render.InterpolateFPS > 0 {
		expr := fmt.Sprintf("minterpolate=fps=%d", cfg.Render.InterpolateFPS)
		if !runSilent("ffmpeg", filterTestArgs(expr)...) {
			return ErrMinterpolateBroken
		}
	}
	return nil
}

// x264TestArgs returns the ffmpeg arguments for a minimal libx264 test encode.
// Shared by checkX264 and CheckDeps to avoid duplicating the argument list.
func x264TestArgs() []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", "libx264",
		"-f", "null", "-",
	}
}

// filterTestArgs returns arguments for a short null render through expr.
func filterTestArgs(expr string) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.5:r=30",
		"-vf", expr,
		"-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
