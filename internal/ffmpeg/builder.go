// Package ffmpeg builds the encoder command line, executes it, and parses
// the machine-readable progress stream it emits.
package ffmpeg

import (
	"fmt"
	"strconv"

	"github.com/Strawby/slowglass/internal/config"
)

// Build constructs the complete ffmpeg argument slice for one render. The
// concat demuxer reads the manifest, the composed filter chain is mapped to
// a single named video output, audio is dropped, and progress key=value
// lines go to stdout for the driver to consume.
func Build(rc config.RenderConfig, manifestPath, filterChain, outputPath string) []string {
	args := make([]string, 0, 32)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")
	args = append(args, "-loglevel", "error")

	// Machine-readable progress on stdout; no human stats noise.
	args = append(args, "-progress", "pipe:1", "-nostats")

	// --- Concat input ---
	// -safe 0 permits absolute paths in the manifest.
	args = append(args, "-f", "concat", "-safe", "0", "-i", manifestPath)

	// --- Filter graph mapped to one named video stream, audio dropped ---
	args = append(args, "-filter_complex", "[0:v]"+filterChain+"[v]")
	args = append(args, "-map", "[v]", "-an")

	// --- Video codec ---
	args = append(args,
		"-c:v", "libx264",
		"-crf", strconv.Itoa(rc.CRF),
		"-preset", rc.SpeedPreset,
	)
	if rc.Tune != "" {
		args = append(args, "-tune", rc.Tune)
	}

	// Streaming-friendly layout: moov atom up front.
	args = append(args, "-movflags", "+faststart")

	// --- Output ---
	args = append(args, outputPath)

	return args
}

// CommandString renders args for dry-run display, quoting arguments that
// contain spaces so the printed command is copy-pasteable.
func CommandString(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += " "
		}
		if needsQuote(a) {
			out += fmt.Sprintf("%q", a)
		} else {
			out += a
		}
	}
	return out
}

func needsQuote(s string) bool {
	for _, r := range s {
		if r == ' ' || r == '\'' || r == '"' || r == '[' || r == ']' {
			return true
		}
	}
	return false
}
