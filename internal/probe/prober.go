// Package probe wraps ffprobe duration queries and the batch duration
// estimator that turns per-clip durations into the progress denominator.
package probe

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	ffmpeg_go "github.com/u2takey/ffmpeg-go"
)

// Result is the parsed outcome of one ffprobe call. Only container-level
// fields matter here; the renderer never inspects individual streams.
type Result struct {
	Filename   string
	FormatName string
	Duration   float64 // Seconds; 0 when the container reports none.
	Size       int64
}

// Duration probes path via ffprobe (through ffmpeg-go, which runs
// `ffprobe -show_format -show_streams -of json`) and returns the parsed
// container metadata.
func Duration(path string) (*Result, error) {
	out, err := ffmpeg_go.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	return ParseJSON([]byte(out))
}

// ParseJSON converts raw ffprobe JSON output into a Result.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return &Result{
		Filename:   raw.Format.Filename,
		FormatName: raw.Format.FormatName,
		Duration:   parseFloat(raw.Format.Duration),
		Size:       parseInt64(raw.Format.Size),
	}, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format ffprobeFormat `json:"format"`
}

type ffprobeFormat struct {
	Filename   string `json:"filename"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}
