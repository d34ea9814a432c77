package ffmpeg

import (
	"fmt"
	"strings"
)

// stderrTailLines bounds how much encoder stderr is kept for error reporting.
const stderrTailLines = 20

// ExitError reports a non-zero encoder exit. The partial output file is left
// in place for inspection; callers must not treat it as a valid render.
type ExitError struct {
	ExitCode int
	Stderr   string // Tail of the encoder's stderr.
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("encoder exited with status %d", e.ExitCode)
	}
	return fmt.Sprintf("encoder exited with status %d: %s", e.ExitCode, firstLine(e.Stderr))
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// stderrTail trims captured stderr to the last stderrTailLines lines.
func stderrTail(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	if len(lines) > stderrTailLines {
		lines = lines[len(lines)-stderrTailLines:]
	}
	return strings.Join(lines, "\n")
}
