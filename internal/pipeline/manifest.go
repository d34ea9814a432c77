package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteManifest (over)writes the concat demuxer manifest: one
// `file '<absolute-path>'` line per clip, exact collection order. Re-running
// with the same clips produces a byte-identical file. A path containing a
// single quote would break the demuxer's parser; the format does not escape
// them, so such paths are rejected here instead of producing a manifest the
// encoder misreads.
func WriteManifest(clips []Clip, path string) error {
	var b strings.Builder
	for _, c := range clips {
		abs, err := filepath.Abs(c.Path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", c.Path, err)
		}
		if strings.ContainsRune(abs, '\'') {
			return fmt.Errorf("path %s contains a single quote, unsupported by the concat manifest format", abs)
		}
		fmt.Fprintf(&b, "file '%s'\n", abs)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
