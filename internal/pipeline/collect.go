// Package pipeline orchestrates the render: collect clips, write the concat
// manifest, estimate duration, compose the filter graph, and drive the
// encoder with live progress.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Supported media file extensions (lowercase, with leading dot).
var mediaExtensions = map[string]bool{
	".mkv":  true,
	".mp4":  true,
	".avi":  true,
	".m4v":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".ts":   true,
	".m2ts": true,
	".mpg":  true,
	".mpeg": true,
	".vob":  true,
	".ogv":  true,
}

// ErrNoInputFiles is returned when the scan finds nothing to render.
var ErrNoInputFiles = errors.New("no input media files found")

// Clip is one source file in the concatenation, immutable once collected.
type Clip struct {
	Path string
	Key  int64 // Numeric ordering key extracted from the basename.
}

// Collect scans dir (non-recursively) for media files, excluding excludeName
// (the render output, so re-runs don't feed the previous result back in), and
// returns them ordered by descending numeric key. Ties are broken by
// descending basename so the order never depends on directory enumeration
// order.
func Collect(dir, excludeName string) ([]Clip, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var clips []Clip
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name == excludeName {
			continue
		}
		if !mediaExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		clips = append(clips, Clip{
			Path: filepath.Join(dir, name),
			Key:  NumericKey(name),
		})
	}

	if len(clips) == 0 {
		return nil, ErrNoInputFiles
	}

	sort.Slice(clips, func(i, j int) bool {
		if clips[i].Key != clips[j].Key {
			return clips[i].Key > clips[j].Key
		}
		return filepath.Base(clips[i].Path) > filepath.Base(clips[j].Path)
	})
	return clips, nil
}

// NumericKey extracts the ordering key from a filename: the integer formed
// by the digit characters of the basename with its extension removed.
// A name without digits yields 0 and sorts last in descending order.
func NumericKey(name string) int64 {
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	var digits strings.Builder
	for _, r := range stem {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	// Cap absurdly long digit runs so ParseInt cannot overflow.
	s := digits.String()
	if len(s) > 18 {
		s = s[:18]
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Paths returns the clip paths in collection order.
func Paths(clips []Clip) []string {
	out := make([]string, len(clips))
	for i, c := range clips {
		out[i] = c.Path
	}
	return out
}
