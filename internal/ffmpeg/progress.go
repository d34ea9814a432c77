package ffmpeg

import (
	"strconv"
	"strings"
)

// Progress is the transient per-render progress state, overwritten on every
// matching line from the encoder. It is owned by the single consumer loop;
// no synchronization is needed.
type Progress struct {
	ElapsedSec  float64
	ExpectedSec float64
	Percent     float64 // Clamped to 0..100.
}

// Update applies an elapsed output time in microseconds and recomputes the
// clamped percentage against the expected total.
func (p *Progress) Update(elapsedMicros int64) {
	p.ElapsedSec = float64(elapsedMicros) / 1e6
	if p.ExpectedSec <= 0 {
		p.Percent = 0
		return
	}
	pct := p.ElapsedSec / p.ExpectedSec * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	p.Percent = pct
}

// ParseOutTime extracts the elapsed output time from one progress line.
// Despite the key name, ffmpeg reports out_time_ms in microseconds. Lines
// with other keys, or unparseable values, return ok=false and are ignored.
func ParseOutTime(line string) (micros int64, ok bool) {
	key, value, found := strings.Cut(strings.TrimSpace(line), "=")
	if !found || key != "out_time_ms" {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
