package ffmpeg

import (
	"math"
	"testing"
)

// --- ParseOutTime tests ---

func TestParseOutTime(t *testing.T) {
	cases := []struct {
		line   string
		micros int64
		ok     bool
	}{
		{"out_time_ms=5000000", 5000000, true},
		{"out_time_ms=0", 0, true},
		{"  out_time_ms=123456  ", 123456, true},
		{"frame=120", 0, false},
		{"fps=29.97", 0, false},
		{"out_time=00:00:05.000000", 0, false},
		{"progress=continue", 0, false},
		{"out_time_ms=garbage", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		micros, ok := ParseOutTime(c.line)
		if ok != c.ok || micros != c.micros {
			t.Errorf("ParseOutTime(%q) = (%d, %v), want (%d, %v)",
				c.line, micros, ok, c.micros, c.ok)
		}
	}
}

// --- Progress tests ---

func TestProgress_FiveSecondsOfHundred(t *testing.T) {
	p := Progress{ExpectedSec: 100}
	p.Update(5000000)
	if math.Abs(p.Percent-5) > 1e-9 {
		t.Errorf("percent = %v, want 5", p.Percent)
	}
	if p.ElapsedSec != 5 {
		t.Errorf("elapsed = %v, want 5", p.ElapsedSec)
	}
}

func TestProgress_ClampsAtHundred(t *testing.T) {
	p := Progress{ExpectedSec: 100}
	p.Update(250000000) // 250s elapsed against 100s expected.
	if p.Percent != 100 {
		t.Errorf("percent = %v, want 100 (clamped)", p.Percent)
	}

	p.Update(100000000) // Exactly at the expected total.
	if p.Percent != 100 {
		t.Errorf("percent = %v, want 100", p.Percent)
	}
}

func TestProgress_ZeroExpectedStaysAtZero(t *testing.T) {
	p := Progress{}
	p.Update(5000000)
	if p.Percent != 0 {
		t.Errorf("percent = %v, want 0 without a denominator", p.Percent)
	}
}

func TestProgress_OverwrittenPerLine(t *testing.T) {
	p := Progress{ExpectedSec: 150}
	p.Update(15000000)
	p.Update(75000000)
	if math.Abs(p.Percent-50) > 1e-9 {
		t.Errorf("percent = %v, want 50 from the latest line", p.Percent)
	}
}
