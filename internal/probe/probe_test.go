package probe

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// --- ParseJSON tests ---

func TestParseJSON_Duration(t *testing.T) {
	data := []byte(`{
		"format": {
			"filename": "clip1.mp4",
			"format_name": "mov,mp4,m4a,3gp,3g2,mj2",
			"duration": "4.005333",
			"size": "1048576"
		}
	}`)

	res, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if res.Duration != 4.005333 {
		t.Errorf("duration = %v, want 4.005333", res.Duration)
	}
	if res.Size != 1048576 {
		t.Errorf("size = %v, want 1048576", res.Size)
	}
	if res.FormatName != "mov,mp4,m4a,3gp,3g2,mj2" {
		t.Errorf("format = %q", res.FormatName)
	}
}

func TestParseJSON_MissingDurationIsZero(t *testing.T) {
	res, err := ParseJSON([]byte(`{"format": {"filename": "x.mp4"}}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if res.Duration != 0 {
		t.Errorf("duration = %v, want 0", res.Duration)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	if _, err := ParseJSON([]byte("not json at all")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

// --- Estimate tests ---

type nopLogger struct {
	warns int
}

func (l *nopLogger) Warn(string, ...interface{})        { l.warns++ }
func (l *nopLogger) Debug(bool, string, ...interface{}) {}

// stubProber swaps proberFn for the test and restores it afterwards.
func stubProber(t *testing.T, fn func(string) (*Result, error)) {
	t.Helper()
	old := proberFn
	proberFn = fn
	t.Cleanup(func() { proberFn = old })
}

func TestEstimate_SumsDurations(t *testing.T) {
	stubProber(t, func(path string) (*Result, error) {
		switch path {
		case "clip10.mp4":
			return &Result{Duration: 5}, nil
		case "clip3.mp4":
			return &Result{Duration: 4}, nil
		case "clip1.mp4":
			return &Result{Duration: 6}, nil
		}
		return nil, fmt.Errorf("unexpected path %s", path)
	})

	total, err := Estimate(context.Background(),
		[]string{"clip10.mp4", "clip3.mp4", "clip1.mp4"}, false, &nopLogger{})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if total.Seconds != 15 {
		t.Errorf("total = %v, want 15", total.Seconds)
	}
	if total.Skipped != 0 {
		t.Errorf("skipped = %d, want 0", total.Skipped)
	}
}

func TestEstimate_FailedProbeContributesZero(t *testing.T) {
	stubProber(t, func(path string) (*Result, error) {
		if path == "broken.mp4" {
			return nil, errors.New("probe exploded")
		}
		return &Result{Duration: 7}, nil
	})

	log := &nopLogger{}
	total, err := Estimate(context.Background(),
		[]string{"ok1.mp4", "broken.mp4", "ok2.mp4"}, false, log)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if total.Seconds != 14 {
		t.Errorf("total = %v, want 14 (failed clip contributes 0)", total.Seconds)
	}
	if total.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", total.Skipped)
	}
	if log.warns != 1 {
		t.Errorf("warnings = %d, want 1", log.warns)
	}
}

func TestEstimate_UnparseableDurationSkipped(t *testing.T) {
	stubProber(t, func(path string) (*Result, error) {
		if path == "empty.mp4" {
			// Probe ran but the container reported no duration.
			return &Result{Duration: 0}, nil
		}
		return &Result{Duration: 3}, nil
	})

	total, err := Estimate(context.Background(),
		[]string{"empty.mp4", "ok.mp4"}, false, &nopLogger{})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if total.Seconds != 3 || total.Skipped != 1 {
		t.Errorf("total = %v skipped = %d, want 3 and 1", total.Seconds, total.Skipped)
	}
}

func TestEstimate_AllFailedIsFatal(t *testing.T) {
	stubProber(t, func(string) (*Result, error) {
		return nil, errors.New("no probe for you")
	})

	total, err := Estimate(context.Background(),
		[]string{"a.mp4", "b.mp4"}, false, &nopLogger{})
	if !errors.Is(err, ErrInvalidTotalDuration) {
		t.Errorf("err = %v, want ErrInvalidTotalDuration", err)
	}
	if total.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", total.Skipped)
	}
}

func TestEstimate_CancelledContext(t *testing.T) {
	stubProber(t, func(string) (*Result, error) {
		t.Fatal("prober must not run after cancellation")
		return nil, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Estimate(ctx, []string{"a.mp4"}, false, &nopLogger{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
