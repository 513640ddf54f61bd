package profiler

import (
	"strings"
	"testing"
	"time"
)

func TestRecorderAggregates(t *testing.T) {
	var r Recorder
	r.Record(10 * time.Millisecond)
	r.Record(30 * time.Millisecond)

	if r.Frames() != 2 {
		t.Fatalf("Frames() = %d, want 2", r.Frames())
	}
	if r.Avg() != 20*time.Millisecond {
		t.Fatalf("Avg() = %s, want 20ms", r.Avg())
	}
	if r.Max() != 30*time.Millisecond {
		t.Fatalf("Max() = %s, want 30ms", r.Max())
	}
	if s := r.Summary(); !strings.Contains(s, "2 frames") {
		t.Fatalf("Summary() = %q", s)
	}
}

func TestEmptyRecorder(t *testing.T) {
	var r Recorder
	if r.Avg() != 0 {
		t.Fatalf("Avg() = %s, want 0", r.Avg())
	}
	if r.Summary() != "no frames rendered" {
		t.Fatalf("Summary() = %q", r.Summary())
	}
}
