package profiler

import (
	"fmt"
	"time"
)

// Recorder aggregates per-frame durations for a cheap end-of-run summary.
// Single-threaded, like everything else on the render thread.
type Recorder struct {
	frames int
	total  time.Duration
	max    time.Duration
}

func (r *Recorder) Record(d time.Duration) {
	r.frames++
	r.total += d
	if d > r.max {
		r.max = d
	}
}

func (r *Recorder) Frames() int { return r.frames }

// Avg is the mean frame duration, zero before any frame is recorded.
func (r *Recorder) Avg() time.Duration {
	if r.frames == 0 {
		return 0
	}
	return r.total / time.Duration(r.frames)
}

func (r *Recorder) Max() time.Duration { return r.max }

// Summary renders a one-line report for the exit log.
func (r *Recorder) Summary() string {
	if r.frames == 0 {
		return "no frames rendered"
	}
	return fmt.Sprintf("%d frames, avg %s, max %s",
		r.frames, r.Avg().Round(10*time.Microsecond), r.max.Round(10*time.Microsecond))
}
