package occupancy

import (
	"math"
	"time"

	"occupancy-agent-go/internal/models"
)

// CountPeople returns the occupancy of one frame: the number of distinct
// person track IDs among the frame's detections. Duplicate IDs within the
// same frame collapse to one.
func CountPeople(objects []models.TrackedObject) int {
	seen := make(map[int32]struct{}, len(objects))
	for _, obj := range objects {
		if obj.Class != models.TrackClassPerson {
			continue
		}
		seen[obj.TrackID] = struct{}{}
	}
	return len(seen)
}

// Accumulator folds per-frame occupancy samples into a running (sum, count).
// It is owned exclusively by the agent loop and is not safe for concurrent
// use.
type Accumulator struct {
	sum   int64
	count int
}

// Add folds one frame's occupancy into the accumulator.
func (a *Accumulator) Add(occupancy int) {
	a.sum += int64(occupancy)
	a.count++
}

// Samples returns the number of samples folded in since the last drain.
func (a *Accumulator) Samples() int {
	return a.count
}

// Drain returns the rounded average of the accumulated samples and resets
// the accumulator. ok is false when no samples were folded in, in which
// case no average exists and nothing should be emitted.
func (a *Accumulator) Drain() (average int, samples int, ok bool) {
	samples = a.count
	if samples > 0 {
		average = int(math.Round(float64(a.sum) / float64(samples)))
		ok = true
	}
	a.sum = 0
	a.count = 0
	return average, samples, ok
}

// Window tracks wall-clock aggregation boundaries. A window is due when the
// configured interval has elapsed since the last flush; flushing advances
// the boundary unconditionally, whether or not the report succeeded.
type Window struct {
	interval  time.Duration
	lastFlush time.Time
}

// NewWindow starts the first window at now.
func NewWindow(interval time.Duration, now time.Time) *Window {
	return &Window{interval: interval, lastFlush: now}
}

// Due reports whether the current window has elapsed.
func (w *Window) Due(now time.Time) bool {
	return now.Sub(w.lastFlush) >= w.interval
}

// Advance closes the current window at now and returns its boundaries.
func (w *Window) Advance(now time.Time) (start, end time.Time) {
	start = w.lastFlush
	w.lastFlush = now
	return start, now
}

// Start returns the opening boundary of the current window.
func (w *Window) Start() time.Time {
	return w.lastFlush
}
