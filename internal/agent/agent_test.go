package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"occupancy-agent-go/internal/config"
	"occupancy-agent-go/internal/models"
	"occupancy-agent-go/internal/source"
)

// fakeClock lets the scripted source drive wall-clock time so window
// boundaries land exactly where a test wants them.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// sourceEvent is one scripted Next result: a frame, a decode error, or a
// clock jump with no frame at all.
type sourceEvent struct {
	frame   bool
	err     error
	advance time.Duration
	onEmit  func()
}

// scriptedSource replays a fixed sequence of events, then reports
// exhaustion forever. Single-pass, like the real thing.
type scriptedSource struct {
	clock   *fakeClock
	events  []sourceEvent
	idx     int
	frameID int64
	closed  int
}

func (s *scriptedSource) Next(ctx context.Context) (*models.RawFrame, error) {
	if s.idx >= len(s.events) {
		return nil, source.ErrExhausted
	}
	ev := s.events[s.idx]
	s.idx++

	s.clock.Advance(ev.advance)
	if ev.onEmit != nil {
		ev.onEmit()
	}
	if ev.err != nil {
		return nil, ev.err
	}
	if !ev.frame {
		return nil, source.ErrFrameDecode
	}

	s.frameID++
	return &models.RawFrame{
		FrameID:   s.frameID,
		Timestamp: s.clock.Now(),
		Width:     640,
		Height:    360,
		Format:    "BGR24",
	}, nil
}

func (s *scriptedSource) Close() error {
	s.closed++
	return nil
}

// countTracker returns, for frame N, a set of distinct person tracks of the
// scripted size. Deterministic, as the round-trip property requires.
type countTracker struct {
	counts []int
}

func (t *countTracker) DetectAndTrack(ctx context.Context, frame *models.RawFrame) ([]models.TrackedObject, error) {
	idx := int(frame.FrameID) - 1
	if idx < 0 || idx >= len(t.counts) {
		return nil, nil
	}
	objects := make([]models.TrackedObject, 0, t.counts[idx])
	for i := 0; i < t.counts[idx]; i++ {
		objects = append(objects, models.TrackedObject{
			TrackID: int32(i + 1),
			Class:   models.TrackClassPerson,
			Score:   0.9,
		})
	}
	return objects, nil
}

func (t *countTracker) Close() error { return nil }

// recordingReporter captures every report; optionally fails each attempt.
type recordingReporter struct {
	reports []models.WindowReport
	fail    bool
}

func (r *recordingReporter) Report(ctx context.Context, report models.WindowReport) error {
	r.reports = append(r.reports, report)
	if r.fail {
		return errors.New("backend unreachable")
	}
	return nil
}

func testAgentConfig() *config.Config {
	return &config.Config{
		VideoSource:         "test.mp4",
		AggregationInterval: time.Minute,
	}
}

// frames builds n frame events spaced step apart.
func frames(n int, step time.Duration) []sourceEvent {
	evs := make([]sourceEvent, n)
	for i := range evs {
		evs[i] = sourceEvent{frame: true, advance: step}
	}
	return evs
}

func newTestAgent(t *testing.T, events []sourceEvent, counts []int, rep *recordingReporter) (*Agent, *scriptedSource, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)}
	src := &scriptedSource{clock: clock, events: events}
	a := New(testAgentConfig(), src, &countTracker{counts: counts}, rep, nil)
	a.now = clock.Now
	return a, src, clock
}

func TestAgent_SingleWindowAverage(t *testing.T) {
	// Counts 2, 4, 3 inside one window must report round(9/3) = 3
	rep := &recordingReporter{}
	a, src, _ := newTestAgent(t, frames(3, time.Second), []int{2, 4, 3}, rep)

	require.NoError(t, a.Run(context.Background()))

	require.Len(t, rep.reports, 1)
	assert.Equal(t, 3, rep.reports[0].AverageOccupancy)
	assert.Equal(t, 3, rep.reports[0].SampleCount)
	assert.Equal(t, 1, src.closed, "source must be released exactly once")
	assert.Equal(t, models.AgentStateStopped, a.State())
}

func TestAgent_WindowBoundaryIsExact(t *testing.T) {
	// Two samples land before the boundary, two after. Neither window may
	// see the other's samples.
	events := []sourceEvent{
		{frame: true, advance: time.Second},
		{frame: true, advance: time.Second},
		// This frame arrives after the window has elapsed
		{frame: true, advance: 59 * time.Second},
		{frame: true, advance: time.Second},
	}
	rep := &recordingReporter{}
	a, _, _ := newTestAgent(t, events, []int{1, 1, 5, 5}, rep)

	require.NoError(t, a.Run(context.Background()))

	require.Len(t, rep.reports, 2)
	assert.Equal(t, 1, rep.reports[0].AverageOccupancy)
	assert.Equal(t, 2, rep.reports[0].SampleCount)
	assert.Equal(t, 5, rep.reports[1].AverageOccupancy)
	assert.Equal(t, 2, rep.reports[1].SampleCount)
	assert.Equal(t, rep.reports[0].WindowEnd, rep.reports[1].WindowStart, "windows must not gap or overlap")
}

func TestAgent_EmptyWindowEmitsNothing(t *testing.T) {
	// A whole window of decode failures: no report, no division by zero.
	events := []sourceEvent{
		{advance: 30 * time.Second}, // decode error
		{advance: 31 * time.Second}, // decode error, window elapses
	}
	rep := &recordingReporter{}
	a, _, _ := newTestAgent(t, events, nil, rep)

	require.NoError(t, a.Run(context.Background()))

	assert.Empty(t, rep.reports)
	assert.EqualValues(t, 2, a.framesSkipped.Load())
	assert.GreaterOrEqual(t, a.windowsSkipped.Load(), int64(1))
}

func TestAgent_ShutdownFlushesPartialWindow(t *testing.T) {
	// Stop arrives mid-window after two samples; exactly one final report
	// must carry them out.
	rep := &recordingReporter{}
	var a *Agent
	events := []sourceEvent{
		{frame: true, advance: time.Second},
		{frame: true, advance: time.Second, onEmit: func() { a.Stop() }},
	}
	a, _, _ = newTestAgent(t, events, []int{4, 2}, rep)

	require.NoError(t, a.Run(context.Background()))

	require.Len(t, rep.reports, 1)
	assert.Equal(t, 3, rep.reports[0].AverageOccupancy)
	assert.Equal(t, 2, rep.reports[0].SampleCount)
	assert.Equal(t, models.AgentStateStopped, a.State())
}

func TestAgent_ReporterFailureDoesNotStallLoop(t *testing.T) {
	// Both windows are attempted and reset even though every report fails;
	// the second window is not inflated by the first window's samples.
	events := []sourceEvent{
		{frame: true, advance: time.Second},
		{frame: true, advance: time.Second},
		{advance: 60 * time.Second}, // decode error while the window elapses
		{frame: true, advance: time.Second},
		{frame: true, advance: time.Second},
	}
	rep := &recordingReporter{fail: true}
	a, _, _ := newTestAgent(t, events, []int{2, 2, 6, 6}, rep)

	require.NoError(t, a.Run(context.Background()))

	// One in-loop flush plus the final flush
	require.Len(t, rep.reports, 2)
	assert.Equal(t, 2, rep.reports[0].AverageOccupancy)
	assert.Equal(t, 6, rep.reports[1].AverageOccupancy)
	assert.EqualValues(t, 2, a.reportsFailed.Load())
	assert.EqualValues(t, 0, a.reportsSent.Load())
	assert.EqualValues(t, 4, a.framesProcessed.Load())
}

func TestAgent_SameInputSameAverages(t *testing.T) {
	// Re-running the identical frame sequence yields identical window
	// averages.
	events := func() []sourceEvent {
		return []sourceEvent{
			{frame: true, advance: time.Second},
			{frame: true, advance: time.Second},
			{frame: true, advance: 59 * time.Second},
			{frame: true, advance: time.Second},
			{frame: true, advance: 60 * time.Second},
		}
	}
	counts := []int{1, 3, 2, 2, 8}

	run := func() []int {
		rep := &recordingReporter{}
		a, _, _ := newTestAgent(t, events(), counts, rep)
		require.NoError(t, a.Run(context.Background()))
		averages := make([]int, 0, len(rep.reports))
		for _, r := range rep.reports {
			averages = append(averages, r.AverageOccupancy)
		}
		return averages
	}

	first := run()
	second := run()
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestAgent_StatusSnapshot(t *testing.T) {
	rep := &recordingReporter{}
	a, _, _ := newTestAgent(t, frames(3, time.Second), []int{2, 4, 3}, rep)

	require.NoError(t, a.Run(context.Background()))

	status := a.Status()
	assert.Equal(t, models.AgentStateStopped, status.State)
	assert.EqualValues(t, 3, status.FramesProcessed)
	assert.EqualValues(t, 1, status.ReportsSent)
	require.NotNil(t, status.LastReport)
	assert.Equal(t, 3, status.LastReport.AverageOccupancy)
	assert.Equal(t, 0, status.SamplesInWindow, "final flush must clear the window")
}
