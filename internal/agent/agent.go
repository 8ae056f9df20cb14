package agent

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"occupancy-agent-go/internal/config"
	"occupancy-agent-go/internal/models"
	"occupancy-agent-go/internal/occupancy"
	"occupancy-agent-go/internal/reporter"
	"occupancy-agent-go/internal/source"
	"occupancy-agent-go/internal/tracker"
)

// WindowPublisher fans an emitted window aggregate out to secondary
// consumers (NATS). Optional.
type WindowPublisher interface {
	PublishWindow(report models.WindowReport) error
}

// Agent runs the occupancy pipeline: one synchronous loop that reads
// frames, counts distinct tracked people per frame, folds the counts into a
// wall-clock aggregation window, and reports each window's average to the
// backend. Nothing but the averaged count ever leaves the process.
type Agent struct {
	cfg      *config.Config
	source   source.Source
	tracker  tracker.Tracker
	reporter reporter.Reporter
	events   WindowPublisher

	// running is the only state mutated from outside the loop; the signal
	// handler flips it and the loop polls it between frames.
	running atomic.Bool
	state   atomic.Value // models.AgentState

	// Owned exclusively by the loop
	acc    occupancy.Accumulator
	window *occupancy.Window

	now func() time.Time

	framesProcessed atomic.Int64
	framesSkipped   atomic.Int64
	reportsSent     atomic.Int64
	reportsFailed   atomic.Int64
	windowsSkipped  atomic.Int64

	mu               sync.RWMutex
	lastReport       *models.WindowReport
	currentOccupancy int
	samplesInWindow  int
	startedAt        time.Time
	lastFrameAt      time.Time
}

// New wires the pipeline. The source must already be open; the agent owns
// releasing it when the loop ends.
func New(cfg *config.Config, src source.Source, trk tracker.Tracker, rep reporter.Reporter, events WindowPublisher) *Agent {
	a := &Agent{
		cfg:      cfg,
		source:   src,
		tracker:  trk,
		reporter: rep,
		events:   events,
		now:      time.Now,
	}
	a.state.Store(models.AgentStateStarting)
	return a
}

// Stop clears the run flag. Safe to call from a signal handler goroutine;
// it does nothing but flip the flag, which the loop observes between
// frames.
func (a *Agent) Stop() {
	a.running.Store(false)
}

// State returns the current lifecycle state.
func (a *Agent) State() models.AgentState {
	return a.state.Load().(models.AgentState)
}

// Run executes the pipeline loop until the run flag is cleared or the
// source is exhausted, then performs exactly one final flush and releases
// the source. Always returns nil; startup failures are the caller's to
// surface before Run is ever entered.
func (a *Agent) Run(ctx context.Context) error {
	a.running.Store(true)
	a.state.Store(models.AgentStateRunning)

	startedAt := a.now()
	a.mu.Lock()
	a.startedAt = startedAt
	a.mu.Unlock()

	a.window = occupancy.NewWindow(a.cfg.AggregationInterval, startedAt)

	log.Info().
		Str("video_source", a.cfg.VideoSource).
		Dur("aggregation_interval", a.cfg.AggregationInterval).
		Msg("Agent running")

	for a.running.Load() {
		a.step(ctx)
	}

	a.state.Store(models.AgentStateStopping)
	log.Info().Msg("Run flag cleared, performing final flush")

	// Exactly one final flush for whatever partial window remains
	a.flush(ctx, a.now())

	if err := a.source.Close(); err != nil {
		log.Warn().Err(err).Msg("Error releasing video source")
	}

	a.state.Store(models.AgentStateStopped)
	log.Info().
		Int64("frames_processed", a.framesProcessed.Load()).
		Int64("frames_skipped", a.framesSkipped.Load()).
		Int64("reports_sent", a.reportsSent.Load()).
		Int64("reports_failed", a.reportsFailed.Load()).
		Msg("Agent stopped")

	return nil
}

// step processes one loop iteration: at most one frame, then the window
// check. Samples are folded strictly in frame-arrival order; no two frames
// are ever in flight at once.
func (a *Agent) step(ctx context.Context) {
	frame, err := a.source.Next(ctx)

	switch {
	case err == nil:
		// Close out the window first when the frame arrives on or past the
		// boundary, so the sample lands in the window it belongs to.
		if a.window.Due(frame.Timestamp) {
			a.flush(ctx, frame.Timestamp)
		}
		a.sample(ctx, frame)

	case errors.Is(err, source.ErrExhausted):
		log.Info().Msg("Video source exhausted, shutting down")
		a.running.Store(false)

	case errors.Is(err, source.ErrFrameDecode):
		a.framesSkipped.Add(1)
		log.Warn().Err(err).Msg("Skipping unreadable frame")

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		a.running.Store(false)

	default:
		a.framesSkipped.Add(1)
		log.Warn().Err(err).Msg("Frame read error, continuing")
	}

	// Window accounting runs on every iteration, even when the frame was
	// skipped, so a stalled source cannot merge windows together.
	if now := a.now(); a.window.Due(now) {
		a.flush(ctx, now)
	}
}

// sample runs detection on one frame and folds its occupancy into the
// accumulator, exactly once, before the next frame is requested.
func (a *Agent) sample(ctx context.Context, frame *models.RawFrame) {
	objects, err := a.tracker.DetectAndTrack(ctx, frame)
	if err != nil {
		a.framesSkipped.Add(1)
		log.Warn().Err(err).Int64("frame_id", frame.FrameID).Msg("Detection failed, no sample folded for frame")
		return
	}

	occ := occupancy.CountPeople(objects)
	a.acc.Add(occ)
	a.framesProcessed.Add(1)

	a.mu.Lock()
	a.currentOccupancy = occ
	a.samplesInWindow = a.acc.Samples()
	a.lastFrameAt = frame.Timestamp
	a.mu.Unlock()

	log.Debug().
		Int64("frame_id", frame.FrameID).
		Int("occupancy", occ).
		Msg("Frame sampled")
}

// flush closes the current window. The accumulator and window boundary are
// reset unconditionally, whether the report succeeds or not: an unreachable
// backend must never cause two windows to collapse into one inflated
// report. A window with zero samples emits nothing.
func (a *Agent) flush(ctx context.Context, now time.Time) {
	start, end := a.window.Advance(now)
	average, samples, ok := a.acc.Drain()

	a.mu.Lock()
	a.samplesInWindow = 0
	a.mu.Unlock()

	if !ok {
		a.windowsSkipped.Add(1)
		log.Info().
			Time("window_start", start).
			Time("window_end", end).
			Msg("Window produced no samples, skipping report")
		return
	}

	report := models.WindowReport{
		AverageOccupancy: average,
		SampleCount:      samples,
		WindowStart:      start,
		WindowEnd:        end,
	}

	if err := a.reporter.Report(ctx, report); err != nil {
		a.reportsFailed.Add(1)
		log.Error().
			Err(err).
			Int("average_occupancy", average).
			Time("window_start", start).
			Time("window_end", end).
			Msg("Report failed, window aggregate dropped")
	} else {
		a.reportsSent.Add(1)
		log.Info().
			Int("average_occupancy", average).
			Int("sample_count", samples).
			Time("window_start", start).
			Time("window_end", end).
			Msg("Window reported")
	}

	if a.events != nil {
		if err := a.events.PublishWindow(report); err != nil {
			log.Warn().Err(err).Msg("Failed to publish window event")
		}
	}

	a.mu.Lock()
	a.lastReport = &report
	a.mu.Unlock()
}

// Status returns a point-in-time snapshot for the status API.
func (a *Agent) Status() models.AgentStatus {
	a.mu.RLock()
	defer a.mu.RUnlock()

	status := models.AgentStatus{
		State:            a.State(),
		VideoSource:      a.cfg.VideoSource,
		FramesProcessed:  a.framesProcessed.Load(),
		FramesSkipped:    a.framesSkipped.Load(),
		SamplesInWindow:  a.samplesInWindow,
		ReportsSent:      a.reportsSent.Load(),
		ReportsFailed:    a.reportsFailed.Load(),
		WindowsSkipped:   a.windowsSkipped.Load(),
		StartedAt:        a.startedAt,
		LastFrameAt:      a.lastFrameAt,
		CurrentOccupancy: a.currentOccupancy,
	}
	if !a.startedAt.IsZero() {
		status.Uptime = time.Since(a.startedAt)
	}
	if a.lastReport != nil {
		reportCopy := *a.lastReport
		status.LastReport = &reportCopy
	}
	return status
}
