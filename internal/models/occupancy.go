package models

import (
	"time"
)

// TrackClass is the object class reported by the tracker for a detection
type TrackClass string

const (
	TrackClassPerson  TrackClass = "person"
	TrackClassVehicle TrackClass = "vehicle"
	TrackClassUnknown TrackClass = "unknown"
)

// TrackedObject is one detection from the tracker for a single frame.
// TrackID is stable across consecutive frames for the same object; the agent
// reads only TrackID and Class and discards the rest after sampling.
type TrackedObject struct {
	TrackID int32      `json:"track_id"`
	Class   TrackClass `json:"class"`
	Score   float32    `json:"score"`
}

// RawFrame represents a decoded frame from the video source
type RawFrame struct {
	Data      []byte    `json:"-"`
	Timestamp time.Time `json:"timestamp"`
	FrameID   int64     `json:"frame_id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Format    string    `json:"format"`
}

// WindowReport is the aggregate emitted for one aggregation window.
// AverageOccupancy is the only value ever sent to the backend.
type WindowReport struct {
	AverageOccupancy int       `json:"average_occupancy"`
	SampleCount      int       `json:"sample_count"`
	WindowStart      time.Time `json:"window_start"`
	WindowEnd        time.Time `json:"window_end"`
}

// AgentState represents the lifecycle state of the agent
type AgentState string

const (
	AgentStateStarting AgentState = "starting"
	AgentStateRunning  AgentState = "running"
	AgentStateStopping AgentState = "stopping"
	AgentStateStopped  AgentState = "stopped"
)

// AgentStatus is a point-in-time snapshot served by the status API
type AgentStatus struct {
	State            AgentState    `json:"state"`
	VideoSource      string        `json:"video_source"`
	FramesProcessed  int64         `json:"frames_processed"`
	FramesSkipped    int64         `json:"frames_skipped"`
	SamplesInWindow  int           `json:"samples_in_window"`
	ReportsSent      int64         `json:"reports_sent"`
	ReportsFailed    int64         `json:"reports_failed"`
	WindowsSkipped   int64         `json:"windows_skipped"`
	LastReport       *WindowReport `json:"last_report,omitempty"`
	Uptime           time.Duration `json:"uptime"`
	StartedAt        time.Time     `json:"started_at"`
	LastFrameAt      time.Time     `json:"last_frame_at"`
	CurrentOccupancy int           `json:"current_occupancy"`
}
