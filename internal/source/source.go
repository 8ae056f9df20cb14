package source

import (
	"context"
	"errors"

	"occupancy-agent-go/internal/models"
)

// Source is a lazy, single-pass, non-restartable sequence of frames.
//
// Next returns the next decoded frame. A single unreadable frame yields
// ErrFrameDecode and the sequence continues; ErrExhausted means the sequence
// has ended for good and no further frames will ever be produced.
type Source interface {
	Next(ctx context.Context) (*models.RawFrame, error)
	Close() error
}

var (
	// ErrUnavailable means the origin could not be opened at startup
	ErrUnavailable = errors.New("video source unavailable")

	// ErrFrameDecode means one frame could not be read or decoded
	ErrFrameDecode = errors.New("frame decode failed")

	// ErrExhausted means the source produced its last frame
	ErrExhausted = errors.New("video source exhausted")
)
