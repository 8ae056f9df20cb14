package tracker

import (
	"context"

	"occupancy-agent-go/internal/models"
)

// Tracker is the detection+tracking capability the agent consumes. An
// implementation returns the objects currently visible in the frame, each
// with a track ID stable across consecutive frames. The agent never looks
// inside the model; any implementation of this interface is acceptable.
type Tracker interface {
	DetectAndTrack(ctx context.Context, frame *models.RawFrame) ([]models.TrackedObject, error)
	Close() error
}
