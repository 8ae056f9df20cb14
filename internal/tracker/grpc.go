package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"occupancy-agent-go/internal/config"
	"occupancy-agent-go/internal/models"
	pb "occupancy-agent-go/proto"
)

// GRPCTracker talks to a remote detection+tracking model over gRPC. The
// connection is lazy: a failed model endpoint does not prevent startup, it
// is retried on the next frame.
type GRPCTracker struct {
	cfg       *config.Config
	client    pb.TrackerServiceClient
	conn      *grpc.ClientConn
	isHealthy bool
}

// NewGRPCTracker creates the tracker client and attempts an initial
// connection. Connection failure is not fatal.
func NewGRPCTracker(cfg *config.Config) (*GRPCTracker, error) {
	log.Info().Str("url", cfg.TrackerGRPCURL).Msg("Initializing tracker service client")

	t := &GRPCTracker{cfg: cfg}

	if err := t.connect(); err != nil {
		log.Warn().Err(err).Msg("Tracker service not available, will retry on first frame")
	}

	return t, nil
}

func (t *GRPCTracker) connect() error {
	if t.conn != nil {
		t.conn.Close()
	}

	conn, err := grpc.NewClient(t.cfg.TrackerGRPCURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to tracker service: %w", err)
	}

	client := pb.NewTrackerServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), t.cfg.TrackerTimeout)
	defer cancel()

	if _, err := client.HealthCheck(ctx, &pb.Empty{}); err != nil {
		conn.Close()
		return fmt.Errorf("tracker service health check failed: %w", err)
	}

	t.client = client
	t.conn = conn
	t.isHealthy = true

	log.Info().Str("url", t.cfg.TrackerGRPCURL).Msg("Connected to tracker service")
	return nil
}

func (t *GRPCTracker) ensureConnection() error {
	if t.isHealthy && t.conn != nil {
		return nil
	}
	return t.connect()
}

// DetectAndTrack sends one frame for inference and returns the tracked
// objects visible in it.
func (t *GRPCTracker) DetectAndTrack(ctx context.Context, frame *models.RawFrame) ([]models.TrackedObject, error) {
	if err := t.ensureConnection(); err != nil {
		return nil, fmt.Errorf("tracker service unavailable: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, t.cfg.TrackerTimeout)
	defer cancel()

	req := &pb.FrameRequest{
		Data:                frame.Data,
		Width:               int32(frame.Width),
		Height:              int32(frame.Height),
		Format:              frame.Format,
		FrameId:             frame.FrameID,
		ModelName:           t.cfg.ModelName,
		ConfidenceThreshold: float32(t.cfg.ConfidenceThreshold),
		Device:              t.cfg.Device,
	}

	resp, err := t.client.DetectAndTrack(ctx, req)
	if err != nil {
		t.isHealthy = false
		return nil, err
	}

	objects := make([]models.TrackedObject, 0, len(resp.Objects))
	for _, obj := range resp.Objects {
		objects = append(objects, models.TrackedObject{
			TrackID: obj.TrackId,
			Class:   classFromName(obj.ClassName),
			Score:   obj.Score,
		})
	}

	return objects, nil
}

// IsHealthy reports whether the last call to the model succeeded.
func (t *GRPCTracker) IsHealthy() bool {
	return t.isHealthy
}

// Close tears down the gRPC connection.
func (t *GRPCTracker) Close() error {
	if t.conn != nil {
		log.Info().Msg("Closing tracker service connection")
		return t.conn.Close()
	}
	return nil
}

func classFromName(name string) models.TrackClass {
	switch strings.ToLower(name) {
	case "person", "people", "pedestrian":
		return models.TrackClassPerson
	case "car", "truck", "bus", "motorcycle", "vehicle":
		return models.TrackClassVehicle
	default:
		return models.TrackClassUnknown
	}
}
