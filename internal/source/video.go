package source

import (
	"context"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"

	"occupancy-agent-go/internal/config"
	"occupancy-agent-go/internal/models"
)

// VideoSource wraps an OpenCV VideoCapture as a Source. It is single-pass:
// once exhausted it stays exhausted, even for seekable file origins.
type VideoSource struct {
	cfg       *config.Config
	cap       *gocv.VideoCapture
	img       gocv.Mat
	origin    string
	isLive    bool
	frameID   int64
	exhausted bool
	lastRead  time.Time

	consecutiveErrors int
}

// Open opens the configured video origin: a numeric camera device index, an
// RTSP/HTTP stream URI, or a file path. Returns ErrUnavailable if the origin
// cannot be opened.
func Open(cfg *config.Config) (*VideoSource, error) {
	origin := cfg.VideoSource

	var cap *gocv.VideoCapture
	var err error
	isLive := false

	switch {
	case isDeviceIndex(origin):
		device, _ := strconv.Atoi(origin)
		log.Info().Int("device", device).Msg("Opening camera device")
		cap, err = gocv.OpenVideoCapture(device)
		isLive = true
	case isStreamURI(origin):
		log.Info().Str("uri", origin).Msg("Opening network stream with FFmpeg backend")
		configureFFmpegOptions()
		cap, err = gocv.OpenVideoCaptureWithAPI(origin, gocv.VideoCaptureFFmpeg)
		isLive = true
	default:
		log.Info().Str("path", origin).Msg("Opening video file")
		cap, err = gocv.OpenVideoCapture(origin)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, origin, err)
	}

	if !cap.IsOpened() {
		cap.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, origin)
	}

	cap.Set(gocv.VideoCaptureBufferSize, 1)

	log.Info().
		Str("origin", origin).
		Float64("fps", cap.Get(gocv.VideoCaptureFPS)).
		Float64("width", cap.Get(gocv.VideoCaptureFrameWidth)).
		Float64("height", cap.Get(gocv.VideoCaptureFrameHeight)).
		Msg("Video source opened")

	return &VideoSource{
		cfg:    cfg,
		cap:    cap,
		img:    gocv.NewMat(),
		origin: origin,
		isLive: isLive,
	}, nil
}

// Next reads and decodes one frame, pacing reads to the configured MaxFPS.
// A failed read on a file origin ends the sequence; on a live origin it
// counts toward the consecutive-error budget before the source is declared
// exhausted.
func (v *VideoSource) Next(ctx context.Context) (*models.RawFrame, error) {
	if v.exhausted {
		return nil, ErrExhausted
	}

	if err := v.throttle(ctx); err != nil {
		return nil, err
	}

	ok := v.cap.Read(&v.img)
	v.lastRead = time.Now()

	if !ok {
		if !v.isLive {
			// End of file
			v.exhausted = true
			return nil, ErrExhausted
		}

		v.consecutiveErrors++
		if v.consecutiveErrors >= v.cfg.MaxConsecutiveDecodeErrors {
			log.Warn().
				Str("origin", v.origin).
				Int("consecutive_errors", v.consecutiveErrors).
				Msg("Too many consecutive read failures, declaring source exhausted")
			v.exhausted = true
			return nil, ErrExhausted
		}
		return nil, fmt.Errorf("%w: read failed (%d consecutive)", ErrFrameDecode, v.consecutiveErrors)
	}

	if v.img.Empty() {
		v.consecutiveErrors++
		if v.consecutiveErrors >= v.cfg.MaxConsecutiveDecodeErrors {
			v.exhausted = true
			return nil, ErrExhausted
		}
		return nil, fmt.Errorf("%w: empty frame", ErrFrameDecode)
	}

	v.consecutiveErrors = 0
	v.frameID++

	processed := gocv.NewMat()
	if v.img.Cols() != v.cfg.OutputWidth || v.img.Rows() != v.cfg.OutputHeight {
		gocv.Resize(v.img, &processed, image.Pt(v.cfg.OutputWidth, v.cfg.OutputHeight), 0, 0, gocv.InterpolationLinear)
	} else {
		processed = v.img.Clone()
	}

	data := processed.ToBytes()
	processed.Close()

	return &models.RawFrame{
		Data:      data,
		Timestamp: time.Now(),
		FrameID:   v.frameID,
		Width:     v.cfg.OutputWidth,
		Height:    v.cfg.OutputHeight,
		Format:    "BGR24",
	}, nil
}

// Close releases the underlying capture. Safe to call once after the loop.
func (v *VideoSource) Close() error {
	v.img.Close()
	if v.cap != nil {
		return v.cap.Close()
	}
	return nil
}

// throttle spaces reads to the target FPS, honoring cancellation.
func (v *VideoSource) throttle(ctx context.Context) error {
	if v.cfg.MaxFPS <= 0 || v.lastRead.IsZero() {
		return nil
	}

	interval := time.Second / time.Duration(v.cfg.MaxFPS)
	elapsed := time.Since(v.lastRead)
	if elapsed >= interval {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(interval - elapsed):
		return nil
	}
}

func isDeviceIndex(origin string) bool {
	_, err := strconv.Atoi(origin)
	return err == nil
}

func isStreamURI(origin string) bool {
	for _, scheme := range []string{"rtsp://", "rtmp://", "http://", "https://", "udp://"} {
		if strings.HasPrefix(origin, scheme) {
			return true
		}
	}
	return false
}

// configureFFmpegOptions sets FFmpeg capture options for the OpenCV backend,
// tuned for low-latency RTSP ingestion.
func configureFFmpegOptions() {
	options := []string{
		"rtsp_transport;tcp",
		"buffer_size;2097152",
		"max_delay;500000",
		"stimeout;5000000",
		"rw_timeout;5000000",
		"fflags;nobuffer+flush_packets",
		"flags;low_delay",
		"reconnect;1",
		"reconnect_streamed;1",
		"reconnect_delay_max;2",
		"allowed_media_types;video",
	}

	os.Setenv("OPENCV_FFMPEG_CAPTURE_OPTIONS", strings.Join(options, "|"))
}
