package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"occupancy-agent-go/internal/config"
	"occupancy-agent-go/internal/models"
)

// Reporter delivers one window aggregate to the metrics backend.
type Reporter interface {
	Report(ctx context.Context, report models.WindowReport) error
}

// ingestBody is the only payload ever sent externally: the window's average
// occupancy, nothing else.
type ingestBody struct {
	AverageOccupancy int `json:"average_occupancy"`
}

// HTTPReporter posts window aggregates to the backend ingestion endpoint.
// Delivery is best-effort: one POST, bounded by a short timeout, no retry
// and no queueing. A failed window is dropped because the next window's
// fresher value supersedes it.
type HTTPReporter struct {
	client   *http.Client
	endpoint string
}

// NewHTTPReporter builds a reporter for the configured backend.
func NewHTTPReporter(cfg *config.Config) *HTTPReporter {
	endpoint := strings.TrimRight(cfg.BackendURL, "/") + cfg.IngestPath

	log.Info().
		Str("endpoint", endpoint).
		Dur("timeout", cfg.ReportTimeout).
		Msg("Reporter configured")

	return &HTTPReporter{
		client:   &http.Client{Timeout: cfg.ReportTimeout},
		endpoint: endpoint,
	}
}

// Report sends one aggregate. Any failure (connection error, timeout,
// non-2xx status) is returned to the caller for logging and the value is
// permanently dropped.
func (r *HTTPReporter) Report(ctx context.Context, report models.WindowReport) error {
	payload, err := json.Marshal(ingestBody{AverageOccupancy: report.AverageOccupancy})
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("report POST failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend rejected report: status %d", resp.StatusCode)
	}

	log.Debug().
		Int("average_occupancy", report.AverageOccupancy).
		Dur("latency", time.Since(start)).
		Msg("Report delivered")

	return nil
}
