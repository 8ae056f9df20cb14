package reporter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"occupancy-agent-go/internal/config"
	"occupancy-agent-go/internal/models"
)

func testConfig(backendURL string) *config.Config {
	return &config.Config{
		BackendURL:    backendURL,
		IngestPath:    "/api/v1/occupancy",
		ReportTimeout: 500 * time.Millisecond,
	}
}

func TestHTTPReporter_Report(t *testing.T) {
	t.Parallel()

	t.Run("posts only the average occupancy", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &gotBody))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		r := NewHTTPReporter(testConfig(srv.URL))
		err := r.Report(context.Background(), models.WindowReport{
			AverageOccupancy: 4,
			SampleCount:      30,
			WindowStart:      time.Now().Add(-time.Minute),
			WindowEnd:        time.Now(),
		})

		require.NoError(t, err)
		assert.Equal(t, "/api/v1/occupancy", gotPath)
		assert.Equal(t, map[string]any{"average_occupancy": float64(4)}, gotBody)
	})

	t.Run("any 2xx status is success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		r := NewHTTPReporter(testConfig(srv.URL))
		assert.NoError(t, r.Report(context.Background(), models.WindowReport{AverageOccupancy: 1}))
	})

	t.Run("non-2xx status is a failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		r := NewHTTPReporter(testConfig(srv.URL))
		err := r.Report(context.Background(), models.WindowReport{AverageOccupancy: 2})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("unreachable backend fails within the timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(2 * time.Second)
		}))
		defer srv.Close()

		r := NewHTTPReporter(testConfig(srv.URL))

		start := time.Now()
		err := r.Report(context.Background(), models.WindowReport{AverageOccupancy: 3})
		elapsed := time.Since(start)

		require.Error(t, err)
		assert.Less(t, elapsed, 1500*time.Millisecond, "report must not block past the timeout")
	})

	t.Run("connection refused is a failure not a crash", func(t *testing.T) {
		t.Parallel()

		r := NewHTTPReporter(testConfig("http://127.0.0.1:1"))
		assert.Error(t, r.Report(context.Background(), models.WindowReport{AverageOccupancy: 1}))
	})
}
