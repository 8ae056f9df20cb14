package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/logdyhq/logdy-core/logdy"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"occupancy-agent-go/internal/config"
)

// Setup configures the global zerolog logger: console output on stderr,
// level from config, and an optional tee into an embedded Logdy web UI.
func Setup(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	console := zerolog.ConsoleWriter{Out: os.Stderr}

	var writer io.Writer = console
	if cfg.LogdyEnabled {
		ldWriter, url := startLogdy(cfg)
		writer = zerolog.MultiLevelWriter(console, ldWriter)
		log.Logger = log.Output(writer)
		log.Info().Str("url", url).Msg("Logdy UI available")
	} else {
		log.Logger = log.Output(writer)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

type logdyWriter struct {
	logger logdy.Logdy
}

func (w *logdyWriter) Write(p []byte) (n int, err error) {
	// Forward raw line to Logdy UI
	w.logger.LogString(string(p))
	return len(p), nil
}

// startLogdy starts the embedded Logdy web UI and returns a writer to tee
// logs into it, plus the UI URL.
func startLogdy(cfg *config.Config) (io.Writer, string) {
	portStr := strconv.Itoa(cfg.LogdyPort)
	ld := logdy.InitializeLogdy(logdy.Config{
		ServerIp:   cfg.LogdyHost,
		ServerPort: portStr,
	}, nil)

	url := fmt.Sprintf("http://%s:%s", cfg.LogdyHost, portStr)
	return &logdyWriter{logger: ld}, url
}
