package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"occupancy-agent-go/internal/agent"
	"occupancy-agent-go/internal/api"
	"occupancy-agent-go/internal/config"
	"occupancy-agent-go/internal/logging"
	"occupancy-agent-go/internal/messaging"
	"occupancy-agent-go/internal/reporter"
	"occupancy-agent-go/internal/source"
	"occupancy-agent-go/internal/tracker"
)

func main() {
	// Load configuration and set up structured logging
	cfg := config.Load()
	logging.Setup(cfg)

	log.Info().
		Str("agent_id", cfg.AgentID).
		Str("version", cfg.Version).
		Str("environment", cfg.Environment).
		Str("video_source", cfg.VideoSource).
		Str("backend_url", cfg.BackendURL).
		Dur("aggregation_interval", cfg.AggregationInterval).
		Msg("Starting occupancy agent")

	// The video source is the only fatal dependency: without it there is
	// nothing to sample, so abort before the loop ever starts.
	src, err := source.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot open video source")
	}

	trk, err := tracker.NewGRPCTracker(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create tracker client")
	}

	rep := reporter.NewHTTPReporter(cfg)

	// Optional NATS fan-out of window aggregates
	var events agent.WindowPublisher
	var nats *messaging.Service
	if cfg.NatsEnabled {
		nats, err = messaging.NewService(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("NATS unavailable, window events disabled")
		} else {
			events = nats
		}
	}

	a := agent.New(cfg, src, trk, rep, events)

	// Optional status API in the background
	var apiServer *api.Server
	if cfg.APIEnabled {
		apiServer = api.NewServer(cfg, a)
		go func() {
			if err := apiServer.Start(); err != nil {
				log.Error().Err(err).Msg("Status API error")
			}
		}()
	}

	// The signal handler only clears the run flag; the loop observes it
	// between frames and performs the final flush itself.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		a.Stop()
	}()

	// Blocks until the run flag clears or the source is exhausted, then
	// flushes the partial window and releases the source.
	if err := a.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("Agent loop error")
	}

	if apiServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := apiServer.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("Status API forced to shutdown")
		}
		cancel()
	}

	if nats != nil {
		nats.Shutdown()
	}

	if err := trk.Close(); err != nil {
		log.Warn().Err(err).Msg("Error closing tracker connection")
	}

	log.Info().Msg("Shutdown complete")
}
