package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Application
	Version     string
	Environment string
	AgentID     string
	LogLevel    string

	// Logdy (lightweight web log viewer)
	LogdyEnabled bool
	LogdyHost    string
	LogdyPort    int

	// Video Source
	// File path, RTSP/HTTP URI, or numeric camera device index
	VideoSource                string
	MaxFPS                     int
	OutputWidth                int
	OutputHeight               int
	MaxConsecutiveDecodeErrors int

	// Detector+Tracker (gRPC capability)
	TrackerGRPCURL      string
	TrackerTimeout      time.Duration
	ModelName           string
	ConfidenceThreshold float64
	Device              string

	// Aggregation
	AggregationInterval time.Duration

	// Reporting
	BackendURL    string
	IngestPath    string
	ReportTimeout time.Duration

	// NATS (optional window-event fan-out)
	NatsEnabled        bool
	NatsURL            string
	NatsSubject        string
	NatsConnectTimeout time.Duration
	NatsReconnectWait  time.Duration
	NatsMaxReconnects  int

	// Status API
	APIEnabled bool
	Port       int
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file found, using environment variables and defaults")
	} else {
		log.Info().Msg("Loaded configuration from .env file")
	}

	return &Config{
		// Application
		Version:     getEnv("VERSION", "1.0.0"),
		Environment: getEnv("ENVIRONMENT", "development"),
		AgentID:     getEnv("AGENT_ID", "occupancy-agent-1"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Logdy
		LogdyEnabled: getEnvBool("LOGDY_ENABLED", false),
		LogdyHost:    getEnv("LOGDY_HOST", "localhost"),
		LogdyPort:    getEnvInt("LOGDY_PORT", 8080),

		// Video Source
		VideoSource:                getEnv("VIDEO_SOURCE", "0"),
		MaxFPS:                     getEnvInt("MAX_FPS", 15),
		OutputWidth:                getEnvInt("OUTPUT_WIDTH", 1280),
		OutputHeight:               getEnvInt("OUTPUT_HEIGHT", 720),
		MaxConsecutiveDecodeErrors: getEnvInt("MAX_CONSECUTIVE_DECODE_ERRORS", 10),

		// Detector+Tracker
		TrackerGRPCURL:      getEnv("TRACKER_GRPC_URL", "localhost:50052"),
		TrackerTimeout:      getEnvDuration("TRACKER_TIMEOUT", 5*time.Second),
		ModelName:           getEnv("MODEL_NAME", "yolov8n"),
		ConfidenceThreshold: getEnvFloat("CONFIDENCE_THRESHOLD", 0.5),
		Device:              getEnv("DEVICE", "cpu"),

		// Aggregation
		AggregationInterval: getEnvDuration("AGGREGATION_INTERVAL", 60*time.Second),

		// Reporting
		BackendURL:    getEnv("BACKEND_URL", "http://localhost:8500"),
		IngestPath:    getEnv("INGEST_PATH", "/api/v1/occupancy"),
		ReportTimeout: getEnvDuration("REPORT_TIMEOUT", 3*time.Second),

		// NATS
		NatsEnabled:        getEnvBool("NATS_ENABLED", false),
		NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		NatsSubject:        getEnv("NATS_SUBJECT", "occupancy.windows"),
		NatsConnectTimeout: getEnvDuration("NATS_CONNECT_TIMEOUT", 10*time.Second),
		NatsReconnectWait:  getEnvDuration("NATS_RECONNECT_WAIT", 2*time.Second),
		NatsMaxReconnects:  getEnvInt("NATS_MAX_RECONNECTS", -1), // -1 = unlimited

		// Status API
		APIEnabled: getEnvBool("API_ENABLED", true),
		Port:       getEnvInt("PORT", 8000),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
