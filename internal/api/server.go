package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"occupancy-agent-go/internal/agent"
	"occupancy-agent-go/internal/api/handlers"
	"occupancy-agent-go/internal/config"
)

// Server exposes the agent's health and status over HTTP. It serves
// operators only; the reporting pipeline does not depend on it.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	server *http.Server

	healthHandler *handlers.HealthHandler
	statusHandler *handlers.StatusHandler
}

func NewServer(cfg *config.Config, a *agent.Agent) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		cfg:           cfg,
		router:        router,
		healthHandler: handlers.NewHealthHandler(cfg),
		statusHandler: handlers.NewStatusHandler(a),
	}

	s.setupRoutes()
	s.setupSwagger()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.HealthCheck)
	s.router.GET("/", s.healthHandler.AgentInfo)
	s.router.GET("/status", s.statusHandler.Status)
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	log.Info().Int("port", s.cfg.Port).Msg("Starting status API")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
