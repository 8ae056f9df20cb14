package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"occupancy-agent-go/internal/config"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	AgentID string `json:"agent_id" example:"occupancy-agent-1"`
}

type AgentInfoResponse struct {
	AgentID      string   `json:"agent_id" example:"occupancy-agent-1"`
	Version      string   `json:"version" example:"1.0.0"`
	Environment  string   `json:"environment" example:"development"`
	Capabilities []string `json:"capabilities"`
}

// @Summary Health check
// @Description Check if the agent process is up and responsive
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		AgentID: h.cfg.AgentID,
	})
}

// @Summary Agent information
// @Description Get basic agent information and capabilities
// @Tags health
// @Produce json
// @Success 200 {object} AgentInfoResponse
// @Router / [get]
func (h *HealthHandler) AgentInfo(c *gin.Context) {
	c.JSON(http.StatusOK, AgentInfoResponse{
		AgentID:     h.cfg.AgentID,
		Version:     h.cfg.Version,
		Environment: h.cfg.Environment,
		Capabilities: []string{
			"video_ingest",
			"people_tracking",
			"occupancy_aggregation",
			"best_effort_reporting",
		},
	})
}
