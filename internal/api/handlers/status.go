package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"occupancy-agent-go/internal/agent"
)

type StatusHandler struct {
	agent *agent.Agent
}

func NewStatusHandler(a *agent.Agent) *StatusHandler {
	return &StatusHandler{agent: a}
}

// @Summary Agent status
// @Description Lifecycle state, pipeline counters and the last emitted window aggregate
// @Tags status
// @Produce json
// @Success 200 {object} models.AgentStatus
// @Router /status [get]
func (h *StatusHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.agent.Status())
}
