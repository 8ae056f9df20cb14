package api

import (
	"net/http"

	_ "occupancy-agent-go/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) setupSwagger() {
	s.router.GET("/api/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       "Occupancy Agent API",
			"version":     s.cfg.Version,
			"description": "Edge occupancy telemetry agent: per-frame people counting aggregated into privacy-preserving window averages",
			"swagger_ui":  "/docs/index.html",
			"endpoints": gin.H{
				"health": "/health",
				"info":   "/",
				"status": "/status",
			},
			"agent_id": s.cfg.AgentID,
			"port":     s.cfg.Port,
		})
	})

	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
}
