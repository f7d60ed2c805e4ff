package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) handleHealth(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, healthResponse{Status: "up", Database: "unchecked"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn(ctx, "health check failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "down", Database: "unreachable"})
		return
	}
	c.JSON(http.StatusOK, healthResponse{Status: "up", Database: "ok"})
}
