package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/sentiscope/internal/sentiment"
)

// HealthHandler reports whether the analyzer backend and the optional
// result cache are reachable.
type HealthHandler struct {
	analyzer sentiment.Analyzer
	cache    sentiment.Pinger
}

func NewHealthHandler(analyzer sentiment.Analyzer, cache sentiment.Pinger) *HealthHandler {
	return &HealthHandler{analyzer: analyzer, cache: cache}
}

type HealthStatus struct {
	Status     string            `json:"status"`
	Backend    string            `json:"backend"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	if p, ok := h.analyzer.(sentiment.Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			components["analyzer"] = "unreachable"
			healthy = false
		} else {
			components["analyzer"] = "ok"
		}
	} else {
		components["analyzer"] = "ok"
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			components["cache"] = "unreachable"
			healthy = false
		} else {
			components["cache"] = "ok"
		}
	} else {
		components["cache"] = "not configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Backend:    h.analyzer.Backend(),
		Components: components,
	})
}
