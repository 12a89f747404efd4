package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/database"
)

// DatabaseProbe reports whether the database is reachable and how its pool is doing
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler serves the liveness probe
type HealthHandler struct {
	db     DatabaseProbe
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseProbe, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Healthz handles GET /healthz
func (h *HealthHandler) Healthz(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Database: "down"})
		return
	}

	pool := h.db.PoolMetrics()
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Database: "up",
		Pool: &dto.PoolStatsResponse{
			Open:      pool.OpenConnections,
			InUse:     pool.InUse,
			Idle:      pool.IdleConnections,
			MaxOpen:   pool.MaxOpenConnections,
			WaitCount: pool.WaitCount,
		},
	})
}
