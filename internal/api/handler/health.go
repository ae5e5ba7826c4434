package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler exposes liveness and readiness probes. Mongo and Redis are
// optional runtime dependencies, so a nil client is reported as "disabled"
// rather than failing readiness.
type HealthHandler struct {
	mongo *mongo.Client
	redis *redis.Client
}

func NewHealthHandler(mongoClient *mongo.Client, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{mongo: mongoClient, redis: redisClient}
}

// Live handles GET /health.
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /health/ready.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx := c.Request().Context()
	checks := map[string]string{}
	healthy := true

	if h.mongo == nil {
		checks["mongo"] = "disabled"
	} else if err := h.mongo.Ping(ctx, nil); err != nil {
		checks["mongo"] = "down"
		healthy = false
	} else {
		checks["mongo"] = "ok"
	}

	if h.redis == nil {
		checks["redis"] = "disabled"
	} else if err := h.redis.Ping(ctx).Err(); err != nil {
		checks["redis"] = "down"
		healthy = false
	} else {
		checks["redis"] = "ok"
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, checks)
}
