package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	redis  *redis.Client
	logger *logrus.Logger
}

// NewHealthHandler creates a health handler. redis may be nil when the
// in-memory cache is in use.
func NewHealthHandler(redisClient *redis.Client, log *logrus.Logger) *HealthHandler {
	return &HealthHandler{redis: redisClient, logger: log}
}

// GetHealth returns the basic health status
func (h *HealthHandler) GetHealth(c *gin.Context) {
	response := HealthStatus{
		Status:    "ok",
		Service:   "roster-engine",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	// Redis is optional; the engine itself is stateless.
	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			response.Status = "degraded"
			response.Checks["redis"] = "failed: " + err.Error()
		} else {
			response.Checks["redis"] = "ok"
		}
	} else {
		response.Checks["redis"] = "not_configured"
	}

	statusCode := http.StatusOK
	if response.Status == "degraded" {
		statusCode = http.StatusPartialContent
	}

	c.JSON(statusCode, response)
}
