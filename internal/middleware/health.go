package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status      string    `json:"status"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

type Health struct {
	mu      sync.RWMutex
	status  string
	version string
	started time.Time
}

func NewHealth(version string) *Health {
	return &Health{status: "ok", version: version, started: time.Now()}
}

func (h *Health) SetStatus(status string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = status
}

func (h *Health) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.mu.RLock()
		body := HealthStatus{
			Status:      h.status,
			LastChecked: time.Now(),
			Uptime:      time.Since(h.started).Round(time.Second).String(),
			Version:     h.version,
		}
		h.mu.RUnlock()

		code := http.StatusOK
		if body.Status != "ok" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, body)
	}
}
