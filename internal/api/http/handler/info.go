package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/nutrilog-server/internal/logger"
	"github.com/dtroode/nutrilog-server/internal/model"
)

// HealthService reports collection sizes.
type HealthService interface {
	Stats(ctx context.Context) (model.Stats, error)
}

var endpoints = map[string]string{
	"POST /register":     "Register a new user",
	"POST /log_meals":    "Log a meal for a user",
	"GET /meals/{user}":  "Get user's meals (optional date filter)",
	"GET /status/{user}": "Get user's nutrient status",
	"POST /webhook":      "Webhook for free-text meal logging",
	"GET /health":        "Health check",
	"GET /metrics":       "Prometheus metrics",
}

// Info handles service description and health endpoints.
type Info struct {
	healthService HealthService
	version       string
	logger        *logger.Logger
	now           func() time.Time
}

func NewInfo(healthService HealthService, version string, logger *logger.Logger) *Info {
	return &Info{
		healthService: healthService,
		version:       version,
		logger:        logger,
		now:           time.Now,
	}
}

// Root handles GET /.
func (h *Info) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, infoResponse{
		Message:   "NutriLog - Nutrition Tracking Backend",
		Version:   h.version,
		Endpoints: endpoints,
	})
}

// Health handles GET /health.
func (h *Info) Health(w http.ResponseWriter, r *http.Request) {
	stats, err := h.healthService.Stats(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "healthy",
		Timestamp:  h.now(),
		UsersCount: stats.Users,
		MealsCount: stats.Meals,
		FoodsCount: stats.Foods,
	})
}
