package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dtroode/nutrilog-server/internal/logger"
	"github.com/dtroode/nutrilog-server/internal/model"
)

// StatusService defines the consumption summary query.
type StatusService interface {
	GetStatus(ctx context.Context, userID uuid.UUID) (model.Status, error)
}

// Status handles the consumption summary endpoint.
type Status struct {
	statusService StatusService
	logger        *logger.Logger
}

// NewStatus creates a new Status handler.
func NewStatus(statusService StatusService, logger *logger.Logger) *Status {
	return &Status{
		statusService: statusService,
		logger:        logger,
	}
}

// GetStatus handles GET /status/{user}.
func (h *Status) GetStatus(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "user")
	userID, err := parseUserID(rawID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	st, err := h.statusService.GetStatus(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Status: statusSuccess,
		User:   rawID,
		UserInfo: userInfo{
			Name: st.UserName,
			BMR:  st.BMR,
		},
		ConsumedNutrients: toNutrients(st.Consumed),
		TotalMeals:        st.TotalMeals,
	})
}
