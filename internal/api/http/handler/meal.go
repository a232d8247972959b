package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dtroode/nutrilog-server/internal/apierror"
	"github.com/dtroode/nutrilog-server/internal/logger"
	"github.com/dtroode/nutrilog-server/internal/model"
)

// MealService defines meal ingestion and listing.
type MealService interface {
	LogMeal(ctx context.Context, params model.LogMealParams) (model.Meal, error)
	LogMessage(ctx context.Context, message string) (model.Meal, error)
	ListMeals(ctx context.Context, userID uuid.UUID, date string) ([]model.Meal, error)
}

// Meal handles meal endpoints.
type Meal struct {
	mealService MealService
	logger      *logger.Logger
}

// NewMeal creates a new Meal handler.
func NewMeal(mealService MealService, logger *logger.Logger) *Meal {
	return &Meal{
		mealService: mealService,
		logger:      logger,
	}
}

// LogMeal handles POST /log_meals.
func (h *Meal) LogMeal(w http.ResponseWriter, r *http.Request) {
	var req logMealRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	switch {
	case strings.TrimSpace(req.User) == "":
		handleError(w, h.logger, apierror.NewErrValidation("user", "must not be empty"))
		return
	case len(req.Items) == 0:
		handleError(w, h.logger, apierror.NewErrValidation("items", "must contain at least one item"))
		return
	}

	userID, err := parseUserID(req.User)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	meal, err := h.mealService.LogMeal(r.Context(), model.LogMealParams{
		UserID:    userID,
		MealType:  req.Meal,
		FoodItems: req.Items,
	})
	if err != nil {
		h.logger.Debug("Meal handler: log meal failed",
			"user_id", req.User,
			"error", err.Error())
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, logMealResponse{
		Status:    statusSuccess,
		Message:   "Meal logged successfully",
		MealID:    meal.ID.String(),
		Nutrients: toNutrients(meal.Nutrients),
	})
}

// Webhook handles POST /webhook.
func (h *Meal) Webhook(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	if req.Message == nil {
		handleError(w, h.logger, apierror.NewErrValidation("message", "is required"))
		return
	}

	meal, err := h.mealService.LogMessage(r.Context(), *req.Message)
	if err != nil {
		h.logger.Debug("Meal handler: webhook message rejected", "error", err.Error())
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{
		Status:    statusSuccess,
		Message:   "Meal logged via webhook successfully",
		MealID:    meal.ID.String(),
		MealType:  string(meal.Type),
		FoodItems: meal.FoodItems,
		Nutrients: toNutrients(meal.Nutrients),
	})
}

// ListMeals handles GET /meals/{user}.
func (h *Meal) ListMeals(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "user")
	userID, err := parseUserID(rawID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	meals, err := h.mealService.ListMeals(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	resp := listMealsResponse{
		Status:     statusSuccess,
		User:       rawID,
		Meals:      make([]mealResponse, 0, len(meals)),
		TotalMeals: len(meals),
	}
	for _, m := range meals {
		resp.Meals = append(resp.Meals, toMeal(m))
	}

	writeJSON(w, http.StatusOK, resp)
}
