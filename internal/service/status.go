package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/nutrilog-server/internal/apierror"
	"github.com/dtroode/nutrilog-server/internal/logger"
	"github.com/dtroode/nutrilog-server/internal/model"
	"github.com/dtroode/nutrilog-server/internal/nutrition"
)

type Status struct {
	userStore model.UserStore
	mealStore model.MealStore
	logger    *logger.Logger
}

func NewStatus(userStore model.UserStore, mealStore model.MealStore, logger *logger.Logger) *Status {
	return &Status{
		userStore: userStore,
		mealStore: mealStore,
		logger:    logger,
	}
}

// GetStatus sums the frozen nutrient totals of every meal the user has logged.
func (s *Status) GetStatus(ctx context.Context, userID uuid.UUID) (model.Status, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Status{}, apierror.NewErrUserNotFound(userID.String())
	}
	if err != nil {
		return model.Status{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	meals, err := s.mealStore.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Status service: failed to get meals",
			"user_id", userID,
			"error", err.Error())
		return model.Status{}, fmt.Errorf("failed to get meals by user id: %w", err)
	}

	return model.Status{
		UserID:     user.ID,
		UserName:   user.Name,
		BMR:        user.BMR,
		Consumed:   nutrition.Sum(meals),
		TotalMeals: len(meals),
	}, nil
}
