package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/nutrilog-server/internal/apierror"
	"github.com/dtroode/nutrilog-server/internal/logger"
	"github.com/dtroode/nutrilog-server/internal/metrics"
	"github.com/dtroode/nutrilog-server/internal/model"
	"github.com/dtroode/nutrilog-server/internal/nutrition"
)

// DateLayout is the layout of the meal listing date filter.
const DateLayout = "2006-01-02"

// Ingestion sources reported to metrics.
const (
	SourceAPI     = "api"
	SourceWebhook = "webhook"
)

// DefaultUserProvider resolves the identity that free-text meals belong to.
type DefaultUserProvider interface {
	EnsureDefault(ctx context.Context) (model.User, error)
}

type Meal struct {
	userStore    model.UserStore
	mealStore    model.MealStore
	foods        model.FoodReference
	defaultUsers DefaultUserProvider
	ids          model.IDGenerator
	metrics      *metrics.Metrics
	logger       *logger.Logger
	now          func() time.Time
}

func NewMeal(
	userStore model.UserStore,
	mealStore model.MealStore,
	foods model.FoodReference,
	defaultUsers DefaultUserProvider,
	ids model.IDGenerator,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Meal {
	return &Meal{
		userStore:    userStore,
		mealStore:    mealStore,
		foods:        foods,
		defaultUsers: defaultUsers,
		ids:          ids,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// LogMeal records a meal supplied as structured input.
func (s *Meal) LogMeal(ctx context.Context, params model.LogMealParams) (model.Meal, error) {
	s.logger.Debug("Meal service: logging meal",
		"user_id", params.UserID,
		"meal_type", params.MealType)

	if err := s.ensureUser(ctx, params.UserID); err != nil {
		return model.Meal{}, err
	}

	mealType := model.MealType(strings.ToLower(strings.TrimSpace(params.MealType)))
	if !mealType.Valid() {
		return model.Meal{}, apierror.NewErrInvalidMealType(params.MealType)
	}

	if len(params.FoodItems) == 0 {
		return model.Meal{}, apierror.NewErrNoFoodItems()
	}

	return s.record(ctx, SourceAPI, params.UserID, mealType, params.FoodItems)
}

// LogMessage parses a free-text command and records the meal against the
// shared webhook identity.
func (s *Meal) LogMessage(ctx context.Context, message string) (model.Meal, error) {
	s.logger.Debug("Meal service: logging meal from message")

	cmd, err := nutrition.ParseCommand(strings.TrimSpace(message))
	if err != nil {
		return model.Meal{}, err
	}

	user, err := s.defaultUsers.EnsureDefault(ctx)
	if err != nil {
		s.logger.Error("Meal service: failed to resolve webhook user",
			"error", err.Error())
		return model.Meal{}, fmt.Errorf("failed to resolve webhook user: %w", err)
	}

	return s.record(ctx, SourceWebhook, user.ID, cmd.MealType, cmd.FoodItems)
}

// ListMeals returns the user's meals in logging order. A non-empty date
// restricts the result to meals logged on that calendar day.
func (s *Meal) ListMeals(ctx context.Context, userID uuid.UUID, date string) ([]model.Meal, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	var (
		filter   time.Time
		filtered = date != ""
	)
	if filtered {
		var err error
		filter, err = time.Parse(DateLayout, date)
		if err != nil {
			return nil, apierror.NewErrInvalidDateFormat(date)
		}
	}

	meals, err := s.mealStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meals by user id: %w", err)
	}

	if !filtered {
		return meals, nil
	}

	result := make([]model.Meal, 0, len(meals))
	for _, meal := range meals {
		if sameDay(meal.LoggedAt, filter) {
			result = append(result, meal)
		}
	}

	return result, nil
}

func (s *Meal) record(
	ctx context.Context,
	source string,
	userID uuid.UUID,
	mealType model.MealType,
	items []string,
) (model.Meal, error) {
	nutrients, skipped := nutrition.Aggregate(s.foods, items)
	if len(skipped) > 0 {
		s.logger.Debug("Meal service: unrecognized food items skipped",
			"user_id", userID,
			"items", skipped)
	}

	meal := model.Meal{
		ID:        s.ids.NewID(),
		UserID:    userID,
		Type:      mealType,
		FoodItems: append([]string(nil), items...),
		Nutrients: nutrients,
		LoggedAt:  s.now(),
	}

	created, err := s.mealStore.Create(ctx, meal)
	if err != nil {
		s.logger.Error("Meal service: failed to create meal",
			"user_id", userID,
			"error", err.Error())
		return model.Meal{}, fmt.Errorf("failed to create meal: %w", err)
	}

	s.metrics.MealLogged(source, string(mealType), len(skipped))
	s.logger.Info("Meal service: meal logged",
		"meal_id", created.ID,
		"user_id", userID,
		"meal_type", mealType,
		"source", source)

	return created, nil
}

func (s *Meal) ensureUser(ctx context.Context, userID uuid.UUID) error {
	_, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrUserNotFound(userID.String())
	}
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}
	return nil
}

func sameDay(t, day time.Time) bool {
	y, m, d := t.Date()
	fy, fm, fd := day.Date()
	return y == fy && m == fm && d == fd
}
