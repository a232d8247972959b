package service

import (
	"context"
	"fmt"

	"github.com/dtroode/nutrilog-server/internal/model"
)

type Health struct {
	userStore model.UserStore
	mealStore model.MealStore
	foods     model.FoodReference
}

func NewHealth(userStore model.UserStore, mealStore model.MealStore, foods model.FoodReference) *Health {
	return &Health{
		userStore: userStore,
		mealStore: mealStore,
		foods:     foods,
	}
}

func (s *Health) Stats(ctx context.Context) (model.Stats, error) {
	users, err := s.userStore.Count(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to count users: %w", err)
	}

	meals, err := s.mealStore.Count(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to count meals: %w", err)
	}

	return model.Stats{
		Users: users,
		Meals: meals,
		Foods: s.foods.Len(),
	}, nil
}

// Ready reports whether the food reference holds at least one entry.
func (s *Health) Ready() bool {
	return s.foods.Len() > 0
}
