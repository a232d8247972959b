package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/nutrilog-server/internal/model"
)

var _ model.MealStore = (*MealRepository)(nil)

// MealRepository keeps meals in insertion order.
type MealRepository struct {
	mu    sync.RWMutex
	meals []model.Meal
	index map[uuid.UUID]int
}

func NewMealRepository() *MealRepository {
	return &MealRepository{
		index: make(map[uuid.UUID]int),
	}
}

func (r *MealRepository) Create(_ context.Context, meal model.Meal) (model.Meal, error) {
	meal.FoodItems = slices.Clone(meal.FoodItems)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[meal.ID]; ok {
		return model.Meal{}, model.ErrAlreadyExists
	}
	r.index[meal.ID] = len(r.meals)
	r.meals = append(r.meals, meal)

	return cloneMeal(meal), nil
}

func (r *MealRepository) GetByID(_ context.Context, id uuid.UUID) (model.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return model.Meal{}, model.ErrNotFound
	}

	return cloneMeal(r.meals[i]), nil
}

// GetByUserID returns the meals of userID in insertion order.
func (r *MealRepository) GetByUserID(_ context.Context, userID uuid.UUID) ([]model.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var meals []model.Meal
	for _, m := range r.meals {
		if m.UserID == userID {
			meals = append(meals, cloneMeal(m))
		}
	}

	return meals, nil
}

func (r *MealRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.meals), nil
}

// cloneMeal detaches the food item slice so callers cannot mutate stored meals.
func cloneMeal(m model.Meal) model.Meal {
	m.FoodItems = slices.Clone(m.FoodItems)
	return m
}
