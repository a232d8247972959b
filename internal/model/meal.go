package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MealStore defines persistence operations for logged meals.
type MealStore interface {
	Create(ctx context.Context, meal Meal) (Meal, error)
	GetByID(ctx context.Context, id uuid.UUID) (Meal, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Meal, error)
	Count(ctx context.Context) (int, error)
}

// MealType enumerates meal categories.
type MealType string

const (
	// MealTypeBreakfast is a breakfast meal.
	MealTypeBreakfast MealType = "breakfast"
	// MealTypeLunch is a lunch meal.
	MealTypeLunch MealType = "lunch"
	// MealTypeDinner is a dinner meal.
	MealTypeDinner MealType = "dinner"
)

// Valid reports whether t is one of the known meal categories.
func (t MealType) Valid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

// Nutrients holds the four tracked nutrient accumulators.
type Nutrients struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fiber    float64
}

// Add returns the field-wise sum of n and o.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fiber:    n.Fiber + o.Fiber,
	}
}

// Meal represents a logged meal. Nutrients are frozen at logging time.
type Meal struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      MealType
	FoodItems []string
	Nutrients Nutrients
	LoggedAt  time.Time
}

// LogMealParams contains parameters of a structured meal logging request.
type LogMealParams struct {
	UserID    uuid.UUID
	MealType  string
	FoodItems []string
}

// MealCommand is a meal logging request parsed from a free-text message.
type MealCommand struct {
	MealType  MealType
	FoodItems []string
}

// Status summarizes a user's consumption across all logged meals.
type Status struct {
	UserID     uuid.UUID
	UserName   string
	BMR        float64
	Consumed   Nutrients
	TotalMeals int
}
