package handler

import (
	"time"

	"github.com/dtroode/nutrilog-server/internal/model"
)

type nutrientsResponse struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
}

func toNutrients(n model.Nutrients) nutrientsResponse {
	return nutrientsResponse{
		Calories: n.Calories,
		Protein:  n.Protein,
		Carbs:    n.Carbs,
		Fiber:    n.Fiber,
	}
}

type registerRequest struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Gender string  `json:"gender"`
	Goal   string  `json:"goal"`
}

type registerResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	UserID  string  `json:"user_id"`
	BMR     float64 `json:"bmr"`
}

type logMealRequest struct {
	User  string   `json:"user"`
	Meal  string   `json:"meal"`
	Items []string `json:"items"`
}

type logMealResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	MealID    string            `json:"meal_id"`
	Nutrients nutrientsResponse `json:"nutrients"`
}

type webhookRequest struct {
	Message *string `json:"message"`
}

type webhookResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	MealID    string            `json:"meal_id"`
	MealType  string            `json:"meal_type"`
	FoodItems []string          `json:"food_items"`
	Nutrients nutrientsResponse `json:"nutrients"`
}

type mealResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	MealType  string            `json:"meal_type"`
	FoodItems []string          `json:"food_items"`
	LoggedAt  time.Time         `json:"logged_at"`
	Nutrients nutrientsResponse `json:"nutrients"`
}

func toMeal(m model.Meal) mealResponse {
	return mealResponse{
		ID:        m.ID.String(),
		UserID:    m.UserID.String(),
		MealType:  string(m.Type),
		FoodItems: m.FoodItems,
		LoggedAt:  m.LoggedAt,
		Nutrients: toNutrients(m.Nutrients),
	}
}

type listMealsResponse struct {
	Status     string         `json:"status"`
	User       string         `json:"user"`
	Meals      []mealResponse `json:"meals"`
	TotalMeals int            `json:"total_meals"`
}

type userInfo struct {
	Name string  `json:"name"`
	BMR  float64 `json:"bmr"`
}

type statusResponse struct {
	Status            string            `json:"status"`
	User              string            `json:"user"`
	UserInfo          userInfo          `json:"user_info"`
	ConsumedNutrients nutrientsResponse `json:"consumed_nutrients"`
	TotalMeals        int               `json:"total_meals"`
}

type infoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type healthResponse struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	UsersCount int       `json:"users_count"`
	MealsCount int       `json:"meals_count"`
	FoodsCount int       `json:"foods_count"`
}
