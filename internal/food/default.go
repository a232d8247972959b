package food

import "github.com/dtroode/nutrilog-server/internal/model"

// Values are per serving unit.
var builtin = []model.Food{
	{Name: "rice", Nutrients: model.Nutrients{Calories: 130, Protein: 2.7, Carbs: 28, Fiber: 0.4}},
	{Name: "dal", Nutrients: model.Nutrients{Calories: 116, Protein: 6.8, Carbs: 20, Fiber: 7.5}},
	{Name: "cucumber", Nutrients: model.Nutrients{Calories: 16, Protein: 0.7, Carbs: 3.6, Fiber: 0.5}},
	{Name: "chicken", Nutrients: model.Nutrients{Calories: 165, Protein: 31, Carbs: 0, Fiber: 0}},
	{Name: "bread", Nutrients: model.Nutrients{Calories: 265, Protein: 9, Carbs: 49, Fiber: 2.7}},
	{Name: "milk", Nutrients: model.Nutrients{Calories: 42, Protein: 3.4, Carbs: 5, Fiber: 0}},
	{Name: "egg", Nutrients: model.Nutrients{Calories: 155, Protein: 13, Carbs: 1.1, Fiber: 0}},
	{Name: "banana", Nutrients: model.Nutrients{Calories: 89, Protein: 1.1, Carbs: 23, Fiber: 2.6}},
	{Name: "apple", Nutrients: model.Nutrients{Calories: 52, Protein: 0.3, Carbs: 14, Fiber: 2.4}},
	{Name: "salad", Nutrients: model.Nutrients{Calories: 20, Protein: 2, Carbs: 4, Fiber: 1.5}},
	{Name: "pasta", Nutrients: model.Nutrients{Calories: 131, Protein: 5, Carbs: 25, Fiber: 1.8}},
	{Name: "fish", Nutrients: model.Nutrients{Calories: 84, Protein: 18, Carbs: 0, Fiber: 0}},
	{Name: "beef", Nutrients: model.Nutrients{Calories: 250, Protein: 26, Carbs: 0, Fiber: 0}},
	{Name: "potato", Nutrients: model.Nutrients{Calories: 77, Protein: 2, Carbs: 17, Fiber: 2.2}},
	{Name: "tomato", Nutrients: model.Nutrients{Calories: 18, Protein: 0.9, Carbs: 3.9, Fiber: 1.2}},
	{Name: "onion", Nutrients: model.Nutrients{Calories: 40, Protein: 1.1, Carbs: 9.3, Fiber: 1.7}},
	{Name: "carrot", Nutrients: model.Nutrients{Calories: 41, Protein: 0.9, Carbs: 10, Fiber: 2.8}},
	{Name: "spinach", Nutrients: model.Nutrients{Calories: 23, Protein: 2.9, Carbs: 3.6, Fiber: 2.2}},
	{Name: "yogurt", Nutrients: model.Nutrients{Calories: 59, Protein: 10, Carbs: 3.6, Fiber: 0}},
	{Name: "cheese", Nutrients: model.Nutrients{Calories: 113, Protein: 7, Carbs: 0.4, Fiber: 0}},
}

// Default returns a table with the built-in reference foods.
func Default() *Table {
	return NewTable(builtin)
}
