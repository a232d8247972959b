package nutrition

import (
	"strings"

	"github.com/dtroode/nutrilog-server/internal/apierror"
	"github.com/dtroode/nutrilog-server/internal/model"
)

// CommandPrefix starts every meal logging message.
const CommandPrefix = "log "

// ParseCommand parses a message of the form "log <meal>: <item>, <item>, ...".
// The prefix is case-sensitive, the meal category is not. Food items keep their
// original casing, are trimmed, and empty items are dropped.
func ParseCommand(message string) (model.MealCommand, error) {
	rest, ok := strings.CutPrefix(message, CommandPrefix)
	if !ok {
		return model.MealCommand{}, apierror.NewErrInvalidFormat("must start with 'log '")
	}

	mealPart, itemsPart, found := strings.Cut(rest, ":")
	if !found || mealPart == "" || itemsPart == "" {
		return model.MealCommand{}, apierror.NewErrInvalidFormat("expected 'log [meal_type]: [food_items]'")
	}

	mealType := model.MealType(strings.ToLower(strings.TrimSpace(mealPart)))
	if !mealType.Valid() {
		return model.MealCommand{}, apierror.NewErrInvalidMealType(strings.TrimSpace(mealPart))
	}

	var items []string
	for _, token := range strings.Split(itemsPart, ",") {
		if token = strings.TrimSpace(token); token != "" {
			items = append(items, token)
		}
	}
	if len(items) == 0 {
		return model.MealCommand{}, apierror.NewErrNoFoodItems()
	}

	return model.MealCommand{MealType: mealType, FoodItems: items}, nil
}
