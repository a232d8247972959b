package nutrition

import "github.com/dtroode/nutrilog-server/internal/model"

// Aggregate sums the nutrients of the given food names as found in ref.
// Names are normalized before lookup. Names missing from ref contribute nothing;
// they are returned as skipped for observability only and are not an error.
func Aggregate(ref model.FoodReference, items []string) (model.Nutrients, []string) {
	var (
		total   model.Nutrients
		skipped []string
	)

	for _, item := range items {
		food, ok := ref.Lookup(model.NormalizeFoodName(item))
		if !ok {
			skipped = append(skipped, item)
			continue
		}
		total = total.Add(food.Nutrients)
	}

	return total, skipped
}

// Sum folds meal nutrient totals with plain addition.
func Sum(meals []model.Meal) model.Nutrients {
	var total model.Nutrients
	for _, m := range meals {
		total = total.Add(m.Nutrients)
	}
	return total
}
