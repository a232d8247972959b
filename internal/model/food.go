package model

import "strings"

// FoodReference resolves normalized food names to per-unit nutrient values.
type FoodReference interface {
	Lookup(name string) (Food, bool)
	Len() int
}

// Food is a single food reference entry.
type Food struct {
	Name      string
	Nutrients Nutrients
}

// NormalizeFoodName returns the lookup key for a food name.
func NormalizeFoodName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
