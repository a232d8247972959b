// Package nutrition implements the pure nutrition computations: basal metabolic
// rate, nutrient aggregation over the food reference and meal command parsing.
package nutrition

import (
	"strconv"
	"strings"

	"github.com/dtroode/nutrilog-server/internal/apierror"
	"github.com/dtroode/nutrilog-server/internal/model"
)

// CalculateBMR returns the Harris-Benedict basal metabolic rate rounded to two
// decimals. Weight is in kilograms, height in centimeters, age in years.
func CalculateBMR(weight, height float64, age int, gender model.Gender) (float64, error) {
	var bmr float64

	switch model.Gender(strings.ToLower(string(gender))) {
	case model.GenderMale:
		bmr = 88.362 + 13.397*weight + 4.799*height - 5.677*float64(age)
	case model.GenderFemale:
		bmr = 447.593 + 9.247*weight + 3.098*height - 4.33*float64(age)
	default:
		return 0, apierror.NewErrInvalidGender(string(gender))
	}

	return round2(bmr), nil
}

// round2 rounds the exact binary value of x to two decimals.
func round2(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return r
}
