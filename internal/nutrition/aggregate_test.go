package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/nutrilog-server/internal/model"
)

type stubReference map[string]model.Nutrients

func (r stubReference) Lookup(name string) (model.Food, bool) {
	n, ok := r[name]
	return model.Food{Name: name, Nutrients: n}, ok
}

func (r stubReference) Len() int { return len(r) }

var testReference = stubReference{
	"rice":    {Calories: 130, Protein: 2.7, Carbs: 28, Fiber: 0.4},
	"chicken": {Calories: 165, Protein: 31, Carbs: 0, Fiber: 0},
	"dal":     {Calories: 116, Protein: 6.8, Carbs: 20, Fiber: 7.5},
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	total, skipped := Aggregate(testReference, nil)
	assert.Equal(t, model.Nutrients{}, total)
	assert.Empty(t, skipped)
}

func TestAggregate_NormalizesNames(t *testing.T) {
	t.Parallel()

	total, skipped := Aggregate(testReference, []string{"  Rice ", "CHICKEN"})
	assert.Empty(t, skipped)
	assert.InDelta(t, 295, total.Calories, 1e-9)
	assert.InDelta(t, 33.7, total.Protein, 1e-9)
	assert.InDelta(t, 28, total.Carbs, 1e-9)
	assert.InDelta(t, 0.4, total.Fiber, 1e-9)
}

func TestAggregate_SkipsUnknown(t *testing.T) {
	t.Parallel()

	total, skipped := Aggregate(testReference, []string{"pizza", "dal", "unicorn steak"})
	assert.Equal(t, []string{"pizza", "unicorn steak"}, skipped)
	assert.Equal(t, model.Nutrients{Calories: 116, Protein: 6.8, Carbs: 20, Fiber: 7.5}, total)

	onlyUnknown, _ := Aggregate(testReference, []string{"pizza"})
	assert.Equal(t, model.Nutrients{}, onlyUnknown)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	t.Parallel()

	a, _ := Aggregate(testReference, []string{"rice", "chicken"})
	b, _ := Aggregate(testReference, []string{"chicken", "rice"})
	assert.Equal(t, a, b)
}

func TestSum(t *testing.T) {
	t.Parallel()

	meals := []model.Meal{
		{Nutrients: model.Nutrients{Calories: 100, Protein: 1, Carbs: 2, Fiber: 3}},
		{Nutrients: model.Nutrients{Calories: 50, Protein: 4, Carbs: 5, Fiber: 6}},
	}
	assert.Equal(t, model.Nutrients{Calories: 150, Protein: 5, Carbs: 7, Fiber: 9}, Sum(meals))
	assert.Equal(t, model.Nutrients{}, Sum(nil))
}
