// Package food provides the food reference table and the sources it is loaded from.
package food

import (
	"sync"

	"github.com/dtroode/nutrilog-server/internal/model"
)

var _ model.FoodReference = (*Table)(nil)

// Table is an in-memory food reference keyed by normalized name.
// It is safe for concurrent use; Replace swaps the whole content at once.
type Table struct {
	mu    sync.RWMutex
	foods map[string]model.Food
}

// NewTable creates a Table holding foods.
func NewTable(foods []model.Food) *Table {
	t := &Table{}
	t.Replace(foods)
	return t
}

// Lookup returns the entry for name. The name is normalized first.
func (t *Table) Lookup(name string) (model.Food, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	f, ok := t.foods[model.NormalizeFoodName(name)]
	return f, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.foods)
}

// Replace discards the current entries and installs foods.
// On duplicate names the last entry wins.
func (t *Table) Replace(foods []model.Food) {
	m := make(map[string]model.Food, len(foods))
	for _, f := range foods {
		key := model.NormalizeFoodName(f.Name)
		f.Name = key
		m[key] = f
	}

	t.mu.Lock()
	t.foods = m
	t.mu.Unlock()
}
