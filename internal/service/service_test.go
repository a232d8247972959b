package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/nutrilog-server/internal/food"
	"github.com/dtroode/nutrilog-server/internal/model"
	"github.com/dtroode/nutrilog-server/internal/repository/memory"
	"github.com/dtroode/nutrilog-server/internal/testutil"
)

// sequenceIDs issues deterministic identifiers for assertions.
type sequenceIDs struct {
	mu   sync.Mutex
	next byte
}

func (g *sequenceIDs) NewID() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	var id uuid.UUID
	id[15] = g.next
	return id
}

type fixture struct {
	users  *memory.UserRepository
	meals  *memory.MealRepository
	user   *User
	meal   *Meal
	status *Status
	health *Health
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	users := memory.NewUserRepository()
	meals := memory.NewMealRepository()
	foods := food.Default()
	ids := &sequenceIDs{}
	log := testutil.MakeNoopLogger()

	userSvc := NewUser(users, ids, nil, log, "Webhook User")
	userSvc.now = func() time.Time { return now }
	mealSvc := NewMeal(users, meals, foods, userSvc, ids, nil, log)
	mealSvc.now = func() time.Time { return now }

	return &fixture{
		users:  users,
		meals:  meals,
		user:   userSvc,
		meal:   mealSvc,
		status: NewStatus(users, meals, log),
		health: NewHealth(users, meals, foods),
	}
}

func (f *fixture) register(t *testing.T) model.User {
	t.Helper()
	u, err := f.user.Register(context.Background(), model.RegisterUserParams{
		Name:   "Asha",
		Age:    25,
		Weight: 70,
		Height: 175,
		Gender: model.GenderMale,
		Goal:   "weight loss",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return u
}
