package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/nutrilog-server/internal/model"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository()

	user := model.User{ID: uuid.New(), Name: "Asha", Age: 30, Weight: 60, Height: 165, Gender: model.GenderFemale, Goal: "maintain", BMR: 1383.68, CreatedAt: time.Now()}
	saved, err := repo.Create(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user, saved)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	_, err := NewUserRepository().GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository()
	id := uuid.New()

	_, err := repo.Create(ctx, model.User{ID: id, Name: "first"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.User{ID: id, Name: "second"})
	assert.ErrorIs(t, err, model.ErrAlreadyExists)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)
}

func TestUserRepository_ConcurrentCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, model.User{ID: uuid.New()})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}
