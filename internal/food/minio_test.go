package food

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/nutrilog-server/internal/mocks"
	"github.com/dtroode/nutrilog-server/internal/model"
)

func TestMinioSource_Load(t *testing.T) {
	t.Parallel()

	storage := mocks.NewObjectReader(t)
	storage.On("Exists", mock.Anything, "reference/foods.csv").Return(true, nil)
	storage.On("Download", mock.Anything, "reference/foods.csv").
		Return(io.NopCloser(strings.NewReader("name,calories,protein,carbs,fiber\nrice,130,2.7,28,0.4\n")), nil)

	foods, err := NewMinioSource(storage).Load(context.Background(), "reference/foods.csv")
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "rice", foods[0].Name)
}

func TestMinioSource_Load_Missing(t *testing.T) {
	t.Parallel()

	storage := mocks.NewObjectReader(t)
	storage.On("Exists", mock.Anything, "foods.json").Return(false, nil)

	_, err := NewMinioSource(storage).Load(context.Background(), "foods.json")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestMinioSource_Load_Errors(t *testing.T) {
	t.Parallel()

	t.Run("exists fails", func(t *testing.T) {
		storage := mocks.NewObjectReader(t)
		storage.On("Exists", mock.Anything, "foods.json").Return(false, errors.New("boom"))

		_, err := NewMinioSource(storage).Load(context.Background(), "foods.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check food reference object")
	})

	t.Run("download fails", func(t *testing.T) {
		storage := mocks.NewObjectReader(t)
		storage.On("Exists", mock.Anything, "foods.json").Return(true, nil)
		storage.On("Download", mock.Anything, "foods.json").Return(nil, errors.New("boom"))

		_, err := NewMinioSource(storage).Load(context.Background(), "foods.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to download food reference")
	})

	t.Run("bad content", func(t *testing.T) {
		storage := mocks.NewObjectReader(t)
		storage.On("Exists", mock.Anything, "foods.json").Return(true, nil)
		storage.On("Download", mock.Anything, "foods.json").Return(io.NopCloser(strings.NewReader("{")), nil)

		_, err := NewMinioSource(storage).Load(context.Background(), "foods.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode food reference")
	})
}
