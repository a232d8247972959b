package apierror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Is(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{name: "same kind", err: NewErrUserNotFound("u1"), target: ErrUserNotFound, want: true},
		{name: "wrapped", err: fmt.Errorf("ctx: %w", NewErrNoFoodItems()), target: ErrNoFoodItems, want: true},
		{name: "different kind", err: NewErrInvalidFormat("x"), target: ErrInvalidMealType, want: false},
		{name: "plain error", err: errors.New("boom"), target: ErrValidation, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestConstructors_Messages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindUserNotFound, NewErrUserNotFound("x").Kind)
	assert.Equal(t, "age must be positive", NewErrValidation("age", "must be positive").Error())
	assert.Contains(t, NewErrInvalidGender("other").Error(), "other")
	assert.Equal(t, "request body exceeds 1024 bytes", NewErrPayloadTooLarge(1024).Error())
	assert.ErrorIs(t, NewErrPayloadTooLarge(1), ErrPayloadTooLarge)
}
