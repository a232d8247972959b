package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Count(ctx context.Context) (int, error)
}

// Gender enumerates genders supported by the BMR formula.
type Gender string

const (
	// GenderMale selects the male Harris-Benedict coefficients.
	GenderMale Gender = "male"
	// GenderFemale selects the female Harris-Benedict coefficients.
	GenderFemale Gender = "female"
)

// User represents a registered user. Records are never mutated after creation.
type User struct {
	ID        uuid.UUID
	Name      string
	Age       int
	Weight    float64
	Height    float64
	Gender    Gender
	Goal      string
	BMR       float64
	CreatedAt time.Time
}

// RegisterUserParams contains parameters to register a user.
type RegisterUserParams struct {
	Name   string
	Age    int
	Weight float64
	Height float64
	Gender Gender
	Goal   string
}
