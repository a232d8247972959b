package mocks

import (
	context "context"

	model "github.com/dtroode/nutrilog-server/internal/model"
	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// MealStore is a mock type for the MealStore type
type MealStore struct {
	mock.Mock
}

// Count provides a mock function with given fields: ctx
func (_m *MealStore) Count(ctx context.Context) (int, error) {
	ret := _m.Called(ctx)

	return ret.Int(0), ret.Error(1)
}

// Create provides a mock function with given fields: ctx, meal
func (_m *MealStore) Create(ctx context.Context, meal model.Meal) (model.Meal, error) {
	ret := _m.Called(ctx, meal)

	var r0 model.Meal
	if rf, ok := ret.Get(0).(func(context.Context, model.Meal) model.Meal); ok {
		r0 = rf(ctx, meal)
	} else {
		r0 = ret.Get(0).(model.Meal)
	}

	return r0, ret.Error(1)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MealStore) GetByID(ctx context.Context, id uuid.UUID) (model.Meal, error) {
	ret := _m.Called(ctx, id)

	return ret.Get(0).(model.Meal), ret.Error(1)
}

// GetByUserID provides a mock function with given fields: ctx, userID
func (_m *MealStore) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Meal, error) {
	ret := _m.Called(ctx, userID)

	var r0 []model.Meal
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Meal)
	}

	return r0, ret.Error(1)
}

// NewMealStore creates a new instance of MealStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMealStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MealStore {
	m := &MealStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
