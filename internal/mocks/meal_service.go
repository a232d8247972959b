package mocks

import (
	context "context"

	model "github.com/dtroode/nutrilog-server/internal/model"
	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// MealService is a mock type for the MealService type
type MealService struct {
	mock.Mock
}

// ListMeals provides a mock function with given fields: ctx, userID, date
func (_m *MealService) ListMeals(ctx context.Context, userID uuid.UUID, date string) ([]model.Meal, error) {
	ret := _m.Called(ctx, userID, date)

	if len(ret) == 0 {
		panic("no return value specified for ListMeals")
	}

	var r0 []model.Meal
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Meal)
	}

	return r0, ret.Error(1)
}

// LogMeal provides a mock function with given fields: ctx, params
func (_m *MealService) LogMeal(ctx context.Context, params model.LogMealParams) (model.Meal, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for LogMeal")
	}

	return ret.Get(0).(model.Meal), ret.Error(1)
}

// LogMessage provides a mock function with given fields: ctx, message
func (_m *MealService) LogMessage(ctx context.Context, message string) (model.Meal, error) {
	ret := _m.Called(ctx, message)

	if len(ret) == 0 {
		panic("no return value specified for LogMessage")
	}

	return ret.Get(0).(model.Meal), ret.Error(1)
}

// NewMealService creates a new instance of MealService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMealService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MealService {
	m := &MealService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
