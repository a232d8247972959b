package mocks

import (
	context "context"

	model "github.com/dtroode/nutrilog-server/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// HealthService is a mock type for the HealthService type
type HealthService struct {
	mock.Mock
}

// Stats provides a mock function with given fields: ctx
func (_m *HealthService) Stats(ctx context.Context) (model.Stats, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Stats")
	}

	return ret.Get(0).(model.Stats), ret.Error(1)
}

// NewHealthService creates a new instance of HealthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewHealthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *HealthService {
	m := &HealthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
