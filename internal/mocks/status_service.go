package mocks

import (
	context "context"

	model "github.com/dtroode/nutrilog-server/internal/model"
	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// StatusService is a mock type for the StatusService type
type StatusService struct {
	mock.Mock
}

// GetStatus provides a mock function with given fields: ctx, userID
func (_m *StatusService) GetStatus(ctx context.Context, userID uuid.UUID) (model.Status, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetStatus")
	}

	return ret.Get(0).(model.Status), ret.Error(1)
}

// NewStatusService creates a new instance of StatusService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewStatusService(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatusService {
	m := &StatusService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
