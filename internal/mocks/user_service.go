package mocks

import (
	context "context"

	model "github.com/dtroode/nutrilog-server/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// UserService is a mock type for the UserService type
type UserService struct {
	mock.Mock
}

// Register provides a mock function with given fields: ctx, params
func (_m *UserService) Register(ctx context.Context, params model.RegisterUserParams) (model.User, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 model.User
	if rf, ok := ret.Get(0).(func(context.Context, model.RegisterUserParams) model.User); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.User)
	}

	return r0, ret.Error(1)
}

// NewUserService creates a new instance of UserService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	m := &UserService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
