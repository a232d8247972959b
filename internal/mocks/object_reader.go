package mocks

import (
	context "context"
	io "io"

	mock "github.com/stretchr/testify/mock"
)

// ObjectReader is a mock type for the ObjectReader type
type ObjectReader struct {
	mock.Mock
}

// Download provides a mock function with given fields: ctx, key
func (_m *ObjectReader) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	ret := _m.Called(ctx, key)

	var r0 io.ReadCloser
	if rf, ok := ret.Get(0).(func(context.Context, string) io.ReadCloser); ok {
		r0 = rf(ctx, key)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(io.ReadCloser)
	}

	return r0, ret.Error(1)
}

// Exists provides a mock function with given fields: ctx, key
func (_m *ObjectReader) Exists(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)

	return ret.Bool(0), ret.Error(1)
}

// NewObjectReader creates a new instance of ObjectReader. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewObjectReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *ObjectReader {
	m := &ObjectReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
