package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// MockCredentialStore is a mock of ports.CredentialStore in the mockery expecter style
type MockCredentialStore struct {
	mock.Mock
}

type MockCredentialStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCredentialStore) EXPECT() *MockCredentialStore_Expecter {
	return &MockCredentialStore_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, key
func (_m *MockCredentialStore) Get(ctx context.Context, key string) (string, error) {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (string, error)); ok {
		return rf(ctx, key)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCredentialStore_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockCredentialStore_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
func (_e *MockCredentialStore_Expecter) Get(ctx interface{}, key interface{}) *MockCredentialStore_Get_Call {
	return &MockCredentialStore_Get_Call{Call: _e.mock.On("Get", ctx, key)}
}

func (_c *MockCredentialStore_Get_Call) Run(run func(ctx context.Context, key string)) *MockCredentialStore_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockCredentialStore_Get_Call) Return(_a0 string, _a1 error) *MockCredentialStore_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCredentialStore_Get_Call) RunAndReturn(run func(context.Context, string) (string, error)) *MockCredentialStore_Get_Call {
	_c.Call.Return(run)
	return _c
}

// Put provides a mock function with given fields: ctx, key, value
func (_m *MockCredentialStore) Put(ctx context.Context, key string, value string) error {
	ret := _m.Called(ctx, key, value)

	if len(ret) == 0 {
		panic("no return value specified for Put")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, key, value)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockCredentialStore_Put_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Put'
type MockCredentialStore_Put_Call struct {
	*mock.Call
}

// Put is a helper method to define mock.On call
func (_e *MockCredentialStore_Expecter) Put(ctx interface{}, key interface{}, value interface{}) *MockCredentialStore_Put_Call {
	return &MockCredentialStore_Put_Call{Call: _e.mock.On("Put", ctx, key, value)}
}

func (_c *MockCredentialStore_Put_Call) Run(run func(ctx context.Context, key string, value string)) *MockCredentialStore_Put_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockCredentialStore_Put_Call) Return(_a0 error) *MockCredentialStore_Put_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCredentialStore_Put_Call) RunAndReturn(run func(context.Context, string, string) error) *MockCredentialStore_Put_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, key
func (_m *MockCredentialStore) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockCredentialStore_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockCredentialStore_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
func (_e *MockCredentialStore_Expecter) Delete(ctx interface{}, key interface{}) *MockCredentialStore_Delete_Call {
	return &MockCredentialStore_Delete_Call{Call: _e.mock.On("Delete", ctx, key)}
}

func (_c *MockCredentialStore_Delete_Call) Run(run func(ctx context.Context, key string)) *MockCredentialStore_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockCredentialStore_Delete_Call) Return(_a0 error) *MockCredentialStore_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCredentialStore_Delete_Call) RunAndReturn(run func(context.Context, string) error) *MockCredentialStore_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCredentialStore creates a new instance of MockCredentialStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCredentialStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialStore {
	m := &MockCredentialStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
