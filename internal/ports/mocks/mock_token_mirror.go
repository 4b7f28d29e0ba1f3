package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// MockTokenMirror is a mock of ports.TokenMirror in the mockery expecter style
type MockTokenMirror struct {
	mock.Mock
}

type MockTokenMirror_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenMirror) EXPECT() *MockTokenMirror_Expecter {
	return &MockTokenMirror_Expecter{mock: &_m.Mock}
}

// SetToken provides a mock function with given fields: token
func (_m *MockTokenMirror) SetToken(token string) {
	_m.Called(token)
}

// MockTokenMirror_SetToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetToken'
type MockTokenMirror_SetToken_Call struct {
	*mock.Call
}

// SetToken is a helper method to define mock.On call
func (_e *MockTokenMirror_Expecter) SetToken(token interface{}) *MockTokenMirror_SetToken_Call {
	return &MockTokenMirror_SetToken_Call{Call: _e.mock.On("SetToken", token)}
}

func (_c *MockTokenMirror_SetToken_Call) Run(run func(token string)) *MockTokenMirror_SetToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenMirror_SetToken_Call) Return() *MockTokenMirror_SetToken_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockTokenMirror_SetToken_Call) RunAndReturn(run func(string)) *MockTokenMirror_SetToken_Call {
	_c.Call.Return(run)
	return _c
}

// Token provides a mock function with given fields:
func (_m *MockTokenMirror) Token() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Token")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockTokenMirror_Token_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Token'
type MockTokenMirror_Token_Call struct {
	*mock.Call
}

// Token is a helper method to define mock.On call
func (_e *MockTokenMirror_Expecter) Token() *MockTokenMirror_Token_Call {
	return &MockTokenMirror_Token_Call{Call: _e.mock.On("Token")}
}

func (_c *MockTokenMirror_Token_Call) Run(run func()) *MockTokenMirror_Token_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockTokenMirror_Token_Call) Return(_a0 string) *MockTokenMirror_Token_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTokenMirror_Token_Call) RunAndReturn(run func() string) *MockTokenMirror_Token_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenMirror creates a new instance of MockTokenMirror. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenMirror(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenMirror {
	m := &MockTokenMirror{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
