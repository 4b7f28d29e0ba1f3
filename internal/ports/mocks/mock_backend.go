package mocks

import (
	"context"

	domain "github.com/bnema/gymctl/internal/domain"
	ports "github.com/bnema/gymctl/internal/ports"
	mock "github.com/stretchr/testify/mock"
)

// MockBackend is a mock of ports.Backend in the mockery expecter style
type MockBackend struct {
	mock.Mock
}

type MockBackend_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBackend) EXPECT() *MockBackend_Expecter {
	return &MockBackend_Expecter{mock: &_m.Mock}
}

// Login provides a mock function with given fields: ctx, email, password
func (_m *MockBackend) Login(ctx context.Context, email string, password string) (ports.LoginResult, error) {
	ret := _m.Called(ctx, email, password)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 ports.LoginResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (ports.LoginResult, error)); ok {
		return rf(ctx, email, password)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) ports.LoginResult); ok {
		r0 = rf(ctx, email, password)
	} else {
		r0 = ret.Get(0).(ports.LoginResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, email, password)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBackend_Login_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Login'
type MockBackend_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call
func (_e *MockBackend_Expecter) Login(ctx interface{}, email interface{}, password interface{}) *MockBackend_Login_Call {
	return &MockBackend_Login_Call{Call: _e.mock.On("Login", ctx, email, password)}
}

func (_c *MockBackend_Login_Call) Run(run func(ctx context.Context, email string, password string)) *MockBackend_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockBackend_Login_Call) Return(_a0 ports.LoginResult, _a1 error) *MockBackend_Login_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBackend_Login_Call) RunAndReturn(run func(context.Context, string, string) (ports.LoginResult, error)) *MockBackend_Login_Call {
	_c.Call.Return(run)
	return _c
}

// Register provides a mock function with given fields: ctx, name, email, password
func (_m *MockBackend) Register(ctx context.Context, name string, email string, password string) (domain.UserIdentity, error) {
	ret := _m.Called(ctx, name, email, password)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 domain.UserIdentity
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) (domain.UserIdentity, error)); ok {
		return rf(ctx, name, email, password)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) domain.UserIdentity); ok {
		r0 = rf(ctx, name, email, password)
	} else {
		r0 = ret.Get(0).(domain.UserIdentity)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, string) error); ok {
		r1 = rf(ctx, name, email, password)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBackend_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockBackend_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
func (_e *MockBackend_Expecter) Register(ctx interface{}, name interface{}, email interface{}, password interface{}) *MockBackend_Register_Call {
	return &MockBackend_Register_Call{Call: _e.mock.On("Register", ctx, name, email, password)}
}

func (_c *MockBackend_Register_Call) Run(run func(ctx context.Context, name string, email string, password string)) *MockBackend_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(string))
	})
	return _c
}

func (_c *MockBackend_Register_Call) Return(_a0 domain.UserIdentity, _a1 error) *MockBackend_Register_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBackend_Register_Call) RunAndReturn(run func(context.Context, string, string, string) (domain.UserIdentity, error)) *MockBackend_Register_Call {
	_c.Call.Return(run)
	return _c
}

// ListActivities provides a mock function with given fields: ctx, filters
func (_m *MockBackend) ListActivities(ctx context.Context, filters domain.ActivityFilters) ([]domain.Activity, error) {
	ret := _m.Called(ctx, filters)

	if len(ret) == 0 {
		panic("no return value specified for ListActivities")
	}

	var r0 []domain.Activity
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ActivityFilters) ([]domain.Activity, error)); ok {
		return rf(ctx, filters)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.ActivityFilters) []domain.Activity); ok {
		r0 = rf(ctx, filters)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Activity)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.ActivityFilters) error); ok {
		r1 = rf(ctx, filters)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBackend_ListActivities_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListActivities'
type MockBackend_ListActivities_Call struct {
	*mock.Call
}

// ListActivities is a helper method to define mock.On call
func (_e *MockBackend_Expecter) ListActivities(ctx interface{}, filters interface{}) *MockBackend_ListActivities_Call {
	return &MockBackend_ListActivities_Call{Call: _e.mock.On("ListActivities", ctx, filters)}
}

func (_c *MockBackend_ListActivities_Call) Run(run func(ctx context.Context, filters domain.ActivityFilters)) *MockBackend_ListActivities_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ActivityFilters))
	})
	return _c
}

func (_c *MockBackend_ListActivities_Call) Return(_a0 []domain.Activity, _a1 error) *MockBackend_ListActivities_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBackend_ListActivities_Call) RunAndReturn(run func(context.Context, domain.ActivityFilters) ([]domain.Activity, error)) *MockBackend_ListActivities_Call {
	_c.Call.Return(run)
	return _c
}

// GetActivity provides a mock function with given fields: ctx, id
func (_m *MockBackend) GetActivity(ctx context.Context, id domain.ActivityID) (domain.Activity, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetActivity")
	}

	var r0 domain.Activity
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ActivityID) (domain.Activity, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.ActivityID) domain.Activity); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(domain.Activity)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.ActivityID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBackend_GetActivity_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetActivity'
type MockBackend_GetActivity_Call struct {
	*mock.Call
}

// GetActivity is a helper method to define mock.On call
func (_e *MockBackend_Expecter) GetActivity(ctx interface{}, id interface{}) *MockBackend_GetActivity_Call {
	return &MockBackend_GetActivity_Call{Call: _e.mock.On("GetActivity", ctx, id)}
}

func (_c *MockBackend_GetActivity_Call) Run(run func(ctx context.Context, id domain.ActivityID)) *MockBackend_GetActivity_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ActivityID))
	})
	return _c
}

func (_c *MockBackend_GetActivity_Call) Return(_a0 domain.Activity, _a1 error) *MockBackend_GetActivity_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBackend_GetActivity_Call) RunAndReturn(run func(context.Context, domain.ActivityID) (domain.Activity, error)) *MockBackend_GetActivity_Call {
	_c.Call.Return(run)
	return _c
}

// CreateActivity provides a mock function with given fields: ctx, input
func (_m *MockBackend) CreateActivity(ctx context.Context, input domain.ActivityInput) (domain.Activity, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateActivity")
	}

	var r0 domain.Activity
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ActivityInput) (domain.Activity, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.ActivityInput) domain.Activity); ok {
		r0 = rf(ctx, input)
	} else {
		r0 = ret.Get(0).(domain.Activity)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.ActivityInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBackend_CreateActivity_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateActivity'
type MockBackend_CreateActivity_Call struct {
	*mock.Call
}

// CreateActivity is a helper method to define mock.On call
func (_e *MockBackend_Expecter) CreateActivity(ctx interface{}, input interface{}) *MockBackend_CreateActivity_Call {
	return &MockBackend_CreateActivity_Call{Call: _e.mock.On("CreateActivity", ctx, input)}
}

func (_c *MockBackend_CreateActivity_Call) Run(run func(ctx context.Context, input domain.ActivityInput)) *MockBackend_CreateActivity_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ActivityInput))
	})
	return _c
}

func (_c *MockBackend_CreateActivity_Call) Return(_a0 domain.Activity, _a1 error) *MockBackend_CreateActivity_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBackend_CreateActivity_Call) RunAndReturn(run func(context.Context, domain.ActivityInput) (domain.Activity, error)) *MockBackend_CreateActivity_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateActivity provides a mock function with given fields: ctx, id, input
func (_m *MockBackend) UpdateActivity(ctx context.Context, id domain.ActivityID, input domain.ActivityInput) (domain.Activity, error) {
	ret := _m.Called(ctx, id, input)

	if len(ret) == 0 {
		panic("no return value specified for UpdateActivity")
	}

	var r0 domain.Activity
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ActivityID, domain.ActivityInput) (domain.Activity, error)); ok {
		return rf(ctx, id, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.ActivityID, domain.ActivityInput) domain.Activity); ok {
		r0 = rf(ctx, id, input)
	} else {
		r0 = ret.Get(0).(domain.Activity)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.ActivityID, domain.ActivityInput) error); ok {
		r1 = rf(ctx, id, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBackend_UpdateActivity_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateActivity'
type MockBackend_UpdateActivity_Call struct {
	*mock.Call
}

// UpdateActivity is a helper method to define mock.On call
func (_e *MockBackend_Expecter) UpdateActivity(ctx interface{}, id interface{}, input interface{}) *MockBackend_UpdateActivity_Call {
	return &MockBackend_UpdateActivity_Call{Call: _e.mock.On("UpdateActivity", ctx, id, input)}
}

func (_c *MockBackend_UpdateActivity_Call) Run(run func(ctx context.Context, id domain.ActivityID, input domain.ActivityInput)) *MockBackend_UpdateActivity_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ActivityID), args[2].(domain.ActivityInput))
	})
	return _c
}

func (_c *MockBackend_UpdateActivity_Call) Return(_a0 domain.Activity, _a1 error) *MockBackend_UpdateActivity_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBackend_UpdateActivity_Call) RunAndReturn(run func(context.Context, domain.ActivityID, domain.ActivityInput) (domain.Activity, error)) *MockBackend_UpdateActivity_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteActivity provides a mock function with given fields: ctx, id
func (_m *MockBackend) DeleteActivity(ctx context.Context, id domain.ActivityID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteActivity")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ActivityID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBackend_DeleteActivity_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteActivity'
type MockBackend_DeleteActivity_Call struct {
	*mock.Call
}

// DeleteActivity is a helper method to define mock.On call
func (_e *MockBackend_Expecter) DeleteActivity(ctx interface{}, id interface{}) *MockBackend_DeleteActivity_Call {
	return &MockBackend_DeleteActivity_Call{Call: _e.mock.On("DeleteActivity", ctx, id)}
}

func (_c *MockBackend_DeleteActivity_Call) Run(run func(ctx context.Context, id domain.ActivityID)) *MockBackend_DeleteActivity_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ActivityID))
	})
	return _c
}

func (_c *MockBackend_DeleteActivity_Call) Return(_a0 error) *MockBackend_DeleteActivity_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBackend_DeleteActivity_Call) RunAndReturn(run func(context.Context, domain.ActivityID) error) *MockBackend_DeleteActivity_Call {
	_c.Call.Return(run)
	return _c
}

// Enroll provides a mock function with given fields: ctx, id
func (_m *MockBackend) Enroll(ctx context.Context, id domain.ActivityID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Enroll")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ActivityID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBackend_Enroll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Enroll'
type MockBackend_Enroll_Call struct {
	*mock.Call
}

// Enroll is a helper method to define mock.On call
func (_e *MockBackend_Expecter) Enroll(ctx interface{}, id interface{}) *MockBackend_Enroll_Call {
	return &MockBackend_Enroll_Call{Call: _e.mock.On("Enroll", ctx, id)}
}

func (_c *MockBackend_Enroll_Call) Run(run func(ctx context.Context, id domain.ActivityID)) *MockBackend_Enroll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ActivityID))
	})
	return _c
}

func (_c *MockBackend_Enroll_Call) Return(_a0 error) *MockBackend_Enroll_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBackend_Enroll_Call) RunAndReturn(run func(context.Context, domain.ActivityID) error) *MockBackend_Enroll_Call {
	_c.Call.Return(run)
	return _c
}

// Unenroll provides a mock function with given fields: ctx, id
func (_m *MockBackend) Unenroll(ctx context.Context, id domain.ActivityID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Unenroll")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ActivityID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBackend_Unenroll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Unenroll'
type MockBackend_Unenroll_Call struct {
	*mock.Call
}

// Unenroll is a helper method to define mock.On call
func (_e *MockBackend_Expecter) Unenroll(ctx interface{}, id interface{}) *MockBackend_Unenroll_Call {
	return &MockBackend_Unenroll_Call{Call: _e.mock.On("Unenroll", ctx, id)}
}

func (_c *MockBackend_Unenroll_Call) Run(run func(ctx context.Context, id domain.ActivityID)) *MockBackend_Unenroll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ActivityID))
	})
	return _c
}

func (_c *MockBackend_Unenroll_Call) Return(_a0 error) *MockBackend_Unenroll_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBackend_Unenroll_Call) RunAndReturn(run func(context.Context, domain.ActivityID) error) *MockBackend_Unenroll_Call {
	_c.Call.Return(run)
	return _c
}

// MyActivities provides a mock function with given fields: ctx
func (_m *MockBackend) MyActivities(ctx context.Context) ([]domain.MemberActivity, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for MyActivities")
	}

	var r0 []domain.MemberActivity
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.MemberActivity, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []domain.MemberActivity); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.MemberActivity)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBackend_MyActivities_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MyActivities'
type MockBackend_MyActivities_Call struct {
	*mock.Call
}

// MyActivities is a helper method to define mock.On call
func (_e *MockBackend_Expecter) MyActivities(ctx interface{}) *MockBackend_MyActivities_Call {
	return &MockBackend_MyActivities_Call{Call: _e.mock.On("MyActivities", ctx)}
}

func (_c *MockBackend_MyActivities_Call) Run(run func(ctx context.Context)) *MockBackend_MyActivities_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockBackend_MyActivities_Call) Return(_a0 []domain.MemberActivity, _a1 error) *MockBackend_MyActivities_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBackend_MyActivities_Call) RunAndReturn(run func(context.Context) ([]domain.MemberActivity, error)) *MockBackend_MyActivities_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockBackend creates a new instance of MockBackend. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBackend {
	m := &MockBackend{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
