package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrInvalidActivity    = errors.New("invalid activity")
	ErrInvalidSession     = errors.New("invalid session")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// Machine-readable codes sent by the backend in error bodies.
const (
	CodeScheduleConflict = "SCHEDULE_CONFLICT"
	CodeNoCapacity       = "NO_CAPACITY"
)

// NetworkError means no HTTP response was obtained.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: could not reach backend: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a response with a non-success status.
type APIError struct {
	Status  int
	Message string
	Code    string
	Details any
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// AuthError is a credential rejection surfaced by login.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("invalid credentials: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// EnrollmentConflictError reports that the activity overlaps, in day and
// time window, an enrollment the user already holds.
type EnrollmentConflictError struct {
	ActivityID ActivityID
	Err        error
}

func (e *EnrollmentConflictError) Error() string {
	return fmt.Sprintf("activity %d overlaps an existing enrollment: %v", e.ActivityID, e.Err)
}

func (e *EnrollmentConflictError) Unwrap() error {
	return e.Err
}

// CapacityExceededError reports that the backend found no free slot at
// enroll time.
type CapacityExceededError struct {
	ActivityID ActivityID
	Err        error
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("activity %d has no available slots: %v", e.ActivityID, e.Err)
}

func (e *CapacityExceededError) Unwrap() error {
	return e.Err
}

// APICode returns the backend code carried anywhere in err's chain.
func APICode(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// UserMessage renders err as text for the person at the terminal.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		conflictErr *EnrollmentConflictError
		capacityErr *CapacityExceededError
		authErr     *AuthError
		networkErr  *NetworkError
		apiErr      *APIError
	)
	switch {
	case errors.As(err, &conflictErr):
		return "This activity overlaps in day and time with another activity you are enrolled in."
	case errors.As(err, &capacityErr):
		return "This activity has no available slots left."
	case errors.As(err, &authErr):
		return "Invalid email or password."
	case errors.Is(err, ErrNotAuthenticated):
		return "You need to log in first (gym login)."
	case errors.As(err, &networkErr):
		return "Could not connect to the backend."
	case errors.As(err, &apiErr):
		return apiErr.Message
	default:
		return err.Error()
	}
}
