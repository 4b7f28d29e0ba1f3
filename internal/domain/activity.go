package domain

import (
	"fmt"
	"strings"
	"time"
)

type ActivityID int64

type Activity struct {
	ID          ActivityID
	Title       string
	Description string
	Category    string
	DayOfWeek   int
	StartTime   string
	EndTime     string
	Capacity    int
	Instructor  string
	ImageURL    string
	IsActive    bool
	// AvailableSlots and EnrolledCount are nil when the backend did not
	// report them.
	AvailableSlots *int
	EnrolledCount  *int
}

// Slots returns the free places, treating an unreported count as Capacity.
func (a Activity) Slots() int {
	if a.AvailableSlots != nil {
		return *a.AvailableSlots
	}
	return a.Capacity
}

func (a Activity) IsFull() bool {
	return a.Slots() <= 0
}

func (a Activity) Weekday() time.Weekday {
	return time.Weekday(a.DayOfWeek)
}

// MemberActivity is the lightweight summary listed in a user's roster.
type MemberActivity struct {
	ID          ActivityID
	Title       string
	Description string
	Category    string
	DayOfWeek   int
	StartTime   string
	EndTime     string
	Instructor  string
}

type ActivityFilters struct {
	Query    string
	Category string
	Day      *int
}

// ActivityInput is the admin payload for creating or replacing an activity.
type ActivityInput struct {
	Title       string
	Description string
	Category    string
	DayOfWeek   int
	StartTime   string
	EndTime     string
	Capacity    int
	Instructor  string
	ImageURL    string
	IsActive    *bool
}

func (in ActivityInput) Active() bool {
	if in.IsActive == nil {
		return true
	}
	return *in.IsActive
}

func (in ActivityInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidActivity)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidActivity)
	}
	if strings.TrimSpace(in.Instructor) == "" {
		return fmt.Errorf("%w: instructor is required", ErrInvalidActivity)
	}
	if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return fmt.Errorf("%w: day of week %d out of range 0..6", ErrInvalidActivity, in.DayOfWeek)
	}
	if in.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrInvalidActivity)
	}

	start, err := parseClock(in.StartTime)
	if err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidActivity, err)
	}
	end, err := parseClock(in.EndTime)
	if err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidActivity, err)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidActivity)
	}

	return nil
}

// parseClock accepts HH:MM and the HH:MM:SS form the API stores.
func parseClock(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not HH:MM", raw)
}
