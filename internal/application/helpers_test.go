package application

import (
	"sync"

	"github.com/bnema/gymctl/internal/domain"
)

type fakeMirror struct {
	mu    sync.Mutex
	token string
	sets  []string
}

func (m *fakeMirror) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.sets = append(m.sets, token)
}

func (m *fakeMirror) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func intPtr(v int) *int {
	return &v
}

func memberIdentity() domain.UserIdentity {
	return domain.UserIdentity{ID: 7, Name: "Ana", Email: "ana@gym.test", Role: domain.RoleMember}
}

func adminIdentity() domain.UserIdentity {
	return domain.UserIdentity{ID: 1, Name: "Root", Email: "admin@gym.test", Role: domain.RoleAdmin}
}

func yogaActivity() domain.Activity {
	return domain.Activity{
		ID:             42,
		Title:          "Yoga",
		Category:       "mind",
		DayOfWeek:      1,
		StartTime:      "09:00",
		EndTime:        "10:00",
		Capacity:       10,
		Instructor:     "Lu",
		IsActive:       true,
		AvailableSlots: intPtr(5),
	}
}

func spinActivity() domain.Activity {
	return domain.Activity{
		ID:             43,
		Title:          "Spin",
		Category:       "cardio",
		DayOfWeek:      2,
		StartTime:      "18:00",
		EndTime:        "19:00",
		Capacity:       20,
		Instructor:     "Max",
		IsActive:       true,
		AvailableSlots: intPtr(20),
	}
}

func validInput() domain.ActivityInput {
	return domain.ActivityInput{
		Title:      "Pilates",
		Category:   "mind",
		DayOfWeek:  3,
		StartTime:  "08:00",
		EndTime:    "09:00",
		Capacity:   12,
		Instructor: "Eva",
	}
}
