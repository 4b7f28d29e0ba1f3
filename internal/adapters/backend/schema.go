package backend

import "github.com/bnema/gymctl/internal/domain"

type userSchema struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginSchema struct {
	Token string      `json:"token"`
	User  *userSchema `json:"user"`
}

type credentialsSchema struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type activitySchema struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	DayOfWeek      int    `json:"day_of_week"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Capacity       int    `json:"capacity"`
	Instructor     string `json:"instructor"`
	ImageURL       string `json:"image_url"`
	IsActive       bool   `json:"is_active"`
	AvailableSlots *int   `json:"available_slots"`
	EnrolledCount  *int   `json:"enrolled_count"`
}

type activityInputSchema struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Capacity    int    `json:"capacity"`
	Instructor  string `json:"instructor"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
}

type memberActivitySchema struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Instructor  string `json:"instructor"`
}

func fromUserSchema(user userSchema) domain.UserIdentity {
	return domain.UserIdentity{
		ID:    domain.UserID(user.ID),
		Name:  user.Name,
		Email: user.Email,
		Role:  domain.ParseRole(user.Role),
	}
}

// fromActivitySchema treats a missing available_slots as a fully free
// activity; the backend does not say what an omission means.
func fromActivitySchema(activity activitySchema) domain.Activity {
	available := activity.AvailableSlots
	if available == nil {
		slots := activity.Capacity
		available = &slots
	}

	return domain.Activity{
		ID:             domain.ActivityID(activity.ID),
		Title:          activity.Title,
		Description:    activity.Description,
		Category:       activity.Category,
		DayOfWeek:      activity.DayOfWeek,
		StartTime:      activity.StartTime,
		EndTime:        activity.EndTime,
		Capacity:       activity.Capacity,
		Instructor:     activity.Instructor,
		ImageURL:       activity.ImageURL,
		IsActive:       activity.IsActive,
		AvailableSlots: available,
		EnrolledCount:  activity.EnrolledCount,
	}
}

func toActivityInputSchema(input domain.ActivityInput) activityInputSchema {
	return activityInputSchema{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		DayOfWeek:   input.DayOfWeek,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Capacity:    input.Capacity,
		Instructor:  input.Instructor,
		ImageURL:    input.ImageURL,
		IsActive:    input.Active(),
	}
}

func fromMemberActivitySchema(activity memberActivitySchema) domain.MemberActivity {
	return domain.MemberActivity{
		ID:          domain.ActivityID(activity.ID),
		Title:       activity.Title,
		Description: activity.Description,
		Category:    activity.Category,
		DayOfWeek:   activity.DayOfWeek,
		StartTime:   activity.StartTime,
		EndTime:     activity.EndTime,
		Instructor:  activity.Instructor,
	}
}
