package cmd

import (
	"encoding/json"
	"time"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/spf13/cobra"
)

type activityView struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Category       string `json:"category"`
	DayOfWeek      int    `json:"day_of_week"`
	Day            string `json:"day"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Capacity       int    `json:"capacity"`
	AvailableSlots int    `json:"available_slots"`
	EnrolledCount  *int   `json:"enrolled_count,omitempty"`
	Instructor     string `json:"instructor"`
	ImageURL       string `json:"image_url,omitempty"`
	IsActive       bool   `json:"is_active"`
	Enrolled       bool   `json:"enrolled"`
}

type rosterEntryView struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	DayOfWeek  int    `json:"day_of_week"`
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Instructor string `json:"instructor"`
}

func (a *app) activityView(activity domain.Activity) activityView {
	return activityView{
		ID:             int64(activity.ID),
		Title:          activity.Title,
		Description:    activity.Description,
		Category:       activity.Category,
		DayOfWeek:      activity.DayOfWeek,
		Day:            activity.Weekday().String(),
		StartTime:      activity.StartTime,
		EndTime:        activity.EndTime,
		Capacity:       activity.Capacity,
		AvailableSlots: activity.Slots(),
		EnrolledCount:  activity.EnrolledCount,
		Instructor:     activity.Instructor,
		ImageURL:       activity.ImageURL,
		IsActive:       activity.IsActive,
		Enrolled:       a.sessions.IsAuthenticated() && a.enrollment.IsEnrolled(activity.ID),
	}
}

func rosterView(entry domain.MemberActivity) rosterEntryView {
	return rosterEntryView{
		ID:         int64(entry.ID),
		Title:      entry.Title,
		Category:   entry.Category,
		DayOfWeek:  entry.DayOfWeek,
		Day:        time.Weekday(entry.DayOfWeek).String(),
		StartTime:  entry.StartTime,
		EndTime:    entry.EndTime,
		Instructor: entry.Instructor,
	}
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
