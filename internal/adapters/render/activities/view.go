package activities

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const slotsBarWidth = 20

type RenderOptions struct {
	Now time.Time
	// IsEnrolled marks roster membership in listings. Nil hides markers.
	IsEnrolled func(domain.ActivityID) bool
	// Admin adds the management commands to detail views.
	Admin      bool
	FetchedAt  time.Time
	StaleAfter time.Duration
}

// Dashboard is the home screen: who is signed in, the catalogue and the
// user's roster.
type Dashboard struct {
	User          *domain.UserIdentity
	Activities    []domain.Activity
	ActivitiesErr string
	Roster        []domain.MemberActivity
}

func listView(activities []domain.Activity, opts RenderOptions, s styles) string {
	header := fmt.Sprintf("activities: %d", len(activities))
	if isStale(opts) {
		header += " " + s.warning.Render("[stale]")
	}

	lines := []string{
		s.title.Render("Gym Activities"),
		s.header.Render(header),
	}

	if len(activities) == 0 {
		lines = append(lines, s.empty.Render("No activities match."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, activity := range activities {
		lines = append(lines, s.section.Render(activitySummary(activity, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func activitySummary(activity domain.Activity, opts RenderOptions, s styles) string {
	title := s.activity.Render(fmt.Sprintf("#%d %s", activity.ID, activity.Title))
	if activity.Category != "" {
		title += " " + s.label.Render("["+activity.Category+"]")
	}
	for _, marker := range markers(activity, opts, s) {
		title += " " + marker
	}

	parts := []string{
		title,
		s.detail.Render(scheduleLine(activity.DayOfWeek, activity.StartTime, activity.EndTime, activity.Instructor)),
		slotsLine(activity, s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func markers(activity domain.Activity, opts RenderOptions, s styles) []string {
	result := make([]string, 0, 3)
	if opts.IsEnrolled != nil && opts.IsEnrolled(activity.ID) {
		result = append(result, s.enrolled.Render("[enrolled]"))
	}
	if !activity.IsActive {
		result = append(result, s.inactive.Render("[inactive]"))
	}
	if activity.IsFull() {
		result = append(result, s.warning.Render("[full]"))
	}
	return result
}

func detailView(activity domain.Activity, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("#%d %s", activity.ID, activity.Title)),
	}
	if m := markers(activity, opts, s); len(m) > 0 {
		lines = append(lines, strings.Join(m, " "))
	}
	if description := strings.TrimSpace(activity.Description); description != "" {
		lines = append(lines, s.section.Render(s.detail.Render(description)))
	}

	fields := [][2]string{
		{"category", orDash(activity.Category)},
		{"schedule", scheduleLine(activity.DayOfWeek, activity.StartTime, activity.EndTime, "")},
		{"instructor", orDash(activity.Instructor)},
		{"capacity", fmt.Sprintf("%d", activity.Capacity)},
	}
	if activity.EnrolledCount != nil {
		fields = append(fields, [2]string{"enrolled", fmt.Sprintf("%d", *activity.EnrolledCount)})
	}
	if activity.ImageURL != "" {
		fields = append(fields, [2]string{"image", activity.ImageURL})
	}

	block := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		block = append(block, s.label.Render(fmt.Sprintf("%-11s", f[0]+":"))+s.detail.Render(f[1]))
	}
	block = append(block, s.label.Render(fmt.Sprintf("%-11s", "slots:"))+slotsLine(activity, s))
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, block...)))

	lines = append(lines, s.section.Render(s.header.Render(strings.Join(hints(activity, opts), "\n"))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func hints(activity domain.Activity, opts RenderOptions) []string {
	result := make([]string, 0, 3)
	switch {
	case opts.IsEnrolled != nil && opts.IsEnrolled(activity.ID):
		result = append(result, fmt.Sprintf("gym unenroll %d", activity.ID))
	case activity.IsActive && !activity.IsFull():
		result = append(result, fmt.Sprintf("gym enroll %d", activity.ID))
	}
	if opts.Admin {
		result = append(result,
			fmt.Sprintf("gym activities update %d", activity.ID),
			fmt.Sprintf("gym activities delete %d", activity.ID),
		)
	}
	return result
}

func rosterView(roster []domain.MemberActivity, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("My Activities"),
		s.header.Render(fmt.Sprintf("enrolled: %d", len(roster))),
	}

	if len(roster) == 0 {
		lines = append(lines, s.empty.Render("You are not enrolled in any activity yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range sortedRoster(roster) {
		title := s.activity.Render(fmt.Sprintf("#%d %s", entry.ID, entry.Title))
		if entry.Category != "" {
			title += " " + s.label.Render("["+entry.Category+"]")
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			s.detail.Render(scheduleLine(entry.DayOfWeek, entry.StartTime, entry.EndTime, entry.Instructor)),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func dashboardView(dashboard Dashboard, opts RenderOptions, s styles) string {
	var greeting string
	if dashboard.User != nil {
		greeting = fmt.Sprintf("Signed in as %s <%s> (%s)", dashboard.User.Name, dashboard.User.Email, dashboard.User.Role)
	} else {
		greeting = "Not signed in. Run gym login to enroll in activities."
	}

	sections := []string{s.header.Render(greeting)}

	if dashboard.ActivitiesErr != "" {
		sections = append(sections, s.section.Render(s.warning.Render("Activities unavailable: "+dashboard.ActivitiesErr)))
	} else {
		sections = append(sections, s.section.Render(listView(dashboard.Activities, opts, s)))
	}

	if dashboard.User != nil {
		sections = append(sections, s.section.Render(rosterView(dashboard.Roster, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func sortedRoster(roster []domain.MemberActivity) []domain.MemberActivity {
	sorted := append([]domain.MemberActivity(nil), roster...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DayOfWeek != sorted[j].DayOfWeek {
			return sorted[i].DayOfWeek < sorted[j].DayOfWeek
		}
		return formatClock(sorted[i].StartTime) < formatClock(sorted[j].StartTime)
	})
	return sorted
}

func scheduleLine(day int, start, end, instructor string) string {
	line := fmt.Sprintf("%s %s-%s", dayLabel(day), formatClock(start), formatClock(end))
	if instructor != "" {
		line += " with " + instructor
	}
	return line
}

func dayLabel(day int) string {
	if day < 0 || day > 6 {
		return fmt.Sprintf("day %d", day)
	}
	return time.Weekday(day).String()
}

// formatClock trims backend times such as 09:00:00 to 09:00.
func formatClock(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 5 && raw[2] == ':' {
		return raw[:5]
	}
	if raw == "" {
		return "--:--"
	}
	return raw
}

func slotsLine(activity domain.Activity, s styles) string {
	available := activity.Slots()
	bar := renderSlotsBar(available, activity.Capacity, slotsBarWidth, s)

	ratio := 0.0
	if activity.Capacity > 0 {
		ratio = float64(available) / float64(activity.Capacity) * 100
	}
	countStyle := lipgloss.NewStyle().Foreground(interpolateColor(ratio, 0, 100))
	count := countStyle.Render(fmt.Sprintf("%d/%d slots left", available, activity.Capacity))

	return lipgloss.JoinHorizontal(lipgloss.Top, bar, " ", count)
}

func renderSlotsBar(available, capacity, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if capacity > 0 {
		filled = int(math.Round(float64(width) * float64(available) / float64(capacity)))
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

// interpolateColor maps value onto the 240..255 greyscale ramp.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	code := int(240.0 + 15.0*normalized)
	return lipgloss.Color(fmt.Sprintf("%d", code))
}

func isStale(opts RenderOptions) bool {
	if opts.Now.IsZero() || opts.FetchedAt.IsZero() || opts.StaleAfter <= 0 {
		return false
	}
	return opts.Now.Sub(opts.FetchedAt) > opts.StaleAfter
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
