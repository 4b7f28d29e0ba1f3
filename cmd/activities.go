package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/gymctl/internal/application"
	"github.com/bnema/gymctl/internal/domain"
	"github.com/bradenaw/juniper/xslices"
	"github.com/spf13/cobra"
)

func newActivitiesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activities",
		Aliases: []string{"activity"},
		Short:   "Browse and manage the activity catalogue",
	}

	cmd.AddCommand(
		newActivitiesListCmd(app),
		newActivitiesShowCmd(app),
		newActivitiesCreateCmd(app),
		newActivitiesUpdateCmd(app),
		newActivitiesDeleteCmd(app),
	)

	return cmd
}

func newActivitiesListCmd(app *app) *cobra.Command {
	var query string
	var category string
	var day string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List activities, optionally filtered",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters := domain.ActivityFilters{
				Query:    strings.TrimSpace(query),
				Category: strings.TrimSpace(category),
			}
			if day != "" {
				parsed, err := parseDay(day)
				if err != nil {
					return err
				}
				filters.Day = &parsed
			}

			ctx := cmd.Context()
			if err := app.start(ctx, application.BootstrapOptions{}); err != nil {
				app.logger.Warn().Err(err).Msg("roster unavailable, enrollment markers may be missing")
			}

			fetch := func(ctx context.Context) error {
				_, err := app.cache.List(ctx, filters)
				return err
			}
			if err := runFetch(cmd, "Fetching activities...", asJSON, fetch); err != nil {
				return err
			}

			activities := app.cache.Activities()
			if asJSON {
				return writeJSON(cmd, xslices.Map(activities, app.activityView))
			}

			rendered, err := app.render.list(activities, app.renderOptions())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Match title, description or instructor")
	cmd.Flags().StringVar(&category, "category", "", "Only this category")
	cmd.Flags().StringVar(&day, "day", "", "Only this weekday (0-6 from Sunday, or a name such as mon)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newActivitiesShowCmd(app *app) *cobra.Command {
	var refresh bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseActivityID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := app.start(ctx, application.BootstrapOptions{}); err != nil {
				app.logger.Warn().Err(err).Msg("roster unavailable, enrollment marker may be missing")
			}

			activity, err := app.cache.Get(ctx, id, application.GetOptions{Force: refresh})
			if err != nil {
				return err
			}

			return writeActivity(cmd, app, activity, asJSON)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Bypass the local cache")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newActivitiesCreateCmd(app *app) *cobra.Command {
	var flags activityFlags

	cmd := &cobra.Command{
		Use:         "create",
		Short:       "Add an activity to the catalogue (admin)",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{adminAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, err := app.currentUser(ctx); err != nil {
				return err
			}

			var input domain.ActivityInput
			if err := flags.apply(cmd, &input); err != nil {
				return err
			}

			created, err := app.cache.Create(ctx, input)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Created activity #%d.\n", created.ID); err != nil {
				return err
			}
			return writeActivity(cmd, app, created, false)
		},
	}

	flags.bind(cmd)
	for _, name := range []string{"title", "category", "day", "start", "end", "capacity", "instructor"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newActivitiesUpdateCmd(app *app) *cobra.Command {
	var flags activityFlags

	cmd := &cobra.Command{
		Use:         "update <id>",
		Short:       "Change an activity; unset flags keep their current value (admin)",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{adminAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseActivityID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if _, err := app.currentUser(ctx); err != nil {
				return err
			}

			current, err := app.cache.Get(ctx, id, application.GetOptions{Force: true})
			if err != nil {
				return err
			}

			input := inputFromActivity(current)
			if err := flags.apply(cmd, &input); err != nil {
				return err
			}

			updated, err := app.cache.Update(ctx, id, input)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Updated activity #%d.\n", updated.ID); err != nil {
				return err
			}
			return writeActivity(cmd, app, updated, false)
		},
	}

	flags.bind(cmd)

	return cmd
}

func newActivitiesDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:         "delete <id>",
		Aliases:     []string{"rm"},
		Short:       "Remove an activity from the catalogue (admin)",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{adminAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseActivityID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if _, err := app.currentUser(ctx); err != nil {
				return err
			}

			if err := app.cache.Delete(ctx, id); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted activity #%d.\n", id)
			return err
		},
	}
}

// activityFlags collects the admin payload. Only flags given on the command
// line are applied, so update can leave the rest untouched.
type activityFlags struct {
	title       string
	description string
	category    string
	day         string
	start       string
	end         string
	capacity    int
	instructor  string
	imageURL    string
	active      bool
}

func (f *activityFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Activity title")
	cmd.Flags().StringVar(&f.description, "description", "", "Free text description")
	cmd.Flags().StringVar(&f.category, "category", "", "Category, e.g. mind or cardio")
	cmd.Flags().StringVar(&f.day, "day", "", "Weekday (0-6 from Sunday, or a name such as mon)")
	cmd.Flags().StringVar(&f.start, "start", "", "Start time, HH:MM")
	cmd.Flags().StringVar(&f.end, "end", "", "End time, HH:MM")
	cmd.Flags().IntVar(&f.capacity, "capacity", 0, "Number of places")
	cmd.Flags().StringVar(&f.instructor, "instructor", "", "Instructor name")
	cmd.Flags().StringVar(&f.imageURL, "image-url", "", "Image URL")
	cmd.Flags().BoolVar(&f.active, "active", true, "Whether members can see and join the activity")
}

func (f *activityFlags) apply(cmd *cobra.Command, input *domain.ActivityInput) error {
	flags := cmd.Flags()

	if flags.Changed("title") {
		input.Title = strings.TrimSpace(f.title)
	}
	if flags.Changed("description") {
		input.Description = f.description
	}
	if flags.Changed("category") {
		input.Category = strings.TrimSpace(f.category)
	}
	if flags.Changed("day") {
		day, err := parseDay(f.day)
		if err != nil {
			return err
		}
		input.DayOfWeek = day
	}
	if flags.Changed("start") {
		input.StartTime = strings.TrimSpace(f.start)
	}
	if flags.Changed("end") {
		input.EndTime = strings.TrimSpace(f.end)
	}
	if flags.Changed("capacity") {
		input.Capacity = f.capacity
	}
	if flags.Changed("instructor") {
		input.Instructor = strings.TrimSpace(f.instructor)
	}
	if flags.Changed("image-url") {
		input.ImageURL = strings.TrimSpace(f.imageURL)
	}
	if flags.Changed("active") {
		active := f.active
		input.IsActive = &active
	}

	return nil
}

func inputFromActivity(activity domain.Activity) domain.ActivityInput {
	active := activity.IsActive
	return domain.ActivityInput{
		Title:       activity.Title,
		Description: activity.Description,
		Category:    activity.Category,
		DayOfWeek:   activity.DayOfWeek,
		StartTime:   activity.StartTime,
		EndTime:     activity.EndTime,
		Capacity:    activity.Capacity,
		Instructor:  activity.Instructor,
		ImageURL:    activity.ImageURL,
		IsActive:    &active,
	}
}

func writeActivity(cmd *cobra.Command, app *app, activity domain.Activity, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, app.activityView(activity))
	}

	rendered, err := app.render.detail(activity, app.renderOptions())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func parseActivityID(raw string) (domain.ActivityID, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(raw), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid activity id %q", raw)
	}
	return domain.ActivityID(id), nil
}

// parseDay accepts 0-6 counted from Sunday, or an English weekday name.
func parseDay(raw string) (int, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("day %d out of range 0..6", n)
		}
		return n, nil
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		name := strings.ToLower(day.String())
		if value == name || value == name[:3] {
			return int(day), nil
		}
	}

	return 0, fmt.Errorf("unknown day %q", raw)
}
