package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/gymctl/internal/application"
	"github.com/bnema/gymctl/internal/domain"
	"github.com/bradenaw/juniper/xslices"
	"github.com/spf13/cobra"
)

type enrollmentAction func(context.Context, domain.ActivityID) (*domain.Activity, error)

func newEnrollCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "enroll <id>",
		Short: "Enroll in an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnrollmentChange(cmd, app, args[0], "Enrolled in", app.enrollment.Enroll)
		},
	}
}

func newUnenrollCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unenroll <id>",
		Short: "Leave an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnrollmentChange(cmd, app, args[0], "Left", app.enrollment.Unenroll)
		},
	}
}

func runEnrollmentChange(cmd *cobra.Command, app *app, rawID string, verb string, action enrollmentAction) error {
	id, err := parseActivityID(rawID)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if _, err := app.currentUser(ctx); err != nil {
		return err
	}

	activity, err := action(ctx, id)
	if err != nil {
		if !errors.Is(err, application.ErrRosterRefresh) {
			return err
		}
		app.logger.Warn().Err(err).Msg("change saved but the roster could not be refreshed")
	}

	out := cmd.OutOrStdout()
	if activity == nil {
		_, err = fmt.Fprintf(out, "%s activity #%d.\n", verb, id)
		return err
	}

	_, err = fmt.Fprintf(out, "%s %s (#%d). %d/%d slots left.\n",
		verb, activity.Title, activity.ID, activity.Slots(), activity.Capacity)
	return err
}

func newMyActivitiesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "my-activities",
		Aliases: []string{"roster"},
		Short:   "List the activities you are enrolled in",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, err := app.currentUser(ctx); err != nil {
				return err
			}

			start := func(ctx context.Context) error {
				return app.start(ctx, application.BootstrapOptions{})
			}
			if err := runFetch(cmd, "Fetching your activities...", asJSON, start); err != nil {
				return err
			}

			roster := app.enrollment.Roster()
			if asJSON {
				return writeJSON(cmd, xslices.Map(roster, rosterView))
			}

			rendered, err := app.render.roster(roster, app.renderOptions())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
