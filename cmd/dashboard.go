package cmd

import (
	"context"
	"fmt"

	activitiesrender "github.com/bnema/gymctl/internal/adapters/render/activities"
	"github.com/bnema/gymctl/internal/application"
	"github.com/bnema/gymctl/internal/domain"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"home"},
		Short:   "Show who is signed in, the catalogue and your roster",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := func(ctx context.Context) error {
				return app.start(ctx, application.BootstrapOptions{PrefetchActivities: true})
			}
			if err := runFetch(cmd, "Loading dashboard...", false, start); err != nil {
				app.logger.Warn().Err(err).Msg("roster unavailable")
			}

			dashboard := activitiesrender.Dashboard{
				Activities: app.cache.Activities(),
				Roster:     app.enrollment.Roster(),
			}
			if user, ok := app.sessions.Session().User(); ok {
				dashboard.User = &user
			}
			if err := app.cache.LastError(); err != nil {
				dashboard.ActivitiesErr = domain.UserMessage(err)
			}

			rendered, err := app.render.dashboard(dashboard, app.renderOptions())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}
