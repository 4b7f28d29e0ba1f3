package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/spf13/cobra"
)

const adminAnnotation = "admin"

func Execute() error {
	rootCmd, app := newRootCmd()
	if err := execute(rootCmd, app); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", domain.UserMessage(err))
		return err
	}
	return nil
}

// execute runs the command tree and releases the app whether or not the
// command failed. app is nil when wiring failed.
func execute(rootCmd *cobra.Command, app *app) error {
	if app != nil {
		defer app.Close()
	}
	return rootCmd.Execute()
}

func newRootCmd() (*cobra.Command, *app) {
	rootCmd := &cobra.Command{
		Use:           "gym",
		Short:         "Gym activities client: browse classes and manage your enrollments",
		Long:          "gym talks to the gym activities API: sign in, browse the weekly catalogue, enroll in classes and review your roster from the terminal. Administrators can also manage the catalogue.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newWhoamiCmd(app),
		newActivitiesCmd(app),
		newEnrollCmd(app),
		newUnenrollCmd(app),
		newMyActivitiesCmd(app),
		newDashboardCmd(app),
		newConfigCmd(app),
	)

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		app.sessions.Restore(commandContext(cmd))
		hideAdminCommands(rootCmd, !app.sessions.IsAdmin())
		defaultHelp(cmd, args)
	})

	return rootCmd, app
}

// hideAdminCommands toggles the visibility of catalogue management commands.
func hideAdminCommands(cmd *cobra.Command, hidden bool) {
	for _, child := range cmd.Commands() {
		if _, ok := child.Annotations[adminAnnotation]; ok {
			child.Hidden = hidden
		}
		hideAdminCommands(child, hidden)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
