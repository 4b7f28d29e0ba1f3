package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/gymctl/internal/adapters/auth"
	"github.com/bnema/gymctl/internal/application"
	"github.com/bnema/gymctl/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Long:  "Sign in with email and password. When --password is omitted the password is read from the first line of stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := app.start(ctx, application.BootstrapOptions{}); err != nil {
				app.logger.Debug().Err(err).Msg("refresh roster for stored session")
			}

			secret, err := readPassword(cmd, password)
			if err != nil {
				return err
			}

			user, err := app.sessions.Login(ctx, email, secret)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "Logged in as %s\n", describeUser(user)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "Enrolled activities: %d\n", len(app.enrollment.Roster()))
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (default: read from stdin)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app.sessions.Restore(ctx)
			wasSignedIn := app.sessions.IsAuthenticated()

			if err := app.sessions.Logout(ctx); err != nil {
				return err
			}

			message := "Logged out."
			if !wasSignedIn {
				message = "Not signed in."
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), message)
			return err
		},
	}
}

func newRegisterCmd(app *app) *cobra.Command {
	var name string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a member account",
		Long:  "Create a member account. Registration does not sign you in; run gym login afterwards.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := readPassword(cmd, password)
			if err != nil {
				return err
			}

			user, err := app.sessions.Register(cmd.Context(), name, email, secret)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s. Run gym login to sign in.\n", describeUser(user))
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Password, at least 6 characters (default: read from stdin)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			lines := []string{
				describeUser(user),
				fmt.Sprintf("user id: %d", user.ID),
				tokenStatus(app.inspector, app.sessions.Session().Token()),
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return err
		},
	}
}

func describeUser(user domain.UserIdentity) string {
	return fmt.Sprintf("%s <%s> (%s)", user.Name, user.Email, user.Role)
}

func tokenStatus(inspector *auth.Inspector, token string) string {
	claims, err := inspector.Inspect(token)
	if err != nil {
		return "token: opaque"
	}

	now := inspector.Now()
	switch {
	case !claims.HasExpiry():
		return "token: no expiry"
	case claims.Expired(now):
		return fmt.Sprintf("token: expired at %s, run gym login", claims.ExpiresAt.Format(time.RFC3339))
	default:
		return fmt.Sprintf("token: expires in %s", claims.Remaining(now).Round(time.Minute))
	}
}

func readPassword(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if _, err := fmt.Fprint(cmd.ErrOrStderr(), "Password: "); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
