package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/gymctl/internal/config"
	"github.com/bnema/gymctl/internal/ports"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change client settings",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetCmd(app),
		newConfigUnsetCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings and where they come from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stored, err := app.settings.Values(cmd.Context())
			if err != nil {
				return err
			}

			lines := []string{
				"file: " + app.settings.Path(),
				describeSecrets(cmd.Context(), app.cfg.Secrets, app.credentials),
			}
			for _, key := range config.Keys {
				value, _ := app.cfg.Get(key)
				source := "default"
				if _, ok := os.LookupEnv(config.EnvName(key)); ok {
					source = "env"
				} else if _, ok := stored[key]; ok {
					source = "file"
				}
				lines = append(lines, fmt.Sprintf("%-16s = %s (%s)", key, value, source))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return err
		},
	}
}

func newConfigSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a setting to the settings file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.settings.Set(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Saved %s in %s\n", args[0], app.settings.Path())
			return err
		},
	}
}

func newConfigUnsetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a setting from the settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.settings.Unset(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", args[0], app.settings.Path())
			return err
		},
	}
}

type prober interface {
	Probe(ctx context.Context) error
}

func describeSecrets(ctx context.Context, cfg config.SecretsConfig, store ports.CredentialStore) string {
	status := "secrets: " + cfg.Backend
	if cfg.Backend != config.SecretsBackendPass {
		status += ", files under " + cfg.Dir
	}
	if p, ok := store.(prober); ok {
		if err := p.Probe(ctx); err != nil {
			status += fmt.Sprintf(" (pass unusable: %v)", err)
		}
	}
	return status
}
