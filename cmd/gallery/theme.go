package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gallery/internal/theme"
	galleryerrors "github.com/alexisbeaulieu97/gallery/pkg/errors"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the persisted theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Store.Theme())
			return nil
		},
	}

	cmd.AddCommand(newThemeSetCmd(flags))
	cmd.AddCommand(newThemeToggleCmd(flags))

	return cmd
}

func newThemeSetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Persist a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: themeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := parseThemeArg(args[0])
			if err != nil {
				return newCommandError("set theme", fmt.Sprintf("parsing %q", args[0]), err, "Use one of: light, dark.")
			}

			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			if err := app.Store.Set(next); err != nil {
				return newCommandError("set theme", "saving preference", err, "Check that the preferences file is writable.")
			}

			app.Logger.Debug("theme set to " + next.String())
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", next)
			return nil
		},
	}
}

func newThemeToggleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			next, err := app.Store.Toggle()
			if err != nil {
				return newCommandError("toggle theme", "saving preference", err, "Check that the preferences file is writable.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", next)
			return nil
		},
	}
}

// parseThemeArg reports an unknown theme as a validation error.
func parseThemeArg(arg string) (theme.Theme, error) {
	t, err := theme.Parse(arg)
	if err != nil {
		return "", galleryerrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q", arg), err)
	}
	return t, nil
}

func themeNames() []string {
	names := make([]string, 0, len(theme.All()))
	for _, t := range theme.All() {
		names = append(names, t.String())
	}
	return names
}
