package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gallery/internal/theme"
	"github.com/alexisbeaulieu97/gallery/internal/tui/gallery"
)

const showcaseWidth = 100

type showcaseOptions struct {
	theme string
	both  bool
	width int
}

func newShowcaseCmd(flags *rootFlags) *cobra.Command {
	opts := &showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Print every widget once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme to render with (default: persisted theme)")
	cmd.Flags().BoolVar(&opts.both, "both", false, "Render the light and the dark page")
	cmd.Flags().IntVar(&opts.width, "width", showcaseWidth, "Page width in cells")

	return cmd
}

func runShowcase(cmd *cobra.Command, flags *rootFlags, opts *showcaseOptions) error {
	if opts.both {
		for _, t := range theme.All() {
			fmt.Fprintln(cmd.OutOrStdout(), gallery.Showcase(t, opts.width))
		}
		return nil
	}

	var t theme.Theme
	if opts.theme != "" {
		parsed, err := parseThemeArg(opts.theme)
		if err != nil {
			return newCommandError("render showcase", fmt.Sprintf("parsing theme %q", opts.theme), err, "Use one of: light, dark.")
		}
		t = parsed
	} else {
		app, err := newAppContext(cmd, flags)
		if err != nil {
			return err
		}
		t = app.Store.Theme()
	}

	fmt.Fprintln(cmd.OutOrStdout(), gallery.Showcase(t, opts.width))
	return nil
}
