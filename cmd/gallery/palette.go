package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/gallery/internal/theme"
	"github.com/alexisbeaulieu97/gallery/pkg/diff"
)

type paletteOptions struct {
	jsonOutput bool
	diff       bool
}

type paletteOutput struct {
	Theme     string            `json:"theme" yaml:"theme"`
	GridTheme string            `json:"gridTheme" yaml:"gridTheme"`
	Style     theme.StyleParams `json:"style" yaml:"style"`
}

func newPaletteCmd(flags *rootFlags) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:       "palette [light|dark]",
		Short:     "Print the style parameters of a theme",
		Long:      "Print the chart style parameters derived from a theme. Without an argument the persisted theme is used.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: themeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, flags, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show how the light and dark palettes differ")

	return cmd
}

func runPalette(cmd *cobra.Command, flags *rootFlags, opts *paletteOptions, args []string) error {
	if opts.diff {
		return runPaletteDiff(cmd)
	}

	var t theme.Theme
	if len(args) == 1 {
		parsed, err := parseThemeArg(args[0])
		if err != nil {
			return newCommandError("print palette", fmt.Sprintf("parsing %q", args[0]), err, "Use one of: light, dark.")
		}
		t = parsed
	} else {
		app, err := newAppContext(cmd, flags)
		if err != nil {
			return err
		}
		t = app.Store.Theme()
	}

	out := newPaletteOutput(t)

	if opts.jsonOutput {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return newCommandError("print palette", "encoding JSON", err, "Report this issue.")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return newCommandError("print palette", "encoding YAML", err, "Report this issue.")
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runPaletteDiff(cmd *cobra.Command) error {
	light, err := yaml.Marshal(newPaletteOutput(theme.Light))
	if err != nil {
		return newCommandError("compare palettes", "encoding light palette", err, "Report this issue.")
	}
	dark, err := yaml.Marshal(newPaletteOutput(theme.Dark))
	if err != nil {
		return newCommandError("compare palettes", "encoding dark palette", err, "Report this issue.")
	}

	deleted, inserted := diff.Changed(light, dark)
	fmt.Fprint(cmd.OutOrStdout(), diff.Unified(light, dark, theme.Light.String(), theme.Dark.String()))
	fmt.Fprintf(cmd.OutOrStdout(), "%d lines removed, %d added\n", deleted, inserted)
	return nil
}

func newPaletteOutput(t theme.Theme) paletteOutput {
	return paletteOutput{
		Theme:     t.String(),
		GridTheme: theme.GridThemeName(t),
		Style:     theme.DeriveStyle(t),
	}
}
