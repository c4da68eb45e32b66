package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gallery/internal/chart"
)

type chartExportOptions struct {
	out    string
	format string
	theme  string
	title  string
	width  float64
	height float64
}

func newChartCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Work with the sample line chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newChartExportCmd(flags))

	return cmd
}

func newChartExportCmd(flags *rootFlags) *cobra.Command {
	opts := &chartExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the sample chart to an image or document",
		Long: `Render the sample line chart with the colours of a theme.

The format comes from --format, then from the --out extension, then from the config file.
Use --out - to write to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChartExport(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file, or - for stdout")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: "+strings.Join(chart.Formats(), ", "))
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme to draw with (default: persisted theme)")
	cmd.Flags().StringVar(&opts.title, "title", "Monthly values", "Chart title")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "Width in inches (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "Height in inches (default from config)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runChartExport(cmd *cobra.Command, flags *rootFlags, opts *chartExportOptions) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	t := app.Store.Theme()
	if opts.theme != "" {
		if t, err = parseThemeArg(opts.theme); err != nil {
			return newCommandError("export chart", fmt.Sprintf("parsing theme %q", opts.theme), err, "Use one of: light, dark.")
		}
	}

	exportOpts := chart.Options{
		Theme:  t,
		Format: resolveChartFormat(opts, app.Config.Chart.Format),
		Width:  valueOr(opts.width, app.Config.Chart.Width),
		Height: valueOr(opts.height, app.Config.Chart.Height),
		Title:  opts.title,
	}

	if opts.out == "-" {
		if err := chart.Export(cmd.OutOrStdout(), exportOpts); err != nil {
			return newCommandError("export chart", "rendering to stdout", err, "Pick one of the supported formats.")
		}
		return nil
	}

	if err := writeChartFile(opts.out, exportOpts); err != nil {
		return newCommandError("export chart", opts.out, err, "Check the output path and the requested format.")
	}

	app.Logger.Info("chart exported to " + opts.out)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s chart (%s theme) to %s\n", exportOpts.Format, t, opts.out)
	return nil
}

// writeChartFile renders into a temp file next to path and renames it into place.
func writeChartFile(path string, opts chart.Options) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".chart-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := chart.Export(tmp, opts); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("move chart into place: %w", err)
	}
	return nil
}

func resolveChartFormat(opts *chartExportOptions, configured string) string {
	if opts.format != "" {
		return opts.format
	}
	// Unknown extensions pass through so the exporter rejects them.
	if ext := strings.TrimPrefix(filepath.Ext(opts.out), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return configured
}

func valueOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}
