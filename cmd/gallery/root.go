package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	prefsPath  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gallery",
		Short:         "Gallery shows themed terminal widgets and remembers your theme",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the gallery config file (default ~/.gallery/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "Path to the preferences file (default ~/.gallery/preferences.json)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newChartCmd(flags))
	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
