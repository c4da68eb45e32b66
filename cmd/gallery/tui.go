package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gallery/internal/tui/gallery"
)

// runGallery starts the interactive page, or prints the showcase when stdout
// is not a terminal.
func runGallery(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	if !isTerminal(cmd.OutOrStdout()) {
		app.Logger.Debug("stdout is not a terminal, printing showcase")
		fmt.Fprintln(cmd.OutOrStdout(), gallery.Showcase(app.Store.Theme(), showcaseWidth))
		return nil
	}

	m := gallery.NewModel(app.Store, gallery.Options{
		PageSize: app.Config.Grid.PageSize,
		Logger:   app.Logger.With("component", "tui"),
	})
	defer m.Close()

	app.Logger.Info("launching gallery")
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	app.Logger.Info("gallery closed, theme " + app.Store.Theme().String())
	return nil
}
