package gallery

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const errorDisplay = 5 * time.Second

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case ThemeChangedMsg:
		// The store may have moved on since the message was queued.
		m.applyTheme(m.store.Theme())
		return m, waitForThemeChange(m.sub)

	case ErrorMsg:
		m.setError(msg.Err)
		return m, clearErrorAfter(errorDisplay)

	case ClearErrorMsg:
		if !strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.focus == SectionInventory {
		return m, m.grid.Update(msg)
	}
	return m, nil
}

// handleKeyPress handles global keys, then defers to the focused section.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.grid.Filtering() {
		return m.handleFilterKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		next, err := m.toggle.Activate()
		if err != nil {
			// The theme still changed in memory; only saving it failed.
			m.applyTheme(m.store.Theme())
			m.setError(err)
			return m, clearErrorAfter(errorDisplay)
		}
		m.applyTheme(next)
		m.status = "Theme set to " + next.Label()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.focus {
	case SectionButtons:
		return m.handleButtonKeys(msg)
	case SectionChart:
		return m.handleChartKeys(msg)
	case SectionAccordion:
		return m.handleAccordionKeys(msg)
	case SectionSelect:
		return m.handleSelectKeys(msg)
	case SectionInventory:
		return m.handleInventoryKeys(msg)
	}
	return m, nil
}

func (m Model) handleButtonKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	group := m.rows[m.row]
	switch {
	case key.Matches(msg, m.keys.Left):
		group.Move(-1)
	case key.Matches(msg, m.keys.Right):
		group.Move(1)
	case key.Matches(msg, m.keys.Up):
		m.row = (m.row - 1 + len(m.rows)) % len(m.rows)
	case key.Matches(msg, m.keys.Down):
		m.row = (m.row + 1) % len(m.rows)
	case key.Matches(msg, m.keys.Enter):
		i := group.Press()
		if i < 0 {
			return m, nil
		}
		pressed := group.Buttons()[i]
		if pressed == m.counter.Button {
			m.counter.Click()
		}
		m.status = "Pressed " + pressed.Label()
	}
	return m, nil
}

func (m Model) handleChartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.chart.MoveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.chart.MoveCursor(1)
	}
	return m, nil
}

func (m Model) handleAccordionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.accordion.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.accordion.MoveCursor(1)
	case key.Matches(msg, m.keys.Enter):
		m.accordion.ToggleCursor()
	}
	return m, nil
}

func (m Model) handleSelectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		if !m.picker.IsOpen() {
			m.picker.SetOpen(true)
			return m, nil
		}
		if opt, ok := m.picker.Choose(); ok {
			m.status = "Selected " + opt.Label
		}
	case key.Matches(msg, m.keys.Escape):
		m.picker.SetOpen(false)
	case key.Matches(msg, m.keys.Up):
		m.picker.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		if !m.picker.IsOpen() {
			m.picker.SetOpen(true)
			return m, nil
		}
		m.picker.MoveCursor(1)
	}
	return m, nil
}

func (m Model) handleInventoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Sort):
		m.grid.CycleSort()
	case key.Matches(msg, m.keys.Reverse):
		m.grid.ReverseSort()
	case key.Matches(msg, m.keys.Filter):
		return m, m.grid.StartFilter()
	case key.Matches(msg, m.keys.Escape):
		m.grid.SetFilter("")
	case key.Matches(msg, m.keys.Left):
		m.grid.PrevPage()
	case key.Matches(msg, m.keys.Right):
		m.grid.NextPage()
	default:
		return m, m.grid.Update(msg)
	}
	return m, nil
}

// handleFilterKeys sends keystrokes to the filter input until esc or enter.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.Close()
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyEnter:
		m.grid.StopFilter()
		return m, nil
	}
	return m, m.grid.Update(msg)
}
