package gallery

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gallery/internal/theme"
)

// subscription bridges store callbacks into the bubbletea event loop.
type subscription struct {
	changes chan theme.Theme
	done    chan struct{}
	cancel  func()
	once    sync.Once
}

func newSubscription(store *theme.Store) *subscription {
	sub := &subscription{
		changes: make(chan theme.Theme, 8),
		done:    make(chan struct{}),
	}
	sub.cancel = store.Subscribe(func(t theme.Theme) {
		// Drop when full; the handler reads the store, so the latest theme wins.
		select {
		case sub.changes <- t:
		default:
		}
	})
	return sub
}

// Close unsubscribes from the store and releases any waiting command.
func (s *subscription) Close() {
	s.once.Do(func() {
		s.cancel()
		close(s.done)
	})
}

// waitForThemeChange blocks until the store reports a change.
func waitForThemeChange(sub *subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case t := <-sub.changes:
			return ThemeChangedMsg{Theme: t}
		case <-sub.done:
			return nil
		}
	}
}

// clearErrorAfter hides the banner after d.
func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}
