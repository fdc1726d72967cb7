package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pi-menu-control/navigation"
	"github.com/atomicstack/pi-menu-control/widgets"
)

// handleKeyMsg maps terminal keys onto the device's button set: three
// select buttons, up, down, back, and home.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key := msg.(tea.KeyMsg)

	if key.String() == "ctrl+c" {
		return tea.Quit
	}

	if handler, ok := m.current.(widgets.KeyHandler); ok {
		if key.String() != "esc" && handler.HandleKey(key) {
			m.drainDispatch()
			return nil
		}
	}

	switch key.String() {
	case "q":
		return tea.Quit
	case "1", "2", "3":
		m.selectSlot(int(key.String()[0] - '1'))
	case "up", "k":
		m.nav.GoUp()
	case "down", "j":
		m.nav.GoDown()
	case "esc", "backspace", "left":
		if m.nav.Depth() > 0 {
			m.nav.GoBack()
		}
	case "h", "home":
		m.nav.GoHome()
	}

	m.drainDispatch()
	return nil
}

func (m *Model) selectSlot(slot int) {
	err := m.nav.Select(slot)
	if err == nil {
		m.errMsg = ""
		return
	}
	var unsupported *navigation.UnsupportedActionResultError
	if errors.As(err, &unsupported) {
		m.errMsg = unsupported.Error()
		return
	}
	m.errMsg = err.Error()
}
