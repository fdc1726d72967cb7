package ui

import (
	"strings"

	"github.com/atomicstack/pi-menu-control/page"
	"github.com/atomicstack/pi-menu-control/widgets"
)

// View implements tea.Model.
func (m *Model) View() string {
	var sb strings.Builder

	if m.title != "" {
		sb.WriteString(styles.Title.Render(m.title))
		sb.WriteString("\n")
	}

	if screen := m.visibleScreen(); screen != nil {
		if viewer, ok := screen.(interface{ View() string }); ok {
			sb.WriteString(viewer.View())
		}
	}

	if m.nav.IsScrollbarVisible() {
		if footer := widgets.Footer(m.nav.PageIndex(), m.nav.Pages(), styles); footer != "" {
			sb.WriteString("\n")
			sb.WriteString(footer)
		}
	}
	if m.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.Error.Render(m.errMsg))
	}
	if m.infoMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.Info.Render(m.infoMsg))
	}
	return sb.String()
}

// visibleScreen is the transition target while one is animating, the
// settled screen otherwise.
func (m *Model) visibleScreen() page.Screen {
	if m.anim != nil && m.anim.req.Screen != nil {
		return m.anim.req.Screen
	}
	return m.current
}
