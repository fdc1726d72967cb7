package notification

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/atomicstack/pi-menu-control/internal/theme"
	"github.com/atomicstack/pi-menu-control/menu"
	"github.com/atomicstack/pi-menu-control/page"
	"github.com/atomicstack/pi-menu-control/widgets"
)

const viewerWrapWidth = 28

// Viewer is the application page that shows one notification. Opening it
// marks the notification read; the last hardware button dismisses it when
// the notification allows that.
type Viewer struct {
	page.Base

	manager      *Manager
	notification *Notification
	styles       *theme.Styles
	dismiss      menu.Item
}

// NewViewer builds the viewer page and marks the notification read.
func NewViewer(manager *Manager, n *Notification, styles *theme.Styles) *Viewer {
	if styles == nil {
		styles = theme.Default()
	}
	v := &Viewer{manager: manager, notification: n, styles: styles}
	v.SetTitle(n.Title)
	manager.MarkRead(n.ID)
	if n.Dismissable {
		v.dismiss = &menu.ActionItem{
			ItemBase: menu.ItemBase{
				Label: menu.Static("Dismiss"),
				Icon:  menu.Static("✕"),
				Color: menu.Static(menu.DangerColor),
			},
			Action: func() any {
				manager.Remove(n.ID)
				return nil
			},
		}
	}
	return v
}

// Item exposes the dismiss action on the last hardware button.
func (v *Viewer) Item(slot int) menu.Item {
	if slot != 2 {
		return nil
	}
	return v.dismiss
}

// View renders the notification body.
func (v *Viewer) View() string {
	n := v.notification
	var sb strings.Builder
	sb.WriteString(v.styles.Icon.Render(n.DisplayIcon()))
	sb.WriteString(" ")
	sb.WriteString(v.styles.Heading.Render(n.Title))
	sb.WriteString("\n")
	sb.WriteString(v.styles.Info.Render(wordwrap.String(n.Content, viewerWrapWidth)))
	if v.dismiss != nil {
		sb.WriteString("\n\n")
		sb.WriteString(widgets.RenderItem(v.dismiss, 2, 0, v.styles))
	}
	return sb.String()
}
