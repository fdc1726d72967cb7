// Package notification keeps the device's notification feed and projects
// it into the menu tree: a live badge count, a per-notification menu item,
// and a viewer page for reading and dismissing entries.
package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/atomicstack/pi-menu-control/menu"
)

// Importance orders notifications and picks their default icon and color.
type Importance int

const (
	Low Importance = iota
	Medium
	High
	Critical
)

// String implements fmt.Stringer.
func (i Importance) String() string {
	switch i {
	case Critical:
		return "critical"
	case High:
		return "high"
	case Medium:
		return "medium"
	default:
		return "low"
	}
}

// Icon returns the default icon for the importance level.
func (i Importance) Icon() string {
	switch i {
	case Critical:
		return "⚠"
	case High:
		return "!"
	case Medium:
		return "i"
	default:
		return "·"
	}
}

// Color returns the default color for the importance level.
func (i Importance) Color() menu.Color {
	switch i {
	case Critical:
		return menu.DangerColor
	case High:
		return "#FFA500"
	case Medium:
		return menu.PrimaryColor
	default:
		return menu.SecondaryColor
	}
}

// Notification is one entry in the feed.
type Notification struct {
	ID         string
	Title      string
	Content    string
	Importance Importance

	// Icon and Color override the importance defaults when non-empty.
	Icon  string
	Color menu.Color

	CreatedAt time.Time
	// ExpiresAt, when non-zero, removes the notification automatically
	// once passed.
	ExpiresAt time.Time
	Read      bool

	// Dismissable allows the viewer to remove the notification.
	Dismissable bool
	// OnDismiss runs when the notification is removed from the feed.
	OnDismiss func()
}

// New fills in the identity, timestamp, and importance defaults.
func New(title, content string, importance Importance) *Notification {
	n := &Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Content:     content,
		Importance:  importance,
		CreatedAt:   time.Now(),
		Dismissable: true,
	}
	return n
}

// DisplayIcon returns the icon to render.
func (n *Notification) DisplayIcon() string {
	if n.Icon != "" {
		return n.Icon
	}
	return n.Importance.Icon()
}

// DisplayColor returns the color to render.
func (n *Notification) DisplayColor() menu.Color {
	if n.Color != "" {
		return n.Color
	}
	return n.Importance.Color()
}

// Expired reports whether the notification has passed its expiry.
func (n *Notification) Expired(now time.Time) bool {
	return !n.ExpiresAt.IsZero() && now.After(n.ExpiresAt)
}
