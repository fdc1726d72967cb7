package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pi-menu-control/internal/theme"
	"github.com/atomicstack/pi-menu-control/page"
)

// KeyHandler is implemented by pages that consume raw key presses beyond
// the hardware button set. Returning true marks the key handled.
type KeyHandler interface {
	HandleKey(msg tea.KeyMsg) bool
}

// Input is a single-line text entry page. Enter submits the value through
// OnSubmit; the back key cancels as usual.
type Input struct {
	page.Base

	styles   *theme.Styles
	field    textinput.Model
	OnSubmit func(value string)
}

// NewInput builds a text entry page with the given prompt placeholder.
func NewInput(title, placeholder string, styles *theme.Styles) *Input {
	if styles == nil {
		styles = theme.Default()
	}
	field := textinput.New()
	field.Placeholder = placeholder
	field.Prompt = "> "
	field.Focus()
	in := &Input{styles: styles, field: field}
	in.SetTitle(title)
	return in
}

// Value returns the current entry.
func (in *Input) Value() string { return in.field.Value() }

// SetValue replaces the current entry.
func (in *Input) SetValue(value string) { in.field.SetValue(value) }

// HandleKey feeds printable keys and editing keys into the field and
// submits on enter.
func (in *Input) HandleKey(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEnter {
		if in.OnSubmit != nil {
			in.OnSubmit(in.field.Value())
		}
		return true
	}
	in.field, _ = in.field.Update(msg)
	return true
}

// View renders the entry field.
func (in *Input) View() string {
	var sb strings.Builder
	sb.WriteString(in.styles.Heading.Render(in.Title()))
	sb.WriteString("\n\n")
	sb.WriteString(in.field.View())
	sb.WriteString("\n")
	sb.WriteString(in.styles.Info.Render("enter to confirm, esc to cancel"))
	return sb.String()
}
