package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the rendering
// surface.
type Styles struct {
	Title       *lipgloss.Style
	Heading     *lipgloss.Style
	SubHeading  *lipgloss.Style
	Item        *lipgloss.Style
	ShortItem   *lipgloss.Style
	Icon        *lipgloss.Style
	Placeholder *lipgloss.Style
	Scrollbar   *lipgloss.Style
	Footer      *lipgloss.Style
	Error       *lipgloss.Style
	Info        *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Heading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	SubHeading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ShortItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Bold(true),
	),
	Icon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Scrollbar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
