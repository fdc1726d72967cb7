package widgets

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/atomicstack/pi-menu-control/internal/theme"
	"github.com/atomicstack/pi-menu-control/page"
)

// Animator is implemented by pages that animate; the host calls Advance on
// every frame tick.
type Animator interface {
	Advance(now time.Time)
}

// Spinner is an indeterminate-progress page shown while a long operation
// runs in the background.
type Spinner struct {
	page.Base

	styles  *theme.Styles
	frames  spinner.Spinner
	frame   int
	last    time.Time
	Message string
}

// NewSpinner builds a spinner page with the given title and message line.
func NewSpinner(title, message string, styles *theme.Styles) *Spinner {
	if styles == nil {
		styles = theme.Default()
	}
	s := &Spinner{styles: styles, frames: spinner.MiniDot, Message: message}
	s.SetTitle(title)
	return s
}

// Advance steps the animation according to the spinner's frame rate.
func (s *Spinner) Advance(now time.Time) {
	if !s.last.IsZero() && now.Sub(s.last) < s.frames.FPS {
		return
	}
	s.last = now
	s.frame = (s.frame + 1) % len(s.frames.Frames)
}

// View renders the current frame.
func (s *Spinner) View() string {
	var sb strings.Builder
	sb.WriteString(s.styles.Heading.Render(s.Title()))
	sb.WriteString("\n\n")
	sb.WriteString(s.styles.Icon.Render(s.frames.Frames[s.frame]))
	if s.Message != "" {
		sb.WriteString(" ")
		sb.WriteString(s.styles.Info.Render(s.Message))
	}
	return sb.String()
}
