package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/atomicstack/pi-menu-control/internal/theme"
	"github.com/atomicstack/pi-menu-control/page"
)

// volumeStep is the change applied per up/down key press.
const volumeStep = 0.05

// Volume is an adjustable level page. The up and down keys raise and lower
// the value in steps; changes are reported through the OnChange callback.
type Volume struct {
	page.Base

	styles   *theme.Styles
	bar      progress.Model
	value    float64
	OnChange func(value float64)
}

// NewVolume builds a volume page starting at the given level.
func NewVolume(title string, value float64, styles *theme.Styles) *Volume {
	if styles == nil {
		styles = theme.Default()
	}
	v := &Volume{
		styles: styles,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	v.SetTitle(title)
	v.set(value)
	return v
}

// Value returns the current level.
func (v *Volume) Value() float64 { return v.value }

// GoUp raises the level one step.
func (v *Volume) GoUp() { v.set(v.value + volumeStep) }

// GoDown lowers the level one step.
func (v *Volume) GoDown() { v.set(v.value - volumeStep) }

func (v *Volume) set(value float64) {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	if value == v.value {
		return
	}
	v.value = value
	if v.OnChange != nil {
		v.OnChange(value)
	}
}

// View renders the level bar.
func (v *Volume) View() string {
	var sb strings.Builder
	sb.WriteString(v.styles.Heading.Render(v.Title()))
	sb.WriteString("\n\n")
	sb.WriteString(v.bar.ViewAs(v.value))
	sb.WriteString("\n")
	sb.WriteString(v.styles.Info.Render(fmt.Sprintf("%3.0f%%  ↑ louder  ↓ quieter", v.value*100)))
	return sb.String()
}
