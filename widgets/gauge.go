package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/atomicstack/pi-menu-control/internal/theme"
	"github.com/atomicstack/pi-menu-control/menu"
	"github.com/atomicstack/pi-menu-control/page"
)

// Gauge is a read-only application page showing a live value between 0 and
// 1 as a bar with a caption. The value may be static or a stream; stream
// updates keep flowing until the page is closed.
type Gauge struct {
	page.Base

	styles *theme.Styles
	bar    progress.Model
	label  string

	value       float64
	unsubscribe menu.Unsubscribe
}

// NewGauge builds a gauge page resolving value immediately. The label is
// appended after the formatted percentage.
func NewGauge(title, label string, value menu.Value[float64], styles *theme.Styles) *Gauge {
	if styles == nil {
		styles = theme.Default()
	}
	g := &Gauge{
		styles: styles,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		label:  label,
	}
	g.SetTitle(title)
	g.unsubscribe = value.Resolve(func(v float64) { g.SetValue(v) })
	return g
}

// SetValue clamps and stores the displayed value.
func (g *Gauge) SetValue(value float64) {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	g.value = value
}

// Value returns the currently displayed value.
func (g *Gauge) Value() float64 { return g.value }

// OnClose stops the value stream.
func (g *Gauge) OnClose() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
}

// View renders the gauge.
func (g *Gauge) View() string {
	var sb strings.Builder
	sb.WriteString(g.styles.Heading.Render(g.Title()))
	sb.WriteString("\n\n")
	sb.WriteString(g.bar.ViewAs(g.value))
	sb.WriteString("\n")
	caption := fmt.Sprintf("%3.0f%%", g.value*100)
	if g.label != "" {
		caption += " " + g.label
	}
	sb.WriteString(g.styles.Info.Render(caption))
	return sb.String()
}
