// Package widgets provides the rendered pages shipped with the toolkit:
// the paginated menu page plus a set of ready-made application pages
// (gauge, volume, spinner, QR code, prompt, text input).
package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/pi-menu-control/internal/theme"
	"github.com/atomicstack/pi-menu-control/menu"
)

const progressBarWidth = 8

// RenderItem renders one menu row for the given slot, truncated to width.
// A nil item renders an empty row so the slot numbering stays stable.
func RenderItem(item menu.Item, slot int, width int, styles *theme.Styles) string {
	if styles == nil {
		styles = theme.Default()
	}
	prefix := fmt.Sprintf("%d ", slot+1)
	if slot < 0 {
		prefix = "  "
	}
	if item == nil {
		return prefix
	}

	base := item.Base()
	icon := base.Icon.Peek()
	label := base.Label.Peek()

	var sb strings.Builder
	sb.WriteString(prefix)
	if icon != "" {
		sb.WriteString(styles.Icon.Render(icon))
		sb.WriteString(" ")
	}
	if !base.IsShort.Peek() {
		sb.WriteString(label)
	}
	if base.Progress != nil {
		sb.WriteString(" ")
		sb.WriteString(renderItemProgress(*base.Progress, styles))
	}

	row := sb.String()
	if width > 0 {
		row = truncate.StringWithTail(row, uint(width), "…")
	}
	return itemStyle(base, styles).Render(row)
}

// itemStyle derives the row style from the item's color attributes,
// dimming toward black for translucent items.
func itemStyle(base *menu.ItemBase, styles *theme.Styles) lipgloss.Style {
	style := *styles.Item
	color := base.Color.Peek()
	if color == "" {
		color = menu.TextColor
	}
	if base.Opacity > 0 && base.Opacity < 1 {
		color = color.Dimmed(base.Opacity)
	}
	if _, ok := color.Parse(); ok {
		style = style.Foreground(lipgloss.Color(string(color)))
	}
	if bg := base.BackgroundColor.Peek(); bg != "" {
		if base.Opacity > 0 && base.Opacity < 1 {
			bg = bg.Dimmed(base.Opacity)
		}
		style = style.Background(lipgloss.Color(string(bg)))
	}
	return style
}

// renderItemProgress draws the compact in-row progress bar.
func renderItemProgress(value float64, styles *theme.Styles) string {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	filled := int(value*progressBarWidth + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	return styles.Scrollbar.Render(bar)
}
