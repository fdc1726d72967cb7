package widgets

import (
	"strings"

	"github.com/atomicstack/pi-menu-control/internal/theme"
	"github.com/atomicstack/pi-menu-control/menu"
	"github.com/atomicstack/pi-menu-control/page"
)

// PromptOption is one of the two choices offered by a prompt page.
type PromptOption struct {
	Label  string
	Icon   string
	Color  menu.Color
	Action func() any
}

// Prompt is a two-option question page. The prompt text occupies the first
// slot; the options sit on the remaining hardware buttons and are
// activated through the regular select path.
type Prompt struct {
	page.Base

	styles *theme.Styles
	icon   string
	text   string
	items  []menu.Item
}

// NewPrompt builds a prompt page. Options beyond the available slots are
// dropped.
func NewPrompt(title, icon, text string, options []PromptOption, styles *theme.Styles) *Prompt {
	if styles == nil {
		styles = theme.Default()
	}
	p := &Prompt{styles: styles, icon: icon, text: text}
	p.SetTitle(title)
	for _, opt := range options {
		if len(p.items) >= headerSlots {
			break
		}
		color := opt.Color
		if color == "" {
			color = menu.TextColor
		}
		p.items = append(p.items, &menu.ActionItem{
			ItemBase: menu.ItemBase{
				Label: menu.Static(opt.Label),
				Icon:  menu.Static(opt.Icon),
				Color: menu.Static(color),
			},
			Action: opt.Action,
		})
	}
	return p
}

// Item maps hardware slots to the prompt options; slot 0 shows the prompt
// itself and is not selectable.
func (p *Prompt) Item(slot int) menu.Item {
	idx := slot - 1
	if idx < 0 || idx >= len(p.items) {
		return nil
	}
	return p.items[idx]
}

// View renders the prompt and its options.
func (p *Prompt) View() string {
	var sb strings.Builder
	if p.icon != "" {
		sb.WriteString(p.styles.Icon.Render(p.icon))
		sb.WriteString(" ")
	}
	sb.WriteString(p.styles.Heading.Render(p.text))
	sb.WriteString("\n")
	for slot := 1; slot <= len(p.items); slot++ {
		sb.WriteString("\n")
		sb.WriteString(RenderItem(p.items[slot-1], slot, 0, p.styles))
	}
	return sb.String()
}
