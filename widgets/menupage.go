package widgets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/pi-menu-control/internal/theme"
	"github.com/atomicstack/pi-menu-control/menu"
	"github.com/atomicstack/pi-menu-control/navigation"
	"github.com/atomicstack/pi-menu-control/page"
)

// headerSlots is the number of item slots the heading occupies on the
// first page of a headed menu.
const headerSlots = navigation.PageSize - 1

// ErrHeaderOverflow reports a first-page window wider than the space left
// beside the heading.
var ErrHeaderOverflow = errors.New("widgets: headed first page can hold at most one item")

// MenuPage renders one page of menu items. It satisfies the engine's
// rendered-page contract: the engine pushes windows into it and reads back
// the item behind an activated slot.
type MenuPage struct {
	page.Base

	styles       *theme.Styles
	width        int
	surroundings bool

	window      []menu.Item
	pageIndex   int
	count       int
	total       int
	placeholder string

	headed     bool
	heading    string
	subHeading string
}

// NewMenuPage returns an empty menu page. When surroundings is true the
// pushed windows carry one dimmed preview row from each neighboring page;
// headed pages reserve all but the last slot of their first page for the
// heading lines.
func NewMenuPage(width int, surroundings, headed bool, styles *theme.Styles) *MenuPage {
	if styles == nil {
		styles = theme.Default()
	}
	return &MenuPage{styles: styles, width: width, surroundings: surroundings, headed: headed}
}

// SetWindow replaces the rendered items. The engine calls it on every
// re-render of the backing menu.
func (p *MenuPage) SetWindow(window []menu.Item) {
	if p.headed && p.pageIndex == 0 && p.visibleCount(window) > navigation.PageSize-headerSlots {
		panic(ErrHeaderOverflow)
	}
	p.window = window
	p.count = p.visibleCount(window)
}

// SetPageIndex records which page of the menu this window belongs to.
func (p *MenuPage) SetPageIndex(pageIndex int) { p.pageIndex = pageIndex }

// SetPlaceholder sets the text shown when the menu has no items.
func (p *MenuPage) SetPlaceholder(placeholder string) { p.placeholder = placeholder }

// Total returns the item count of the whole menu at render time.
func (p *MenuPage) Total() int { return p.total }

// SetHeading records the heading shown on the first page of a headed page.
func (p *MenuPage) SetHeading(heading string) { p.heading = heading }

// SetSubHeading records the sub-heading shown on the first page.
func (p *MenuPage) SetSubHeading(subHeading string) { p.subHeading = subHeading }

// Item returns the model item behind the given hardware slot, nil when the
// slot is empty or shows the heading.
func (p *MenuPage) Item(slot int) menu.Item {
	if slot < 0 || slot >= navigation.PageSize {
		return nil
	}
	idx := slot
	if p.headed && p.pageIndex == 0 {
		idx -= headerSlots
	}
	if p.surroundings {
		idx++
	}
	if idx < 0 || idx >= len(p.window) {
		return nil
	}
	return p.window[idx]
}

// visibleCount counts the selectable items in a window, excluding the
// surrounding preview rows.
func (p *MenuPage) visibleCount(window []menu.Item) int {
	if !p.surroundings {
		return len(window)
	}
	count := len(window) - 2
	if count < 0 {
		count = 0
	}
	return count
}

// View renders the page at the configured width.
func (p *MenuPage) View() string {
	lines := make([]string, 0, navigation.PageSize+2)

	if p.surroundings {
		lines = append(lines, p.previewRow(0))
	}
	if p.headed && p.pageIndex == 0 {
		lines = append(lines, p.styles.Heading.Render(p.clip(p.heading)))
		lines = append(lines, p.styles.SubHeading.Render(p.clip(p.subHeading)))
		for slot := headerSlots; slot < navigation.PageSize; slot++ {
			lines = append(lines, RenderItem(p.Item(slot), slot, p.width, p.styles))
		}
	} else if p.count == 0 && p.placeholder != "" {
		lines = append(lines, p.styles.Placeholder.Render(p.clip(p.placeholder)))
	} else {
		for slot := 0; slot < navigation.PageSize; slot++ {
			lines = append(lines, RenderItem(p.Item(slot), slot, p.width, p.styles))
		}
	}
	if p.surroundings {
		last := len(p.window) - 1
		lines = append(lines, p.previewRow(last))
	}
	return strings.Join(lines, "\n")
}

// previewRow renders one of the dimmed neighbor rows at the window edge.
func (p *MenuPage) previewRow(idx int) string {
	if idx < 0 || idx >= len(p.window) {
		return ""
	}
	return RenderItem(p.window[idx], -1, p.width, p.styles)
}

func (p *MenuPage) clip(text string) string {
	if p.width <= 0 || len(text) <= p.width {
		return text
	}
	return text[:p.width]
}

// PageSurface builds menu pages for the navigation engine.
type PageSurface struct {
	Width        int
	Surroundings bool
	Styles       *theme.Styles
}

// Render implements the navigation surface contract.
func (s *PageSurface) Render(window []menu.Item, pageIndex int, surroundings, headed bool, count int) navigation.RenderedPage {
	p := NewMenuPage(s.Width, surroundings, headed, s.Styles)
	p.total = count
	p.SetPageIndex(pageIndex)
	p.SetWindow(window)
	return p
}

// Footer renders the "page m/n" indicator used below scrollable menus.
func Footer(pageIndex, pages int, styles *theme.Styles) string {
	if styles == nil {
		styles = theme.Default()
	}
	if pages <= 1 {
		return ""
	}
	return styles.Footer.Render(fmt.Sprintf("page %d/%d", pageIndex+1, pages))
}
