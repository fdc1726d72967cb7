package navigation

import "github.com/atomicstack/pi-menu-control/menu"

// PageSize is the number of item slots rendered per page.
const PageSize = 3

// headerPenalty is the number of item slots the heading occupies on the
// first page of a headed menu.
const headerPenalty = PageSize - 1

// previewOpacity dims the surrounding preview rows borrowed from the
// neighboring pages.
const previewOpacity = 0.6

// pageCount returns the number of pages needed for itemCount items of the
// given menu shape, never less than 1. A headed menu's first page holds
// only PageSize-headerPenalty items.
func pageCount(m menu.Menu, itemCount int) int {
	if m == nil {
		return 0
	}
	if _, headed := m.(*menu.HeadedMenu); headed {
		itemCount += headerPenalty
	}
	pages := (itemCount + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// windowOffset is the slicing offset compensating for the short first page
// of headed menus.
func windowOffset(m menu.Menu) int {
	if _, headed := m.(*menu.HeadedMenu); headed {
		return -headerPenalty
	}
	return 0
}

// window slices the page-sized view of items for pageIndex. When
// surroundings is true the window is padded with one dimmed preview item
// from each adjacent page, nil at the ends of the sequence.
func window(m menu.Menu, items []menu.Item, pageIndex int, surroundings bool) []menu.Item {
	offset := windowOffset(m)
	start := pageIndex*PageSize + offset
	if start < 0 {
		start = 0
	}
	end := pageIndex*PageSize + PageSize + offset
	if end > len(items) {
		end = len(items)
	}
	var out []menu.Item
	if start < end {
		out = append(out, items[start:end]...)
	}
	if !surroundings {
		return out
	}

	pages := pageCount(m, len(items))
	var previous, next menu.Item
	if pageIndex > 0 {
		if idx := pageIndex*PageSize + offset - 1; idx >= 0 && idx < len(items) {
			previous = preview(items[idx])
		}
	}
	if pageIndex < pages-1 {
		if idx := pageIndex*PageSize + PageSize + offset; idx >= 0 && idx < len(items) {
			next = preview(items[idx])
		}
	}
	padded := make([]menu.Item, 0, len(out)+2)
	padded = append(padded, previous)
	padded = append(padded, out...)
	padded = append(padded, next)
	return padded
}

// preview clones an item's visual attributes into an inert, dimmed item.
func preview(item menu.Item) menu.Item {
	if item == nil {
		return nil
	}
	base := item.Base()
	return &menu.DisplayItem{ItemBase: menu.ItemBase{
		Label:           base.Label,
		Icon:            base.Icon,
		BackgroundColor: base.BackgroundColor,
		IsShort:         base.IsShort,
		Opacity:         previewOpacity,
	}}
}
