package navigation

import (
	"github.com/atomicstack/pi-menu-control/menu"
	"github.com/atomicstack/pi-menu-control/page"
)

// RenderedPage is one page of menu items produced by the rendering surface.
// The engine pushes updated windows into it and reads back which slot was
// activated.
type RenderedPage interface {
	page.Screen

	// Item returns the model item behind the given slot index, nil when
	// the slot is out of range or empty.
	Item(slot int) menu.Item

	SetWindow(window []menu.Item)
	SetPageIndex(pageIndex int)
	SetPlaceholder(placeholder string)
}

// HeadingPage is implemented by rendered pages that can show the heading
// and sub-heading of a headed menu on their first page.
type HeadingPage interface {
	SetHeading(heading string)
	SetSubHeading(subHeading string)
}

// ItemProvider is the slot-lookup capability. Menu pages implement it via
// RenderedPage; application pages may implement it to expose their own
// selectable items.
type ItemProvider interface {
	Item(slot int) menu.Item
}

// Surface renders fixed-size pages of menu items. Implementations live in
// the host program; the engine only pushes windows and switches screens.
// headed marks pages whose first page reserves slots for a heading; count
// is the total item count of the menu being rendered.
type Surface interface {
	Render(window []menu.Item, pageIndex int, surroundings, headed bool, count int) RenderedPage
}
