// Package menu holds the immutable data model application authors use to
// describe a menu tree: menus, items, and the dynamic values their
// attributes may carry.
package menu

import (
	"github.com/atomicstack/pi-menu-control/page"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a hex color such as "#68B7FF". The empty Color means "use the
// theme default".
type Color string

// Toolkit palette.
const (
	PrimaryColor   Color = "#68B7FF"
	SecondaryColor Color = "#363F4B"
	TextColor      Color = "#FFFFFF"
	DangerColor    Color = "#FF3F51"
	SuccessColor   Color = "#03F7AE"
)

// Parse returns the parsed color and whether it was valid and non-empty.
func (c Color) Parse() (colorful.Color, bool) {
	if c == "" {
		return colorful.Color{}, false
	}
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{}, false
	}
	return parsed, true
}

// Dimmed blends the color toward black by 1-opacity, approximating the
// reduced-opacity look of surrounding preview items.
func (c Color) Dimmed(opacity float64) Color {
	parsed, ok := c.Parse()
	if !ok {
		return c
	}
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return Color(parsed.BlendRgb(colorful.Color{}, 1-opacity).Hex())
}

// Menu describes one level of the menu tree. Exactly two shapes exist,
// HeadedMenu and HeadlessMenu, and a menu never migrates between them.
type Menu interface {
	MenuTitle() Value[string]
	MenuItems() Value[[]Item]
	MenuPlaceholder() Value[string]
}

// HeadedMenu reserves the first page for a heading and sub-heading,
// reducing that page's item capacity.
type HeadedMenu struct {
	Title       Value[string]
	Heading     Value[string]
	SubHeading  Value[string]
	Items       Value[[]Item]
	Placeholder Value[string]
}

func (m *HeadedMenu) MenuTitle() Value[string]       { return m.Title }
func (m *HeadedMenu) MenuItems() Value[[]Item]       { return m.Items }
func (m *HeadedMenu) MenuPlaceholder() Value[string] { return m.Placeholder }

// HeadlessMenu renders items on every page, including the first.
type HeadlessMenu struct {
	Title       Value[string]
	Items       Value[[]Item]
	Placeholder Value[string]
}

func (m *HeadlessMenu) MenuTitle() Value[string]       { return m.Title }
func (m *HeadlessMenu) MenuItems() Value[[]Item]       { return m.Items }
func (m *HeadlessMenu) MenuPlaceholder() Value[string] { return m.Placeholder }

// Item is a single menu entry. Concrete kinds are ActionItem, SubMenuItem,
// ApplicationItem, and the display-only DisplayItem used for dimmed
// neighbors.
type Item interface {
	Base() *ItemBase
}

// ItemBase carries the visual attributes shared by every item kind.
type ItemBase struct {
	// Key is a stable identity used to resurrect drilled-into selections
	// when a dynamic menu is rebuilt. Optional.
	Key string

	Label           Value[string]
	Color           Value[Color]
	BackgroundColor Value[Color]
	Icon            Value[string]
	IsShort         Value[bool]

	// Opacity of the rendered item; zero means fully opaque.
	Opacity float64
	// Progress, when non-nil, renders a progress indicator in [0..1].
	Progress *float64
}

// Base returns the shared attributes of the item.
func (b *ItemBase) Base() *ItemBase { return b }

// ActionItem invokes Action when activated. The returned value decides the
// navigation effect: a Menu or menu producer opens a submenu, a page
// factory or application instance opens an application, nil is a no-op.
type ActionItem struct {
	ItemBase
	Action func() any
}

// SubMenuItem opens SubMenu when activated.
type SubMenuItem struct {
	ItemBase
	SubMenu Value[Menu]
}

// ApplicationItem instantiates and opens an application page when
// activated.
type ApplicationItem struct {
	ItemBase
	Application Value[page.Factory]
}

// DisplayItem is a visual-only item; activating it does nothing. The
// windowing logic uses it for the dimmed preview rows borrowed from
// neighboring pages.
type DisplayItem struct {
	ItemBase
}

// ItemsOf returns a snapshot of the menu's items. A nil menu has none.
func ItemsOf(m Menu) []Item {
	if m == nil {
		return nil
	}
	return m.MenuItems().Peek()
}

// TitleOf returns a snapshot of the menu's title. A nil menu has none.
func TitleOf(m Menu) string {
	if m == nil {
		return ""
	}
	return m.MenuTitle().Peek()
}
