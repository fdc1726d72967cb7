// Package page defines the contract between the menu navigation engine and
// the screens it opens: plain menu pages rendered by the toolkit and
// application pages supplied by the host program.
package page

// Screen is anything the transition machinery can switch between.
type Screen interface {
	ID() string
	Opacity() float64
	SetOpacity(opacity float64)
}

// Application is a host-provided page opened from the menu. The navigation
// engine assigns it a fresh identity when it is pushed onto the stack.
type Application interface {
	Screen
	SetID(id string)
	Title() string
}

// Factory instantiates an application page. Menu items carry factories so a
// fresh instance is created each time the item is activated.
type Factory func() Application

// UpHandler is implemented by applications that want the up key.
type UpHandler interface {
	GoUp()
}

// DownHandler is implemented by applications that want the down key.
type DownHandler interface {
	GoDown()
}

// BackHandler is implemented by applications that want first refusal on the
// back key. Returning true marks the key handled; otherwise the application
// is closed.
type BackHandler interface {
	GoBack() bool
}

// Closer is implemented by applications that need to release resources when
// they are removed from the stack.
type Closer interface {
	OnClose()
}

// Base carries the screen bookkeeping shared by every page implementation.
// Embed it and the embedding type satisfies Screen; the optional key
// handlers are deliberately not provided here so that their presence stays
// meaningful.
type Base struct {
	id      string
	title   string
	opacity float64
	set     bool
}

// ID returns the screen identity.
func (b *Base) ID() string { return b.id }

// SetID assigns the screen identity.
func (b *Base) SetID(id string) { b.id = id }

// Title returns the page title.
func (b *Base) Title() string { return b.title }

// SetTitle assigns the page title.
func (b *Base) SetTitle(title string) { b.title = title }

// Opacity returns the current opacity, defaulting to 1.
func (b *Base) Opacity() float64 {
	if !b.set {
		return 1
	}
	return b.opacity
}

// SetOpacity assigns the current opacity.
func (b *Base) SetOpacity(opacity float64) {
	b.opacity = opacity
	b.set = true
}
