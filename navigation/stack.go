package navigation

import (
	"sync"

	"github.com/atomicstack/pi-menu-control/menu"
	"github.com/atomicstack/pi-menu-control/page"
)

// StackItem is a node of the navigation stack. Nodes form a tree through
// parent back-references; the stack itself is the linear chain currently
// drilled into. Concrete kinds are MenuStackItem and ApplicationStackItem.
type StackItem interface {
	Parent() StackItem
	Root() StackItem
	Title() string

	// AddSubscription registers an unsubscriber owned by this node; all
	// of them run when the node is discarded.
	AddSubscription(unsubscribe menu.Unsubscribe)
	ClearSubscriptions()
}

type baseItem struct {
	parent StackItem
	subs   *subscriptionSet
}

func newBaseItem(parent StackItem) baseItem {
	return baseItem{parent: parent, subs: &subscriptionSet{}}
}

func (b *baseItem) Parent() StackItem { return b.parent }

func (b *baseItem) AddSubscription(unsubscribe menu.Unsubscribe) {
	b.subs.Add(unsubscribe)
}

func (b *baseItem) ClearSubscriptions() { b.subs.Clear() }

// Selection records which submenu is currently drilled into from a menu
// node, keyed by the originating item's Key so the drilled-into child can
// be resurrected when a dynamic parent menu is rebuilt.
type Selection struct {
	Key  string
	Item *MenuStackItem
}

// MenuStackItem is a stack node backed by a Menu.
type MenuStackItem struct {
	baseItem
	Menu      menu.Menu
	PageIndex int
	Selection *Selection
}

// Root returns the topmost ancestor of the node, the node itself when it
// has no parent.
func (m *MenuStackItem) Root() StackItem {
	if m.parent != nil {
		return m.parent.Root()
	}
	return m
}

// Title returns a snapshot of the menu title.
func (m *MenuStackItem) Title() string { return menu.TitleOf(m.Menu) }

// ApplicationStackItem is a stack node backed by an opened application
// page.
type ApplicationStackItem struct {
	baseItem
	Application page.Application
}

func (a *ApplicationStackItem) Root() StackItem {
	if a.parent != nil {
		return a.parent.Root()
	}
	return a
}

// Title returns the application's own title.
func (a *ApplicationStackItem) Title() string { return a.Application.Title() }

// inLineageOf reports whether item or any of its ancestors is an
// application node holding app. Used to find the cascade scope when an
// application is closed.
func inLineageOf(item StackItem, app page.Application) bool {
	for node := item; node != nil; node = node.Parent() {
		if appItem, ok := node.(*ApplicationStackItem); ok && appItem.Application == app {
			return true
		}
	}
	return false
}

// subscriptionSet tracks unsubscribe callbacks behind its own lock. Clear
// copies then empties the set before invoking anything, so an unsubscribe
// that re-subscribes cannot corrupt the iteration.
type subscriptionSet struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]menu.Unsubscribe
}

func (s *subscriptionSet) Add(unsubscribe menu.Unsubscribe) {
	if unsubscribe == nil {
		return
	}
	s.mu.Lock()
	if s.subs == nil {
		s.subs = map[int]menu.Unsubscribe{}
	}
	s.subs[s.nextID] = unsubscribe
	s.nextID++
	s.mu.Unlock()
}

func (s *subscriptionSet) Clear() {
	s.mu.Lock()
	pending := make([]menu.Unsubscribe, 0, len(s.subs))
	for _, unsubscribe := range s.subs {
		pending = append(pending, unsubscribe)
	}
	s.subs = nil
	s.mu.Unlock()
	for _, unsubscribe := range pending {
		unsubscribe()
	}
}

func (s *subscriptionSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
