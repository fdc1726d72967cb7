// Package navigation implements the stateful controller behind the menu
// system: the stack of open menus and applications, pagination, item
// selection dispatch, and the subscription lifecycle that keeps dynamic
// menu content live without disturbing navigation state.
package navigation

import (
	"sync"
	"time"

	"github.com/atomicstack/pi-menu-control/internal/logging"
	"github.com/atomicstack/pi-menu-control/internal/logging/events"
	"github.com/atomicstack/pi-menu-control/menu"
	"github.com/atomicstack/pi-menu-control/page"
	"github.com/atomicstack/pi-menu-control/transition"
	"github.com/google/uuid"
)

// Navigator owns the menu stack. It is the only component that mutates the
// stack array; every mutation runs under the stack mutex so background
// subscription callbacks cannot interleave with UI-driven navigation.
//
// Read accessors (Top, Depth, CurrentMenu, ...) are not locked and are
// expected to run on the UI goroutine while the engine is otherwise idle.
type Navigator struct {
	surface  Surface
	sched    *transition.Scheduler
	dispatch func(func())

	renderSurroundings bool
	onTitle            func(string)

	stackMu sync.Mutex
	stack   []StackItem

	currentItems  []menu.Item
	currentScreen page.Screen
	title         string

	// Menu pages come in pairs so page flips have a distinct source and
	// target screen to animate between.
	menuPage RenderedPage
	menuAlt  RenderedPage

	// menuSubs holds menu-level subscriptions (heading, sub-heading,
	// placeholder), rebuilt on every item-window re-render. screenSubs
	// holds screen-level ones (items, title), rebuilt only on
	// navigation. Each set carries its own lock.
	menuSubs   subscriptionSet
	screenSubs subscriptionSet
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithRenderSurroundings pads each page window with a dimmed preview item
// from the adjacent pages.
func WithRenderSurroundings() Option {
	return func(n *Navigator) { n.renderSurroundings = true }
}

// WithDispatch marshals engine work onto the UI-owning loop. The default
// runs synchronously on the calling goroutine.
func WithDispatch(dispatch func(func())) Option {
	return func(n *Navigator) { n.dispatch = dispatch }
}

// WithTitleListener is invoked whenever the active title changes.
func WithTitleListener(listener func(title string)) Option {
	return func(n *Navigator) { n.onTitle = listener }
}

// New creates a Navigator rendering through surface and switching screens
// through manager.
func New(surface Surface, manager transition.Manager, opts ...Option) *Navigator {
	n := &Navigator{
		surface:  surface,
		dispatch: func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(n)
	}
	n.sched = transition.NewScheduler(manager, n.dispatch)
	return n
}

// Scheduler exposes the transition scheduler, mainly so the host surface
// can report animation completion.
func (n *Navigator) Scheduler() *transition.Scheduler { return n.sched }

// Depth returns the number of stack items.
func (n *Navigator) Depth() int { return len(n.stack) }

// Top returns the active stack node. Panics with ErrEmptyStack when no
// root menu has been set.
func (n *Navigator) Top() StackItem {
	if len(n.stack) == 0 {
		panic(ErrEmptyStack)
	}
	return n.stack[len(n.stack)-1]
}

// Root returns the bottom stack node, which is always a menu.
func (n *Navigator) Root() *MenuStackItem {
	if len(n.stack) == 0 {
		panic(ErrEmptyStack)
	}
	root, ok := n.stack[0].(*MenuStackItem)
	if !ok {
		panic(ErrStackItemNotFound)
	}
	return root
}

// Title returns the resolved title of the active screen.
func (n *Navigator) Title() string { return n.title }

// CurrentScreen returns the screen backing the top of the stack.
func (n *Navigator) CurrentScreen() page.Screen { return n.currentScreen }

// CurrentMenu returns the active menu, nil when an application is on top
// or the stack is empty.
func (n *Navigator) CurrentMenu() menu.Menu {
	if len(n.stack) == 0 {
		return nil
	}
	if item, ok := n.stack[len(n.stack)-1].(*MenuStackItem); ok {
		return item.Menu
	}
	return nil
}

// CurrentApplication returns the active application, nil when a menu is on
// top or the stack is empty.
func (n *Navigator) CurrentApplication() page.Application {
	if len(n.stack) == 0 {
		return nil
	}
	if item, ok := n.stack[len(n.stack)-1].(*ApplicationStackItem); ok {
		return item.Application
	}
	return nil
}

// CurrentItems returns the resolved items of the active menu.
func (n *Navigator) CurrentItems() []menu.Item { return n.currentItems }

// Pages returns the number of pages of the active menu, 0 when no menu is
// active.
func (n *Navigator) Pages() int {
	return pageCount(n.CurrentMenu(), len(n.currentItems))
}

// PageIndex returns the active menu's page index, 0 when an application is
// on top.
func (n *Navigator) PageIndex() int {
	if len(n.stack) == 0 {
		return 0
	}
	if item, ok := n.stack[len(n.stack)-1].(*MenuStackItem); ok {
		return item.PageIndex
	}
	return 0
}

// IsScrollbarVisible reports whether a scroll indicator is needed.
func (n *Navigator) IsScrollbarVisible() bool {
	return n.CurrentApplication() == nil && n.Pages() > 1
}

// SetRootMenu establishes the root menu. On the first call it pushes the
// root node; later calls replace the root in place, preserving any
// existing selection chain.
func (n *Navigator) SetRootMenu(m menu.Menu) {
	n.dispatch(func() {
		n.stackMu.Lock()
		defer n.stackMu.Unlock()
		if len(n.stack) == 0 {
			n.pushMenu(m, nil, "", transition.Request{Kind: transition.None})
			return
		}
		n.replaceMenu(n.Root(), m, nil)
	})
}

// OpenMenu opens a static menu on top of the stack.
func (n *Navigator) OpenMenu(m menu.Menu) {
	n.OpenMenuValue(menu.Static(m), "", nil)
}

// OpenMenuValue resolves the possibly dynamic menu value and opens it. The
// first resolution pushes a new stack node; later resolutions replace that
// node in place so a live submenu can update without disturbing
// navigation depth. key associates the node with the parent's selection so
// it survives ancestor-menu replacement.
func (n *Navigator) OpenMenuValue(value menu.Value[menu.Menu], key string, parent StackItem) {
	// mu guards the handoff of the unsubscriber between the resolving
	// goroutine and the dispatched push; exactly one side registers it.
	var (
		mu          sync.Mutex
		stackItem   *MenuStackItem
		unsubscribe menu.Unsubscribe
	)

	handleMenuChange := func(m menu.Menu) {
		n.dispatch(func() {
			n.stackMu.Lock()
			defer n.stackMu.Unlock()
			mu.Lock()
			defer mu.Unlock()
			if stackItem != nil {
				stackItem = n.replaceMenu(stackItem, m, nil)
			} else if m != nil {
				stackItem = n.pushMenu(m, parent, key, transition.Request{
					Kind:      transition.Slide,
					Direction: transition.Left,
				})
				if unsubscribe != nil {
					stackItem.AddSubscription(unsubscribe)
				}
			}
		})
	}

	u := value.Resolve(handleMenuChange)
	mu.Lock()
	unsubscribe = u
	if stackItem != nil {
		stackItem.AddSubscription(u)
	}
	mu.Unlock()
}

// OpenApplication assigns the application a fresh identity and pushes it
// onto the stack.
func (n *Navigator) OpenApplication(app page.Application) {
	n.openApplication(app, nil)
}

func (n *Navigator) openApplication(app page.Application, parent StackItem) {
	n.dispatch(func() {
		n.stackMu.Lock()
		defer n.stackMu.Unlock()
		app.SetID(uuid.NewString())
		n.pushApplication(app, parent, transition.Request{
			Kind:      transition.Swap,
			Duration:  200 * time.Millisecond,
			Direction: transition.Left,
		})
	})
}

// CloseApplication closes app and every stack item opened on top of it,
// i.e. every item whose lineage contains app. Buried items are removed
// silently; when the top of the stack belongs to the cascade it is removed
// through the normal pop path so the close animation plays.
func (n *Navigator) CloseApplication(app page.Application) {
	n.dispatch(func() {
		n.stackMu.Lock()
		defer n.stackMu.Unlock()

		removing := map[StackItem]bool{}
		for _, item := range n.stack {
			if inLineageOf(item, app) {
				removing[item] = true
			}
		}
		if len(removing) == 0 {
			return
		}

		top := n.stack[len(n.stack)-1]
		for item := range removing {
			if item == top {
				continue
			}
			item.ClearSubscriptions()
			if appItem, ok := item.(*ApplicationStackItem); ok {
				dispatchClose(appItem.Application)
			}
		}

		kept := n.stack[:0:0]
		for _, item := range n.stack {
			if !removing[item] || item == top {
				kept = append(kept, item)
			}
		}
		n.setStack(kept)

		if removing[top] {
			n.pop(transition.Request{Direction: transition.Right}, false)
		}
		events.Nav.CloseApplication(app.ID(), len(removing))
	})
}

// Select activates the item at the given page-relative slot. Out-of-range
// slots and selections made while no screen is rendered or while a switch
// is still being prepared degrade to a no-op.
func (n *Navigator) Select(slot int) error {
	if n.currentScreen == nil {
		logging.Warn("select ignored: no current screen")
		return nil
	}
	if n.sched.Preparing() {
		return nil
	}
	provider, ok := n.currentScreen.(ItemProvider)
	if !ok {
		return nil
	}
	parent := n.Top()
	item := provider.Item(slot)
	if item == nil {
		return nil
	}
	events.Nav.Select(slot, item.Base().Label.Peek())
	return n.SelectItem(item, parent)
}

// SelectItem dispatches the item by kind: actions run, submenus open,
// applications instantiate and open. Display-only items are inert.
func (n *Navigator) SelectItem(item menu.Item, parent StackItem) error {
	switch it := item.(type) {
	case *menu.ActionItem:
		return n.selectActionItem(it, parent)
	case *menu.ApplicationItem:
		n.selectApplicationItem(it, parent)
	case *menu.SubMenuItem:
		n.selectSubMenuItem(it, parent)
	}
	return nil
}

func (n *Navigator) selectActionItem(item *menu.ActionItem, parent StackItem) error {
	if item.Action == nil {
		return nil
	}
	result := item.Action()
	if result == nil {
		return nil
	}
	switch r := result.(type) {
	case menu.Menu:
		n.OpenMenuValue(menu.Static(r), item.Key, parent)
	case func() menu.Menu:
		n.OpenMenuValue(menu.Compute(r), item.Key, parent)
	case menu.Value[menu.Menu]:
		n.OpenMenuValue(r, item.Key, parent)
	case page.Factory:
		n.openApplication(r(), parent)
	case func() page.Application:
		n.openApplication(r(), parent)
	case page.Application:
		n.openApplication(r, parent)
	default:
		return &UnsupportedActionResultError{Result: result}
	}
	return nil
}

func (n *Navigator) selectApplicationItem(item *menu.ApplicationItem, parent StackItem) {
	var instance page.Application

	unsubscribe := item.Application.Resolve(func(factory page.Factory) {
		n.dispatch(func() {
			if instance != nil {
				n.CloseApplication(instance)
			}
			if factory == nil {
				return
			}
			instance = factory()
			n.openApplication(instance, parent)
		})
	})
	n.Top().AddSubscription(unsubscribe)
}

func (n *Navigator) selectSubMenuItem(item *menu.SubMenuItem, parent StackItem) {
	n.OpenMenuValue(item.SubMenu, item.Key, parent)
}

// GoDown moves to the next page, wrapping around after the last one. An
// application on top receives the key instead, if it handles it.
func (n *Navigator) GoDown() {
	n.dispatch(func() {
		if app := n.CurrentApplication(); app != nil {
			if handler, ok := app.(page.DownHandler); ok {
				handler.GoDown()
			}
			return
		}
		n.flipPage(+1, transition.Up)
	})
}

// GoUp moves to the previous page, wrapping around before the first one.
// An application on top receives the key instead, if it handles it.
func (n *Navigator) GoUp() {
	n.dispatch(func() {
		if app := n.CurrentApplication(); app != nil {
			if handler, ok := app.(page.UpHandler); ok {
				handler.GoUp()
			}
			return
		}
		n.flipPage(-1, transition.Down)
	})
}

func (n *Navigator) flipPage(delta int, direction transition.Direction) {
	pages := n.Pages()
	if pages <= 1 {
		return
	}
	m := n.CurrentMenu()
	if m == nil {
		return
	}
	top := n.stack[len(n.stack)-1].(*MenuStackItem)
	top.PageIndex = ((top.PageIndex+delta)%pages + pages) % pages
	events.Nav.Page(top.PageIndex, pages)

	incoming := n.menuAlt
	if incoming == nil {
		return
	}
	incoming.SetPageIndex(top.PageIndex)
	incoming.SetWindow(window(m, n.currentItems, top.PageIndex, n.renderSurroundings))
	n.menuPage, n.menuAlt = incoming, n.menuPage
	n.currentScreen = incoming
	n.sched.SwitchTo(transition.Request{
		Screen:    incoming,
		Kind:      transition.Slide,
		Direction: direction,
	})
}

// GoBack pops the stack. An application on top is first offered the key;
// when it declines, it is closed. The root menu is never popped. Panics
// with ErrEmptyStack when no root menu was ever set.
func (n *Navigator) GoBack() {
	n.dispatch(func() {
		if len(n.stack) == 0 {
			panic(ErrEmptyStack)
		}
		if app := n.CurrentApplication(); app != nil {
			if handler, ok := app.(page.BackHandler); ok && handler.GoBack() {
				return
			}
			n.CloseApplication(app)
			return
		}
		if n.CurrentMenu() != nil {
			n.stackMu.Lock()
			defer n.stackMu.Unlock()
			n.pop(transition.Request{Direction: transition.Right}, false)
		}
	})
}

// GoHome truncates the stack to the root menu, closing everything above it,
// and clears the root's recorded selection.
func (n *Navigator) GoHome() {
	n.dispatch(func() {
		n.stackMu.Lock()
		defer n.stackMu.Unlock()
		if len(n.stack) == 0 {
			return
		}
		removed := len(n.stack) - 1
		for _, item := range n.stack[1:] {
			item.ClearSubscriptions()
			if appItem, ok := item.(*ApplicationStackItem); ok {
				dispatchClose(appItem.Application)
			}
		}
		n.Root().Selection = nil
		n.setStack(n.stack[:1])
		n.sched.SwitchTo(transition.Request{
			Screen: n.currentScreen,
			Kind:   transition.RiseIn,
		})
		events.Nav.Home(removed)
	})
}

// pushMenu appends a new menu node. Callers hold the stack mutex.
func (n *Navigator) pushMenu(m menu.Menu, parent StackItem, key string, req transition.Request) *MenuStackItem {
	item := &MenuStackItem{baseItem: newBaseItem(parent), Menu: m}
	if parentMenu, ok := parent.(*MenuStackItem); ok {
		parentMenu.Selection = &Selection{Key: key, Item: item}
	}
	n.setStack(append(n.stack, item))
	req.Screen = n.currentScreen
	n.sched.SwitchTo(req)
	events.Nav.Push("menu", item.Title(), len(n.stack))
	return item
}

// pushApplication appends a new application node. Callers hold the stack
// mutex.
func (n *Navigator) pushApplication(app page.Application, parent StackItem, req transition.Request) *ApplicationStackItem {
	item := &ApplicationStackItem{baseItem: newBaseItem(parent), Application: app}
	n.setStack(append(n.stack, item))
	req.Screen = n.currentScreen
	n.sched.SwitchTo(req)
	events.Nav.Push("application", item.Title(), len(n.stack))
	return item
}

// pop removes the top node. Popping the root is a no-op. Callers hold the
// stack mutex.
func (n *Navigator) pop(req transition.Request, keepSubscriptions bool) {
	if len(n.stack) <= 1 {
		return
	}
	popping := n.stack[len(n.stack)-1]
	if !keepSubscriptions {
		popping.ClearSubscriptions()
	}
	if appItem, ok := popping.(*ApplicationStackItem); ok {
		dispatchClose(appItem.Application)
	}
	if parentMenu, ok := popping.Parent().(*MenuStackItem); ok {
		parentMenu.Selection = nil
	}

	n.setStack(n.stack[:len(n.stack)-1])

	if req.Kind == transition.None {
		req.Kind = transition.Slide
		if _, ok := n.stack[len(n.stack)-1].(*ApplicationStackItem); ok {
			req.Kind = transition.Swap
		}
	}
	req.Screen = n.currentScreen
	n.sched.SwitchTo(req)
	events.Nav.Pop(len(n.stack))
}

// replaceMenu swaps the menu behind an existing stack node, keeping its
// page index and subscriptions, and resurrects the drilled-into selection
// chain by key when the replacement menu still carries a matching submenu
// item. Callers hold the stack mutex.
func (n *Navigator) replaceMenu(stackItem *MenuStackItem, m menu.Menu, parent StackItem) *MenuStackItem {
	index := -1
	for i, item := range n.stack {
		if item == stackItem {
			index = i
			break
		}
	}
	if index < 0 {
		panic(ErrStackItemNotFound)
	}

	var selected *menu.SubMenuItem
	if stackItem.Selection != nil {
		for _, item := range menu.ItemsOf(m) {
			subMenuItem, ok := item.(*menu.SubMenuItem)
			if !ok || subMenuItem.Key != stackItem.Selection.Key {
				continue
			}
			if selected != nil {
				panic(&duplicateKeyError{key: stackItem.Selection.Key})
			}
			selected = subMenuItem
		}
	}

	if parent == nil {
		parent = stackItem.parent
	}
	newItem := &MenuStackItem{
		baseItem:  baseItem{parent: parent, subs: stackItem.subs},
		Menu:      m,
		PageIndex: stackItem.PageIndex,
	}
	n.stack[index] = newItem

	if selected != nil && stackItem.Selection != nil {
		if subMenu, ok := selected.SubMenu.Literal(); ok && subMenu != nil {
			newItem.Selection = &Selection{
				Key:  stackItem.Selection.Key,
				Item: n.replaceMenu(stackItem.Selection.Item, subMenu, newItem),
			}
		}
	}

	if index == len(n.stack)-1 {
		n.render()
		n.sched.SwitchTo(transition.Request{
			Screen: n.currentScreen,
			Kind:   transition.None,
		})
	}
	events.Nav.Replace(newItem.Title(), len(n.stack))
	return newItem
}

// setStack installs the new stack and re-renders the top of it.
func (n *Navigator) setStack(stack []StackItem) {
	n.stack = stack
	n.render()
}

// render rebuilds the active screen from the top of the stack, tearing
// down and re-creating the screen-level subscriptions.
func (n *Navigator) render() {
	n.screenSubs.Clear()

	if len(n.stack) == 0 {
		return
	}

	var title menu.Value[string]
	switch top := n.stack[len(n.stack)-1].(type) {
	case *ApplicationStackItem:
		n.currentScreen = top.Application
		n.menuPage, n.menuAlt = nil, nil
		title = menu.Static(top.Application.Title())
	case *MenuStackItem:
		n.renderMenuItem(top)
		title = top.Menu.MenuTitle()
	}

	n.screenSubs.Add(title.Resolve(func(t string) {
		n.dispatch(func() { n.setTitle(t) })
	}))
}

// renderMenuItem subscribes to the menu's dynamic content. The first items
// delivery builds the page pair; later deliveries update both pages in
// place so depth and paging survive live menu updates.
func (n *Navigator) renderMenuItem(top *MenuStackItem) {
	m := top.Menu
	var built bool
	var placeholder string

	n.screenSubs.Add(m.MenuItems().Resolve(func(items []menu.Item) {
		n.dispatch(func() {
			n.currentItems = items
			pages := pageCount(m, len(items))
			if top.PageIndex >= pages {
				top.PageIndex = pages - 1
			}
			if !built {
				built = true
				n.menuSubs.Clear()
				n.menuPage = n.renderMenu(m, top)
				n.menuAlt = n.renderMenu(m, top)
				n.currentScreen = n.menuPage
			} else {
				for _, pg := range []RenderedPage{n.menuPage, n.menuAlt} {
					if pg == nil {
						continue
					}
					pg.SetPageIndex(top.PageIndex)
					pg.SetWindow(window(m, items, top.PageIndex, n.renderSurroundings))
				}
			}
			for _, pg := range []RenderedPage{n.menuPage, n.menuAlt} {
				if pg != nil {
					pg.SetPlaceholder(placeholder)
				}
			}
		})
	}))

	n.menuSubs.Add(m.MenuPlaceholder().Resolve(func(p string) {
		n.dispatch(func() {
			placeholder = p
			for _, pg := range []RenderedPage{n.menuPage, n.menuAlt} {
				if pg != nil {
					pg.SetPlaceholder(p)
				}
			}
		})
	}))
}

// renderMenu builds one rendered page for the menu's current window and
// wires the heading subscriptions of headed menus.
func (n *Navigator) renderMenu(m menu.Menu, top *MenuStackItem) RenderedPage {
	_, isHeaded := m.(*menu.HeadedMenu)
	pg := n.surface.Render(
		window(m, n.currentItems, top.PageIndex, n.renderSurroundings),
		top.PageIndex,
		n.renderSurroundings,
		isHeaded,
		len(n.currentItems),
	)

	if headed, ok := m.(*menu.HeadedMenu); ok {
		if headingPage, ok := pg.(HeadingPage); ok {
			n.menuSubs.Add(headed.Heading.Resolve(func(heading string) {
				n.dispatch(func() { headingPage.SetHeading(heading) })
			}))
			n.menuSubs.Add(headed.SubHeading.Resolve(func(subHeading string) {
				n.dispatch(func() { headingPage.SetSubHeading(subHeading) })
			}))
		}
	}
	return pg
}

func (n *Navigator) setTitle(title string) {
	if n.title == title {
		return
	}
	n.title = title
	if n.onTitle != nil {
		n.onTitle(title)
	}
}

// ClearSubscriptions releases every live subscription held by the engine
// and its stack items. Call when tearing the controller down.
func (n *Navigator) ClearSubscriptions() {
	n.menuSubs.Clear()
	n.screenSubs.Clear()
	for _, item := range n.stack {
		item.ClearSubscriptions()
	}
}

func dispatchClose(app page.Application) {
	if closer, ok := app.(page.Closer); ok {
		closer.OnClose()
	}
}

type duplicateKeyError struct{ key string }

func (e *duplicateKeyError) Error() string {
	return "found more than one submenu item with key " + e.key
}
