package notification

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/pi-menu-control/internal/theme"
	"github.com/atomicstack/pi-menu-control/menu"
	"github.com/atomicstack/pi-menu-control/page"
)

// Manager owns the feed. All mutations go through it; interested menus
// subscribe to the published snapshot and re-render on every change.
type Manager struct {
	mu    sync.Mutex
	feed  *menu.Observable[[]*Notification]
	clock func() time.Time
}

// NewManager returns an empty feed.
func NewManager() *Manager {
	return &Manager{
		feed:  menu.NewObservable[[]*Notification](nil),
		clock: time.Now,
	}
}

// Add inserts a notification, keeping the feed ordered by importance and
// then recency.
func (m *Manager) Add(n *Notification) {
	m.mu.Lock()
	feed := m.live(m.feed.Get())
	feed = append(feed, n)
	sort.SliceStable(feed, func(i, j int) bool {
		if feed[i].Importance != feed[j].Importance {
			return feed[i].Importance > feed[j].Importance
		}
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
	m.mu.Unlock()
	m.feed.Set(feed)
}

// Remove deletes the notification with the given id, running its dismiss
// hook.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	feed := m.live(m.feed.Get())
	var removed *Notification
	out := feed[:0]
	for _, n := range feed {
		if n.ID == id {
			removed = n
			continue
		}
		out = append(out, n)
	}
	m.mu.Unlock()
	if removed == nil {
		return
	}
	m.feed.Set(out)
	if removed.OnDismiss != nil {
		removed.OnDismiss()
	}
}

// MarkRead flags the notification as read and republishes the feed.
func (m *Manager) MarkRead(id string) {
	m.mu.Lock()
	feed := m.live(m.feed.Get())
	changed := false
	for _, n := range feed {
		if n.ID == id && !n.Read {
			n.Read = true
			changed = true
		}
	}
	m.mu.Unlock()
	if changed {
		m.feed.Set(feed)
	}
}

// Notifications returns the current feed, expired entries pruned.
func (m *Manager) Notifications() []*Notification {
	m.mu.Lock()
	feed := m.live(m.feed.Get())
	m.mu.Unlock()
	return feed
}

// UnreadCount returns how many notifications are unread.
func (m *Manager) UnreadCount() int {
	count := 0
	for _, n := range m.Notifications() {
		if !n.Read {
			count++
		}
	}
	return count
}

// Subscribe delivers the current feed immediately and again on every
// change.
func (m *Manager) Subscribe(deliver func([]*Notification)) menu.Unsubscribe {
	return m.feed.Subscribe(deliver)
}

// Search returns the notifications whose title or content fuzzily matches
// the query, best match first. An empty query returns the whole feed.
func (m *Manager) Search(query string) []*Notification {
	feed := m.Notifications()
	if query == "" {
		return feed
	}
	haystack := make([]string, len(feed))
	for i, n := range feed {
		haystack[i] = n.Title + " " + n.Content
	}
	ranks := fuzzy.RankFindNormalizedFold(query, haystack)
	sort.Sort(ranks)
	out := make([]*Notification, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, feed[rank.OriginalIndex])
	}
	return out
}

// live drops expired entries; callers hold m.mu.
func (m *Manager) live(feed []*Notification) []*Notification {
	now := m.clock()
	out := make([]*Notification, 0, len(feed))
	for _, n := range feed {
		if n.Expired(now) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// MenuItems projects the feed into menu items opening the viewer page.
// Unread entries keep their importance color; read entries render dimmed.
func (m *Manager) MenuItems(styles *theme.Styles) []menu.Item {
	return m.projectItems(m.Notifications(), styles)
}

func (m *Manager) projectItems(feed []*Notification, styles *theme.Styles) []menu.Item {
	items := make([]menu.Item, 0, len(feed))
	for _, n := range feed {
		n := n
		opacity := 1.0
		if n.Read {
			opacity = 0.6
		}
		items = append(items, &menu.ApplicationItem{
			ItemBase: menu.ItemBase{
				Key:     n.ID,
				Label:   menu.Static(n.Title),
				Icon:    menu.Static(n.DisplayIcon()),
				Color:   menu.Static(n.DisplayColor()),
				Opacity: opacity,
			},
			Application: menu.Static[page.Factory](func() page.Application {
				return NewViewer(m, n, styles)
			}),
		})
	}
	return items
}

// Menu builds the live notifications submenu: a headed menu whose
// sub-heading tracks the unread count. Extra items are kept ahead of the
// feed so hosts can add entry points such as a search page.
func (m *Manager) Menu(styles *theme.Styles, extra ...menu.Item) menu.Menu {
	return &menu.HeadedMenu{
		Title:   menu.Static("Notifications"),
		Heading: menu.Static("Notifications"),
		SubHeading: menu.Watch(menu.SubscribableFunc[string](func(deliver func(string)) menu.Unsubscribe {
			return m.Subscribe(func([]*Notification) {
				deliver(fmt.Sprintf("%d unread", m.UnreadCount()))
			})
		})),
		Items: menu.Watch(menu.SubscribableFunc[[]menu.Item](func(deliver func([]menu.Item)) menu.Unsubscribe {
			return m.Subscribe(func([]*Notification) {
				items := append([]menu.Item(nil), extra...)
				deliver(append(items, m.MenuItems(styles)...))
			})
		})),
		Placeholder: menu.Static("No notifications"),
	}
}

// SearchMenu builds a one-shot results menu for the query, best match
// first.
func (m *Manager) SearchMenu(query string, styles *theme.Styles) menu.Menu {
	results := m.Search(query)
	return &menu.HeadedMenu{
		Title:       menu.Static("Results"),
		Heading:     menu.Static(fmt.Sprintf("Results for %q", query)),
		SubHeading:  menu.Static(fmt.Sprintf("%d matching", len(results))),
		Items:       menu.Static(m.projectItems(results, styles)),
		Placeholder: menu.Static("No matches"),
	}
}
