package notification

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/pi-menu-control/menu"
)

func titles(feed []*Notification) []string {
	out := make([]string, len(feed))
	for i, n := range feed {
		out[i] = n.Title
	}
	return out
}

func TestAddOrdersByImportanceThenRecency(t *testing.T) {
	m := NewManager()
	m.Add(New("low", "", Low))
	m.Add(New("critical", "", Critical))
	older := New("medium-old", "", Medium)
	older.CreatedAt = time.Now().Add(-time.Hour)
	m.Add(older)
	m.Add(New("medium-new", "", Medium))

	want := []string{"critical", "medium-new", "medium-old", "low"}
	if diff := cmp.Diff(want, titles(m.Notifications())); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	m := NewManager()
	a := New("a", "", Low)
	b := New("b", "", Low)
	m.Add(a)
	m.Add(b)

	if got := m.UnreadCount(); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}
	m.MarkRead(a.ID)
	if got := m.UnreadCount(); got != 1 {
		t.Fatalf("expected 1 unread, got %d", got)
	}
	m.MarkRead(a.ID)
	if got := m.UnreadCount(); got != 1 {
		t.Fatalf("marking twice must not change the count, got %d", got)
	}
}

func TestRemoveRunsDismissHook(t *testing.T) {
	m := NewManager()
	dismissed := 0
	n := New("a", "", Low)
	n.OnDismiss = func() { dismissed++ }
	m.Add(n)

	m.Remove(n.ID)
	if len(m.Notifications()) != 0 {
		t.Fatalf("expected an empty feed")
	}
	if dismissed != 1 {
		t.Fatalf("expected the dismiss hook to run once, got %d", dismissed)
	}

	m.Remove(n.ID)
	if dismissed != 1 {
		t.Fatalf("removing a missing id must be a no-op")
	}
}

func TestExpiredNotificationsArePruned(t *testing.T) {
	m := NewManager()
	now := time.Now()
	m.clock = func() time.Time { return now }

	stale := New("stale", "", Low)
	stale.ExpiresAt = now.Add(time.Minute)
	m.Add(stale)
	m.Add(New("fresh", "", Low))

	now = now.Add(2 * time.Minute)
	if diff := cmp.Diff([]string{"fresh"}, titles(m.Notifications())); diff != "" {
		t.Fatalf("unexpected feed (-want +got):\n%s", diff)
	}
}

func TestSubscribeDeliversOnEveryChange(t *testing.T) {
	m := NewManager()
	var deliveries int
	unsubscribe := m.Subscribe(func([]*Notification) { deliveries++ })
	defer unsubscribe()

	if deliveries != 1 {
		t.Fatalf("expected synchronous initial delivery, got %d", deliveries)
	}
	m.Add(New("a", "", Low))
	if deliveries != 2 {
		t.Fatalf("expected a delivery per change, got %d", deliveries)
	}
}

func TestSearchRanksFuzzyMatches(t *testing.T) {
	m := NewManager()
	m.Add(New("Update available", "version 2.1", Low))
	m.Add(New("Disk almost full", "free some space", High))

	got := m.Search("disk")
	if len(got) != 1 || got[0].Title != "Disk almost full" {
		t.Fatalf("unexpected search result: %v", titles(got))
	}
	if got := m.Search(""); len(got) != 2 {
		t.Fatalf("empty query must return the whole feed, got %d", len(got))
	}
}

func TestMenuItemsProjectFeed(t *testing.T) {
	m := NewManager()
	n := New("Disk almost full", "free some space", Critical)
	m.Add(n)

	items := m.MenuItems(nil)
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	base := items[0].Base()
	if base.Key != n.ID {
		t.Fatalf("expected the notification id as item key")
	}
	if got := base.Color.Peek(); got != menu.DangerColor {
		t.Fatalf("expected critical color, got %q", got)
	}
	if base.Opacity != 1 {
		t.Fatalf("unread items must be opaque, got %v", base.Opacity)
	}

	m.MarkRead(n.ID)
	if got := m.MenuItems(nil)[0].Base().Opacity; got != 0.6 {
		t.Fatalf("read items must render dimmed, got %v", got)
	}
}

func TestMenuSubHeadingTracksUnread(t *testing.T) {
	m := NewManager()
	feedMenu := m.Menu(nil).(*menu.HeadedMenu)

	var last string
	unsubscribe := feedMenu.SubHeading.Resolve(func(s string) { last = s })
	defer unsubscribe()
	if last != "0 unread" {
		t.Fatalf("expected 0 unread, got %q", last)
	}

	m.Add(New("a", "", Low))
	if last != "1 unread" {
		t.Fatalf("expected 1 unread, got %q", last)
	}
}

func TestMenuKeepsExtraItemsAheadOfFeed(t *testing.T) {
	m := NewManager()
	m.Add(New("Disk almost full", "free some space", Low))
	search := &menu.ActionItem{ItemBase: menu.ItemBase{Key: "search", Label: menu.Static("Search")}}
	feedMenu := m.Menu(nil, search).(*menu.HeadedMenu)

	var items []menu.Item
	unsubscribe := feedMenu.Items.Resolve(func(delivered []menu.Item) { items = delivered })
	defer unsubscribe()

	if len(items) != 2 || items[0].Base().Key != "search" {
		t.Fatalf("expected the search entry ahead of the feed, got %d items", len(items))
	}

	m.Add(New("Update available", "version 2.1", Low))
	if len(items) != 3 || items[0].Base().Key != "search" {
		t.Fatalf("expected the search entry to survive feed changes")
	}
}

func TestSearchMenuListsMatches(t *testing.T) {
	m := NewManager()
	disk := New("Disk almost full", "free some space", High)
	m.Add(disk)
	m.Add(New("Update available", "version 2.1", Low))

	results := m.SearchMenu("disk", nil).(*menu.HeadedMenu)
	items, _ := results.Items.Literal()
	if len(items) != 1 || items[0].Base().Key != disk.ID {
		t.Fatalf("expected only the disk notification, got %d items", len(items))
	}
	if got := results.SubHeading.Peek(); got != "1 matching" {
		t.Fatalf("expected a match count sub-heading, got %q", got)
	}

	empty := m.SearchMenu("nothing like this", nil).(*menu.HeadedMenu)
	if items, _ := empty.Items.Literal(); len(items) != 0 {
		t.Fatalf("expected no matches, got %d", len(items))
	}
	if got := empty.MenuPlaceholder().Peek(); got != "No matches" {
		t.Fatalf("expected the no-match placeholder, got %q", got)
	}
}

func TestViewerMarksReadAndOffersDismiss(t *testing.T) {
	m := NewManager()
	n := New("a", "body", Low)
	m.Add(n)

	v := NewViewer(m, n, nil)
	if m.UnreadCount() != 0 {
		t.Fatalf("opening the viewer must mark the notification read")
	}
	if v.Item(0) != nil || v.Item(1) != nil {
		t.Fatalf("only the last slot offers an action")
	}
	dismiss, ok := v.Item(2).(*menu.ActionItem)
	if !ok {
		t.Fatalf("expected a dismiss action")
	}
	if result := dismiss.Action(); result != nil {
		t.Fatalf("dismiss must not navigate, got %v", result)
	}
	if len(m.Notifications()) != 0 {
		t.Fatalf("expected the notification to be removed")
	}
}

func TestViewerWithoutDismiss(t *testing.T) {
	m := NewManager()
	n := New("a", "body", Low)
	n.Dismissable = false
	m.Add(n)

	v := NewViewer(m, n, nil)
	if v.Item(2) != nil {
		t.Fatalf("non-dismissable notifications must not offer an action")
	}
}
