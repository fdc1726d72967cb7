package navigation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/pi-menu-control/menu"
)

func actionItems(labels ...string) []menu.Item {
	items := make([]menu.Item, len(labels))
	for i, label := range labels {
		items[i] = &menu.ActionItem{ItemBase: menu.ItemBase{Label: menu.Static(label)}}
	}
	return items
}

func labels(items []menu.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		if item == nil {
			out[i] = ""
			continue
		}
		out[i] = item.Base().Label.Peek()
	}
	return out
}

func TestPageCountHeadless(t *testing.T) {
	m := &menu.HeadlessMenu{}
	cases := []struct {
		items int
		pages int
	}{
		{0, 1},
		{1, 1},
		{3, 1},
		{4, 2},
		{7, 3},
	}
	for _, tc := range cases {
		if got := pageCount(m, tc.items); got != tc.pages {
			t.Fatalf("headless %d items: expected %d pages, got %d", tc.items, tc.pages, got)
		}
	}
}

func TestPageCountHeadedReservesHeadingSlots(t *testing.T) {
	m := &menu.HeadedMenu{}
	cases := []struct {
		items int
		pages int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{4, 2},
		{5, 3},
	}
	for _, tc := range cases {
		if got := pageCount(m, tc.items); got != tc.pages {
			t.Fatalf("headed %d items: expected %d pages, got %d", tc.items, tc.pages, got)
		}
	}
}

func TestPageCountNilMenu(t *testing.T) {
	if got := pageCount(nil, 5); got != 0 {
		t.Fatalf("expected 0 pages for nil menu, got %d", got)
	}
}

func TestWindowHeadless(t *testing.T) {
	m := &menu.HeadlessMenu{}
	items := actionItems("a", "b", "c", "d", "e", "f", "g")

	if diff := cmp.Diff([]string{"a", "b", "c"}, labels(window(m, items, 0, false))); diff != "" {
		t.Fatalf("page 0 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"d", "e", "f"}, labels(window(m, items, 1, false))); diff != "" {
		t.Fatalf("page 1 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"g"}, labels(window(m, items, 2, false))); diff != "" {
		t.Fatalf("page 2 (-want +got):\n%s", diff)
	}
}

func TestWindowHeadedFirstPageIsShort(t *testing.T) {
	m := &menu.HeadedMenu{}
	items := actionItems("a", "b", "c", "d")

	if diff := cmp.Diff([]string{"a"}, labels(window(m, items, 0, false))); diff != "" {
		t.Fatalf("page 0 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "c", "d"}, labels(window(m, items, 1, false))); diff != "" {
		t.Fatalf("page 1 (-want +got):\n%s", diff)
	}
}

func TestWindowSurroundingsPadsWithDimmedPreviews(t *testing.T) {
	m := &menu.HeadlessMenu{}
	items := actionItems("a", "b", "c", "d", "e", "f", "g")

	first := window(m, items, 0, true)
	if len(first) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(first))
	}
	if first[0] != nil {
		t.Fatalf("expected nil leading preview on the first page")
	}
	next := first[4]
	if next == nil {
		t.Fatalf("expected trailing preview")
	}
	if _, ok := next.(*menu.DisplayItem); !ok {
		t.Fatalf("expected preview to be display-only, got %T", next)
	}
	if next.Base().Opacity != previewOpacity {
		t.Fatalf("expected preview opacity %v, got %v", previewOpacity, next.Base().Opacity)
	}
	if got := next.Base().Label.Peek(); got != "d" {
		t.Fatalf("expected preview of d, got %q", got)
	}

	last := window(m, items, 2, true)
	if last[0] == nil || last[0].Base().Label.Peek() != "f" {
		t.Fatalf("expected leading preview of f")
	}
	if last[len(last)-1] != nil {
		t.Fatalf("expected nil trailing preview on the last page")
	}
}
