package menu

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterItems returns the items whose current label fuzzily matches query,
// best matches first. An empty query returns the items unchanged.
func FilterItems(items []Item, query string) []Item {
	if query == "" {
		return items
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Base().Label.Peek()
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	sort.Sort(ranks)
	matched := make([]Item, 0, len(ranks))
	for _, rank := range ranks {
		matched = append(matched, items[rank.OriginalIndex])
	}
	return matched
}
