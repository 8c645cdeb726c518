// Package digest renders an aggregated news feed for display. Formatters
// never re-sort: items print in the order the aggregator (and any filters)
// produced them.
package digest

import (
	"io"

	"github.com/dvhoang/congdan/internal/feed"
)

// Input is everything a formatter needs to render a feed.
type Input struct {
	Items    []feed.Item
	Sources  int    // number of configured sources
	Total    int    // items fetched before filtering
	Category string // active category filter, empty when none
	Query    string // active search query, empty when none
}

// Formatter writes a formatted feed to w.
type Formatter interface {
	Format(w io.Writer, input Input) error
}

// groupByCategory splits items by category, preserving item order within a
// group and first-seen order among groups.
func groupByCategory(items []feed.Item) (order []string, groups map[string][]feed.Item) {
	groups = make(map[string][]feed.Item)
	for _, it := range items {
		if _, ok := groups[it.Category]; !ok {
			order = append(order, it.Category)
		}
		groups[it.Category] = append(groups[it.Category], it)
	}
	return order, groups
}
