package feed

import "strings"

// CategoryAll is the sentinel category matching every item.
const CategoryAll = "Tất cả"

// Filter retains items matching the selected category and search query.
// The category matches either the item's category exactly or, loosely, a
// source name containing the category string. The query is a
// case-insensitive substring match over title and description; an empty
// query retains everything. The input is never mutated or re-sorted.
func Filter(items []Item, category, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !matchCategory(it, category) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Title), q) &&
			!strings.Contains(strings.ToLower(it.Description), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchCategory(it Item, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return it.Category == category || strings.Contains(it.Source, category)
}
