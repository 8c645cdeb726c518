// Package feed implements the news aggregation pipeline: concurrent
// per-source fetches, normalization of raw entries into a common item
// shape, and a single combined list sorted newest first.
package feed

import (
	"context"
	"time"
)

// Source is a configured news outlet with a feed URL and default category.
// The set is fixed for the process lifetime.
type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Category string `yaml:"category"`
}

// DefaultSources lists the outlets fetched when none are configured.
var DefaultSources = []Source{
	{Name: "VnExpress", URL: "https://vnexpress.net/rss/tin-moi-nhat.rss", Category: "Mới nhất"},
	{Name: "Tuổi Trẻ", URL: "https://tuoitre.vn/rss/tin-moi-nhat.rss", Category: "Mới nhất"},
	{Name: "Dân Trí", URL: "https://dantri.com.vn/rss/home.rss", Category: "Mới nhất"},
	{Name: "Thanh Niên", URL: "https://thanhnien.vn/rss/home.rss", Category: "Mới nhất"},
}

// Item is a normalized article derived from one raw feed entry. Items are
// built fresh on every aggregation and discarded on the next.
type Item struct {
	ID          string    // guid when present, otherwise the link URL
	Title       string
	Description string    // markup stripped, truncated for display
	Content     string    // raw body, passed through when present
	Link        string
	PubDate     time.Time // zero when the raw date did not parse
	Thumbnail   string
	Source      string    // owning Source.Name
	Category    string    // owning Source.Category
}

// RawItem is one entry as a fetcher returns it, before normalization.
type RawItem struct {
	GUID        string
	Title       string
	Description string // may contain markup
	Content     string
	Link        string
	PubDate     string
	Thumbnail   string
	Enclosure   string // enclosure link, used as thumbnail fallback
}

// Fetcher retrieves the raw item list for one feed URL.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]RawItem, error)
}
