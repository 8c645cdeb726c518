package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	directTimeout   = 15 * time.Second
	directUserAgent = "Mozilla/5.0 (compatible; congdan/1.0; +https://github.com/dvhoang/congdan)"
)

// DirectFetcher parses outlet feeds itself instead of going through the
// conversion service, removing the third-party proxy from the trust path.
type DirectFetcher struct {
	client *http.Client
}

// NewDirectFetcher creates a direct RSS/Atom fetcher. Non-positive timeout
// selects the default.
func NewDirectFetcher(timeout time.Duration) *DirectFetcher {
	if timeout <= 0 {
		timeout = directTimeout
	}
	return &DirectFetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: &uaTransport{base: http.DefaultTransport},
		},
	}
}

// uaTransport injects a User-Agent header into every request. Several of
// the configured outlets reject requests without one.
type uaTransport struct {
	base http.RoundTripper
}

func (t *uaTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", directUserAgent)
	return t.base.RoundTrip(req)
}

// Fetch downloads and parses one feed URL into raw items.
func (d *DirectFetcher) Fetch(ctx context.Context, feedURL string) ([]RawItem, error) {
	fp := gofeed.NewParser()
	fp.Client = d.client

	f, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", feedURL, err)
	}

	items := make([]RawItem, 0, len(f.Items))
	for _, it := range f.Items {
		items = append(items, rawFromGofeed(it))
	}
	return items, nil
}

func rawFromGofeed(it *gofeed.Item) RawItem {
	raw := RawItem{
		GUID:        it.GUID,
		Title:       it.Title,
		Description: it.Description,
		Content:     it.Content,
		Link:        it.Link,
		PubDate:     it.Published,
	}
	if it.PublishedParsed != nil {
		raw.PubDate = it.PublishedParsed.Format(time.RFC3339)
	} else if it.UpdatedParsed != nil {
		raw.PubDate = it.UpdatedParsed.Format(time.RFC3339)
	}
	if it.Image != nil {
		raw.Thumbnail = it.Image.URL
	}
	for _, enc := range it.Enclosures {
		if enc == nil {
			continue
		}
		if raw.Enclosure == "" || strings.HasPrefix(enc.Type, "image/") {
			raw.Enclosure = enc.URL
		}
		if strings.HasPrefix(enc.Type, "image/") {
			break
		}
	}
	return raw
}
