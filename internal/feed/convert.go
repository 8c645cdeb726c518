package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultConvertEndpoint is the public feed-to-JSON conversion service.
	DefaultConvertEndpoint = "https://api.rss2json.com/v1/api.json"

	convertTimeout = 15 * time.Second
)

// ConvertClient fetches feeds through a feed-to-JSON conversion service.
// The service takes the feed URL as a query parameter and returns a status
// flag plus the raw item list.
type ConvertClient struct {
	endpoint string
	client   *http.Client
}

// NewConvertClient creates a conversion service client. Empty endpoint and
// non-positive timeout select the defaults.
func NewConvertClient(endpoint string, timeout time.Duration) *ConvertClient {
	if endpoint == "" {
		endpoint = DefaultConvertEndpoint
	}
	if timeout <= 0 {
		timeout = convertTimeout
	}
	return &ConvertClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type convertResponse struct {
	Status string        `json:"status"`
	Items  []convertItem `json:"items"`
}

type convertItem struct {
	GUID        string           `json:"guid"`
	Title       string           `json:"title"`
	PubDate     string           `json:"pubDate"`
	Link        string           `json:"link"`
	Description string           `json:"description"`
	Content     string           `json:"content"`
	Thumbnail   string           `json:"thumbnail"`
	Enclosure   convertEnclosure `json:"enclosure"`
}

type convertEnclosure struct {
	Link string `json:"link"`
}

// Fetch requests the conversion of one feed URL and returns its raw items.
// A non-"ok" status flag from the service is an error.
func (c *ConvertClient) Fetch(ctx context.Context, feedURL string) ([]RawItem, error) {
	reqURL := c.endpoint + "?rss_url=" + url.QueryEscape(feedURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", feedURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("convert %s: status %d", feedURL, resp.StatusCode)
	}

	var cr convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decode %s: %w", feedURL, err)
	}
	if cr.Status != "ok" {
		return nil, fmt.Errorf("convert %s: service status %q", feedURL, cr.Status)
	}

	items := make([]RawItem, 0, len(cr.Items))
	for _, it := range cr.Items {
		items = append(items, RawItem{
			GUID:        it.GUID,
			Title:       it.Title,
			Description: it.Description,
			Content:     it.Content,
			Link:        it.Link,
			PubDate:     it.PubDate,
			Thumbnail:   it.Thumbnail,
			Enclosure:   it.Enclosure.Link,
		})
	}
	return items, nil
}
