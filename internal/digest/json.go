package digest

import (
	"encoding/json"
	"io"
	"time"
)

type jsonFeed struct {
	Meta  jsonMeta   `json:"meta"`
	Items []jsonItem `json:"items"`
}

type jsonMeta struct {
	Sources  int    `json:"sources"`
	Total    int    `json:"total"`
	Shown    int    `json:"shown"`
	Category string `json:"category,omitempty"`
	Query    string `json:"query,omitempty"`
}

type jsonItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Source      string `json:"source"`
	Category    string `json:"category"`
}

// JSONFormatter formats a feed as JSON.
type JSONFormatter struct{}

// NewJSON creates a JSON formatter.
func NewJSON() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the feed as JSON to w.
func (f *JSONFormatter) Format(w io.Writer, input Input) error {
	out := jsonFeed{
		Meta: jsonMeta{
			Sources:  input.Sources,
			Total:    input.Total,
			Shown:    len(input.Items),
			Category: input.Category,
			Query:    input.Query,
		},
		Items: make([]jsonItem, 0, len(input.Items)),
	}

	for _, it := range input.Items {
		ji := jsonItem{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Content:     it.Content,
			Link:        it.Link,
			Thumbnail:   it.Thumbnail,
			Source:      it.Source,
			Category:    it.Category,
		}
		if !it.PubDate.IsZero() {
			ji.PubDate = it.PubDate.Format(time.RFC3339)
		}
		out.Items = append(out.Items, ji)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
