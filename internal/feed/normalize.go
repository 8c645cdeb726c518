package feed

import (
	"fmt"
	"hash/fnv"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	descriptionLimit = 160
	truncationMark   = "..."
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// pubDateLayouts covers the conversion service's date shape plus the usual
// RSS suspects for the direct path.
var pubDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

// normalize maps one raw entry to an Item stamped with its owning source.
func normalize(raw RawItem, src Source) Item {
	id := itemID(raw)
	return Item{
		ID:          id,
		Title:       raw.Title,
		Description: summarize(raw.Description),
		Content:     raw.Content,
		Link:        raw.Link,
		PubDate:     parsePubDate(raw.PubDate),
		Thumbnail:   thumbnail(raw, id),
		Source:      src.Name,
		Category:    src.Category,
	}
}

// itemID prefers the global unique id and falls back to the link URL.
func itemID(raw RawItem) string {
	if raw.GUID != "" {
		return raw.GUID
	}
	return raw.Link
}

// summarize strips markup from a raw description and truncates it to
// descriptionLimit runes. Shorter text passes through unmodified.
func summarize(desc string) string {
	text := stripHTML(desc)
	runes := []rune(text)
	if len(runes) <= descriptionLimit {
		return text
	}
	return strings.TrimSpace(string(runes[:descriptionLimit])) + truncationMark
}

func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		// Non-parseable input: fall back to tag-regex stripping.
		s = htmlTagRe.ReplaceAllString(s, " ")
		s = html.UnescapeString(s)
		return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
	}
	text := doc.Text()
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// thumbnail picks the raw thumbnail, then the enclosure link, then a
// placeholder seeded by the item id so the same item always renders the
// same placeholder across fetches.
func thumbnail(raw RawItem, id string) string {
	if raw.Thumbnail != "" {
		return raw.Thumbnail
	}
	if raw.Enclosure != "" {
		return raw.Enclosure
	}
	h := fnv.New32a()
	h.Write([]byte(id))
	return fmt.Sprintf("https://picsum.photos/seed/%d/600/400", h.Sum32())
}

// parsePubDate interprets a raw publication date as an absolute instant.
// Unparseable dates yield the zero time, which sorts last.
func parsePubDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
