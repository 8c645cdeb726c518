package feed

import (
	"strings"
	"testing"
	"time"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple tags", "<p>hello</p>", "hello"},
		{"nested tags", "<div><p>hello</p></div>", "hello"},
		{"entities", "&amp; &lt; &gt;", "& < >"},
		{"mixed", "<b>bold</b> &amp; <i>italic</i>", "bold & italic"},
		{"empty", "", ""},
		{"no html", "plain text", "plain text"},
		{"vietnamese", "<p>Tin tức mới nhất</p>", "Tin tức mới nhất"},
		{"collapse whitespace", "a\n\n   b", "a b"},
		{"image only", `<img src="https://example.com/a.jpg"/>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripHTML(tt.input)
			if got != tt.want {
				t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Run("short passes through", func(t *testing.T) {
		got := summarize("<p>ngắn gọn</p>")
		if got != "ngắn gọn" {
			t.Errorf("got %q, want %q", got, "ngắn gọn")
		}
	})

	t.Run("long is truncated with marker", func(t *testing.T) {
		long := strings.Repeat("a", 300)
		got := summarize(long)
		if !strings.HasSuffix(got, truncationMark) {
			t.Errorf("got %q, want %s suffix", got, truncationMark)
		}
		if n := len([]rune(got)); n != descriptionLimit+len(truncationMark) {
			t.Errorf("len = %d runes, want %d", n, descriptionLimit+len(truncationMark))
		}
	})

	t.Run("multibyte runes", func(t *testing.T) {
		long := strings.Repeat("ồ", 300)
		got := summarize(long)
		if n := len([]rune(got)); n > descriptionLimit+len(truncationMark) {
			t.Errorf("len = %d runes, want at most %d", n, descriptionLimit+len(truncationMark))
		}
	})

	t.Run("exactly at limit", func(t *testing.T) {
		text := strings.Repeat("b", descriptionLimit)
		got := summarize(text)
		if got != text {
			t.Errorf("got %d runes, want unmodified input", len([]rune(got)))
		}
	})

	t.Run("markup does not count toward limit", func(t *testing.T) {
		input := "<div><span>" + strings.Repeat("c", 100) + "</span></div>"
		got := summarize(input)
		if got != strings.Repeat("c", 100) {
			t.Errorf("got %q", got)
		}
	})
}

func TestItemID(t *testing.T) {
	t.Run("guid", func(t *testing.T) {
		raw := RawItem{GUID: "abc-123", Link: "https://example.com/post"}
		if got := itemID(raw); got != "abc-123" {
			t.Errorf("got %q, want abc-123", got)
		}
	})

	t.Run("link fallback", func(t *testing.T) {
		raw := RawItem{Link: "https://example.com/post"}
		if got := itemID(raw); got != "https://example.com/post" {
			t.Errorf("got %q, want link", got)
		}
	})
}

func TestThumbnail(t *testing.T) {
	t.Run("thumbnail preferred", func(t *testing.T) {
		raw := RawItem{Thumbnail: "https://img.example.com/t.jpg", Enclosure: "https://img.example.com/e.jpg"}
		if got := thumbnail(raw, "id"); got != "https://img.example.com/t.jpg" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("enclosure fallback", func(t *testing.T) {
		raw := RawItem{Enclosure: "https://img.example.com/e.jpg"}
		if got := thumbnail(raw, "id"); got != "https://img.example.com/e.jpg" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("placeholder is deterministic per id", func(t *testing.T) {
		first := thumbnail(RawItem{}, "news-1")
		second := thumbnail(RawItem{}, "news-1")
		other := thumbnail(RawItem{}, "news-2")

		if !strings.HasPrefix(first, "https://picsum.photos/seed/") {
			t.Errorf("got %q, want picsum placeholder", first)
		}
		if first != second {
			t.Errorf("same id produced different placeholders: %q vs %q", first, second)
		}
		if first == other {
			t.Errorf("different ids produced the same placeholder: %q", first)
		}
	})
}

func TestParsePubDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			"conversion service shape",
			"2026-08-30 07:15:00",
			time.Date(2026, 8, 30, 7, 15, 0, 0, time.UTC),
		},
		{
			"rfc3339",
			"2026-08-30T07:15:00Z",
			time.Date(2026, 8, 30, 7, 15, 0, 0, time.UTC),
		},
		{
			"rfc1123z",
			"Sun, 30 Aug 2026 07:15:00 +0700",
			time.Date(2026, 8, 30, 7, 15, 0, 0, time.FixedZone("", 7*3600)),
		},
		{"garbage", "yesterday", time.Time{}},
		{"empty", "", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePubDate(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("parsePubDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	src := Source{Name: "VnExpress", URL: "https://vnexpress.net/rss/tin-moi-nhat.rss", Category: "Mới nhất"}
	raw := RawItem{
		GUID:        "vne-1",
		Title:       "Tiêu đề",
		Description: "<p>Nội dung mô tả</p>",
		Content:     "<p>Toàn văn</p>",
		Link:        "https://vnexpress.net/bai-viet",
		PubDate:     "2026-08-30 07:15:00",
		Thumbnail:   "https://img.vnexpress.net/a.jpg",
	}

	item := normalize(raw, src)

	if item.ID != "vne-1" {
		t.Errorf("ID = %q", item.ID)
	}
	if item.Description != "Nội dung mô tả" {
		t.Errorf("Description = %q", item.Description)
	}
	if item.Content != "<p>Toàn văn</p>" {
		t.Errorf("Content should pass through unprocessed, got %q", item.Content)
	}
	if item.Source != "VnExpress" || item.Category != "Mới nhất" {
		t.Errorf("source stamp = %q/%q", item.Source, item.Category)
	}
	if item.PubDate.IsZero() {
		t.Error("PubDate should parse")
	}
	if item.Thumbnail != "https://img.vnexpress.net/a.jpg" {
		t.Errorf("Thumbnail = %q", item.Thumbnail)
	}
}
