package digest

import (
	"fmt"
	"io"

	"github.com/dvhoang/congdan/internal/feed"
)

// MarkdownFormatter formats a feed as Markdown.
type MarkdownFormatter struct{}

// NewMarkdown creates a Markdown formatter.
func NewMarkdown() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes the feed as Markdown to w.
func (f *MarkdownFormatter) Format(w io.Writer, input Input) error {
	fmt.Fprintf(w, "# congdan feed\n\n")
	fmt.Fprintf(w, "%d sources, %d items", input.Sources, len(input.Items))
	if len(input.Items) != input.Total {
		fmt.Fprintf(w, " (of %d)", input.Total)
	}
	fmt.Fprintf(w, "\n\n")

	if len(input.Items) == 0 {
		fmt.Fprintln(w, "No news found.")
		return nil
	}

	order, groups := groupByCategory(input.Items)
	for _, cat := range order {
		items := groups[cat]
		fmt.Fprintf(w, "## %s (%d)\n\n", cat, len(items))
		for _, it := range items {
			f.writeItem(w, it)
		}
	}

	return nil
}

func (f *MarkdownFormatter) writeItem(w io.Writer, it feed.Item) {
	fmt.Fprintf(w, "### %s — %s\n\n", it.Source, it.Title)
	if !it.PubDate.IsZero() {
		fmt.Fprintf(w, "*%s*\n\n", it.PubDate.Format(itemTimeLayout))
	}
	if it.Description != "" {
		fmt.Fprintf(w, "%s\n\n", it.Description)
	}
	if it.Link != "" {
		fmt.Fprintf(w, "[Link](%s)\n\n", it.Link)
	}
}
