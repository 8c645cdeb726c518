package digest

import (
	"fmt"
	"io"

	"github.com/dvhoang/congdan/internal/feed"
)

const itemTimeLayout = "02/01 15:04"

// TerminalFormatter formats a feed for terminal output.
type TerminalFormatter struct {
	color bool
}

// NewTerminal creates a terminal formatter. Set color=true for ANSI colors.
func NewTerminal(color bool) *TerminalFormatter {
	return &TerminalFormatter{color: color}
}

// Format writes the feed to w grouped by category.
func (f *TerminalFormatter) Format(w io.Writer, input Input) error {
	header := fmt.Sprintf("congdan — %d sources, %d items", input.Sources, len(input.Items))
	if len(input.Items) != input.Total {
		header += fmt.Sprintf(" (of %d)", input.Total)
	}
	if input.Category != "" {
		header += fmt.Sprintf(", category %q", input.Category)
	}
	if input.Query != "" {
		header += fmt.Sprintf(", search %q", input.Query)
	}
	fmt.Fprintln(w, f.bold(header))
	fmt.Fprintln(w)

	if len(input.Items) == 0 {
		fmt.Fprintln(w, "No news found.")
		return nil
	}

	order, groups := groupByCategory(input.Items)
	for _, cat := range order {
		items := groups[cat]
		fmt.Fprintln(w, f.red(f.bold(fmt.Sprintf("--- %s (%d) ---", cat, len(items)))))
		fmt.Fprintln(w)
		for _, it := range items {
			f.writeItem(w, it)
		}
	}

	return nil
}

func (f *TerminalFormatter) writeItem(w io.Writer, it feed.Item) {
	stamp := "--/-- --:--"
	if !it.PubDate.IsZero() {
		stamp = it.PubDate.Format(itemTimeLayout)
	}

	fmt.Fprintf(w, "  %s %s — %s\n", f.dim(stamp), f.bold(it.Source), it.Title)
	if it.Description != "" {
		fmt.Fprintf(w, "      %s\n", f.dim(it.Description))
	}
	if it.Link != "" {
		fmt.Fprintf(w, "      %s\n", f.dim(it.Link))
	}
	fmt.Fprintln(w)
}

// ANSI helpers — no-op when color=false.

func (f *TerminalFormatter) bold(s string) string {
	if !f.color {
		return s
	}
	return "\033[1m" + s + "\033[0m"
}

func (f *TerminalFormatter) red(s string) string {
	if !f.color {
		return s
	}
	return "\033[31m" + s + "\033[0m"
}

func (f *TerminalFormatter) dim(s string) string {
	if !f.color {
		return s
	}
	return "\033[2m" + s + "\033[0m"
}
