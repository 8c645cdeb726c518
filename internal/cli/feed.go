package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dvhoang/congdan/internal/config"
	"github.com/dvhoang/congdan/internal/digest"
	"github.com/dvhoang/congdan/internal/feed"
)

var (
	feedCategory string
	feedSearch   string
	feedFormat   string
	feedLimit    int
	feedDirect   bool
	noColor      bool
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Fetch all configured sources and display the combined feed",
	RunE:  feedAction,
}

func init() {
	rootCmd.AddCommand(feedCmd)

	feedCmd.Flags().StringVar(&feedCategory, "category", "", "only show items in this category")
	feedCmd.Flags().StringVar(&feedSearch, "search", "", "only show items whose title or description contains this text")
	feedCmd.Flags().StringVar(&feedFormat, "format", "", "output format: terminal, json, markdown")
	feedCmd.Flags().IntVar(&feedLimit, "limit", 0, "show at most this many items (0 = all)")
	feedCmd.Flags().BoolVar(&feedDirect, "direct", false, "parse outlet feeds directly instead of via the conversion service")
	feedCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
}

func feedAction(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	mode := cfg.Feed.Mode
	if feedDirect {
		mode = "direct"
	}

	var fetcher feed.Fetcher
	switch mode {
	case "direct":
		fetcher = feed.NewDirectFetcher(cfg.Feed.Timeout.Duration)
	default:
		fetcher = feed.NewConvertClient(cfg.Feed.ConvertEndpoint, cfg.Feed.Timeout.Duration)
	}

	agg := feed.NewAggregator(fetcher, cfg.Sources)
	items, err := agg.FetchAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}

	total := len(items)
	shown := feed.Filter(items, feedCategory, feedSearch)
	if feedLimit > 0 && len(shown) > feedLimit {
		shown = shown[:feedLimit]
	}

	input := digest.Input{
		Items:    shown,
		Sources:  len(agg.Sources()),
		Total:    total,
		Category: feedCategory,
		Query:    feedSearch,
	}

	var formatter digest.Formatter
	switch feedFormat {
	case "json":
		formatter = digest.NewJSON()
	case "markdown", "md":
		formatter = digest.NewMarkdown()
	case "terminal", "":
		formatter = digest.NewTerminal(!noColor)
	default:
		return fmt.Errorf("unknown format %q (want terminal, json, or markdown)", feedFormat)
	}
	return formatter.Format(os.Stdout, input)
}
