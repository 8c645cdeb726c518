package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dvhoang/congdan/internal/config"
	"github.com/dvhoang/congdan/internal/verify"
)

var summarizeTitle string

var summarizeCmd = &cobra.Command{
	Use:   "summarize [content]",
	Short: "Summarize an article in a few Vietnamese sentences",
	RunE:  summarizeAction,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringVar(&summarizeTitle, "title", "", "article title")
}

func summarizeAction(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Verify.APIKey == "" {
		return fmt.Errorf("no API key: set %s", cfg.Verify.APIKeyEnv)
	}

	content := strings.TrimSpace(strings.Join(args, " "))
	if content == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		content = strings.TrimSpace(string(data))
	}
	if content == "" {
		return fmt.Errorf("no content to summarize")
	}

	client := verify.NewClient(cfg.Verify.APIKey, cfg.Verify.Model)
	summary, err := client.Summarize(cmd.Context(), summarizeTitle, content)
	if err != nil {
		return err
	}

	fmt.Println(summary)
	return nil
}
