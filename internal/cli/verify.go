package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dvhoang/congdan/internal/config"
	"github.com/dvhoang/congdan/internal/verify"
)

var verifyFormat string

var verifyCmd = &cobra.Command{
	Use:   "verify [text]",
	Short: "Fact-check a piece of text against the verification service",
	Long: `Sends the given text (or stdin when no argument is given) to the
verification service and prints the structured verdict: authenticity,
a 0-100 reliability score, an analysis, and reference sources.

A service failure is reported as "verification unavailable" — it is never
turned into a verdict.`,
	RunE: verifyAction,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyFormat, "format", "", "output format: terminal, json")
}

func verifyAction(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Verify.APIKey == "" {
		return fmt.Errorf("no API key: set %s", cfg.Verify.APIKeyEnv)
	}

	text, err := inputText(args)
	if err != nil {
		return err
	}

	client := verify.NewClient(cfg.Verify.APIKey, cfg.Verify.Model)
	result, err := client.Verify(cmd.Context(), text)
	if err != nil {
		return err
	}

	switch verifyFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "terminal", "":
		printVerdict(result)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want terminal or json)", verifyFormat)
	}
}

// inputText joins the args, or reads stdin when no args are given.
func inputText(args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}
	if text == "" {
		return "", fmt.Errorf("no text to verify")
	}
	return text, nil
}

func printVerdict(res *verify.Result) {
	verdict := "TIN GIẢ / NGHI NGỜ"
	if res.IsAuthentic {
		verdict = "TIN CHÍNH THỐNG"
	}

	fmt.Printf("Verdict: %s (reliability %.0f/100)\n\n", verdict, res.ReliabilityScore)
	fmt.Println(res.Analysis)

	if len(res.Sources) > 0 {
		fmt.Println()
		fmt.Println("Reference sources:")
		for _, src := range res.Sources {
			fmt.Printf("  - %s\n    %s\n", src.Title, src.URL)
		}
	}
}
