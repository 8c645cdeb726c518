package cli

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dvhoang/congdan/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and service reachability",
	RunE:  doctorAction,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func doctorAction(_ *cobra.Command, _ []string) error {
	ok := true

	// Config dir (optional — defaults apply without one)
	if info, err := os.Stat(configDir); err != nil || !info.IsDir() {
		printInfo("config directory %s missing (using compiled-in defaults)", configDir)
	} else {
		printCheck(true, "config directory %s", configDir)
	}

	// Config file
	cfg, err := config.Load(configDir)
	if err != nil {
		printCheck(false, "config.yaml: %v", err)
		return fmt.Errorf("some checks failed")
	}
	printCheck(true, "config (%d sources, feed mode %s)", len(cfg.Sources), cfg.Feed.Mode)

	// Source URLs
	for _, src := range cfg.Sources {
		if u, err := url.Parse(src.URL); err != nil || u.Scheme == "" || u.Host == "" {
			printCheck(false, "source %s: invalid url %q", src.Name, src.URL)
			ok = false
		} else {
			printCheck(true, "source %s", src.Name)
		}
	}

	// Conversion endpoint reachability
	if cfg.Feed.Mode == "convert" {
		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Head(cfg.Feed.ConvertEndpoint)
		if err != nil {
			printCheck(false, "conversion endpoint: %v", err)
			ok = false
		} else {
			_ = resp.Body.Close()
			printCheck(true, "conversion endpoint %s", cfg.Feed.ConvertEndpoint)
		}
	}

	// Verification API key
	if cfg.Verify.APIKey == "" {
		printInfo("no API key in %s — verify and summarize will be unavailable", cfg.Verify.APIKeyEnv)
	} else {
		printCheck(true, "API key (%s)", cfg.Verify.APIKeyEnv)
	}

	if !ok {
		return fmt.Errorf("some checks failed")
	}
	fmt.Println("\nAll checks passed.")
	return nil
}

func printCheck(pass bool, format string, args ...any) {
	mark := "FAIL"
	if pass {
		mark = " OK "
	}
	fmt.Printf("[%s] %s\n", mark, fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Printf("[INFO] %s\n", fmt.Sprintf(format, args...))
}
