package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dvhoang/congdan/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create config directory with an example config file",
	RunE:  initAction,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func initAction(_ *cobra.Command, _ []string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	configPath := filepath.Join(configDir, config.DefaultConfigFile)
	wrote, err := writeIfNotExists(configPath, []byte(exampleConfig))
	if err != nil {
		return err
	}

	if !wrote {
		fmt.Printf("Config directory %s already initialized.\n", configDir)
	} else {
		fmt.Printf("Initialized %s.\n", configDir)
	}
	return nil
}

// writeIfNotExists writes data to path if the file does not exist.
// Returns true if the file was created.
func writeIfNotExists(path string, data []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("  exists: %s\n", path)
		return false, nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("  created: %s\n", path)
	return true, nil
}

const exampleConfig = `# congdan configuration
# All settings are optional; defaults cover the four standard outlets.

sources:
  - name: "VnExpress"
    url: "https://vnexpress.net/rss/tin-moi-nhat.rss"
    category: "Mới nhất"
  - name: "Tuổi Trẻ"
    url: "https://tuoitre.vn/rss/tin-moi-nhat.rss"
    category: "Mới nhất"
  - name: "Dân Trí"
    url: "https://dantri.com.vn/rss/home.rss"
    category: "Mới nhất"
  - name: "Thanh Niên"
    url: "https://thanhnien.vn/rss/home.rss"
    category: "Mới nhất"

feed:
  # convert: fetch through the feed-to-JSON conversion service
  # direct:  parse the outlet RSS feeds directly
  mode: convert
  convert_endpoint: "https://api.rss2json.com/v1/api.json"
  timeout: 15s

verify:
  model: gemini-2.5-flash
  api_key_env: GEMINI_API_KEY
`
