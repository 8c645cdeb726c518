// Package cli provides the command-line interface for congdan.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Version and Commit are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "congdan",
	Short: "Read and fact-check Vietnamese news",
	Long:  "congdan aggregates RSS feeds from the major Vietnamese outlets into one newest-first list and fact-checks arbitrary text against a language model.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("congdan %s (%s)\n", Version, Commit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", defaultConfigDir(), "config directory")
	rootCmd.AddCommand(versionCmd)
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".congdan"
	}
	return filepath.Join(home, ".congdan")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
