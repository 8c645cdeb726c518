package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dvhoang/congdan/internal/feed"
	"github.com/dvhoang/congdan/internal/verify"
)

func writeTestYAML(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, DefaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test yaml: %v", err)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEST_GEMINI_KEY", "sk-secret")

	writeTestYAML(t, dir, `
sources:
  - name: "VnExpress"
    url: "https://vnexpress.net/rss/tin-moi-nhat.rss"
    category: "Mới nhất"
  - name: "Tuổi Trẻ"
    url: "https://tuoitre.vn/rss/the-gioi.rss"
    category: "Thế giới"
feed:
  mode: direct
  convert_endpoint: "https://convert.example.com/api.json"
  timeout: 30s
verify:
  model: gemini-2.5-pro
  api_key_env: TEST_GEMINI_KEY
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(cfg.Sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(cfg.Sources))
	}
	if cfg.Sources[1].Category != "Thế giới" {
		t.Errorf("sources[1].category = %q", cfg.Sources[1].Category)
	}
	if cfg.Feed.Mode != "direct" {
		t.Errorf("feed.mode = %q", cfg.Feed.Mode)
	}
	if cfg.Feed.ConvertEndpoint != "https://convert.example.com/api.json" {
		t.Errorf("feed.convert_endpoint = %q", cfg.Feed.ConvertEndpoint)
	}
	if cfg.Feed.Timeout.Duration != 30*time.Second {
		t.Errorf("feed.timeout = %v", cfg.Feed.Timeout.Duration)
	}
	if cfg.Verify.Model != "gemini-2.5-pro" {
		t.Errorf("verify.model = %q", cfg.Verify.Model)
	}
	if cfg.Verify.APIKey != "sk-secret" {
		t.Errorf("verify api key = %q, want resolved env value", cfg.Verify.APIKey)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load without config file: %v", err)
	}

	if len(cfg.Sources) != len(feed.DefaultSources) {
		t.Errorf("got %d sources, want the %d defaults", len(cfg.Sources), len(feed.DefaultSources))
	}
	if cfg.Feed.Mode != DefaultFetchMode {
		t.Errorf("feed.mode = %q, want %q", cfg.Feed.Mode, DefaultFetchMode)
	}
	if cfg.Feed.ConvertEndpoint != feed.DefaultConvertEndpoint {
		t.Errorf("feed.convert_endpoint = %q", cfg.Feed.ConvertEndpoint)
	}
	if cfg.Feed.Timeout.Duration != DefaultTimeout {
		t.Errorf("feed.timeout = %v", cfg.Feed.Timeout.Duration)
	}
	if cfg.Verify.Model != verify.DefaultModel {
		t.Errorf("verify.model = %q", cfg.Verify.Model)
	}
	if cfg.Verify.APIKeyEnv != DefaultAPIKeyEnv {
		t.Errorf("verify.api_key_env = %q", cfg.Verify.APIKeyEnv)
	}
}

func TestLoad_PartialConfigKeepsOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	writeTestYAML(t, dir, `
feed:
  mode: direct
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Feed.Mode != "direct" {
		t.Errorf("feed.mode = %q", cfg.Feed.Mode)
	}
	if len(cfg.Sources) != len(feed.DefaultSources) {
		t.Errorf("default sources not applied")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("empty dir", func(t *testing.T) {
		if _, err := Load(""); err == nil {
			t.Fatal("expected error for empty dir")
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeTestYAML(t, dir, "sources: [")
		if _, err := Load(dir); err == nil {
			t.Fatal("expected error for bad yaml")
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		dir := t.TempDir()
		writeTestYAML(t, dir, "feed:\n  mode: proxy\n")
		_, err := Load(dir)
		if err == nil || !strings.Contains(err.Error(), "feed.mode") {
			t.Fatalf("got %v, want feed.mode error", err)
		}
	})

	t.Run("source without url", func(t *testing.T) {
		dir := t.TempDir()
		writeTestYAML(t, dir, "sources:\n  - name: \"X\"\n")
		_, err := Load(dir)
		if err == nil || !strings.Contains(err.Error(), "sources[0]") {
			t.Fatalf("got %v, want sources[0] error", err)
		}
	})

	t.Run("bad duration", func(t *testing.T) {
		dir := t.TempDir()
		writeTestYAML(t, dir, "feed:\n  timeout: soon\n")
		if _, err := Load(dir); err == nil {
			t.Fatal("expected error for bad duration")
		}
	})
}

func TestLoad_UnsetEnvLeavesKeyEmpty(t *testing.T) {
	dir := t.TempDir()
	writeTestYAML(t, dir, "verify:\n  api_key_env: CONGDAN_TEST_UNSET_KEY\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Verify.APIKey != "" {
		t.Errorf("api key = %q, want empty", cfg.Verify.APIKey)
	}
}
