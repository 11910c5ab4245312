package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func TestNewDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
	if cfg.IsDev() {
		t.Error("default config should not be a development config")
	}
	if got, want := cfg.Cache.StaticMaxAge.Duration, 7*24*time.Hour; got != want {
		t.Errorf("static max-age: got %v, want %v", got, want)
	}
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("", discardLogger())
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Server.Addr)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "imprint.toml")
	content := `
env = "development"

[server]
addr = ":9090"
read_timeout = "5s"

[cache]
page_max_age = "30m"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, discardLogger())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if !cfg.IsDev() {
		t.Error("expected development env")
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr: got %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("read timeout: got %v, want 5s", cfg.Server.ReadTimeout.Duration)
	}
	if cfg.Cache.PageMaxAge.Duration != 30*time.Minute {
		t.Errorf("page max-age: got %v, want 30m", cfg.Cache.PageMaxAge.Duration)
	}
	// Untouched keys keep their defaults.
	if cfg.Cache.StaticMaxAge.Duration != 7*24*time.Hour {
		t.Errorf("static max-age should keep default, got %v", cfg.Cache.StaticMaxAge.Duration)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("env = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, discardLogger()); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty env", func(c *Config) { c.Env = "" }, true},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, true},
		{"empty dist dir", func(c *Config) { c.Assets.DistDir = "" }, true},
		{"url prefix without slash", func(c *Config) { c.Assets.URLPrefix = "assets/" }, true},
		{"negative content cache", func(c *Config) { c.Cache.ContentCacheMaxBytes = -1 }, true},
		{"unknown env name is fine", func(c *Config) { c.Env = "staging" }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			err := Validate(cfg)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestProviderUpdateSwapsConfig(t *testing.T) {
	first := NewDefaultConfig()
	p := NewProvider(first)

	if p.Get() != first {
		t.Fatal("Get should return the initial config")
	}

	second := NewDefaultConfig()
	second.Env = EnvDevelopment
	p.Update(second)

	if got := p.Get(); got != second {
		t.Fatal("Get should return the updated config")
	}
	if !p.Get().IsDev() {
		t.Error("updated config should be development")
	}
}
