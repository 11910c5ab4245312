package config

import (
	"fmt"
	"strings"
)

// Validate checks a Config for values the runtime cannot work with.
// Policy windows are not validated here: the cache-policy engine substitutes
// the fallback window for unusable values instead of refusing to serve.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if cfg.Env == "" {
		return fmt.Errorf("env cannot be empty")
	}

	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr cannot be empty")
	}

	if cfg.Assets.DistDir == "" {
		return fmt.Errorf("assets.dist_dir cannot be empty")
	}

	if !strings.HasPrefix(cfg.Assets.URLPrefix, "/") {
		return fmt.Errorf("assets.url_prefix must start with '/', got %q", cfg.Assets.URLPrefix)
	}

	if cfg.Cache.ContentCacheMaxBytes < 0 {
		return fmt.Errorf("cache.content_cache_max_bytes cannot be negative")
	}

	return nil
}
