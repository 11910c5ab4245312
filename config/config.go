package config

import (
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Duration wraps time.Duration for TOML unmarshalling of values like "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Config struct {
	// Env selects the cache-policy behavior: "development" disables caching
	// entirely, anything else gets the production policy.
	Env string `toml:"env"`

	Server Server `toml:"server"`
	Assets Assets `toml:"assets"`
	Cache  Cache  `toml:"cache"`
}

type Server struct {
	Addr                    string   `toml:"addr"`
	ReadTimeout             Duration `toml:"read_timeout"`
	ReadHeaderTimeout       Duration `toml:"read_header_timeout"`
	WriteTimeout            Duration `toml:"write_timeout"`
	IdleTimeout             Duration `toml:"idle_timeout"`
	ShutdownGracefulTimeout Duration `toml:"shutdown_graceful_timeout"`
}

// Assets describes the fingerprinting pipeline inputs and output.
type Assets struct {
	// SrcDir holds first-party application assets (css, js, images, fonts).
	SrcDir string `toml:"src_dir"`
	// VendorDir holds vendored third-party assets. Vendored stylesheets are
	// rewritten only against other vendored assets, never against SrcDir.
	VendorDir string `toml:"vendor_dir"`
	// DistDir receives the fingerprinted output tree and manifest.json.
	DistDir string `toml:"dist_dir"`
	// URLPrefix is the path under which DistDir is served.
	URLPrefix string `toml:"url_prefix"`
	// Minify runs esbuild over .js/.css before hashing.
	Minify bool `toml:"minify"`
}

// Cache holds the HTTP cache-policy windows, all in seconds on the wire.
type Cache struct {
	StaticMaxAge Duration `toml:"static_max_age"`
	StaticSWR    Duration `toml:"static_stale_while_revalidate"`
	PageMaxAge   Duration `toml:"page_max_age"`
	PageSWR      Duration `toml:"page_stale_while_revalidate"`
	// FallbackMaxAge applies when a policy window is unset or invalid.
	FallbackMaxAge Duration `toml:"fallback_max_age"`

	// ContentCacheMaxBytes bounds the in-process asset content cache.
	ContentCacheMaxBytes int64 `toml:"content_cache_max_bytes"`
}

// IsDev reports whether the configuration is for a development environment.
func (c *Config) IsDev() bool {
	return c.Env == EnvDevelopment
}
