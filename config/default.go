package config

import (
	"time"
)

// NewDefaultConfig creates a new Config with sensible defaults.
// The cache windows follow the fingerprinting contract: static asset paths are
// content-addressed, so they get a long window; HTML pages are entry points
// and get a short one.
func NewDefaultConfig() *Config {
	return &Config{
		Env: EnvProduction,
		Server: Server{
			Addr:                    ":8080",
			ReadTimeout:             Duration{Duration: 2 * time.Second},
			ReadHeaderTimeout:       Duration{Duration: 2 * time.Second},
			WriteTimeout:            Duration{Duration: 3 * time.Second},
			IdleTimeout:             Duration{Duration: 1 * time.Minute},
			ShutdownGracefulTimeout: Duration{Duration: 15 * time.Second},
		},
		Assets: Assets{
			SrcDir:    "public/src",
			VendorDir: "public/vendor",
			DistDir:   "public/dist",
			URLPrefix: "/assets/",
			Minify:    true,
		},
		Cache: Cache{
			StaticMaxAge:         Duration{Duration: 7 * 24 * time.Hour}, // 604800s
			StaticSWR:            Duration{Duration: 24 * time.Hour},     // 86400s
			PageMaxAge:           Duration{Duration: 1 * time.Hour},      // 3600s
			PageSWR:              Duration{Duration: 5 * time.Minute},    // 300s
			FallbackMaxAge:       Duration{Duration: 1 * time.Hour},
			ContentCacheMaxBytes: 64 << 20, // 64MB
		},
	}
}
