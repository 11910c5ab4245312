// Command fingerprint runs the build-time asset pipeline: it discovers the
// configured asset roots, content-hashes every file, rewrites stylesheet
// references, writes the fingerprinted tree plus gzip siblings into the dist
// directory and persists the manifest. Run once per build, before deploying
// the server.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caasmo/imprint/config"
	"github.com/caasmo/imprint/fingerprint"
	"github.com/caasmo/imprint/manifest"
)

func main() {
	configPath := flag.String("config", "", "path to TOML configuration file (empty for defaults)")
	srcDir := flag.String("src", "", "application asset directory (overrides config)")
	vendorDir := flag.String("vendor", "", "vendored asset directory (overrides config)")
	distDir := flag.String("dist", "", "output directory (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(*configPath, logger)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *srcDir != "" {
		cfg.Assets.SrcDir = *srcDir
	}
	if *vendorDir != "" {
		cfg.Assets.VendorDir = *vendorDir
	}
	if *distDir != "" {
		cfg.Assets.DistDir = *distDir
	}

	roots := []fingerprint.Root{
		{Dir: cfg.Assets.SrcDir, Origin: fingerprint.OriginApplication, Extensions: fingerprint.DefaultExtensions},
		{Dir: cfg.Assets.VendorDir, Origin: fingerprint.OriginVendor, Extensions: fingerprint.DefaultExtensions},
	}

	store := manifest.NewStore(filepath.Join(cfg.Assets.DistDir, manifest.Filename), logger)
	pipeline := fingerprint.NewPipeline(store, logger, cfg.Assets.Minify)

	if err := pipeline.Run(roots, cfg.Assets.DistDir); err != nil {
		logger.Error("fingerprinting run failed", "error", err)
		os.Exit(1)
	}
}
