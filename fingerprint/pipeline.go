package fingerprint

import (
	"compress/gzip"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/caasmo/imprint/manifest"
)

// Pipeline is the build-time fingerprinting run. One run resets the manifest,
// processes every discovered asset and persists the result. Runs are
// single-writer; concurrent runs are not supported and the caller must
// serialize builds.
type Pipeline struct {
	store  *manifest.Store
	logger *slog.Logger
	minify bool
}

func NewPipeline(store *manifest.Store, logger *slog.Logger, minify bool) *Pipeline {
	return &Pipeline{
		store:  store,
		logger: logger,
		minify: minify,
	}
}

// Run executes one fingerprinting pass: discover assets under roots, hash and
// rename them into distDir, rewrite stylesheet references, gzip text assets
// and persist the manifest. Unprocessable files are logged and skipped; only
// failures that leave no usable build output (dist dir, manifest write)
// return an error.
func (p *Pipeline) Run(roots []Root, distDir string) error {
	p.store.Reset()

	if err := os.RemoveAll(distDir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clean dist directory %s: %w", distDir, err)
	}
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		return fmt.Errorf("failed to create dist directory %s: %w", distDir, err)
	}

	assets := Discover(roots, p.logger)

	// Stylesheets are processed after everything else in their origin group,
	// so the rewriter sees the complete set of fingerprinted names for the
	// images and fonts they reference.
	for _, origin := range []Origin{OriginApplication, OriginVendor} {
		names := make(map[string]string)

		for _, a := range assets {
			if a.Origin != origin || isStylesheet(a.Logical) {
				continue
			}
			if err := p.processAsset(a, distDir, names, false); err != nil {
				p.logger.Error("skipping asset", "path", a.Path, "error", err)
			}
		}

		for _, a := range assets {
			if a.Origin != origin || !isStylesheet(a.Logical) {
				continue
			}
			if err := p.processAsset(a, distDir, names, true); err != nil {
				p.logger.Error("skipping stylesheet", "path", a.Path, "error", err)
			}
		}
	}

	if err := p.store.Persist(); err != nil {
		return fmt.Errorf("failed to persist manifest: %w", err)
	}

	p.logger.Info("fingerprinting run complete", "assets", len(assets), "dist", distDir)
	return nil
}

// processAsset reads, optionally minifies and rewrites, hashes and writes one
// asset. names accumulates the origin group's logical-to-fingerprinted
// mapping; stylesheets (rewrite=true) are rewritten against the names
// recorded so far.
func (p *Pipeline) processAsset(a Asset, distDir string, names map[string]string, rewrite bool) error {
	content, err := os.ReadFile(a.Path)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	if p.minify {
		content = p.minifyContent(a.Logical, content)
	}

	if rewrite {
		content = []byte(RewriteCSS(a.Logical, string(content), names))
	}

	fp := Hash(content)
	fpName, err := FingerprintedName(path.Base(a.Logical), fp)
	if err != nil {
		return err
	}

	fpLogical := fpName
	if dir := path.Dir(a.Logical); dir != "." {
		fpLogical = dir + "/" + fpName
	}

	outPath := filepath.Join(distDir, filepath.FromSlash(fpLogical))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if isTextAsset(a.Logical) {
		if err := writeGzipSibling(outPath, content); err != nil {
			// The uncompressed variant is already on disk; a missing .gz only
			// costs bandwidth.
			p.logger.Error("failed to write gzip sibling", "path", outPath, "error", err)
		}
	}

	p.store.Record(a.Logical, fpLogical)
	names[a.Logical] = fpLogical

	p.logger.Debug("fingerprinted asset",
		"logical", a.Logical,
		"fingerprinted", fpLogical,
		"origin", a.Origin.String(),
	)
	return nil
}

// minifyContent runs esbuild over .js and .css sources. Minification failures
// fall back to the unminified bytes for that file.
func (p *Pipeline) minifyContent(logical string, content []byte) []byte {
	var loader api.Loader
	switch {
	case strings.HasSuffix(logical, ".js"):
		loader = api.LoaderJS
	case strings.HasSuffix(logical, ".css"):
		loader = api.LoaderCSS
	default:
		return content
	}

	result := api.Transform(string(content), api.TransformOptions{
		Loader:            loader,
		MinifyWhitespace:  true,
		MinifySyntax:      true,
		MinifyIdentifiers: loader == api.LoaderJS,
	})
	if len(result.Errors) > 0 {
		p.logger.Error("minification failed, keeping original",
			"logical", logical,
			"error", result.Errors[0].Text,
		)
		return content
	}
	return result.Code
}

func writeGzipSibling(path string, content []byte) error {
	f, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewWriterLevel(f, gzip.BestCompression)
	if err != nil {
		return err
	}
	if _, err := gz.Write(content); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}

func isStylesheet(logical string) bool {
	return strings.HasSuffix(logical, ".css")
}

func isTextAsset(logical string) bool {
	switch filepath.Ext(logical) {
	case ".css", ".js", ".svg", ".html", ".json", ".txt", ".map":
		return true
	}
	return false
}
