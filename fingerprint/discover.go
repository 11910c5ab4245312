package fingerprint

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Origin classifies where an asset comes from. Vendored stylesheets are
// rewritten only against other vendored assets; application stylesheets are
// not assumed to reference vendor files.
type Origin int

const (
	OriginApplication Origin = iota
	OriginVendor
)

func (o Origin) String() string {
	if o == OriginVendor {
		return "vendor"
	}
	return "application"
}

// DefaultExtensions is the asset extension set a typical site ships:
// stylesheets, scripts, images and fonts, plus source maps.
var DefaultExtensions = []string{
	".css", ".js", ".mjs", ".map",
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".avif", ".ico",
	".woff", ".woff2", ".ttf", ".otf", ".eot",
	".json", ".txt",
}

// Root is one directory tree to scan for assets.
type Root struct {
	Dir    string
	Origin Origin
	// Extensions filters files by lowercase extension including the dot.
	// Empty means every regular file is an asset.
	Extensions []string
}

// Asset is one discovered static file. Content is read once, before hashing,
// and not re-read afterwards.
type Asset struct {
	// Path is the absolute source path.
	Path string
	// Logical is the root-relative, slash-separated path without a leading
	// separator, as it appears in URLs and the manifest.
	Logical string
	Origin  Origin
}

// Discover walks the given roots and returns every matching file. Each call
// re-walks the filesystem; nothing is cached between runs. A missing root
// contributes no assets and no error, so a project without a vendor tree
// still builds. Unreadable entries under an existing root are logged and
// skipped, the rest of the root continues.
func Discover(roots []Root, logger *slog.Logger) []Asset {
	var assets []Asset

	for _, root := range roots {
		if _, err := os.Stat(root.Dir); os.IsNotExist(err) {
			logger.Info("asset root does not exist, skipping", "dir", root.Dir, "origin", root.Origin.String())
			continue
		}

		err := filepath.WalkDir(root.Dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Error("failed to walk asset entry, skipping", "path", path, "error", err)
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if !matchesExtension(path, root.Extensions) {
				return nil
			}

			rel, err := filepath.Rel(root.Dir, path)
			if err != nil {
				logger.Error("failed to relativize asset path, skipping", "path", path, "error", err)
				return nil
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}

			assets = append(assets, Asset{
				Path:    abs,
				Logical: filepath.ToSlash(rel),
				Origin:  root.Origin,
			})
			return nil
		})
		if err != nil {
			logger.Error("asset root walk aborted", "dir", root.Dir, "error", err)
		}
	}

	return assets
}

func matchesExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
