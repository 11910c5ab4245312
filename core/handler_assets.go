package core

import (
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// AssetsHandler serves fingerprinted files from the dist directory under the
// configured URL prefix. File contents are cached in-process (cost = byte
// length), so each fingerprinted file hits the disk once per process; the
// fingerprint in the name makes the cached bytes valid for the life of the
// entry. When the client accepts gzip and the pipeline wrote a .gz sibling,
// that variant is served with Content-Encoding set.
func (a *App) AssetsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg := a.Config()
		if cfg == nil {
			http.NotFound(w, r)
			return
		}

		rel := strings.TrimPrefix(r.URL.Path, cfg.Assets.URLPrefix)
		rel = path.Clean(strings.TrimPrefix(rel, "/"))
		if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
			http.NotFound(w, r)
			return
		}

		gzipOK := strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")

		if gzipOK {
			if content, ok := a.readAsset(cfg.Assets.DistDir, rel+".gz"); ok {
				w.Header().Set("Content-Type", contentTypeFor(rel))
				w.Header().Set("Content-Encoding", "gzip")
				w.Write(content)
				return
			}
		}

		content, ok := a.readAsset(cfg.Assets.DistDir, rel)
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentTypeFor(rel))
		w.Write(content)
	})
}

// readAsset returns the file's content from the cache or disk. A cache write
// failing (full, rejected by admission) only means the next request reads
// the disk again.
func (a *App) readAsset(distDir, rel string) ([]byte, bool) {
	if a.contentCache != nil {
		if content, ok := a.contentCache.Get(rel); ok {
			return content, true
		}
	}

	content, err := os.ReadFile(filepath.Join(distDir, filepath.FromSlash(rel)))
	if err != nil {
		if !os.IsNotExist(err) {
			a.logger.Error("failed to read asset", "path", rel, "error", err)
		}
		return nil, false
	}

	if a.contentCache != nil {
		a.contentCache.Set(rel, content, int64(len(content)))
	}
	return content, true
}

func contentTypeFor(rel string) string {
	if ct := mime.TypeByExtension(path.Ext(rel)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
