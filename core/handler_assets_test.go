package core

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/caasmo/imprint/cache/ristretto"
	"github.com/caasmo/imprint/config"
)

func writeDistFile(t *testing.T, distDir, rel string, content []byte) {
	t.Helper()
	path := filepath.Join(distDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
}

func gzipBytes(t *testing.T, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func assetsTestApp(t *testing.T) (*App, string) {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Assets.DistDir = t.TempDir()

	contentCache, err := ristretto.New[string, []byte](1 << 20)
	if err != nil {
		t.Fatal(err)
	}

	app := newTestApp(t, cfg, nil)
	app.contentCache = contentCache
	return app, cfg.Assets.DistDir
}

func TestAssetsHandlerServesFile(t *testing.T) {
	app, distDir := assetsTestApp(t)
	writeDistFile(t, distDir, "css/app.cafe0123.css", []byte("body{}"))

	req := httptest.NewRequest(http.MethodGet, "/assets/css/app.cafe0123.css", nil)
	rec := httptest.NewRecorder()
	app.AssetsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Body.String(); got != "body{}" {
		t.Errorf("body = %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/css") {
		t.Errorf("Content-Type = %q, want text/css", ct)
	}
}

func TestAssetsHandlerServesGzipVariant(t *testing.T) {
	app, distDir := assetsTestApp(t)
	content := []byte("var greeting = 'hello';")
	writeDistFile(t, distDir, "js/app.cafe0123.js", content)
	writeDistFile(t, distDir, "js/app.cafe0123.js.gz", gzipBytes(t, content))

	req := httptest.NewRequest(http.MethodGet, "/assets/js/app.cafe0123.js", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	rec := httptest.NewRecorder()
	app.AssetsHandler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "javascript") {
		t.Errorf("Content-Type = %q, want a javascript type", ct)
	}

	gz, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("response body is not gzip: %v", err)
	}
	var out bytes.Buffer
	if _, err := out.ReadFrom(gz); err != nil {
		t.Fatal(err)
	}
	if out.String() != string(content) {
		t.Errorf("decompressed body = %q", out.String())
	}
}

func TestAssetsHandlerFallsBackWithoutGzipSibling(t *testing.T) {
	app, distDir := assetsTestApp(t)
	writeDistFile(t, distDir, "img/logo.cafe0123.png", []byte("png-bytes"))

	req := httptest.NewRequest(http.MethodGet, "/assets/img/logo.cafe0123.png", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	app.AssetsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Encoding"); got != "" {
		t.Errorf("Content-Encoding = %q, want none", got)
	}
	if rec.Body.String() != "png-bytes" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestAssetsHandlerMissingAndTraversal(t *testing.T) {
	app, _ := assetsTestApp(t)

	for _, path := range []string{
		"/assets/missing.css",
		"/assets/../manifest.json",
		"/assets/..%2fsecret",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		app.AssetsHandler().ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, rec.Code)
		}
	}
}
