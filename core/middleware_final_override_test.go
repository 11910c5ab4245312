package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caasmo/imprint/config"
)

func TestFinalOverrideWinsOverPolicyEngine(t *testing.T) {
	app := newTestApp(t, nil, nil)

	// Full production chain for a static asset: the policy engine sets its
	// configurable directive, the override must replace it with the
	// immutable long-TTL one on transmission.
	handler := app.FinalOverride(app.CachePolicy(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("body{}"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/css/app.cafe0123.css", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	want := "public, max-age=31536000, immutable"
	if got := rec.Header().Get("Cache-Control"); got != want {
		t.Errorf("Cache-Control = %q, want override value %q", got, want)
	}
	if got := rec.Header().Get("Vary"); got != "Accept-Encoding" {
		t.Errorf("Vary = %q, want Accept-Encoding", got)
	}
}

func TestFinalOverrideWinsOverHandler(t *testing.T) {
	app := newTestApp(t, nil, nil)

	// Even a handler writing its own Cache-Control right before the body
	// loses to the override.
	handler := app.FinalOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		w.Write([]byte("body{}"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/js/app.min.cafe0123.js", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=31536000, immutable" {
		t.Errorf("handler's Cache-Control survived the override: %q", got)
	}
}

func TestFinalOverrideExcludesApiAndHealth(t *testing.T) {
	app := newTestApp(t, nil, nil)

	for _, path := range []string{"/api/users", "/health"} {
		handler := app.FinalOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "private")
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Cache-Control"); got != "private" {
			t.Errorf("%s: override must not touch excluded paths, Cache-Control = %q", path, got)
		}
	}
}

func TestFinalOverrideDevelopmentStaticAsset(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Env = config.EnvDevelopment
	app := newTestApp(t, cfg, nil)

	handler := app.FinalOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("body{}"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/css/app.css", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Cache-Control"); got != "no-cache, no-store, must-revalidate" {
		t.Errorf("development static asset must not be cached, got %q", got)
	}
}

func TestFinalOverrideHtmlPageReassertsPolicy(t *testing.T) {
	app := newTestApp(t, nil, nil)

	handler := app.FinalOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store") // scribbled by some layer
		w.Write([]byte("<html></html>"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	want := "public, max-age=3600, stale-while-revalidate=300"
	if got := rec.Header().Get("Cache-Control"); got != want {
		t.Errorf("Cache-Control = %q, want %q", got, want)
	}
}

func TestFinalOverrideAuthenticatedPageLeftAlone(t *testing.T) {
	app := newTestApp(t, nil, AuthenticatorFunc(func(r *http.Request) bool { return true }))

	handler := app.FinalOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "private, no-store")
		w.Write([]byte("<html></html>"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Cache-Control"); got != "private, no-store" {
		t.Errorf("authenticated page headers must pass through, got %q", got)
	}
}
