package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	rtr "github.com/caasmo/imprint/router"
)

func TestChainBasicHandler(t *testing.T) {
	chain := rtr.NewChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()

	chain.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if body := rec.Body.String(); body != "OK" {
		t.Errorf("expected body 'OK', got '%s'", body)
	}
}

func TestChainMiddlewareOrder(t *testing.T) {
	var callOrder []string

	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				callOrder = append(callOrder, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	chain := rtr.NewChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callOrder = append(callOrder, "handler")
		w.WriteHeader(http.StatusOK)
	})).WithMiddleware(mw("mw1"), mw("mw2"))

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()

	chain.Handler().ServeHTTP(rec, req)

	expectedOrder := []string{"mw1", "mw2", "handler"}
	if len(callOrder) != len(expectedOrder) {
		t.Fatalf("expected %d calls, got %d", len(expectedOrder), len(callOrder))
	}
	for i, val := range expectedOrder {
		if callOrder[i] != val {
			t.Errorf("expected %s at position %d, got %s", val, i, callOrder[i])
		}
	}
}

func TestNewChainNilHandlerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil handler")
		}
	}()
	rtr.NewChain(nil)
}
