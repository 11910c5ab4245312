package core

import (
	"net/http"
)

// Authenticator is the consumed capability of an external auth collaborator.
// This core never resolves sessions or tokens itself; it only asks whether
// the request belongs to an authenticated user, to keep personalized
// responses out of shared caches.
type Authenticator interface {
	Authenticated(r *http.Request) bool
}

// AuthenticatorFunc adapts a plain predicate to the Authenticator interface.
type AuthenticatorFunc func(r *http.Request) bool

func (f AuthenticatorFunc) Authenticated(r *http.Request) bool {
	return f(r)
}

// authenticated evaluates the auth predicate, failing closed: a missing
// authenticator or a panicking one both count as "not authenticated", so a
// misbehaving collaborator degrades to public caching instead of a 5xx.
func (a *App) authenticated(r *http.Request) (ok bool) {
	if a.authenticator == nil {
		return false
	}
	defer func() {
		if rec := recover(); rec != nil {
			a.logger.Error("auth predicate panicked, treating request as unauthenticated",
				"path", r.URL.Path, "panic", rec)
			ok = false
		}
	}()
	return a.authenticator.Authenticated(r)
}
