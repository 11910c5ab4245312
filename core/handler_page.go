package core

import (
	"fmt"
	"net/http"
	"path"
)

// AssetURL resolves a logical asset path to the URL to emit in markup:
// the configured prefix plus the fingerprinted path from the manifest.
// Rendering collaborators call this for every <link>, <script> and <img>.
func (a *App) AssetURL(logical string) string {
	cfg := a.Config()
	prefix := "/assets/"
	if cfg != nil {
		prefix = cfg.Assets.URLPrefix
	}
	return path.Join(prefix, a.resolver.Resolve(logical))
}

// HomeHandler serves a minimal page whose asset references go through the
// resolver, so a fingerprinting run immediately changes the emitted URLs.
// Real page rendering belongs to a template collaborator, not this core.
func (a *App) HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<link rel="stylesheet" href="%s">
<script src="%s" defer></script>
</head>
<body><h1>imprint</h1></body>
</html>
`, a.AssetURL("css/app.css"), a.AssetURL("js/app.js"))
}
