package core

import (
	"path"
	"strings"
)

// RouteClass is the shared request classification consumed by the
// cache-policy engine, the legacy header stripper and the final override
// layer. One definition keeps the three from drifting apart.
type RouteClass int

const (
	ClassHtmlPage RouteClass = iota
	ClassStaticAsset
	ClassApi
	ClassHealth
)

func (c RouteClass) String() string {
	switch c {
	case ClassStaticAsset:
		return "static"
	case ClassApi:
		return "api"
	case ClassHealth:
		return "health"
	}
	return "page"
}

const (
	apiPrefix  = "/api/"
	healthPath = "/health"
)

// staticExtensions is the extension set that marks a path as a static asset.
// Fingerprinted extensions (.css, .js, images, fonts) plus the handful of
// plain files every site serves.
var staticExtensions = map[string]bool{
	".css":   true,
	".js":    true,
	".mjs":   true,
	".map":   true,
	".json":  true,
	".png":   true,
	".jpg":   true,
	".jpeg":  true,
	".gif":   true,
	".svg":   true,
	".webp":  true,
	".avif":  true,
	".ico":   true,
	".woff":  true,
	".woff2": true,
	".ttf":   true,
	".otf":   true,
	".eot":   true,
	".txt":   true,
	".xml":   true,
}

// Classify maps a request path to its route class.
func Classify(requestPath string) RouteClass {
	if requestPath == healthPath {
		return ClassHealth
	}
	if requestPath == "/api" || strings.HasPrefix(requestPath, apiPrefix) {
		return ClassApi
	}
	if staticExtensions[strings.ToLower(path.Ext(requestPath))] {
		return ClassStaticAsset
	}
	return ClassHtmlPage
}
