package fingerprint

import (
	"path"
	"regexp"
	"strings"
)

// cssURLPattern matches url(...) references in stylesheet text, with or
// without quotes. Group 1 is the quote (possibly empty), group 2 the
// reference itself.
var cssURLPattern = regexp.MustCompile(`url\(\s*(['"]?)([^'")]+?)['"]?\s*\)`)

// RewriteCSS replaces every relative url(...) reference in a stylesheet whose
// target is a known logical asset with its fingerprinted equivalent.
//
// cssLogical is the stylesheet's own logical path, used to resolve relative
// references. names maps logical path to fingerprinted logical path for the
// stylesheet's origin group only. References to unknown assets, absolute
// URLs, data URIs and fragments are left untouched. A reference appearing
// multiple times is rewritten identically on every occurrence because the
// replacement is a pure function of the matched text.
func RewriteCSS(cssLogical, content string, names map[string]string) string {
	baseDir := path.Dir(cssLogical)

	return cssURLPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := cssURLPattern.FindStringSubmatch(match)
		quote, ref := groups[1], groups[2]

		if !isRelativeRef(ref) {
			return match
		}

		// Font references often carry a query or fragment
		// ("icons.woff2?v=4#iefix"); the target file is the part before it.
		target, suffix := splitRefSuffix(ref)

		logical := path.Clean(path.Join(baseDir, target))
		if strings.HasPrefix(logical, "../") {
			// Points outside the asset root; nothing we could have hashed.
			return match
		}

		fingerprinted, ok := names[logical]
		if !ok {
			return match
		}

		newRef := path.Join(path.Dir(target), path.Base(fingerprinted))
		return "url(" + quote + newRef + suffix + quote + ")"
	})
}

func isRelativeRef(ref string) bool {
	switch {
	case ref == "":
		return false
	case strings.HasPrefix(ref, "data:"):
		return false
	case strings.HasPrefix(ref, "#"):
		return false
	case strings.HasPrefix(ref, "//"):
		return false
	case strings.HasPrefix(ref, "/"):
		return false
	case strings.Contains(ref, "://"):
		return false
	}
	return true
}

func splitRefSuffix(ref string) (target, suffix string) {
	if idx := strings.IndexAny(ref, "?#"); idx >= 0 {
		return ref[:idx], ref[idx:]
	}
	return ref, ""
}
