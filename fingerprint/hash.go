// Package fingerprint implements the build-time asset pipeline: it discovers
// static files, content-hashes them, rewrites stylesheet references to the
// hashed names, writes the renamed files to the dist tree and records the
// logical-to-fingerprinted mapping in the manifest.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// fingerprintLen is the number of hex characters embedded in filenames.
// 4 bytes of a BLAKE3 digest is plenty for cache busting; collisions only
// matter within one deploy and only between different contents.
const fingerprintLen = 8

// Hash returns the fingerprint for the given content: the first 8 lowercase
// hex characters of its BLAKE3 digest. Identical content always yields an
// identical fingerprint, across runs and processes.
func Hash(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}

// FingerprintedName inserts the fingerprint before the last extension segment
// of filename: "app.min.js" becomes "app.min.<fp>.js", a file without an
// extension becomes "name.<fp>". An empty fingerprint would make the result
// collide with the original name, which defeats cache busting, so it is
// rejected as a build error.
func FingerprintedName(filename, fp string) (string, error) {
	if fp == "" {
		return "", fmt.Errorf("empty fingerprint for %q", filename)
	}

	idx := strings.LastIndex(filename, ".")
	if idx <= 0 {
		// No extension, or a dotfile like ".htaccess" where the leading dot
		// is not an extension separator.
		return filename + "." + fp, nil
	}

	return filename[:idx] + "." + fp + filename[idx:], nil
}
