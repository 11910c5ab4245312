package manifest

import (
	"path/filepath"
	"testing"
)

func TestResolveLeadingSeparatorEquivalence(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	w := NewStore(path, testLogger())
	w.Record("css/app.css", "css/app.cafe0123.css")
	if err := w.Persist(); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(NewStore(path, testLogger()))

	testCases := []string{"css/app.css", "img/logo.png", "nested/deep/file.js"}
	for _, p := range testCases {
		if with, without := r.Resolve("/"+p), r.Resolve(p); with != without {
			t.Errorf("Resolve(%q): %q != %q", p, with, without)
		}
	}

	if got := r.Resolve("/css/app.css"); got != "css/app.cafe0123.css" {
		t.Errorf("Resolve: got %q, want fingerprinted path", got)
	}
}

func TestResolveWithoutArtifactReturnsInput(t *testing.T) {
	r := NewResolver(NewStore(filepath.Join(t.TempDir(), Filename), testLogger()))

	if got := r.Resolve("css/app.css"); got != "css/app.css" {
		t.Errorf("got %q, want the logical path unchanged", got)
	}
}
