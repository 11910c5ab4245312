package manifest

// Resolver is the runtime-facing façade over a Store: templates and handlers
// call Resolve to turn a logical asset path into the fingerprinted path to
// emit. Safe for concurrent use; the underlying manifest is immutable after
// its lazy first load.
type Resolver struct {
	store *Store
}

func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve maps a logical asset path to its fingerprinted path, loading the
// manifest on first use. Unknown paths come back unchanged (minus a leading
// separator), so a missing manifest degrades to uncached assets rather than
// broken links.
func (r *Resolver) Resolve(logical string) string {
	r.store.Load()
	return r.store.Lookup(logical)
}
