package cache

// ScopedKeyer prefixes every key from an inner Keyer, isolating tenants
// or deployments that share one cache backend.
//
//	userKeys := cache.NewScopedKeyer(nil, "user:abc123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

var _ Keyer = ScopedKeyer{}

// NewScopedKeyer wraps inner so that every key it produces starts with
// prefix. A nil inner falls back to the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return ScopedKeyer{inner: inner, prefix: prefix}
}

// HTTPKey prefixes the inner HTTP key.
func (k ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// DocumentKey prefixes the inner document key.
func (k ScopedKeyer) DocumentKey(sourceHash string) string {
	return k.prefix + k.inner.DocumentKey(sourceHash)
}

// PagesKey prefixes the inner page-set key.
func (k ScopedKeyer) PagesKey(docHash string, opts PagesKeyOpts) string {
	return k.prefix + k.inner.PagesKey(docHash, opts)
}

// ArtifactKey prefixes the inner artifact key.
func (k ScopedKeyer) ArtifactKey(pagesHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(pagesHash, opts)
}
