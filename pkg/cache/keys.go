package cache

import "fmt"

// Keyer generates cache keys for the pipeline stages.
// A single Keyer keeps the CLI, API, and pipeline in agreement about
// key layout so they share cache entries.
type Keyer interface {
	// HTTPKey generates a key for HTTP response caching.
	HTTPKey(namespace, key string) string

	// DocumentKey generates a key for parsed document caching.
	// sourceHash is the hash of the raw manifest bytes.
	DocumentKey(sourceHash string) string

	// PagesKey generates a key for typeset page set caching.
	// docHash is the hash of the serialized document.
	PagesKey(docHash string, opts PagesKeyOpts) string

	// ArtifactKey generates a key for rendered artifact caching.
	// pagesHash is the hash of the serialized page set.
	ArtifactKey(pagesHash string, opts ArtifactKeyOpts) string
}

// PagesKeyOpts holds the options that affect typeset output.
// Two runs with the same document and the same PagesKeyOpts produce
// identical page sets, so they share a cache entry.
type PagesKeyOpts struct {
	MaxPages int
}

// ArtifactKeyOpts holds the options that affect rendered artifacts.
type ArtifactKeyOpts struct {
	Format   string
	View     string
	Scale    float64
	PageGap  float64
	Labels   bool
	Outlines bool
	Detailed bool
}

// DefaultKeyer is the standard key generator.
// Keys are "prefix:sha256hex" strings built from the hashed inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
// HTTP keys stay readable (no hashing) so they can be inspected directly.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return fmt.Sprintf("http:%s:%s", namespace, key)
}

// DocumentKey generates a key for parsed document caching.
func (k *DefaultKeyer) DocumentKey(sourceHash string) string {
	return hashKey("doc", sourceHash)
}

// PagesKey generates a key for typeset page set caching.
func (k *DefaultKeyer) PagesKey(docHash string, opts PagesKeyOpts) string {
	return hashKey("pages", docHash, opts)
}

// ArtifactKey generates a key for rendered artifact caching.
func (k *DefaultKeyer) ArtifactKey(pagesHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", pagesHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
