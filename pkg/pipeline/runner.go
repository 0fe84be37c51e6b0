package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ahuangsnail/quire/pkg/cache"
	"github.com/ahuangsnail/quire/pkg/doc"
	"github.com/ahuangsnail/quire/pkg/httputil"
	"github.com/ahuangsnail/quire/pkg/observability"
	"github.com/ahuangsnail/quire/pkg/pages"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
	Fetcher *httputil.Fetcher
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The cache and keyer are shared with the fetcher for remote manifests.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
		Fetcher: httputil.NewFetcher(c, keyer, logger),
	}
}

// Execute runs the complete parse → typeset → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	d, parseHit, err := r.ParseWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Document = d
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.BlockCount = d.BlockCount()
	result.CacheInfo.ParseHit = parseHit

	// Compute document hash for cache keys and API responses
	if docData, err := json.Marshal(d); err == nil {
		result.DocHash = cache.Hash(docData)
	}

	r.Logger.Info("parsed document",
		"blocks", result.Stats.BlockCount,
		"duration", result.Stats.ParseTime)

	// Stage 2: Typeset
	typesetStart := time.Now()
	ps, typesetHit, err := r.TypesetWithCacheInfo(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("typeset: %w", err)
	}
	result.Pages = ps
	result.Stats.TypesetTime = time.Since(typesetStart)
	result.Stats.PageCount = len(ps.Pages)
	result.Stats.ItemCount = ps.ItemCount()
	result.CacheInfo.TypesetHit = typesetHit

	r.Logger.Info("typeset document",
		"pages", result.Stats.PageCount,
		"items", result.Stats.ItemCount,
		"duration", result.Stats.TypesetTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, ps, d, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ParseWithCacheInfo parses the manifest with caching and returns cache hit info.
func (r *Runner) ParseWithCacheInfo(ctx context.Context, opts Options) (*doc.Document, bool, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	descriptor := sourceDescriptor(opts)
	observability.Pipeline().OnParseStart(ctx, descriptor)
	start := time.Now()

	source, err := r.readSource(ctx, opts)
	if err != nil {
		observability.Pipeline().OnParseComplete(ctx, descriptor, 0, time.Since(start), err)
		return nil, false, err
	}
	cacheKey := r.Keyer.DocumentKey(cache.Hash(source))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var d doc.Document
			if err := json.Unmarshal(data, &d); err == nil {
				observability.Cache().OnCacheHit(ctx, "document")
				applyTitle(&d, opts)
				observability.Pipeline().OnParseComplete(ctx, descriptor, d.BlockCount(), time.Since(start), nil)
				return &d, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "document")
	}

	// Parse
	d, err := doc.Parse(source)
	if err != nil {
		observability.Pipeline().OnParseComplete(ctx, descriptor, 0, time.Since(start), err)
		return nil, false, err
	}

	// Cache the result. Refresh runs write too, so the next run sees the
	// recomputed document rather than the stale entry.
	if data, err := json.Marshal(d); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLDocument); err == nil {
			observability.Cache().OnCacheSet(ctx, "document", len(data))
		}
	}

	applyTitle(d, opts)
	observability.Pipeline().OnParseComplete(ctx, descriptor, d.BlockCount(), time.Since(start), nil)
	return d, false, nil // Cache miss
}

// Parse is a convenience wrapper that calls ParseWithCacheInfo and discards the cache hit info.
func (r *Runner) Parse(ctx context.Context, opts Options) (*doc.Document, error) {
	d, _, err := r.ParseWithCacheInfo(ctx, opts)
	return d, err
}

// TypesetWithCacheInfo typesets a document with caching and returns cache hit info.
func (r *Runner) TypesetWithCacheInfo(ctx context.Context, d *doc.Document, opts Options) (pages.PageSet, bool, error) {
	if err := opts.ValidateForTypeset(); err != nil {
		return pages.PageSet{}, false, err
	}
	r.applyLogger(&opts)

	observability.Pipeline().OnTypesetStart(ctx, d.BlockCount())
	start := time.Now()

	// Compute cache key
	docData, err := json.Marshal(d)
	if err != nil {
		observability.Pipeline().OnTypesetComplete(ctx, 0, time.Since(start), err)
		return pages.PageSet{}, false, fmt.Errorf("serialize document for cache key: %w", err)
	}
	cacheKey := r.Keyer.PagesKey(cache.Hash(docData), opts.PagesKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := pages.Unmarshal(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "pages")
				observability.Pipeline().OnTypesetComplete(ctx, len(cached.Pages), time.Since(start), nil)
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "pages")
	}

	// Typeset
	ps, err := Typeset(d, opts)
	if err != nil {
		observability.Pipeline().OnTypesetComplete(ctx, 0, time.Since(start), err)
		return pages.PageSet{}, false, err
	}

	// Cache the result
	if data, err := pages.Marshal(ps); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLPages); err == nil {
			observability.Cache().OnCacheSet(ctx, "pages", len(data))
		}
	}

	observability.Pipeline().OnTypesetComplete(ctx, len(ps.Pages), time.Since(start), nil)
	return ps, false, nil // Cache miss
}

// Typeset is a convenience wrapper that calls TypesetWithCacheInfo and discards the cache hit info.
func (r *Runner) Typeset(ctx context.Context, d *doc.Document, opts Options) (pages.PageSet, error) {
	ps, _, err := r.TypesetWithCacheInfo(ctx, d, opts)
	return ps, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, ps pages.PageSet, d *doc.Document, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	// Compute cache key from page set data
	pagesData, err := pages.Marshal(ps)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, fmt.Errorf("serialize pages for cache key: %w", err)
	}
	pagesHash := cache.Hash(pagesData)

	// Try to get all formats from cache (unless refresh requested)
	allCached := !opts.Refresh
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(pagesHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
			} else {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	rendered, err := Render(ps, d, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(pagesHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, ps pages.PageSet, d *doc.Document, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, ps, d, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// sourceDescriptor names the manifest source for observability events.
func sourceDescriptor(opts Options) string {
	if opts.SourcePath != "" {
		return opts.SourcePath
	}
	return "inline"
}
