// Package pkg provides the core libraries for Quire document typesetting.
//
// # Overview
//
// Quire typesets block manifests into paginated documents: blocks flow top
// to bottom through a chain of page regions, and every placed item ends up
// with an absolute position on a page. The pkg directory is organized into
// four main areas:
//
//  1. Layout engine ([geom], [frame], [style], [layout]) - unit-aware
//     geometry and the region-based flow algorithm
//  2. Document model ([doc], [pages]) - TOML manifests in, positioned
//     page sets out
//  3. Rendering ([render]) - SVG, PNG, PDF, JSON, and DOT sinks
//  4. Infrastructure ([pipeline], [cache], [store], [api], [httputil]) -
//     orchestration, caching, persistence, and transport
//
// # Architecture
//
// The typical data flow through Quire:
//
//	TOML manifest (file, inline, or URL)
//	         ↓
//	    [doc] package (parse + validate)
//	         ↓
//	    [layout] package (flow blocks into regions)
//	         ↓
//	    [pages] package (positioned items per page)
//	         ↓
//	    SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
// Typeset a manifest and render it to SVG:
//
//	import (
//	    "context"
//	    "github.com/ahuangsnail/quire/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	defer runner.Close()
//
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    SourcePath: "letter.toml",
//	    Formats:    []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// # Main Packages
//
// ## Layout Engine
//
// [geom] - Length, fraction, alignment, and axis primitives. Lengths mix
// absolute points with font-relative em units; fractions ("1fr") claim
// shares of whatever space is left over.
//
// [frame] - The output side of layout. A frame is a finished box holding
// positioned items: text runs, rule lines, colored areas, nested frames.
//
// [style] - Immutable style chains. Each block can override the document
// style without copying it.
//
// [layout] - The flow engine. Blocks are measured against a region chain,
// fractional spacing is distributed per region, and out-of-flow placements
// land on top of the finished page.
//
// ## Document Model
//
// [doc] - TOML manifest parsing and validation, plus the bridge that turns
// parsed blocks into layout inputs.
//
// [pages] - The wire model: one PageSet per document with absolute item
// positions, serialized as JSON for files, the API, and MongoDB.
//
// ## Rendering
//
// [render] - Artifact sinks. SVG is rendered directly; PNG and PDF convert
// from SVG; JSON dumps the page set; DOT and the tree view draw the block
// structure via Graphviz.
//
// ## Infrastructure
//
// [pipeline] - The parse → typeset → render runner shared by CLI and API.
// Centralizing the stages keeps caching and defaults consistent across all
// entry points.
//
// [cache] - Byte cache with per-entry TTLs. FileCache for the CLI,
// RedisCache for server deployments, NullCache for tests.
//
// [store] - Document persistence behind a small interface: MemoryStore for
// development, MongoStore for deployments.
//
// [api] - The HTTP surface (chi router): typeset endpoint, document CRUD,
// rendered artifact retrieval.
//
// [httputil] - Outbound fetching for remote manifests with caching and
// retry.
//
// [observability] - Hook interfaces called at pipeline, cache, and HTTP
// boundaries.
//
// [errors] - Structured errors with machine-readable codes shared by CLI
// and API.
//
// [buildinfo] - Version metadata stamped at build time.
//
// # Common Workflows
//
// Parse and typeset without rendering:
//
//	d, err := doc.ParseFile("letter.toml")
//	ps, err := pipeline.Typeset(d, pipeline.Options{})
//
// Render an existing page set:
//
//	artifacts, err := pipeline.Render(ps, d, opts)
//
// Serve the API backed by Redis and MongoDB:
//
//	c, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: addr})
//	st, err := store.NewMongoStore(ctx, store.MongoConfig{URI: uri})
//	srv := api.NewServer(api.Config{
//	    Runner: pipeline.NewRunner(c, nil, logger),
//	    Store:  st,
//	    Logger: logger,
//	})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//	go test -run Example        # Examples only
//
// [geom]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/geom
// [frame]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/frame
// [style]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/style
// [layout]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/layout
// [doc]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/doc
// [pages]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/pages
// [render]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/cache
// [store]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/store
// [api]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/api
// [httputil]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/observability
// [errors]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/ahuangsnail/quire/pkg/buildinfo
package pkg
