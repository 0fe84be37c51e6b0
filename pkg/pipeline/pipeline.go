// Package pipeline provides the core typesetting pipeline for Quire.
//
// This package implements the complete parse → typeset → render pipeline that
// can be used by CLI and API components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read a TOML manifest into a document
//  2. Typeset: Lay the document's blocks out into pages
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
// Manifest sources may be local files, inline content, or http(s) URLs;
// remote manifests are fetched through the runner's [httputil.Fetcher].
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SourcePath: "report.toml",
//	    Formats:    []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Parse only
//	d, err := runner.Parse(ctx, opts)
//
//	// Typeset an existing document
//	ps, err := runner.Typeset(ctx, d, opts)
//
//	// Render an existing page set
//	artifacts, err := runner.Render(ctx, ps, d, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ahuangsnail/quire/pkg/cache"
	"github.com/ahuangsnail/quire/pkg/doc"
	"github.com/ahuangsnail/quire/pkg/pages"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMaxPages is the maximum number of pages the typeset stage will
	// produce. Manifests without a page count repeat the page region forever,
	// so this caps runaway output. Callers can raise it explicitly.
	DefaultMaxPages = 200

	// DefaultScale is the default raster scale factor for PNG output.
	DefaultScale = 2.0
)

// DefaultView is the default render view.
const DefaultView = ViewPages

// View constants for render views.
const (
	// ViewPages renders the typeset pages themselves.
	ViewPages = "pages"

	// ViewTree renders the document's block structure as a diagram.
	ViewTree = "tree"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidViews is the set of supported render views.
var ValidViews = map[string]bool{
	ViewPages: true,
	ViewTree:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the typesetting pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Parse options
	Source     string `json:"source,omitempty"`      // Inline manifest content
	SourcePath string `json:"source_path,omitempty"` // Manifest file path or http(s) URL
	Title      string `json:"title,omitempty"`       // Overrides the manifest title
	Refresh    bool   `json:"refresh,omitempty"`     // Skip cache reads and recompute; results are still written back

	// Typeset options
	MaxPages int `json:"max_pages,omitempty"`

	// Render options
	View     string   `json:"view,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	PageGap  float64  `json:"page_gap,omitempty"`
	Labels   bool     `json:"labels,omitempty"`
	Outlines bool     `json:"outlines,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Tree view: include block summaries

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the parsed document.
	Document *doc.Document

	// DocHash is the content hash of the document.
	DocHash string

	// Pages is the typeset page set.
	Pages pages.PageSet

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BlockCount  int
	PageCount   int
	ItemCount   int
	ParseTime   time.Duration
	TypesetTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit   bool // Whether the parsed document came from cache
	TypesetHit bool // Whether the page set came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateView checks that a render view is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return fmt.Errorf("invalid view: %q (must be one of: pages, tree)", view)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForTypeset(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.Source == "" && o.SourcePath == "" {
		return fmt.Errorf("source or source_path is required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetTypesetDefaults sets default values for typesetting.
func (o *Options) SetTypesetDefaults() {
	if o.MaxPages == 0 {
		o.MaxPages = DefaultMaxPages
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForTypeset validates and sets defaults for typesetting.
func (o *Options) ValidateForTypeset() error {
	o.SetTypesetDefaults()
	if o.MaxPages < 0 {
		return fmt.Errorf("max_pages must be positive, got %d", o.MaxPages)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.View == "" {
		o.View = DefaultView
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateView(o.View); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// IsPages returns true if this renders the typeset pages.
func (o *Options) IsPages() bool {
	return o.View == "" || o.View == ViewPages
}

// IsTree returns true if this renders the block structure diagram.
func (o *Options) IsTree() bool {
	return o.View == ViewTree
}

// PagesKeyOpts returns cache key options for the typeset stage.
func (o *Options) PagesKeyOpts() cache.PagesKeyOpts {
	return cache.PagesKeyOpts{
		MaxPages: o.MaxPages,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		View:     o.View,
		Scale:    o.Scale,
		PageGap:  o.PageGap,
		Labels:   o.Labels,
		Outlines: o.Outlines,
		Detailed: o.Detailed,
	}
}
