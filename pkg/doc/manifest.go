package doc

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	qerrors "github.com/ahuangsnail/quire/pkg/errors"
	"github.com/ahuangsnail/quire/pkg/geom"
)

// Default page geometry (A4 with a one inch margin).
const (
	DefaultPageWidth  = "595.28pt"
	DefaultPageHeight = "841.89pt"
	DefaultMargin     = "72pt"
)

// AutoDim marks a page dimension as unbounded.
const AutoDim = "auto"

// Block kinds accepted in manifests.
const (
	KindParagraph = "paragraph"
	KindVSpace    = "vspace"
	KindBox       = "box"
	KindRule      = "rule"
	KindColbreak  = "colbreak"
	KindPlace     = "place"
)

// Document is a parsed manifest. It is pure data: strings stay strings
// until [Document.Flow] and [Document.Regions] build the layout inputs,
// so a Document round-trips through JSON for caching and storage.
type Document struct {
	Title  string        `toml:"title" json:"title,omitempty"`
	Page   PageConfig    `toml:"page" json:"page"`
	Style  StyleConfig   `toml:"style" json:"style"`
	Blocks []BlockConfig `toml:"block" json:"blocks,omitempty"`
}

// PageConfig controls the region set the document is typeset into.
type PageConfig struct {
	Width  string `toml:"width" json:"width,omitempty"`
	Height string `toml:"height" json:"height,omitempty"`
	Margin string `toml:"margin" json:"margin,omitempty"`

	// Count caps the number of pages. Zero means unlimited: the
	// document takes as many pages as the content needs.
	Count int `toml:"count" json:"count,omitempty"`
}

// StyleConfig is the document-wide base style.
type StyleConfig struct {
	Size    string `toml:"size" json:"size,omitempty"`
	Leading string `toml:"leading" json:"leading,omitempty"`
	Align   string `toml:"align" json:"align,omitempty"`
	Fill    string `toml:"fill" json:"fill,omitempty"`
}

// BlockConfig is one [[block]] entry. Kind selects which fields apply;
// the style override fields apply to any kind.
type BlockConfig struct {
	Kind string `toml:"kind" json:"kind"`

	// paragraph
	Text string `toml:"text" json:"text,omitempty"`

	// vspace
	Amount string `toml:"amount" json:"amount,omitempty"`

	// box
	Width  string `toml:"width" json:"width,omitempty"`
	Height string `toml:"height" json:"height,omitempty"`
	Fill   string `toml:"fill" json:"fill,omitempty"`

	// rule
	Thickness string `toml:"thickness" json:"thickness,omitempty"`
	Stroke    string `toml:"stroke" json:"stroke,omitempty"`

	// place and box bodies
	Body   *BlockConfig `toml:"body" json:"body,omitempty"`
	InFlow bool         `toml:"in-flow" json:"in_flow,omitempty"`

	// style overrides
	Size    string `toml:"size" json:"size,omitempty"`
	Leading string `toml:"leading" json:"leading,omitempty"`
	Align   string `toml:"align" json:"align,omitempty"`
	VAlign  string `toml:"valign" json:"valign,omitempty"`
}

// Parse decodes and validates a TOML manifest.
func Parse(data []byte) (*Document, error) {
	var d Document
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseFile reads and parses a TOML manifest from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, qerrors.Wrap(qerrors.ErrCodeFileNotFound, err, "read manifest %s", path)
		}
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidManifest, err, "read manifest %s", path)
	}
	return Parse(data)
}

// Validate checks the manifest without building layout inputs.
// Parse calls it; call it again after mutating a Document by hand.
func (d *Document) Validate() error {
	if err := validatePage(d.Page); err != nil {
		return err
	}
	if err := validateStyle(d.Style); err != nil {
		return err
	}
	for i := range d.Blocks {
		if err := validateBlock(&d.Blocks[i], false); err != nil {
			return qerrors.Wrap(qerrors.GetCode(err), err, "block %d", i+1)
		}
	}
	return nil
}

func validatePage(p PageConfig) error {
	for _, dim := range []struct {
		name  string
		value string
	}{
		{"width", p.Width},
		{"height", p.Height},
	} {
		if dim.value == "" || dim.value == AutoDim {
			continue
		}
		l, err := geom.ParseLength(dim.value)
		if err != nil {
			return qerrors.Wrap(qerrors.ErrCodeInvalidPage, err, "page %s", dim.name)
		}
		if l.Em != 0 {
			return qerrors.New(qerrors.ErrCodeInvalidPage, "page %s must be absolute, got %q", dim.name, dim.value)
		}
		if l.Abs < 0 {
			return qerrors.New(qerrors.ErrCodeInvalidPage, "page %s must be positive, got %q", dim.name, dim.value)
		}
	}

	if p.Margin != "" {
		l, err := geom.ParseLength(p.Margin)
		if err != nil {
			return qerrors.Wrap(qerrors.ErrCodeInvalidPage, err, "page margin")
		}
		if l.Em != 0 || l.Abs < 0 {
			return qerrors.New(qerrors.ErrCodeInvalidPage, "page margin must be a non-negative absolute length, got %q", p.Margin)
		}
	}

	if p.Count < 0 {
		return qerrors.New(qerrors.ErrCodeInvalidPage, "page count must be non-negative, got %d", p.Count)
	}
	return nil
}

func validateStyle(s StyleConfig) error {
	if s.Size != "" {
		l, err := geom.ParseLength(s.Size)
		if err != nil {
			return qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "style size")
		}
		if l.Em != 0 {
			return qerrors.New(qerrors.ErrCodeInvalidLength, "style size must be absolute, got %q", s.Size)
		}
	}
	if s.Leading != "" {
		if _, err := geom.ParseLength(s.Leading); err != nil {
			return qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "style leading")
		}
	}
	if s.Align != "" {
		if _, err := geom.ParseAlign(s.Align); err != nil {
			return qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "style align")
		}
	}
	return qerrors.ValidateColor(s.Fill)
}

func validateBlock(b *BlockConfig, nested bool) error {
	switch b.Kind {
	case KindParagraph:
		// Empty text is allowed; it typesets as an empty line.

	case KindVSpace:
		if nested {
			return qerrors.New(qerrors.ErrCodeInvalidBlock, "vspace cannot be nested")
		}
		if _, err := parseSpacing(b.Amount); err != nil {
			return err
		}

	case KindBox:
		for _, dim := range []struct {
			name  string
			value string
		}{
			{"width", b.Width},
			{"height", b.Height},
		} {
			if dim.value == "" {
				continue
			}
			if _, err := geom.ParseRel(dim.value); err != nil {
				return qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "box %s", dim.name)
			}
		}
		if err := qerrors.ValidateColor(b.Fill); err != nil {
			return err
		}
		if b.Body != nil {
			if err := validateBlock(b.Body, true); err != nil {
				return err
			}
		}

	case KindRule:
		if b.Thickness != "" {
			if _, err := geom.ParseLength(b.Thickness); err != nil {
				return qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "rule thickness")
			}
		}
		if err := qerrors.ValidateColor(b.Stroke); err != nil {
			return err
		}

	case KindColbreak:
		if nested {
			return qerrors.New(qerrors.ErrCodeInvalidBlock, "colbreak cannot be nested")
		}

	case KindPlace:
		if nested {
			return qerrors.New(qerrors.ErrCodeInvalidBlock, "place cannot be nested")
		}
		if b.Body == nil {
			return qerrors.New(qerrors.ErrCodeInvalidBlock, "place needs a body")
		}
		if err := validateBlock(b.Body, true); err != nil {
			return err
		}

	case "":
		return qerrors.New(qerrors.ErrCodeInvalidBlock, "block kind is required")

	default:
		return qerrors.New(qerrors.ErrCodeInvalidBlock, "unknown block kind %q", b.Kind)
	}

	return validateOverrides(b)
}

func validateOverrides(b *BlockConfig) error {
	if b.Size != "" {
		l, err := geom.ParseLength(b.Size)
		if err != nil {
			return qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "size override")
		}
		if l.Em != 0 {
			return qerrors.New(qerrors.ErrCodeInvalidLength, "size override must be absolute, got %q", b.Size)
		}
	}
	if b.Leading != "" {
		if _, err := geom.ParseLength(b.Leading); err != nil {
			return qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "leading override")
		}
	}
	if b.Align != "" {
		if _, err := geom.ParseAlign(b.Align); err != nil {
			return qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "align override")
		}
	}
	if b.VAlign != "" {
		if _, err := geom.ParseAlign(b.VAlign); err != nil {
			return qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "valign override")
		}
	}
	if b.Kind != KindBox {
		// For boxes the fill field is the box background, checked above.
		if err := qerrors.ValidateColor(b.Fill); err != nil {
			return err
		}
	}
	return nil
}

// BlockCount counts blocks including nested bodies.
func (d *Document) BlockCount() int {
	n := 0
	for i := range d.Blocks {
		n += countBlocks(&d.Blocks[i])
	}
	return n
}

func countBlocks(b *BlockConfig) int {
	n := 1
	if b.Body != nil {
		n += countBlocks(b.Body)
	}
	return n
}

// Summary returns a short human-readable description of the block for
// diagram labels and logs.
func (b *BlockConfig) Summary() string {
	switch b.Kind {
	case KindParagraph:
		text := b.Text
		if len(text) > 20 {
			text = text[:20] + "…"
		}
		return strings.TrimSpace(text)
	case KindVSpace:
		return b.Amount
	case KindBox:
		parts := make([]string, 0, 2)
		if b.Width != "" {
			parts = append(parts, b.Width)
		}
		if b.Height != "" {
			parts = append(parts, b.Height)
		}
		return strings.Join(parts, " x ")
	case KindRule:
		return b.Thickness
	default:
		return ""
	}
}
