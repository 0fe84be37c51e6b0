package doc

import (
	"strings"

	qerrors "github.com/ahuangsnail/quire/pkg/errors"
	"github.com/ahuangsnail/quire/pkg/geom"
	"github.com/ahuangsnail/quire/pkg/layout"
	"github.com/ahuangsnail/quire/pkg/style"
)

// Geometry is the resolved page geometry of a document.
type Geometry struct {
	// Size is the full page size. Auto axes are infinite.
	Size geom.Size
	// Margin is the uniform page margin.
	Margin geom.Abs
	// Auto marks axes that grow to fit the content.
	Auto geom.Axes[bool]
	// Count caps the page count, zero for unlimited.
	Count int
}

// Geometry resolves the page configuration against the defaults.
func (d *Document) Geometry() (Geometry, error) {
	g := Geometry{Count: d.Page.Count}

	var err error
	if g.Size.W, g.Auto.X, err = pageDim(d.Page.Width, DefaultPageWidth); err != nil {
		return Geometry{}, qerrors.Wrap(qerrors.ErrCodeInvalidPage, err, "page width")
	}
	if g.Size.H, g.Auto.Y, err = pageDim(d.Page.Height, DefaultPageHeight); err != nil {
		return Geometry{}, qerrors.Wrap(qerrors.ErrCodeInvalidPage, err, "page height")
	}

	margin := d.Page.Margin
	if margin == "" {
		margin = DefaultMargin
	}
	l, err := geom.ParseLength(margin)
	if err != nil {
		return Geometry{}, qerrors.Wrap(qerrors.ErrCodeInvalidPage, err, "page margin")
	}
	g.Margin = l.Abs

	return g, nil
}

func pageDim(value, fallback string) (geom.Abs, bool, error) {
	if value == AutoDim {
		return geom.Infinite(), true, nil
	}
	if value == "" {
		value = fallback
	}
	l, err := geom.ParseLength(value)
	if err != nil {
		return 0, false, err
	}
	return l.Abs, false, nil
}

// Regions builds the region set the document body is typeset into: the
// page interior (page size minus margins), repeated for as many pages
// as the configuration allows. An auto height yields a single region.
func (d *Document) Regions() (layout.Regions, error) {
	g, err := d.Geometry()
	if err != nil {
		return layout.Regions{}, err
	}

	inner := geom.Size{
		W: (g.Size.W - 2*g.Margin).Max(0),
		H: (g.Size.H - 2*g.Margin).Max(0),
	}
	expand := geom.Axes[bool]{X: !g.Auto.X, Y: !g.Auto.Y}

	switch {
	case g.Auto.Y || g.Count == 1:
		return layout.One(inner, expand), nil
	case g.Count == 0:
		return layout.Repeat(inner, expand), nil
	default:
		backlog := make([]geom.Size, g.Count-1)
		for i := range backlog {
			backlog[i] = inner
		}
		return layout.Regions{First: inner, Backlog: backlog, Expand: expand}, nil
	}
}

// Styles builds the document-wide style chain. Unset fields keep their
// defaults. Values that fail to parse are skipped; [Document.Validate]
// reports them.
func (d *Document) Styles() style.Chain {
	var opts []style.Option
	if d.Style.Size != "" {
		if l, err := geom.ParseLength(d.Style.Size); err == nil {
			opts = append(opts, style.TextSize(l.Abs))
		}
	}
	if d.Style.Leading != "" {
		if l, err := geom.ParseLength(d.Style.Leading); err == nil {
			opts = append(opts, style.Leading(l))
		}
	}
	if d.Style.Align != "" {
		if a, err := geom.ParseAlign(d.Style.Align); err == nil {
			opts = append(opts, style.ParAlign(a))
		}
	}
	if d.Style.Fill != "" {
		opts = append(opts, style.Fill(d.Style.Fill))
	}

	var chain style.Chain
	if len(opts) == 0 {
		return chain
	}
	return chain.With(style.NewMap(opts...))
}

// Flow builds the layout tree from the manifest's blocks.
func (d *Document) Flow() (*layout.Flow, error) {
	children := make([]layout.Child, 0, len(d.Blocks))
	for i := range d.Blocks {
		child, err := buildChild(&d.Blocks[i])
		if err != nil {
			return nil, qerrors.Wrap(qerrors.GetCode(err), err, "block %d", i+1)
		}
		children = append(children, child)
	}
	return &layout.Flow{Children: children}, nil
}

// buildChild converts one top-level block into a flow child with its
// style overrides attached.
func buildChild(b *BlockConfig) (layout.Child, error) {
	overrides, err := overrideMap(b)
	if err != nil {
		return layout.Child{}, err
	}

	switch b.Kind {
	case KindVSpace:
		sp, err := parseSpacing(b.Amount)
		if err != nil {
			return layout.Child{}, err
		}
		return layout.Gap(sp).Styled(overrides), nil

	case KindColbreak:
		return layout.Colbreak(), nil

	default:
		blk, err := buildBlock(b)
		if err != nil {
			return layout.Child{}, err
		}
		return layout.Content(blk).Styled(overrides), nil
	}
}

// buildBlock converts a content block, wrapping it for an explicit
// vertical alignment.
func buildBlock(b *BlockConfig) (layout.Block, error) {
	blk, err := buildBare(b)
	if err != nil {
		return nil, err
	}
	if b.VAlign != "" {
		y, err := geom.ParseAlign(b.VAlign)
		if err != nil {
			return nil, qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "valign override")
		}
		blk = &layout.Aligned{Body: blk, Y: &y}
	}
	return blk, nil
}

func buildBare(b *BlockConfig) (layout.Block, error) {
	switch b.Kind {
	case KindParagraph:
		return &layout.Par{Text: b.Text}, nil

	case KindBox:
		box := &layout.Box{Fill: b.Fill}
		if b.Width != "" {
			rel, err := geom.ParseRel(b.Width)
			if err != nil {
				return nil, qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "box width")
			}
			box.Width = &rel
		}
		if b.Height != "" {
			rel, err := geom.ParseRel(b.Height)
			if err != nil {
				return nil, qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "box height")
			}
			box.Height = &rel
		}
		if b.Body != nil {
			body, err := buildNested(b.Body)
			if err != nil {
				return nil, err
			}
			box.Body = body
		}
		return box, nil

	case KindRule:
		rule := &layout.Rule{Stroke: b.Stroke}
		if b.Thickness != "" {
			l, err := geom.ParseLength(b.Thickness)
			if err != nil {
				return nil, qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "rule thickness")
			}
			rule.Thickness = l
		}
		return rule, nil

	case KindPlace:
		if b.Body == nil {
			return nil, qerrors.New(qerrors.ErrCodeInvalidBlock, "place needs a body")
		}
		body, err := buildNested(b.Body)
		if err != nil {
			return nil, err
		}
		return &layout.Place{Body: body, InFlow: b.InFlow}, nil

	default:
		return nil, qerrors.New(qerrors.ErrCodeInvalidBlock, "unknown block kind %q", b.Kind)
	}
}

// buildNested converts a box or place body. Style overrides on a nested
// block scope through a single-child flow, which applies them the same
// way a top-level flow would.
func buildNested(b *BlockConfig) (layout.Block, error) {
	blk, err := buildBlock(b)
	if err != nil {
		return nil, err
	}
	overrides, err := overrideMap(b)
	if err != nil {
		return nil, err
	}
	if overrides != nil {
		blk = &layout.Flow{Children: []layout.Child{layout.Content(blk).Styled(overrides)}}
	}
	return blk, nil
}

// overrideMap builds a block's style override map, or nil when none of
// the override fields are set. For boxes the fill field is the box
// background, not a style override.
func overrideMap(b *BlockConfig) (*style.Map, error) {
	var opts []style.Option
	if b.Size != "" {
		l, err := geom.ParseLength(b.Size)
		if err != nil {
			return nil, qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "size override")
		}
		opts = append(opts, style.TextSize(l.Abs))
	}
	if b.Leading != "" {
		l, err := geom.ParseLength(b.Leading)
		if err != nil {
			return nil, qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "leading override")
		}
		opts = append(opts, style.Leading(l))
	}
	if b.Align != "" {
		a, err := geom.ParseAlign(b.Align)
		if err != nil {
			return nil, qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "align override")
		}
		opts = append(opts, style.ParAlign(a))
	}
	if b.Fill != "" && b.Kind != KindBox {
		opts = append(opts, style.Fill(b.Fill))
	}
	if len(opts) == 0 {
		return nil, nil
	}
	return style.NewMap(opts...), nil
}

// parseSpacing parses a spacing amount: a fractional weight such as
// "1fr", or any fixed length or percentage.
func parseSpacing(s string) (layout.Spacing, error) {
	if strings.HasSuffix(strings.TrimSpace(s), "fr") {
		fr, err := geom.ParseFr(s)
		if err != nil {
			return layout.Spacing{}, qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "spacing amount")
		}
		return layout.Fractional(fr), nil
	}
	rel, err := geom.ParseRel(s)
	if err != nil {
		return layout.Spacing{}, qerrors.Wrap(qerrors.ErrCodeInvalidLength, err, "spacing amount")
	}
	return layout.Fixed(rel), nil
}
