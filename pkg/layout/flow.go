package layout

import (
	"github.com/ahuangsnail/quire/pkg/frame"
	"github.com/ahuangsnail/quire/pkg/geom"
	"github.com/ahuangsnail/quire/pkg/style"
)

// Spacing is the payload of a spacing child: either a fixed length,
// possibly relative to the region height, or a fractional weight that
// shares the region's leftover space at finishing time. Build values
// with [Fixed] and [Fractional].
type Spacing struct {
	rel geom.Rel
	fr  geom.Fr
}

// Fixed creates spacing with a resolvable length.
func Fixed(rel geom.Rel) Spacing { return Spacing{rel: rel} }

// Fractional creates weighted spacing with no intrinsic size.
func Fractional(fr geom.Fr) Spacing { return Spacing{fr: fr} }

// IsFractional reports whether the spacing is weight-based.
func (s Spacing) IsFractional() bool { return s.fr > 0 }

type childKind int

const (
	childSpacing childKind = iota
	childBlock
	childBreak
)

// Child is one entry in a flow: vertical spacing, a block of content,
// or an explicit column break. Build children with [Gap], [Content] and
// [Colbreak]; attach per-child style overrides with [Child.Styled].
type Child struct {
	kind    childKind
	spacing Spacing
	block   Block
	styles  *style.Map
}

// Gap creates a spacing child.
func Gap(s Spacing) Child { return Child{kind: childSpacing, spacing: s} }

// Content creates a content child.
func Content(b Block) Child { return Child{kind: childBlock, block: b} }

// Colbreak creates a child that finishes the current region
// immediately; following children start in the next region.
func Colbreak() Child { return Child{kind: childBreak} }

// Styled returns a copy of the child with a style override attached.
// The override scopes only this child; siblings are unaffected.
func (c Child) Styled(m *style.Map) Child {
	c.styles = m
	return c
}

// Flow arranges spacing, paragraphs and other block-level children
// vertically into one frame per region. It lays out both top-level
// document bodies and the interiors of boxes.
//
// Children are consumed strictly in order in a single pass, so the
// output is deterministic for a given region set and style chain.
type Flow struct {
	Children []Child
}

var _ Block = (*Flow)(nil)

// Layout lays the flow's children out against the region set and
// returns the finished frames. The first child error aborts the scan.
func (f *Flow) Layout(regs Regions, styles style.Chain) ([]*frame.Frame, error) {
	l := newFlowLayouter(regs)

	for _, child := range f.Children {
		cs := styles.With(child.styles)
		switch child.kind {
		case childSpacing:
			l.layoutSpacing(child.spacing, cs)
		case childBlock:
			if err := l.layoutBlock(child.block, cs); err != nil {
				return nil, err
			}
		case childBreak:
			l.finishRegion()
		}
	}

	return l.finish(), nil
}

// flowItem is one staged directive for the current region. Items are
// appended in arrival order and resolved exactly once, in that order,
// when the region is finished.
type flowItem interface {
	isFlowItem()
}

// absItem advances the cursor by a resolved length.
type absItem geom.Abs

// frItem advances the cursor by a weighted share of the region's
// leftover space.
type frItem geom.Fr

// frameItem positions a child frame with its resolved alignment pair.
type frameItem struct {
	frame  *frame.Frame
	aligns geom.Axes[geom.Align]
}

// placedItem pins a frame to the region origin, outside the flow.
type placedItem struct {
	frame *frame.Frame
}

func (absItem) isFlowItem()    {}
func (frItem) isFlowItem()     {}
func (frameItem) isFlowItem()  {}
func (placedItem) isFlowItem() {}

// flowLayouter is the single-owner accumulator for one layout call.
// It tracks consumption of the current region and stages items until
// the region is finished.
type flowLayouter struct {
	// regions are the remaining areas, with child expansion disabled
	// vertically.
	regions Regions
	// expand records the caller's expansion request.
	expand geom.Axes[bool]
	// full is the size of the current region before any consumption.
	// Relative spacing and fractional leftovers resolve against it.
	full geom.Size
	// used accumulates the current region's consumption: summed heights
	// and the maximum width.
	used geom.Size
	// fr sums the fractional weights staged in the current region.
	fr geom.Fr
	// items are the staged directives for the current region.
	items []flowItem
	// finished collects the emitted frames of previous regions.
	finished []*frame.Frame
}

func newFlowLayouter(regs Regions) *flowLayouter {
	expand := regs.Expand
	full := regs.First

	// Children always shrink to fit vertically; the flow itself decides
	// how much of each region the output frame claims.
	regs.Expand.Y = false

	return &flowLayouter{
		regions: regs,
		expand:  expand,
		full:    full,
	}
}

// layoutSpacing stages one spacing child.
//
// Fixed spacing resolves against the region's full height, consumes at
// most the space the region still has, and stages the unclamped value
// so that fractional distribution later sees the full intended gap.
// Fractional spacing consumes nothing now; its weight joins the pool
// that shares the leftover space at finishing time.
func (l *flowLayouter) layoutSpacing(s Spacing, styles style.Chain) {
	if s.IsFractional() {
		l.items = append(l.items, frItem(s.fr))
		l.fr += s.fr
		return
	}
	resolved := s.rel.Resolve(styles.TextSize()).RelativeTo(l.full.H)
	limited := resolved.Clamp(0, l.regions.First.H)
	l.regions.First.H -= limited
	l.used.H += limited
	l.items = append(l.items, absItem(resolved))
}

// layoutBlock lays out one content child, staging one frame item per
// region the child spans and force-finishing the region between them.
func (l *flowLayouter) layoutBlock(b Block, styles style.Chain) error {
	// Never lay content into a region with no space left.
	if l.regions.IsFull() {
		l.finishRegion()
	}

	// Out-of-flow blocks contribute a single origin-pinned frame and
	// nothing else.
	if p, ok := b.(Placer); ok && p.OutOfFlow() {
		frames, err := b.Layout(l.regions, styles)
		if err != nil {
			return err
		}
		if len(frames) > 0 {
			l.items = append(l.items, placedItem{frame: frames[0]})
		}
		return nil
	}

	// Horizontal alignment always follows the ambient paragraph
	// alignment so shrink-wrapped paragraphs sit where their own text
	// alignment puts them. Vertical alignment is honored only from an
	// explicit wrapper.
	aligns := geom.Axes[geom.Align]{X: styles.ParAlign(), Y: geom.AlignStart}
	if va, ok := b.(VAligner); ok {
		if y, explicit := va.VAlign(); explicit {
			aligns.Y = y
		}
	}

	frames, err := b.Layout(l.regions, styles)
	if err != nil {
		return err
	}

	for i, f := range frames {
		f.SetRole(frame.RoleBlock)

		size := f.Size()
		l.used.H += size.H
		l.used.W = l.used.W.Max(size.W)
		l.regions.First.H -= size.H
		l.items = append(l.items, frameItem{frame: f, aligns: aligns})

		// Every frame but the last belongs to a region of its own.
		if i+1 < len(frames) {
			l.finishRegion()
		}
	}

	return nil
}

// finishRegion resolves the staged items into one output frame,
// advances to the next region and resets the per-region state.
func (l *flowLayouter) finishRegion() {
	size := l.used
	if l.expand.X {
		size.W = l.full.W
	}
	if l.expand.Y {
		size.H = l.full.H
	}

	// The leftover space fractional spacers share, computed before any
	// fractional adjustment. Any positive fractional weight claims the
	// whole region, but only when there is a bounded region to claim.
	remaining := l.full.H - l.used.H
	if l.fr > 0 && l.full.H.IsFinite() {
		l.used.H = l.full.H
		size.H = l.full.H
	}

	output := frame.New(size)
	offset := geom.Abs(0)
	ruler := geom.AlignStart

	for _, item := range l.items {
		switch it := item.(type) {
		case absItem:
			offset += geom.Abs(it)
		case frItem:
			offset += geom.Fr(it).Share(l.fr, remaining)
		case frameItem:
			// The strongest vertical pull seen so far applies to every
			// later frame, which keeps differently aligned siblings
			// stacked instead of overlapping.
			ruler = ruler.Max(it.aligns.Y)
			pos := geom.Point{
				X: it.aligns.X.Position(size.W - it.frame.Width()),
				Y: offset + ruler.Position(size.H-l.used.H),
			}
			offset += it.frame.Height()
			output.PushFrame(pos, it.frame)
		case placedItem:
			output.PushFrame(geom.Point{}, it.frame)
		}
	}

	l.items = l.items[:0]
	l.regions.Next()
	l.full = l.regions.First
	l.used = geom.Size{}
	l.fr = 0
	l.finished = append(l.finished, output)
}

// finish emits the remaining regions and returns all finished frames.
// A vertically expanding flow emits one frame per originally offered
// region, including trailing empty ones.
func (l *flowLayouter) finish() []*frame.Frame {
	if l.expand.Y {
		for len(l.regions.Backlog) > 0 {
			l.finishRegion()
		}
	}
	l.finishRegion()
	return l.finished
}
