package layout

import (
	"github.com/ahuangsnail/quire/pkg/frame"
	"github.com/ahuangsnail/quire/pkg/geom"
	"github.com/ahuangsnail/quire/pkg/style"
)

// Place wraps a block and, by default, removes it from the normal flow:
// the flow pins the body's frame to the region origin and excludes it
// from all size and alignment accounting. With InFlow set the wrapper
// participates in the flow like any other block while still shrinking
// its body to content size.
type Place struct {
	Body   Block
	InFlow bool
}

var (
	_ Block  = (*Place)(nil)
	_ Placer = (*Place)(nil)
)

// OutOfFlow reports whether the flow should exclude the body from
// normal accounting.
func (p *Place) OutOfFlow() bool { return !p.InFlow }

// Layout lays the body out shrink-to-fit against the current region.
func (p *Place) Layout(regs Regions, styles style.Chain) ([]*frame.Frame, error) {
	regs.Expand = geom.Axes[bool]{}
	return p.Body.Layout(regs, styles)
}
