package layout

import (
	"github.com/ahuangsnail/quire/pkg/frame"
	"github.com/ahuangsnail/quire/pkg/geom"
	"github.com/ahuangsnail/quire/pkg/style"
)

// Block is a unit of block-level content. Laying a block out against a
// region set yields one frame per region the block actually uses; a
// block taller than the current region may return several frames.
//
// Layout must be deterministic with respect to its inputs: the flow may
// call it with slightly different remaining space and relies on getting
// consistent frames back.
type Block interface {
	Layout(regs Regions, styles style.Chain) ([]*frame.Frame, error)
}

// Placer is the capability probe for out-of-flow placement. A block
// whose OutOfFlow reports true is laid out once, staged at the region
// origin, and excluded from all used-size, alignment and fractional
// accounting.
type Placer interface {
	OutOfFlow() bool
}

// VAligner is the capability probe for explicit vertical alignment.
// Blocks without it, or reporting false, align to the top of the flow.
type VAligner interface {
	VAlign() (geom.Align, bool)
}
