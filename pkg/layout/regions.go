package layout

import "github.com/ahuangsnail/quire/pkg/geom"

// An Abs smaller than this counts as no space at all.
const eps = geom.Abs(1e-6)

// Regions describes the areas to lay content into: the current region,
// an ordered backlog of regions after it, and optionally a size that
// repeats forever once the backlog is drained (page bodies repeat; a
// box interior does not).
//
// First.H only ever decreases while a region is consumed; Next advances
// to a fresh region. Regions is a value type: copies share the backlog's
// backing array, which is never written through.
type Regions struct {
	// First is the size of the current region. Its height shrinks as
	// content is consumed and may be infinite.
	First geom.Size
	// Backlog holds the sizes of the regions after the first.
	Backlog []geom.Size
	// Last optionally repeats after the backlog is drained.
	Last *geom.Size
	// Expand selects, per axis, whether produced frames fill the full
	// region size or shrink to the content's used size.
	Expand geom.Axes[bool]
}

// One creates a region set holding a single region.
func One(size geom.Size, expand geom.Axes[bool]) Regions {
	return Regions{First: size, Expand: expand}
}

// Repeat creates a region set that offers the same region indefinitely.
func Repeat(size geom.Size, expand geom.Axes[bool]) Regions {
	return Regions{First: size, Last: &size, Expand: expand}
}

// IsFull reports whether the current region has no usable height left.
func (r Regions) IsFull() bool {
	return r.First.H < eps
}

// Next advances to the following region, consuming one backlog entry or
// falling back to the repeating size. With neither available it leaves
// the region set unchanged.
func (r *Regions) Next() {
	switch {
	case len(r.Backlog) > 0:
		r.First = r.Backlog[0]
		r.Backlog = r.Backlog[1:]
	case r.Last != nil:
		r.First = *r.Last
	}
}

// HasNext reports whether Next would move to a fresh region.
func (r Regions) HasNext() bool {
	return len(r.Backlog) > 0 || r.Last != nil
}
