package layout

import (
	"github.com/ahuangsnail/quire/pkg/frame"
	"github.com/ahuangsnail/quire/pkg/geom"
	"github.com/ahuangsnail/quire/pkg/style"
)

// Aligned wraps a block with explicit alignments. A set horizontal
// alignment overrides the ambient paragraph alignment for the body and
// positions the shrunk body within an expanding region. A set vertical
// alignment is advertised to the enclosing flow, which honors it when
// positioning the frame in its region.
type Aligned struct {
	Body Block
	X, Y *geom.Align
}

var (
	_ Block    = (*Aligned)(nil)
	_ VAligner = (*Aligned)(nil)
)

// VAlign reports the explicit vertical alignment, if one is set.
func (a *Aligned) VAlign() (geom.Align, bool) {
	if a.Y == nil {
		return geom.AlignStart, false
	}
	return *a.Y, true
}

// Layout lays the body out, shrinking it on explicitly aligned axes so
// there is free space to align within, then grows each frame back to
// the requested region size with the body positioned inside.
func (a *Aligned) Layout(regs Regions, styles style.Chain) ([]*frame.Frame, error) {
	pod := regs
	pod.Expand.X = pod.Expand.X && a.X == nil
	pod.Expand.Y = pod.Expand.Y && a.Y == nil

	if a.X != nil {
		styles = styles.With(style.NewMap(style.ParAlign(*a.X)))
	}

	frames, err := a.Body.Layout(pod, styles)
	if err != nil {
		return nil, err
	}

	region := regs
	for i, f := range frames {
		if i > 0 {
			region.Next()
		}
		target := f.Size()
		if regs.Expand.X {
			target.W = region.First.W
		}
		if regs.Expand.Y {
			target.H = region.First.H
		}
		growFrame(f, target, a.aligns())
	}

	return frames, nil
}

// aligns returns the wrapper's alignment pair with unset axes at start.
func (a *Aligned) aligns() geom.Axes[geom.Align] {
	var pair geom.Axes[geom.Align]
	if a.X != nil {
		pair.X = *a.X
	}
	if a.Y != nil {
		pair.Y = *a.Y
	}
	return pair
}

// growFrame resizes a frame to the target size, repositioning its
// content by the alignment pair. Shrinking below content size is
// allowed and overflows.
func growFrame(f *frame.Frame, target geom.Size, aligns geom.Axes[geom.Align]) {
	if target == f.Size() {
		return
	}
	f.Translate(geom.Point{
		X: aligns.X.Position(target.W - f.Width()),
		Y: aligns.Y.Position(target.H - f.Height()),
	})
	f.Resize(target)
}
