package layout

import (
	"github.com/ahuangsnail/quire/pkg/frame"
	"github.com/ahuangsnail/quire/pkg/geom"
	"github.com/ahuangsnail/quire/pkg/style"
)

// Box is a sized block: an optional body constrained to explicit
// dimensions, drawn over an optional background fill. A nil dimension
// sizes that axis to the body (or zero without one). Boxes never break
// across regions; an over-tall box simply overflows.
type Box struct {
	Width  *geom.Rel
	Height *geom.Rel
	Fill   string
	Body   Block
}

var _ Block = (*Box)(nil)

// Layout resolves the box dimensions against the current region and
// lays the body, if any, into that area. It always returns one frame.
func (b *Box) Layout(regs Regions, styles style.Chain) ([]*frame.Frame, error) {
	textSize := styles.TextSize()
	base := regs.First

	pod := geom.Size{W: base.W, H: base.H}
	var fixed geom.Axes[bool]
	if b.Width != nil {
		pod.W = b.Width.Resolve(textSize).RelativeTo(base.W).Max(0)
		fixed.X = true
	}
	if b.Height != nil {
		pod.H = b.Height.Resolve(textSize).RelativeTo(base.H).Max(0)
		fixed.Y = true
	}

	size := geom.Size{}
	if fixed.X {
		size.W = pod.W
	}
	if fixed.Y {
		size.H = pod.H
	}

	var body *frame.Frame
	if b.Body != nil {
		inner, err := b.Body.Layout(One(pod, fixed), styles)
		if err != nil {
			return nil, err
		}
		if len(inner) > 0 {
			body = inner[0]
			if !fixed.X {
				size.W = body.Width()
			}
			if !fixed.Y {
				size.H = body.Height()
			}
		}
	}

	out := frame.New(size)
	if b.Fill != "" {
		out.Push(geom.Point{}, frame.Rect{Size: size, Fill: b.Fill})
	}
	if body != nil {
		out.PushFrame(geom.Point{}, body)
	}
	return []*frame.Frame{out}, nil
}
