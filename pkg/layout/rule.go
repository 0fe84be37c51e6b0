package layout

import (
	"github.com/ahuangsnail/quire/pkg/frame"
	"github.com/ahuangsnail/quire/pkg/geom"
	"github.com/ahuangsnail/quire/pkg/style"
)

// DefaultRuleThickness is used when a rule does not set its own.
var DefaultRuleThickness = geom.Length{Abs: geom.Pt(0.5)}

// Rule is a horizontal line spanning the available region width.
type Rule struct {
	// Thickness of the stroke; the zero value means
	// [DefaultRuleThickness].
	Thickness geom.Length
	// Stroke is the line color, empty for the text fill color.
	Stroke string
}

var _ Block = (*Rule)(nil)

// Layout produces a single frame as wide as the current region and as
// tall as the stroke.
func (r *Rule) Layout(regs Regions, styles style.Chain) ([]*frame.Frame, error) {
	thickness := r.Thickness
	if thickness == (geom.Length{}) {
		thickness = DefaultRuleThickness
	}
	t := thickness.Resolve(styles.TextSize()).Max(0)

	stroke := r.Stroke
	if stroke == "" {
		stroke = styles.Fill()
	}

	width := regs.First.W
	f := frame.New(geom.Size{W: width, H: t})
	f.Push(geom.Point{Y: t / 2}, frame.Line{
		To:        geom.Point{X: width},
		Thickness: t,
		Stroke:    stroke,
	})
	return []*frame.Frame{f}, nil
}
