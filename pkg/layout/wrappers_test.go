package layout

import (
	"testing"

	"github.com/ahuangsnail/quire/pkg/frame"
	"github.com/ahuangsnail/quire/pkg/geom"
	"github.com/ahuangsnail/quire/pkg/style"
)

// regsProbe records the region set its layout was offered.
type regsProbe struct {
	got Regions
}

func (p *regsProbe) Layout(regs Regions, styles style.Chain) ([]*frame.Frame, error) {
	p.got = regs
	return []*frame.Frame{frame.New(geom.Size{})}, nil
}

// alignProbe records the paragraph alignment in effect.
type alignProbe struct {
	got geom.Align
}

func (p *alignProbe) Layout(regs Regions, styles style.Chain) ([]*frame.Frame, error) {
	p.got = styles.ParAlign()
	return []*frame.Frame{frame.New(geom.Size{})}, nil
}

func TestRuleSpansRegion(t *testing.T) {
	r := &Rule{}
	frames, err := r.Layout(One(sz(80, 100), geom.Axes[bool]{}), style.Chain{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	f := frames[0]
	if got := f.Width(); !got.ApproxEq(geom.Pt(80)) {
		t.Errorf("width = %v, want 80pt", got)
	}
	if got := f.Height(); !got.ApproxEq(geom.Pt(0.5)) {
		t.Errorf("height = %v, want default 0.5pt", got)
	}

	line, ok := f.Elements()[0].Item.(frame.Line)
	if !ok {
		t.Fatalf("item = %T, want Line", f.Elements()[0].Item)
	}
	if got := line.To.X; !got.ApproxEq(geom.Pt(80)) {
		t.Errorf("line To.X = %v, want 80pt", got)
	}
	if line.Stroke != style.DefaultFill {
		t.Errorf("stroke = %q, want text fill %q", line.Stroke, style.DefaultFill)
	}
}

func TestRuleCustomThickness(t *testing.T) {
	r := &Rule{Thickness: geom.Length{Abs: geom.Pt(2)}, Stroke: "#ff0000"}
	frames, err := r.Layout(One(sz(80, 100), geom.Axes[bool]{}), style.Chain{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if got := frames[0].Height(); !got.ApproxEq(geom.Pt(2)) {
		t.Errorf("height = %v, want 2pt", got)
	}
	line := frames[0].Elements()[0].Item.(frame.Line)
	if line.Stroke != "#ff0000" {
		t.Errorf("stroke = %q, want #ff0000", line.Stroke)
	}
}

func TestPlaceOutOfFlowProbe(t *testing.T) {
	if got := (&Place{}).OutOfFlow(); !got {
		t.Error("default Place not out of flow")
	}
	if got := (&Place{InFlow: true}).OutOfFlow(); got {
		t.Error("InFlow Place still out of flow")
	}
}

func TestPlaceShrinksBody(t *testing.T) {
	probe := &regsProbe{}
	p := &Place{Body: probe}

	_, err := p.Layout(One(sz(80, 100), geom.Axes[bool]{X: true, Y: true}), style.Chain{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if probe.got.Expand != (geom.Axes[bool]{}) {
		t.Errorf("body expand = %v, want disabled on both axes", probe.got.Expand)
	}
}

func TestPlaceInFlowParticipates(t *testing.T) {
	flow := &Flow{Children: []Child{
		Content(&Place{
			Body:   &sizedBlock{sizes: []geom.Size{sz(30, 30)}},
			InFlow: true,
		}),
	}}
	frames, err := flow.Layout(One(sz(80, 100), geom.Axes[bool]{}), style.Chain{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// Unlike out-of-flow placement, the body counts toward used size.
	if got := frames[0].Height(); !got.ApproxEq(geom.Pt(30)) {
		t.Errorf("height = %v, want 30pt", got)
	}
}

func TestAlignedVAlignProbe(t *testing.T) {
	end := geom.AlignEnd

	if _, ok := (&Aligned{}).VAlign(); ok {
		t.Error("unset Y reported as explicit")
	}
	got, ok := (&Aligned{Y: &end}).VAlign()
	if !ok || got != geom.AlignEnd {
		t.Errorf("VAlign() = %v, %v; want end, true", got, ok)
	}
}

func TestAlignedPassesParAlign(t *testing.T) {
	center := geom.AlignCenter
	probe := &alignProbe{}
	a := &Aligned{Body: probe, X: &center}

	_, err := a.Layout(One(sz(80, 100), geom.Axes[bool]{}), style.Chain{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if probe.got != geom.AlignCenter {
		t.Errorf("body ParAlign = %v, want center", probe.got)
	}
}

func TestAlignedGrowsToRegion(t *testing.T) {
	end := geom.AlignEnd
	a := &Aligned{
		Body: &Box{Width: relPt(40), Height: relPt(20), Fill: "#ccc"},
		X:    &end,
	}

	frames, err := a.Layout(One(sz(80, 100), geom.Axes[bool]{X: true}), style.Chain{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	f := frames[0]
	if got := f.Width(); !got.ApproxEq(geom.Pt(80)) {
		t.Errorf("width = %v, want grown to 80pt", got)
	}
	if got := f.Height(); !got.ApproxEq(geom.Pt(20)) {
		t.Errorf("height = %v, want 20pt", got)
	}
	// The box content moved to the trailing edge.
	if got := f.Elements()[0].Pos.X; !got.ApproxEq(geom.Pt(40)) {
		t.Errorf("content x = %v, want 40pt", got)
	}
}

func TestAlignedDisablesExpandOnAlignedAxis(t *testing.T) {
	center := geom.AlignCenter
	probe := &regsProbe{}
	a := &Aligned{Body: probe, X: &center}

	_, err := a.Layout(One(sz(80, 100), geom.Axes[bool]{X: true, Y: true}), style.Chain{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if probe.got.Expand.X {
		t.Error("aligned axis still expands for the body")
	}
	if !probe.got.Expand.Y {
		t.Error("unaligned axis lost its expansion")
	}
}
