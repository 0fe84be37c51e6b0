package frame

import (
	"testing"

	"github.com/ahuangsnail/quire/pkg/geom"
)

func TestFramePush(t *testing.T) {
	f := New(geom.Size{W: geom.Pt(100), H: geom.Pt(50)})

	f.Push(geom.Point{X: geom.Pt(10)}, Text{Content: "a", Size: geom.Pt(11)})
	f.Push(geom.Point{Y: geom.Pt(20)}, Rect{Size: geom.Size{W: geom.Pt(5), H: geom.Pt(5)}})

	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}

	elems := f.Elements()
	if elems[0].Pos.X != geom.Pt(10) {
		t.Errorf("elems[0].Pos.X = %v, want 10pt", elems[0].Pos.X)
	}
	if _, ok := elems[0].Item.(Text); !ok {
		t.Errorf("elems[0].Item = %T, want Text", elems[0].Item)
	}
	if _, ok := elems[1].Item.(Rect); !ok {
		t.Errorf("elems[1].Item = %T, want Rect", elems[1].Item)
	}
}

func TestFrameNesting(t *testing.T) {
	outer := New(geom.Size{W: geom.Pt(100), H: geom.Pt(100)})
	inner := New(geom.Size{W: geom.Pt(40), H: geom.Pt(20)})
	inner.Push(geom.Point{}, Text{Content: "nested"})

	outer.PushFrame(geom.Point{X: geom.Pt(30), Y: geom.Pt(10)}, inner)

	elems := outer.Elements()
	if len(elems) != 1 {
		t.Fatalf("outer has %d elements, want 1", len(elems))
	}
	sub, ok := elems[0].Item.(*Frame)
	if !ok {
		t.Fatalf("elems[0].Item = %T, want *Frame", elems[0].Item)
	}
	if sub.Len() != 1 {
		t.Errorf("nested frame has %d elements, want 1", sub.Len())
	}
}

func TestFrameRole(t *testing.T) {
	f := New(geom.Size{})
	if f.Role() != RoleNone {
		t.Errorf("new frame role = %v, want none", f.Role())
	}
	f.SetRole(RoleBlock)
	if f.Role() != RoleBlock {
		t.Errorf("role = %v, want block", f.Role())
	}
	if got := RoleBlock.String(); got != "block" {
		t.Errorf("String() = %q, want block", got)
	}
}

func TestFrameResize(t *testing.T) {
	f := New(geom.Size{W: geom.Pt(10), H: geom.Pt(10)})
	f.Push(geom.Point{X: geom.Pt(5)}, Text{Content: "x"})

	f.Resize(geom.Size{W: geom.Pt(100), H: geom.Pt(10)})

	if f.Width() != geom.Pt(100) {
		t.Errorf("Width() = %v, want 100pt", f.Width())
	}
	if f.Elements()[0].Pos.X != geom.Pt(5) {
		t.Error("Resize moved an item")
	}
}
