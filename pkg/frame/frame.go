package frame

import "github.com/ahuangsnail/quire/pkg/geom"

// Role describes the structural function of a frame within a document.
// Roles are metadata for consumers such as debug views and semantic
// export; they have no effect on geometry.
type Role int

const (
	// RoleNone marks a frame without structural meaning.
	RoleNone Role = iota
	// RoleBlock marks one block-level chunk of flow content. Layout
	// assigns it to every frame produced by a child that broke across
	// regions, so consumers can tell continuation frames belong together.
	RoleBlock
)

// String returns the lowercase role name.
func (r Role) String() string {
	if r == RoleBlock {
		return "block"
	}
	return "none"
}

// Element is one positioned item inside a frame. Pos is the offset of
// the item's top-left corner from the enclosing frame's top-left corner.
type Element struct {
	Pos  geom.Point
	Item Item
}

// Frame is a finished layout: a rectangle of a fixed size holding
// positioned items. Frames nest, so a page is a tree of frames.
//
// The zero value is an empty frame of zero size and is ready to use.
// Frames are not safe for concurrent mutation.
type Frame struct {
	size  geom.Size
	role  Role
	elems []Element
}

// New creates an empty frame of the given size.
func New(size geom.Size) *Frame {
	return &Frame{size: size}
}

// Size returns the frame's dimensions.
func (f *Frame) Size() geom.Size { return f.size }

// Width returns the frame's horizontal extent.
func (f *Frame) Width() geom.Abs { return f.size.W }

// Height returns the frame's vertical extent.
func (f *Frame) Height() geom.Abs { return f.size.H }

// Resize sets the frame's dimensions without moving its items.
func (f *Frame) Resize(size geom.Size) { f.size = size }

// Role returns the frame's structural role.
func (f *Frame) Role() Role { return f.role }

// SetRole tags the frame with a structural role.
func (f *Frame) SetRole(r Role) { f.role = r }

// Push places an item into the frame at the given position.
// Items are drawn in insertion order, so later items paint over
// earlier ones.
func (f *Frame) Push(pos geom.Point, item Item) {
	f.elems = append(f.elems, Element{Pos: pos, Item: item})
}

// PushFrame places a nested frame at the given position.
func (f *Frame) PushFrame(pos geom.Point, sub *Frame) {
	f.Push(pos, sub)
}

// Translate shifts every item in the frame by the given offset.
func (f *Frame) Translate(by geom.Point) {
	if by.X == 0 && by.Y == 0 {
		return
	}
	for i := range f.elems {
		f.elems[i].Pos = f.elems[i].Pos.Add(by)
	}
}

// Elements returns the frame's positioned items in insertion order.
// The returned slice is the frame's own backing store and must not be
// modified.
func (f *Frame) Elements() []Element { return f.elems }

// Len returns the number of items placed directly in the frame.
func (f *Frame) Len() int { return len(f.elems) }
