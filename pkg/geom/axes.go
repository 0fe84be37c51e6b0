package geom

// Axes holds a value for each of the two layout axes. X is the inline
// (horizontal) axis, Y the block (vertical) axis.
type Axes[T any] struct {
	X, Y T
}

// NewAxes builds an axis pair from its two components.
func NewAxes[T any](x, y T) Axes[T] {
	return Axes[T]{X: x, Y: y}
}

// Point is a position in a frame's coordinate space. The origin sits at
// the top-left corner; Y grows downward.
type Point struct {
	X, Y Abs
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height extent pair.
type Size struct {
	W, H Abs
}

// IsFinite reports whether both extents are finite.
func (s Size) IsFinite() bool { return s.W.IsFinite() && s.H.IsFinite() }
