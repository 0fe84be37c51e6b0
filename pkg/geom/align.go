package geom

// Align positions content along a single axis. On the horizontal axis
// Start means left; on the vertical axis it means top.
type Align uint8

const (
	// AlignStart aligns to the leading edge of the axis.
	AlignStart Align = iota
	// AlignCenter centers within the free space.
	AlignCenter
	// AlignEnd aligns to the trailing edge of the axis.
	AlignEnd
)

// Position maps the alignment onto an amount of free space, returning
// the offset of the aligned content from the leading edge. Negative
// free space produces negative offsets rather than clamping, so an
// over-full container overflows symmetrically to how it would render.
func (a Align) Position(free Abs) Abs {
	switch a {
	case AlignCenter:
		return free / 2
	case AlignEnd:
		return free
	}
	return 0
}

// Max returns the more trailing-leaning of two alignments. Used to
// accumulate the strongest pull seen among siblings.
func (a Align) Max(b Align) Align {
	if b > a {
		return b
	}
	return a
}

// String returns the lowercase axis-neutral name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	}
	return "start"
}
