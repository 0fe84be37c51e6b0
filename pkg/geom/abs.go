package geom

import "math"

// Abs is an absolute length in typographic points (1/72 inch).
// The value may be positive infinity to describe unbounded extents,
// such as the height of a region that grows with its content.
type Abs float64

// Pt creates an absolute length from a value in points.
func Pt(v float64) Abs { return Abs(v) }

// Inch creates an absolute length from a value in inches.
func Inch(v float64) Abs { return Abs(v * 72) }

// Mm creates an absolute length from a value in millimeters.
func Mm(v float64) Abs { return Abs(v * 72 / 25.4) }

// Cm creates an absolute length from a value in centimeters.
func Cm(v float64) Abs { return Abs(v * 72 / 2.54) }

// Infinite returns the unbounded length.
func Infinite() Abs { return Abs(math.Inf(1)) }

// Pt returns the length as a float64 number of points.
func (a Abs) Pt() float64 { return float64(a) }

// IsFinite reports whether the length is a finite number.
func (a Abs) IsFinite() bool { return !math.IsInf(float64(a), 0) && !math.IsNaN(float64(a)) }

// IsInf reports whether the length is infinite.
func (a Abs) IsInf() bool { return math.IsInf(float64(a), 0) }

// Min returns the smaller of two lengths.
func (a Abs) Min(b Abs) Abs {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of two lengths.
func (a Abs) Max(b Abs) Abs {
	if b > a {
		return b
	}
	return a
}

// Clamp restricts the length to the range [lo, hi].
// If lo > hi, lo wins.
func (a Abs) Clamp(lo, hi Abs) Abs {
	if a < lo {
		return lo
	}
	if hi >= lo && a > hi {
		return hi
	}
	return a
}

// absEps is the tolerance for approximate length comparison. Layout
// arithmetic accumulates float error well below a thousandth of a point.
const absEps = 1e-6

// ApproxEq reports whether two lengths are equal within tolerance.
func (a Abs) ApproxEq(b Abs) bool {
	if a == b {
		return true
	}
	return math.Abs(float64(a-b)) < absEps
}
