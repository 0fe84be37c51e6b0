package geom

// Em is a length in multiples of the current text size.
type Em float64

// At resolves the em length against a concrete text size.
func (e Em) At(textSize Abs) Abs {
	return Abs(float64(e) * float64(textSize))
}

// Ratio is a share of some reference length, where 1.0 means 100%.
type Ratio float64

// Of resolves the ratio against a reference length. An unbounded
// reference resolves to zero: a percentage of endless space is
// meaningless and must not poison downstream sums.
func (r Ratio) Of(base Abs) Abs {
	if r == 0 || !base.IsFinite() {
		return 0
	}
	return Abs(float64(r) * float64(base))
}

// Length is an absolute length with an optional font-relative component,
// e.g. "4pt + 0.5em".
type Length struct {
	Abs Abs
	Em  Em
}

// Resolve collapses the font-relative component against a text size,
// yielding a plain absolute length.
func (l Length) Resolve(textSize Abs) Abs {
	return l.Abs + l.Em.At(textSize)
}

// Rel is a length relative to some known reference: a ratio of the
// reference plus a fixed [Length], e.g. "50% + 2em".
type Rel struct {
	Ratio  Ratio
	Length Length
}

// RelLength wraps a plain length as a relative length with no ratio part.
func RelLength(l Length) Rel { return Rel{Length: l} }

// RelAbs wraps an absolute length as a relative length.
func RelAbs(a Abs) Rel { return Rel{Length: Length{Abs: a}} }

// Resolve collapses the font-relative component against a text size.
// The ratio part is untouched; apply [Rel.RelativeTo] afterwards.
func (r Rel) Resolve(textSize Abs) Rel {
	return Rel{
		Ratio:  r.Ratio,
		Length: Length{Abs: r.Length.Resolve(textSize)},
	}
}

// RelativeTo resolves the ratio part against the reference length and
// returns the total. The font-relative component must already be
// resolved; any leftover em count is ignored.
func (r Rel) RelativeTo(base Abs) Abs {
	return r.Ratio.Of(base) + r.Length.Abs
}

// IsZero reports whether the relative length is exactly zero.
func (r Rel) IsZero() bool {
	return r.Ratio == 0 && r.Length.Abs == 0 && r.Length.Em == 0
}
