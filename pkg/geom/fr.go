package geom

// Fr is a fractional weight competing for leftover space. A flow with
// spacers weighted 1fr and 2fr hands out remaining room in a 1:2 split.
type Fr float64

// Share returns this weight's proportional slice of the remaining space.
// A non-positive total or an unbounded remainder yields zero: fractions
// only ever claim space that is both present and bounded.
func (f Fr) Share(total Fr, remaining Abs) Abs {
	if total <= 0 || !remaining.IsFinite() {
		return 0
	}
	return Abs(float64(f) / float64(total) * float64(remaining))
}
