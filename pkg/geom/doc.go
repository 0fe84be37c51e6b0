// Package geom provides the measurement and geometry primitives used
// throughout quire: absolute lengths, font-relative lengths, ratios,
// fractional weights, points, sizes, and axis alignments.
//
// # Units
//
// All absolute measurements are typographic points (1/72 inch) stored as
// float64 via the [Abs] type. Constructors exist for the common input
// units ([Pt], [Inch], [Mm], [Cm]). Lengths that depend on context come
// in three flavors:
//
//   - [Em]: multiples of the current text size, resolved with [Em.At]
//   - [Ratio]: a share of some reference length, resolved with [Ratio.Of]
//   - [Fr]: a weight competing for leftover space, resolved with [Fr.Share]
//
// [Length] combines an absolute and an em component, and [Rel] adds a
// ratio on top, mirroring the "50% + 2em" expressions accepted by the
// document format. [ParseLength], [ParseRel], and [ParseFr] convert the
// textual forms ("12pt", "50%", "1fr") into these types.
//
// # Axes
//
// Layout treats the horizontal and vertical axes uniformly where it can.
// [Axes] is a generic per-axis pair; [Size] and [Point] are the concrete
// width/height and x/y pairs. [Align] positions content along one axis
// and is shared by both: Start means left or top depending on which axis
// it is applied to.
//
// The package has no dependencies beyond the standard library and never
// returns errors from arithmetic: degenerate inputs (infinite bases,
// zero totals) resolve to zero instead of failing.
package geom
