// Package layout arranges block-level content into fixed-size regions.
//
// # Overview
//
// This package is the vertical layout engine of quire. Content is
// expressed as a tree of [Block] values (paragraphs, boxes, rules,
// wrappers) and laid out into a [Regions] value describing the target
// areas, typically page bodies. Content that does not fit the first
// region continues into the next, so the result of laying out a block
// is a sequence of frames, one per region used.
//
// # Flow
//
// The central block is [Flow]: an ordered sequence of children, each
// either vertical spacing, a nested block, or an explicit column break.
// Flow consumes its children in a single pass, staging items for the
// current region, and emits one finished frame whenever a region fills
// up, a child breaks across regions, a break child arrives, or input
// ends:
//
//	flow := &layout.Flow{Children: []layout.Child{
//		layout.Gap(layout.Fixed(geom.RelAbs(geom.Pt(10)))),
//		layout.Content(&layout.Par{Text: "Hello, world."}),
//		layout.Colbreak(),
//	}}
//	frames, err := flow.Layout(regs, styles)
//
// Spacing comes in two kinds. Fixed spacing resolves to an absolute
// length against the region's full height and consumes that much space
// immediately. Fractional spacing ([Fractional]) has no intrinsic size:
// when the region is finished, all fractional spacers share the
// region's leftover space in proportion to their weights, the same
// distribution model as flexible space in a toolbar. A region holding
// any fractional spacing is always emitted at its full height.
//
// # Alignment
//
// Every frame a flow stages carries an alignment pair. The horizontal
// alignment always comes from the ambient paragraph alignment so that
// shrink-wrapped paragraphs sit where their own text alignment puts
// them. The vertical alignment comes from an [Aligned] wrapper when one
// is present, and defaults to top. During region finishing, frames are
// positioned with a running "ruler": the strongest vertical alignment
// seen so far wins, which keeps a top-aligned frame that follows a
// bottom-aligned one stacked below it instead of overlapping.
//
// # Out-of-flow placement
//
// A [Place] wrapper positions its body at the region origin without
// contributing to flow accounting at all. Placed content never affects
// the used size, alignment ruler, or fractional distribution.
//
// # Capabilities
//
// Flow inspects children through two optional interfaces, [Placer] and
// [VAligner], rather than concrete types, so custom blocks can opt into
// out-of-flow placement or explicit vertical alignment.
//
// # Errors
//
// The only error path is failure of a child's own layout; it aborts the
// remaining scan and propagates unchanged. Spacing resolution, region
// finishing and alignment are total: degenerate inputs (infinite
// heights, zero weights, empty flows) produce degenerate but
// well-formed frames, never errors.
package layout
