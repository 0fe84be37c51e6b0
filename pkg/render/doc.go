// Package render turns typeset page sets into output artifacts.
//
// # Overview
//
// This package contains the rendering pipeline that transforms typeset
// documents into visual outputs. It provides:
//
//   - Page rendering to SVG ([RenderSVG]) with PNG/PDF wrappers
//   - A JSON export of the page data ([RenderJSON])
//   - Content-tree diagrams via Graphviz ([ToDOT], [TreeSVG])
//   - Generic format conversion (SVG to PDF/PNG)
//
// # Page Rendering
//
// [RenderSVG] draws a [pages.PageSet] as vertically stacked pages:
//
//	svg := render.RenderSVG(ps, render.WithOutlines(), render.WithLabels())
//	png, err := render.RenderPNG(ps, 2.0)
//	pdf, err := render.RenderPDF(ps)
//
// Text is drawn with a monospaced font to match the fixed-pitch line
// measurement used during layout.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats
// using the external rsvg-convert tool (from librsvg). They are used by
// both the page and tree renderers.
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// Requires librsvg: brew install librsvg (macOS), apt install
// librsvg2-bin (Linux).
//
// # Content-Tree Diagrams
//
// [ToDOT] converts a document's block structure to Graphviz DOT format;
// [TreeSVG] renders the DOT source with the embedded Graphviz engine.
// Spacing and break directives appear dashed to distinguish them from
// drawable content.
//
//	dot := render.ToDOT(d, render.TreeOptions{})
//	svg, err := render.TreeSVG(dot)
package render
