package render

import "github.com/ahuangsnail/quire/pkg/pages"

// RenderPDF renders the page set as a PDF by converting the SVG output.
// Requires librsvg (rsvg-convert on PATH).
func RenderPDF(ps pages.PageSet, opts ...SVGOption) ([]byte, error) {
	return ToPDF(RenderSVG(ps, opts...))
}
