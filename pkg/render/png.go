package render

import "github.com/ahuangsnail/quire/pkg/pages"

// RenderPNG renders the page set as a PNG by rasterizing the SVG output
// at the given scale factor. A scale of zero or less falls back to 2x.
// Requires librsvg (rsvg-convert on PATH).
func RenderPNG(ps pages.PageSet, scale float64, opts ...SVGOption) ([]byte, error) {
	if scale <= 0 {
		scale = 2.0
	}
	return ToPNG(RenderSVG(ps, opts...), scale)
}
