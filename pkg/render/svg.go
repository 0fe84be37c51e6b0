package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/ahuangsnail/quire/pkg/pages"
)

// Approximate ascent of the rendering font as a fraction of the text
// size. Item positions mark the top of the em box; SVG wants baselines.
const textAscent = 0.8

// Height of the caption band drawn above each page with [WithLabels].
const labelBand = 18.0

// SVGOption configures page rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	pageGap  float64
	outlines bool
	labels   bool
}

// WithPageGap sets the vertical gap between stacked pages (default 24).
func WithPageGap(gap float64) SVGOption {
	return func(r *svgRenderer) {
		if gap >= 0 {
			r.pageGap = gap
		}
	}
}

// WithOutlines draws a border around each page.
func WithOutlines() SVGOption { return func(r *svgRenderer) { r.outlines = true } }

// WithLabels draws a "Page n of m" caption above each page.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG draws a page set as vertically stacked pages. Pages are
// centered horizontally; within each page, rectangles draw first, then
// lines, then text, so backgrounds never cover content.
func RenderSVG(ps pages.PageSet, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	width, height := r.extent(ps)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	y := 0.0
	for i := range ps.Pages {
		p := &ps.Pages[i]
		x := (width - p.Width) / 2

		if r.labels {
			fmt.Fprintf(&buf, "  <text x=\"%.2f\" y=\"%.2f\" font-size=\"11\" font-family=\"monospace\" fill=\"#666666\">%s</text>\n",
				x, y+labelBand-5, html.EscapeString(fmt.Sprintf("Page %d of %d", i+1, len(ps.Pages))))
			y += labelBand
		}

		r.renderPage(&buf, p, x, y)
		y += p.Height + r.pageGap
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{pageGap: 24}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// extent computes the total canvas size: the widest page by the summed
// page heights plus gaps and caption bands.
func (r *svgRenderer) extent(ps pages.PageSet) (width, height float64) {
	for i := range ps.Pages {
		p := &ps.Pages[i]
		if p.Width > width {
			width = p.Width
		}
		height += p.Height
	}
	if n := len(ps.Pages); n > 1 {
		height += float64(n-1) * r.pageGap
	}
	if r.labels {
		height += float64(len(ps.Pages)) * labelBand
	}
	return width, height
}

func (r *svgRenderer) renderPage(buf *bytes.Buffer, p *pages.Page, x, y float64) {
	fmt.Fprintf(buf, "  <rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"white\"/>\n",
		x, y, p.Width, p.Height)
	if r.outlines {
		fmt.Fprintf(buf, "  <rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"none\" stroke=\"#cccccc\" stroke-width=\"1\"/>\n",
			x, y, p.Width, p.Height)
	}

	for _, rc := range p.Rects {
		fmt.Fprintf(buf, "  <rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\"/>\n",
			x+rc.X, y+rc.Y, rc.Width, rc.Height, color(rc.Fill))
	}
	for _, l := range p.Lines {
		fmt.Fprintf(buf, "  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"%.2f\"/>\n",
			x+l.X1, y+l.Y1, x+l.X2, y+l.Y2, color(l.Stroke), l.Thickness)
	}
	for _, t := range p.Texts {
		fmt.Fprintf(buf, "  <text x=\"%.2f\" y=\"%.2f\" font-size=\"%.2f\" font-family=\"monospace\" fill=\"%s\">%s</text>\n",
			x+t.X, y+t.Y+t.Size*textAscent, t.Size, color(t.Fill), html.EscapeString(t.Text))
	}
}

// color falls back to black for items serialized without one.
func color(c string) string {
	if c == "" {
		return "#000000"
	}
	return c
}
