package pipeline

import (
	"fmt"

	"github.com/ahuangsnail/quire/pkg/doc"
	"github.com/ahuangsnail/quire/pkg/pages"
	"github.com/ahuangsnail/quire/pkg/render"
)

// Render generates output artifacts in the requested formats.
func Render(ps pages.PageSet, d *doc.Document, opts Options) (map[string][]byte, error) {
	if opts.IsTree() {
		return renderTree(d, opts)
	}
	return renderPages(ps, d, opts)
}

// renderPages generates outputs for the typeset pages.
// The DOT format is served from the document's block structure even in this
// view, so a single run can produce pages and the matching diagram source.
func renderPages(ps pages.PageSet, d *doc.Document, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = render.RenderSVG(ps, svgOpts...)
		case FormatPNG:
			data, err = render.RenderPNG(ps, opts.Scale, svgOpts...)
		case FormatPDF:
			data, err = render.RenderPDF(ps, svgOpts...)
		case FormatJSON:
			data, err = render.RenderJSON(ps)
		case FormatDOT:
			if d == nil {
				return nil, fmt.Errorf("dot output requires the parsed document")
			}
			data = []byte(render.ToDOT(d, render.TreeOptions{Detailed: opts.Detailed}))
		default:
			return nil, fmt.Errorf("unsupported page format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderTree generates block structure diagrams via Graphviz.
func renderTree(d *doc.Document, opts Options) (map[string][]byte, error) {
	if d == nil {
		return nil, fmt.Errorf("tree view requires the parsed document")
	}

	dot := render.ToDOT(d, render.TreeOptions{Detailed: opts.Detailed})
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = render.TreeSVG(dot)
		case FormatPNG:
			data, err = render.TreePNG(dot, opts.Scale)
		case FormatPDF:
			data, err = render.TreePDF(dot)
		default:
			return nil, fmt.Errorf("unsupported tree format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options from pipeline options.
func buildSVGOptions(opts Options) []render.SVGOption {
	var svgOpts []render.SVGOption

	if opts.PageGap > 0 {
		svgOpts = append(svgOpts, render.WithPageGap(opts.PageGap))
	}
	if opts.Outlines {
		svgOpts = append(svgOpts, render.WithOutlines())
	}
	if opts.Labels {
		svgOpts = append(svgOpts, render.WithLabels())
	}

	return svgOpts
}
