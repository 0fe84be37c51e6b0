package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/ahuangsnail/quire/pkg/doc"
)

// TreeOptions configures content-tree diagram rendering.
type TreeOptions struct {
	// Detailed includes block summaries (text excerpts, dimensions,
	// spacing amounts) in node labels. When false, only kinds are shown.
	Detailed bool
}

// ToDOT converts a document's block structure to Graphviz DOT format
// for content-tree visualization. The resulting DOT string can be
// rendered using [TreeSVG], [TreePDF], or [TreePNG].
//
// Spacing and break directives (vspace, colbreak) are rendered with
// dashed outlines and grey fill to distinguish them from drawable
// content.
func ToDOT(d *doc.Document, opts TreeOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	root := d.Title
	if root == "" {
		root = "document"
	}
	fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightgrey];\n", "doc", root)

	for i := range d.Blocks {
		writeBlockNode(&buf, &d.Blocks[i], "doc", fmt.Sprintf("b%d", i+1), opts.Detailed)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeBlockNode(buf *bytes.Buffer, b *doc.BlockConfig, parent, id string, detailed bool) {
	label := fmtTreeLabel(b, detailed)
	attrs := fmtTreeAttrs(b, label)
	fmt.Fprintf(buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	fmt.Fprintf(buf, "  %q -> %q;\n", parent, id)

	if b.Body != nil {
		writeBlockNode(buf, b.Body, id, id+".body", detailed)
	}
}

func fmtTreeLabel(b *doc.BlockConfig, detailed bool) string {
	if !detailed {
		return b.Kind
	}
	if s := b.Summary(); s != "" {
		return b.Kind + "\n" + s
	}
	return b.Kind
}

func fmtTreeAttrs(b *doc.BlockConfig, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch b.Kind {
	case doc.KindVSpace, doc.KindColbreak:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// TreeSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [ToPDF] or [ToPNG].
func TreeSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// TreePDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [TreeSVG] and [ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func TreePDF(dot string) ([]byte, error) {
	svg, err := TreeSVG(dot)
	if err != nil {
		return nil, err
	}
	return ToPDF(svg)
}

// TreePNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [TreeSVG] and [ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func TreePNG(dot string, scale float64) ([]byte, error) {
	svg, err := TreeSVG(dot)
	if err != nil {
		return nil, err
	}
	return ToPNG(svg, scale)
}
