package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ahuangsnail/quire/pkg/doc"
	"github.com/ahuangsnail/quire/pkg/pages"
)

func testPageSet() pages.PageSet {
	return pages.PageSet{
		Title: "Test",
		Unit:  pages.Unit,
		Pages: []pages.Page{
			{
				Width:  200,
				Height: 100,
				Texts:  []pages.Text{{X: 10, Y: 10, Size: 11, Fill: "#000000", Text: "hello & <world>"}},
				Rects:  []pages.Rect{{X: 10, Y: 30, Width: 100, Height: 20, Fill: "#eeeeee"}},
				Lines:  []pages.Line{{X1: 10, Y1: 60, X2: 110, Y2: 60, Thickness: 0.5, Stroke: "#333333"}},
			},
			{Width: 200, Height: 100},
		},
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testPageSet()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg root: %.80s", svg)
	}
	// Two pages plus the default 24pt gap.
	if !strings.Contains(svg, `viewBox="0 0 200.00 224.00"`) {
		t.Errorf("viewBox wrong: %.120s", svg)
	}
	// Text content must be escaped.
	if !strings.Contains(svg, "hello &amp; &lt;world&gt;") {
		t.Error("text not escaped")
	}
	if strings.Contains(svg, "hello & <world>") {
		t.Error("raw text leaked into markup")
	}
	if !strings.Contains(svg, `fill="#eeeeee"`) {
		t.Error("rect fill missing")
	}
	if !strings.Contains(svg, `stroke="#333333"`) {
		t.Error("line stroke missing")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("missing closing tag")
	}
}

func TestRenderSVGBaseline(t *testing.T) {
	ps := pages.PageSet{
		Unit:  pages.Unit,
		Pages: []pages.Page{{Width: 100, Height: 50, Texts: []pages.Text{{X: 0, Y: 10, Size: 10, Text: "x"}}}},
	}
	svg := string(RenderSVG(ps))

	// Baseline sits one ascent below the item's top edge.
	if !strings.Contains(svg, `y="18.00"`) {
		t.Errorf("baseline wrong: %s", svg)
	}
}

func TestRenderSVGOptions(t *testing.T) {
	ps := testPageSet()

	t.Run("PageGap", func(t *testing.T) {
		svg := string(RenderSVG(ps, WithPageGap(0)))
		if !strings.Contains(svg, `viewBox="0 0 200.00 200.00"`) {
			t.Errorf("gap not applied: %.120s", svg)
		}
	})

	t.Run("Outlines", func(t *testing.T) {
		svg := string(RenderSVG(ps, WithOutlines()))
		if !strings.Contains(svg, `stroke="#cccccc"`) {
			t.Error("outline missing")
		}
	})

	t.Run("Labels", func(t *testing.T) {
		svg := string(RenderSVG(ps, WithLabels()))
		if !strings.Contains(svg, "Page 1 of 2") || !strings.Contains(svg, "Page 2 of 2") {
			t.Error("labels missing")
		}
	})
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := string(RenderSVG(pages.PageSet{Unit: pages.Unit}))
	if !strings.Contains(svg, `viewBox="0 0 0.00 0.00"`) {
		t.Errorf("empty page set: %.120s", svg)
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testPageSet())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Title != "Test" {
		t.Errorf("Title = %q, want Test", out.Title)
	}
	if out.PageCount != 2 {
		t.Errorf("PageCount = %d, want 2", out.PageCount)
	}
	if out.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", out.ItemCount)
	}
	if len(out.Pages) != 2 {
		t.Errorf("Pages count = %d, want 2", len(out.Pages))
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(pages.PageSet{})
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"unit": "pt"`) {
		t.Errorf("unit not defaulted: %s", s)
	}
	if !strings.Contains(s, `"pages": []`) {
		t.Errorf("pages must marshal as an empty array: %s", s)
	}
}

func TestToDOT(t *testing.T) {
	d := &doc.Document{
		Title: "Tree",
		Blocks: []doc.BlockConfig{
			{Kind: doc.KindParagraph, Text: "hello"},
			{Kind: doc.KindVSpace, Amount: "1fr"},
			{Kind: doc.KindBox, Width: "50%", Body: &doc.BlockConfig{Kind: doc.KindParagraph, Text: "inner"}},
		},
	}

	dot := ToDOT(d, TreeOptions{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("missing digraph header: %.40s", dot)
	}
	if !strings.Contains(dot, `"doc" [label="Tree", fillcolor=lightgrey];`) {
		t.Error("root node missing")
	}
	for _, want := range []string{
		`"doc" -> "b1";`,
		`"doc" -> "b2";`,
		`"doc" -> "b3";`,
		`"b3" -> "b3.body";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing edge %s", want)
		}
	}
	// Directives are dashed, content is not.
	if !strings.Contains(dot, `"b2" [label="vspace", style="rounded,filled,dashed", fillcolor=lightgrey];`) {
		t.Error("vspace node not dashed")
	}
	if !strings.Contains(dot, `"b1" [label="paragraph"];`) {
		t.Error("paragraph node wrong")
	}
}

func TestToDOTDetailed(t *testing.T) {
	d := &doc.Document{
		Blocks: []doc.BlockConfig{
			{Kind: doc.KindParagraph, Text: "hello"},
		},
	}

	dot := ToDOT(d, TreeOptions{Detailed: true})

	if !strings.Contains(dot, `label="paragraph\nhello"`) {
		t.Errorf("detailed label missing: %s", dot)
	}
	// Untitled documents get a generic root.
	if !strings.Contains(dot, `label="document"`) {
		t.Error("root fallback missing")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>
<svg width="76pt" height="116pt" viewBox="0.00 0.00 75.59 116.00" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)

	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 75.59 116.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="76" height="116"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte("<svg></svg>")
	if got := string(normalizeViewBox(in)); got != "<svg></svg>" {
		t.Errorf("unmatched input must pass through, got %s", got)
	}
}
