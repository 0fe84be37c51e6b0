package pages

import (
	"github.com/ahuangsnail/quire/pkg/doc"
	"github.com/ahuangsnail/quire/pkg/frame"
	"github.com/ahuangsnail/quire/pkg/geom"
)

// Unit is the measurement unit of all coordinates: typographic points,
// 1/72 of an inch.
const Unit = "pt"

// PageSet is the canonical serialization format for typeset documents.
// Used for API responses, storage, caching, and file output.
//
// Coordinates are absolute within each page, in points, origin at the
// top-left corner.
type PageSet struct {
	Title string `json:"title,omitempty" bson:"title,omitempty"`
	Unit  string `json:"unit" bson:"unit"`
	Pages []Page `json:"pages" bson:"pages"`
}

// Page is one page's dimensions and draw lists. Within each list, items
// appear in paint order: later items draw over earlier ones.
type Page struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Texts  []Text  `json:"texts,omitempty" bson:"texts,omitempty"`
	Rects  []Rect  `json:"rects,omitempty" bson:"rects,omitempty"`
	Lines  []Line  `json:"lines,omitempty" bson:"lines,omitempty"`
}

// Text is a run of text. X, Y mark the top-left corner of the run's
// bounding box.
type Text struct {
	X    float64 `json:"x" bson:"x"`
	Y    float64 `json:"y" bson:"y"`
	Size float64 `json:"size" bson:"size"`
	Fill string  `json:"fill,omitempty" bson:"fill,omitempty"`
	Text string  `json:"text" bson:"text"`
}

// Rect is a filled rectangle extending right and down from X, Y.
type Rect struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Fill   string  `json:"fill,omitempty" bson:"fill,omitempty"`
}

// Line is a stroked segment between two points.
type Line struct {
	X1        float64 `json:"x1" bson:"x1"`
	Y1        float64 `json:"y1" bson:"y1"`
	X2        float64 `json:"x2" bson:"x2"`
	Y2        float64 `json:"y2" bson:"y2"`
	Thickness float64 `json:"thickness" bson:"thickness"`
	Stroke    string  `json:"stroke,omitempty" bson:"stroke,omitempty"`
}

// ItemCount returns the total number of drawable items across all pages.
func (ps *PageSet) ItemCount() int {
	n := 0
	for i := range ps.Pages {
		p := &ps.Pages[i]
		n += len(p.Texts) + len(p.Rects) + len(p.Lines)
	}
	return n
}

// FromFrames converts finished layout frames to their serialization
// format: one page per frame, with the frame's content placed at the
// margin offset and every nested frame flattened to absolute
// coordinates.
//
// Fixed page axes take their size from the geometry; auto axes size to
// the frame plus the margins.
func FromFrames(title string, g doc.Geometry, frames []*frame.Frame) PageSet {
	ps := PageSet{
		Title: title,
		Unit:  Unit,
		Pages: make([]Page, len(frames)),
	}

	for i, f := range frames {
		size := g.Size
		if g.Auto.X {
			size.W = f.Width() + 2*g.Margin
		}
		if g.Auto.Y {
			size.H = f.Height() + 2*g.Margin
		}

		page := Page{Width: size.W.Pt(), Height: size.H.Pt()}
		flatten(f, geom.Point{X: g.Margin, Y: g.Margin}, &page)
		ps.Pages[i] = page
	}

	return ps
}

// flatten walks a frame tree, appending each drawable item to the page
// at its absolute position.
func flatten(f *frame.Frame, origin geom.Point, page *Page) {
	for _, el := range f.Elements() {
		pos := origin.Add(el.Pos)
		switch it := el.Item.(type) {
		case frame.Text:
			page.Texts = append(page.Texts, Text{
				X:    pos.X.Pt(),
				Y:    pos.Y.Pt(),
				Size: it.Size.Pt(),
				Fill: it.Fill,
				Text: it.Content,
			})
		case frame.Rect:
			page.Rects = append(page.Rects, Rect{
				X:      pos.X.Pt(),
				Y:      pos.Y.Pt(),
				Width:  it.Size.W.Pt(),
				Height: it.Size.H.Pt(),
				Fill:   it.Fill,
			})
		case frame.Line:
			page.Lines = append(page.Lines, Line{
				X1:        pos.X.Pt(),
				Y1:        pos.Y.Pt(),
				X2:        (pos.X + it.To.X).Pt(),
				Y2:        (pos.Y + it.To.Y).Pt(),
				Thickness: it.Thickness.Pt(),
				Stroke:    it.Stroke,
			})
		case *frame.Frame:
			flatten(it, pos, page)
		}
	}
}
