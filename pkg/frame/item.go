package frame

import "github.com/ahuangsnail/quire/pkg/geom"

// Item is a piece of content placed inside a frame. Implementations are
// [Text], [Rect], [Line] and nested [*Frame]; the set is closed so
// renderers can switch exhaustively.
type Item interface {
	isItem()
}

// Text is a run of shaped text drawn at its position. The position marks
// the top-left corner of the run's bounding box.
type Text struct {
	Content string   // text to draw
	Size    geom.Abs // font size
	Fill    string   // CSS color, empty for the renderer default
}

// Rect is a filled rectangle extending right and down from its position.
type Rect struct {
	Size geom.Size
	Fill string // CSS color, empty for the renderer default
}

// Line is a stroked segment from its position to position+To.
type Line struct {
	To        geom.Point
	Thickness geom.Abs
	Stroke    string // CSS color, empty for the renderer default
}

func (Text) isItem()   {}
func (Rect) isItem()   {}
func (Line) isItem()   {}
func (*Frame) isItem() {}
