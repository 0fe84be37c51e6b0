package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/ahuangsnail/quire/pkg/frame"
	"github.com/ahuangsnail/quire/pkg/geom"
	"github.com/ahuangsnail/quire/pkg/style"
)

// Character advance as a fraction of the text size. Quire does not
// shape text; lines are measured with a fixed-pitch approximation.
const parAdvance = 0.6

// Par is a paragraph of plain text. Lines are broken greedily at word
// boundaries against the region width and measured with a monospaced
// advance; a paragraph taller than the current region continues across
// regions line by line.
type Par struct {
	Text string
}

var _ Block = (*Par)(nil)

// Layout breaks the text into lines and fills regions top to bottom,
// returning one frame per region used.
func (p *Par) Layout(regs Regions, styles style.Chain) ([]*frame.Frame, error) {
	textSize := styles.TextSize()
	leading := styles.Leading()
	align := styles.ParAlign()
	fill := styles.Fill()
	charW := textSize * parAdvance

	lines := breakLines(p.Text, lineCapacity(regs.First.W, charW))
	if len(lines) == 0 {
		w := geom.Abs(0)
		if regs.Expand.X {
			w = regs.First.W
		}
		return []*frame.Frame{frame.New(geom.Size{W: w})}, nil
	}

	var frames []*frame.Frame
	for len(lines) > 0 {
		n := fitLines(regs.First.H, textSize, leading, len(lines))
		if n == 0 {
			// Guarantee progress even in a degenerate region.
			n = 1
		}

		chunk := lines[:n]
		lines = lines[n:]

		width := regs.First.W
		if !regs.Expand.X {
			width = 0
			for _, line := range chunk {
				width = width.Max(lineWidth(line, charW))
			}
		}
		height := linesHeight(len(chunk), textSize, leading)

		f := frame.New(geom.Size{W: width, H: height})
		y := geom.Abs(0)
		for _, line := range chunk {
			x := align.Position(width - lineWidth(line, charW))
			f.Push(geom.Point{X: x, Y: y}, frame.Text{
				Content: line,
				Size:    textSize,
				Fill:    fill,
			})
			y += textSize + leading
		}
		frames = append(frames, f)

		if len(lines) > 0 {
			regs.Next()
		}
	}

	return frames, nil
}

// lineCapacity returns how many characters fit into the given width,
// at least one.
func lineCapacity(width, charW geom.Abs) int {
	if !width.IsFinite() {
		return int(^uint(0) >> 1)
	}
	n := int(width / charW)
	if n < 1 {
		n = 1
	}
	return n
}

// fitLines returns how many of the remaining lines fit into the given
// height, capped at max.
func fitLines(avail, textSize, leading geom.Abs, max int) int {
	if !avail.IsFinite() {
		return max
	}
	n := 0
	used := geom.Abs(0)
	for n < max {
		next := used + textSize
		if n > 0 {
			next += leading
		}
		if next > avail+eps {
			break
		}
		used = next
		n++
	}
	return n
}

// linesHeight is the total height of n stacked lines.
func linesHeight(n int, textSize, leading geom.Abs) geom.Abs {
	if n == 0 {
		return 0
	}
	return geom.Abs(n)*textSize + geom.Abs(n-1)*leading
}

// lineWidth measures a line with the fixed-pitch advance.
func lineWidth(line string, charW geom.Abs) geom.Abs {
	return geom.Abs(utf8.RuneCountInString(line)) * charW
}

// breakLines splits text into lines of at most capacity characters,
// breaking at spaces where possible and inside words only when a word
// alone exceeds the capacity.
func breakLines(text string, capacity int) []string {
	var lines []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		wl := utf8.RuneCountInString(word)

		// Hard-break words that can never fit on one line.
		for wl > capacity {
			flush()
			runes := []rune(word)
			lines = append(lines, string(runes[:capacity]))
			word = string(runes[capacity:])
			wl -= capacity
		}
		if wl == 0 {
			continue
		}

		need := wl
		if curLen > 0 {
			need++
		}
		if curLen+need > capacity {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += wl
	}
	flush()

	return lines
}
