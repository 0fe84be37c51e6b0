package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ahuangsnail/quire/pkg/pages"
)

func threePageSet() pages.PageSet {
	return pages.PageSet{
		Title: "Sample",
		Unit:  pages.Unit,
		Pages: []pages.Page{
			{Width: 100, Height: 100, Texts: []pages.Text{{X: 10, Y: 50, Size: 11, Text: "hello"}}},
			{Width: 100, Height: 100},
			{Width: 100, Height: 100},
		},
	}
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m PageBrowserModel, msg tea.Msg) (PageBrowserModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PageBrowserModel)
	if !ok {
		t.Fatalf("Update returned %T, want PageBrowserModel", next)
	}
	return pm, cmd
}

func TestPageBrowserNavigation(t *testing.T) {
	m := NewPageBrowserModel(threePageSet())

	if m.Cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.Cursor)
	}

	m, _ = update(t, m, keyMsg("right"))
	if m.Cursor != 1 {
		t.Errorf("cursor after right = %d, want 1", m.Cursor)
	}

	// Stepping past the last page clamps
	m, _ = update(t, m, keyMsg("right"))
	m, _ = update(t, m, keyMsg("right"))
	m, _ = update(t, m, keyMsg("right"))
	if m.Cursor != 2 {
		t.Errorf("cursor after overrun = %d, want 2", m.Cursor)
	}

	m, _ = update(t, m, keyMsg("g"))
	if m.Cursor != 0 {
		t.Errorf("cursor after g = %d, want 0", m.Cursor)
	}

	// Stepping before the first page clamps
	m, _ = update(t, m, keyMsg("left"))
	if m.Cursor != 0 {
		t.Errorf("cursor after left at start = %d, want 0", m.Cursor)
	}

	m, _ = update(t, m, keyMsg("G"))
	if m.Cursor != 2 {
		t.Errorf("cursor after G = %d, want 2", m.Cursor)
	}
}

func TestPageBrowserQuit(t *testing.T) {
	m := NewPageBrowserModel(threePageSet())

	_, cmd := update(t, m, keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
}

func TestPageBrowserWindowSize(t *testing.T) {
	m := NewPageBrowserModel(threePageSet())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.Width != 120 || m.Height != 50 {
		t.Errorf("size = %dx%d, want 120x50", m.Width, m.Height)
	}
}

func TestPageBrowserView(t *testing.T) {
	m := NewPageBrowserModel(threePageSet())

	view := m.View()
	if !strings.Contains(view, "Sample") {
		t.Error("view should contain the document title")
	}
	if !strings.Contains(view, "[1/3]") {
		t.Error("view should contain the page counter")
	}
	if !strings.Contains(view, "hello") {
		t.Error("view should contain the page text")
	}
}

func TestRenderPageGridText(t *testing.T) {
	p := pages.Page{
		Width:  100,
		Height: 100,
		Texts:  []pages.Text{{X: 10, Y: 50, Size: 11, Text: "hello"}},
	}

	grid := renderPageGrid(p, 40, 20)
	if len(grid) != 20 {
		t.Fatalf("grid height = %d, want 20", len(grid))
	}

	// kx = min(40/100, 2*20/100) = 0.4, so col = 4, row = 10.
	if !strings.Contains(grid[10], "hello") {
		t.Errorf("row 10 = %q, should contain %q", grid[10], "hello")
	}
	if strings.Index(grid[10], "hello") != 4 {
		t.Errorf("text starts at column %d, want 4", strings.Index(grid[10], "hello"))
	}
}

func TestRenderPageGridRect(t *testing.T) {
	p := pages.Page{
		Width:  100,
		Height: 100,
		Rects:  []pages.Rect{{X: 0, Y: 0, Width: 100, Height: 10}},
	}

	grid := renderPageGrid(p, 40, 20)
	if len(grid) == 0 {
		t.Fatal("grid is empty")
	}
	if !strings.Contains(grid[0], "░") {
		t.Errorf("row 0 = %q, should contain rect fill", grid[0])
	}
}

func TestRenderPageGridLine(t *testing.T) {
	p := pages.Page{
		Width:  100,
		Height: 100,
		Lines:  []pages.Line{{X1: 0, Y1: 50, X2: 100, Y2: 50, Thickness: 1}},
	}

	grid := renderPageGrid(p, 40, 20)
	if !strings.Contains(grid[10], "─") {
		t.Errorf("row 10 = %q, should contain a horizontal rule", grid[10])
	}
}

func TestRenderPageGridEmptyPage(t *testing.T) {
	if grid := renderPageGrid(pages.Page{}, 40, 20); grid != nil {
		t.Errorf("grid for zero-size page = %v, want nil", grid)
	}
	if grid := renderPageGrid(pages.Page{Width: 100, Height: 100}, 0, 0); grid != nil {
		t.Errorf("grid for zero-size terminal = %v, want nil", grid)
	}
}
