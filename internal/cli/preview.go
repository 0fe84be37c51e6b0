package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ahuangsnail/quire/pkg/pages"
	"github.com/ahuangsnail/quire/pkg/pipeline"
)

// previewCommand creates the preview command for browsing pages in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var noCache bool
	opts := pipeline.Options{}
	opts.SetTypesetDefaults()

	cmd := &cobra.Command{
		Use:   "preview [manifest.toml]",
		Short: "Browse typeset pages in the terminal",
		Long: `Browse typeset pages in the terminal.

The preview command typesets the manifest and opens an interactive page
browser. Items are drawn at their typeset positions, scaled to fit the
terminal window. The rendering is approximate; use 'typeset' for exact
output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], opts, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", opts.Refresh, "bypass the cache and reparse the manifest")
	cmd.Flags().StringVar(&opts.Title, "title", opts.Title, "override the manifest title")
	cmd.Flags().IntVar(&opts.MaxPages, "pages", opts.MaxPages, "maximum pages to produce")

	return cmd
}

// runPreview typesets the manifest and opens the page browser.
func (c *CLI) runPreview(ctx context.Context, input string, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.SourcePath = input
	opts.Logger = c.Logger

	d, err := runner.Parse(ctx, opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}
	ps, err := runner.Typeset(ctx, d, opts)
	if err != nil {
		return fmt.Errorf("typeset: %w", err)
	}

	if len(ps.Pages) == 0 {
		printInfo("Document produced no pages")
		return nil
	}

	m := NewPageBrowserModel(ps)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// =============================================================================
// PageBrowserModel - Interactive page browsing
// =============================================================================

// PageBrowserModel is the bubbletea model for the page browser.
type PageBrowserModel struct {
	PageSet pages.PageSet
	Cursor  int
	Width   int
	Height  int
}

// NewPageBrowserModel creates a new page browser model.
func NewPageBrowserModel(ps pages.PageSet) PageBrowserModel {
	return PageBrowserModel{
		PageSet: ps,
		Width:   80,
		Height:  24,
	}
}

func (m PageBrowserModel) Init() tea.Cmd {
	return nil
}

func (m PageBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "pgup":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l", "pgdown", " ":
			if m.Cursor < len(m.PageSet.Pages)-1 {
				m.Cursor++
			}
		case "g", "home":
			m.Cursor = 0
		case "G", "end":
			m.Cursor = len(m.PageSet.Pages) - 1
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}
	return m, nil
}

func (m PageBrowserModel) View() string {
	var b strings.Builder

	title := m.PageSet.Title
	if title == "" {
		title = "Untitled document"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ page  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.PageSet.Pages) == 0 {
		b.WriteString(StyleDim.Render("(no pages)"))
		return b.String()
	}

	page := m.PageSet.Pages[m.Cursor]

	// Border eats 2 columns and 2 rows; header and footer eat 5 more rows.
	cols := m.Width - 4
	rows := m.Height - 7
	if cols < 10 {
		cols = 10
	}
	if rows < 5 {
		rows = 5
	}

	grid := renderPageGrid(page, cols, rows)
	canvas := strings.Join(grid, "\n")

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorFaint)
	b.WriteString(border.Render(canvas))
	b.WriteString("\n")

	counter := fmt.Sprintf("[%d/%d]", m.Cursor+1, len(m.PageSet.Pages))
	size := fmt.Sprintf("%.0f×%.0f %s", page.Width, page.Height, m.PageSet.Unit)
	b.WriteString("  " + StyleNumber.Render(counter) + StyleDim.Render(" · "+size))

	return b.String()
}

// =============================================================================
// Page Rasterization
// =============================================================================

// renderPageGrid draws a page onto a character grid no larger than
// cols × rows, preserving the page's aspect ratio. Terminal cells are about
// twice as tall as wide, so the vertical scale is half the horizontal one.
// Rects are drawn first, then lines, then texts, so text stays legible.
func renderPageGrid(p pages.Page, cols, rows int) []string {
	if cols <= 0 || rows <= 0 || p.Width <= 0 || p.Height <= 0 {
		return nil
	}

	// kx is characters per point horizontally; vertically we get kx/2.
	kx := math.Min(float64(cols)/p.Width, 2*float64(rows)/p.Height)
	ky := kx / 2

	gw := clampGrid(int(math.Ceil(p.Width*kx)), 1, cols)
	gh := clampGrid(int(math.Ceil(p.Height*ky)), 1, rows)

	grid := make([][]rune, gh)
	for i := range grid {
		grid[i] = make([]rune, gw)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	plot := func(col, row int, r rune) {
		if row >= 0 && row < gh && col >= 0 && col < gw {
			grid[row][col] = r
		}
	}

	for _, rect := range p.Rects {
		c1 := int(math.Round(rect.X * kx))
		c2 := int(math.Round((rect.X + rect.Width) * kx))
		r1 := int(math.Round(rect.Y * ky))
		r2 := int(math.Round((rect.Y + rect.Height) * ky))
		if c2 <= c1 {
			c2 = c1 + 1
		}
		if r2 <= r1 {
			r2 = r1 + 1
		}
		for row := r1; row < r2; row++ {
			for col := c1; col < c2; col++ {
				plot(col, row, '░')
			}
		}
	}

	for _, line := range p.Lines {
		c1 := int(math.Round(line.X1 * kx))
		c2 := int(math.Round(line.X2 * kx))
		r1 := int(math.Round(line.Y1 * ky))
		r2 := int(math.Round(line.Y2 * ky))
		switch {
		case r1 == r2:
			for col := min(c1, c2); col <= max(c1, c2); col++ {
				plot(col, r1, '─')
			}
		case c1 == c2:
			for row := min(r1, r2); row <= max(r1, r2); row++ {
				plot(c1, row, '│')
			}
		default:
			steps := max(abs(c2-c1), abs(r2-r1))
			for i := 0; i <= steps; i++ {
				t := float64(i) / float64(steps)
				plot(c1+int(t*float64(c2-c1)), r1+int(t*float64(r2-r1)), '·')
			}
		}
	}

	for _, text := range p.Texts {
		col := int(math.Round(text.X * kx))
		row := int(math.Round(text.Y * ky))
		for i, r := range []rune(text.Text) {
			plot(col+i, row, r)
		}
	}

	out := make([]string, gh)
	for i, line := range grid {
		out[i] = string(line)
	}
	return out
}

func clampGrid(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
