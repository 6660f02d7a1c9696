package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/layout"
)

// exploreCommand creates the interactive layout viewer.
func (c *CLI) exploreCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "explore [manifest]",
		Short: "Interactively compare layouts in the terminal",
		Long: `Interactively compare layouts in the terminal.

The manifest's items are laid out and drawn as a character raster. Switch
algorithms with ←/→ (or tab), change the gap with +/- and toggle clamping
with c.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, _, err := c.loadRequest(cmd, args[0], &flags)
			if err != nil {
				return fmt.Errorf("load manifest %s: %w", args[0], err)
			}
			m := newExploreModel(req.Items, req.Options.LayoutOptions())
			m.clamp = !req.Options.NoClamp
			m.relayout()

			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

// =============================================================================
// exploreModel - Interactive layout viewer
// =============================================================================

var (
	exploreActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
)

// cellGlyphs label cells in the raster, cycling for large item counts.
const cellGlyphs = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	defaultRasterCols = 72
	defaultRasterRows = 20
)

type exploreModel struct {
	items   []layout.Item
	opts    layout.Options
	algs    []layout.Algorithm
	current int
	clamp   bool
	cells   []layout.Cell

	cols, rows int
}

func newExploreModel(items []layout.Item, opts layout.Options) exploreModel {
	m := exploreModel{
		items: items,
		opts:  opts,
		algs:  layout.Algorithms(),
		clamp: true,
		cols:  defaultRasterCols,
		rows:  defaultRasterRows,
	}
	for i, a := range m.algs {
		if a == opts.Type {
			m.current = i
		}
	}
	m.relayout()
	return m
}

func (m *exploreModel) relayout() {
	m.opts.Type = m.algs[m.current]
	m.cells = layout.Calculate(m.items, m.opts)
	if m.clamp {
		m.cells = layout.Clamp(m.cells, m.opts.Width, m.opts.Height)
	}
}

// maxGap is the largest gap that still leaves room on the canvas.
func (m exploreModel) maxGap() int {
	return max(0, (min(m.opts.Width, m.opts.Height)-1)/2)
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "tab":
			m.current = (m.current + 1) % len(m.algs)
		case "left", "h", "shift+tab":
			m.current = (m.current + len(m.algs) - 1) % len(m.algs)
		case "+", "=":
			m.opts.Gap = min(m.opts.Gap+1, m.maxGap())
		case "-", "_":
			m.opts.Gap = max(m.opts.Gap-1, 0)
		case "c":
			m.clamp = !m.clamp
		default:
			return m, nil
		}
		m.relayout()
	case tea.WindowSizeMsg:
		m.cols = max(16, msg.Width-4)
		m.rows = max(6, msg.Height-8)
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Mosaic Explorer"))
	b.WriteString("\n")
	var tabs []string
	for i, a := range m.algs {
		if i == m.current {
			tabs = append(tabs, exploreActiveStyle.Render("["+a.String()+"]"))
		} else {
			tabs = append(tabs, StyleDim.Render(" "+a.String()+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.opts.Type.Summary()))
	b.WriteString("\n")

	raster := rasterize(m.cells, m.opts.Width, m.opts.Height, m.cols, m.rows)
	b.WriteString(exploreFrameStyle.Render(strings.Join(raster, "\n")))
	b.WriteString("\n")

	clamp := "on"
	if !m.clamp {
		clamp = "off"
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("%dx%d · gap %d · clamp %s · %d cells",
		m.opts.Width, m.opts.Height, m.opts.Gap, clamp, len(m.cells))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ algorithm  +/- gap  c clamp  q quit"))

	return b.String()
}

// rasterize draws cells onto a cols×rows character grid scaled from a
// width×height canvas. Later cells overwrite earlier ones; empty space is '·'.
// Parts of cells outside the canvas are dropped.
func rasterize(cells []layout.Cell, width, height, cols, rows int) []string {
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat("·", cols))
	}
	if width <= 0 || height <= 0 {
		return joinRows(grid)
	}

	sx := float64(cols) / float64(width)
	sy := float64(rows) / float64(height)
	for i, c := range cells {
		key := c.MediaIndex
		if key < 0 {
			key = i
		}
		glyph := rune(cellGlyphs[key%len(cellGlyphs)])
		x0 := clampInt(int(float64(c.X)*sx), 0, cols)
		y0 := clampInt(int(float64(c.Y)*sy), 0, rows)
		x1 := clampInt(int(float64(c.Right())*sx+0.5), 0, cols)
		y1 := clampInt(int(float64(c.Bottom())*sy+0.5), 0, rows)
		// Keep small cells visible.
		if x1 <= x0 && x0 < cols {
			x1 = x0 + 1
		}
		if y1 <= y0 && y0 < rows {
			y1 = y0 + 1
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				grid[y][x] = glyph
			}
		}
	}
	return joinRows(grid)
}

func joinRows(grid [][]rune) []string {
	out := make([]string, len(grid))
	for i, row := range grid {
		out[i] = string(row)
	}
	return out
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
