package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/zyedidia/generic/mapset"

	"github.com/mcoot/minesweeper/internal/model"
)

// Glyphs used in rendered grids
const (
	HiddenGlyph = "."
	MineGlyph   = "x"
)

// Renderer turns a grid and the set of revealed cells into text
type Renderer struct {
	layout Layout
	styled bool
	styles styles
}

type styles struct {
	hidden   lipgloss.Style
	mine     lipgloss.Style
	exploded lipgloss.Style
	zero     lipgloss.Style
	counts   [9]lipgloss.Style
	label    lipgloss.Style
}

// New creates a Renderer. When color is true, glyphs are wrapped in ANSI
// styles; otherwise output is plain text.
func New(layout Layout, color bool) *Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		layout: layout,
		styled: color,
		styles: newStyles(r),
	}
}

func newStyles(r *lipgloss.Renderer) styles {
	s := styles{
		hidden:   r.NewStyle().Foreground(lipgloss.Color("240")),
		mine:     r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		exploded: r.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true),
		zero:     r.NewStyle().Foreground(lipgloss.Color("238")),
		label:    r.NewStyle().Foreground(lipgloss.Color("248")),
	}
	colors := []string{"", "12", "10", "9", "13", "208", "14", "15", "248"}
	for i := 1; i < len(colors); i++ {
		s.counts[i] = r.NewStyle().Foreground(lipgloss.Color(colors[i])).Bold(true)
	}
	return s
}

// Layout returns the renderer's layout
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render draws the grid. A nil revealed set shows every cell; otherwise
// cells outside the set are drawn with the hidden glyph.
func (r *Renderer) Render(grid *model.Grid, revealed *mapset.Set[model.Position]) string {
	return r.render(grid, revealed, nil)
}

// RenderGame draws a game's grid, masked by its revealed set unless full is
// set. The mine that ended a lost game is highlighted when styled.
func (r *Renderer) RenderGame(game *model.Game, full bool) string {
	if full {
		return r.render(game.Grid, nil, game.Exploded)
	}
	return r.render(game.Grid, &game.Revealed, game.Exploded)
}

func (r *Renderer) render(grid *model.Grid, revealed *mapset.Set[model.Position], exploded *model.Position) string {
	var b strings.Builder
	l := r.layout
	w := l.width(grid.Size)
	indent := l.Margin + w + 3

	// Column headers
	b.WriteString(strings.Repeat(" ", indent))
	for col := 0; col < grid.Size; col++ {
		if col > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.pad(strconv.Itoa(col+l.IndexBase), w, r.styles.label))
	}
	b.WriteByte('\n')

	// Rule
	b.WriteString(strings.Repeat(" ", indent-1))
	b.WriteString(strings.Repeat(string(l.Rule), (w+1)*grid.Size))
	b.WriteByte('\n')

	// Rows
	for row := 0; row < grid.Size; row++ {
		b.WriteString(strings.Repeat(" ", l.Margin))
		b.WriteString(r.pad(strconv.Itoa(row+l.IndexBase), w, r.styles.label))
		b.WriteString(" | ")
		for col := 0; col < grid.Size; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			pos := model.Position{Row: row, Col: col}
			glyph, style := r.cell(grid, pos, revealed, exploded)
			b.WriteString(r.pad(glyph, w, style))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (r *Renderer) cell(grid *model.Grid, pos model.Position, revealed *mapset.Set[model.Position], exploded *model.Position) (string, lipgloss.Style) {
	if revealed != nil && !revealed.Has(pos) {
		return HiddenGlyph, r.styles.hidden
	}
	c := grid.Get(pos)
	if c.IsMine() {
		if exploded != nil && *exploded == pos {
			return MineGlyph, r.styles.exploded
		}
		return MineGlyph, r.styles.mine
	}
	if c.Count() == 0 {
		return "0", r.styles.zero
	}
	return strconv.Itoa(c.Count()), r.styles.counts[c.Count()]
}

// pad right-aligns text to width. Styling is applied to the text alone so
// escape codes never affect alignment.
func (r *Renderer) pad(text string, width int, style lipgloss.Style) string {
	padding := ""
	if n := width - len(text); n > 0 {
		padding = strings.Repeat(" ", n)
	}
	if !r.styled {
		return padding + text
	}
	return padding + style.Render(text)
}
