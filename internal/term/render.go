package term

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/theme"
)

// Renderer draws a board as text. Colours are only emitted when the output
// supports them.
type Renderer struct {
	lg    *lipgloss.Renderer
	theme theme.Theme
}

func NewRenderer(out io.Writer, th theme.Theme) *Renderer {
	return &Renderer{lg: lipgloss.NewRenderer(out), theme: th}
}

func (r *Renderer) SetTheme(th theme.Theme) {
	r.theme = th
}

func (r *Renderer) Theme() theme.Theme {
	return r.theme
}

func (r *Renderer) style(fg, bg lipgloss.TerminalColor) lipgloss.Style {
	return r.lg.NewStyle().Foreground(fg).Background(bg)
}

func hex(c color.Color) lipgloss.Color {
	return lipgloss.Color(theme.Hex(c))
}

func (r *Renderer) cell(v mines.CellView) string {
	th := r.theme
	glyph := " " + v.String() + " "
	switch {
	case v == mines.Unknown:
		return r.style(hex(th.GridLines), hex(th.CellHidden)).Render(glyph)
	case v == mines.FlagMark, v == mines.CorrectlyFlagged, v == mines.FalselyFlagged:
		return r.style(hex(th.Flag), hex(th.CellHidden)).Bold(true).Render(glyph)
	case v == mines.ExplodedMine:
		return r.style(hex(th.Mine), lipgloss.Color("#FF6464")).Bold(true).Render(glyph)
	case v == mines.UnflaggedMine:
		return r.style(hex(th.Mine), hex(th.CellRevealed)).Render(glyph)
	default:
		return r.style(hex(th.Number(int(v))), hex(th.CellRevealed)).Bold(true).Render(glyph)
	}
}

// Board renders the status line, column numbers and one line per row.
func (r *Renderer) Board(b *mines.Board) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Mines: %d  Status: %s\n", b.RemainingFlagBudget(), b.Status())

	sb.WriteString("    ")
	for col := range b.Cols() {
		fmt.Fprintf(&sb, "%3d", col)
	}
	sb.WriteString("\n")

	g := b.View()
	for row := range b.Rows() {
		fmt.Fprintf(&sb, "%3d ", row)
		for col := range b.Cols() {
			sb.WriteString(r.cell(g.At(b.Cols(), row, col)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
