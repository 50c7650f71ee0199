// Package desktop runs a [gui.Controller] in an ebiten window.
package desktop

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vancomm/minesweeper/internal/gui"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/theme"
)

var mouseButtons = map[ebiten.MouseButton]gui.MouseButton{
	ebiten.MouseButtonLeft:   gui.MouseLeft,
	ebiten.MouseButtonRight:  gui.MouseRight,
	ebiten.MouseButtonMiddle: gui.MouseMiddle,
}

var wrongFlag = color.NRGBA{R: 255, G: 100, B: 100, A: 255}

type Game struct {
	ctx  context.Context
	ctrl *gui.Controller
	face font.Face
}

func New(ctx context.Context, ctrl *gui.Controller) *Game {
	return &Game{ctx: ctx, ctrl: ctrl, face: basicfont.Face7x13}
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, ctrl *gui.Controller) error {
	ebiten.SetWindowSize(gui.WindowWidth, gui.WindowHeight)
	ebiten.SetWindowTitle("Minesweeper")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(New(ctx, ctrl))
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.Home()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}

	x, y := ebiten.CursorPosition()
	for eb, mb := range mouseButtons {
		if !inpututil.IsMouseButtonJustPressed(eb) {
			continue
		}
		if err := g.ctrl.Click(x, y, mb); err != nil {
			g.ctrl.Log.WithError(err).Warn("click failed")
		}
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctrl.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Draw(screen *ebiten.Image) {
	th := g.ctrl.Theme()
	screen.Fill(th.Background)
	w, h := g.ctrl.Size()
	cursor := image.Pt(ebiten.CursorPosition())

	switch g.ctrl.Screen() {
	case gui.ScreenHome:
		g.drawTextCentered(screen, "Minesweeper", w/2, h/4, th.Text)
	case gui.ScreenThemes:
		g.drawTextCentered(screen, "Select Colour Scheme", w/2, h/8, th.Text)
	case gui.ScreenPlaying:
		g.drawBoard(screen, th, cursor)
	}

	for _, b := range g.ctrl.Buttons() {
		bg := th.ButtonBG
		if cursor.In(b.Rect) {
			bg = th.ButtonHover
		}
		fillRect(screen, b.Rect, bg)
		label := b.Label
		if b.Selected {
			label += " (Selected)"
		}
		c := b.Rect.Min.Add(b.Rect.Max).Div(2)
		g.drawTextCentered(screen, label, c.X, c.Y, th.ButtonText)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image, th theme.Theme, cursor image.Point) {
	board := g.ctrl.Board()
	if board == nil {
		return
	}
	w, _ := g.ctrl.Size()
	l := g.ctrl.Layout()
	view := board.View()
	inProgress := board.Status() == mines.InProgress

	for row := range l.Rows {
		for col := range l.Cols {
			r := l.CellRect(row, col)
			v := view.At(l.Cols, row, col)
			switch {
			case v.Open():
				fillRect(screen, r, th.CellRevealed)
				if v > 0 {
					g.drawTextCentered(screen, fmt.Sprint(int(v)), (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2, th.Number(int(v)))
				}
			case v == mines.ExplodedMine:
				fillRect(screen, r, th.CellRevealed)
				drawMine(screen, r, th.Mine)
				vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 3, wrongFlag, false)
			case v == mines.UnflaggedMine:
				fillRect(screen, r, th.CellRevealed)
				drawMine(screen, r, th.Mine)
			default:
				bg := th.CellHidden
				if inProgress && cursor.In(r) {
					bg = th.CellHover
				}
				fillRect(screen, r, bg)
				if v == mines.FlagMark || v == mines.CorrectlyFlagged || v == mines.FalselyFlagged {
					drawFlag(screen, r, th.Flag, th.Text)
				}
				if v == mines.FalselyFlagged {
					drawCross(screen, r, wrongFlag)
				}
			}
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, th.GridLines, false)
		}
	}

	g.drawTextCentered(screen, fmt.Sprintf("Mines: %d", board.RemainingFlagBudget()), 200, 40, th.Text)
	if banner := g.ctrl.Banner(); banner != "" {
		g.drawTextCentered(screen, banner, w/2, 40, th.Text)
	}
}

// drawTextCentered draws s with its bounding box centred on (cx, cy).
func (g *Game) drawTextCentered(screen *ebiten.Image, s string, cx, cy int, clr color.Color) {
	b := text.BoundString(g.face, s)
	text.Draw(screen, s, g.face, cx-b.Dx()/2-b.Min.X, cy-b.Dy()/2-b.Min.Y, clr)
}

func fillRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func drawMine(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	c := r.Min.Add(r.Max).Div(2)
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(r.Dx())/4, clr, true)
}

func drawFlag(screen *ebiten.Image, r image.Rectangle, flag, pole color.Color) {
	s := float32(r.Dx())
	x, y := float32(r.Min.X), float32(r.Min.Y)
	vector.StrokeLine(screen, x+s*0.5, y+s*0.2, x+s*0.5, y+s*0.8, 2, pole, false)
	vector.DrawFilledRect(screen, x+s*0.25, y+s*0.2, s*0.25, s*0.25, flag, false)
}

func drawCross(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	x0, y0 := float32(r.Min.X+4), float32(r.Min.Y+4)
	x1, y1 := float32(r.Max.X-4), float32(r.Max.Y-4)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, false)
	vector.StrokeLine(screen, x1, y0, x0, y1, 2, clr, false)
}
