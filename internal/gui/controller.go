package gui

import (
	"fmt"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/theme"
)

type Screen int

const (
	ScreenHome Screen = iota
	ScreenThemes
	ScreenPlaying
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenThemes:
		return "themes"
	case ScreenPlaying:
		return "playing"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

type Button struct {
	Label    string
	Rect     image.Rectangle
	Selected bool

	press func(*Controller) error
}

const (
	themesPerRow   = 3
	themeButtonW   = 200
	themeButtonH   = 50
	themeButtonPad = 40
	themeRowPad    = 25
)

// Controller is the desktop game state. It is not safe for concurrent use;
// ebiten calls Update and Draw from one goroutine.
type Controller struct {
	Log *logrus.Logger

	game   config.Game
	theme  theme.Theme
	screen Screen
	board  *mines.Board
	width  int
	height int
}

func NewController(game config.Game, log *logrus.Logger) *Controller {
	th, err := theme.Lookup(game.Theme)
	if game.Theme != "" && err != nil {
		log.WithError(err).Warn("falling back to default theme")
	}
	return &Controller{
		Log:    log,
		game:   game,
		theme:  th,
		width:  WindowWidth,
		height: WindowHeight,
	}
}

func (c *Controller) Screen() Screen { return c.screen }

func (c *Controller) Theme() theme.Theme { return c.theme }

// Board is nil outside the playing screen.
func (c *Controller) Board() *mines.Board { return c.board }

func (c *Controller) Size() (int, int) { return c.width, c.height }

func (c *Controller) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	c.Log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("window resized")
}

func (c *Controller) Layout() Layout {
	if c.board == nil {
		return Layout{}
	}
	return NewLayout(c.board.Rows(), c.board.Cols(), c.width, c.height)
}

// Banner is the end-of-game message, empty while a game is in progress.
func (c *Controller) Banner() string {
	if c.board == nil {
		return ""
	}
	switch c.board.Status() {
	case mines.Won:
		return "Congratulations! You Won!"
	case mines.Lost:
		return "Game Over! You hit a mine."
	}
	return ""
}

// Buttons lists the clickable buttons of the current screen in window
// coordinates.
func (c *Controller) Buttons() []Button {
	w, h := c.width, c.height
	switch c.screen {
	case ScreenHome:
		x, y := w/2-125, h/4+74
		return []Button{
			{Label: "Play Game", Rect: image.Rect(x, y, x+250, y+60), press: (*Controller).play},
			{Label: "Colour Schemes", Rect: image.Rect(x, y+90, x+250, y+150), press: (*Controller).themes},
		}
	case ScreenThemes:
		names := theme.Names()
		total := themesPerRow*themeButtonW + (themesPerRow-1)*themeButtonPad
		x0 := clamp((w-total)/2, 20, w)
		y0 := h/8 + 74
		buttons := make([]Button, 0, len(names)+1)
		for i, name := range names {
			x := x0 + (i%themesPerRow)*(themeButtonW+themeButtonPad)
			y := y0 + (i/themesPerRow)*(themeButtonH+themeRowPad)
			buttons = append(buttons, Button{
				Label:    name,
				Rect:     image.Rect(x, y, x+themeButtonW, y+themeButtonH),
				Selected: name == c.theme.Name,
				press:    func(c *Controller) error { return c.selectTheme(name) },
			})
		}
		return append(buttons, Button{
			Label: "Back",
			Rect:  image.Rect(w/2-100, h-80, w/2+100, h-30),
			press: (*Controller).home,
		})
	case ScreenPlaying:
		buttons := []Button{
			{Label: "Back to Home", Rect: image.Rect(20, 20, 140, 60), press: (*Controller).home},
		}
		if c.board != nil && c.board.Status() != mines.InProgress {
			buttons = append(buttons, Button{
				Label: "Play Again",
				Rect:  image.Rect(w-140, 20, w-20, 60),
				press: (*Controller).reset,
			})
		}
		return buttons
	}
	return nil
}

// Click handles a mouse press at window position (x, y).
func (c *Controller) Click(x, y int, mb MouseButton) error {
	p := image.Pt(x, y)
	if mb == MouseLeft {
		for _, b := range c.Buttons() {
			if p.In(b.Rect) {
				return b.press(c)
			}
		}
	}
	if c.screen != ScreenPlaying || c.board == nil {
		return nil
	}
	row, col, ok := c.Layout().CellAt(x, y)
	if !ok {
		return nil
	}
	switch mb {
	case MouseLeft:
		return c.board.Reveal(row, col)
	case MouseRight:
		return c.board.ToggleFlag(row, col)
	case MouseMiddle:
		return c.board.Chord(row, col)
	}
	return nil
}

// Key actions, for keyboard shortcuts.

func (c *Controller) Reset() error { return c.reset() }

func (c *Controller) Home() error { return c.home() }

func (c *Controller) play() error {
	board, err := c.game.NewBoard()
	if err != nil {
		return err
	}
	c.board = board
	c.screen = ScreenPlaying
	c.Log.WithField("params", board.Params().String()).Info("starting new game")
	return nil
}

func (c *Controller) themes() error {
	c.screen = ScreenThemes
	return nil
}

func (c *Controller) home() error {
	c.board = nil
	c.screen = ScreenHome
	return nil
}

func (c *Controller) reset() error {
	if c.board == nil {
		return nil
	}
	c.board.Reset()
	c.Log.Debug("game reset")
	return nil
}

func (c *Controller) selectTheme(name string) error {
	th, err := theme.Lookup(name)
	if err != nil {
		return err
	}
	c.theme = th
	c.game.Theme = th.Name
	c.Log.WithField("theme", th.Name).Info("theme selected")
	return nil
}
