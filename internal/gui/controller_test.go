package gui

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// playing puts c on the game screen with a fixed 2x2 layout. Its cells sit
// at x 320..480, y 270..430 in an 800x650 window.
func playing(t *testing.T, c *Controller, mineCount int, positions ...mines.Point) *mines.Board {
	t.Helper()
	b, err := mines.NewWithMines(mines.Params{Rows: 2, Cols: 2, MineCount: mineCount}, positions)
	require.NoError(t, err)
	c.board = b
	c.screen = ScreenPlaying
	return b
}

func labels(buttons []Button) []string {
	out := make([]string, len(buttons))
	for i, b := range buttons {
		out[i] = b.Label
	}
	return out
}

func TestControllerNavigation(t *testing.T) {
	c := NewController(config.Game{}, testLogger())
	assert.Equal(t, ScreenHome, c.Screen())
	assert.Equal(t, "Classic", c.Theme().Name)
	assert.Equal(t, []string{"Play Game", "Colour Schemes"}, labels(c.Buttons()))

	// right clicks never press buttons
	require.NoError(t, c.Click(400, 250, MouseRight))
	assert.Equal(t, ScreenHome, c.Screen())

	require.NoError(t, c.Click(400, 250, MouseLeft))
	assert.Equal(t, ScreenPlaying, c.Screen())
	require.NotNil(t, c.Board())
	assert.Equal(t, mines.Beginner, c.Board().Params())
	assert.Equal(t, []string{"Back to Home"}, labels(c.Buttons()))

	require.NoError(t, c.Click(30, 30, MouseLeft))
	assert.Equal(t, ScreenHome, c.Screen())
	assert.Nil(t, c.Board())

	require.NoError(t, c.Click(400, 336, MouseLeft))
	assert.Equal(t, ScreenThemes, c.Screen())
	buttons := c.Buttons()
	require.Len(t, buttons, 9)
	assert.True(t, buttons[0].Selected)
	assert.Equal(t, "Back", buttons[8].Label)

	require.NoError(t, c.Click(350, 170, MouseLeft))
	assert.Equal(t, ScreenThemes, c.Screen())
	assert.Equal(t, "Strawberry", c.Theme().Name)
	buttons = c.Buttons()
	assert.False(t, buttons[0].Selected)
	assert.True(t, buttons[1].Selected)

	require.NoError(t, c.Click(400, 600, MouseLeft))
	assert.Equal(t, ScreenHome, c.Screen())
	assert.Equal(t, "Strawberry", c.Theme().Name)
}

func TestControllerUnknownTheme(t *testing.T) {
	c := NewController(config.Game{Theme: "plaid"}, testLogger())
	assert.Equal(t, "Classic", c.Theme().Name)

	c = NewController(config.Game{Theme: "grape"}, testLogger())
	assert.Equal(t, "Grape", c.Theme().Name)
}

func TestControllerPlayBadConfig(t *testing.T) {
	c := NewController(config.Game{Preset: "impossible"}, testLogger())
	err := c.Click(400, 250, MouseLeft)
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
	assert.Equal(t, ScreenHome, c.Screen())
	assert.Nil(t, c.Board())
}

func TestControllerBoardClicks(t *testing.T) {
	c := NewController(config.Game{}, testLogger())
	b := playing(t, c, 0)

	require.NoError(t, c.Click(330, 280, MouseRight))
	st, _ := b.State(0, 0)
	assert.Equal(t, mines.Flagged, st)

	require.NoError(t, c.Click(410, 360, MouseLeft))
	assert.Equal(t, 3, b.RevealedSafeCount())
	assert.Equal(t, mines.InProgress, b.Status())
	assert.Empty(t, c.Banner())

	require.NoError(t, c.Click(330, 280, MouseRight))
	require.NoError(t, c.Click(330, 280, MouseLeft))
	assert.Equal(t, mines.Won, b.Status())
	assert.Equal(t, "Congratulations! You Won!", c.Banner())
	assert.Equal(t, []string{"Back to Home", "Play Again"}, labels(c.Buttons()))

	// clicks off the board are ignored
	require.NoError(t, c.Click(10, 600, MouseLeft))

	require.NoError(t, c.Click(700, 40, MouseLeft))
	assert.Equal(t, mines.InProgress, b.Status())
	assert.Zero(t, b.RevealedSafeCount())
	assert.Empty(t, c.Banner())
}

func TestControllerChord(t *testing.T) {
	c := NewController(config.Game{}, testLogger())
	b := playing(t, c, 1, mines.Point{Row: 0, Col: 0})

	require.NoError(t, c.Click(410, 360, MouseLeft))
	n, ok := b.AdjacentCount(1, 1)
	require.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, b.RevealedSafeCount())

	require.NoError(t, c.Click(330, 280, MouseRight))
	require.NoError(t, c.Click(410, 360, MouseMiddle))
	assert.Equal(t, mines.Won, b.Status())
}

func TestControllerLose(t *testing.T) {
	c := NewController(config.Game{}, testLogger())
	b := playing(t, c, 1, mines.Point{Row: 0, Col: 0})

	require.NoError(t, c.Click(410, 360, MouseLeft))
	// wrong flag, so the chord opens the mine
	require.NoError(t, c.Click(410, 280, MouseRight))
	require.NoError(t, c.Click(410, 360, MouseMiddle))
	assert.Equal(t, mines.Lost, b.Status())
	assert.Equal(t, "Game Over! You hit a mine.", c.Banner())
	assert.True(t, b.IsRevealedMine(0, 0))
}

func TestControllerResize(t *testing.T) {
	c := NewController(config.Game{}, testLogger())
	assert.Equal(t, Layout{}, c.Layout())

	playing(t, c, 0)
	c.Resize(1024, 768)
	w, h := c.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
	assert.Equal(t, NewLayout(2, 2, 1024, 768), c.Layout())
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "home", ScreenHome.String())
	assert.Equal(t, "playing", ScreenPlaying.String())
	assert.Equal(t, "Screen(7)", Screen(7).String())
}
