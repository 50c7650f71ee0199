package term

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/theme"
)

var (
	ErrUnknownCommand = errors.New("unknown command, try ?")
	ErrNargs          = errors.New("invalid number of arguments")
)

// -1 accepts any number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"c": 2,
	"h": 0,
	"n": -1,
	"r": 0,
	"t": 1,
	"g": 0,
	"q": 0,
	"?": 0,
}

const usage = `o ROW COL  reveal a cell
f ROW COL  flag or unflag a cell
c ROW COL  reveal around a satisfied number
h          hint
n [K=V..]  new game (preset, rows, cols, mines, seed, theme)
r          restart with fresh mines
t NAME     switch theme (` + "%s" + `)
g          redraw
q          quit`

func parseRowCol(args []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

// Exec runs one command line against the session.
func (s *Session) Exec(line string) (quit bool, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}

	name, args := strings.ToLower(parts[0]), parts[1:]
	nargs, ok := commandNargs[name]
	if !ok {
		return false, ErrUnknownCommand
	}
	if nargs >= 0 && nargs != len(args) {
		return false, ErrNargs
	}

	s.message = ""

	switch name {
	case "o", "f", "c":
		row, col, err := parseRowCol(args)
		if err != nil {
			return false, err
		}
		switch name {
		case "o":
			err = s.board.Reveal(row, col)
		case "f":
			err = s.board.ToggleFlag(row, col)
		case "c":
			err = s.board.Chord(row, col)
		}
		if err != nil {
			return false, err
		}
		s.announce()
	case "h":
		h, ok := s.board.Hint()
		switch {
		case !ok:
			s.message = "no hint available"
		case h.Safe:
			s.message = fmt.Sprintf("hint: (%d, %d) is safe", h.Row, h.Col)
		default:
			s.message = fmt.Sprintf("hint: (%d, %d) is a mine", h.Row, h.Col)
		}
	case "n":
		return false, s.newGame(args)
	case "r":
		s.board.Reset()
		s.message = "new game"
	case "t":
		th, err := theme.Lookup(args[0])
		if err != nil {
			return false, err
		}
		s.render.SetTheme(th)
		s.game.Theme = th.Name
		s.message = "theme: " + th.Name
	case "g":
	case "q":
		return true, nil
	case "?":
		s.message = fmt.Sprintf(usage, strings.Join(theme.Names(), ", "))
	}
	return false, nil
}

func (s *Session) newGame(args []string) error {
	src, err := config.ParsePairs(args)
	if err != nil {
		return err
	}
	override, err := config.DecodeGame(src)
	if err != nil {
		return err
	}
	game := s.game.Merge(override)
	if override.Preset != "" && override.Rows == nil && override.Cols == nil && override.Mines == nil {
		game.Rows, game.Cols, game.Mines = nil, nil, nil
	}

	board, err := game.NewBoard()
	if err != nil {
		return err
	}
	if override.Theme != "" {
		th, err := theme.Lookup(override.Theme)
		if err != nil {
			return err
		}
		s.render.SetTheme(th)
		game.Theme = th.Name
	}

	s.game, s.board = game, board
	s.message = "new game: " + board.Params().String()
	s.Log.WithField("params", board.Params().String()).Info("new game")
	return nil
}
