package term

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/theme"
)

// Session drives one board from line commands. All board calls happen on the
// goroutine running [Session.Run].
type Session struct {
	Log *logrus.Logger

	game    config.Game
	board   *mines.Board
	render  *Renderer
	message string
}

func NewSession(game config.Game, log *logrus.Logger, out io.Writer) (*Session, error) {
	board, err := game.NewBoard()
	if err != nil {
		return nil, err
	}
	th := theme.MustLookup(theme.Default)
	if game.Theme != "" {
		if th, err = theme.Lookup(game.Theme); err != nil {
			return nil, err
		}
	}
	return &Session{
		Log:    log,
		game:   game,
		board:  board,
		render: NewRenderer(out, th),
	}, nil
}

func (s *Session) Board() *mines.Board { return s.board }

func (s *Session) Message() string { return s.message }

func (s *Session) announce() {
	switch s.board.Status() {
	case mines.Won:
		s.message = "You won!"
	case mines.Lost:
		s.message = "Game over!"
	default:
		return
	}
	s.Log.WithFields(logrus.Fields{
		"params": s.board.Params().String(),
		"status": s.board.Status().String(),
	}).Info("game finished")
}

func (s *Session) draw(out io.Writer) {
	fmt.Fprint(out, s.render.Board(s.board))
	if s.message != "" {
		fmt.Fprintln(out, s.message)
	}
	fmt.Fprint(out, "> ")
}

// Run reads commands from in until q, end of input or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	var scanErr error
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = sc.Err()
	}()

	s.message = "type ? for help"
	s.draw(out)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return scanErr
			}
			quit, err := s.Exec(line)
			if err != nil {
				s.Log.WithError(err).WithField("command", line).Debug("command rejected")
				s.message = "error: " + err.Error()
			}
			if quit {
				return nil
			}
			s.draw(out)
		}
	}
}
