package mines

import (
	"iter"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Board is the state of a single game. It is not safe for concurrent use;
// callers serialise every call.
type Board struct {
	params   Params
	mines    []bool /* real mine positions */
	adjacent []int8
	state    []CellState
	status   Status

	revealedSafe int
	flags        int

	rnd  *rand.Rand
	todo *celltodo
}

// New validates params and lays out a fresh board, placing mines with r.
func New(params Params, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		params: params,
		rnd:    r,
		todo:   newCellTodo(params.Cells()),
	}
	b.lay(params.placeMines(r))
	return b, nil
}

// NewWithMines builds a board with mines at exactly the given positions.
// Resetting such a board keeps the layout.
func NewWithMines(params Params, positions []Point) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	grid, err := params.layMines(positions)
	if err != nil {
		return nil, err
	}
	b := &Board{
		params: params,
		todo:   newCellTodo(params.Cells()),
	}
	b.lay(grid)
	return b, nil
}

func (b *Board) lay(grid []bool) {
	b.mines = grid
	b.adjacent = b.params.countAdjacent(grid)
	b.state = make([]CellState, len(grid))
	b.status = InProgress
	b.revealedSafe = 0
	b.flags = 0
}

// Reset starts a new game of the same size. Mines are placed again unless the
// board was built by [NewWithMines].
func (b *Board) Reset() {
	if b.rnd != nil {
		b.lay(b.params.placeMines(b.rnd))
	} else {
		b.lay(b.mines)
	}
	Log.WithField("params", b.params.String()).Debug("board reset")
}

func (b *Board) index(row, col int) (int, error) {
	if !b.params.InBounds(row, col) {
		return -1, &OutOfBoundsError{
			Row: row, Col: col,
			Rows: b.params.Rows, Cols: b.params.Cols,
		}
	}
	return row*b.params.Cols + col, nil
}

func (b *Board) neighbours(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		w := b.params.Cols
		y, x := i/w, i%w
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if (dx != 0 || dy != 0) && b.params.InBounds(y+dy, x+dx) {
					if !yield((y+dy)*w + x + dx) {
						return
					}
				}
			}
		}
	}
}

func (b *Board) Params() Params { return b.params }
func (b *Board) Rows() int { return b.params.Rows }
func (b *Board) Cols() int { return b.params.Cols }
func (b *Board) MineCount() int { return b.params.MineCount }
func (b *Board) Status() Status { return b.status }
func (b *Board) RevealedSafeCount() int { return b.revealedSafe }
func (b *Board) FlagCount() int { return b.flags }

func (b *Board) InBounds(row, col int) bool {
	return b.params.InBounds(row, col)
}

// RemainingFlagBudget is the mine count minus placed flags. It goes negative
// when the player over-flags.
func (b *Board) RemainingFlagBudget() int {
	return b.params.MineCount - b.flags
}

func (b *Board) State(row, col int) (CellState, bool) {
	i, err := b.index(row, col)
	if err != nil {
		return Hidden, false
	}
	return b.state[i], true
}

func (b *Board) IsRevealedMine(row, col int) bool {
	i, err := b.index(row, col)
	return err == nil && b.state[i] == Revealed && b.mines[i]
}

// AdjacentCount returns the number on a revealed safe cell. It never reports
// anything for hidden or flagged cells.
func (b *Board) AdjacentCount(row, col int) (int, bool) {
	i, err := b.index(row, col)
	if err != nil || b.state[i] != Revealed || b.mines[i] {
		return 0, false
	}
	return int(b.adjacent[i]), true
}

// View returns a snapshot of what the player may see. Once the game is over
// it also shows every mine and marks wrong flags.
func (b *Board) View() Grid {
	over := b.status != InProgress
	g := make(Grid, len(b.state))
	for i, s := range b.state {
		switch {
		case s == Revealed && b.mines[i]:
			g[i] = ExplodedMine
		case s == Revealed:
			g[i] = CellView(b.adjacent[i])
		case s == Flagged && over:
			g[i] = iif(b.mines[i], CorrectlyFlagged, FalselyFlagged)
		case s == Flagged:
			g[i] = FlagMark
		case over && b.mines[i]:
			g[i] = UnflaggedMine
		default:
			g[i] = Unknown
		}
	}
	return g
}
