package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "CellState(" + strconv.Itoa(int(s)) + ")"
	}
}

type Status int8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

// CellView is what the player can see of a cell.
type CellView int8

const (
	Unknown          CellView = -2
	FlagMark         CellView = -1
	CorrectlyFlagged CellView = 64
	ExplodedMine     CellView = 65
	FalselyFlagged   CellView = 66
	UnflaggedMine    CellView = 67
	/*
	 * Each item of a [Grid] is one of the following values:
	 *
	 * 	- 0 to 8 mean the cell is open and has a surrounding mine
	 * 	  count.
	 *
	 * 	- -1 means the cell carries a flag.
	 *
	 * 	- -2 means the cell is unknown.
	 *
	 * 	- 64 means a flag sat on a mine when the game ended.
	 *
	 * 	- 65 means the cell is the mine the player hit.
	 *
	 * 	- 66 means a flag sat on a safe cell when the game ended.
	 *
	 * 	- 67 means an unflagged mine shown after the game ended.
	 */
)

// Open reports whether v is a revealed safe cell.
func (v CellView) Open() bool {
	return 0 <= v && v <= 8
}

func (v CellView) String() string {
	switch {
	case v == Unknown:
		return "#"
	case v == FlagMark, v == CorrectlyFlagged:
		return "F"
	case v == FalselyFlagged:
		return "x"
	case v == ExplodedMine:
		return "X"
	case v == UnflaggedMine:
		return "*"
	case v == 0:
		return "."
	case v.Open():
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

// Grid holds one [CellView] per cell in row-major order.
type Grid []CellView

func (g Grid) At(cols, row, col int) CellView {
	return g[row*cols+col]
}

func (g Grid) String(cols int) string {
	var b strings.Builder
	for y := range len(g) / cols {
		for x := range cols {
			fmt.Fprint(&b, g[y*cols+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
