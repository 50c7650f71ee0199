package mines

import (
	"fmt"
	"strings"
)

type Params struct {
	Rows, Cols, MineCount int
}

var (
	Beginner     = Params{Rows: 9, Cols: 9, MineCount: 10}
	Intermediate = Params{Rows: 16, Cols: 16, MineCount: 40}
	Expert       = Params{Rows: 16, Cols: 30, MineCount: 99}
)

var presets = map[string]Params{
	"beginner":     Beginner,
	"intermediate": Intermediate,
	"expert":       Expert,
}

// Preset looks up a named difficulty, case-insensitively.
func Preset(name string) (Params, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

func (p Params) Unpack() (rows int, cols int, mineCount int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p Params) Cells() int {
	return p.Rows * p.Cols
}

func (p Params) Validate() error {
	switch {
	case p.Rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfiguration, p.Rows)
	case p.Cols <= 0:
		return fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidConfiguration, p.Cols)
	case p.MineCount < 0:
		return fmt.Errorf("%w: mine count must not be negative, got %d", ErrInvalidConfiguration, p.MineCount)
	case p.MineCount >= p.Cells():
		return fmt.Errorf(
			"%w: mine count must be less than %d for a %dx%d board, got %d",
			ErrInvalidConfiguration, p.Cells(), p.Rows, p.Cols, p.MineCount,
		)
	}
	return nil
}

func (p Params) InBounds(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Cols
}

// String encodes p as "rows:cols:mines", the form accepted by [ParseParams].
func (p Params) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

func ParseParams(s string) (Params, error) {
	var p Params
	ss := strings.ReplaceAll(s, ":", " ")
	n, err := fmt.Sscanf(ss, "%d %d %d", &p.Rows, &p.Cols, &p.MineCount)
	if n != 3 || err != nil {
		return Params{}, fmt.Errorf(
			`%w: malformed params "%s" (n = %d, err = %v)`,
			ErrInvalidConfiguration, s, n, err,
		)
	}
	return p, p.Validate()
}
