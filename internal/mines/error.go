package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("cell out of bounds")
)

type OutOfBoundsError struct {
	Row, Col   int
	Rows, Cols int
}

// [OutOfBoundsError] implements [error]
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"cell (%d, %d) is outside of %dx%d board", e.Row, e.Col, e.Rows, e.Cols,
	)
}

// Is reports whether target is [ErrOutOfBounds].
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
