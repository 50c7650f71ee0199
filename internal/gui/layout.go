// Package gui holds the input-independent part of the desktop driver: screen
// state, button placement and the mapping between window pixels and board
// cells. The ebiten frontend in gui/desktop only reads input and paints.
package gui

import (
	"image"

	"golang.org/x/exp/constraints"
)

const (
	WindowWidth  = 800
	WindowHeight = 650

	boardArea = 600
	topOffset = 25
	minCell   = 8
	maxCell   = 80
)

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Layout places a rows x cols board of square cells centred in the window.
type Layout struct {
	Rows, Cols int
	Cell       int
	Origin     image.Point
}

func NewLayout(rows, cols, width, height int) Layout {
	if rows < 1 || cols < 1 {
		return Layout{}
	}
	cell := clamp(min(boardArea/cols, boardArea/rows), minCell, maxCell)
	return Layout{
		Rows: rows,
		Cols: cols,
		Cell: cell,
		Origin: image.Pt(
			(width-cell*cols)/2,
			(height-cell*rows)/2+topOffset,
		),
	}
}

func (l Layout) Bounds() image.Rectangle {
	return image.Rectangle{
		Min: l.Origin,
		Max: l.Origin.Add(image.Pt(l.Cell*l.Cols, l.Cell*l.Rows)),
	}
}

// CellAt maps a window pixel to the board cell under it.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	p := image.Pt(x, y)
	if l.Cell == 0 || !p.In(l.Bounds()) {
		return 0, 0, false
	}
	p = p.Sub(l.Origin)
	return p.Y / l.Cell, p.X / l.Cell, true
}

func (l Layout) CellRect(row, col int) image.Rectangle {
	tl := l.Origin.Add(image.Pt(col*l.Cell, row*l.Cell))
	return image.Rectangle{Min: tl, Max: tl.Add(image.Pt(l.Cell, l.Cell))}
}
