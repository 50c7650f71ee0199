package mines

import (
	"fmt"
	"math/rand/v2"
)

type Point struct {
	Row, Col int
}

// placeMines picks p.MineCount distinct cells uniformly at random.
func (p Params) placeMines(r *rand.Rand) []bool {
	grid := make([]bool, p.Cells())

	candidates := make([]int, len(grid))
	for i := range candidates {
		candidates[i] = i
	}

	/*
	 * Pick n off the list at random, moving the last live candidate into
	 * the hole left by each pick.
	 */
	k := len(candidates)
	for range p.MineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return grid
}

func (p Params) layMines(points []Point) ([]bool, error) {
	if len(points) != p.MineCount {
		return nil, fmt.Errorf(
			"%w: got %d mine positions for mine count %d",
			ErrInvalidConfiguration, len(points), p.MineCount,
		)
	}
	grid := make([]bool, p.Cells())
	for _, pt := range points {
		if !p.InBounds(pt.Row, pt.Col) {
			return nil, fmt.Errorf(
				"%w: mine at (%d, %d) is outside of the board",
				ErrInvalidConfiguration, pt.Row, pt.Col,
			)
		}
		i := pt.Row*p.Cols + pt.Col
		if grid[i] {
			return nil, fmt.Errorf(
				"%w: duplicate mine at (%d, %d)",
				ErrInvalidConfiguration, pt.Row, pt.Col,
			)
		}
		grid[i] = true
	}
	return grid, nil
}

func (p Params) countAdjacent(grid []bool) []int8 {
	adjacent := make([]int8, len(grid))
	for y := range p.Rows {
		for x := range p.Cols {
			var v int8
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					yy, xx := y+dy, x+dx
					if (dx != 0 || dy != 0) && p.InBounds(yy, xx) && grid[yy*p.Cols+xx] {
						v++
					}
				}
			}
			adjacent[y*p.Cols+x] = v
		}
	}
	return adjacent
}
