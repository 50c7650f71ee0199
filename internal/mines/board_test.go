package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 2))
}

func mustBoard(t *testing.T, params Params, mines ...Point) *Board {
	t.Helper()
	b, err := NewWithMines(params, mines)
	require.NoError(t, err)
	return b
}

func countMines(b *Board) (n int) {
	for _, m := range b.mines {
		if m {
			n++
		}
	}
	return
}

func TestNewInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"zero rows", Params{Rows: 0, Cols: 5, MineCount: 1}},
		{"negative cols", Params{Rows: 5, Cols: -1, MineCount: 1}},
		{"negative mines", Params{Rows: 5, Cols: 5, MineCount: -1}},
		{"board full of mines", Params{Rows: 3, Cols: 3, MineCount: 9}},
		{"more mines than cells", Params{Rows: 2, Cols: 2, MineCount: 10}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := New(test.params, newRand(1))
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestNewWithMinesRejectsBadLayouts(t *testing.T) {
	params := Params{Rows: 3, Cols: 3, MineCount: 2}

	_, err := NewWithMines(params, []Point{{0, 0}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration, "too few positions")

	_, err = NewWithMines(params, []Point{{0, 0}, {0, 0}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration, "duplicate position")

	_, err = NewWithMines(params, []Point{{0, 0}, {3, 0}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration, "position out of bounds")
}

func TestNewBoardIsFresh(t *testing.T) {
	b, err := New(Intermediate, newRand(7))
	require.NoError(t, err)

	assert.Equal(t, InProgress, b.Status())
	assert.Equal(t, 0, b.RevealedSafeCount())
	assert.Equal(t, 0, b.FlagCount())
	assert.Equal(t, 40, b.RemainingFlagBudget())
	for row := range b.Rows() {
		for col := range b.Cols() {
			s, ok := b.State(row, col)
			require.True(t, ok)
			assert.Equal(t, Hidden, s)
		}
	}
}

func TestMineCountExact(t *testing.T) {
	t.Parallel()

	tests := []Params{
		{Rows: 1, Cols: 2, MineCount: 1},
		{Rows: 1, Cols: 3, MineCount: 0},
		Beginner,
		Intermediate,
		Expert,
		{Rows: 9, Cols: 9, MineCount: 80},
	}

	for _, params := range tests {
		t.Run(params.String(), func(t *testing.T) {
			r := newRand(1)
			for range 50 {
				b, err := New(params, r)
				require.NoError(t, err)
				assert.Equal(t, params.MineCount, countMines(b))
			}
		})
	}
}

func TestMinePlacementIsUniform(t *testing.T) {
	const trials = 8000
	params := Params{Rows: 2, Cols: 2, MineCount: 1}
	r := newRand(42)

	hits := make([]int, params.Cells())
	for range trials {
		for i, m := range params.placeMines(r) {
			if m {
				hits[i]++
			}
		}
	}
	for i, h := range hits {
		assert.InDelta(t, trials/4, h, 300, "cell %d", i)
	}
}

func TestAdjacencyCorrectness(t *testing.T) {
	r := newRand(3)
	for range 20 {
		b, err := New(Params{Rows: 8, Cols: 11, MineCount: 30}, r)
		require.NoError(t, err)

		for y := range b.Rows() {
			for x := range b.Cols() {
				want, neighbours := 0, 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						yy, xx := y+dy, x+dx
						if (dx == 0 && dy == 0) || yy < 0 || yy >= b.Rows() || xx < 0 || xx >= b.Cols() {
							continue
						}
						neighbours++
						if b.mines[yy*b.Cols()+xx] {
							want++
						}
					}
				}
				assert.Equal(t, want, int(b.adjacent[y*b.Cols()+x]))

				corner := (y == 0 || y == b.Rows()-1) && (x == 0 || x == b.Cols()-1)
				edge := y == 0 || y == b.Rows()-1 || x == 0 || x == b.Cols()-1
				switch {
				case corner:
					assert.Equal(t, 3, neighbours)
				case edge:
					assert.Equal(t, 5, neighbours)
				default:
					assert.Equal(t, 8, neighbours)
				}
			}
		}
	}
}

func TestResetClearsState(t *testing.T) {
	b, err := New(Beginner, newRand(5))
	require.NoError(t, err)

	require.NoError(t, b.ToggleFlag(0, 0))
	for i, m := range b.mines {
		if m && i != 0 {
			require.NoError(t, b.Reveal(i/b.Cols(), i%b.Cols()))
			break
		}
	}
	require.Equal(t, Lost, b.Status())

	b.Reset()
	assert.Equal(t, InProgress, b.Status())
	assert.Equal(t, 0, b.FlagCount())
	assert.Equal(t, 0, b.RevealedSafeCount())
	assert.Equal(t, Beginner.MineCount, countMines(b))
	for _, s := range b.state {
		assert.Equal(t, Hidden, s)
	}
}

func TestResetKeepsExplicitLayout(t *testing.T) {
	b := mustBoard(t, Params{Rows: 3, Cols: 3, MineCount: 1}, Point{1, 1})
	require.NoError(t, b.Reveal(1, 1))
	require.Equal(t, Lost, b.Status())

	b.Reset()
	assert.Equal(t, InProgress, b.Status())
	assert.True(t, b.mines[4])
	assert.Equal(t, 1, countMines(b))
}

func TestQueriesOutOfBounds(t *testing.T) {
	b := mustBoard(t, Params{Rows: 2, Cols: 3, MineCount: 0})

	_, ok := b.State(2, 0)
	assert.False(t, ok)
	_, ok = b.State(0, -1)
	assert.False(t, ok)
	_, ok = b.AdjacentCount(5, 5)
	assert.False(t, ok)
	assert.False(t, b.IsRevealedMine(-1, 0))
	assert.False(t, b.InBounds(0, 3))
	assert.True(t, b.InBounds(1, 2))
}

func TestOutOfBoundsError(t *testing.T) {
	b := mustBoard(t, Params{Rows: 2, Cols: 3, MineCount: 1}, Point{0, 0})

	for _, call := range []func(int, int) error{b.Reveal, b.ToggleFlag, b.Chord} {
		err := call(2, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		var oob *OutOfBoundsError
		require.True(t, errors.As(err, &oob))
		assert.Equal(t, OutOfBoundsError{Row: 2, Col: 1, Rows: 2, Cols: 3}, *oob)
	}

	assert.Equal(t, InProgress, b.Status())
	assert.Equal(t, 0, b.RevealedSafeCount())
	assert.Equal(t, 0, b.FlagCount())
	for _, s := range b.state {
		assert.Equal(t, Hidden, s)
	}
}
