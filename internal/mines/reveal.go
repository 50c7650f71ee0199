package mines

import "github.com/sirupsen/logrus"

// Reveal opens the cell at row, col. Revealing an empty cell opens the whole
// connected empty region and its numbered border. Calls on flagged or
// revealed cells, or after the game is decided, do nothing.
func (b *Board) Reveal(row, col int) error {
	i, err := b.index(row, col)
	if err != nil {
		return err
	}
	b.reveal(i)
	return nil
}

func (b *Board) reveal(i int) {
	if b.status != InProgress || b.state[i] != Hidden {
		return
	}

	if b.mines[i] {
		/*
		 * The player has landed on a mine. Only this cell is exposed; the
		 * rest of the layout stays hidden in engine state.
		 */
		b.state[i] = Revealed
		b.status = Lost
		Log.WithFields(b.fields(i)).Debug("mine revealed, game lost")
		return
	}

	b.open(i)

	if b.revealedSafe == b.params.Cells()-b.params.MineCount {
		b.status = Won
		Log.WithFields(b.fields(i)).Debug("all safe cells revealed, game won")
	}
}

// open reveals the safe cell i and flood fills from it. A cell is marked
// Revealed when it is queued, so each one is queued at most once.
func (b *Board) open(i int) {
	b.state[i] = Revealed
	b.revealedSafe++
	b.todo.add(i)

	for {
		j, ok := b.todo.pop()
		if !ok {
			break
		}
		if b.adjacent[j] != 0 {
			continue
		}
		for k := range b.neighbours(j) {
			/* an empty cell has no mined neighbours */
			if b.state[k] == Hidden {
				b.state[k] = Revealed
				b.revealedSafe++
				b.todo.add(k)
			}
		}
	}
}

// ToggleFlag flips a hidden cell to flagged and back. Revealed cells cannot be
// flagged.
func (b *Board) ToggleFlag(row, col int) error {
	i, err := b.index(row, col)
	if err != nil {
		return err
	}
	if b.status != InProgress {
		return nil
	}
	switch b.state[i] {
	case Hidden:
		b.state[i] = Flagged
		b.flags++
	case Flagged:
		b.state[i] = Hidden
		b.flags--
	}
	return nil
}

// Chord reveals every hidden neighbour of a revealed number whose flagged
// neighbours already account for it. A misplaced flag can lose the game here.
func (b *Board) Chord(row, col int) error {
	i, err := b.index(row, col)
	if err != nil {
		return err
	}
	if b.status != InProgress || b.state[i] != Revealed || b.mines[i] {
		return nil
	}

	c := int(b.adjacent[i])
	if c == 0 {
		return nil
	}
	js := make([]int, 0, 8)
	m := 0
	for j := range b.neighbours(i) {
		switch b.state[j] {
		case Flagged:
			m++
		case Hidden:
			js = append(js, j)
		}
	}
	if c != m {
		return nil
	}
	for _, j := range js {
		b.reveal(j)
		if b.status != InProgress {
			break
		}
	}
	return nil
}

func (b *Board) fields(i int) logrus.Fields {
	return logrus.Fields{
		"row":      i / b.params.Cols,
		"col":      i % b.params.Cols,
		"params":   b.params.String(),
		"revealed": b.revealedSafe,
		"flags":    b.flags,
	}
}
