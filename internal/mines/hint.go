package mines

type Hint struct {
	Row, Col int
	Safe     bool // false means the cell is certainly a mine
}

// Hint looks for one hidden cell whose content follows from a single revealed
// number and the flags around it. Flags are taken at face value, so a wrong
// flag can produce a wrong hint. Only player-visible state is consulted.
func (b *Board) Hint() (Hint, bool) {
	if b.status != InProgress {
		return Hint{}, false
	}

	w := b.params.Cols
	for i, s := range b.state {
		if s != Revealed || b.mines[i] || b.adjacent[i] == 0 {
			continue
		}

		x, y := i%w, i/w

		/*
		 * Construct the set of unknown cells around this one and the
		 * number of mines among them not yet accounted for by flags.
		 */
		var (
			bit  word = 1
			val  word = 0
			mine      = int(b.adjacent[i])
		)
		for dy := -1; dy <= +1; dy++ {
			for dx := -1; dx <= +1; dx++ {
				if !b.params.InBounds(y+dy, x+dx) {
					/* ignore this one */
				} else if b.state[i+dy*w+dx] == Flagged {
					mine--
				} else if b.state[i+dy*w+dx] == Hidden {
					val |= bit
				}
				bit <<= 1
			}
		}

		if val == 0 || mine < 0 {
			continue
		}

		/*
		 * A set with a mine count of zero or of its own cardinality is
		 * fully known.
		 */
		if mine == 0 || mine == val.bitCount() {
			return b.firstInMask(x-1, y-1, val, mine == 0), true
		}
	}

	return Hint{}, false
}

func (b *Board) firstInMask(x, y int, mask word, safe bool) Hint {
	var bit word = 1
	for yy := range 3 {
		for xx := range 3 {
			if mask&bit != 0 {
				return Hint{Row: y + yy, Col: x + xx, Safe: safe}
			}
			bit <<= 1
		}
	}
	panic("mines: empty neighbourhood mask")
}
