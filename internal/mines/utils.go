package mines

// celltodo is a FIFO of cell indexes threaded through next. An index must not
// be added again while it is still queued.
type celltodo struct {
	next       []int
	head, tail int
}

func newCellTodo(n int) *celltodo {
	return &celltodo{
		next: make([]int, n),
		head: -1,
		tail: -1,
	}
}

func (std *celltodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *celltodo) pop() (i int, ok bool) {
	if std.head == -1 {
		return -1, false
	}
	i = std.head
	std.head = std.next[i]
	if std.head == -1 {
		std.tail = -1
	}
	return i, true
}

// word is a bitmask over a 3x3 neighbourhood, bit 0 being the top-left cell.
type word uint16

func (word word) bitCount() int {
	word = ((word & 0xAAAA) >> 1) + (word & 0x5555)
	word = ((word & 0xCCCC) >> 2) + (word & 0x3333)
	word = ((word & 0xF0F0) >> 4) + (word & 0x0F0F)
	word = ((word & 0xFF00) >> 8) + (word & 0x00FF)
	return int(word)
}

func iif[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
