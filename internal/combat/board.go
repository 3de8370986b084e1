package combat

import (
	"skirmish/internal/grid"
	"skirmish/internal/matrix"
)

// Handle addresses a character in a board's roster. The zero value marks an
// empty cell.
type Handle uint32

const Empty Handle = 0

// board is the cell matrix plus the roster arena its handles point into.
// Records of dead or departed characters stay in the roster until the board
// is cloned.
type board struct {
	cells  *matrix.Matrix[Handle]
	roster []Character
}

func newBoard(dims grid.Dimensions) (*board, error) {
	cells, err := matrix.New[Handle](dims)
	if err != nil {
		return nil, err
	}
	return &board{cells: cells}, nil
}

func (b *board) dims() grid.Dimensions { return b.cells.Dimensions() }

// slot returns the live cell at p, which the caller has bounds-checked.
func (b *board) slot(p grid.Point) *Handle {
	h, err := b.cells.Ref(p.Row, p.Col)
	if err != nil {
		panic(err)
	}
	return h
}

func (b *board) record(h Handle) *Character { return &b.roster[h-1] }

// occupant returns the character at p, or nil for an empty cell.
func (b *board) occupant(p grid.Point) *Character {
	h := *b.slot(p)
	if h == Empty {
		return nil
	}
	return b.record(h)
}

func (b *board) place(p grid.Point, c Character) {
	b.roster = append(b.roster, c)
	*b.slot(p) = Handle(len(b.roster))
}

func (b *board) clear(p grid.Point) { *b.slot(p) = Empty }

// strike applies delta to the character at p and clears the cell if it died.
func (b *board) strike(p grid.Point, c *Character, delta int) {
	c.ChangeHealth(delta)
	if c.IsDead() {
		b.clear(p)
	}
}

// clone copies every occupied cell into a fresh, compacted roster.
func (b *board) clone() *board {
	nb := &board{roster: make([]Character, 0, len(b.roster))}
	nb.cells = matrix.Map(b.cells, func(h Handle) Handle {
		if h == Empty {
			return Empty
		}
		nb.roster = append(nb.roster, b.record(h).Clone())
		return Handle(len(nb.roster))
	})
	return nb
}
