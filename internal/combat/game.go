package combat

import (
	"fmt"
	"io"

	apperrors "skirmish/internal/errors"
	"skirmish/internal/grid"
	"skirmish/internal/render"
)

// Game owns a fixed-size board and enforces the rules of every action on it.
// A Game is not safe for concurrent use.
type Game struct {
	b *board
}

// Unit is a character snapshot together with its cell.
type Unit struct {
	At grid.Point
	Character
}

func NewGame(height, width int) (*Game, error) {
	b, err := newBoard(grid.Dimensions{Rows: height, Cols: width})
	if err != nil {
		if apperrors.CodeOf(err).IsMatrix() {
			return nil, apperrors.New(apperrors.CodeIllegalArgument,
				fmt.Sprintf("game: illegal board size %dx%d", height, width))
		}
		return nil, err
	}
	return &Game{b: b}, nil
}

func (g *Game) Dimensions() grid.Dimensions { return g.b.dims() }

// Clone returns a deep copy: every character is cloned into the new board.
func (g *Game) Clone() *Game { return &Game{b: g.b.clone()} }

// Assign replaces g's board with a deep copy of other's.
func (g *Game) Assign(other *Game) {
	if g == other {
		return
	}
	g.b = other.b.clone()
}

func (g *Game) verifyCell(p grid.Point) error {
	if _, err := g.b.cells.At(p.Row, p.Col); err != nil {
		if !apperrors.CodeOf(err).IsMatrix() {
			return err
		}
		return apperrors.WithMetadata(apperrors.CodeIllegalCell,
			fmt.Sprintf("game: illegal cell %s on %s board", p, g.b.dims()),
			map[string]string{"cell": p.String()})
	}
	return nil
}

func (g *Game) verifyEmpty(p grid.Point) error {
	if err := g.verifyCell(p); err != nil {
		return err
	}
	if g.b.occupant(p) != nil {
		return apperrors.WithMetadata(apperrors.CodeCellOccupied,
			fmt.Sprintf("game: cell %s occupied", p),
			map[string]string{"cell": p.String()})
	}
	return nil
}

func (g *Game) verifyOccupied(p grid.Point) (*Character, error) {
	if err := g.verifyCell(p); err != nil {
		return nil, err
	}
	c := g.b.occupant(p)
	if c == nil {
		return nil, apperrors.WithMetadata(apperrors.CodeCellEmpty,
			fmt.Sprintf("game: cell %s empty", p),
			map[string]string{"cell": p.String()})
	}
	return c, nil
}

// AddCharacter places a copy of c at p. c must be alive and of a known kind
// and team, which the zero Character is not.
func (g *Game) AddCharacter(p grid.Point, c Character) error {
	if err := g.verifyEmpty(p); err != nil {
		return err
	}
	if c.IsDead() || !c.kind.valid() || !c.team.valid() {
		return apperrors.WithMetadata(apperrors.CodeIllegalArgument,
			fmt.Sprintf("game: cannot place %s/%s with health %d at %s", c.kind, c.team, c.health, p),
			map[string]string{"cell": p.String()})
	}
	g.b.place(p, c.Clone())
	return nil
}

// Move relocates the character at src to dst. Moving onto its own cell is a
// no-op.
func (g *Game) Move(src, dst grid.Point) error {
	if err := g.verifyCell(dst); err != nil {
		return err
	}
	c, err := g.verifyOccupied(src)
	if err != nil {
		return err
	}
	if src == dst {
		return nil
	}
	if err := c.VerifyMove(src, dst); err != nil {
		return err
	}
	if err := g.verifyEmpty(dst); err != nil {
		return err
	}
	from, to := g.b.slot(src), g.b.slot(dst)
	*to, *from = *from, Empty
	return nil
}

// Attack has the character at src attack dst using its kind's rules.
func (g *Game) Attack(src, dst grid.Point) error {
	if err := g.verifyCell(dst); err != nil {
		return err
	}
	c, err := g.verifyOccupied(src)
	if err != nil {
		return err
	}
	return c.attack(g.b, src, dst)
}

func (g *Game) Reload(p grid.Point) error {
	c, err := g.verifyOccupied(p)
	if err != nil {
		return err
	}
	c.LoadAmmo()
	return nil
}

// IsOver reports whether only one team is left on the board, and which.
// An empty board is not over.
func (g *Game) IsOver() (Team, bool) {
	var present [2]bool
	for _, r := range g.Glyphs() {
		if r == ' ' {
			continue
		}
		present[TeamOfGlyph(r)] = true
	}
	for _, t := range []Team{TeamA, TeamB} {
		if present[t] && !present[t.Opponent()] {
			return t, true
		}
	}
	return 0, false
}

// CharacterAt returns a snapshot of the character at p.
func (g *Game) CharacterAt(p grid.Point) (Character, bool, error) {
	if err := g.verifyCell(p); err != nil {
		return Character{}, false, err
	}
	c := g.b.occupant(p)
	if c == nil {
		return Character{}, false, nil
	}
	return *c, true, nil
}

// Units returns snapshots of every character in row-major order.
func (g *Game) Units() []Unit {
	var out []Unit
	for p, h := range g.b.cells.Cells() {
		if *h != Empty {
			out = append(out, Unit{At: p, Character: *g.b.record(*h)})
		}
	}
	return out
}

// Glyphs returns the board's display glyphs in row-major order, with a space
// for every empty cell.
func (g *Game) Glyphs() []rune {
	out := make([]rune, 0, g.b.cells.Size())
	for _, h := range g.b.cells.Cells() {
		if *h == Empty {
			out = append(out, ' ')
			continue
		}
		out = append(out, g.b.record(*h).Glyph())
	}
	return out
}

func (g *Game) Render(w io.Writer) error {
	return render.Board(w, g.Glyphs(), g.b.dims().Cols)
}

func (g *Game) String() string {
	s, err := render.String(g.Glyphs(), g.b.dims().Cols)
	if err != nil {
		return err.Error()
	}
	return s
}
