package combat

import (
	"fmt"
	"strings"
	"unicode"

	"skirmish/internal/config"
	apperrors "skirmish/internal/errors"
	"skirmish/internal/grid"
)

type Team int

const (
	TeamA Team = iota // upper-case glyphs
	TeamB             // lower-case glyphs
)

var teamNames = [...]string{TeamA: config.TeamA, TeamB: config.TeamB}

func (t Team) String() string {
	if t < 0 || int(t) >= len(teamNames) {
		return fmt.Sprintf("Team(%d)", int(t))
	}
	return teamNames[t]
}

// MarshalText lets a Team serialise as its name, including as a map key.
func (t Team) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t Team) Opponent() Team { return 1 - t }
func (t Team) valid() bool    { return t == TeamA || t == TeamB }

func ParseTeam(s string) (Team, error) {
	for i, name := range teamNames {
		if strings.EqualFold(s, name) {
			return Team(i), nil
		}
	}
	return 0, apperrors.New(apperrors.CodeIllegalArgument, fmt.Sprintf("game: unknown team %q", s))
}

// TeamOfGlyph classifies a display glyph: lower-case letters belong to TeamB,
// everything else to TeamA.
func TeamOfGlyph(r rune) Team {
	if unicode.IsLower(r) {
		return TeamB
	}
	return TeamA
}

type Kind int

const (
	Soldier Kind = iota
	Medic
	Sniper
)

// kindRule carries the fixed constants of one kind.
type kindRule struct {
	name      string
	moveRange int
	reload    int
	glyphs    [2]rune // indexed by Team
}

var kinds = [...]kindRule{
	Soldier: {name: config.KindSoldier, moveRange: 3, reload: 3, glyphs: [2]rune{'S', 's'}},
	Medic:   {name: config.KindMedic, moveRange: 5, reload: 5, glyphs: [2]rune{'M', 'm'}},
	Sniper:  {name: config.KindSniper, moveRange: 4, reload: 2, glyphs: [2]rune{'N', 'n'}},
}

func (k Kind) valid() bool { return k >= 0 && int(k) < len(kinds) }

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

func ParseKind(s string) (Kind, error) {
	for i, r := range kinds {
		if strings.EqualFold(s, r.name) {
			return Kind(i), nil
		}
	}
	return 0, apperrors.New(apperrors.CodeIllegalArgument, fmt.Sprintf("game: unknown kind %q", s))
}

// Character is a unit record. It holds no references, so copying the value
// yields an independent character.
type Character struct {
	kind   Kind
	team   Team
	health int
	ammo   int
	reach  int // attack range
	power  int
	burst  int // successful sniper attacks modulo burstEvery
}

func NewCharacter(kind Kind, team Team, health, ammo, attackRange, power int) (Character, error) {
	if !kind.valid() || !team.valid() || health <= 0 || ammo < 0 || attackRange < 0 || power < 0 {
		return Character{}, apperrors.WithMetadata(apperrors.CodeIllegalArgument,
			fmt.Sprintf("game: illegal character %s/%s health=%d ammo=%d range=%d power=%d",
				kind, team, health, ammo, attackRange, power),
			map[string]string{"kind": kind.String(), "team": team.String()})
	}
	return Character{kind: kind, team: team, health: health, ammo: ammo, reach: attackRange, power: power}, nil
}

func (c Character) Kind() Kind      { return c.kind }
func (c Character) Team() Team      { return c.team }
func (c Character) Health() int     { return c.health }
func (c Character) Ammo() int       { return c.ammo }
func (c Character) Range() int      { return c.reach }
func (c Character) Power() int      { return c.power }
func (c Character) Burst() int      { return c.burst }
func (c Character) MoveRange() int  { return kinds[c.kind].moveRange }
func (c Character) ReloadSize() int { return kinds[c.kind].reload }
func (c Character) Glyph() rune     { return kinds[c.kind].glyphs[c.team] }
func (c Character) IsDead() bool    { return c.health <= 0 }

func (c Character) Allied(o Character) bool { return c.team == o.team }

// Clone returns an independent copy carrying all mutable state.
func (c Character) Clone() Character { return c }

func (c *Character) LoadAmmo() { c.ammo += kinds[c.kind].reload }

// ChangeHealth subtracts delta from health; a negative delta heals.
func (c *Character) ChangeHealth(delta int) { c.health -= delta }

func (c Character) VerifyMove(src, dst grid.Point) error {
	if grid.Distance(src, dst) > c.MoveRange() {
		return apperrors.WithMetadata(apperrors.CodeMoveTooFar,
			fmt.Sprintf("game: move too far %s -> %s (%s moves %d)", src, dst, c.kind, c.MoveRange()),
			map[string]string{"from": src.String(), "to": dst.String()})
	}
	return nil
}

func (c Character) String() string {
	return fmt.Sprintf("%c hp=%d ammo=%d rng=%d pow=%d", c.Glyph(), c.health, c.ammo, c.reach, c.power)
}
