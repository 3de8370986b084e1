package combat

import (
	"fmt"

	apperrors "skirmish/internal/errors"
	"skirmish/internal/grid"
)

const (
	soldierSplashRadiusDiv = 3 // splash radius is ceil(range/3)
	soldierSplashDamageDiv = 2 // splash damage is ceil(power/2)
	sniperMinRangeDiv      = 2 // minimum distance is ceil(range/2)
	sniperBurstEvery       = 3
	sniperBurstMultiplier  = 2
)

// attack validates and resolves c's attack from src on dst. Nothing is
// mutated unless every check passes.
func (c *Character) attack(b *board, src, dst grid.Point) error {
	switch c.kind {
	case Soldier:
		return soldierAttack(b, c, src, dst)
	case Medic:
		return medicAttack(b, c, src, dst)
	case Sniper:
		return sniperAttack(b, c, src, dst)
	default:
		return apperrors.New(apperrors.CodeIllegalArgument, fmt.Sprintf("game: unknown kind %d", int(c.kind)))
	}
}

func soldierAttack(b *board, c *Character, src, dst grid.Point) error {
	if grid.Distance(src, dst) > c.reach {
		return outOfRange(src, dst)
	}
	if c.ammo == 0 {
		return outOfAmmo(src)
	}
	if !grid.SameLine(src, dst) {
		return illegalTarget(src, dst)
	}

	// Splash victims come from one pass over the board before any damage, so
	// a cell cleared by this attack is never visited twice.
	type splashTarget struct {
		at grid.Point
		h  Handle
	}
	radius := grid.DivCeil(c.reach, soldierSplashRadiusDiv)
	var splash []splashTarget
	for p, h := range b.cells.Cells() {
		if *h == Empty {
			continue
		}
		if d := grid.Distance(p, dst); d == 0 || d > radius {
			continue
		}
		if b.record(*h).Allied(*c) {
			continue
		}
		splash = append(splash, splashTarget{at: p, h: *h})
	}

	c.ammo--
	if victim := b.occupant(dst); victim != nil && !victim.Allied(*c) {
		b.strike(dst, victim, c.power)
	}
	damage := grid.DivCeil(c.power, soldierSplashDamageDiv)
	for _, t := range splash {
		b.strike(t.at, b.record(t.h), damage)
	}
	return nil
}

func medicAttack(b *board, c *Character, src, dst grid.Point) error {
	if grid.Distance(src, dst) > c.reach {
		return outOfRange(src, dst)
	}
	victim := b.occupant(dst)
	if victim != nil && !victim.Allied(*c) && c.ammo == 0 {
		return outOfAmmo(src)
	}
	if src == dst || victim == nil {
		return illegalTarget(src, dst)
	}

	delta := -c.power
	if !victim.Allied(*c) {
		c.ammo--
		delta = c.power
	}
	b.strike(dst, victim, delta)
	return nil
}

func sniperAttack(b *board, c *Character, src, dst grid.Point) error {
	d := grid.Distance(src, dst)
	if d < grid.DivCeil(c.reach, sniperMinRangeDiv) || d > c.reach {
		return outOfRange(src, dst)
	}
	if c.ammo == 0 {
		return outOfAmmo(src)
	}
	victim := b.occupant(dst)
	if victim == nil || victim.Allied(*c) {
		return illegalTarget(src, dst)
	}

	c.ammo--
	c.burst++
	damage := c.power
	if c.burst == sniperBurstEvery {
		c.burst = 0
		damage *= sniperBurstMultiplier
	}
	b.strike(dst, victim, damage)
	return nil
}

func outOfRange(src, dst grid.Point) error {
	return apperrors.WithMetadata(apperrors.CodeOutOfRange,
		fmt.Sprintf("game: out of range %s -> %s", src, dst),
		map[string]string{"from": src.String(), "to": dst.String()})
}

func outOfAmmo(src grid.Point) error {
	return apperrors.WithMetadata(apperrors.CodeOutOfAmmo,
		fmt.Sprintf("game: out of ammo at %s", src),
		map[string]string{"from": src.String()})
}

func illegalTarget(src, dst grid.Point) error {
	return apperrors.WithMetadata(apperrors.CodeIllegalTarget,
		fmt.Sprintf("game: illegal target %s -> %s", src, dst),
		map[string]string{"from": src.String(), "to": dst.String()})
}
