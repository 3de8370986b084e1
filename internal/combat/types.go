package combat

import "skirmish/internal/grid"

// Event types written to the run log.
const (
	EventSpawn    = "Spawn"
	EventMove     = "Move"
	EventAttack   = "Attack"
	EventHit      = "Hit"
	EventHeal     = "Heal"
	EventDeath    = "Death"
	EventReload   = "Reload"
	EventRejected = "Rejected"
	EventGameOver = "GameOver"
)

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// UnitMeta is the serialisable form of a Unit.
type UnitMeta struct {
	Kind   string `json:"kind"`
	Team   Team   `json:"team"`
	Glyph  string `json:"glyph"`
	At     []int  `json:"at"`
	Health int    `json:"health"`
	Ammo   int    `json:"ammo"`
}

func (u Unit) Meta() UnitMeta {
	return UnitMeta{
		Kind:   u.Kind().String(),
		Team:   u.Team(),
		Glyph:  string(u.Glyph()),
		At:     cell(u.At),
		Health: u.Health(),
		Ammo:   u.Ammo(),
	}
}

func cell(p grid.Point) []int { return []int{p.Row, p.Col} }
