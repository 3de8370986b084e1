package combat

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"skirmish/internal/config"
	apperrors "skirmish/internal/errors"
	"skirmish/internal/grid"
)

// Env carries the per-run state shared with the caller. A nil Log runs
// silently.
type Env struct {
	Turn int
	Log  log.FieldLogger
}

func (e *Env) logger() log.FieldLogger {
	if e.Log != nil {
		return e.Log
	}
	l := log.New()
	l.Out = io.Discard
	return l
}

type SimResult struct {
	Scenario string       `json:"scenario,omitempty"`
	Winner   *Team        `json:"winner,omitempty"`
	Over     bool         `json:"over"`
	Turns    int          `json:"turns"`
	Rejected int          `json:"rejected"`
	Damage   map[Team]int `json:"damage_by_team"`
	Healing  map[Team]int `json:"healing_by_team"`
	Board    string       `json:"board"`
	Units    []UnitMeta   `json:"units"`
	Events   []Event      `json:"events,omitempty"`
}

// Setup builds the game described by sc. Unit errors name the offending
// entry.
func Setup(sc *config.Scenario) (*Game, error) {
	g, err := NewGame(sc.Board.Height, sc.Board.Width)
	if err != nil {
		return nil, err
	}
	for i, u := range sc.Units {
		c, err := characterFromDef(u)
		if err != nil {
			return nil, fmt.Errorf("unit %d: %w", i, err)
		}
		if err := g.AddCharacter(u.Pos.Point(), c); err != nil {
			return nil, fmt.Errorf("unit %d: %w", i, err)
		}
	}
	return g, nil
}

func characterFromDef(u config.UnitDef) (Character, error) {
	kind, err := ParseKind(u.Kind)
	if err != nil {
		return Character{}, err
	}
	team, err := ParseTeam(u.Team)
	if err != nil {
		return Character{}, err
	}
	return NewCharacter(kind, team, u.Health, u.Ammo, u.Range, u.Power)
}

// RunScenario plays sc's script until it runs out or one team is left.
// Commands the game rejects are counted and skipped.
func RunScenario(env *Env, sc *config.Scenario, record bool) (SimResult, error) {
	logger := env.logger().WithField("scenario", sc.Name)
	g, err := Setup(sc)
	if err != nil {
		return SimResult{}, err
	}

	var events []Event
	emit := func(ev Event) {
		if record {
			events = append(events, ev)
		}
	}

	res := SimResult{
		Scenario: sc.Name,
		Damage:   map[Team]int{TeamA: 0, TeamB: 0},
		Healing:  map[Team]int{TeamA: 0, TeamB: 0},
	}

	env.Turn = 0
	for _, u := range g.Units() {
		emit(Event{Turn: 0, Type: EventSpawn, Payload: map[string]any{
			"unit": u.Meta(),
		}})
	}
	logger.WithFields(log.Fields{
		"board":    g.Dimensions().String(),
		"units":    len(sc.Units),
		"commands": len(sc.Commands),
	}).Info("run started")

	winner, over := g.IsOver()
	for i := 0; i < len(sc.Commands) && !over; i++ {
		cmd := sc.Commands[i]
		env.Turn = i + 1
		res.Turns = env.Turn
		src, dst := cmd.From.Point(), cmd.To.Point()

		before := g.Units()
		var actor Character
		if c, ok, _ := g.CharacterAt(src); ok {
			actor = c
		}
		if err := execute(g, cmd.Op, src, dst); err != nil {
			res.Rejected++
			code := apperrors.CodeOf(err)
			logger.WithFields(log.Fields{
				"turn": env.Turn,
				"code": code,
				"op":   cmd.Op,
				"from": src.String(),
				"to":   dst.String(),
			}).Warn("command rejected")
			emit(Event{Turn: env.Turn, Type: EventRejected, Payload: map[string]any{
				"op": cmd.Op, "from": cell(src), "to": cell(dst),
				"code": string(code), "error": err.Error(),
			}})
			continue
		}

		switch strings.ToLower(cmd.Op) {
		case config.OpMove:
			emit(Event{Turn: env.Turn, Type: EventMove, Payload: map[string]any{
				"glyph": string(actor.Glyph()), "from": cell(src), "to": cell(dst),
			}})
			logger.WithFields(log.Fields{"turn": env.Turn, "from": src.String(), "to": dst.String()}).Debug("move")
		case config.OpReload:
			c, _, _ := g.CharacterAt(src)
			emit(Event{Turn: env.Turn, Type: EventReload, Payload: map[string]any{
				"glyph": string(c.Glyph()), "at": cell(src), "ammo": c.Ammo(),
			}})
		case config.OpAttack:
			emit(Event{Turn: env.Turn, Type: EventAttack, Payload: map[string]any{
				"glyph": string(actor.Glyph()), "from": cell(src), "to": cell(dst),
			}})
			resolveOutcome(env.Turn, actor.Team(), before, g.Units(), &res, emit, logger)
		}

		winner, over = g.IsOver()
	}

	if over {
		w := winner
		res.Winner = &w
		res.Over = true
		emit(Event{Turn: env.Turn, Type: EventGameOver, Payload: map[string]any{"winner": w}})
		logger.WithFields(log.Fields{"turn": env.Turn, "winner": w.String()}).Info("game over")
	} else {
		logger.WithField("turns", res.Turns).Info("script exhausted without a winner")
	}

	res.Board = g.String()
	for _, u := range g.Units() {
		res.Units = append(res.Units, u.Meta())
	}
	if record {
		res.Events = events
	}
	return res, nil
}

func execute(g *Game, op string, src, dst grid.Point) error {
	switch strings.ToLower(op) {
	case config.OpMove:
		return g.Move(src, dst)
	case config.OpAttack:
		return g.Attack(src, dst)
	case config.OpReload:
		return g.Reload(src)
	default:
		return apperrors.New(apperrors.CodeIllegalArgument, fmt.Sprintf("scenario: unknown op %q", op))
	}
}

// resolveOutcome diffs the units around an attack. Nobody moves during an
// attack, so units are matched by cell.
func resolveOutcome(turn int, side Team, before, after []Unit, res *SimResult, emit func(Event), logger log.FieldLogger) {
	alive := make(map[grid.Point]Unit, len(after))
	for _, u := range after {
		alive[u.At] = u
	}
	for _, prev := range before {
		now, ok := alive[prev.At]
		switch {
		case !ok:
			res.Damage[side] += prev.Health()
			emit(Event{Turn: turn, Type: EventHit, Payload: map[string]any{
				"glyph": string(prev.Glyph()), "at": cell(prev.At), "dmg": prev.Health(), "hp": 0,
			}})
			emit(Event{Turn: turn, Type: EventDeath, Payload: map[string]any{
				"glyph": string(prev.Glyph()), "at": cell(prev.At),
			}})
			logger.WithFields(log.Fields{"turn": turn, "glyph": string(prev.Glyph()), "at": prev.At.String()}).Info("unit died")
		case now.Health() < prev.Health():
			dmg := prev.Health() - now.Health()
			res.Damage[side] += dmg
			emit(Event{Turn: turn, Type: EventHit, Payload: map[string]any{
				"glyph": string(now.Glyph()), "at": cell(now.At), "dmg": dmg, "hp": now.Health(),
			}})
		case now.Health() > prev.Health():
			amount := now.Health() - prev.Health()
			res.Healing[side] += amount
			emit(Event{Turn: turn, Type: EventHeal, Payload: map[string]any{
				"glyph": string(now.Glyph()), "at": cell(now.At), "amount": amount, "hp": now.Health(),
			}})
		}
	}
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
