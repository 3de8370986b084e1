package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	apperrors "skirmish/internal/errors"
	"skirmish/internal/grid"
)

// Ops understood by the scenario runner.
const (
	OpMove   = "move"
	OpAttack = "attack"
	OpReload = "reload"
)

// Unit kind and team names, matched case-insensitively. The combat package
// builds its kind and team tables from these.
const (
	KindSoldier = "soldier"
	KindMedic   = "medic"
	KindSniper  = "sniper"

	TeamA = "A"
	TeamB = "B"
)

var (
	Kinds    = []string{KindSoldier, KindMedic, KindSniper}
	Teams    = []string{TeamA, TeamB}
	knownOps = []string{OpMove, OpAttack, OpReload}
)

type Scenario struct {
	Name     string       `yaml:"name" json:"name,omitempty"`
	Board    BoardDef     `yaml:"board" json:"board"`
	Units    []UnitDef    `yaml:"units" json:"units"`
	Commands []CommandDef `yaml:"commands" json:"commands"`
}

type BoardDef struct {
	Height int `yaml:"height" json:"height"`
	Width  int `yaml:"width" json:"width"`
}

type UnitDef struct {
	Kind   string `yaml:"kind" json:"kind"`
	Team   string `yaml:"team" json:"team"`
	Health int    `yaml:"health" json:"health"`
	Ammo   int    `yaml:"ammo" json:"ammo"`
	Range  int    `yaml:"range" json:"range"`
	Power  int    `yaml:"power" json:"power"`
	Pos    Cell   `yaml:"pos" json:"pos"`
}

// CommandDef is one scripted action. Reload only reads From.
type CommandDef struct {
	Op   string `yaml:"op" json:"op"`
	From Cell   `yaml:"from" json:"from"`
	To   Cell   `yaml:"to" json:"to"`
}

// Cell is a [row, col] pair.
type Cell [2]int

func (c Cell) Point() grid.Point { return grid.Point{Row: c[0], Col: c[1]} }

func (c CommandDef) String() string {
	if c.Op == OpReload {
		return c.Op + " " + c.From.Point().String()
	}
	return fmt.Sprintf("%s %s -> %s", c.Op, c.From.Point(), c.To.Point())
}

// Validate rejects unknown names and an empty board before anything runs.
// Cell bounds and unit stats are left to the game itself.
func (s *Scenario) Validate() error {
	if s.Board.Height <= 0 || s.Board.Width <= 0 {
		return apperrors.WithMetadata(apperrors.CodeIllegalArgument,
			fmt.Sprintf("scenario: illegal board size %dx%d", s.Board.Height, s.Board.Width),
			map[string]string{"field": "board"})
	}
	for i, u := range s.Units {
		if !containsFold(Kinds, u.Kind) {
			return invalidEntry("units", i, "kind", u.Kind)
		}
		if !containsFold(Teams, u.Team) {
			return invalidEntry("units", i, "team", u.Team)
		}
	}
	for i, c := range s.Commands {
		if !containsFold(knownOps, c.Op) {
			return invalidEntry("commands", i, "op", c.Op)
		}
	}
	return nil
}

func containsFold(names []string, s string) bool {
	return slices.ContainsFunc(names, func(n string) bool { return strings.EqualFold(n, s) })
}

func invalidEntry(list string, index int, field, value string) error {
	return apperrors.WithMetadata(apperrors.CodeIllegalArgument,
		fmt.Sprintf("scenario: %s[%d]: unknown %s %q", list, index, field, value),
		map[string]string{"field": field, "index": strconv.Itoa(index)})
}

// Clone returns a copy that shares no slices with s.
func (s *Scenario) Clone() *Scenario {
	out := *s
	out.Units = slices.Clone(s.Units)
	out.Commands = slices.Clone(s.Commands)
	return &out
}
