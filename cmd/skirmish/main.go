package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"skirmish/internal/combat"
	"skirmish/internal/config"
)

func main() {
	defaults, err := config.LoadEnv()
	if err != nil {
		config.Exitf("skirmish: %v", err)
	}

	var scenarioPath, out, level string
	var seed int64
	var n, workers int
	var saveLog bool
	flag.StringVar(&scenarioPath, "config", defaults.Scenario, "scenario file")
	flag.StringVar(&out, "out", defaults.Out, "output file (single) or summary file (batch)")
	flag.Int64Var(&seed, "seed", defaults.Seed, "seed")
	flag.IntVar(&n, "n", defaults.Runs, "number of simulations")
	flag.IntVar(&workers, "workers", defaults.Workers, "batch workers")
	flag.BoolVar(&saveLog, "log", defaults.SaveLog, "save full event log when n==1")
	flag.StringVar(&level, "level", defaults.LogLevel, "log level")
	flag.Parse()

	logger := log.New()
	lvl, err := log.ParseLevel(level)
	if err != nil {
		config.Exitf("skirmish: %v", err)
	}
	logger.SetLevel(lvl)

	sc, err := config.LoadScenario(scenarioPath)
	if err != nil {
		config.Exitf("skirmish: %v", err)
	}

	if n <= 1 {
		env := &combat.Env{Log: logger}
		res, err := combat.RunScenario(env, sc, saveLog)
		if err != nil {
			config.Exitf("skirmish: %v", err)
		}
		if err := os.WriteFile(out, combat.MarshalPretty(res), 0644); err != nil {
			config.Exitf("skirmish: write %s: %v", out, err)
		}
		fmt.Print(res.Board)
		winner := "none"
		if res.Winner != nil {
			winner = res.Winner.String()
		}
		fmt.Printf("Single run finished. Winner=%s, turns=%d, rejected=%d -> %s\n", winner, res.Turns, res.Rejected, out)
		return
	}

	logger.WithFields(log.Fields{"runs": n, "workers": workers, "seed": seed}).Info("batch started")
	res, err := combat.RunBatch(sc, n, seed, workers)
	if err != nil {
		config.Exitf("skirmish: %v", err)
	}

	summary := map[string]any{
		"runs":      res.Runs,
		"wins":      res.Wins,
		"win_rate":  map[string]float64{"A": res.WinRate(combat.TeamA), "B": res.WinRate(combat.TeamB)},
		"undecided": res.Undecided,
		"avg_turns": res.AvgTurns,
		"rejected":  res.Rejected,
		"damage":    res.Damage,
	}
	if err := os.WriteFile(out, combat.MarshalPretty(summary), 0644); err != nil {
		config.Exitf("skirmish: write %s: %v", out, err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("Batch of %d runs done -> %s\n", res.Runs, filepath.Base(out))
	p.Printf("  A wins %d (%.1f%%), B wins %d (%.1f%%), undecided %d\n",
		res.Wins[combat.TeamA], 100*res.WinRate(combat.TeamA),
		res.Wins[combat.TeamB], 100*res.WinRate(combat.TeamB), res.Undecided)
	p.Printf("  avg turns %.2f, rejected commands %d, damage A %d / B %d\n",
		res.AvgTurns, res.Rejected, res.Damage[combat.TeamA], res.Damage[combat.TeamB])
}
