package combat

import (
	"fmt"
	"math/rand"
	"sync"

	"skirmish/internal/config"
	apperrors "skirmish/internal/errors"
	"skirmish/internal/util"
)

const healthSpread = 1

type BatchResult struct {
	Runs      int          `json:"runs"`
	Wins      map[Team]int `json:"wins"`
	Undecided int          `json:"undecided"`
	AvgTurns  float64      `json:"avg_turns"`
	Rejected  int          `json:"rejected"`
	Damage    map[Team]int `json:"damage_by_team"`
}

// WinRate is the share of runs won by t.
func (b BatchResult) WinRate(t Team) float64 {
	if b.Runs == 0 {
		return 0
	}
	return float64(b.Wins[t]) / float64(b.Runs)
}

// RunBatch plays sc runs times on a pool of workers. Every run gets its own
// copy of the scenario with unit health jittered by -1..+1, seeded from seed
// and the run index, so results do not depend on scheduling.
func RunBatch(sc *config.Scenario, runs int, seed int64, workers int) (BatchResult, error) {
	if runs <= 0 {
		return BatchResult{}, apperrors.New(apperrors.CodeIllegalArgument, fmt.Sprintf("batch: runs must be positive, got %d", runs))
	}
	// Setup errors are the same for every run; surface them once.
	if _, err := Setup(sc); err != nil {
		return BatchResult{}, err
	}
	workers = min(max(workers, 1), runs)

	st := BatchResult{
		Runs:   runs,
		Wins:   map[Team]int{TeamA: 0, TeamB: 0},
		Damage: map[Team]int{TeamA: 0, TeamB: 0},
	}
	var sumTurns int
	var firstErr error
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	jobs := make(chan int, runs)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				run := jitter(sc, util.New(seed+int64(i)))
				res, err := RunScenario(&Env{}, run, false)

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = fmt.Errorf("run %d: %w", i, err)
					}
					mu.Unlock()
					continue
				}
				if res.Winner != nil {
					st.Wins[*res.Winner]++
				} else {
					st.Undecided++
				}
				sumTurns += res.Turns
				st.Rejected += res.Rejected
				for t, v := range res.Damage {
					st.Damage[t] += v
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return BatchResult{}, firstErr
	}
	st.AvgTurns = float64(sumTurns) / float64(runs)
	return st, nil
}

func jitter(sc *config.Scenario, rng *rand.Rand) *config.Scenario {
	out := sc.Clone()
	for i := range out.Units {
		out.Units[i].Health = util.Jitter(rng, out.Units[i].Health, healthSpread, 1)
	}
	return out
}
