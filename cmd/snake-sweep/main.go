// snake-sweep runs bot-driven sessions without a display and reports score
// statistics. It exists to exercise the engine's full lifecycle (rounds,
// resets, shutdown) under load.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"torsnake/internal/core"
	"torsnake/internal/sim"
	"torsnake/internal/stats"
)

type sessionResult struct {
	seed      int64
	rounds    int
	bestScore int
	elapsed   time.Duration
}

// autoPrompt answers "play again" until the per-session round allowance is
// spent.
type autoPrompt struct {
	remaining int
}

func (p *autoPrompt) Ask(int) (bool, error) {
	p.remaining--
	return p.remaining > 0, nil
}

// discardRenderer drops frames; the sweep only cares about outcomes.
type discardRenderer struct{}

func (discardRenderer) Render(sim.Snapshot)  {}
func (discardRenderer) UpdateTitle(int, int) {}

func main() {
	games := flag.Int("games", 4, "number of sessions to run")
	rounds := flag.Int("rounds", 2, "rounds per session")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 16, "grid width in cells")
	height := flag.Int("height", 16, "grid height in cells")
	speed := flag.Float64("speed", 40, "initial speed in cells per second")
	wake := flag.Duration("wake", 5*time.Millisecond, "update worker wake interval")
	fps := flag.Int("fps", 240, "orchestrator frame rate")
	seed := flag.Int64("seed", 1, "base seed, incremented per session")
	out := flag.String("out", "", "write session stats JSON to this path")
	flag.Parse()

	session := stats.NewSession()

	jobs := make(chan int64)
	results := make(chan sessionResult, *games)
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- runSession(s, *width, *height, *speed, *wake, *fps, *rounds, session)
			}
		}()
	}

	start := time.Now()
	go func() {
		for i := 0; i < *games; i++ {
			jobs <- *seed + int64(i)
		}
		close(jobs)
	}()

	collected := make([]sessionResult, 0, *games)
	for i := 0; i < *games; i++ {
		collected = append(collected, <-results)
	}
	wg.Wait()

	sort.Slice(collected, func(i, j int) bool { return collected[i].seed < collected[j].seed })
	for _, r := range collected {
		fmt.Printf("seed=%-6d rounds=%d best=%-4d elapsed=%s\n", r.seed, r.rounds, r.bestScore, r.elapsed.Round(time.Millisecond))
	}

	sum := session.Summary()
	fmt.Printf("\n%d sessions, %d rounds in %s: best score %d, mean score %.1f, mean round %.2fs\n",
		len(collected), sum.Rounds, time.Since(start).Round(time.Millisecond), sum.BestScore, sum.MeanScore, sum.MeanSeconds)

	if *out != "" {
		if err := session.WriteFile(*out); err != nil {
			log.Fatal(err)
		}
	}
}

func runSession(seed int64, width, height int, speed float64, wake time.Duration, fps, rounds int, session *stats.Session) sessionResult {
	cfg := sim.Config{
		Grid:         core.Size{W: width, H: height},
		Speed:        speed,
		WakeInterval: wake,
		FrameRate:    fps,
		Seed:         seed,
	}
	state, err := sim.NewState(cfg)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	local := stats.NewSession()
	prompt := stats.NewRecorder(&autoPrompt{remaining: rounds}, local)
	loop := sim.NewLoop(state, sim.NewAutopilot(state), discardRenderer{}, prompt)
	loop.Run()

	best := 0
	played := 0
	for _, r := range local.RoundsSnapshot() {
		session.Record(r)
		played++
		if r.Score > best {
			best = r.Score
		}
	}
	return sessionResult{seed: seed, rounds: played, bestScore: best, elapsed: time.Since(start)}
}
