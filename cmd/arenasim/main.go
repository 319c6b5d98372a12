package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"arena_ai/internal/config"
	"arena_ai/internal/sim"
	"arena_ai/internal/store"
)

func main() {
	var cfgDir, out, dbPath string
	var seed int64
	var n int
	var saveLog bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.StringVar(&dbPath, "db", "", "sqlite file to persist results (optional)")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of matches")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.Parse()

	game, rules, err := config.LoadAll(cfgDir)
	if err != nil {
		panic(err)
	}

	var db *store.Store
	if dbPath != "" {
		db, err = store.Open(dbPath)
		if err != nil {
			panic(err)
		}
		defer db.Close()
	}

	if n <= 1 {
		res := sim.RunSingle(sim.Options{Game: game, Rules: rules, Seed: seed, Record: saveLog})
		if db != nil {
			if err := db.Save(res); err != nil {
				panic(err)
			}
		}
		if err := os.WriteFile(out, sim.MarshalPretty(res), 0644); err != nil {
			panic(err)
		}
		fmt.Printf("Single match finished. Winner=%s, Turns=%d, T=%.2fs -> %s\n",
			res.Winner, res.Turns, res.Duration, out)
		return
	}

	type stat struct {
		Wins     map[string]int
		SumTurns int
		SumT     float64
		SumHP    [2]int
		Caught   [2]int
	}
	var st = stat{Wins: map[string]int{}}
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	workers := 8
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res := sim.RunSingle(sim.Options{
					Game: game, Rules: rules, Seed: seed + int64(i), Record: false,
				})

				mu.Lock()
				st.Wins[res.Winner]++
				st.SumTurns += res.Turns
				st.SumT += res.Duration
				for side := 0; side < 2; side++ {
					st.SumHP[side] += res.Sides[side].HPEnd
					st.Caught[side] += res.Sides[side].Caught
				}
				if db != nil {
					if err := db.Save(res); err != nil {
						panic(err)
					}
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	winRates := map[string]float64{}
	for name, wins := range st.Wins {
		winRates[name] = float64(wins) / float64(n)
	}
	summary := map[string]any{
		"runs":       n,
		"win_rate":   winRates,
		"avg_turns":  float64(st.SumTurns) / float64(n),
		"avg_time":   st.SumT / float64(n),
		"avg_hp_a":   float64(st.SumHP[0]) / float64(n),
		"avg_hp_b":   float64(st.SumHP[1]) / float64(n),
		"avg_caught": []float64{float64(st.Caught[0]) / float64(n), float64(st.Caught[1]) / float64(n)},
	}
	if err := os.WriteFile(out, sim.MarshalPretty(summary), 0644); err != nil {
		panic(err)
	}
	fmt.Printf("Batch %d done -> %s\n", n, filepath.Base(out))
}
