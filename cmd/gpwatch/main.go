// Command gpwatch runs a small symbolic-regression search and renders
// it live in the terminal via cmd/gpwatch/tui, with an optional
// websocket dashboard for a browser view of the same events.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"gogp"
	"gogp/cmd/gpwatch/tui"
	"gogp/dashboard"
)

// target is the function the search tries to rediscover: x^2 + x - 2.
func target(x float64) float64 {
	return x*x + x - 2
}

func evalTree(t gogp.Tree, x float64) (float64, bool) {
	if t.IsLeaf() {
		switch t.Term.Kind {
		case gogp.TerminalNumber:
			return t.Term.Number, true
		case gogp.TerminalVar:
			return x, true
		}
		return 0, false
	}
	args := make([]float64, len(t.Args))
	for i, a := range t.Args {
		v, ok := evalTree(a, x)
		if !ok {
			return 0, false
		}
		args[i] = v
	}
	switch t.Op {
	case "+":
		return args[0] + args[1], true
	case "-":
		return args[0] - args[1], true
	case "*":
		return args[0] * args[1], true
	case "/":
		if args[1] == 0 {
			return 0, false
		}
		return args[0] / args[1], true
	}
	return 0, false
}

var samples = []float64{-4, -3, -2, -1, 0, 1, 2, 3, 4}

func fitnessFn(individual gogp.Module) (float64, error) {
	var sum float64
	for _, x := range samples {
		got, ok := evalTree(individual.Result, x)
		if !ok || math.IsNaN(got) || math.IsInf(got, 0) {
			return 1e9, nil
		}
		diff := got - target(x)
		sum += diff * diff
	}
	return sum, nil
}

func main() {
	islands := flag.Int("islands", 4, "number of islands")
	pop := flag.Int("pop", 60, "population size per island")
	migrations := flag.Int("migrations", 40, "number of migration rounds")
	iterations := flag.Int("iterations", 15, "generations per migration round")
	dashAddr := flag.String("dashboard", "", "if set, serve a websocket dashboard at this address (e.g. :8080)")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()

	var failures int64
	var hub *dashboard.Hub
	if *dashAddr != "" {
		hub = dashboard.NewHub()
		go func() {
			if err := dashboard.Serve(*dashAddr, hub, ""); err != nil {
				fmt.Fprintf(os.Stderr, "dashboard: %v\n", err)
			}
		}()
	}

	if err := tui.Start(ctx, tui.Config{Title: "gpwatch: x^2 + x - 2"}); err != nil {
		fmt.Fprintf(os.Stderr, "%v (falling back to plain stdout)\n", err)
	}

	start := time.Now()
	round := 0
	report := func(ev gogp.ReportEvent) {
		switch ev.Kind {
		case gogp.ReportBest:
			round++
			tui.PushState(tui.StateSnapshot{
				Title:          "gpwatch: x^2 + x - 2",
				StartTime:      start,
				NumIslands:     *islands,
				PopulationSize: *pop,
				Migrations:     *migrations,
				Round:          round,
				BestFitness:    ev.Fitness,
				Failures:       atomic.LoadInt64(&failures),
			})
			tui.PushEvent(tui.Event{Timestamp: time.Now(), Kind: "best", Severity: "info",
				Message: fmt.Sprintf("new global best fitness %.6g", ev.Fitness)})
		case gogp.ReportFitnessFailure:
			atomic.AddInt64(&failures, 1)
			tui.PushEvent(tui.Event{Timestamp: time.Now(), Kind: "failure", Severity: "warning",
				Message: fmt.Sprintf("fitness callback failed: %v", ev.Err)})
		}
		if hub != nil {
			dashboard.Reporter(hub)(ev)
		}
	}

	opts := gogp.Options{
		Iterations:     *iterations,
		Migrations:     *migrations,
		NumIslands:     *islands,
		PopulationSize: *pop,
		MaxDepth:       5,
		Terminals:      []string{"x"},
		Numbers:        []float64{-2, -1, 0, 1, 2},
		Functions: gogp.FunctionSet{
			{ID: "+", Arity: 2},
			{ID: "-", Arity: 2},
			{ID: "*", Arity: 2},
			{ID: "/", Arity: 2},
		},
		FitnessFn: fitnessFn,
		ReportFn:  report,
	}

	_, best, fitness, err := gogp.Run(opts)
	tui.Stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("best fitness: %.6g\n", fitness)
	fmt.Printf("best expression: %s\n", best.Result.String())
}
