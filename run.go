package gogp

import (
	"math"
	"sync"
	"time"

	"gogp/logx"
)

// Run is the engine's entry point: it validates opts, seeds num_islands
// populations, and drives them through the island model: for up to
// Migrations rounds, migrate (whenever there is more than one island,
// including the first round), advance every island through Iterations
// generations in parallel, fold each island's local best into the
// global best, and invoke opts.ReportFn once per round with the round's
// global best. Returns early the moment the global best reaches
// fitness 0. The final per-island populations, the best individual
// observed, and its fitness are returned.
func Run(opts Options) (finalIslands [][]Module, bestIndividual Module, bestFitness float64, err error) {
	resolved, err := ResolveOptions(opts)
	if err != nil {
		return nil, Module{}, 0, err
	}

	log := logx.New().EnableFromEnv()
	if resolved.Verbose {
		log.Enable(true)
	}
	start := time.Now()

	rngs, driverRng := seedSources(resolved.NumIslands, resolved.Seed)
	terminals := resolved.terminalSet()

	// checkFunctions mirrors resolved.Functions augmented with every ADF
	// branch's own operator identifier, so checkModuleArity can validate
	// application nodes that call into an ADF branch without mistaking
	// them for unknown operators. ADL branches contribute no operator —
	// the result body references them as terminal symbols, not calls.
	checkFunctions := resolved.Functions
	for i := 0; i < resolved.ADFCount; i++ {
		checkFunctions = checkFunctions.With(Operator{ID: OperatorID("adf" + itoa(i)), Arity: *resolved.ADFArity})
	}

	islands := make([][]Module, resolved.NumIslands)
	for i := range islands {
		islands[i] = NewPopulation(
			rngs[i],
			resolved.PopulationSize,
			*resolved.MutationDepth,
			terminals,
			resolved.Functions,
			resolved.ADFCount,
			*resolved.ADFArity,
			resolved.ADLCount,
			*resolved.ADLLimit,
		)
	}

	bestFitness = math.Inf(1)
	log.RunStart(resolved.NumIslands, resolved.PopulationSize)

	for round := 0; round < resolved.Migrations; round++ {
		if resolved.NumIslands > 1 {
			islands = migrate(driverRng, islands)
			log.Migration(round, resolved.NumIslands)
		}

		localBests := make([]Module, resolved.NumIslands)
		localFitness := make([]float64, resolved.NumIslands)
		reported := make(map[string]bool)

		roundBestIndividual, roundBestFitness := bestIndividual, bestFitness

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			firstErr error
		)
		for i := range islands {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				pop, bt, bf, gerr := Generations(
					rngs[i],
					resolved.Iterations,
					islands[i],
					roundBestIndividual,
					roundBestFitness,
					resolved.TournamentSize,
					*resolved.MutationProbability,
					*resolved.MutationDepth,
					resolved.MaxDepth,
					terminals,
					resolved.Functions,
					checkFunctions,
					resolved.FitnessFn,
					func(f EvalFailure) {
						key := fingerprint(f.Individual)
						mu.Lock()
						seen := reported[key]
						reported[key] = true
						mu.Unlock()
						if seen {
							return
						}
						log.FitnessFailure(f.Err)
						resolved.ReportFn(ReportEvent{
							Kind:       ReportFitnessFailure,
							Individual: f.Individual,
							Err:        f.Err,
						})
					},
				)
				if gerr != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = gerr
					}
					mu.Unlock()
					return
				}
				islands[i] = pop
				localBests[i] = bt
				localFitness[i] = bf
			}()
		}
		wg.Wait()

		if firstErr != nil {
			return nil, Module{}, 0, firstErr
		}

		for i := range localFitness {
			if localFitness[i] < bestFitness {
				bestFitness = localFitness[i]
				bestIndividual = localBests[i]
			}
		}

		log.BestUpdate(round, bestFitness)
		resolved.ReportFn(ReportEvent{
			Kind:       ReportBest,
			Individual: bestIndividual,
			Fitness:    bestFitness,
		})

		if bestFitness == 0 {
			break
		}
	}

	log.Done(time.Since(start), bestFitness)
	return islands, bestIndividual, bestFitness, nil
}
