package gogp

import "testing"

func validOptions() Options {
	return Options{
		Iterations:     5,
		Migrations:     3,
		NumIslands:     2,
		PopulationSize: 10,
		MaxDepth:       4,
		Terminals:      []string{"x"},
		Functions:      FunctionSet{{ID: "+", Arity: 2}},
		FitnessFn:      func(Module) (float64, error) { return 0, nil },
		ReportFn:       func(ReportEvent) {},
	}
}

func TestResolveOptionsAppliesDefaults(t *testing.T) {
	resolved, err := ResolveOptions(validOptions())
	if err != nil {
		t.Fatalf("ResolveOptions returned error: %v", err)
	}
	if resolved.TournamentSize != defaultTournamentSize {
		t.Errorf("TournamentSize = %d, want default %d", resolved.TournamentSize, defaultTournamentSize)
	}
	if resolved.MutationProbability == nil || *resolved.MutationProbability != defaultMutationProbability {
		t.Errorf("MutationProbability = %v, want default %v", resolved.MutationProbability, defaultMutationProbability)
	}
	if resolved.MutationDepth == nil || *resolved.MutationDepth != defaultMutationDepth {
		t.Errorf("MutationDepth = %v, want default %v", resolved.MutationDepth, defaultMutationDepth)
	}
	if resolved.ADFArity == nil || *resolved.ADFArity != defaultADFArity {
		t.Errorf("ADFArity = %v, want default %v", resolved.ADFArity, defaultADFArity)
	}
	if resolved.ADLLimit == nil || *resolved.ADLLimit != defaultADLLimit {
		t.Errorf("ADLLimit = %v, want default %v", resolved.ADLLimit, defaultADLLimit)
	}
}

func TestResolveOptionsPreservesExplicitZeroMutationProbability(t *testing.T) {
	opts := validOptions()
	zero := 0.0
	opts.MutationProbability = &zero

	resolved, err := ResolveOptions(opts)
	if err != nil {
		t.Fatalf("ResolveOptions returned error: %v", err)
	}
	if resolved.MutationProbability == nil || *resolved.MutationProbability != 0 {
		t.Fatalf("MutationProbability = %v, want exactly 0 (explicit null-mutation request must not be overridden by the default)", resolved.MutationProbability)
	}
}

func TestResolveOptionsPreservesExplicitZeroMutationDepth(t *testing.T) {
	opts := validOptions()
	zero := 0
	opts.MutationDepth = &zero

	resolved, err := ResolveOptions(opts)
	if err != nil {
		t.Fatalf("ResolveOptions returned error: %v", err)
	}
	if resolved.MutationDepth == nil || *resolved.MutationDepth != 0 {
		t.Fatalf("MutationDepth = %v, want exactly 0", resolved.MutationDepth)
	}
}

func TestResolveOptionsDoesNotMutateInput(t *testing.T) {
	opts := validOptions()
	if opts.MutationProbability != nil {
		t.Fatal("validOptions() should leave MutationProbability nil")
	}
	if _, err := ResolveOptions(opts); err != nil {
		t.Fatalf("ResolveOptions returned error: %v", err)
	}
	if opts.MutationProbability != nil {
		t.Error("ResolveOptions mutated the caller's Options value in place")
	}
}

func TestResolveOptionsRejectsOutOfRangeMutationProbability(t *testing.T) {
	opts := validOptions()
	tooHigh := 1.5
	opts.MutationProbability = &tooHigh

	if _, err := ResolveOptions(opts); err == nil {
		t.Fatal("ResolveOptions accepted mutation_probability > 1")
	} else if _, ok := err.(*ConfigError); !ok {
		t.Errorf("error type = %T, want *ConfigError", err)
	}
}

func TestResolveOptionsRejectsMissingFitnessFn(t *testing.T) {
	opts := validOptions()
	opts.FitnessFn = nil

	if _, err := ResolveOptions(opts); err == nil {
		t.Fatal("ResolveOptions accepted a nil FitnessFn")
	}
}

func TestResolveOptionsRejectsMissingReportFn(t *testing.T) {
	opts := validOptions()
	opts.ReportFn = nil

	if _, err := ResolveOptions(opts); err == nil {
		t.Fatal("ResolveOptions accepted a nil ReportFn")
	}
}

func TestResolveOptionsRejectsZeroIterations(t *testing.T) {
	opts := validOptions()
	opts.Iterations = 0

	if _, err := ResolveOptions(opts); err == nil {
		t.Fatal("ResolveOptions accepted iterations = 0")
	}
}

func TestResolveOptionsRejectsEmptyFunctionsWithPositiveMaxDepth(t *testing.T) {
	opts := validOptions()
	opts.Functions = nil

	if _, err := ResolveOptions(opts); err == nil {
		t.Fatal("ResolveOptions accepted an empty function set with max_depth > 0")
	}
}

func TestResolveOptionsRejectsEmptyTerminalsAndNumbers(t *testing.T) {
	opts := validOptions()
	opts.Terminals = nil
	opts.Numbers = nil

	if _, err := ResolveOptions(opts); err == nil {
		t.Fatal("ResolveOptions accepted both terminals and numbers empty")
	}
}

func TestResolveOptionsAcceptsNumbersWithoutTerminals(t *testing.T) {
	opts := validOptions()
	opts.Terminals = nil
	opts.Numbers = []float64{1, 2, 3}

	if _, err := ResolveOptions(opts); err != nil {
		t.Fatalf("ResolveOptions rejected a numbers-only terminal set: %v", err)
	}
}

func TestTerminalSetProjection(t *testing.T) {
	opts := validOptions()
	opts.Numbers = []float64{1, 2}

	ts := opts.terminalSet()
	if len(ts.Variables) != 1 || ts.Variables[0] != "x" {
		t.Errorf("terminalSet().Variables = %v, want [x]", ts.Variables)
	}
	if len(ts.Numbers) != 2 {
		t.Errorf("terminalSet().Numbers = %v, want length 2", ts.Numbers)
	}
}
