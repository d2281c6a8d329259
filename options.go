package gogp

// Report is invoked once per migration round with the current global-best
// tree and its fitness, plus once per tree whose fitness callback failed
// during that round (at most once per offending tree per round).
type Report func(event ReportEvent)

// ReportEventKind discriminates the two shapes a Report callback can see.
type ReportEventKind uint8

const (
	// ReportBest marks the once-per-migration-round global-best update.
	ReportBest ReportEventKind = iota
	// ReportFitnessFailure marks a caller fitness callback failure for a
	// specific tree, surfaced at most once per offending tree per round.
	ReportFitnessFailure
)

// ReportEvent is the payload handed to a Report callback.
type ReportEvent struct {
	Kind       ReportEventKind
	Individual Module
	Fitness    float64 // valid when Kind == ReportBest
	Err        error   // valid when Kind == ReportFitnessFailure
}

// Fitness scores a candidate individual. It must return a finite,
// non-negative real; zero means perfect. It must be safe to call
// concurrently: islands run their generation loops in parallel and each
// may invoke Fitness. When adf_count and adl_count are both 0, Individual
// carries an empty Branches slice and Individual.Result is the whole
// program; a fitness function that only cares about the plain-tree case
// can ignore Branches entirely.
type Fitness func(individual Module) (float64, error)

// Options configures a run. Required fields have no usable zero value and
// must be set by the caller; the rest default per ResolveOptions.
type Options struct {
	Iterations     int
	Migrations     int
	NumIslands     int
	PopulationSize int

	TournamentSize int
	MaxDepth       int

	// MutationProbability, MutationDepth, ADFArity, and ADLLimit are
	// pointers because their defaults (0.1, 6, 1, 25) are not the zero
	// value of their type: a caller that deliberately passes 0 (e.g.
	// mutation_probability = 0, the null-mutation scenario) must get
	// back exactly 0, not the default. A nil pointer means "use the
	// default"; ResolveOptions fills it in.
	MutationProbability *float64
	MutationDepth       *int
	ADFArity            *int
	ADLLimit            *int

	Terminals []string
	Numbers   []float64
	Functions FunctionSet

	FitnessFn Fitness
	ReportFn  Report

	ADFCount int
	ADLCount int

	// Seed, if non-zero, makes island random-source assignment
	// reproducible across runs. Zero means "implementation-chosen".
	Seed int64

	// Verbose turns on the secondary logx diagnostic channel (migration
	// rounds, global-best updates, fitness-callback failures) alongside
	// whatever ReportFn already does. Setting GOGP_LOG in the
	// environment has the same effect without touching Options.
	Verbose bool
}

const (
	defaultTournamentSize      = 3
	defaultMutationProbability = 0.1
	defaultMutationDepth       = 6
	defaultADFArity            = 1
	defaultADLLimit            = 25
)

// ResolveOptions validates opts and returns a copy with defaults applied.
// The original opts is never mutated.
func ResolveOptions(opts Options) (Options, error) {
	out := opts

	if out.Iterations < 1 {
		return Options{}, invalidConfig("iterations", "must be >= 1")
	}
	if out.Migrations < 1 {
		return Options{}, invalidConfig("migrations", "must be >= 1")
	}
	if out.NumIslands < 1 {
		return Options{}, invalidConfig("num_islands", "must be >= 1")
	}
	if out.PopulationSize < 1 {
		return Options{}, invalidConfig("population_size", "must be >= 1")
	}

	if out.TournamentSize == 0 {
		out.TournamentSize = defaultTournamentSize
	}
	if out.TournamentSize < 1 {
		return Options{}, invalidConfig("tournament_size", "must be >= 1")
	}

	if out.MutationProbability == nil {
		p := defaultMutationProbability
		out.MutationProbability = &p
	}
	if *out.MutationProbability < 0 || *out.MutationProbability > 1 {
		return Options{}, invalidConfig("mutation_probability", "must be in [0, 1]")
	}

	if out.MutationDepth == nil {
		d := defaultMutationDepth
		out.MutationDepth = &d
	}
	if *out.MutationDepth < 0 {
		return Options{}, invalidConfig("mutation_depth", "must be >= 0")
	}

	if out.MaxDepth < 0 {
		return Options{}, invalidConfig("max_depth", "must be >= 0")
	}

	if out.FitnessFn == nil {
		return Options{}, invalidConfig("fitness", "must be non-nil")
	}
	if out.ReportFn == nil {
		return Options{}, invalidConfig("report", "must be non-nil")
	}

	if len(out.Functions) == 0 && out.MaxDepth > 0 {
		return Options{}, invalidConfig("functions", "must be non-empty when max_depth > 0")
	}
	if len(out.Terminals) == 0 && len(out.Numbers) == 0 {
		return Options{}, invalidConfig("terminals", "terminals and numbers must not both be empty")
	}

	if out.ADFCount < 0 {
		return Options{}, invalidConfig("adf_count", "must be >= 0")
	}
	if out.ADFArity == nil {
		a := defaultADFArity
		out.ADFArity = &a
	}
	if *out.ADFArity < 0 {
		return Options{}, invalidConfig("adf_arity", "must be >= 0")
	}
	if out.ADLCount < 0 {
		return Options{}, invalidConfig("adl_count", "must be >= 0")
	}
	if out.ADLLimit == nil {
		l := defaultADLLimit
		out.ADLLimit = &l
	}
	if *out.ADLLimit < 0 {
		return Options{}, invalidConfig("adl_limit", "must be >= 0")
	}

	return out, nil
}

// terminalSet projects the public Terminals/Numbers fields into the
// internal TerminalSet shape used by the builder and variation code.
func (o Options) terminalSet() TerminalSet {
	return TerminalSet{Variables: o.Terminals, Numbers: o.Numbers}
}
