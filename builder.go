package gogp

import "math/rand"

// BuildMode selects between build_tree's two growth strategies.
type BuildMode uint8

const (
	// Grow may stop early at any level once the minimum depth is met.
	Grow BuildMode = iota
	// Fill always recurses to the maximum depth.
	Fill
)

// Build constructs a random tree bounded by depthMax, honoring depthMin
// under Grow mode. Recursive random rule-tree construction generalized
// from a fixed binary/unary boolean grammar to an arbitrary
// caller-supplied function set.
func Build(rng *rand.Rand, depthMax, depthMin int, terminals TerminalSet, functions FunctionSet, mode BuildMode) Tree {
	if depthMax == 0 {
		return RandomTerminal(rng, terminals)
	}
	if mode == Grow && depthMin <= 0 && rng.Intn(2) == 0 {
		return RandomTerminal(rng, terminals)
	}
	op := functions[rng.Intn(len(functions))]
	args := make([]Tree, op.Arity)
	for i := range args {
		args[i] = Build(rng, depthMax-1, depthMin-1, terminals, functions, mode)
	}
	return Apply(op.ID, args...)
}

// RandomTerminal picks a leaf: with probability 1/2 prefer a variable
// symbol; otherwise fall back to a
// number if any are configured, and to a variable symbol if not.
func RandomTerminal(rng *rand.Rand, terminals TerminalSet) Tree {
	useVar := rng.Intn(2) == 0 || len(terminals.Numbers) == 0
	if useVar && len(terminals.Variables) > 0 {
		sym := terminals.Variables[rng.Intn(len(terminals.Variables))]
		return Leaf(Terminal{Kind: TerminalVar, Symbol: sym})
	}
	n := terminals.Numbers[rng.Intn(len(terminals.Numbers))]
	return Leaf(Terminal{Kind: TerminalNumber, Number: n})
}

func randomDepth(rng *rand.Rand, mutationDepth int) int {
	if mutationDepth < 1 {
		return 0
	}
	return 1 + rng.Intn(mutationDepth)
}

func randomBuildMode(rng *rand.Rand) BuildMode {
	if rng.Intn(2) == 0 {
		return Grow
	}
	return Fill
}

// seedTree builds one ramped half-and-half individual body.
func seedTree(rng *rand.Rand, mutationDepth int, terminals TerminalSet, functions FunctionSet) Tree {
	d := randomDepth(rng, mutationDepth)
	return Build(rng, d, d, terminals, functions, randomBuildMode(rng))
}

// NewPopulation seeds size individuals via ramped half-and-half: each
// individual draws its own depth uniformly in [1, mutationDepth] and its
// own Grow/Fill coin, then (when adfCount or adlCount is positive) is
// wrapped into a let-envelope by CreateModuleTree.
func NewPopulation(rng *rand.Rand, size, mutationDepth int, terminals TerminalSet, functions FunctionSet, adfCount, adfArity, adlCount, adlLimit int) []Module {
	pop := make([]Module, size)
	for i := range pop {
		pop[i] = CreateModuleTree(rng, mutationDepth, terminals, functions, adfCount, adfArity, adlCount, adlLimit)
	}
	return pop
}

// CreateModuleTree implements create_module_tree: when adfCount and
// adlCount are both 0 it returns the identity wrapper around a freshly
// grown tree. Otherwise it synthesizes adfCount function branches named
// "adf<i>" (parameter vectors arg0..argN-1, bodies grown over terminals
// augmented by the parameters and functions augmented by references to
// lower-indexed ADFs only, so the branch-call graph stays acyclic),
// adlCount loop branches named "adl<i>" (four body trees plus adlLimit),
// and a result body grown over the original terminals augmented by the
// ADL result symbols and the original functions augmented by references
// to every ADF branch.
func CreateModuleTree(rng *rand.Rand, mutationDepth int, terminals TerminalSet, functions FunctionSet, adfCount, adfArity, adlCount, adlLimit int) Module {
	if adfCount == 0 && adlCount == 0 {
		return identityModule(seedTree(rng, mutationDepth, terminals, functions))
	}

	branches := make([]Branch, 0, adfCount+adlCount)
	callableADFs := FunctionSet{}

	for i := 0; i < adfCount; i++ {
		name := OperatorID("adf" + itoa(i))
		params := make([]string, adfArity)
		for j := range params {
			params[j] = "arg" + itoa(j)
		}
		bodyTerms := terminals.With(params...)
		bodyFuncs := functions.With(callableADFs...)
		body := seedTree(rng, mutationDepth, bodyTerms, bodyFuncs)
		branches = append(branches, Branch{
			Kind:   BranchADF,
			Name:   name,
			Params: params,
			Body:   body,
		})
		// adf_i becomes callable from adf_j for j > i only: append after
		// building this branch's own body.
		callableADFs = callableADFs.With(Operator{ID: name, Arity: adfArity})
	}

	adlResultSymbols := make([]string, 0, adlCount)
	for i := 0; i < adlCount; i++ {
		name := OperatorID("adl" + itoa(i))
		var bodies [4]Tree
		for b := range bodies {
			bodies[b] = seedTree(rng, mutationDepth, terminals, functions)
		}
		branches = append(branches, Branch{
			Kind:   BranchADL,
			Name:   name,
			Bodies: bodies,
			Limit:  adlLimit,
		})
		adlResultSymbols = append(adlResultSymbols, string(name))
	}

	resultTerms := terminals.With(adlResultSymbols...)
	resultFuncs := functions.With(callableADFs...)
	result := seedTree(rng, mutationDepth, resultTerms, resultFuncs)

	return Module{Branches: branches, Result: result}
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}
