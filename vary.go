package gogp

import "math/rand"

// MutationFunc is the shape every mutation flavor (built-in or
// caller-registered) implements.
type MutationFunc func(rng *rand.Rand, t Tree, mutationDepth int, terminals TerminalSet, functions FunctionSet) Tree

// mutators holds the three built-in flavors (grow-a-subtree,
// point-to-terminal, lift-a-child) plus anything a caller has registered
// through RegisterMutationKind. Indexing is positional: MutateTree samples
// uniformly across whatever this slice currently holds.
var mutators = []MutationFunc{
	subtreeGrowMutation,
	pointToTerminalMutation,
	liftMutation,
}

// RegisterMutationKind appends a caller-defined mutation flavor to the
// pool MutateTree samples uniformly from. It is a supplemental extension
// point, not one of the three built-in kinds — the built-ins keep their
// original weight only as long as nothing has been registered;
// registering a new kind redistributes the uniform split across all of
// them, which a caller adding kinds should expect. Grounded on the
// teacher's mutateRuleTree dispatch-by-switch structure in evolution.go,
// generalized from a fixed case list to an open slice.
func RegisterMutationKind(f MutationFunc) {
	mutators = append(mutators, f)
}

func subtreeGrowMutation(rng *rand.Rand, t Tree, mutationDepth int, terminals TerminalSet, functions FunctionSet) Tree {
	grown := Build(rng, mutationDepth, mutationDepth, terminals, functions, Grow)
	return ReplaceSubtreeFrom(rng, t, grown)
}

func pointToTerminalMutation(rng *rand.Rand, t Tree, mutationDepth int, terminals TerminalSet, functions FunctionSet) Tree {
	return ReplaceSubtreeFrom(rng, t, RandomTerminal(rng, terminals))
}

func liftMutation(rng *rand.Rand, t Tree, mutationDepth int, terminals TerminalSet, functions FunctionSet) Tree {
	return RandomSubtreeFrom(rng, t)
}

// MutateTree applies mutate_tree: with independent probability p, picks
// one mutation kind uniformly from the registered pool and applies it;
// otherwise returns t unchanged.
func MutateTree(rng *rand.Rand, t Tree, p float64, mutationDepth int, terminals TerminalSet, functions FunctionSet) Tree {
	if rng.Float64() >= p {
		return t
	}
	return mutators[rng.Intn(len(mutators))](rng, t, mutationDepth, terminals, functions)
}

// Crossover applies crossover: t1 supplies the skeleton, a randomly
// selected sub-tree of t2 is grafted in. Strictly asymmetric; only one
// child is produced.
func Crossover(rng *rand.Rand, t1, t2 Tree) Tree {
	graft := RandomSubtreeFrom(rng, t2)
	return ReplaceSubtreeFrom(rng, t1, graft)
}

// callableADFsBefore collects the operator descriptors of every ADF
// branch at index < i, mirroring the DAG constraint CreateModuleTree
// enforces at construction time: adf_i may call adf_j only for j < i.
func callableADFsBefore(branches []Branch, i int) FunctionSet {
	var out FunctionSet
	for _, br := range branches[:i] {
		if br.Kind == BranchADF {
			out = out.With(Operator{ID: br.Name, Arity: len(br.Params)})
		}
	}
	return out
}

// callableADFsAll collects every ADF branch's operator descriptor,
// mirroring the function-set augmentation CreateModuleTree applies to the
// result body (which may call any ADF branch, not just a lower-indexed
// one).
func callableADFsAll(branches []Branch) FunctionSet {
	var out FunctionSet
	for _, br := range branches {
		if br.Kind == BranchADF {
			out = out.With(Operator{ID: br.Name, Arity: len(br.Params)})
		}
	}
	return out
}

// MutateModule applies mutate_module: with probability 1/2 (or always, if
// the branch vector is empty) it mutates the result body; otherwise it
// mutates a uniformly chosen branch's body (ADF) or all four body slots
// (ADL), leaving the branch's name, parameters, and loop limit untouched.
// Newly grown subtrees inside an ADF branch body, or inside the result
// body, may call the same ADF branches CreateModuleTree would have
// allowed them to call at construction time.
func MutateModule(rng *rand.Rand, m Module, p float64, mutationDepth int, terminals TerminalSet, functions FunctionSet) Module {
	out := m.Clone()
	if len(out.Branches) == 0 || rng.Intn(2) == 0 {
		resultTerms := terminals.With(adlResultSymbols(out.Branches)...)
		resultFuncs := functions.With(callableADFsAll(out.Branches)...)
		out.Result = MutateTree(rng, out.Result, p, mutationDepth, resultTerms, resultFuncs)
		return out
	}
	i := rng.Intn(len(out.Branches))
	br := &out.Branches[i]
	if br.Kind == BranchADF {
		bodyTerms := terminals.With(br.Params...)
		bodyFuncs := functions.With(callableADFsBefore(out.Branches, i)...)
		br.Body = MutateTree(rng, br.Body, p, mutationDepth, bodyTerms, bodyFuncs)
		return out
	}
	for b := range br.Bodies {
		br.Bodies[b] = MutateTree(rng, br.Bodies[b], p, mutationDepth, terminals, functions)
	}
	return out
}

// adlResultSymbols lists the terminal symbols the result body may
// reference for each ADL branch's loop result, matching the augmentation
// CreateModuleTree applies before growing the result body.
func adlResultSymbols(branches []Branch) []string {
	var out []string
	for _, br := range branches {
		if br.Kind == BranchADL {
			out = append(out, string(br.Name))
		}
	}
	return out
}

// CrossoverModule applies crossover_module: with probability 1/2 (or
// always, if the branch vector is empty) it crosses the result bodies;
// otherwise it swaps a single uniformly chosen branch slot, crossing the
// ADF body or each of the four ADL body slots, while retaining the first
// parent's branch identifier and (for ADL) iteration limit. Assumes m1
// and m2 share an envelope (SameEnvelope(m1, m2)), true for any two
// individuals drawn from the same island's population.
func CrossoverModule(rng *rand.Rand, m1, m2 Module) Module {
	out := m1.Clone()
	if len(out.Branches) == 0 || rng.Intn(2) == 0 {
		out.Result = Crossover(rng, out.Result, m2.Result)
		return out
	}
	i := rng.Intn(len(out.Branches))
	br := &out.Branches[i]
	donor := m2.Branches[i]
	if br.Kind == BranchADF {
		br.Body = Crossover(rng, br.Body, donor.Body)
		return out
	}
	for b := range br.Bodies {
		br.Bodies[b] = Crossover(rng, br.Bodies[b], donor.Bodies[b])
	}
	return out
}
