package gogp

import "math/rand"

// RandomSubtree performs a random descending walk: if
// t is a leaf, has a single child, or n has reached 0, t itself is
// returned; otherwise it recurses into a uniformly chosen child with a
// fresh bound drawn from [0, n). The walk is deliberately biased toward
// shallow cuts (including the root) — this is the documented GP-effective
// default, not a uniform-over-nodes sampler.
func RandomSubtree(rng *rand.Rand, t Tree, n int) Tree {
	if t.IsLeaf() || len(t.Args) == 1 || n == 0 {
		return t
	}
	child := t.Args[rng.Intn(len(t.Args))]
	return RandomSubtree(rng, child, rng.Intn(n))
}

// RandomSubtreeFrom draws the walk's initial bound from [0, height(t)]
// before delegating to RandomSubtree, matching the zero-argument call
// form of rand_subtree.
func RandomSubtreeFrom(rng *rand.Rand, t Tree) Tree {
	h := Height(t)
	return RandomSubtree(rng, t, rng.Intn(h+1))
}

// ReplaceSubtree reconstructs t along the same random descending path
// RandomSubtree would take and splices s in at the first stopping point.
// When recursing past an application node it picks a uniformly random
// child index and keeps every sibling untouched.
func ReplaceSubtree(rng *rand.Rand, t Tree, s Tree, n int) Tree {
	if t.IsLeaf() || len(t.Args) == 1 || n == 0 {
		return s
	}
	r := rng.Intn(len(t.Args))
	args := make([]Tree, len(t.Args))
	copy(args, t.Args)
	args[r] = ReplaceSubtree(rng, t.Args[r], s, rng.Intn(n))
	return Apply(t.Op, args...)
}

// ReplaceSubtreeFrom draws the walk's initial bound from [0, height(t)]
// before delegating to ReplaceSubtree.
func ReplaceSubtreeFrom(rng *rand.Rand, t Tree, s Tree) Tree {
	h := Height(t)
	return ReplaceSubtree(rng, t, s, rng.Intn(h+1))
}

// Truncate repeatedly replaces t with a random sub-tree of itself while
// its height exceeds maxHeight. Leaves are always height 0, so a leaf
// never enters the loop. Application nodes of arity 1 are never
// descended into by RandomSubtree (the single-child stop condition), so
// they are unwrapped directly. Every other node has a genuine chance of
// shrinking on any given draw (RandomSubtree's initial bound is drawn
// fresh from [0, height(t)]); a draw of 0 leaves t unchanged and must be
// retried rather than treated as a dead end, or truncation could return
// early with height(t) still above maxHeight.
func Truncate(rng *rand.Rand, t Tree, maxHeight int) Tree {
	for Height(t) > maxHeight {
		if len(t.Args) == 1 {
			t = t.Args[0]
			continue
		}
		sub := RandomSubtreeFrom(rng, t)
		if Equal(sub, t) {
			continue
		}
		t = sub
	}
	return t
}

// TruncateModule truncates every branch body and the result body
// independently, leaving the envelope (branch count, names, parameter
// vectors, ADL limits) untouched.
func TruncateModule(rng *rand.Rand, m Module, maxHeight int) Module {
	out := m.Clone()
	out.Result = Truncate(rng, out.Result, maxHeight)
	for i := range out.Branches {
		br := &out.Branches[i]
		if br.Kind == BranchADF {
			br.Body = Truncate(rng, br.Body, maxHeight)
		} else {
			for b := range br.Bodies {
				br.Bodies[b] = Truncate(rng, br.Bodies[b], maxHeight)
			}
		}
	}
	return out
}
