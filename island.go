package gogp

import "math/rand"

// seedSources returns n+1 independent random sources: one per island plus
// one extra for the driver's own migration draws. When master is 0 the
// stream is seeded from the process-global source, so repeated runs in
// the same process differ; a non-zero master makes every stream (and
// therefore the whole run) reproducible.
func seedSources(n int, master int64) (islandRngs []*rand.Rand, driverRng *rand.Rand) {
	src := rand.New(rand.NewSource(master))
	if master == 0 {
		src = rand.New(rand.NewSource(rand.Int63()))
	}
	islandRngs = make([]*rand.Rand, n)
	for i := range islandRngs {
		islandRngs[i] = rand.New(rand.NewSource(src.Int63()))
	}
	driverRng = rand.New(rand.NewSource(src.Int63()))
	return islandRngs, driverRng
}

// migrate implements island_crossover: each island loses one random
// individual and gains one from a different island, size preserved. The
// source island for each migrant is chosen via a random derangement so
// every island contributes exactly one migrant and receives exactly one.
func migrate(rng *rand.Rand, islands [][]Module) [][]Module {
	n := len(islands)
	perm := derangement(rng, n)

	migrants := make([]Module, n)
	for i := range migrants {
		src := islands[perm[i]]
		migrants[i] = src[rng.Intn(len(src))]
	}

	out := make([][]Module, n)
	for i, pop := range islands {
		shuffled := make([]Module, len(pop))
		copy(shuffled, pop)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		dropped := shuffled[:len(shuffled)-1]
		next := make([]Module, 0, len(pop))
		next = append(next, migrants[i])
		next = append(next, dropped...)
		out[i] = next
	}
	return out
}

// derangement returns a random permutation of [0, n) with no fixed
// points, for n >= 2. For n < 2 it returns the identity; migrate is only
// ever invoked for n > 1 by Run, but this keeps the helper total.
func derangement(rng *rand.Rand, n int) []int {
	if n < 2 {
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		return perm
	}
	for {
		perm := rng.Perm(n)
		ok := true
		for i, v := range perm {
			if i == v {
				ok = false
				break
			}
		}
		if ok {
			return perm
		}
	}
}
