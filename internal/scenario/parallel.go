package scenario

import "sync"

// Run projects every scenario in Kinds. The scenarios share no state, so
// each is computed on its own goroutine; the returned order is always
// base, optimistic, pessimistic.
func Run(a Assumptions) []Projection {
	out := make([]Projection, len(Kinds))

	var wg sync.WaitGroup
	for i, k := range Kinds {
		wg.Add(1)
		go func(idx int, kind Kind) {
			defer wg.Done()
			out[idx] = Project(kind, a)
		}(i, k)
	}
	wg.Wait()

	return out
}

// RunSequential is Run without goroutines.
func RunSequential(a Assumptions) []Projection {
	out := make([]Projection, len(Kinds))
	for i, k := range Kinds {
		out[i] = Project(k, a)
	}
	return out
}

// Find returns the projection of the given kind.
func Find(ps []Projection, k Kind) (Projection, bool) {
	for _, p := range ps {
		if p.Kind == k {
			return p, true
		}
	}
	return Projection{}, false
}
