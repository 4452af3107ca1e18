package gridsearch

// Dijkstra computes minimum accumulated cost from the sources to every
// reachable state. Edge costs must be non-negative.
//
// Decrease-key is lazy: an improved relaxation pushes a new queue entry,
// and a popped entry whose cost is above the best known for its state is
// skipped as stale.
func Dijkstra[S comparable](sources []S, next func(S) []Edge[S], opts ...Option[S]) (*Result[S], error) {
	f, err := newFrontier(sources, opts)
	if err != nil {
		return nil, err
	}
	best := make(map[S]Cost, len(sources))
	done := make(map[S]bool)
	var pq PQ[S, Cost]
	for _, s := range sources {
		if _, ok := best[s]; ok {
			continue
		}
		best[s] = 0
		pq.Push(s, 0)
	}
	for pq.Len() > 0 {
		s, d, _ := pq.Pop()
		if done[s] || d > best[s] {
			continue
		}
		done[s] = true
		if f.finalize(s, d) {
			break
		}
		if !f.expands(d) {
			continue
		}
		for _, e := range next(s) {
			if done[e.To] || !f.accept(s, e.To) {
				continue
			}
			nd := d + e.Cost
			if !f.within(nd) {
				continue
			}
			if b, ok := best[e.To]; ok && b <= nd {
				continue
			}
			best[e.To] = nd
			f.link(e.To, s)
			pq.Push(e.To, nd)
		}
	}
	return f.res, nil
}
