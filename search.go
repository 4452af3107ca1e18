package gridsearch

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// Cost is an accumulated path cost. BFS counts hops; Dijkstra sums edge
// weights.
type Cost = uint64

// Edge is a weighted transition to another state.
type Edge[S comparable] struct {
	To   S
	Cost Cost
}

// Option configures a BFS or Dijkstra search.
type Option[S comparable] func(*options[S])

type options[S comparable] struct {
	accept     func(from, to S) bool
	limit      Cost
	limited    bool
	preds      bool
	onFinalize func(S, Cost)
	stop       func(S, Cost) bool
	err        error
}

func (o *options[S]) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// WithAccept filters transitions. A neighbor is only considered if
// accept(from, to) is true. Use it when connectivity depends on the
// contents of both endpoints.
func WithAccept[S comparable](accept func(from, to S) bool) Option[S] {
	return func(o *options[S]) {
		if accept == nil {
			o.fail(fmt.Errorf("%w: WithAccept(nil)", ErrOptionViolation))
			return
		}
		o.accept = accept
	}
}

// WithMaxDepth limits the search to states whose distance is at most d.
// States at exactly d are recorded but not expanded. A negative d is
// reported by the search call as ErrOptionViolation.
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *options[S]) {
		if d < 0 {
			o.fail(fmt.Errorf("%w: WithMaxDepth(%d): must be >= 0", ErrOptionViolation, d))
			return
		}
		o.limit = Cost(d)
		o.limited = true
	}
}

// WithPredecessors records the predecessor of every finalized state in
// Result.Prev so paths can be rebuilt with PathTo.
func WithPredecessors[S comparable]() Option[S] {
	return func(o *options[S]) { o.preds = true }
}

// WithOnFinalize calls f each time a state's distance becomes final.
func WithOnFinalize[S comparable](f func(S, Cost)) Option[S] {
	return func(o *options[S]) { o.onFinalize = f }
}

// WithStop ends the search right after a state for which stop returns
// true is finalized. That state is recorded.
func WithStop[S comparable](stop func(S, Cost) bool) Option[S] {
	return func(o *options[S]) { o.stop = stop }
}

// Result holds the outcome of a search. Unreached states are absent from
// Dist.
type Result[S comparable] struct {
	// Dist maps every finalized state to its distance from the nearest
	// source.
	Dist map[S]Cost
	// Prev maps every finalized non-source state to the state it was
	// reached from. It is nil unless WithPredecessors was given.
	Prev map[S]S
	// Order lists states in finalization order. Distances along Order
	// never decrease.
	Order []S
	// Stopped reports whether a WithStop predicate ended the search. The
	// state that stopped it is the last element of Order.
	Stopped bool
}

// Reached reports whether s was finalized.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Dist[s]
	return ok
}

// Distance returns the distance to s, or ErrUnreachable.
func (r *Result[S]) Distance(s S) (Cost, error) {
	d, ok := r.Dist[s]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnreachable, s)
	}
	return d, nil
}

// Max returns the first finalized state with the largest distance.
func (r *Result[S]) Max() (S, Cost, bool) {
	var (
		best  S
		bestD Cost
		found bool
	)
	for _, s := range r.Order {
		if d := r.Dist[s]; !found || d > bestD {
			best, bestD, found = s, d, true
		}
	}
	return best, bestD, found
}

// Sum returns the sum of all finalized distances.
func (r *Result[S]) Sum() Cost {
	return Sum(maps.Values(r.Dist)...)
}

// Count returns the number of finalized states.
func (r *Result[S]) Count() int {
	return len(r.Dist)
}

// MinWhere returns the closest finalized state matching pred. Ties go to
// the state finalized first.
func (r *Result[S]) MinWhere(pred func(S) bool) (S, Cost, error) {
	for _, s := range r.Order {
		if pred(s) {
			return s, r.Dist[s], nil
		}
	}
	var zero S
	return zero, 0, ErrUnreachable
}

// States returns the finalized states sorted by cmp.
func (r *Result[S]) States(cmp func(a, b S) int) []S {
	out := maps.Keys(r.Dist)
	slices.SortFunc(out, cmp)
	return out
}

// Hash fingerprints the distance map. Two searches that finalize the same
// states at the same distances hash equal.
func (r *Result[S]) Hash() deephash.Sum {
	return deephash.Hash(&r.Dist)
}

// frontier carries the bookkeeping shared by BFS and Dijkstra.
type frontier[S comparable] struct {
	opts   options[S]
	parent map[S]S
	res    *Result[S]
}

func newFrontier[S comparable](sources []S, opts []Option[S]) (*frontier[S], error) {
	var o options[S]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	f := &frontier[S]{
		opts: o,
		res:  &Result[S]{Dist: make(map[S]Cost)},
	}
	if o.preds {
		f.parent = make(map[S]S)
		f.res.Prev = make(map[S]S)
	}
	return f, nil
}

func (f *frontier[S]) accept(from, to S) bool {
	return f.opts.accept == nil || f.opts.accept(from, to)
}

// within reports whether a state at distance d may be recorded.
func (f *frontier[S]) within(d Cost) bool {
	return !f.opts.limited || d <= f.opts.limit
}

// expands reports whether a state at distance d may have successors.
func (f *frontier[S]) expands(d Cost) bool {
	return !f.opts.limited || d < f.opts.limit
}

func (f *frontier[S]) link(to, from S) {
	if f.parent != nil {
		f.parent[to] = from
	}
}

// finalize records s at distance d and reports whether the search should
// stop.
func (f *frontier[S]) finalize(s S, d Cost) bool {
	f.res.Dist[s] = d
	f.res.Order = append(f.res.Order, s)
	if f.parent != nil {
		if p, ok := f.parent[s]; ok {
			f.res.Prev[s] = p
		}
	}
	if f.opts.onFinalize != nil {
		f.opts.onFinalize(s, d)
	}
	if f.opts.stop != nil && f.opts.stop(s, d) {
		f.res.Stopped = true
		return true
	}
	return false
}

// BFS runs a breadth-first search from every source at distance zero.
// Each state is enqueued at most once and every transition costs one hop.
func BFS[S comparable](sources []S, next func(S) []S, opts ...Option[S]) (*Result[S], error) {
	f, err := newFrontier(sources, opts)
	if err != nil {
		return nil, err
	}
	seen := make(map[S]Cost, len(sources))
	q := NewQueue[S]()
	for _, s := range sources {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = 0
		q.Push(s)
	}
	q.While(func(s S) bool {
		d := seen[s]
		if f.finalize(s, d) {
			return false
		}
		if !f.expands(d) {
			return true
		}
		for _, n := range next(s) {
			if _, ok := seen[n]; ok {
				continue
			}
			if !f.accept(s, n) {
				continue
			}
			seen[n] = d + 1
			f.link(n, s)
			q.Push(n)
		}
		return true
	})
	return f.res, nil
}
