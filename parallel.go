package gridsearch

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// workerCount clamps workers to [1, n]. Zero or negative means GOMAXPROCS.
func workerCount(workers, n int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return max(1, min(workers, n))
}

// ParallelMap applies f to every element of in on at most workers
// goroutines. Results keep the order of in. The first error wins.
func ParallelMap[I, O any](in []I, workers int, f func(I) (O, error)) ([]O, error) {
	out := make([]O, len(in))
	var g errgroup.Group
	g.SetLimit(workerCount(workers, len(in)))
	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			o, err := f(v)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParallelReduce applies f to every element of in on at most workers
// goroutines and folds each result into a single accumulator under a
// lock. reduce sees results in completion order, so it must be
// commutative and associative.
func ParallelReduce[I, O, R any](in []I, workers int, f func(I) (O, error), reduce func(R, O) R, init R) (R, error) {
	var (
		mu  sync.Mutex
		acc = init
		g   errgroup.Group
	)
	g.SetLimit(workerCount(workers, len(in)))
	for _, v := range in {
		v := v
		g.Go(func() error {
			o, err := f(v)
			if err != nil {
				return err
			}
			mu.Lock()
			acc = reduce(acc, o)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var zero R
		return zero, err
	}
	return acc, nil
}
