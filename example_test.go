package gridsearch_test

import (
	"fmt"

	"github.com/maisem/gridsearch"
)

func ExampleBFS() {
	g, _ := gridsearch.ParseRunes([]string{
		"..#",
		".##",
		"...",
	})
	open := func(c gridsearch.Coord) []gridsearch.Coord {
		var out []gridsearch.Coord
		for _, n := range g.Neighbors4(c) {
			if g.At(n) != '#' {
				out = append(out, n)
			}
		}
		return out
	}
	res, _ := gridsearch.BFS([]gridsearch.Coord{{}}, open, gridsearch.WithPredecessors[gridsearch.Coord]())
	path, _ := res.PathTo(gridsearch.Coord{Row: 2, Col: 2})
	fmt.Println(len(path)-1, path)
	// Output: 4 [(0,0) (1,0) (2,0) (2,1) (2,2)]
}

func ExampleMinRunCost() {
	g, _ := gridsearch.ParseDigits([]string{
		"2413",
		"3215",
		"3255",
	})
	cost, _, _ := gridsearch.MinRunCost(g, gridsearch.Coord{}, gridsearch.Coord{Row: 2, Col: 3},
		func(v uint8) gridsearch.Cost { return gridsearch.Cost(v) },
		gridsearch.RunLimits{Min: 1, Max: 3})
	fmt.Println(cost)
	// Output: 16
}

func ExampleClassify() {
	g, _ := gridsearch.ParseRunes([]string{
		".....",
		".###.",
		".#.#.",
		".###.",
	})
	regions, _ := gridsearch.Classify(g, func(r rune) bool { return r == '#' })
	fmt.Println(gridsearch.Sorted(regions.Enclosed), regions.Outside.Size())
	// Output: [(2,2)] 11
}
