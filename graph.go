package gridsearch

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Graph is an undirected weighted graph with explicit nodes. The zero
// value is an empty graph ready to use.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]Cost
}

func initMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// Clone returns a deep copy of g.
func (g *Graph[K]) Clone() *Graph[K] {
	out := &Graph[K]{
		Nodes: maps.Clone(g.Nodes),
		Edges: make(map[K]map[K]Cost, len(g.Edges)),
	}
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return out
}

func (g *Graph[K]) AddNode(a K) {
	initMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge joins a and b with an edge of the given cost, replacing any
// existing edge between them.
func (g *Graph[K]) AddEdge(a, b K, cost Cost) {
	initMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]Cost)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]Cost)
	}
	g.Edges[a][b] = cost
	g.Edges[b][a] = cost
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

func (g *Graph[K]) RemoveNode(a K) {
	for e := range g.Edges[a] {
		delete(g.Edges[e], a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// Neighbors returns the edges leaving a. It has the shape Dijkstra
// expects for its transition function.
func (g *Graph[K]) Neighbors(a K) []Edge[K] {
	out := make([]Edge[K], 0, len(g.Edges[a]))
	for k, c := range g.Edges[a] {
		out = append(out, Edge[K]{To: k, Cost: c})
	}
	return out
}

// Reachable returns the nodes connected to a, including a.
func (g *Graph[K]) Reachable(a K) map[K]bool {
	res, err := BFS([]K{a}, func(k K) []K { return maps.Keys(g.Edges[k]) })
	if err != nil {
		return nil
	}
	out := make(map[K]bool, res.Count())
	for k := range res.Dist {
		out[k] = true
	}
	return out
}

// Collapse removes every node with exactly two edges that keep does not
// protect, joining its neighbors with one edge carrying the summed cost.
// A shorter existing edge between the neighbors is kept.
func (g *Graph[K]) Collapse(keep func(K) bool) {
	for {
		trimmed := false
		for _, k := range maps.Keys(g.Nodes) {
			e := g.Edges[k]
			if len(e) != 2 || (keep != nil && keep(k)) {
				continue
			}
			ends := maps.Keys(e)
			a, b := ends[0], ends[1]
			cost := e[a] + e[b]
			g.RemoveNode(k)
			trimmed = true
			if old, ok := g.Edges[a][b]; ok && old <= cost {
				continue
			}
			g.AddEdge(a, b, cost)
		}
		if !trimmed {
			return
		}
	}
}

// GridGraph builds the 4-connected graph of the open cells of g with unit
// edge costs.
func GridGraph[T any](g *Grid[T], open func(T) bool) *Graph[Coord] {
	var out Graph[Coord]
	g.Each(func(c Coord, v T) {
		if !open(v) {
			return
		}
		out.AddNode(c)
		for _, d := range []Direction{Right, Down} {
			if n, ok := g.Step(c, d); ok && open(g.At(n)) {
				out.AddEdge(c, n, 1)
			}
		}
	})
	return &out
}

// SortedNodes returns the nodes of g ordered by cmp.
func (g *Graph[K]) SortedNodes(cmp func(a, b K) int) []K {
	out := maps.Keys(g.Nodes)
	slices.SortFunc(out, cmp)
	return out
}
