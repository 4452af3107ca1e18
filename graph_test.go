package gridsearch_test

import (
	"testing"

	"github.com/maisem/gridsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corridor = `
#.###
#...#
###.#
`

func TestGridGraphCollapse(t *testing.T) {
	g := runes(t, corridor)
	graph := gridsearch.GridGraph(g, func(r rune) bool { return r != '#' })
	start, end := gridsearch.Coord{Row: 0, Col: 1}, gridsearch.Coord{Row: 2, Col: 3}

	assert.Len(t, graph.Nodes, 5)
	assert.Len(t, graph.Reachable(start), 5)
	assert.Len(t, graph.Neighbors(gridsearch.Coord{Row: 1, Col: 2}), 2)

	collapsed := graph.Clone()
	collapsed.Collapse(func(c gridsearch.Coord) bool { return c == start || c == end })
	assert.Equal(t, []gridsearch.Coord{start, end}, collapsed.SortedNodes(gridsearch.Coord.Compare))
	assert.Equal(t, gridsearch.Cost(4), collapsed.Edges[start][end])
	// Collapsing the clone leaves graph intact.
	assert.Len(t, graph.Nodes, 5)

	res, err := gridsearch.Dijkstra([]gridsearch.Coord{start}, collapsed.Neighbors)
	require.NoError(t, err)
	d, err := res.Distance(end)
	require.NoError(t, err)
	assert.Equal(t, gridsearch.Cost(4), d)
}

func TestCollapseKeepsShorterEdge(t *testing.T) {
	var g gridsearch.Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 1)
	g.AddEdge("a", "c", 5)
	keep := func(k string) bool { return k != "b" }
	g.Collapse(keep)
	assert.NotContains(t, g.Nodes, "b")
	assert.Equal(t, gridsearch.Cost(2), g.Edges["a"]["c"])

	var h gridsearch.Graph[string]
	h.AddEdge("a", "b", 1)
	h.AddEdge("b", "c", 1)
	h.AddEdge("a", "c", 1)
	h.Collapse(keep)
	assert.Equal(t, gridsearch.Cost(1), h.Edges["a"]["c"])
	assert.Equal(t, gridsearch.Cost(1), h.Edges["c"]["a"])
}

func TestGraphRemove(t *testing.T) {
	var g gridsearch.Graph[int]
	g.AddEdge(1, 2, 3)
	g.AddEdge(2, 3, 4)
	g.RemoveEdge(1, 2)
	assert.Len(t, g.Reachable(1), 1)
	assert.Len(t, g.Reachable(2), 2)
	g.RemoveNode(3)
	assert.Empty(t, g.Edges[2])
	assert.NotContains(t, g.Nodes, 3)
}
