// Package gridsearch is a small toolkit for grid puzzles: an immutable
// generic Grid, search states that carry a heading and run length, BFS and
// Dijkstra drivers parameterized by a transition function, and the
// strategies built on them (turn-constrained crucible paths, pipe loops,
// light beams, flood-fill region classification).
//
// Searches are pure. They hold no shared state, so independent searches
// may run in parallel; see ParallelReduce.
package gridsearch
