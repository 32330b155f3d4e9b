// Package core defines the central Graph and View types, and provides
// thread-safe primitives for building a graph once and reading it from many
// goroutines afterwards.
//
// This file declares Position, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrEmptyVertexSet       - an operation received an empty vertex set.
//	ErrLoopNotAllowed       - self-loop in simple mode.
//	ErrMultiEdgeNotAllowed  - parallel edge in simple mode.
package core

import (
	"cmp"
	"errors"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEmptyVertexSet indicates a statistic or subgraph was requested over no vertices.
	ErrEmptyVertexSet = errors.New("core: empty vertex set")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a graph built WithSimple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted on a graph built WithSimple.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Position is the 2D coordinate attached to a vertex of a spatial graph.
type Position = r2.Vec

// Edge is one undirected edge as it was inserted.
type Edge[V cmp.Ordered] struct {
	From V
	To   V
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	simple   bool
	capacity int
}

// WithSimple rejects self-loops and parallel edges instead of recording them.
// By default both are accepted as-is.
func WithSimple() GraphOption {
	return func(o *graphOptions) { o.simple = true }
}

// WithCapacity pre-sizes the vertex tables for n vertices.
func WithCapacity(n int) GraphOption {
	return func(o *graphOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// Graph is an undirected, unweighted graph over vertices of type V.
//
// Vertices are interned to dense indices in insertion order; that order is the
// deterministic iteration order for every algorithm in this module.
// Adjacency keeps raw multiplicity: a parallel edge appears twice and a
// self-loop appends the vertex twice to its own list.
//
// mu guards every field below it. Algorithms never read a Graph directly;
// they take an immutable View once construction is finished.
type Graph[V cmp.Ordered] struct {
	mu sync.RWMutex

	simple bool

	index map[V]int           // vertex → dense index
	ids   []V                 // dense index → vertex, insertion order
	adj   [][]int             // dense index → neighbor indices (with multiplicity)
	pos   []Position          // dense index → coordinate (valid when has[i])
	has   []bool              // dense index → position present
	edges []Edge[V]           // insertion order, each undirected edge once
	nPos  int                 // number of vertices with a position
	pairs map[[2]int]struct{} // simple mode only: existing unordered pairs
}

// NewGraph creates an empty Graph. By default loops and multi-edges are
// accepted without error.
// Complexity: O(1)
func NewGraph[V cmp.Ordered](opts ...GraphOption) *Graph[V] {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph[V]{
		simple: o.simple,
		index:  make(map[V]int, o.capacity),
		ids:    make([]V, 0, o.capacity),
		adj:    make([][]int, 0, o.capacity),
		pos:    make([]Position, 0, o.capacity),
		has:    make([]bool, 0, o.capacity),
	}
	if o.simple {
		g.pairs = make(map[[2]int]struct{})
	}

	return g
}
