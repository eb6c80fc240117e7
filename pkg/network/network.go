// Package network implements the generic weighted directed multigraph used
// throughout transitch: stops as nodes, travel-time-weighted connectors (and,
// after contraction, shortcut edges) as edges.
package network

import "errors"

// ErrInvalidInput is returned when a caller supplies malformed network data
// (bad stop ids, edges referencing unknown endpoints, malformed persisted
// JSON).
var ErrInvalidInput = errors.New("network: invalid input")

// Edge is anything that can sit in a Network's adjacency lists: an atomic
// Connector, or a Shortcut produced by contraction.
type Edge interface {
	Src() int64
	Dest() int64
	Weight() float64

	// Unpack flattens the edge into the sequence of atomic connectors it
	// represents. Atomic edges return themselves; shortcut edges flatten
	// their binary tree of children iteratively (no recursion).
	Unpack() []Edge
}

// Network is a generic weighted directed multigraph. T is the payload
// attached to each node (typically Stop).
//
// Adjacency is stored in insertion order so that tie-breaking in downstream
// algorithms is deterministic and reproducible across runs.
type Network[T any] struct {
	nodes   map[int64]T
	adjs    map[int64][]Edge
	adjsRev map[int64][]Edge
}

// New returns an empty Network.
func New[T any]() *Network[T] {
	return &Network[T]{
		nodes:   make(map[int64]T),
		adjs:    make(map[int64][]Edge),
		adjsRev: make(map[int64][]Edge),
	}
}

// AddNode registers a node's payload. Safe to call more than once per id;
// the latest payload wins.
func (n *Network[T]) AddNode(id int64, data T) {
	n.nodes[id] = data
	if _, ok := n.adjs[id]; !ok {
		n.adjs[id] = nil
	}
	if _, ok := n.adjsRev[id]; !ok {
		n.adjsRev[id] = nil
	}
}

// AddEdge inserts e into both the forward and reverse adjacency lists. Nodes
// referenced by e need not already exist; adjacency auto-vivifies.
func (n *Network[T]) AddEdge(e Edge) {
	n.adjs[e.Src()] = append(n.adjs[e.Src()], e)
	n.adjsRev[e.Dest()] = append(n.adjsRev[e.Dest()], e)
}

// Node returns a node's payload.
func (n *Network[T]) Node(id int64) (T, bool) {
	v, ok := n.nodes[id]
	return v, ok
}

// NodeIDs returns every node id with a registered payload, in no particular
// order.
func (n *Network[T]) NodeIDs() []int64 {
	ids := make([]int64, 0, len(n.nodes))
	for id := range n.nodes {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of nodes with a registered payload.
func (n *Network[T]) Len() int { return len(n.nodes) }

// AdjOut returns the outgoing edges of id, in insertion order. The returned
// slice must not be mutated by the caller.
func (n *Network[T]) AdjOut(id int64) []Edge { return n.adjs[id] }

// AdjIn returns the incoming edges of id, in insertion order. The returned
// slice must not be mutated by the caller.
func (n *Network[T]) AdjIn(id int64) []Edge { return n.adjsRev[id] }

// Degree returns the out-degree of id.
func (n *Network[T]) Degree(id int64) int { return len(n.adjs[id]) }

// DegreeRev returns the in-degree of id.
func (n *Network[T]) DegreeRev(id int64) int { return len(n.adjsRev[id]) }

// Reverse returns a view of n with forward and backward adjacency swapped.
// It shares n's underlying adjacency maps; mutating one mutates the other's
// view of the same edges (but see ShallowCopy for a copy with independent
// adjacency).
func (n *Network[T]) Reverse() *Network[T] {
	return &Network[T]{nodes: n.nodes, adjs: n.adjsRev, adjsRev: n.adjs}
}

// ShallowCopy returns a Network with independent adjacency slices (so
// appends to the copy never affect n) but sharing the same node payload map.
func (n *Network[T]) ShallowCopy() *Network[T] {
	cp := &Network[T]{
		nodes:   n.nodes,
		adjs:    make(map[int64][]Edge, len(n.adjs)),
		adjsRev: make(map[int64][]Edge, len(n.adjsRev)),
	}
	for k, v := range n.adjs {
		cp.adjs[k] = append([]Edge(nil), v...)
	}
	for k, v := range n.adjsRev {
		cp.adjsRev[k] = append([]Edge(nil), v...)
	}
	return cp
}
