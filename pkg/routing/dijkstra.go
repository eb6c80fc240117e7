// Package routing implements the shortest-path algorithm family: plain
// Dijkstra and its SingleDestination/LocalSteps/LocalDistance variants,
// DescendantsCount, BidirectionalDijkstra, SpatialAStar, and the Engine
// query façade that unifies them.
package routing

import (
	"context"
	"math"

	"transitch/pkg/network"
)

// AdjacencyProvider abstracts over Network and RemovableNetwork adjacency
// lookups so a search never needs to know which one it's running against —
// Contraction Hierarchies hands it a RemovableNetwork mid-preprocessing and
// an upward/downward overlay view once built; plain queries hand it a
// Network directly.
type AdjacencyProvider interface {
	AdjOut(id int64) []network.Edge
}

// contextCheckMask bounds how often Run checks ctx for cancellation: every
// 256 loop iterations (heap pops, stale ones included), matching the bitmask trick used for the CH query's hot
// loop, where checking every iteration would be a measurable fraction of
// runtime.
const contextCheckMask = 0xFF

// Dijkstra is the base single-source shortest-path search. Its behavior is
// customized via the IsTerminated and UpdatePerIteration hooks; the
// SingleDestination/LocalSteps/LocalDistance constructors set them up as
// closures over local state — composition standing in for the reference
// implementation's subclass-per-variant hierarchy.
type Dijkstra struct {
	Net AdjacencyProvider
	Src int64

	// IsTerminated, if set, is evaluated against the node about to be
	// settled (and its finalized distance) before its neighbors are
	// relaxed; returning true stops the search early.
	IsTerminated func(node int64, dist float64) bool
	// UpdatePerIteration, if set, runs once per node actually settled,
	// after IsTerminated allows it through.
	UpdatePerIteration func(node int64, dist float64)

	dist        map[int64]float64
	par         map[int64]network.Edge
	searchSpace int
	done        bool
}

// NewDijkstra returns a Dijkstra search rooted at src. Call Run (or
// RunContext) before reading results.
func NewDijkstra(net AdjacencyProvider, src int64) *Dijkstra {
	return &Dijkstra{
		Net:  net,
		Src:  src,
		dist: map[int64]float64{src: 0},
		par:  make(map[int64]network.Edge),
	}
}

// Run executes the search to completion (or until IsTerminated fires).
// Idempotent: a second call is a no-op.
func (d *Dijkstra) Run() {
	_ = d.RunContext(context.Background())
}

// RunContext is Run with cooperative cancellation: ctx is checked every
// contextCheckMask+1 heap pops. On cancellation the search stops with
// whatever partial tree it had built and returns ctx.Err().
func (d *Dijkstra) RunContext(ctx context.Context) error {
	if d.done {
		return nil
	}
	d.done = true

	h := &minHeap{}
	h.Push(d.Src, 0)

	iter := 0
	for h.Len() > 0 {
		iter++
		if iter&contextCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		top, _ := h.Pop()
		u, distU := top.node, top.dist
		if cur, ok := d.dist[u]; !ok || distU != cur {
			continue // stale pop, a cheaper path to u was already found
		}
		if d.IsTerminated != nil && d.IsTerminated(u, distU) {
			break
		}
		d.searchSpace++
		if d.UpdatePerIteration != nil {
			d.UpdatePerIteration(u, distU)
		}

		for _, e := range d.Net.AdjOut(u) {
			v := e.Dest()
			nd := distU + e.Weight()
			if cur, ok := d.dist[v]; !ok || nd < cur {
				d.dist[v] = nd
				d.par[v] = e
				h.Push(v, nd)
			}
		}
	}
	return nil
}

// Dist returns the shortest distance found to node, or +Inf if node was
// never reached.
func (d *Dijkstra) Dist(node int64) float64 {
	if v, ok := d.dist[node]; ok {
		return v
	}
	return math.Inf(1)
}

// Dists returns the full settled-distance map. The caller must not mutate
// it.
func (d *Dijkstra) Dists() map[int64]float64 { return d.dist }

// Par returns the edge used to reach node on its shortest path, if any.
func (d *Dijkstra) Par(node int64) (network.Edge, bool) {
	e, ok := d.par[node]
	return e, ok
}

// SearchSpace returns how many nodes were actually settled.
func (d *Dijkstra) SearchSpace() int { return d.searchSpace }

// ReversePathFrom walks the shortest-path tree from dest back to Src,
// yielding edges in dest-to-source order. Returns nil if dest is
// unreachable.
func (d *Dijkstra) ReversePathFrom(dest int64) []network.Edge {
	var edges []network.Edge
	cur := dest
	for cur != d.Src {
		e, ok := d.par[cur]
		if !ok {
			return nil
		}
		edges = append(edges, e)
		cur = e.Src()
	}
	return edges
}

// PathTo returns the shortest path from Src to dest in traversal order.
// Returns nil if dest is unreachable.
func (d *Dijkstra) PathTo(dest int64) []network.Edge {
	rev := d.ReversePathFrom(dest)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
