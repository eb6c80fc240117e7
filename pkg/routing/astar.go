package routing

import (
	"math"

	"transitch/pkg/geo"
	"transitch/pkg/network"
)

// CoordProvider lets SpatialAStar fetch a node's coordinate for its
// heuristic.
type CoordProvider interface {
	Coord(id int64) (geo.Coordinate, bool)
}

// SpatialAStar is an A* search using the Euclidean distance to Dest as its
// heuristic.
//
// Admissibility requires the heuristic never overestimate the true
// remaining cost. When edges are weighted by travel time rather than raw
// distance, unscaled Euclidean distance is only admissible if every edge's
// effective speed is at least 1 distance-unit per time-unit; set MaxSpeed
// to the network's fastest edge speed to divide the heuristic back down
// into time units and restore admissibility. Leave MaxSpeed at 0 when
// weights are already distances.
type SpatialAStar struct {
	Net      AdjacencyProvider
	Coords   CoordProvider
	Src      int64
	Dest     int64
	MaxSpeed float64

	dist  map[int64]float64
	par   map[int64]network.Edge
	done  bool
	found bool
}

// NewSpatialAStar builds an A* search between src and dest over net, using
// coords for the heuristic.
func NewSpatialAStar(net AdjacencyProvider, coords CoordProvider, src, dest int64) *SpatialAStar {
	return &SpatialAStar{
		Net: net, Coords: coords, Src: src, Dest: dest,
		dist: map[int64]float64{src: 0},
		par:  make(map[int64]network.Edge),
	}
}

func (a *SpatialAStar) heuristic(node int64) float64 {
	nc, ok1 := a.Coords.Coord(node)
	dc, ok2 := a.Coords.Coord(a.Dest)
	if !ok1 || !ok2 {
		return 0
	}
	h := geo.Distance(nc, dc)
	if a.MaxSpeed > 0 {
		return h / a.MaxSpeed
	}
	return h
}

func (a *SpatialAStar) Run() {
	if a.done {
		return
	}
	a.done = true

	h := &minHeap{}
	startF := a.heuristic(a.Src)
	h.Push(a.Src, startF)
	fScore := map[int64]float64{a.Src: startF}

	for h.Len() > 0 {
		top, _ := h.Pop()
		u := top.node
		if cur, ok := fScore[u]; !ok || top.dist != cur {
			continue
		}
		if u == a.Dest {
			a.found = true
			break
		}
		du := a.dist[u]
		for _, e := range a.Net.AdjOut(u) {
			v := e.Dest()
			nd := du + e.Weight()
			if cur, ok := a.dist[v]; !ok || nd < cur {
				a.dist[v] = nd
				a.par[v] = e
				nf := nd + a.heuristic(v)
				fScore[v] = nf
				h.Push(v, nf)
			}
		}
	}
}

// Dist returns the shortest Src-to-Dest distance found, or +Inf if
// unreachable.
func (a *SpatialAStar) Dist() float64 {
	if v, ok := a.dist[a.Dest]; ok {
		return v
	}
	return math.Inf(1)
}

// Path returns the shortest Src-to-Dest path in traversal order, or nil if
// unreachable.
func (a *SpatialAStar) Path() []network.Edge {
	var rev []network.Edge
	cur := a.Dest
	for cur != a.Src {
		e, ok := a.par[cur]
		if !ok {
			return nil
		}
		rev = append(rev, e)
		cur = e.Src()
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
