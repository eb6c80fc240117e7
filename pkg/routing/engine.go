package routing

import (
	"context"
	"errors"
	"sync"

	"transitch/pkg/geo"
	"transitch/pkg/network"
)

// ErrNotFound is returned when a query names a stop absent from the
// network.
var ErrNotFound = errors.New("routing: stop not found in network")

// PathFinder is the common shape the point-to-point searches (and pkg/ch's
// contracted Query) expose once run: a total distance and the edges making
// up the shortest path. It is the "Q" query façade's contract, not a type
// any single algorithm needs to implement through embedding —
// BidirectionalDijkstra, SpatialAStar, and ch.Query all satisfy it
// structurally. Dijkstra does not: it is single-source, so its Dist and
// PathTo take the destination as an argument.
type PathFinder interface {
	Dist() float64
	Path() []network.Edge
}

// Algorithm selects which search Engine.Path runs.
type Algorithm int

const (
	AlgoSingleDestination Algorithm = iota
	AlgoBidirectional
	AlgoSpatialAStar
)

// Engine wraps Dijkstra (SingleDestination), BidirectionalDijkstra, and
// SpatialAStar behind one Path call, and pools the scratch maps the
// SingleDestination Dijkstra allocates per call so repeated queries against
// the same immutable network don't pay for fresh map allocations every
// time. The bidirectional and A* searches allocate fresh state per call.
type Engine struct {
	net      *network.Network[network.Stop]
	netRev   *network.Network[network.Stop]
	algo     Algorithm
	maxSpeed float64

	distPool sync.Pool
	parPool  sync.Pool
}

// NewEngine builds a query engine over net using the given default
// algorithm. maxSpeed is forwarded to SpatialAStar (see its doc comment);
// pass 0 if edge weights are already raw distances.
func NewEngine(net *network.Network[network.Stop], algo Algorithm, maxSpeed float64) *Engine {
	return &Engine{
		net:      net,
		netRev:   net.Reverse(),
		algo:     algo,
		maxSpeed: maxSpeed,
		distPool: sync.Pool{New: func() any { return make(map[int64]float64, 64) }},
		parPool:  sync.Pool{New: func() any { return make(map[int64]network.Edge, 64) }},
	}
}

type stopCoords struct{ net *network.Network[network.Stop] }

func (c stopCoords) Coord(id int64) (geo.Coordinate, bool) {
	s, ok := c.net.Node(id)
	if !ok {
		return geo.Coordinate{}, false
	}
	return s.Coord, true
}

// Path runs the engine's configured algorithm from src to dest and returns
// the distance and the atomic connectors making up the path. Unreachable
// destinations are reported as (+Inf, nil, nil) — not an error.
func (e *Engine) Path(ctx context.Context, src, dest int64) (float64, []network.Edge, error) {
	if _, ok := e.net.Node(src); !ok {
		return 0, nil, ErrNotFound
	}
	if _, ok := e.net.Node(dest); !ok {
		return 0, nil, ErrNotFound
	}

	switch e.algo {
	case AlgoBidirectional:
		bd := NewBidirectionalDijkstra(e.net, e.netRev, src, dest)
		if err := bd.RunContext(ctx); err != nil {
			return 0, nil, err
		}
		return bd.Dist(), flatten(bd.Path()), nil

	case AlgoSpatialAStar:
		as := NewSpatialAStar(e.net, stopCoords{e.net}, src, dest)
		as.MaxSpeed = e.maxSpeed
		as.Run()
		return as.Dist(), flatten(as.Path()), nil

	default:
		dist := e.distPool.Get().(map[int64]float64)
		par := e.parPool.Get().(map[int64]network.Edge)
		clear(dist)
		clear(par)
		defer func() {
			e.distPool.Put(dist)
			e.parPool.Put(par)
		}()

		dist[src] = 0
		d := &Dijkstra{Net: e.net, Src: src, dist: dist, par: par}
		d.IsTerminated = func(node int64, _ float64) bool { return node == dest }
		if err := d.RunContext(ctx); err != nil {
			return 0, nil, err
		}
		return d.Dist(dest), flatten(d.PathTo(dest)), nil
	}
}

// flatten expands every edge in path (atomic or shortcut) into its atomic
// connectors.
func flatten(path []network.Edge) []network.Edge {
	if path == nil {
		return nil
	}
	var out []network.Edge
	for _, e := range path {
		out = append(out, e.Unpack()...)
	}
	return out
}
