package routing

import (
	"context"
	"math"

	"transitch/pkg/network"
)

// BidirectionalDijkstra alternates a forward search from Src (over Fwd) and
// a backward search from Dest (over Bwd, the reversed-edge adjacency — pass
// net.Reverse() for a plain Network, or a CH overlay's downward view for a
// contracted query), tracking the best meeting point seen so far.
type BidirectionalDijkstra struct {
	Fwd, Bwd  AdjacencyProvider
	Src, Dest int64

	distFwd, distBwd map[int64]float64
	parFwd, parBwd   map[int64]network.Edge
	bestDist         float64
	bestMid          int64
	done             bool
}

// NewBidirectionalDijkstra builds a search between src and dest. fwd is the
// network's normal adjacency; bwd must walk edges in reverse (typically
// net.Reverse()).
func NewBidirectionalDijkstra(fwd, bwd AdjacencyProvider, src, dest int64) *BidirectionalDijkstra {
	return &BidirectionalDijkstra{
		Fwd: fwd, Bwd: bwd, Src: src, Dest: dest,
		distFwd:  map[int64]float64{src: 0},
		distBwd:  map[int64]float64{dest: 0},
		parFwd:   make(map[int64]network.Edge),
		parBwd:   make(map[int64]network.Edge),
		bestDist: math.Inf(1),
		bestMid:  -1,
	}
}

func (b *BidirectionalDijkstra) Run() {
	_ = b.RunContext(context.Background())
}

// RunContext is Run with cooperative cancellation (see Dijkstra.RunContext).
func (b *BidirectionalDijkstra) RunContext(ctx context.Context) error {
	if b.done {
		return nil
	}
	b.done = true

	if b.Src == b.Dest {
		b.bestDist = 0
		b.bestMid = b.Src
		return nil
	}

	hf := &minHeap{}
	hf.Push(b.Src, 0)
	hb := &minHeap{}
	hb.Push(b.Dest, 0)

	fwdTurn := true
	iter := 0
	for hf.Len() > 0 || hb.Len() > 0 {
		iter++
		if iter&contextCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if fwdTurn && hf.Len() > 0 {
			b.stepFwd(hf)
		} else if !fwdTurn && hb.Len() > 0 {
			b.stepBwd(hb)
		}
		fwdTurn = !fwdTurn

		if b.bestMid != -1 {
			fwdMin, fwdOk := hf.Min()
			bwdMin, bwdOk := hb.Min()
			fwdExhausted := !fwdOk || fwdMin >= b.bestDist
			bwdExhausted := !bwdOk || bwdMin >= b.bestDist
			if fwdExhausted && bwdExhausted {
				break
			}
		}
	}
	return nil
}

func (b *BidirectionalDijkstra) stepFwd(h *minHeap) {
	top, _ := h.Pop()
	u, du := top.node, top.dist
	if cur, ok := b.distFwd[u]; !ok || du != cur {
		return
	}
	if db, ok := b.distBwd[u]; ok {
		if cand := du + db; cand < b.bestDist {
			b.bestDist = cand
			b.bestMid = u
		}
	}
	for _, e := range b.Fwd.AdjOut(u) {
		v := e.Dest()
		nd := du + e.Weight()
		if cur, ok := b.distFwd[v]; !ok || nd < cur {
			b.distFwd[v] = nd
			b.parFwd[v] = e
			h.Push(v, nd)
		}
	}
}

func (b *BidirectionalDijkstra) stepBwd(h *minHeap) {
	top, _ := h.Pop()
	u, du := top.node, top.dist
	if cur, ok := b.distBwd[u]; !ok || du != cur {
		return
	}
	if df, ok := b.distFwd[u]; ok {
		if cand := du + df; cand < b.bestDist {
			b.bestDist = cand
			b.bestMid = u
		}
	}
	// b.Bwd walks reversed edges: each e satisfies e.Dest() == u in the
	// original graph, so the backward neighbor is e.Src().
	for _, e := range b.Bwd.AdjOut(u) {
		v := e.Src()
		nd := du + e.Weight()
		if cur, ok := b.distBwd[v]; !ok || nd < cur {
			b.distBwd[v] = nd
			b.parBwd[v] = e
			h.Push(v, nd)
		}
	}
}

// Dist returns the shortest Src-to-Dest distance found, or +Inf if
// unreachable.
func (b *BidirectionalDijkstra) Dist() float64 {
	if b.bestMid == -1 {
		return math.Inf(1)
	}
	return b.bestDist
}

// Path returns the shortest Src-to-Dest path in traversal order, or nil if
// unreachable.
func (b *BidirectionalDijkstra) Path() []network.Edge {
	if b.bestMid == -1 {
		return nil
	}
	fwd := b.pathForwardToMid()
	bwd := b.pathBackwardFromMid()
	if fwd == nil && b.bestMid != b.Src {
		return nil
	}
	if bwd == nil && b.bestMid != b.Dest {
		return nil
	}
	return append(fwd, bwd...)
}

func (b *BidirectionalDijkstra) pathForwardToMid() []network.Edge {
	var rev []network.Edge
	cur := b.bestMid
	for cur != b.Src {
		e, ok := b.parFwd[cur]
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

func (b *BidirectionalDijkstra) pathBackwardFromMid() []network.Edge {
	var edges []network.Edge
	cur := b.bestMid
	for cur != b.Dest {
		e, ok := b.parBwd[cur]
		if !ok {
			return nil
		}
		edges = append(edges, e)
		cur = e.Dest()
	}
	return edges
}
