package ch

import (
	"context"

	"transitch/pkg/network"
	"transitch/pkg/routing"
)

// Query answers one shortest-path request against a contracted Result. It
// satisfies routing.PathFinder, so callers that accept that interface don't
// need to know whether they're querying a plain network or a CH overlay.
type Query struct {
	bd *routing.BidirectionalDijkstra
}

// NewQuery builds a src-to-dest query over r's overlay graphs.
func NewQuery(r *Result, src, dest int64) *Query {
	return &Query{bd: routing.NewBidirectionalDijkstra(upView{r}, downView{r}, src, dest)}
}

// Run executes the query. Idempotent.
func (q *Query) Run() { q.bd.Run() }

// RunContext is Run with cooperative cancellation.
func (q *Query) RunContext(ctx context.Context) error { return q.bd.RunContext(ctx) }

// Dist returns the shortest distance found, or +Inf if unreachable.
func (q *Query) Dist() float64 { return q.bd.Dist() }

// Path returns the shortest path as atomic connectors, with every shortcut
// edge unpacked into the original edges it represents.
func (q *Query) Path() []network.Edge {
	raw := q.bd.Path()
	if raw == nil {
		return nil
	}
	out := make([]network.Edge, 0, len(raw))
	for _, e := range raw {
		out = append(out, e.Unpack()...)
	}
	return out
}
