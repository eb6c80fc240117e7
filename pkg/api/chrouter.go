package api

import (
	"context"
	"math"

	"transitch/pkg/ch"
	"transitch/pkg/network"
)

// CHRouter adapts a contracted ch.Result to the Router interface, so the
// same handlers serve plain-Dijkstra and Contraction-Hierarchies-backed
// queries identically.
type CHRouter struct {
	Result *ch.Result
}

func (c CHRouter) Path(ctx context.Context, src, dest int64) (float64, []network.Edge, error) {
	q := ch.NewQuery(c.Result, src, dest)
	if err := q.RunContext(ctx); err != nil {
		return 0, nil, err
	}
	dist := q.Dist()
	if math.IsInf(dist, 1) {
		return dist, nil, nil
	}
	return dist, q.Path(), nil
}
