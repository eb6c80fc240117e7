package ch

import "transitch/pkg/network"

// Result is the query-time output of Contract: every node's contraction
// level plus the upward/downward overlay graphs a BidirectionalDijkstra
// runs against.
type Result struct {
	Level    map[int64]int
	NumNodes int

	up   map[int64][]network.Edge
	down map[int64][]network.Edge
}

// upView adapts Result's upward overlay to routing.AdjacencyProvider for a
// forward search.
type upView struct{ r *Result }

func (u upView) AdjOut(id int64) []network.Edge { return u.r.up[id] }

// downView adapts Result's downward overlay to routing.AdjacencyProvider
// for a backward search: AdjOut(id) returns edges whose original
// destination is id, for the caller to walk back toward Src().
type downView struct{ r *Result }

func (d downView) AdjOut(id int64) []network.Edge { return d.r.down[id] }

// Edges returns every distinct edge (original connector or shortcut) the
// overlay was built from, for persistence by pkg/chio.
func (r *Result) Edges() []network.Edge {
	seen := make(map[network.Edge]struct{})
	var out []network.Edge
	for _, m := range []map[int64][]network.Edge{r.up, r.down} {
		for _, edges := range m {
			for _, e := range edges {
				if _, ok := seen[e]; !ok {
					seen[e] = struct{}{}
					out = append(out, e)
				}
			}
		}
	}
	return out
}

// FromParts rebuilds a Result's query-time overlay from a level assignment
// and the full edge set (original connectors plus shortcuts), as restored
// by pkg/chio from a cache file.
func FromParts(level map[int64]int, edges []network.Edge) *Result {
	up, down := buildOverlay(edges, level)
	return &Result{Level: level, NumNodes: len(level), up: up, down: down}
}
