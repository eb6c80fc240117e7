// Package betweenness computes betweenness-centrality scores over a
// network: for every node, how many source-destination shortest paths pass
// through it.
package betweenness

import (
	"errors"
	"sort"

	"transitch/pkg/network"
	"transitch/pkg/routing"
)

// ErrRange is returned by Result.TopScores when k is negative or larger
// than the number of scored nodes.
var ErrRange = errors.New("betweenness: k out of range")

// Algorithm selects which of the two equivalent computations From runs.
type Algorithm int

const (
	// AlgoTree computes scores via each source's shortest-path-tree
	// subtree sizes (routing.DescendantsCount), an O(V^2 + V*E*log(V))
	// improvement over the brute-force walk.
	AlgoTree Algorithm = iota
	// AlgoBrute recomputes every source-destination path directly and
	// tallies edge endpoints, an O(V^2*E*log(V)) baseline kept for
	// cross-checking AlgoTree's result.
	AlgoBrute
)

// Result holds every node's betweenness score.
type Result struct {
	scores map[int64]float64
	order  []int64 // node ids, descending score, ties broken by ascending id
}

func newResult(raw map[int64]float64) *Result {
	order := make([]int64, 0, len(raw))
	for id := range raw {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool {
		if raw[order[i]] != raw[order[j]] {
			return raw[order[i]] > raw[order[j]]
		}
		return order[i] < order[j]
	})
	return &Result{scores: raw, order: order}
}

// From computes betweenness scores over net using the given algorithm.
func From(net *network.Network[network.Stop], alg Algorithm) *Result {
	if alg == AlgoBrute {
		return fromBruteForce(net)
	}
	return fromShortestTree(net)
}

// fromBruteForce mirrors the reference naive algorithm: a full Dijkstra per
// source, then a reverse-path walk per destination, tallying each edge's
// destination endpoint (and, for the first edge out of src, src itself).
// src is also credited once for its own empty src-to-src path, the same
// self-count AlgoTree's subtree sizes include.
func fromBruteForce(net *network.Network[network.Stop]) *Result {
	ids := net.NodeIDs()
	raw := make(map[int64]float64, len(ids))
	for _, id := range ids {
		raw[id] = 0
	}

	for _, src := range ids {
		d := routing.NewDijkstra(net, src)
		d.Run()
		raw[src]++
		for _, dest := range ids {
			for _, e := range d.ReversePathFrom(dest) {
				raw[e.Dest()]++
				if e.Src() == src {
					raw[src]++
				}
			}
		}
	}
	return newResult(raw)
}

// fromShortestTree mirrors the reference shortest-path-tree algorithm: a
// full Dijkstra per source, then DescendantsCount's subtree sizes aggregated
// directly, avoiding the per-destination reverse-path walk.
func fromShortestTree(net *network.Network[network.Stop]) *Result {
	ids := net.NodeIDs()
	raw := make(map[int64]float64, len(ids))
	for _, id := range ids {
		raw[id] = 0
	}

	for _, src := range ids {
		d := routing.NewDijkstra(net, src)
		d.Run()
		dc := routing.NewDescendantsCount(d)
		for id, count := range dc.Count {
			raw[id] += float64(count)
		}
	}
	return newResult(raw)
}

// Scores returns the full node-to-score mapping. The caller must not mutate
// it.
func (r *Result) Scores() map[int64]float64 { return r.scores }

// Score returns a single node's betweenness score.
func (r *Result) Score(id int64) float64 { return r.scores[id] }

// TopScores returns the k node ids with the largest betweenness score,
// descending, ties broken by ascending id.
func (r *Result) TopScores(k int) ([]int64, error) {
	if k < 0 {
		return nil, ErrRange
	}
	if k > len(r.order) {
		return nil, ErrRange
	}
	out := make([]int64, k)
	copy(out, r.order[:k])
	return out, nil
}
