package routing

import "sort"

// DescendantsCount post-processes a finished Dijkstra into, for every node
// it reached, the size of that node's subtree in the shortest-path tree
// (including itself). BetweennessAnalysis's tree variant aggregates these
// counts instead of re-walking reverse_path_from for every destination.
type DescendantsCount struct {
	Count map[int64]int
}

// NewDescendantsCount computes subtree sizes from d, which must already
// have been Run.
func NewDescendantsCount(d *Dijkstra) *DescendantsCount {
	type item struct {
		id   int64
		dist float64
	}
	dists := d.Dists()
	items := make([]item, 0, len(dists))
	for id, dist := range dists {
		items = append(items, item{id, dist})
	}
	// Process in descending distance order: every node's descendants (which
	// are strictly farther from Src) are fully counted before it propagates
	// its total up to its own parent.
	sort.Slice(items, func(i, j int) bool { return items[i].dist > items[j].dist })

	cnt := make(map[int64]int, len(items))
	for _, it := range items {
		cnt[it.id] = 1
	}
	for _, it := range items {
		if it.id == d.Src {
			continue
		}
		if par, ok := d.Par(it.id); ok {
			cnt[par.Src()] += cnt[it.id]
		}
	}
	return &DescendantsCount{Count: cnt}
}
