package ch

import "transitch/pkg/network"

// contractLazy orders contraction by a lazily-updated edge-difference
// priority queue: pop the minimum, recompute its ED against the current
// (possibly-changed) graph, and only actually contract it if it's still the
// best candidate — otherwise requeue with the fresh priority and try again.
func contractLazy(rem *network.RemovableNetwork[network.Stop], cfg Config, level map[int64]int, allEdges *[]network.Edge) {
	ids := rem.NodeIDs()

	pq := &priorityQueue{}
	for _, id := range ids {
		ed, _ := edgeDifference(rem, id, cfg.LocalSteps)
		pq.Push(id, float64(ed))
	}

	lvl := 0
	for pq.Len() > 0 {
		top, ok := pq.Pop()
		if !ok {
			break
		}
		node := top.node

		ed, sc := edgeDifference(rem, node, cfg.LocalSteps)
		if minNext, hasNext := pq.Min(); hasNext && float64(ed) > minNext {
			pq.Push(node, float64(ed))
			continue
		}

		contractNode(rem, node, sc, allEdges)
		level[node] = lvl
		lvl++
	}
}
