package ch

import (
	"sort"

	"transitch/pkg/network"
)

// contractPeriodic scores every remaining node's edge difference, sorts
// ascending, and contracts the cheapest PeriodicBatch of them before
// recomputing — trading the accuracy of always contracting the single
// cheapest node for fewer, batched recompute passes. The batch order comes
// from the scores taken at the start of the pass, but each node's shortcuts
// are recomputed against the current graph at the moment it is contracted,
// since earlier contractions in the same batch change its neighborhood.
func contractPeriodic(rem *network.RemovableNetwork[network.Stop], cfg Config, level map[int64]int, allEdges *[]network.Edge) {
	batch := cfg.PeriodicBatch
	if batch <= 0 {
		batch = 100
	}

	remaining := rem.NodeIDs()
	lvl := 0

	for len(remaining) > 0 {
		type scored struct {
			id int64
			ed int
			sc []shortcutCandidate
		}
		scoredList := make([]scored, 0, len(remaining))
		for _, id := range remaining {
			ed, sc := edgeDifference(rem, id, cfg.LocalSteps)
			scoredList = append(scoredList, scored{id: id, ed: ed, sc: sc})
		}
		sort.Slice(scoredList, func(i, j int) bool { return scoredList[i].ed < scoredList[j].ed })

		n := batch
		if n > len(scoredList) {
			n = len(scoredList)
		}

		contractedThisRound := make(map[int64]struct{}, n)
		for i := 0; i < n; i++ {
			s := scoredList[i]
			_, sc := edgeDifference(rem, s.id, cfg.LocalSteps)
			contractNode(rem, s.id, sc, allEdges)
			level[s.id] = lvl
			lvl++
			contractedThisRound[s.id] = struct{}{}
		}

		rest := remaining[:0]
		for _, id := range remaining {
			if _, done := contractedThisRound[id]; !done {
				rest = append(rest, id)
			}
		}
		remaining = rest
	}
}
