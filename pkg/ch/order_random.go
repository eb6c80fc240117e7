package ch

import (
	"math/rand"

	"transitch/pkg/network"
)

// contractRandom shuffles the node set once and contracts in that fixed
// order — the cheapest possible ordering strategy, and a useful baseline
// for measuring how much the ED-driven heuristics actually buy.
func contractRandom(rem *network.RemovableNetwork[network.Stop], cfg Config, level map[int64]int, allEdges *[]network.Edge) {
	ids := rem.NodeIDs()
	r := rand.New(rand.NewSource(cfg.RandomSeed))
	r.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	for lvl, id := range ids {
		_, sc := edgeDifference(rem, id, cfg.LocalSteps)
		contractNode(rem, id, sc, allEdges)
		level[id] = lvl
	}
}
