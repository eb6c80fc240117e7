// Package ch implements Contraction Hierarchies preprocessing and querying:
// a shortcut-augmented overlay over a network.Network that lets
// bidirectional Dijkstra answer shortest-path queries by only ever
// climbing the contraction order, instead of exploring the full graph.
package ch

import (
	"log"

	"transitch/pkg/network"
)

// Heuristic selects a node contraction ordering strategy.
type Heuristic string

const (
	// HeuristicLazy recomputes a node's edge difference just before
	// contracting it and requeues if a cheaper candidate has since
	// appeared. The default: closest to optimal ordering per node
	// contracted.
	HeuristicLazy Heuristic = "lazy"
	// HeuristicPeriodic recomputes edge differences for every remaining
	// node in batches of PeriodicBatch, trading ordering quality for
	// fewer expensive recompute passes.
	HeuristicPeriodic Heuristic = "periodic"
	// HeuristicRandom shuffles the node order once and contracts in that
	// order, ignoring edge difference entirely.
	HeuristicRandom Heuristic = "random"
)

// Config controls contraction.
type Config struct {
	Heuristic Heuristic

	// LocalSteps bounds the witness search run per incoming neighbor
	// during shortcut computation: the search settles at most this many
	// nodes before giving up and assuming a shortcut is required.
	LocalSteps int

	// PeriodicBatch is the number of nodes contracted per recompute pass
	// under HeuristicPeriodic.
	PeriodicBatch int

	// RandomSeed seeds HeuristicRandom's shuffle.
	RandomSeed int64
}

// DefaultConfig returns Lazy-ED contraction with a 50-node witness bound.
func DefaultConfig() Config {
	return Config{Heuristic: HeuristicLazy, LocalSteps: 50, PeriodicBatch: 100, RandomSeed: 1}
}

// Contract runs Contraction Hierarchies preprocessing over net and returns
// the query-time Result. net is never modified; contraction works against
// an independent copy.
func Contract(net *network.Network[network.Stop], cfg Config) *Result {
	// The work copy needs its own node map as well as its own adjacency:
	// RemoveNode deletes from the node map, which ShallowCopy would share.
	work := network.New[network.Stop]()
	for _, id := range net.NodeIDs() {
		stop, _ := net.Node(id)
		work.AddNode(id, stop)
	}
	for _, id := range net.NodeIDs() {
		for _, e := range net.AdjOut(id) {
			work.AddEdge(e)
		}
	}
	rem := network.FromNetwork(work)
	ids := rem.NodeIDs()

	level := make(map[int64]int, len(ids))
	allEdges := make([]network.Edge, 0, len(ids)*2)
	for _, id := range ids {
		allEdges = append(allEdges, net.AdjOut(id)...)
	}

	log.Printf("ch: contracting %d nodes, heuristic=%s", len(ids), cfg.Heuristic)

	switch cfg.Heuristic {
	case HeuristicPeriodic:
		contractPeriodic(rem, cfg, level, &allEdges)
	case HeuristicRandom:
		contractRandom(rem, cfg, level, &allEdges)
	default:
		contractLazy(rem, cfg, level, &allEdges)
	}

	up, down := buildOverlay(allEdges, level)
	log.Printf("ch: contraction complete, %d overlay edges", len(allEdges))

	return &Result{Level: level, NumNodes: len(ids), up: up, down: down}
}

// buildOverlay partitions every edge the contraction ever saw (original
// connectors plus shortcuts) into the upward query graph, keyed by source,
// and the downward query graph, keyed by destination, used by a
// BidirectionalDijkstra's forward and backward search respectively. Both
// searches only ever move to strictly-higher-level nodes.
func buildOverlay(edges []network.Edge, level map[int64]int) (up, down map[int64][]network.Edge) {
	up = make(map[int64][]network.Edge)
	down = make(map[int64][]network.Edge)
	for _, e := range edges {
		lu, lv := level[e.Src()], level[e.Dest()]
		if lv > lu {
			up[e.Src()] = append(up[e.Src()], e)
		}
		if lu > lv {
			down[e.Dest()] = append(down[e.Dest()], e)
		}
	}
	return up, down
}
