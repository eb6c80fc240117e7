package ch

import (
	"transitch/pkg/network"
	"transitch/pkg/routing"
)

// shortcutCandidate pairs the incoming and outgoing edge a contraction step
// may need to bridge with a single shortcut edge.
type shortcutCandidate struct {
	left, right network.Edge
}

// liveEdges filters edges down to those whose other endpoint is not
// currently hidden. Used before HideNode(node) so the node's own incident
// edges are still visible.
func liveEdges(rem *network.RemovableNetwork[network.Stop], edges []network.Edge, other func(network.Edge) int64) []network.Edge {
	out := make([]network.Edge, 0, len(edges))
	for _, e := range edges {
		if !rem.IsHidden(other(e)) {
			out = append(out, e)
		}
	}
	return out
}

func edgeSrc(e network.Edge) int64  { return e.Src() }
func edgeDest(e network.Edge) int64 { return e.Dest() }

// groupByMinWeight collapses edges down to one per endpoint (as given by
// key), keeping only the lightest of any parallel edges sharing that
// endpoint. Parallel edges arise from overlapping route variants; carrying
// all of them into the witness search would inflate the shortcut count
// without ever yielding a cheaper shortcut than the lightest one does.
func groupByMinWeight(edges []network.Edge, key func(network.Edge) int64) map[int64]network.Edge {
	out := make(map[int64]network.Edge, len(edges))
	for _, e := range edges {
		k := key(e)
		if cur, ok := out[k]; !ok || e.Weight() < cur.Weight() {
			out[k] = e
		}
	}
	return out
}

// findShortcuts determines which shortcuts contracting node would require.
// It runs one LocalSteps witness search per live incoming neighbor (rather
// than one per incoming/outgoing pair): a single bounded Dijkstra from that
// neighbor, with node hidden, covers every outgoing target in one pass.
func findShortcuts(rem *network.RemovableNetwork[network.Stop], node int64, localSteps int) []shortcutCandidate {
	incoming := liveEdges(rem, rem.Network.AdjIn(node), edgeSrc)
	outgoing := liveEdges(rem, rem.Network.AdjOut(node), edgeDest)
	if len(incoming) == 0 || len(outgoing) == 0 {
		return nil
	}
	lefts := groupByMinWeight(incoming, edgeSrc)
	rights := groupByMinWeight(outgoing, edgeDest)

	rem.HideNode(node)
	defer rem.UnhideNode(node)

	var out []shortcutCandidate
	for u, left := range lefts {
		witness := routing.NewLocalSteps(rem, u, localSteps)
		witness.Run()

		for w, right := range rights {
			if w == u {
				continue
			}
			needed := left.Weight() + right.Weight()
			if witness.Dist(w) <= needed {
				continue // a witness path at least as good already exists
			}
			out = append(out, shortcutCandidate{left: left, right: right})
		}
	}
	return out
}

// edgeDifference is ED(v) = shortcuts(v) - indeg(v) - outdeg(v), computed
// against the live (unhidden) neighborhood. Lower values contract first:
// a negative ED means contracting v removes more edges than it adds.
func edgeDifference(rem *network.RemovableNetwork[network.Stop], node int64, localSteps int) (int, []shortcutCandidate) {
	sc := findShortcuts(rem, node, localSteps)
	inDeg := len(liveEdges(rem, rem.Network.AdjIn(node), edgeSrc))
	outDeg := len(liveEdges(rem, rem.Network.AdjOut(node), edgeDest))
	return len(sc) - inDeg - outDeg, sc
}

// contractNode materializes sc's shortcuts into rem (so later witness
// searches and the final overlay see them) and permanently removes node.
func contractNode(rem *network.RemovableNetwork[network.Stop], node int64, sc []shortcutCandidate, allEdges *[]network.Edge) {
	for _, c := range sc {
		s := network.NewShortcut(c.left, c.right)
		rem.Network.AddEdge(s)
		*allEdges = append(*allEdges, s)
	}
	rem.RemoveNode(node)
}
