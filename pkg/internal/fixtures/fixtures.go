// Package fixtures builds the small fixed networks shared across the
// routing, ch, and betweenness test suites, mirroring the single shared
// fixture the original algorithm test suite built once and reused.
package fixtures

import (
	"transitch/pkg/geo"
	"transitch/pkg/network"
)

func stop(id int64, x, y float64) network.Stop {
	return network.Stop{ID: id, Coord: geo.Coordinate{X: x, Y: y}}
}

func edge(src, dest int64, weight float64) *network.Connector {
	return &network.Connector{
		RouteID: 1, VariantID: 1,
		SrcID: src, DestID: dest,
		TimeSec: weight, LengthM: weight,
	}
}

// Linear returns a 4-stop chain: 1 -(10)-> 2 -(20)-> 3 -(30)-> 4.
func Linear() *network.Network[network.Stop] {
	n := network.New[network.Stop]()
	n.AddNode(1, stop(1, 0, 0))
	n.AddNode(2, stop(2, 10, 0))
	n.AddNode(3, stop(3, 30, 0))
	n.AddNode(4, stop(4, 60, 0))
	n.AddEdge(edge(1, 2, 10))
	n.AddEdge(edge(2, 3, 20))
	n.AddEdge(edge(3, 4, 30))
	return n
}

// ParallelVariants returns two stops connected by two distinct route
// variants with different travel times (5 and 8), so shortest-path search
// must pick the cheaper connector rather than the first one inserted.
func ParallelVariants() *network.Network[network.Stop] {
	n := network.New[network.Stop]()
	n.AddNode(1, stop(1, 0, 0))
	n.AddNode(2, stop(2, 10, 0))
	n.AddEdge(&network.Connector{RouteID: 1, VariantID: 1, SrcID: 1, DestID: 2, TimeSec: 8, LengthM: 10})
	n.AddEdge(&network.Connector{RouteID: 2, VariantID: 1, SrcID: 1, DestID: 2, TimeSec: 5, LengthM: 10})
	return n
}

// Unreachable returns two stops with no connecting edge at all.
func Unreachable() *network.Network[network.Stop] {
	n := network.New[network.Stop]()
	n.AddNode(1, stop(1, 0, 0))
	n.AddNode(2, stop(2, 100, 100))
	return n
}

// Star returns a 5-node star: node 1 is the hub, connected bidirectionally
// to leaves 2..5, all edges weight 1. Every leaf-to-leaf shortest path
// passes through the hub, giving it a sharply higher betweenness score.
func Star() *network.Network[network.Stop] {
	n := network.New[network.Stop]()
	n.AddNode(1, stop(1, 0, 0))
	n.AddNode(2, stop(2, 1, 0))
	n.AddNode(3, stop(3, -1, 0))
	n.AddNode(4, stop(4, 0, 1))
	n.AddNode(5, stop(5, 0, -1))
	for _, leaf := range []int64{2, 3, 4, 5} {
		n.AddEdge(edge(1, leaf, 1))
		n.AddEdge(edge(leaf, 1, 1))
	}
	return n
}

// Random10 returns a deterministic pseudo-random 10-node directed graph
// used as the CH-vs-Dijkstra correctness fixture (§8: "CH correctness on
// 10-node random graph"). Generation is fixed (no math/rand), so every call
// returns byte-identical edges.
func Random10() *network.Network[network.Stop] {
	n := network.New[network.Stop]()
	coords := [10][2]float64{
		{0, 0}, {2, 1}, {4, 0}, {1, 3}, {3, 3},
		{5, 2}, {0, 4}, {6, 4}, {2, 5}, {4, 5},
	}
	for i, c := range coords {
		n.AddNode(int64(i), stop(int64(i), c[0], c[1]))
	}
	type e struct {
		src, dest int64
		w         float64
	}
	edges := []e{
		{0, 1, 3}, {1, 2, 4}, {0, 3, 5}, {3, 4, 2}, {1, 4, 6},
		{2, 5, 3}, {4, 5, 2}, {3, 6, 4}, {4, 7, 5}, {5, 7, 3},
		{6, 8, 3}, {4, 8, 4}, {7, 9, 2}, {8, 9, 3}, {2, 7, 6},
		{6, 3, 4}, {9, 5, 4}, {8, 4, 4}, {1, 0, 3}, {5, 2, 3},
	}
	for _, ed := range edges {
		n.AddEdge(edge(ed.src, ed.dest, ed.w))
	}
	return n
}
