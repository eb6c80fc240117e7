package network

import (
	"testing"

	"transitch/pkg/geo"
)

func twoNodeNet() (*Network[Stop], *Connector) {
	n := New[Stop]()
	n.AddNode(1, Stop{ID: 1, Coord: geo.Coordinate{X: 0, Y: 0}})
	n.AddNode(2, Stop{ID: 2, Coord: geo.Coordinate{X: 1, Y: 1}})
	c := &Connector{SrcID: 1, DestID: 2, TimeSec: 5}
	n.AddEdge(c)
	return n, c
}

func TestAddEdgeUpdatesBothAdjacencies(t *testing.T) {
	n, c := twoNodeNet()
	out := n.AdjOut(1)
	if len(out) != 1 || out[0] != Edge(c) {
		t.Fatalf("AdjOut(1) = %v, want [c]", out)
	}
	in := n.AdjIn(2)
	if len(in) != 1 || in[0] != Edge(c) {
		t.Fatalf("AdjIn(2) = %v, want [c]", in)
	}
}

func TestReverseSwapsAdjacency(t *testing.T) {
	n, c := twoNodeNet()
	r := n.Reverse()
	out := r.AdjOut(2)
	if len(out) != 1 || out[0] != Edge(c) {
		t.Fatalf("Reverse().AdjOut(2) = %v, want [c]", out)
	}
	if len(r.AdjIn(1)) != 1 {
		t.Fatalf("Reverse().AdjIn(1) should contain c")
	}
}

func TestReverseReverseIsOriginal(t *testing.T) {
	n, _ := twoNodeNet()
	rr := n.Reverse().Reverse()
	if len(rr.AdjOut(1)) != len(n.AdjOut(1)) {
		t.Fatalf("reverse(reverse(n)).AdjOut(1) differs from n.AdjOut(1)")
	}
	if len(rr.AdjOut(2)) != len(n.AdjOut(2)) {
		t.Fatalf("reverse(reverse(n)).AdjOut(2) differs from n.AdjOut(2)")
	}
}

func TestShallowCopyIsIndependent(t *testing.T) {
	n, _ := twoNodeNet()
	cp := n.ShallowCopy()
	cp.AddEdge(&Connector{SrcID: 1, DestID: 2, TimeSec: 99})
	if len(n.AdjOut(1)) != 1 {
		t.Fatalf("mutating copy affected original: AdjOut(1) = %d edges", len(n.AdjOut(1)))
	}
	if len(cp.AdjOut(1)) != 2 {
		t.Fatalf("copy AdjOut(1) = %d edges, want 2", len(cp.AdjOut(1)))
	}
}

func TestDegree(t *testing.T) {
	n, _ := twoNodeNet()
	if got := n.Degree(1); got != 1 {
		t.Errorf("Degree(1) = %d, want 1", got)
	}
	if got := n.DegreeRev(2); got != 1 {
		t.Errorf("DegreeRev(2) = %d, want 1", got)
	}
	if got := n.Degree(2); got != 0 {
		t.Errorf("Degree(2) = %d, want 0", got)
	}
}
