package network

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"transitch/pkg/geo"
)

func sampleStopNetwork() *Network[Stop] {
	n := New[Stop]()
	n.AddNode(1, Stop{ID: 1, Coord: geo.Coordinate{X: 0, Y: 0}, Attrs: map[string]any{"name": "A"}})
	n.AddNode(2, Stop{ID: 2, Coord: geo.Coordinate{X: 5, Y: 5}, Attrs: map[string]any{"name": "B"}})
	n.AddEdge(&Connector{
		RouteID: 10, VariantID: 1, SrcID: 1, DestID: 2,
		TimeSec: 60, LengthM: 500,
		RealPath: []geo.Coordinate{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 5, Y: 5}},
	})
	return n
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	n := sampleStopNetwork()
	data, err := MarshalNetwork(n)
	if err != nil {
		t.Fatalf("MarshalNetwork: %v", err)
	}
	got, err := UnmarshalNetwork(data)
	if err != nil {
		t.Fatalf("UnmarshalNetwork: %v", err)
	}

	if got.Len() != n.Len() {
		t.Fatalf("round trip Len() = %d, want %d", got.Len(), n.Len())
	}
	for _, id := range n.NodeIDs() {
		origStop, _ := n.Node(id)
		gotStop, ok := got.Node(id)
		if !ok {
			t.Fatalf("node %d missing after round trip", id)
		}
		if gotStop.Coord != origStop.Coord {
			t.Errorf("node %d coord = %v, want %v", id, gotStop.Coord, origStop.Coord)
		}
	}

	origEdges := n.AdjOut(1)
	gotEdges := got.AdjOut(1)
	if len(origEdges) != len(gotEdges) {
		t.Fatalf("AdjOut(1) len = %d, want %d", len(gotEdges), len(origEdges))
	}
	oc := origEdges[0].(*Connector)
	gc := gotEdges[0].(*Connector)
	if diff := cmp.Diff(oc, gc); diff != "" {
		t.Errorf("round-tripped connector mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalRejectsBadStopID(t *testing.T) {
	_, err := UnmarshalNetwork([]byte(`{"not-a-number": {"Data": {"X":0,"Y":0}, "Adjacent": []}}`))
	if err == nil {
		t.Fatal("expected error for non-integer stop id, got nil")
	}
}
