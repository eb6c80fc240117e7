package network

import "testing"

func TestLargestComponent(t *testing.T) {
	n := New[Stop]()
	for i := int64(1); i <= 5; i++ {
		n.AddNode(i, Stop{ID: i})
	}
	// Component A: 1-2-3. Component B: 4-5.
	n.AddEdge(&Connector{SrcID: 1, DestID: 2, TimeSec: 1})
	n.AddEdge(&Connector{SrcID: 2, DestID: 3, TimeSec: 1})
	n.AddEdge(&Connector{SrcID: 4, DestID: 5, TimeSec: 1})

	got := LargestComponent(n)
	want := []int64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("LargestComponent = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LargestComponent = %v, want %v", got, want)
		}
	}
}

func TestFilterToComponent(t *testing.T) {
	n := New[Stop]()
	for i := int64(1); i <= 3; i++ {
		n.AddNode(i, Stop{ID: i})
	}
	n.AddEdge(&Connector{SrcID: 1, DestID: 2, TimeSec: 1})
	n.AddEdge(&Connector{SrcID: 2, DestID: 3, TimeSec: 1})

	filtered := FilterToComponent(n, []int64{1, 2})
	if filtered.Len() != 2 {
		t.Fatalf("filtered.Len() = %d, want 2", filtered.Len())
	}
	if len(filtered.AdjOut(2)) != 0 {
		t.Fatalf("filtered should drop edge 2->3 since 3 is excluded")
	}
	if len(filtered.AdjOut(1)) != 1 {
		t.Fatalf("filtered should keep edge 1->2")
	}
}
