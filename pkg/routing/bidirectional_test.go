package routing

import (
	"testing"

	"transitch/pkg/internal/fixtures"
)

func TestBidirectionalDijkstraMatchesDijkstra(t *testing.T) {
	net := fixtures.Random10()
	for src := int64(0); src < 10; src++ {
		d := NewDijkstra(net, src)
		d.Run()
		for dest := int64(0); dest < 10; dest++ {
			bd := NewBidirectionalDijkstra(net, net.Reverse(), src, dest)
			bd.Run()
			want := d.Dist(dest)
			got := bd.Dist()
			if (isInf(want) && !isInf(got)) || (!isInf(want) && isInf(got)) || (!isInf(want) && got != want) {
				t.Errorf("src=%d dest=%d: BidirectionalDijkstra.Dist()=%v, Dijkstra.Dist()=%v", src, dest, got, want)
			}
		}
	}
}

func TestBidirectionalDijkstraSameNode(t *testing.T) {
	net := fixtures.Linear()
	bd := NewBidirectionalDijkstra(net, net.Reverse(), 2, 2)
	bd.Run()
	if bd.Dist() != 0 {
		t.Errorf("Dist() = %v, want 0 for src==dest", bd.Dist())
	}
}

func TestBidirectionalDijkstraUnreachable(t *testing.T) {
	net := fixtures.Unreachable()
	bd := NewBidirectionalDijkstra(net, net.Reverse(), 1, 2)
	bd.Run()
	if !isInf(bd.Dist()) {
		t.Errorf("Dist() = %v, want +Inf", bd.Dist())
	}
}
