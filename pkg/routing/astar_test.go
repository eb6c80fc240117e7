package routing

import (
	"testing"

	"transitch/pkg/internal/fixtures"
)

func TestSpatialAStarMatchesDijkstraOnLinear(t *testing.T) {
	net := fixtures.Linear()
	d := NewDijkstra(net, 1)
	d.Run()

	as := NewSpatialAStar(net, stopCoords{net}, 1, 4)
	as.Run()

	if got, want := as.Dist(), d.Dist(4); got != want {
		t.Errorf("SpatialAStar.Dist() = %v, want %v", got, want)
	}
}

func TestSpatialAStarUnreachable(t *testing.T) {
	net := fixtures.Unreachable()
	as := NewSpatialAStar(net, stopCoords{net}, 1, 2)
	as.Run()
	if !isInf(as.Dist()) {
		t.Errorf("Dist() = %v, want +Inf", as.Dist())
	}
}
