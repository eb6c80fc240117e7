package ch

import (
	"math"
	"testing"

	"transitch/pkg/internal/fixtures"
	"transitch/pkg/network"
	"transitch/pkg/routing"
)

func isInf(f float64) bool { return math.IsInf(f, 1) }

func runQuery(t *testing.T, r *Result, src, dest int64) float64 {
	t.Helper()
	q := NewQuery(r, src, dest)
	q.Run()
	return q.Dist()
}

func testHeuristicMatchesDijkstra(t *testing.T, h Heuristic) {
	net := fixtures.Random10()
	cfg := DefaultConfig()
	cfg.Heuristic = h
	r := Contract(net, cfg)

	if r.NumNodes != net.Len() {
		t.Fatalf("NumNodes = %d, want %d", r.NumNodes, net.Len())
	}
	if len(r.Level) != net.Len() {
		t.Fatalf("every node must receive a contraction level, got %d of %d", len(r.Level), net.Len())
	}

	for src := int64(0); src < 10; src++ {
		d := routing.NewDijkstra(net, src)
		d.Run()
		for dest := int64(0); dest < 10; dest++ {
			want := d.Dist(dest)
			got := runQuery(t, r, src, dest)
			switch {
			case isInf(want) && !isInf(got):
				t.Errorf("heuristic=%s src=%d dest=%d: CH found a path but plain Dijkstra found none", h, src, dest)
			case !isInf(want) && isInf(got):
				t.Errorf("heuristic=%s src=%d dest=%d: CH found no path, plain Dijkstra dist=%v", h, src, dest, want)
			case !isInf(want) && got != want:
				t.Errorf("heuristic=%s src=%d dest=%d: CH dist=%v, want %v", h, src, dest, got, want)
			}
		}
	}
}

func TestLazyEDMatchesDijkstra(t *testing.T) { testHeuristicMatchesDijkstra(t, HeuristicLazy) }

func TestPeriodicEDMatchesDijkstra(t *testing.T) { testHeuristicMatchesDijkstra(t, HeuristicPeriodic) }

func TestRandomOrderMatchesDijkstra(t *testing.T) { testHeuristicMatchesDijkstra(t, HeuristicRandom) }

func TestQueryPathUnpacksToAtomicEdges(t *testing.T) {
	net := fixtures.Linear()
	r := Contract(net, DefaultConfig())

	q := NewQuery(r, 1, 4)
	q.Run()
	if q.Dist() != 60 {
		t.Fatalf("Dist() = %v, want 60", q.Dist())
	}

	path := q.Path()
	var total float64
	for _, e := range path {
		if _, ok := e.(*network.Connector); !ok {
			t.Fatalf("Path() must flatten every edge into *network.Connector, got %T", e)
		}
		total += e.Weight()
	}
	if total != 60 {
		t.Errorf("sum of unpacked edge weights = %v, want 60", total)
	}
}

func TestQuerySameNode(t *testing.T) {
	net := fixtures.Linear()
	r := Contract(net, DefaultConfig())
	q := NewQuery(r, 2, 2)
	q.Run()
	if q.Dist() != 0 {
		t.Errorf("Dist() = %v, want 0", q.Dist())
	}
}

func TestQueryUnreachable(t *testing.T) {
	net := fixtures.Unreachable()
	r := Contract(net, DefaultConfig())
	q := NewQuery(r, 1, 2)
	q.Run()
	if !isInf(q.Dist()) {
		t.Errorf("Dist() = %v, want +Inf", q.Dist())
	}
}

func TestContractDoesNotMutateInput(t *testing.T) {
	net := fixtures.Linear()
	before := len(net.AdjOut(1))
	Contract(net, DefaultConfig())
	after := len(net.AdjOut(1))
	if before != after {
		t.Errorf("Contract mutated the input network: AdjOut(1) had %d edges, now has %d", before, after)
	}
}
