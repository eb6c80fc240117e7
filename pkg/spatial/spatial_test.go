package spatial

import (
	"sort"
	"testing"

	"transitch/pkg/geo"
)

func seedBoth(t *testing.T) (Index, Index) {
	t.Helper()
	d := New(BackendDefault)
	s := New(BackendSpatial)
	rects := []Rect{
		{0, 0, 2, 2},
		{5, 5, 7, 7},
		{1, 1, 3, 3},
		{10, 10, 12, 12},
		{-5, -5, -3, -3},
	}
	for i, r := range rects {
		d.Insert(i, r, i)
		s.Insert(i, r, i)
	}
	return d, s
}

func idsIn(idx Index, q Rect) []int {
	var ids []int
	idx.Intersection(q, func(id int, _ any) bool {
		ids = append(ids, id)
		return true
	})
	sort.Ints(ids)
	return ids
}

func TestBackendsAgreeOnIntersection(t *testing.T) {
	d, s := seedBoth(t)
	defer d.Close()
	defer s.Close()

	queries := []Rect{
		{0, 0, 1, 1},
		{-10, -10, 20, 20},
		{100, 100, 101, 101},
		{2, 2, 6, 6},
	}
	for _, q := range queries {
		dIDs := idsIn(d, q)
		sIDs := idsIn(s, q)
		if len(dIDs) != len(sIDs) {
			t.Fatalf("query %v: default=%v spatial=%v", q, dIDs, sIDs)
		}
		for i := range dIDs {
			if dIDs[i] != sIDs[i] {
				t.Fatalf("query %v: default=%v spatial=%v", q, dIDs, sIDs)
			}
		}
	}
}

func TestBackendsAgreeOnCount(t *testing.T) {
	d, s := seedBoth(t)
	defer d.Close()
	defer s.Close()

	q := Rect{-10, -10, 20, 20}
	if d.Count(q) != s.Count(q) {
		t.Fatalf("Count mismatch: default=%d spatial=%d", d.Count(q), s.Count(q))
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(geo.Coordinate{X: 10, Y: 10}, 4)
	if r.MinX != 6 || r.MaxX != 14 || r.MinY != 6 || r.MaxY != 14 {
		t.Errorf("RectAround = %+v, want {6 6 14 14}", r)
	}
}

func TestRectBetween(t *testing.T) {
	r := RectBetween(geo.Coordinate{X: 5, Y: -2}, geo.Coordinate{X: 1, Y: 3})
	if r.MinX != 1 || r.MaxX != 5 || r.MinY != -2 || r.MaxY != 3 {
		t.Errorf("RectBetween = %+v, want {1 -2 5 3}", r)
	}
}
