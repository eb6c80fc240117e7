package spatial

import "github.com/tidwall/rtree"

type rtreePayload struct {
	id      int
	payload any
}

// rtreeIndex is the "spatial" backend: a real R-tree, used the same way
// the original implementation drives its own rtree.Index — insert once per
// polyline segment at ingestion time, then window-query per stop.
type rtreeIndex struct {
	tree *rtree.RTreeG[rtreePayload]
}

func newRTreeIndex() *rtreeIndex {
	return &rtreeIndex{tree: &rtree.RTreeG[rtreePayload]{}}
}

func (r *rtreeIndex) Insert(id int, rect Rect, payload any) {
	min := [2]float64{rect.MinX, rect.MinY}
	max := [2]float64{rect.MaxX, rect.MaxY}
	r.tree.Insert(min, max, rtreePayload{id: id, payload: payload})
}

func (r *rtreeIndex) Intersection(query Rect, visit func(id int, payload any) bool) {
	min := [2]float64{query.MinX, query.MinY}
	max := [2]float64{query.MaxX, query.MaxY}
	r.tree.Search(min, max, func(_, _ [2]float64, data rtreePayload) bool {
		return visit(data.id, data.payload)
	})
}

func (r *rtreeIndex) Count(query Rect) int {
	n := 0
	r.Intersection(query, func(int, any) bool {
		n++
		return true
	})
	return n
}

func (r *rtreeIndex) Close() {
	r.tree = &rtree.RTreeG[rtreePayload]{}
}
