// Package spatial provides window-query spatial indexes over axis-aligned
// rectangles, used by pkg/builder to find which route-polyline segments lie
// near a stop without scanning every segment.
package spatial

import (
	"math"

	"transitch/pkg/geo"
)

// Rect is an axis-aligned bounding box, min inclusive, max inclusive.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// RectAround returns the window spanning boxSize in every direction from c:
// [c.X-boxSize, c.Y-boxSize, c.X+boxSize, c.Y+boxSize].
func RectAround(c geo.Coordinate, boxSize float64) Rect {
	return Rect{MinX: c.X - boxSize, MinY: c.Y - boxSize, MaxX: c.X + boxSize, MaxY: c.Y + boxSize}
}

// RectBetween returns the axis-aligned bounding rectangle of a and b.
func RectBetween(a, b geo.Coordinate) Rect {
	return Rect{
		MinX: math.Min(a.X, b.X), MinY: math.Min(a.Y, b.Y),
		MaxX: math.Max(a.X, b.X), MaxY: math.Max(a.Y, b.Y),
	}
}

// Index is a spatial window-query index over integer-identified rectangles
// carrying an arbitrary payload.
type Index interface {
	// Insert adds id/rect/payload to the index.
	Insert(id int, rect Rect, payload any)
	// Intersection calls visit once per entry whose rect overlaps query.
	// Iteration stops early if visit returns false.
	Intersection(query Rect, visit func(id int, payload any) bool)
	// Count returns the number of entries overlapping query.
	Count(query Rect) int
	// Close releases any resources held by the index.
	Close()
}

// Backend selects which Index implementation New constructs.
type Backend string

const (
	// BackendDefault is a linear scan over inserted rectangles: O(n) per
	// query, but useful as a ground truth to test BackendSpatial against,
	// and cheap enough for small networks.
	BackendDefault Backend = "default"
	// BackendSpatial is a real R-tree (github.com/tidwall/rtree).
	BackendSpatial Backend = "spatial"
)

// New constructs an Index using the requested backend.
func New(backend Backend) Index {
	switch backend {
	case BackendSpatial:
		return newRTreeIndex()
	default:
		return newLinearIndex()
	}
}

func overlaps(a, b Rect) bool {
	return a.MinX <= b.MaxX && a.MaxX >= b.MinX && a.MinY <= b.MaxY && a.MaxY >= b.MinY
}
