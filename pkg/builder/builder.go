// Package builder implements the GraphBuilder: snapping an ordered list of
// stops onto the polyline of the route variant they ride, and emitting one
// travel-time-weighted Connector per consecutive stop pair, carrying the
// real polyline shape between them.
package builder

import (
	"fmt"
	"math"

	"transitch/pkg/geo"
	"transitch/pkg/network"
	"transitch/pkg/spatial"
)

// Config controls the spatial index used to accelerate stop snapping.
type Config struct {
	Backend spatial.Backend
	// BoxSize is the half-width (in the network's planar units) of the
	// window queried around each stop when looking for nearby polyline
	// segments: the window reaches BoxSize from the stop in every direction.
	BoxSize float64
}

// DefaultConfig matches the reference implementation's defaults.
func DefaultConfig() Config {
	return Config{Backend: spatial.BackendSpatial, BoxSize: 150}
}

// snap is a stop's projected position onto a polyline: which segment it
// falls on, how far along that segment (t in [0,1]), the projected point,
// and the perpendicular distance from the stop to that point.
type snap struct {
	segment int
	t       float64
	point   geo.Coordinate
	dist    float64
}

// BuildVariantEdges snaps orderedStops onto poly (in the order given — the
// order is assumed to already follow the direction of travel along poly;
// see the stop-ordering note on ingest.RouteMembership) and returns one
// Connector per consecutive pair.
func BuildVariantEdges(cfg Config, variant network.Variant, poly network.Polyline, orderedStops []network.Stop) ([]*network.Connector, error) {
	if len(poly.Coords) < 2 {
		return nil, fmt.Errorf("%w: polyline for route %d variant %d has fewer than 2 points", network.ErrInvalidInput, poly.RouteID, poly.VariantID)
	}
	if len(orderedStops) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 stops to build edges", network.ErrInvalidInput)
	}

	idx := spatial.New(cfg.Backend)
	defer idx.Close()
	for i := 0; i+1 < len(poly.Coords); i++ {
		a, b := poly.Coords[i], poly.Coords[i+1]
		idx.Insert(i, spatial.RectBetween(a, b), i)
	}

	snaps := make([]snap, len(orderedStops))
	for i, stop := range orderedStops {
		s, err := bestSnap(idx, poly.Coords, stop.Coord, cfg.BoxSize)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", stop.ID, err)
		}
		snaps[i] = s
	}

	edges := make([]*network.Connector, 0, len(orderedStops)-1)
	for i := 0; i+1 < len(orderedStops); i++ {
		path, length := slicePath(poly.Coords, snaps[i], snaps[i+1])
		path = append(append([]geo.Coordinate{orderedStops[i].Coord}, path...), orderedStops[i+1].Coord)
		edges = append(edges, &network.Connector{
			RouteID:   variant.RouteID,
			VariantID: variant.VariantID,
			SrcID:     orderedStops[i].ID,
			DestID:    orderedStops[i+1].ID,
			TimeSec:   travelTime(variant, length),
			LengthM:   length,
			// RealPath is wrapped with the actual stop coordinates at each
			// end; length/time are computed over the projected path only.
			RealPath: path,
		})
	}
	return edges, nil
}

// travelTime scales a sub-segment's length by the variant's average speed.
// Falls back to 1 length-unit-per-second if the variant carries no overall
// length (so TimeSec degrades gracefully to LengthM rather than to zero).
func travelTime(variant network.Variant, length float64) float64 {
	if variant.Length > 0 {
		return length * (variant.RunningTime / variant.Length)
	}
	return length
}

// bestSnap finds the polyline segment closest to x, searching the spatial
// index first and falling back to a full linear scan if the index's window
// around x (sized BoxSize) happens to miss every candidate segment — e.g. a
// stop recorded farther from its route than BoxSize allows.
func bestSnap(idx spatial.Index, coords []geo.Coordinate, x geo.Coordinate, boxSize float64) (snap, error) {
	best := snap{segment: -1, dist: math.Inf(1)}

	consider := func(seg int) {
		a, b := coords[seg], coords[seg+1]
		p, d := geo.Project(x, a, b)
		if d < best.dist {
			best = snap{segment: seg, point: p, dist: d, t: segmentT(a, b, p)}
		}
	}

	idx.Intersection(spatial.RectAround(x, boxSize), func(id int, _ any) bool {
		consider(id)
		return true
	})

	if best.segment == -1 {
		for i := 0; i+1 < len(coords); i++ {
			consider(i)
		}
	}
	if best.segment == -1 {
		return snap{}, fmt.Errorf("%w: no polyline segment found", network.ErrInvalidInput)
	}
	return best, nil
}

func segmentT(a, b, p geo.Coordinate) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx != 0 {
		return (p.X - a.X) / dx
	}
	if dy != 0 {
		return (p.Y - a.Y) / dy
	}
	return 0
}

// slicePath walks poly's vertices between two snapped positions, returning
// the internal projected path followed and its total length. Callers wrap
// the result with the actual stop coordinates at each end. Assumes
// to.segment >= from.segment, which holds for stops given in travel order.
func slicePath(coords []geo.Coordinate, from, to snap) ([]geo.Coordinate, float64) {
	if from.segment == to.segment {
		return []geo.Coordinate{from.point, to.point}, geo.Distance(from.point, to.point)
	}

	path := []geo.Coordinate{from.point}
	length := 0.0

	segEnd := from.segment + 1
	length += geo.Distance(from.point, coords[segEnd])
	path = append(path, coords[segEnd])

	for seg := from.segment + 1; seg < to.segment; seg++ {
		a, b := coords[seg], coords[seg+1]
		length += geo.Distance(a, b)
		path = append(path, b)
	}

	length += geo.Distance(coords[to.segment], to.point)
	path = append(path, to.point)

	return path, length
}
