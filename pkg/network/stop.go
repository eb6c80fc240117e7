package network

import "transitch/pkg/geo"

// Stop is a node payload: a bus stop's location plus an opaque attribute
// bag the core never inspects (agency-specific fields like name, zone,
// accessibility flags live there).
type Stop struct {
	ID    int64
	Coord geo.Coordinate
	Attrs any
}

// Variant describes one direction of service on a route: the ordered stop
// sequence isn't carried here (that's RouteMembership's job, see
// pkg/ingest) but the variant's own scalar stats are.
type Variant struct {
	RouteID     int64
	VariantID   int64
	Length      float64 // metres, along the polyline
	RunningTime float64 // seconds, scheduled end-to-end
}

// Speed returns the variant's average scheduled speed in metres/second.
// Returns 0 if RunningTime is 0.
func (v Variant) Speed() float64 {
	if v.RunningTime == 0 {
		return 0
	}
	return v.Length / v.RunningTime
}

// Polyline is the physical shape a route variant follows on the ground.
type Polyline struct {
	RouteID   int64
	VariantID int64
	Coords    []geo.Coordinate
}
