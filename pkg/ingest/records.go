// Package ingest adapts newline-delimited JSON stop/variant/path dumps (and
// a small YAML config file) into the shapes pkg/builder and pkg/network
// consume. None of this is part of the core graph algorithms; it is the
// external-collaborator plumbing the core reaches only through the
// interfaces below.
package ingest

import "transitch/pkg/geo"

// StopRecord is one stop as read from an external source, before it becomes
// a network.Stop.
type StopRecord struct {
	ID    int64
	Coord geo.Coordinate
	Attrs any
}

// VariantRecord is one route variant's scalar stats, before it becomes a
// network.Variant.
type VariantRecord struct {
	RouteID     int64
	VariantID   int64
	Length      float64
	RunningTime float64
}

// PathRecord is one route variant's physical polyline, before it becomes a
// network.Polyline.
type PathRecord struct {
	RouteID   int64
	VariantID int64
	Coords    []geo.Coordinate
}

// StopProvider yields every stop an ingestion run should consider.
type StopProvider interface {
	Stops() ([]StopRecord, error)
}

// VariantProvider yields every route variant's scalar stats.
type VariantProvider interface {
	Variants() ([]VariantRecord, error)
}

// PathProvider yields every route variant's physical polyline.
type PathProvider interface {
	Paths() ([]PathRecord, error)
}

// RouteMembership maps a route variant to the ordered stop ids it visits.
// It is keyed by (routeID, variantID), never by route alone: a route's two
// directions (outbound/inbound) visit their stops in different orders, and
// callers whose source data only distinguishes by route must resolve
// direction into a variant id before calling StopsForVariant.
type RouteMembership interface {
	StopsForVariant(routeID, variantID int64) []int64
}
