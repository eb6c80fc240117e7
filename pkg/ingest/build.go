package ingest

import (
	"fmt"

	"transitch/pkg/builder"
	"transitch/pkg/network"
)

// BuildNetwork assembles a complete Network from the four external
// collaborators: every stop becomes a node, and every route variant's
// ordered stop sequence is snapped onto that variant's polyline to produce
// Connector edges (pkg/builder). Variants or paths referencing an unknown
// stop id fail fast with network.ErrInvalidInput, matching §7's
// fail-fast-at-ingestion rule.
func BuildNetwork(cfg builder.Config, stops StopProvider, variants VariantProvider, paths PathProvider, membership RouteMembership) (*network.Network[network.Stop], error) {
	stopRecords, err := stops.Stops()
	if err != nil {
		return nil, err
	}
	variantRecords, err := variants.Variants()
	if err != nil {
		return nil, err
	}
	pathRecords, err := paths.Paths()
	if err != nil {
		return nil, err
	}

	net := network.New[network.Stop]()
	stopByID := make(map[int64]network.Stop, len(stopRecords))
	for _, sr := range stopRecords {
		stop := network.Stop{ID: sr.ID, Coord: sr.Coord, Attrs: sr.Attrs}
		stopByID[sr.ID] = stop
		net.AddNode(sr.ID, stop)
	}

	pathByVariant := make(map[[2]int64]PathRecord, len(pathRecords))
	for _, pr := range pathRecords {
		pathByVariant[[2]int64{pr.RouteID, pr.VariantID}] = pr
	}

	for _, vr := range variantRecords {
		key := [2]int64{vr.RouteID, vr.VariantID}
		pr, ok := pathByVariant[key]
		if !ok {
			return nil, fmt.Errorf("%w: route %d variant %d has no path", network.ErrInvalidInput, vr.RouteID, vr.VariantID)
		}
		stopIDs := membership.StopsForVariant(vr.RouteID, vr.VariantID)
		if len(stopIDs) < 2 {
			return nil, fmt.Errorf("%w: route %d variant %d has fewer than 2 member stops", network.ErrInvalidInput, vr.RouteID, vr.VariantID)
		}

		orderedStops := make([]network.Stop, len(stopIDs))
		for i, id := range stopIDs {
			stop, ok := stopByID[id]
			if !ok {
				return nil, fmt.Errorf("%w: route %d variant %d references unknown stop %d", network.ErrInvalidInput, vr.RouteID, vr.VariantID, id)
			}
			orderedStops[i] = stop
		}

		variant := network.Variant{RouteID: vr.RouteID, VariantID: vr.VariantID, Length: vr.Length, RunningTime: vr.RunningTime}
		poly := network.Polyline{RouteID: pr.RouteID, VariantID: pr.VariantID, Coords: pr.Coords}

		edges, err := builder.BuildVariantEdges(cfg, variant, poly, orderedStops)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			net.AddEdge(e)
		}
	}

	return net, nil
}
