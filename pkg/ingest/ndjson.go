package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"transitch/pkg/geo"
	"transitch/pkg/network"
)

// maxLine bounds a single NDJSON line (a path record's polyline can run to
// thousands of coordinate pairs).
const maxLine = 8 * 1024 * 1024

// scanLines runs decode over every non-blank line of r, stopping at the
// first error either side produces.
func scanLines(r io.Reader, decode func(line []byte) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := decode(line); err != nil {
			return fmt.Errorf("%w: line %d: %v", network.ErrInvalidInput, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %v", network.ErrInvalidInput, err)
	}
	return nil
}

type stopLine struct {
	StopID int64   `json:"StopId"`
	X      float64 `json:"X"`
	Y      float64 `json:"Y"`
	Attrs  any     `json:"Attrs,omitempty"`
}

// NDJSONStopProvider reads StopRecords, one JSON object per line, from r.
type NDJSONStopProvider struct {
	r io.Reader
}

// NewNDJSONStopProvider wraps r as a StopProvider.
func NewNDJSONStopProvider(r io.Reader) *NDJSONStopProvider {
	return &NDJSONStopProvider{r: r}
}

func (p *NDJSONStopProvider) Stops() ([]StopRecord, error) {
	var out []StopRecord
	err := scanLines(p.r, func(line []byte) error {
		var sl stopLine
		if err := json.Unmarshal(line, &sl); err != nil {
			return err
		}
		if math.IsNaN(sl.X) || math.IsInf(sl.X, 0) || math.IsNaN(sl.Y) || math.IsInf(sl.Y, 0) {
			return fmt.Errorf("stop %d: non-finite coordinate", sl.StopID)
		}
		out = append(out, StopRecord{
			ID:    sl.StopID,
			Coord: geo.Coordinate{X: sl.X, Y: sl.Y},
			Attrs: sl.Attrs,
		})
		return nil
	})
	return out, err
}

type variantLine struct {
	RouteID     int64   `json:"RouteId"`
	VariantID   int64   `json:"RouteVarId"`
	Distance    float64 `json:"Distance"`
	RunningTime float64 `json:"RunningTime"`
}

// NDJSONVariantProvider reads VariantRecords, one JSON object per line, from r.
type NDJSONVariantProvider struct {
	r io.Reader
}

// NewNDJSONVariantProvider wraps r as a VariantProvider.
func NewNDJSONVariantProvider(r io.Reader) *NDJSONVariantProvider {
	return &NDJSONVariantProvider{r: r}
}

func (p *NDJSONVariantProvider) Variants() ([]VariantRecord, error) {
	var out []VariantRecord
	err := scanLines(p.r, func(line []byte) error {
		var vl variantLine
		if err := json.Unmarshal(line, &vl); err != nil {
			return err
		}
		if vl.RunningTime <= 0 {
			return fmt.Errorf("route %d variant %d: running time must be positive, got %v", vl.RouteID, vl.VariantID, vl.RunningTime)
		}
		out = append(out, VariantRecord{
			RouteID:     vl.RouteID,
			VariantID:   vl.VariantID,
			Length:      vl.Distance,
			RunningTime: vl.RunningTime,
		})
		return nil
	})
	return out, err
}

type pathLine struct {
	RouteID   int64        `json:"RouteId"`
	VariantID int64        `json:"RouteVarId"`
	Coords    [][2]float64 `json:"Coords"`
}

// NDJSONPathProvider reads PathRecords, one JSON object per line, from r.
type NDJSONPathProvider struct {
	r io.Reader
}

// NewNDJSONPathProvider wraps r as a PathProvider.
func NewNDJSONPathProvider(r io.Reader) *NDJSONPathProvider {
	return &NDJSONPathProvider{r: r}
}

func (p *NDJSONPathProvider) Paths() ([]PathRecord, error) {
	var out []PathRecord
	err := scanLines(p.r, func(line []byte) error {
		var pl pathLine
		if err := json.Unmarshal(line, &pl); err != nil {
			return err
		}
		if len(pl.Coords) < 2 {
			return fmt.Errorf("route %d variant %d: polyline has fewer than 2 points", pl.RouteID, pl.VariantID)
		}
		coords := make([]geo.Coordinate, len(pl.Coords))
		for i, c := range pl.Coords {
			coords[i] = geo.Coordinate{X: c[0], Y: c[1]}
		}
		out = append(out, PathRecord{RouteID: pl.RouteID, VariantID: pl.VariantID, Coords: coords})
		return nil
	})
	return out, err
}

type membershipLine struct {
	RouteID   int64   `json:"RouteId"`
	VariantID int64   `json:"RouteVarId"`
	Stops     []int64 `json:"Stops"`
}

// NDJSONMembership reads route membership, one JSON object per line, from r.
// The reader is drained eagerly at construction time since
// StopsForVariant must answer by value, not by re-scanning.
type NDJSONMembership struct {
	byVariant map[[2]int64][]int64
}

// NewNDJSONMembership reads every membership line from r and indexes it by
// (RouteId, RouteVarId).
func NewNDJSONMembership(r io.Reader) (*NDJSONMembership, error) {
	m := &NDJSONMembership{byVariant: make(map[[2]int64][]int64)}
	err := scanLines(r, func(line []byte) error {
		var ml membershipLine
		if err := json.Unmarshal(line, &ml); err != nil {
			return err
		}
		if len(ml.Stops) < 2 {
			return fmt.Errorf("route %d variant %d: needs at least 2 stops", ml.RouteID, ml.VariantID)
		}
		m.byVariant[[2]int64{ml.RouteID, ml.VariantID}] = ml.Stops
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *NDJSONMembership) StopsForVariant(routeID, variantID int64) []int64 {
	return m.byVariant[[2]int64{routeID, variantID}]
}
