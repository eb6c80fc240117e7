package ingest

import (
	"errors"
	"strings"
	"testing"

	"transitch/pkg/network"
)

func TestNDJSONStopProvider(t *testing.T) {
	input := `{"StopId":1,"X":10,"Y":20}
{"StopId":2,"X":30,"Y":40,"Attrs":{"name":"Ben Thanh"}}
`
	stops, err := NewNDJSONStopProvider(strings.NewReader(input)).Stops()
	if err != nil {
		t.Fatalf("Stops: %v", err)
	}
	if len(stops) != 2 {
		t.Fatalf("got %d stops, want 2", len(stops))
	}
	if stops[0].ID != 1 || stops[0].Coord.X != 10 || stops[0].Coord.Y != 20 {
		t.Errorf("stops[0] = %+v", stops[0])
	}
	if stops[1].Attrs == nil {
		t.Errorf("stops[1].Attrs should be preserved opaque")
	}
}

func TestNDJSONStopProviderRejectsNonFiniteCoordinate(t *testing.T) {
	input := `{"StopId":1,"X":"not-a-number","Y":20}` + "\n"
	if _, err := NewNDJSONStopProvider(strings.NewReader(input)).Stops(); err == nil {
		t.Fatalf("expected error for malformed coordinate")
	}

	nan := `{"StopId":1,"X":NaN,"Y":20}` + "\n"
	if _, err := NewNDJSONStopProvider(strings.NewReader(nan)).Stops(); err == nil {
		t.Fatalf("expected error for NaN coordinate")
	}
}

func TestNDJSONStopProviderSkipsBlankLines(t *testing.T) {
	input := "{\"StopId\":1,\"X\":1,\"Y\":1}\n\n\n{\"StopId\":2,\"X\":2,\"Y\":2}\n"
	stops, err := NewNDJSONStopProvider(strings.NewReader(input)).Stops()
	if err != nil {
		t.Fatalf("Stops: %v", err)
	}
	if len(stops) != 2 {
		t.Fatalf("got %d stops, want 2", len(stops))
	}
}

func TestNDJSONVariantProvider(t *testing.T) {
	input := `{"RouteId":1,"RouteVarId":1,"Distance":1000,"RunningTime":600}` + "\n"
	variants, err := NewNDJSONVariantProvider(strings.NewReader(input)).Variants()
	if err != nil {
		t.Fatalf("Variants: %v", err)
	}
	if len(variants) != 1 || variants[0].Length != 1000 || variants[0].RunningTime != 600 {
		t.Errorf("variants = %+v", variants)
	}
}

func TestNDJSONVariantProviderRejectsNonPositiveRunningTime(t *testing.T) {
	input := `{"RouteId":1,"RouteVarId":1,"Distance":1000,"RunningTime":0}` + "\n"
	_, err := NewNDJSONVariantProvider(strings.NewReader(input)).Variants()
	if !errors.Is(err, network.ErrInvalidInput) {
		t.Fatalf("err = %v, want wrapping ErrInvalidInput", err)
	}
}

func TestNDJSONPathProvider(t *testing.T) {
	input := `{"RouteId":1,"RouteVarId":1,"Coords":[[0,0],[100,0],[200,0]]}` + "\n"
	paths, err := NewNDJSONPathProvider(strings.NewReader(input)).Paths()
	if err != nil {
		t.Fatalf("Paths: %v", err)
	}
	if len(paths) != 1 || len(paths[0].Coords) != 3 {
		t.Fatalf("paths = %+v", paths)
	}
	if paths[0].Coords[1].X != 100 {
		t.Errorf("Coords[1].X = %v, want 100", paths[0].Coords[1].X)
	}
}

func TestNDJSONPathProviderRejectsShortPolyline(t *testing.T) {
	input := `{"RouteId":1,"RouteVarId":1,"Coords":[[0,0]]}` + "\n"
	_, err := NewNDJSONPathProvider(strings.NewReader(input)).Paths()
	if !errors.Is(err, network.ErrInvalidInput) {
		t.Fatalf("err = %v, want wrapping ErrInvalidInput", err)
	}
}

func TestNDJSONMembership(t *testing.T) {
	input := `{"RouteId":1,"RouteVarId":1,"Stops":[1,2,3]}` + "\n" +
		`{"RouteId":1,"RouteVarId":2,"Stops":[3,2,1]}` + "\n"
	m, err := NewNDJSONMembership(strings.NewReader(input))
	if err != nil {
		t.Fatalf("NewNDJSONMembership: %v", err)
	}
	got := m.StopsForVariant(1, 1)
	want := []int64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("StopsForVariant(1,1)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if len(m.StopsForVariant(99, 99)) != 0 {
		t.Errorf("unknown variant should return empty, not panic")
	}
}

func TestNDJSONMembershipRejectsShortList(t *testing.T) {
	input := `{"RouteId":1,"RouteVarId":1,"Stops":[1]}` + "\n"
	if _, err := NewNDJSONMembership(strings.NewReader(input)); err == nil {
		t.Fatalf("expected error for membership with fewer than 2 stops")
	}
}
