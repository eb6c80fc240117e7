package ingest

import (
	"testing"

	"transitch/pkg/ch"
	"transitch/pkg/spatial"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(``))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := DefaultConfig()
	if cfg != want {
		t.Errorf("LoadConfig(empty) = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	doc := `
spatial_backend: default
box_size: 75
local_steps: 20
ch_heuristic: periodic
periodic_batch: 50
`
	cfg, err := LoadConfig([]byte(doc))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SpatialBackend != spatial.BackendDefault {
		t.Errorf("SpatialBackend = %v, want default", cfg.SpatialBackend)
	}
	if cfg.BoxSize != 75 {
		t.Errorf("BoxSize = %v, want 75", cfg.BoxSize)
	}
	if cfg.LocalSteps != 20 {
		t.Errorf("LocalSteps = %v, want 20", cfg.LocalSteps)
	}
	if cfg.CHHeuristic != ch.HeuristicPeriodic {
		t.Errorf("CHHeuristic = %v, want periodic", cfg.CHHeuristic)
	}
	if cfg.PeriodicBatch != 50 {
		t.Errorf("PeriodicBatch = %v, want 50", cfg.PeriodicBatch)
	}
}

func TestLoadConfigRejectsUnknownHeuristic(t *testing.T) {
	doc := `ch_heuristic: quantum`
	if _, err := LoadConfig([]byte(doc)); err == nil {
		t.Fatalf("expected error for unknown ch_heuristic")
	}
}

func TestLoadConfigRejectsNonPositiveBoxSize(t *testing.T) {
	doc := `box_size: -1`
	if _, err := LoadConfig([]byte(doc)); err == nil {
		t.Fatalf("expected error for non-positive box_size")
	}
}
