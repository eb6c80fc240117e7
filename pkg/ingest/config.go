package ingest

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"transitch/pkg/ch"
	"transitch/pkg/spatial"
)

// Config is the host application's ingestion and preprocessing tuning
// knobs, loaded from a YAML file. LoadConfig starts from DefaultConfig and
// rejects a non-positive box_size, local_steps or periodic_batch and an
// unknown ch_heuristic; spatial_backend is not validated, and any value
// other than "spatial" selects spatial.New's linear-scan backend.
type Config struct {
	SpatialBackend spatial.Backend `yaml:"spatial_backend"`
	BoxSize        float64         `yaml:"box_size"`
	LocalSteps     int             `yaml:"local_steps"`
	CHHeuristic    ch.Heuristic    `yaml:"ch_heuristic"`
	PeriodicBatch  int             `yaml:"periodic_batch"`
}

// DefaultConfig mirrors builder.DefaultConfig and ch.DefaultConfig so a
// missing config file degrades to the library's own built-in defaults.
func DefaultConfig() Config {
	return Config{
		SpatialBackend: spatial.BackendSpatial,
		BoxSize:        150,
		LocalSteps:     50,
		CHHeuristic:    ch.HeuristicLazy,
		PeriodicBatch:  100,
	}
}

// LoadConfig parses a YAML document into Config, starting from
// DefaultConfig so fields absent from the document keep their default.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("ingest: parse config: %w", err)
	}
	if cfg.BoxSize <= 0 {
		return Config{}, fmt.Errorf("ingest: box_size must be positive, got %v", cfg.BoxSize)
	}
	if cfg.LocalSteps <= 0 {
		return Config{}, fmt.Errorf("ingest: local_steps must be positive, got %v", cfg.LocalSteps)
	}
	if cfg.PeriodicBatch <= 0 {
		return Config{}, fmt.Errorf("ingest: periodic_batch must be positive, got %v", cfg.PeriodicBatch)
	}
	switch cfg.CHHeuristic {
	case ch.HeuristicLazy, ch.HeuristicPeriodic, ch.HeuristicRandom:
	default:
		return Config{}, fmt.Errorf("ingest: unknown ch_heuristic %q", cfg.CHHeuristic)
	}
	return cfg, nil
}
