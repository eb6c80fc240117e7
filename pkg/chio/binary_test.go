package chio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"transitch/pkg/ch"
	"transitch/pkg/internal/fixtures"
)

func isInf(f float64) bool { return math.IsInf(f, 1) }

func TestWriteReadRoundTrip(t *testing.T) {
	net := fixtures.Random10()
	r := ch.Contract(net, ch.DefaultConfig())

	path := filepath.Join(t.TempDir(), "cache.bin")
	if err := WriteBinary(path, r); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}

	r2, err := ReadBinary(path)
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}

	if r2.NumNodes != r.NumNodes {
		t.Errorf("NumNodes = %d, want %d", r2.NumNodes, r.NumNodes)
	}
	for id, lvl := range r.Level {
		if got := r2.Level[id]; got != lvl {
			t.Errorf("node %d: level=%d, want %d", id, got, lvl)
		}
	}

	for src := int64(0); src < 10; src++ {
		for dest := int64(0); dest < 10; dest++ {
			q1 := ch.NewQuery(r, src, dest)
			q1.Run()
			q2 := ch.NewQuery(r2, src, dest)
			q2.Run()

			d1, d2 := q1.Dist(), q2.Dist()
			if isInf(d1) != isInf(d2) {
				t.Errorf("src=%d dest=%d: reachability mismatch after round-trip", src, dest)
				continue
			}
			if !isInf(d1) && d1 != d2 {
				t.Errorf("src=%d dest=%d: dist=%v after round-trip, want %v", src, dest, d2, d1)
			}
		}
	}
}

func TestReadBinaryRejectsBadMagic(t *testing.T) {
	net := fixtures.Linear()
	r := ch.Contract(net, ch.DefaultConfig())
	path := filepath.Join(t.TempDir(), "cache.bin")
	if err := WriteBinary(path, r); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}

	// Corrupt the magic bytes in place.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data[0] = 'X'
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadBinary(path); err == nil {
		t.Error("ReadBinary accepted a file with corrupt magic bytes")
	}
}
