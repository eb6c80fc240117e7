// Package chio (de)serializes a Contraction Hierarchies ch.Result to a
// compact binary cache file, so preprocessing a large network only needs to
// run once.
package chio

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"unsafe"

	"transitch/pkg/ch"
	"transitch/pkg/network"
)

const (
	magicBytes = "TCHCACHE"
	version    = uint32(1)

	kindConnector byte = 0
	kindShortcut  byte = 1
)

type fileHeader struct {
	Magic    [8]byte
	Version  uint32
	NumNodes uint32
	NumEdges uint32
}

// edgeTable flattens Result.Edges() into index-addressable columnar arrays:
// a Shortcut's Left/Right reference the table index of their own entry, and
// since the table is built bottom-up, a shortcut's children are always
// written before it.
type edgeTable struct {
	kind      []byte
	routeID   []int64
	variantID []int64
	srcID     []int64
	destID    []int64
	timeSec   []float64
	lengthM   []float64
	left      []int32
	right     []int32
}

func buildEdgeTable(edges []network.Edge) (*edgeTable, map[network.Edge]int32) {
	t := &edgeTable{}
	index := make(map[network.Edge]int32, len(edges)*2)

	var visit func(e network.Edge) int32
	visit = func(e network.Edge) int32 {
		if idx, ok := index[e]; ok {
			return idx
		}
		switch v := e.(type) {
		case *network.Shortcut:
			li := visit(v.Left)
			ri := visit(v.Right)
			idx := int32(len(t.kind))
			t.kind = append(t.kind, kindShortcut)
			t.routeID = append(t.routeID, 0)
			t.variantID = append(t.variantID, 0)
			t.srcID = append(t.srcID, 0)
			t.destID = append(t.destID, 0)
			t.timeSec = append(t.timeSec, 0)
			t.lengthM = append(t.lengthM, 0)
			t.left = append(t.left, li)
			t.right = append(t.right, ri)
			index[e] = idx
			return idx
		case *network.Connector:
			idx := int32(len(t.kind))
			t.kind = append(t.kind, kindConnector)
			t.routeID = append(t.routeID, v.RouteID)
			t.variantID = append(t.variantID, v.VariantID)
			t.srcID = append(t.srcID, v.SrcID)
			t.destID = append(t.destID, v.DestID)
			t.timeSec = append(t.timeSec, v.TimeSec)
			t.lengthM = append(t.lengthM, v.LengthM)
			t.left = append(t.left, -1)
			t.right = append(t.right, -1)
			index[e] = idx
			return idx
		default:
			panic(fmt.Sprintf("chio: unsupported edge type %T", e))
		}
	}

	for _, e := range edges {
		visit(e)
	}
	return t, index
}

func (t *edgeTable) rebuild() []network.Edge {
	out := make([]network.Edge, len(t.kind))
	for i := range t.kind {
		switch t.kind[i] {
		case kindConnector:
			out[i] = &network.Connector{
				RouteID: t.routeID[i], VariantID: t.variantID[i],
				SrcID: t.srcID[i], DestID: t.destID[i],
				TimeSec: t.timeSec[i], LengthM: t.lengthM[i],
			}
		case kindShortcut:
			out[i] = network.NewShortcut(out[t.left[i]], out[t.right[i]])
		default:
			panic(fmt.Sprintf("chio: corrupt edge kind byte %d at index %d", t.kind[i], i))
		}
	}
	return out
}

// WriteBinary serializes r to path via a temp-file-then-rename, so a reader
// never observes a partially-written cache.
func WriteBinary(path string, r *ch.Result) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(tmpPath)
	}()

	cw := &crc32Writer{w: f, hash: crc32.NewIEEE()}

	nodeIDs := make([]int64, 0, len(r.Level))
	levels := make([]int32, 0, len(r.Level))
	for id, lvl := range r.Level {
		nodeIDs = append(nodeIDs, id)
		levels = append(levels, int32(lvl))
	}

	table, _ := buildEdgeTable(r.Edges())

	hdr := fileHeader{Version: version, NumNodes: uint32(len(nodeIDs)), NumEdges: uint32(len(table.kind))}
	copy(hdr.Magic[:], magicBytes)
	if err := binary.Write(cw, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if err := writeInt64Slice(cw, nodeIDs); err != nil {
		return fmt.Errorf("write node ids: %w", err)
	}
	if err := writeInt32Slice(cw, levels); err != nil {
		return fmt.Errorf("write levels: %w", err)
	}
	if _, err := cw.Write(table.kind); err != nil {
		return fmt.Errorf("write edge kinds: %w", err)
	}
	if err := writeInt64Slice(cw, table.routeID); err != nil {
		return fmt.Errorf("write route ids: %w", err)
	}
	if err := writeInt64Slice(cw, table.variantID); err != nil {
		return fmt.Errorf("write variant ids: %w", err)
	}
	if err := writeInt64Slice(cw, table.srcID); err != nil {
		return fmt.Errorf("write src ids: %w", err)
	}
	if err := writeInt64Slice(cw, table.destID); err != nil {
		return fmt.Errorf("write dest ids: %w", err)
	}
	if err := writeFloat64Slice(cw, table.timeSec); err != nil {
		return fmt.Errorf("write time: %w", err)
	}
	if err := writeFloat64Slice(cw, table.lengthM); err != nil {
		return fmt.Errorf("write length: %w", err)
	}
	if err := writeInt32Slice(cw, table.left); err != nil {
		return fmt.Errorf("write left index: %w", err)
	}
	if err := writeInt32Slice(cw, table.right); err != nil {
		return fmt.Errorf("write right index: %w", err)
	}

	checksum := cw.hash.Sum32()
	if err := binary.Write(f, binary.LittleEndian, checksum); err != nil {
		return fmt.Errorf("write crc32: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return os.Rename(tmpPath, path)
}

// ReadBinary deserializes a Result previously written by WriteBinary.
func ReadBinary(path string) (*ch.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	cr := &crc32Reader{r: f, hash: crc32.NewIEEE()}

	var hdr fileHeader
	if err := binary.Read(cr, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if string(hdr.Magic[:]) != magicBytes {
		return nil, fmt.Errorf("invalid magic bytes: %q", hdr.Magic)
	}
	if hdr.Version != version {
		return nil, fmt.Errorf("unsupported version: %d", hdr.Version)
	}

	nodeIDs, err := readInt64Slice(cr, int(hdr.NumNodes))
	if err != nil {
		return nil, fmt.Errorf("read node ids: %w", err)
	}
	levels, err := readInt32Slice(cr, int(hdr.NumNodes))
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}

	table := &edgeTable{}
	table.kind = make([]byte, hdr.NumEdges)
	if _, err := io.ReadFull(cr, table.kind); err != nil {
		return nil, fmt.Errorf("read edge kinds: %w", err)
	}
	if table.routeID, err = readInt64Slice(cr, int(hdr.NumEdges)); err != nil {
		return nil, fmt.Errorf("read route ids: %w", err)
	}
	if table.variantID, err = readInt64Slice(cr, int(hdr.NumEdges)); err != nil {
		return nil, fmt.Errorf("read variant ids: %w", err)
	}
	if table.srcID, err = readInt64Slice(cr, int(hdr.NumEdges)); err != nil {
		return nil, fmt.Errorf("read src ids: %w", err)
	}
	if table.destID, err = readInt64Slice(cr, int(hdr.NumEdges)); err != nil {
		return nil, fmt.Errorf("read dest ids: %w", err)
	}
	if table.timeSec, err = readFloat64Slice(cr, int(hdr.NumEdges)); err != nil {
		return nil, fmt.Errorf("read time: %w", err)
	}
	if table.lengthM, err = readFloat64Slice(cr, int(hdr.NumEdges)); err != nil {
		return nil, fmt.Errorf("read length: %w", err)
	}
	if table.left, err = readInt32Slice(cr, int(hdr.NumEdges)); err != nil {
		return nil, fmt.Errorf("read left index: %w", err)
	}
	if table.right, err = readInt32Slice(cr, int(hdr.NumEdges)); err != nil {
		return nil, fmt.Errorf("read right index: %w", err)
	}

	expected := cr.hash.Sum32()
	var stored uint32
	if err := binary.Read(f, binary.LittleEndian, &stored); err != nil {
		return nil, fmt.Errorf("read crc32: %w", err)
	}
	if stored != expected {
		return nil, fmt.Errorf("crc32 mismatch: stored=%08x computed=%08x", stored, expected)
	}

	level := make(map[int64]int, len(nodeIDs))
	for i, id := range nodeIDs {
		level[id] = int(levels[i])
	}
	return ch.FromParts(level, table.rebuild()), nil
}

// Zero-copy I/O helpers using unsafe.Slice, matching the fixed-width-array
// encoding idiom used throughout this cache format.

func writeInt64Slice(w io.Writer, s []int64) error {
	if len(s) == 0 {
		return nil
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*8)
	_, err := w.Write(b)
	return err
}

func writeInt32Slice(w io.Writer, s []int32) error {
	if len(s) == 0 {
		return nil
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*4)
	_, err := w.Write(b)
	return err
}

func writeFloat64Slice(w io.Writer, s []float64) error {
	if len(s) == 0 {
		return nil
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*8)
	_, err := w.Write(b)
	return err
}

func readInt64Slice(r io.Reader, n int) ([]int64, error) {
	if n == 0 {
		return nil, nil
	}
	s := make([]int64, n)
	b := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), n*8)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return s, nil
}

func readInt32Slice(r io.Reader, n int) ([]int32, error) {
	if n == 0 {
		return nil, nil
	}
	s := make([]int32, n)
	b := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), n*4)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return s, nil
}

func readFloat64Slice(r io.Reader, n int) ([]float64, error) {
	if n == 0 {
		return nil, nil
	}
	s := make([]float64, n)
	b := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), n*8)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return s, nil
}

type crc32Writer struct {
	w    io.Writer
	hash crc32Hash
}

type crc32Hash interface {
	Write([]byte) (int, error)
	Sum32() uint32
}

func (cw *crc32Writer) Write(p []byte) (int, error) {
	cw.hash.Write(p)
	return cw.w.Write(p)
}

type crc32Reader struct {
	r    io.Reader
	hash crc32Hash
}

func (cr *crc32Reader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		cr.hash.Write(p[:n])
	}
	return n, err
}
