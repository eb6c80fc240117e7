package network

import "transitch/pkg/geo"

// Connector is an atomic edge between two stops, produced by the graph
// builder from a single route-variant segment.
type Connector struct {
	RouteID   int64
	VariantID int64
	SrcID     int64
	DestID    int64
	TimeSec   float64
	LengthM   float64
	RealPath  []geo.Coordinate
}

func (c *Connector) Src() int64      { return c.SrcID }
func (c *Connector) Dest() int64     { return c.DestID }
func (c *Connector) Weight() float64 { return c.TimeSec }
func (c *Connector) Unpack() []Edge  { return []Edge{c} }

// Shortcut is the contraction-hierarchies tree-node edge: a pair of child
// edges whose weight is their sum and whose unpacked form is the
// concatenation of their unpacked forms, left to right.
type Shortcut struct {
	Left, Right Edge
}

// NewShortcut builds the shortcut representing left followed by right.
// left.Dest() must equal right.Src().
func NewShortcut(left, right Edge) *Shortcut {
	return &Shortcut{Left: left, Right: right}
}

func (s *Shortcut) Src() int64      { return s.Left.Src() }
func (s *Shortcut) Dest() int64     { return s.Right.Dest() }
func (s *Shortcut) Weight() float64 { return s.Left.Weight() + s.Right.Weight() }

// Unpack flattens the shortcut's binary tree into atomic edges, left child
// before right child, using an explicit stack so arbitrarily deep contraction
// hierarchies never risk a stack overflow.
func (s *Shortcut) Unpack() []Edge {
	var out []Edge
	stack := make([]Edge, 0, 8)
	stack = append(stack, s.Right, s.Left)
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if sc, ok := e.(*Shortcut); ok {
			stack = append(stack, sc.Right, sc.Left)
		} else {
			out = append(out, e)
		}
	}
	return out
}
