package network

import (
	"encoding/json"
	"fmt"
	"strconv"

	"transitch/pkg/geo"
)

// StopData is the "Data" field of a persisted stop: its coordinate plus
// whatever opaque attributes it carried.
type StopData struct {
	X     float64 `json:"X"`
	Y     float64 `json:"Y"`
	Attrs any     `json:"Attrs,omitempty"`
}

type jsonEdge struct {
	RouteID    int64        `json:"RouteId"`
	RouteVarID int64        `json:"RouteVarId"`
	Src        int64        `json:"Src"`
	Dest       int64        `json:"Dest"`
	Time       float64      `json:"Time"`
	Length     float64      `json:"Length"`
	Path       [][2]float64 `json:"Path"`
}

type jsonStop struct {
	Data     StopData   `json:"Data"`
	Adjacent []jsonEdge `json:"Adjacent"`
}

// MarshalNetwork serializes net to the stable JSON format: a top-level
// object keyed by stop id (as a string), each value holding the stop's data
// and its outgoing atomic connectors. Shortcut edges are never persisted —
// only CH's own binary cache (pkg/chio) carries those.
func MarshalNetwork(net *Network[Stop]) ([]byte, error) {
	out := make(map[string]jsonStop, net.Len())
	for _, id := range net.NodeIDs() {
		stop, _ := net.Node(id)
		var adj []jsonEdge
		for _, e := range net.AdjOut(id) {
			c, ok := e.(*Connector)
			if !ok {
				continue
			}
			path := make([][2]float64, len(c.RealPath))
			for i, p := range c.RealPath {
				path[i] = [2]float64{p.X, p.Y}
			}
			adj = append(adj, jsonEdge{
				RouteID:    c.RouteID,
				RouteVarID: c.VariantID,
				Src:        c.SrcID,
				Dest:       c.DestID,
				Time:       c.TimeSec,
				Length:     c.LengthM,
				Path:       path,
			})
		}
		out[strconv.FormatInt(id, 10)] = jsonStop{
			Data:     StopData{X: stop.Coord.X, Y: stop.Coord.Y, Attrs: stop.Attrs},
			Adjacent: adj,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// UnmarshalNetwork parses the format MarshalNetwork produces. Round-tripping
// through Marshal/Unmarshal reproduces an identical Network up to adjacency
// order.
func UnmarshalNetwork(data []byte) (*Network[Stop], error) {
	var raw map[string]jsonStop
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode network json: %v", ErrInvalidInput, err)
	}

	net := New[Stop]()
	for idStr, js := range raw {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: stop id %q is not an integer", ErrInvalidInput, idStr)
		}
		net.AddNode(id, Stop{
			ID:    id,
			Coord: geo.Coordinate{X: js.Data.X, Y: js.Data.Y},
			Attrs: js.Data.Attrs,
		})
	}
	for _, js := range raw {
		for _, je := range js.Adjacent {
			path := make([]geo.Coordinate, len(je.Path))
			for i, p := range je.Path {
				path[i] = geo.Coordinate{X: p[0], Y: p[1]}
			}
			net.AddEdge(&Connector{
				RouteID:   je.RouteID,
				VariantID: je.RouteVarID,
				SrcID:     je.Src,
				DestID:    je.Dest,
				TimeSec:   je.Time,
				LengthM:   je.Length,
				RealPath:  path,
			})
		}
	}
	return net, nil
}
