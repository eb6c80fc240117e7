package api

// RouteRequest is the JSON body for POST /api/v1/route.
type RouteRequest struct {
	Src  int64 `json:"src"`
	Dest int64 `json:"dest"`
}

// RouteResponse is the JSON response for a successful route query.
type RouteResponse struct {
	DistanceSeconds float64       `json:"distance_seconds"`
	Segments        []SegmentJSON `json:"segments"`
}

// SegmentJSON is one connector edge of a returned path.
type SegmentJSON struct {
	RouteID   int64   `json:"route_id"`
	VariantID int64   `json:"variant_id"`
	Src       int64   `json:"src"`
	Dest      int64   `json:"dest"`
	TimeSec   float64 `json:"time_sec"`
	LengthM   float64 `json:"length_m"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// StatsResponse is the JSON response for GET /api/v1/stats.
type StatsResponse struct {
	NumNodes int `json:"num_nodes"`
	NumEdges int `json:"num_edges"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
