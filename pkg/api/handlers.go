package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"mime"
	"net/http"

	"go.opentelemetry.io/otel"

	"transitch/pkg/network"
	"transitch/pkg/routing"
)

// Router is anything that can answer a stop-to-stop shortest path query.
// *routing.Engine and a thin ch.Result adapter both satisfy it.
type Router interface {
	Path(ctx context.Context, src, dest int64) (float64, []network.Edge, error)
}

var tracer = otel.Tracer("transitch/api")

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	router Router
	stats  StatsResponse
}

// NewHandlers creates handlers with the given router.
func NewHandlers(router Router, stats StatsResponse) *Handlers {
	return &Handlers{router: router, stats: stats}
}

// HandleRoute handles POST /api/v1/route.
func (h *Handlers) HandleRoute(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "HandleRoute")
	defer span.End()

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	dist, path, err := h.router.Path(ctx, req.Src, req.Dest)
	if err != nil {
		if errors.Is(err, routing.ErrNotFound) {
			writeError(w, http.StatusNotFound, "unknown_stop", "")
			return
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	if math.IsInf(dist, 1) {
		writeError(w, http.StatusNotFound, "no_route_found", "")
		return
	}

	resp := RouteResponse{DistanceSeconds: dist}
	for _, e := range path {
		c, ok := e.(*network.Connector)
		if !ok {
			continue
		}
		resp.Segments = append(resp.Segments, SegmentJSON{
			RouteID: c.RouteID, VariantID: c.VariantID,
			Src: c.SrcID, Dest: c.DestID,
			TimeSec: c.TimeSec, LengthM: c.LengthM,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

// HandleStats handles GET /api/v1/stats.
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.stats)
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: code, Field: field})
}
