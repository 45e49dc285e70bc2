package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ansonlam23/algorithm-visualizer/internal/engine"
	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sequence"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// TraceRequest is the POST /api/trace body.
type TraceRequest struct {
	Algorithm string `json:"algorithm"`
	Values    []int  `json:"values"`
	Start     int    `json:"start,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// TraceResponse is the POST /api/trace reply.
type TraceResponse struct {
	Algorithm  sorting.Algorithm `json:"algorithm"`
	TotalSteps int               `json:"total_steps"`
	Counters   replay.Counters   `json:"counters"`
	Start      int               `json:"start"`
	Snapshots  replay.Trace      `json:"snapshots"`
}

// CompareRow is one algorithm in the GET /api/compare reply.
type CompareRow struct {
	Algorithm   sorting.Algorithm `json:"algorithm"`
	Steps       int               `json:"steps"`
	Comparisons int               `json:"comparisons"`
	Exchanges   int               `json:"exchanges"`
}

// ErrorResponse carries a failed request's message.
type ErrorResponse struct {
	Error string `json:"error"`
}

var errInvalidWindow = errors.New("start and limit must not be negative")

type api struct {
	engine *engine.Service
}

func (a *api) handleAlgorithms(rw http.ResponseWriter, hr *http.Request) {
	writeJSON(hr.Context(), rw, http.StatusOK, a.engine.Algorithms())
}

func (a *api) handleTrace(rw http.ResponseWriter, hr *http.Request) {
	var req TraceRequest

	decodeErr := json.NewDecoder(http.MaxBytesReader(rw, hr.Body, maxBodyBytes)).Decode(&req)
	if decodeErr != nil {
		writeError(hr.Context(), rw, http.StatusBadRequest, errors.New("invalid request body"))

		return
	}

	if req.Start < 0 || req.Limit < 0 {
		writeError(hr.Context(), rw, http.StatusBadRequest, errInvalidWindow)

		return
	}

	alg, err := sorting.ParseAlgorithm(req.Algorithm)
	if err != nil {
		writeError(hr.Context(), rw, http.StatusBadRequest, err)

		return
	}

	res, err := a.engine.Generate(hr.Context(), alg, req.Values)
	if err != nil {
		writeError(hr.Context(), rw, statusFor(err), err)

		return
	}

	snaps, start := res.Trace.Page(req.Start, req.Limit)

	writeJSON(hr.Context(), rw, http.StatusOK, TraceResponse{
		Algorithm:  res.Algorithm,
		TotalSteps: res.Trace.TotalSteps(),
		Counters:   res.Counters,
		Start:      start,
		Snapshots:  snaps,
	})
}

func (a *api) handleCompare(rw http.ResponseWriter, hr *http.Request) {
	values, err := sequence.Parse(hr.URL.Query().Get("values"))
	if err != nil {
		writeError(hr.Context(), rw, http.StatusBadRequest, err)

		return
	}

	results, err := a.engine.Compare(hr.Context(), values)
	if err != nil {
		writeError(hr.Context(), rw, statusFor(err), err)

		return
	}

	rows := make([]CompareRow, 0, len(results))
	for _, res := range results {
		rows = append(rows, CompareRow{
			Algorithm:   res.Algorithm,
			Steps:       res.Trace.TotalSteps(),
			Comparisons: res.Counters.Comparisons,
			Exchanges:   res.Counters.Exchanges,
		})
	}

	writeJSON(hr.Context(), rw, http.StatusOK, rows)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, sorting.ErrUnknownAlgorithm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, rw http.ResponseWriter, status int, err error) {
	writeJSON(ctx, rw, status, ErrorResponse{Error: err.Error()})
}

// writeJSON encodes value as the response body with the given status.
func writeJSON(ctx context.Context, rw http.ResponseWriter, status int, value any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)

	encodeErr := json.NewEncoder(rw).Encode(value)
	if encodeErr != nil {
		slog.Default().ErrorContext(ctx, "failed to encode JSON response", "error", encodeErr)
	}
}
