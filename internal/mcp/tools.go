package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// Tool name constants.
const (
	ToolNameTrace      = "sort_trace"
	ToolNameAlgorithms = "sort_algorithms"
	ToolNameCompare    = "sort_compare"
)

// Sentinel errors for tool input validation.
var (
	// ErrEmptyAlgorithm indicates the algorithm parameter is empty.
	ErrEmptyAlgorithm = errors.New("algorithm parameter is required and must not be empty")
	// ErrInvalidWindow indicates a negative start or limit.
	ErrInvalidWindow = errors.New("start and limit must not be negative")
)

// TraceInput is the input schema for the sort_trace tool.
type TraceInput struct {
	Algorithm string `json:"algorithm"       jsonschema:"algorithm name, e.g. merge-sort or quick"`
	Values    []int  `json:"values"          jsonschema:"integer sequence to sort"`
	Start     int    `json:"start,omitempty" jsonschema:"first step to return (default: 0)"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum number of snapshots to return (default: all)"`
}

// AlgorithmsInput is the input schema for the sort_algorithms tool.
type AlgorithmsInput struct{}

// CompareInput is the input schema for the sort_compare tool.
type CompareInput struct {
	Values []int `json:"values" jsonschema:"integer sequence every algorithm sorts"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// TraceOutput is the sort_trace payload.
type TraceOutput struct {
	Algorithm  sorting.Algorithm `json:"algorithm"`
	TotalSteps int               `json:"total_steps"`
	Counters   replay.Counters   `json:"counters"`
	Start      int               `json:"start"`
	Snapshots  replay.Trace      `json:"snapshots"`
}

// CompareRow summarises one algorithm in a sort_compare payload.
type CompareRow struct {
	Algorithm   sorting.Algorithm `json:"algorithm"`
	Steps       int               `json:"steps"`
	Comparisons int               `json:"comparisons"`
	Exchanges   int               `json:"exchanges"`
}

func (s *Server) handleTrace(
	ctx context.Context, _ *mcpsdk.CallToolRequest, input TraceInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if input.Algorithm == "" {
		return errorResult(ErrEmptyAlgorithm)
	}

	if input.Start < 0 || input.Limit < 0 {
		return errorResult(ErrInvalidWindow)
	}

	alg, err := sorting.ParseAlgorithm(input.Algorithm)
	if err != nil {
		return errorResult(err)
	}

	res, err := s.engine.Generate(ctx, alg, input.Values)
	if err != nil {
		return errorResult(err)
	}

	snaps, start := res.Trace.Page(input.Start, input.Limit)

	return jsonResult(TraceOutput{
		Algorithm:  res.Algorithm,
		TotalSteps: res.Trace.TotalSteps(),
		Counters:   res.Counters,
		Start:      start,
		Snapshots:  snaps,
	})
}

func (s *Server) handleAlgorithms(
	_ context.Context, _ *mcpsdk.CallToolRequest, _ AlgorithmsInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return jsonResult(s.engine.Algorithms())
}

func (s *Server) handleCompare(
	ctx context.Context, _ *mcpsdk.CallToolRequest, input CompareInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	results, err := s.engine.Compare(ctx, input.Values)
	if err != nil {
		return errorResult(err)
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

	return jsonResult(rows)
}

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}
