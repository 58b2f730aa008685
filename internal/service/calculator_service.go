package service

import (
	"context"
	"log/slog"
	"math"

	"connectrpc.com/connect"

	"github.com/mmynk/percentwise/internal/calculator"
	"github.com/mmynk/percentwise/pkg/api"
	"github.com/mmynk/percentwise/pkg/api/apiconnect"
)

// CalculationRecorder observes calculation outcomes.
type CalculationRecorder interface {
	RecordCalculation(operation, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordCalculation(string, string) {}

// CalculatorService implements the Connect CalculatorService
type CalculatorService struct {
	apiconnect.UnimplementedCalculatorServiceHandler
	recorder CalculationRecorder
}

// NewCalculatorService creates a new CalculatorService. A nil recorder
// disables outcome metrics.
func NewCalculatorService(recorder CalculationRecorder) *CalculatorService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &CalculatorService{recorder: recorder}
}

// Calculate computes a percentage of a base number.
// Validation failures are returned as a successful response with Ok unset.
func (s *CalculatorService) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	result := calculator.Compute(req.Msg.Number, req.Msg.Percentage)
	slog.Debug("Calculate",
		"number", req.Msg.Number,
		"percentage", req.Msg.Percentage,
		"ok", result.OK(),
		"reason", result.Reason.String(),
	)
	return connect.NewResponse(s.toResponse(calculator.OpPercentage, result)), nil
}

// Evaluate applies a named arithmetic operation to two inputs.
func (s *CalculatorService) Evaluate(ctx context.Context, req *connect.Request[api.EvaluateRequest]) (*connect.Response[api.CalculateResponse], error) {
	op, err := calculator.ParseOperation(req.Msg.Operation)
	if err != nil {
		slog.Warn("Evaluate: bad operation", "operation", req.Msg.Operation, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	result := calculator.Evaluate(op, req.Msg.A, req.Msg.B)
	slog.Debug("Evaluate",
		"operation", op.String(),
		"a", req.Msg.A,
		"b", req.Msg.B,
		"ok", result.OK(),
		"reason", result.Reason.String(),
	)
	return connect.NewResponse(s.toResponse(op, result)), nil
}

// IsPrime reports whether an integer typed as text is prime.
func (s *CalculatorService) IsPrime(ctx context.Context, req *connect.Request[api.IsPrimeRequest]) (*connect.Response[api.IsPrimeResponse], error) {
	result := calculator.CheckPrime(req.Msg.Number)
	slog.Debug("IsPrime",
		"number", req.Msg.Number,
		"ok", result.OK(),
		"prime", result.Prime,
		"reason", result.Reason.String(),
	)

	outcome := "ok"
	if !result.OK() {
		outcome = result.Reason.String()
	}
	s.recorder.RecordCalculation("is_prime", outcome)

	return connect.NewResponse(&api.IsPrimeResponse{
		Ok:      result.OK(),
		Number:  result.N,
		Prime:   result.Prime,
		Reason:  result.Reason.String(),
		Message: calculator.RenderPrime(result),
	}), nil
}

// toResponse converts a calculator result to its wire form and records it.
// JSON has no encoding for NaN or ±Inf, so non-finite values are sent as 0
// and only Message carries them.
func (s *CalculatorService) toResponse(op calculator.Operation, result calculator.Result) *api.CalculateResponse {
	outcome := "ok"
	if !result.OK() {
		outcome = result.Reason.String()
	}
	s.recorder.RecordCalculation(op.String(), outcome)

	resp := &api.CalculateResponse{
		Ok:      result.OK(),
		Reason:  result.Reason.String(),
		Message: calculator.Render(result),
	}
	if result.OK() && !math.IsNaN(result.Value) && !math.IsInf(result.Value, 0) {
		resp.Value = result.Value
	}
	return resp
}
