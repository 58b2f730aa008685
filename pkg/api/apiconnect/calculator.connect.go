// Package apiconnect wires the percentwise.v1.CalculatorService messages
// into Connect handlers and clients.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/percentwise/pkg/api"
)

const (
	// CalculatorServiceName is the fully-qualified name of the CalculatorService.
	CalculatorServiceName = "percentwise.v1.CalculatorService"
)

// Procedure paths, in the form "/service/method".
const (
	CalculatorServiceCalculateProcedure = "/percentwise.v1.CalculatorService/Calculate"
	CalculatorServiceEvaluateProcedure  = "/percentwise.v1.CalculatorService/Evaluate"
	CalculatorServiceIsPrimeProcedure   = "/percentwise.v1.CalculatorService/IsPrime"
)

// CalculatorServiceClient is a client for the percentwise.v1.CalculatorService.
type CalculatorServiceClient interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	Evaluate(context.Context, *connect.Request[api.EvaluateRequest]) (*connect.Response[api.CalculateResponse], error)
	IsPrime(context.Context, *connect.Request[api.IsPrimeRequest]) (*connect.Response[api.IsPrimeResponse], error)
}

// NewCalculatorServiceClient constructs a client for the
// percentwise.v1.CalculatorService. Requests are JSON-encoded.
func NewCalculatorServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CalculatorServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	return &calculatorServiceClient{
		calculate: connect.NewClient[api.CalculateRequest, api.CalculateResponse](
			httpClient,
			baseURL+CalculatorServiceCalculateProcedure,
			opts...,
		),
		evaluate: connect.NewClient[api.EvaluateRequest, api.CalculateResponse](
			httpClient,
			baseURL+CalculatorServiceEvaluateProcedure,
			opts...,
		),
		isPrime: connect.NewClient[api.IsPrimeRequest, api.IsPrimeResponse](
			httpClient,
			baseURL+CalculatorServiceIsPrimeProcedure,
			opts...,
		),
	}
}

type calculatorServiceClient struct {
	calculate *connect.Client[api.CalculateRequest, api.CalculateResponse]
	evaluate  *connect.Client[api.EvaluateRequest, api.CalculateResponse]
	isPrime   *connect.Client[api.IsPrimeRequest, api.IsPrimeResponse]
}

// Calculate calls percentwise.v1.CalculatorService.Calculate.
func (c *calculatorServiceClient) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

// Evaluate calls percentwise.v1.CalculatorService.Evaluate.
func (c *calculatorServiceClient) Evaluate(ctx context.Context, req *connect.Request[api.EvaluateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return c.evaluate.CallUnary(ctx, req)
}

// IsPrime calls percentwise.v1.CalculatorService.IsPrime.
func (c *calculatorServiceClient) IsPrime(ctx context.Context, req *connect.Request[api.IsPrimeRequest]) (*connect.Response[api.IsPrimeResponse], error) {
	return c.isPrime.CallUnary(ctx, req)
}

// CalculatorServiceHandler is an implementation of the
// percentwise.v1.CalculatorService.
type CalculatorServiceHandler interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	Evaluate(context.Context, *connect.Request[api.EvaluateRequest]) (*connect.Response[api.CalculateResponse], error)
	IsPrime(context.Context, *connect.Request[api.IsPrimeRequest]) (*connect.Response[api.IsPrimeResponse], error)
}

// NewCalculatorServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewCalculatorServiceHandler(svc CalculatorServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	calculateHandler := connect.NewUnaryHandler(
		CalculatorServiceCalculateProcedure,
		svc.Calculate,
		opts...,
	)
	evaluateHandler := connect.NewUnaryHandler(
		CalculatorServiceEvaluateProcedure,
		svc.Evaluate,
		opts...,
	)
	isPrimeHandler := connect.NewUnaryHandler(
		CalculatorServiceIsPrimeProcedure,
		svc.IsPrime,
		opts...,
	)
	return "/percentwise.v1.CalculatorService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CalculatorServiceCalculateProcedure:
			calculateHandler.ServeHTTP(w, r)
		case CalculatorServiceEvaluateProcedure:
			evaluateHandler.ServeHTTP(w, r)
		case CalculatorServiceIsPrimeProcedure:
			isPrimeHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCalculatorServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCalculatorServiceHandler struct{}

func (UnimplementedCalculatorServiceHandler) Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("percentwise.v1.CalculatorService.Calculate is not implemented"))
}

func (UnimplementedCalculatorServiceHandler) Evaluate(context.Context, *connect.Request[api.EvaluateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("percentwise.v1.CalculatorService.Evaluate is not implemented"))
}

func (UnimplementedCalculatorServiceHandler) IsPrime(context.Context, *connect.Request[api.IsPrimeRequest]) (*connect.Response[api.IsPrimeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("percentwise.v1.CalculatorService.IsPrime is not implemented"))
}
