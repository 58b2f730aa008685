// Package calculator turns raw text inputs into percentage and arithmetic
// results, and renders those results for display.
package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Reason explains why a calculation could not produce a value.
type Reason int

const (
	// ReasonNone marks a successful result.
	ReasonNone Reason = iota
	// MissingInput means one or both inputs were the empty string.
	MissingInput
	// InvalidNumber means a non-empty input did not parse as a number.
	InvalidNumber
	// DivisionByZero means a divide operation had a zero divisor.
	DivisionByZero
)

// String returns the wire name of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case MissingInput:
		return "missing_input"
	case InvalidNumber:
		return "invalid_number"
	case DivisionByZero:
		return "division_by_zero"
	default:
		return "unknown"
	}
}

// Result is the outcome of a calculation: either a value or a validation
// reason. The zero Result is a successful 0.
type Result struct {
	Value  float64
	Reason Reason
}

// Success wraps a computed value.
func Success(v float64) Result {
	return Result{Value: v}
}

// Invalid wraps a validation failure.
func Invalid(r Reason) Result {
	return Result{Reason: r}
}

// OK reports whether the result carries a value.
func (r Result) OK() bool {
	return r.Reason == ReasonNone
}

// Compute returns percentageText percent of numberText.
//
// Either input being exactly "" yields MissingInput; no trimming happens
// before that check. Otherwise both inputs must parse as float64 or the
// result is InvalidNumber. The value is (number * percentage) / 100, with
// the multiplication done first.
func Compute(numberText, percentageText string) Result {
	if numberText == "" || percentageText == "" {
		return Invalid(MissingInput)
	}

	number, ok := parseNumber(numberText)
	if !ok {
		return Invalid(InvalidNumber)
	}
	percentage, ok := parseNumber(percentageText)
	if !ok {
		return Invalid(InvalidNumber)
	}

	return Success((number * percentage) / 100.0)
}

// parseNumber parses s as a float64 using the decimal literal grammar of the
// platform double parser: surrounding ASCII control characters and spaces are
// ignored, the only named values are NaN and Infinity (exact case, optional
// sign), and underscores are not digit separators. Literals that overflow
// float64 are accepted as ±Inf.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}

	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 {
		return 0, false
	}
	negative := s[0] == '-'
	switch body {
	case "NaN":
		return math.NaN(), true
	case "Infinity":
		if negative {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	if lower := strings.ToLower(body); strings.HasPrefix(lower, "inf") || strings.HasPrefix(lower, "nan") {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}
