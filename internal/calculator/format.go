package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// User-facing messages rendered for each outcome.
const (
	ResultPrefix          = "Result: "
	MissingInputMessage   = "Please enter both values"
	InvalidNumberMessage  = "Invalid input. Please enter valid numbers."
	DivisionByZeroMessage = "Cannot divide by zero"
)

// Render converts a Result into the text shown to the user.
func Render(r Result) string {
	switch r.Reason {
	case ReasonNone:
		return ResultPrefix + FormatValue(r.Value)
	case MissingInput:
		return MissingInputMessage
	case DivisionByZero:
		return DivisionByZeroMessage
	default:
		return InvalidNumberMessage
	}
}

// FormatValue renders v with exactly two decimals, rounding half away from
// zero on the shortest decimal form of v (16.6665 becomes "16.67"). The sign
// of negative values survives rounding to zero ("-0.00"), and non-finite
// values print as NaN, Infinity and -Infinity.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	text := decimal.NewFromFloat(math.Abs(v)).StringFixed(2)
	if math.Signbit(v) {
		return "-" + text
	}
	return text
}
