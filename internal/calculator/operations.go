package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperation is returned by ParseOperation for unrecognized names.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation is a binary operation over two textual inputs.
type Operation int

const (
	OpPercentage Operation = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

var operationNames = map[Operation]string{
	OpPercentage: "percentage",
	OpAdd:        "add",
	OpSubtract:   "subtract",
	OpMultiply:   "multiply",
	OpDivide:     "divide",
}

// String returns the wire name of the operation.
func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// ParseOperation maps a wire name (case-insensitive) to an Operation.
// An empty name selects OpPercentage.
func ParseOperation(name string) (Operation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return OpPercentage, nil
	}
	for op, n := range operationNames {
		if n == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Evaluate applies op to aText and bText with the same input validation as
// Compute. OpPercentage treats aText as the base number and bText as the
// percentage.
func Evaluate(op Operation, aText, bText string) Result {
	if op == OpPercentage {
		return Compute(aText, bText)
	}

	if aText == "" || bText == "" {
		return Invalid(MissingInput)
	}
	a, ok := parseNumber(aText)
	if !ok {
		return Invalid(InvalidNumber)
	}
	b, ok := parseNumber(bText)
	if !ok {
		return Invalid(InvalidNumber)
	}

	switch op {
	case OpAdd:
		return Success(a + b)
	case OpSubtract:
		return Success(a - b)
	case OpMultiply:
		return Success(a * b)
	case OpDivide:
		if b == 0 {
			return Invalid(DivisionByZero)
		}
		return Success(a / b)
	default:
		return Invalid(InvalidNumber)
	}
}
