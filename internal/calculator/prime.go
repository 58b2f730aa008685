package calculator

import (
	"fmt"
	"strconv"
	"strings"
)

// PrimeResult is the outcome of a primality check on textual input.
type PrimeResult struct {
	N      int64
	Prime  bool
	Reason Reason
}

// OK reports whether the input was a valid integer.
func (r PrimeResult) OK() bool {
	return r.Reason == ReasonNone
}

// IsPrime reports whether n is prime, by trial division over odd divisors.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// CheckPrime validates numberText like Compute does and tests it for
// primality. The input must be a base-10 integer in the 32-bit signed range.
func CheckPrime(numberText string) PrimeResult {
	if numberText == "" {
		return PrimeResult{Reason: MissingInput}
	}

	s := strings.TrimFunc(numberText, func(r rune) bool { return r <= ' ' })
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return PrimeResult{Reason: InvalidNumber}
	}
	return PrimeResult{N: n, Prime: IsPrime(n)}
}

// RenderPrime converts a PrimeResult into the text shown to the user.
func RenderPrime(r PrimeResult) string {
	switch r.Reason {
	case ReasonNone:
		if r.Prime {
			return fmt.Sprintf("%d is prime", r.N)
		}
		return fmt.Sprintf("%d is not prime", r.N)
	case MissingInput:
		return MissingInputMessage
	default:
		return InvalidNumberMessage
	}
}
