// Package api defines the wire messages of the percentwise.v1 Connect API.
package api

// CalculateRequest asks for Percentage percent of Number.
// Both fields carry the raw text the user typed.
type CalculateRequest struct {
	Number     string `json:"number"`
	Percentage string `json:"percentage"`
}

// EvaluateRequest applies Operation to A and B. An empty Operation means
// "percentage", in which case A is the base number and B the percentage.
type EvaluateRequest struct {
	Operation string `json:"operation"`
	A         string `json:"a"`
	B         string `json:"b"`
}

// CalculateResponse carries either a value or the reason there is none.
// Message is always set to the text a client should display.
type CalculateResponse struct {
	Ok      bool    `json:"ok"`
	Value   float64 `json:"value"`
	Reason  string  `json:"reason,omitempty"`
	Message string  `json:"message"`
}

// IsPrimeRequest asks whether Number, an integer typed as text, is prime.
type IsPrimeRequest struct {
	Number string `json:"number"`
}

// IsPrimeResponse reports the primality of a valid integer, or the reason
// the input was rejected. Message is always set.
type IsPrimeResponse struct {
	Ok      bool   `json:"ok"`
	Number  int64  `json:"number"`
	Prime   bool   `json:"prime"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}
