package calculator

import (
	"math"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		number     string
		percentage string
		want       Result
		wantText   string
	}{
		{
			name:       "half of two hundred",
			number:     "200",
			percentage: "50",
			want:       Success(100),
			wantText:   "Result: 100.00",
		},
		{
			name:       "empty number",
			number:     "",
			percentage: "50",
			want:       Invalid(MissingInput),
			wantText:   "Please enter both values",
		},
		{
			name:       "empty percentage",
			number:     "200",
			percentage: "",
			want:       Invalid(MissingInput),
			wantText:   "Please enter both values",
		},
		{
			name:       "both empty",
			number:     "",
			percentage: "",
			want:       Invalid(MissingInput),
			wantText:   "Please enter both values",
		},
		{
			name:       "empty wins over invalid",
			number:     "abc",
			percentage: "",
			want:       Invalid(MissingInput),
			wantText:   "Please enter both values",
		},
		{
			name:       "letters in number",
			number:     "abc",
			percentage: "50",
			want:       Invalid(InvalidNumber),
			wantText:   "Invalid input. Please enter valid numbers.",
		},
		{
			name:       "letters in percentage",
			number:     "200",
			percentage: "5o",
			want:       Invalid(InvalidNumber),
			wantText:   "Invalid input. Please enter valid numbers.",
		},
		{
			name:       "whitespace only is not missing",
			number:     "   ",
			percentage: "50",
			want:       Invalid(InvalidNumber),
			wantText:   "Invalid input. Please enter valid numbers.",
		},
		{
			name:       "fractional percentage rounds to two decimals",
			number:     "50",
			percentage: "33.333",
			want:       Success((50 * 33.333) / 100),
			wantText:   "Result: 16.67",
		},
		{
			name:       "negative number",
			number:     "-100",
			percentage: "10",
			want:       Success(-10),
			wantText:   "Result: -10.00",
		},
		{
			name:       "surrounding whitespace is ignored by the parser",
			number:     " 80 ",
			percentage: "25",
			want:       Success(20),
			wantText:   "Result: 20.00",
		},
		{
			name:       "exponent notation",
			number:     "1e3",
			percentage: "5",
			want:       Success(50),
			wantText:   "Result: 50.00",
		},
		{
			name:       "underscore separators are not digits",
			number:     "1_000",
			percentage: "10",
			want:       Invalid(InvalidNumber),
			wantText:   "Invalid input. Please enter valid numbers.",
		},
		{
			name:       "lowercase inf",
			number:     "inf",
			percentage: "50",
			want:       Invalid(InvalidNumber),
			wantText:   "Invalid input. Please enter valid numbers.",
		},
		{
			name:       "lowercase infinity",
			number:     "-infinity",
			percentage: "50",
			want:       Invalid(InvalidNumber),
			wantText:   "Invalid input. Please enter valid numbers.",
		},
		{
			name:       "lowercase nan",
			number:     "nan",
			percentage: "50",
			want:       Invalid(InvalidNumber),
			wantText:   "Invalid input. Please enter valid numbers.",
		},
		{
			name:       "non-breaking space padding",
			number:     "\u00a050",
			percentage: "10",
			want:       Invalid(InvalidNumber),
			wantText:   "Invalid input. Please enter valid numbers.",
		},
		{
			name:       "double sign",
			number:     "--5",
			percentage: "10",
			want:       Invalid(InvalidNumber),
			wantText:   "Invalid input. Please enter valid numbers.",
		},
		{
			name:       "tab and newline padding",
			number:     "\t80\n",
			percentage: "25",
			want:       Success(20),
			wantText:   "Result: 20.00",
		},
		{
			name:       "zero of a negative percentage keeps its sign",
			number:     "0",
			percentage: "-5",
			want:       Success(math.Copysign(0, -1)),
			wantText:   "Result: -0.00",
		},
		{
			name:       "tiny negative rounds to negative zero",
			number:     "-1",
			percentage: "0.1",
			want:       Success(-0.001),
			wantText:   "Result: -0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.number, tt.percentage)
			if got != tt.want {
				t.Errorf("Compute(%q, %q) = %+v, want %+v", tt.number, tt.percentage, got, tt.want)
			}
			if text := Render(got); text != tt.wantText {
				t.Errorf("Render() = %q, want %q", text, tt.wantText)
			}
		})
	}
}

func TestCompute_MultipliesBeforeDividing(t *testing.T) {
	number, percentage := 0.1, 0.7
	got := Compute("0.1", "0.7")
	if !got.OK() {
		t.Fatalf("Compute failed: %v", got.Reason)
	}
	if want := (number * percentage) / 100; got.Value != want {
		t.Errorf("Compute = %v, want %v", got.Value, want)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	inputs := [][2]string{{"200", "50"}, {"", "1"}, {"x", "1"}, {"3.3", "-7"}}
	for _, in := range inputs {
		first := Compute(in[0], in[1])
		second := Compute(in[0], in[1])
		if first != second {
			t.Errorf("Compute(%q, %q) not idempotent: %+v then %+v", in[0], in[1], first, second)
		}
	}
}

func TestCompute_Overflow(t *testing.T) {
	got := Compute("1e400", "50")
	if !got.OK() {
		t.Fatalf("expected overflowing literal to parse, got %v", got.Reason)
	}
	if !math.IsInf(got.Value, 1) {
		t.Errorf("Compute = %v, want +Inf", got.Value)
	}
	if text := Render(got); text != "Result: Infinity" {
		t.Errorf("Render() = %q, want %q", text, "Result: Infinity")
	}
}

func TestCompute_NamedValues(t *testing.T) {
	tests := []struct {
		number string
		check  func(float64) bool
		text   string
	}{
		{"NaN", math.IsNaN, "Result: NaN"},
		{"Infinity", func(v float64) bool { return math.IsInf(v, 1) }, "Result: Infinity"},
		{"-Infinity", func(v float64) bool { return math.IsInf(v, -1) }, "Result: -Infinity"},
		{"+Infinity", func(v float64) bool { return math.IsInf(v, 1) }, "Result: Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			got := Compute(tt.number, "50")
			if !got.OK() {
				t.Fatalf("Compute(%q, \"50\") failed: %v", tt.number, got.Reason)
			}
			if !tt.check(got.Value) {
				t.Errorf("Compute(%q, \"50\") = %v", tt.number, got.Value)
			}
			if text := Render(got); text != tt.text {
				t.Errorf("Render() = %q, want %q", text, tt.text)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1.005, "1.01"},
		{2.5, "2.50"},
		{-3.14159, "-3.14"},
		{1234567.891, "1234567.89"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.Copysign(0, -1), "-0.00"},
		{-0.004, "-0.00"},
		{-0.005, "-0.01"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReasonString(t *testing.T) {
	tests := map[Reason]string{
		ReasonNone:     "",
		MissingInput:   "missing_input",
		InvalidNumber:  "invalid_number",
		DivisionByZero: "division_by_zero",
		Reason(99):     "unknown",
	}
	for r, want := range tests {
		if got := r.String(); got != want {
			t.Errorf("Reason(%d).String() = %q, want %q", int(r), got, want)
		}
	}
}
