package mathx

import (
	"math"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"(2+3)^3", "125"},
		{"2+3*4", "14"},
		{"10/4", "2.5"},
		{"sqrt(16)", "4"},
		{"abs(-3)", "3"},
		{"floor(2.7)", "2"},
		{"pow(2, 10)", "1024"},
		{"cos(0)", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(tt.src)
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("Eval(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestEval_Errors(t *testing.T) {
	for _, src := range []string{"", "2 +", "import(1)", "y + 1", "foo(3)"} {
		if _, err := Eval(src); err == nil {
			t.Errorf("Eval(%q): expected error", src)
		}
	}
}

func TestSample(t *testing.T) {
	ys, err := Sample("x*x", 0, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 1, 4}
	for i := range want {
		if math.Abs(ys[i]-want[i]) > 1e-12 {
			t.Errorf("ys[%d] = %v, want %v", i, ys[i], want[i])
		}
	}
}

func TestSample_BadRange(t *testing.T) {
	if _, err := Sample("x", 1, 1, 10); err == nil {
		t.Error("expected error for empty range")
	}
	if _, err := Sample("x", 0, 1, 1); err == nil {
		t.Error("expected error for single sample")
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{125, "125"},
		{-3, "-3"},
		{2.5, "2.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
