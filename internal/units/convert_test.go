package units

import (
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{1000, "m", "km", 1},
		{1, "km", "meter", 1000},
		{10, "m/s", "km/h", 36},
		{36, "km/h", "m/s", 10},
		{1, "mph", "m/s", 0.44704},
		{0, "celsius", "kelvin", 273.15},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_"+tt.to, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Convert(%v, %q, %q): %v", tt.value, tt.from, tt.to, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Convert(%v, %q, %q) = %v, want %v", tt.value, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	if _, err := Convert(1, "wibble", "m"); err == nil {
		t.Error("expected error for unknown source unit")
	}
	if _, err := Convert(1, "m", "wobble"); err == nil {
		t.Error("expected error for unknown target unit")
	}
	// Incompatible quantities have no conversion path.
	if _, err := Convert(1, "m", "kg"); err == nil {
		t.Error("expected error for incompatible units")
	}
}

func TestLookupConstant(t *testing.T) {
	c, ok := LookupConstant("c")
	if !ok {
		t.Fatal("speed of light not found")
	}
	if c.Value != 299_792_458 {
		t.Errorf("c = %v", c.Value)
	}
	if _, ok := LookupConstant("nope"); ok {
		t.Error("expected miss for unknown symbol")
	}
}
