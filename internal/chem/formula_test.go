package chem

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		token string
		want  map[string]int
	}{
		{"H2O", map[string]int{"H": 2, "O": 1}},
		{"Fe2O3", map[string]int{"Fe": 2, "O": 3}},
		{"NaCl", map[string]int{"Na": 1, "Cl": 1}},
		{"Ca(OH)2", map[string]int{"Ca": 1, "O": 2, "H": 2}},
		{"Al2(SO4)3", map[string]int{"Al": 2, "S": 3, "O": 12}},
		{"K4[Fe(CN)6]", map[string]int{"K": 4, "Fe": 1, "C": 6, "N": 6}},
		{"CuSO4·5H2O", map[string]int{"Cu": 1, "S": 1, "O": 9, "H": 10}},
		{"CuSO4.5H2O", map[string]int{"Cu": 1, "S": 1, "O": 9, "H": 10}},
		{"2H2O", map[string]int{"H": 4, "O": 2}},
		{"CH3COOH", map[string]int{"C": 2, "H": 4, "O": 2}},
		{"CO", map[string]int{"C": 1, "O": 1}},
		{"Co", map[string]int{"Co": 1}},
		{" O2 ", map[string]int{"O": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			f, err := ParseFormula(tt.token)
			if err != nil {
				t.Fatalf("ParseFormula(%q): %v", tt.token, err)
			}
			got := make(map[string]int)
			for _, sym := range f.Elements() {
				got[sym] = f.Count(sym)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFormula(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseFormula_Errors(t *testing.T) {
	tests := []struct {
		token string
		want  error
	}{
		{"", ErrEmptyFormula},
		{"   ", ErrEmptyFormula},
		{"()2", ErrEmptyFormula},
		{"(OH", ErrUnbalancedGroup},
		{"OH)2", ErrUnbalancedGroup},
		{"[Fe(CN)6", ErrUnbalancedGroup},
		{"H0", ErrBadSubscript},
		{"0H2O", ErrBadSubscript},
		{"Xx", ErrUnknownElement},
		{"h2o", ErrUnknownElement},
		{"H2!", ErrUnknownElement},
		{"CuSO4·", ErrEmptyFormula},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			_, err := ParseFormula(tt.token)
			if err == nil {
				t.Fatalf("ParseFormula(%q): expected error", tt.token)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseFormula(%q) = %v, want %v", tt.token, err, tt.want)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("ParseFormula(%q): error is not a *ParseError", tt.token)
			}
		})
	}
}

// Re-parsing the canonical rendering must reproduce the same counts.
func TestFormula_RoundTrip(t *testing.T) {
	for _, token := range []string{"H2O", "Ca(OH)2", "Al2(SO4)3", "CuSO4·5H2O", "K4[Fe(CN)6]", "2H2O"} {
		f, err := ParseFormula(token)
		if err != nil {
			t.Fatalf("ParseFormula(%q): %v", token, err)
		}
		g, err := ParseFormula(f.String())
		if err != nil {
			t.Fatalf("ParseFormula(%q): %v", f.String(), err)
		}
		for _, sym := range f.Elements() {
			if g.Count(sym) != f.Count(sym) {
				t.Errorf("%q round trip: %s = %d, want %d", token, sym, g.Count(sym), f.Count(sym))
			}
		}
		if len(g.Elements()) != len(f.Elements()) {
			t.Errorf("%q round trip: element count %d, want %d", token, len(g.Elements()), len(f.Elements()))
		}
	}
}

func TestFormula_ElementOrder(t *testing.T) {
	f, err := ParseFormula("CH3COOH")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"C", "H", "O"}
	if !reflect.DeepEqual(f.Elements(), want) {
		t.Errorf("Elements() = %v, want %v", f.Elements(), want)
	}
}
