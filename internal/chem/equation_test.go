package chem

import (
	"errors"
	"testing"
)

func TestParseEquation(t *testing.T) {
	tests := []struct {
		text      string
		reactants []string
		products  []string
	}{
		{"Fe + O2 = Fe2O3", []string{"Fe", "O2"}, []string{"Fe2O3"}},
		{"Fe + O2 -> Fe2O3", []string{"Fe", "O2"}, []string{"Fe2O3"}},
		{"Fe + O2 → Fe2O3", []string{"Fe", "O2"}, []string{"Fe2O3"}},
		{"C3H8+O2=CO2+H2O", []string{"C3H8", "O2"}, []string{"CO2", "H2O"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			eq, err := ParseEquation(tt.text)
			if err != nil {
				t.Fatalf("ParseEquation(%q): %v", tt.text, err)
			}
			if len(eq.Reactants) != len(tt.reactants) {
				t.Fatalf("reactants = %d, want %d", len(eq.Reactants), len(tt.reactants))
			}
			for i, want := range tt.reactants {
				if got := eq.Reactants[i].Token(); got != want {
					t.Errorf("reactant %d = %q, want %q", i, got, want)
				}
			}
			for i, want := range tt.products {
				if got := eq.Products[i].Token(); got != want {
					t.Errorf("product %d = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestParseEquation_Errors(t *testing.T) {
	tests := []struct {
		text string
		want error
	}{
		{"H2 O2", ErrNoArrow},
		{"", ErrNoArrow},
		{"= H2O", ErrEmptySide},
		{"H2 + O2 =", ErrEmptySide},
		{"H2 + + O2 = H2O", ErrEmptyFormula},
		{"H2 + Xq = H2O", ErrUnknownElement},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseEquation(tt.text)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseEquation(%q) = %v, want %v", tt.text, err, tt.want)
			}
		})
	}
}

// The first arrow wins; a later "=" belongs to the product side and
// fails formula parsing rather than re-splitting.
func TestParseEquation_FirstArrow(t *testing.T) {
	eq, err := ParseEquation("H2 + O2 -> H2O")
	if err != nil {
		t.Fatal(err)
	}
	if len(eq.Products) != 1 || eq.Products[0].Token() != "H2O" {
		t.Errorf("unexpected products: %v", eq.Products)
	}
}
