package chem

import (
	"reflect"
	"testing"
)

func TestBuildMatrix(t *testing.T) {
	eq, err := ParseEquation("Fe + O2 = Fe2O3")
	if err != nil {
		t.Fatal(err)
	}
	m := BuildMatrix(eq)

	if want := []string{"Fe", "O"}; !reflect.DeepEqual(m.Elements, want) {
		t.Errorf("Elements = %v, want %v", m.Elements, want)
	}
	want := [][]int{
		{1, 0, -2},
		{0, 2, -3},
	}
	if !reflect.DeepEqual(m.Cells, want) {
		t.Errorf("Cells = %v, want %v", m.Cells, want)
	}
}

// Row order is first-seen across reactants then products.
func TestBuildMatrix_ElementOrder(t *testing.T) {
	eq, err := ParseEquation("C3H8 + O2 = CO2 + H2O")
	if err != nil {
		t.Fatal(err)
	}
	m := BuildMatrix(eq)

	if want := []string{"C", "H", "O"}; !reflect.DeepEqual(m.Elements, want) {
		t.Errorf("Elements = %v, want %v", m.Elements, want)
	}
	if m.Rows() != 3 || m.Cols() != 4 {
		t.Errorf("dims = %dx%d, want 3x4", m.Rows(), m.Cols())
	}
	// Oxygen row: absent from C3H8, negated in products.
	if want := []int{0, 2, -2, -1}; !reflect.DeepEqual(m.Cells[2], want) {
		t.Errorf("O row = %v, want %v", m.Cells[2], want)
	}
}
