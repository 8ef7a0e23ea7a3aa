package chem

import (
	"strconv"
	"strings"
)

// Arrow used when rendering balanced equations.
const Arrow = "→"

// Render formats a balanced equation, e.g. "2H2 + O2 → 2H2O".
// Coefficients of 1 are omitted; formulas keep their input spelling.
// coefficients follows the column order of [BuildMatrix]: reactants
// then products.
func Render(eq *Equation, coefficients []int) string {
	var b strings.Builder
	writeSide(&b, eq.Reactants, coefficients[:len(eq.Reactants)])
	b.WriteString(" " + Arrow + " ")
	writeSide(&b, eq.Products, coefficients[len(eq.Reactants):])
	return b.String()
}

func writeSide(b *strings.Builder, side []*Formula, coeffs []int) {
	for i, f := range side {
		if i > 0 {
			b.WriteString(" + ")
		}
		if coeffs[i] != 1 {
			b.WriteString(strconv.Itoa(coeffs[i]))
		}
		b.WriteString(f.Token())
	}
}
