package chem

// Matrix is the stoichiometry matrix of an equation: one row per distinct
// element (first-seen order across reactants then products), one column
// per formula (reactants then products, input order). Reactant entries
// carry the formula's element count; product entries are negated, so a
// coefficient vector v balances the equation exactly when Matrix·v = 0.
type Matrix struct {
	Elements []string
	Cells    [][]int
}

// BuildMatrix assembles the element-conservation system for eq.
func BuildMatrix(eq *Equation) *Matrix {
	m := &Matrix{}
	rowOf := make(map[string]int)

	row := func(sym string) int {
		if i, ok := rowOf[sym]; ok {
			return i
		}
		rowOf[sym] = len(m.Elements)
		m.Elements = append(m.Elements, sym)
		return len(m.Elements) - 1
	}
	for _, f := range eq.Formulas() {
		for _, sym := range f.Elements() {
			row(sym)
		}
	}

	cols := len(eq.Reactants) + len(eq.Products)
	m.Cells = make([][]int, len(m.Elements))
	for i := range m.Cells {
		m.Cells[i] = make([]int, cols)
	}

	for c, f := range eq.Reactants {
		for _, sym := range f.Elements() {
			m.Cells[rowOf[sym]][c] = f.Count(sym)
		}
	}
	offset := len(eq.Reactants)
	for c, f := range eq.Products {
		for _, sym := range f.Elements() {
			m.Cells[rowOf[sym]][offset+c] = -f.Count(sym)
		}
	}
	return m
}

// Rows returns the number of distinct elements.
func (m *Matrix) Rows() int { return len(m.Cells) }

// Cols returns the number of formulas.
func (m *Matrix) Cols() int {
	if len(m.Cells) == 0 {
		return 0
	}
	return len(m.Cells[0])
}
