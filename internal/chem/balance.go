package chem

// Balanced is an equation together with its integer stoichiometric
// coefficients, one per formula in reactant-then-product order.
type Balanced struct {
	Equation     *Equation
	Coefficients []int
}

// Balance parses text, solves the element-conservation system, and
// normalizes the solution to smallest whole-number coefficients.
func Balance(text string) (*Balanced, error) {
	eq, err := ParseEquation(text)
	if err != nil {
		return nil, err
	}
	return BalanceEquation(eq)
}

// BalanceEquation balances an already-parsed equation.
func BalanceEquation(eq *Equation) (*Balanced, error) {
	v, err := nullspace(BuildMatrix(eq))
	if err != nil {
		return nil, err
	}
	coeffs, err := Normalize(v)
	if err != nil {
		return nil, err
	}
	return &Balanced{Equation: eq, Coefficients: coeffs}, nil
}

func (b *Balanced) String() string {
	return Render(b.Equation, b.Coefficients)
}
