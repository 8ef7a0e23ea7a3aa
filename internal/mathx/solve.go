package mathx

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

var (
	// ErrNotPolynomial indicates the input is not a polynomial in the
	// requested variable.
	ErrNotPolynomial = errors.New("mathx: not a polynomial equation")

	// ErrDegreeTooHigh indicates a polynomial degree above 2.
	ErrDegreeTooHigh = errors.New("mathx: only linear and quadratic equations are supported")

	// ErrNoVariable indicates an equation with no occurrence of the
	// variable being solved for.
	ErrNoVariable = errors.New("mathx: equation does not contain the variable")
)

// SolveEquation solves a linear or quadratic equation with rational
// coefficients, e.g. "x^2 = 9" or "2x^2 - 3x + 1 = 0". Missing "=" means
// "= 0". Roots are exact rationals when the discriminant is a perfect
// square, floats otherwise, complex pairs when it is negative.
func SolveEquation(src, variable string) ([]string, error) {
	if variable == "" {
		variable = "x"
	}
	left, right := src, "0"
	if i := strings.Index(src, "="); i >= 0 {
		left, right = src[:i], src[i+1:]
	}

	lc, err := parsePoly(left, variable)
	if err != nil {
		return nil, err
	}
	rc, err := parsePoly(right, variable)
	if err != nil {
		return nil, err
	}
	for exp, c := range rc {
		coeff(lc, exp).Sub(coeff(lc, exp), c)
	}

	degree := 0
	for exp, c := range lc {
		if c.Sign() != 0 && exp > degree {
			degree = exp
		}
	}
	switch degree {
	case 0:
		return nil, ErrNoVariable
	case 1:
		// c1·x + c0 = 0
		root := new(big.Rat).Quo(coeff(lc, 0), coeff(lc, 1))
		root.Neg(root)
		return []string{variable + " = " + ratString(root)}, nil
	case 2:
		return solveQuadratic(variable, coeff(lc, 2), coeff(lc, 1), coeff(lc, 0))
	default:
		return nil, fmt.Errorf("%w (degree %d)", ErrDegreeTooHigh, degree)
	}
}

func coeff(m map[int]*big.Rat, exp int) *big.Rat {
	if m[exp] == nil {
		m[exp] = new(big.Rat)
	}
	return m[exp]
}

// solveQuadratic solves a·x² + b·x + c = 0, exactly when it can.
func solveQuadratic(variable string, a, b, c *big.Rat) ([]string, error) {
	// D = b² - 4ac
	d := new(big.Rat).Mul(b, b)
	d.Sub(d, new(big.Rat).Mul(big.NewRat(4, 1), new(big.Rat).Mul(a, c)))

	twoA := new(big.Rat).Mul(big.NewRat(2, 1), a)
	negB := new(big.Rat).Neg(b)

	if d.Sign() < 0 {
		re, _ := new(big.Rat).Quo(negB, twoA).Float64()
		dd, _ := d.Float64()
		twoAF, _ := twoA.Float64()
		im := math.Abs(math.Sqrt(-dd) / twoAF)
		return []string{
			fmt.Sprintf("%s = %s + %si", variable, FormatFloat(re), FormatFloat(im)),
			fmt.Sprintf("%s = %s - %si", variable, FormatFloat(re), FormatFloat(im)),
		}, nil
	}

	if s, exact := ratSqrt(d); exact {
		if d.Sign() == 0 {
			root := new(big.Rat).Quo(negB, twoA)
			return []string{variable + " = " + ratString(root)}, nil
		}
		r1 := new(big.Rat).Quo(new(big.Rat).Add(negB, s), twoA)
		r2 := new(big.Rat).Quo(new(big.Rat).Sub(negB, s), twoA)
		return []string{
			variable + " = " + ratString(r1),
			variable + " = " + ratString(r2),
		}, nil
	}

	df, _ := d.Float64()
	negBF, _ := negB.Float64()
	twoAF, _ := twoA.Float64()
	s := math.Sqrt(df)
	return []string{
		fmt.Sprintf("%s = %s", variable, FormatFloat((negBF+s)/twoAF)),
		fmt.Sprintf("%s = %s", variable, FormatFloat((negBF-s)/twoAF)),
	}, nil
}

// ratSqrt returns the exact square root of r when both numerator and
// denominator are perfect squares.
func ratSqrt(r *big.Rat) (*big.Rat, bool) {
	if r.Sign() < 0 {
		return nil, false
	}
	num := new(big.Int).Sqrt(r.Num())
	den := new(big.Int).Sqrt(r.Denom())
	if new(big.Int).Mul(num, num).Cmp(r.Num()) != 0 {
		return nil, false
	}
	if new(big.Int).Mul(den, den).Cmp(r.Denom()) != 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(num, den), true
}

func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}
