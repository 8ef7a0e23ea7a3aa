package chem

import "math/big"

// Normalize scales a rational coefficient vector to the smallest
// all-positive integer solution: multiply by the LCM of denominators,
// divide by the GCD of the results, then flip the overall sign so every
// entry is positive. Deterministic and idempotent on integer vectors.
//
// A zero entry after scaling means some formula must have zero
// participation, so the equation is not balanceable as written; the same
// holds for entries of mixed sign.
func Normalize(v []*big.Rat) ([]int, error) {
	if len(v) == 0 {
		return nil, ErrUnbalanceable
	}

	lcm := big.NewInt(1)
	for _, x := range v {
		lcm = lcmInt(lcm, x.Denom())
	}

	ints := make([]*big.Int, len(v))
	for i, x := range v {
		n := new(big.Int).Mul(x.Num(), lcm)
		ints[i] = n.Quo(n, x.Denom())
	}

	gcd := new(big.Int)
	for _, n := range ints {
		gcd.GCD(nil, nil, gcd, new(big.Int).Abs(n))
	}
	if gcd.Sign() == 0 {
		return nil, ErrUnbalanceable
	}

	sign := 0
	out := make([]int, len(ints))
	for i, n := range ints {
		n.Quo(n, gcd)
		if n.Sign() == 0 {
			return nil, ErrUnbalanceable
		}
		if sign == 0 {
			sign = n.Sign()
		} else if n.Sign() != sign {
			return nil, ErrUnbalanceable
		}
		out[i] = int(n.Int64())
		if sign < 0 {
			out[i] = -out[i]
		}
	}
	return out, nil
}

func lcmInt(a, b *big.Int) *big.Int {
	gcd := new(big.Int).GCD(nil, nil, a, b)
	out := new(big.Int).Mul(a, b)
	out.Quo(out, gcd)
	return out.Abs(out)
}
