package chem

import "math/big"

// nullspace computes one basis vector of the null space of m using
// Gauss-Jordan elimination over exact rationals. Floating point would
// lose the exact conservation property the normalizer depends on.
//
// A practical chemical equation yields a 1-dimensional null space. A
// trivial (all-zero) null space means the equation is unbalanceable as
// written; more than one free column means the balancing is ambiguous.
func nullspace(m *Matrix) ([]*big.Rat, error) {
	rows, cols := m.Rows(), m.Cols()

	a := make([][]*big.Rat, rows)
	for i := range a {
		a[i] = make([]*big.Rat, cols)
		for j := range a[i] {
			a[i][j] = new(big.Rat).SetInt64(int64(m.Cells[i][j]))
		}
	}

	// Reduce to RREF, tracking the pivot column of each pivot row.
	var pivots []int
	r := 0
	for c := 0; c < cols && r < rows; c++ {
		p := -1
		for i := r; i < rows; i++ {
			if a[i][c].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		a[r], a[p] = a[p], a[r]

		inv := new(big.Rat).Inv(a[r][c])
		for j := c; j < cols; j++ {
			a[r][j].Mul(a[r][j], inv)
		}
		for i := 0; i < rows; i++ {
			if i == r || a[i][c].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(a[i][c])
			for j := c; j < cols; j++ {
				a[i][j].Sub(a[i][j], new(big.Rat).Mul(f, a[r][j]))
			}
		}
		pivots = append(pivots, c)
		r++
	}

	switch free := cols - len(pivots); {
	case free == 0:
		return nil, ErrUnbalanceable
	case free > 1:
		return nil, ErrAmbiguous
	}

	isPivot := make(map[int]bool, len(pivots))
	for _, c := range pivots {
		isPivot[c] = true
	}
	freeCol := -1
	for c := 0; c < cols; c++ {
		if !isPivot[c] {
			freeCol = c
			break
		}
	}

	// Fix the free variable at 1 and read the pivot values off the RREF.
	v := make([]*big.Rat, cols)
	for c := range v {
		v[c] = new(big.Rat)
	}
	v[freeCol].SetInt64(1)
	for i, c := range pivots {
		v[c].Neg(a[i][freeCol])
	}
	return v, nil
}
