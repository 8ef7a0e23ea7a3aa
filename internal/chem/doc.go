// Package chem balances chemical equations by linear algebra over
// element-conservation constraints.
//
// A free-text equation such as "Fe + O2 = Fe2O3" is parsed into reactant
// and product formulas, assembled into a stoichiometry matrix (one row per
// element, one column per formula, product columns negated), and solved by
// computing the null space of that matrix with exact rational arithmetic.
// The rational solution is scaled to the smallest all-positive integer
// coefficients:
//
//	bal, err := chem.Balance("Fe + O2 = Fe2O3")
//	// bal.String() == "4Fe + 3O2 → 2Fe2O3"
//
// Balancing is a short, bounded, in-memory computation with no shared
// state; callers may balance equations from any number of goroutines.
//
// # Failure Modes
//
// Malformed input surfaces as a [*ParseError] wrapping one of the parse
// sentinels. A well-formed equation with only the trivial solution (an
// element present on one side only) fails with [ErrUnbalanceable]. An
// equation whose conservation system admits more than one independent
// solution direction fails with [ErrAmbiguous] rather than guessing one.
package chem
