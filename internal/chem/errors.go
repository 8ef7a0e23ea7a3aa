package chem

import (
	"errors"
	"fmt"
)

// Parse failure causes, wrapped by [*ParseError].
var (
	// ErrNoArrow indicates the input has no reaction arrow ("=", "->", "→").
	ErrNoArrow = errors.New("chem: missing reaction arrow between reactants and products")

	// ErrEmptySide indicates a side of the equation has no formulas.
	ErrEmptySide = errors.New("chem: equation side is empty")

	// ErrEmptyFormula indicates an empty formula token (e.g. "H2 + + O2").
	ErrEmptyFormula = errors.New("chem: empty formula")

	// ErrUnknownElement indicates a symbol not in the periodic table.
	ErrUnknownElement = errors.New("chem: unknown element symbol")

	// ErrUnbalancedGroup indicates mismatched grouping symbols.
	ErrUnbalancedGroup = errors.New("chem: unbalanced grouping symbols")

	// ErrBadSubscript indicates a zero subscript or multiplier.
	ErrBadSubscript = errors.New("chem: subscript must be a positive integer")
)

// Balancing failures.
var (
	// ErrUnbalanceable indicates the equation has no valid non-trivial
	// balancing (conservation forces some coefficient to zero).
	ErrUnbalanceable = errors.New("chem: equation cannot be balanced as written")

	// ErrAmbiguous indicates the conservation system has more than one
	// independent solution direction; the balancer reports this instead
	// of picking one.
	ErrAmbiguous = errors.New("chem: equation has more than one independent balancing")
)

// ParseError reports where in the input a parse failure occurred.
type ParseError struct {
	Input string
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v (at offset %d in %q)", e.Err, e.Pos, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(input string, pos int, err error) *ParseError {
	return &ParseError{Input: input, Pos: pos, Err: err}
}
