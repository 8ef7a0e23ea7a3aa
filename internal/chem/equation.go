package chem

import "strings"

// Equation holds the parsed reactant and product formulas in input order.
// Input order is significant: it fixes the column-to-formula mapping of
// the stoichiometry matrix and the rendering order of the result.
type Equation struct {
	Reactants []*Formula
	Products  []*Formula
}

// Formulas returns reactants followed by products, matching the column
// order of [BuildMatrix].
func (e *Equation) Formulas() []*Formula {
	out := make([]*Formula, 0, len(e.Reactants)+len(e.Products))
	out = append(out, e.Reactants...)
	return append(out, e.Products...)
}

// Reaction arrows, longest first so "->" wins over a bare "-".
var arrowTokens = []string{"->", "→", "="}

// ParseEquation parses a free-text equation such as "Fe + O2 = Fe2O3".
// The input is split on the first reaction arrow, each side on "+", and
// every token parsed with [ParseFormula].
func ParseEquation(text string) (*Equation, error) {
	left, right, ok := splitArrow(text)
	if !ok {
		return nil, parseErr(text, len(text), ErrNoArrow)
	}

	reactants, err := parseSide(text, left)
	if err != nil {
		return nil, err
	}
	products, err := parseSide(text, right)
	if err != nil {
		return nil, err
	}
	return &Equation{Reactants: reactants, Products: products}, nil
}

func splitArrow(text string) (left, right string, ok bool) {
	at := -1
	var width int
	for _, tok := range arrowTokens {
		if i := strings.Index(text, tok); i >= 0 && (at < 0 || i < at) {
			at, width = i, len(tok)
		}
	}
	if at < 0 {
		return "", "", false
	}
	return text[:at], text[at+width:], true
}

func parseSide(input, side string) ([]*Formula, error) {
	if strings.TrimSpace(side) == "" {
		return nil, parseErr(input, 0, ErrEmptySide)
	}
	var formulas []*Formula
	for _, tok := range strings.Split(side, "+") {
		f, err := ParseFormula(tok)
		if err != nil {
			return nil, err
		}
		formulas = append(formulas, f)
	}
	return formulas, nil
}
