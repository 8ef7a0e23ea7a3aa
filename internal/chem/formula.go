package chem

import (
	"strconv"
	"strings"
)

// Formula is an immutable element-count map parsed from a formula token
// such as "Fe2O3" or "Ca(OH)2". Element order is first-appearance order.
type Formula struct {
	token  string
	order  []string
	counts map[string]int
}

// Token returns the original formula text as it appeared in the input,
// with surrounding whitespace removed.
func (f *Formula) Token() string { return f.token }

// Count returns the number of atoms of sym in the formula, 0 if absent.
func (f *Formula) Count(sym string) int { return f.counts[sym] }

// Elements returns the formula's element symbols in first-seen order.
func (f *Formula) Elements() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// String renders the formula canonically from its element counts
// ("Fe2O3", count 1 omitted). The result re-parses to the same counts.
func (f *Formula) String() string {
	var b strings.Builder
	for _, sym := range f.order {
		b.WriteString(sym)
		if n := f.counts[sym]; n != 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

// ParseFormula parses a single formula token into element counts.
// Supported syntax: element symbols with optional integer subscripts,
// nested "()" and "[]" groups with trailing multipliers, an optional
// leading multiplier applying to the whole formula ("2H2O"), and
// dot-separated hydrate components ("CuSO4·5H2O", ASCII "." accepted).
func ParseFormula(token string) (*Formula, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, parseErr(token, 0, ErrEmptyFormula)
	}

	f := &Formula{token: trimmed, counts: make(map[string]int)}
	for _, part := range splitHydrate(trimmed) {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, parseErr(trimmed, 0, ErrEmptyFormula)
		}
		s := &formulaScanner{src: part}
		mult := 1
		if n, ok, err := s.subscript(); err != nil {
			return nil, err
		} else if ok {
			mult = n
		}
		order, counts, err := s.sequence(0)
		if err != nil {
			return nil, err
		}
		if s.pos < len(s.src) {
			// Stray closing bracket.
			return nil, parseErr(part, s.pos, ErrUnbalancedGroup)
		}
		if len(order) == 0 {
			return nil, parseErr(part, s.pos, ErrEmptyFormula)
		}
		f.merge(order, counts, mult)
	}
	return f, nil
}

func (f *Formula) merge(order []string, counts map[string]int, mult int) {
	for _, sym := range order {
		if _, seen := f.counts[sym]; !seen {
			f.order = append(f.order, sym)
		}
		f.counts[sym] += counts[sym] * mult
	}
}

// splitHydrate splits "CuSO4·5H2O" into its dot-separated components.
func splitHydrate(src string) []string {
	src = strings.ReplaceAll(src, "·", ".")
	return strings.Split(src, ".")
}

type formulaScanner struct {
	src string
	pos int
}

// sequence parses elements and groups until end of input or, inside a
// group, until the closing bracket (left unconsumed for the caller).
func (s *formulaScanner) sequence(depth int) ([]string, map[string]int, error) {
	var order []string
	counts := make(map[string]int)

	add := func(sym string, n int) {
		if _, seen := counts[sym]; !seen {
			order = append(order, sym)
		}
		counts[sym] += n
	}

	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; {
		case c == '(' || c == '[':
			open := s.pos
			s.pos++
			inOrder, inCounts, err := s.sequence(depth + 1)
			if err != nil {
				return nil, nil, err
			}
			if s.pos >= len(s.src) || s.src[s.pos] != closing(c) {
				return nil, nil, parseErr(s.src, open, ErrUnbalancedGroup)
			}
			s.pos++
			n, _, err := s.subscript()
			if err != nil {
				return nil, nil, err
			}
			if n == 0 {
				n = 1
			}
			if len(inOrder) == 0 {
				return nil, nil, parseErr(s.src, open, ErrEmptyFormula)
			}
			for _, sym := range inOrder {
				add(sym, inCounts[sym]*n)
			}
		case c == ')' || c == ']':
			if depth == 0 {
				return nil, nil, parseErr(s.src, s.pos, ErrUnbalancedGroup)
			}
			return order, counts, nil
		case c >= 'A' && c <= 'Z':
			sym, err := s.element()
			if err != nil {
				return nil, nil, err
			}
			n, _, err := s.subscript()
			if err != nil {
				return nil, nil, err
			}
			if n == 0 {
				n = 1
			}
			add(sym, n)
		case c >= '0' && c <= '9':
			return nil, nil, parseErr(s.src, s.pos, ErrBadSubscript)
		default:
			return nil, nil, parseErr(s.src, s.pos, ErrUnknownElement)
		}
	}
	if depth > 0 {
		return nil, nil, parseErr(s.src, len(s.src), ErrUnbalancedGroup)
	}
	return order, counts, nil
}

// element consumes the longest valid symbol at the current position:
// one uppercase letter followed by up to two lowercase letters, backing
// off until the symbol table matches ("Co" before "C").
func (s *formulaScanner) element() (string, error) {
	start := s.pos
	end := start + 1
	for end < len(s.src) && end-start < 3 && s.src[end] >= 'a' && s.src[end] <= 'z' {
		end++
	}
	for e := end; e > start; e-- {
		if sym := s.src[start:e]; IsElement(sym) {
			s.pos = e
			return sym, nil
		}
	}
	return "", parseErr(s.src, start, ErrUnknownElement)
}

// subscript consumes an optional run of digits. It reports whether any
// digits were present and fails on a zero value.
func (s *formulaScanner) subscript() (int, bool, error) {
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s.src[start:s.pos])
	if err != nil || n <= 0 {
		return 0, false, parseErr(s.src, start, ErrBadSubscript)
	}
	return n, true, nil
}

func closing(open byte) byte {
	if open == '(' {
		return ')'
	}
	return ']'
}
