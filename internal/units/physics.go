package units

import (
	"errors"
	"math"
)

var (
	// ErrOhmArity indicates Ohm was not given exactly two quantities.
	ErrOhmArity = errors.New("units: provide exactly two of voltage, current, resistance")

	// ErrUnderdetermined indicates too few knowns for the kinematics
	// relations to close.
	ErrUnderdetermined = errors.New("units: provide at least three of s, u, v, a, t")
)

// OhmResult is a fully determined V = I·R triple, SI units.
type OhmResult struct {
	V, I, R float64
}

// Ohm fills in the missing quantity of V = I·R. Exactly two of the
// three must be non-nil.
func Ohm(v, i, r *float64) (OhmResult, error) {
	given := 0
	for _, q := range []*float64{v, i, r} {
		if q != nil {
			given++
		}
	}
	if given != 2 {
		return OhmResult{}, ErrOhmArity
	}
	switch {
	case v == nil:
		return OhmResult{V: *i * *r, I: *i, R: *r}, nil
	case i == nil:
		return OhmResult{V: *v, I: *v / *r, R: *r}, nil
	default:
		return OhmResult{V: *v, I: *i, R: *v / *i}, nil
	}
}

// Kinematics is a SUVAT problem: displacement, initial velocity, final
// velocity, acceleration, time. Nil fields are unknowns; Solve fills in
// whatever the three SUVAT relations determine. SI units throughout.
type Kinematics struct {
	S, U, V, A, T *float64
}

// Solve iterates the SUVAT relations until no further quantity can be
// derived. It needs at least three knowns to make progress.
//
//	v = u + a·t
//	s = u·t + ½·a·t²
//	v² = u² + 2·a·s
//	s = ½·(u + v)·t
func (k *Kinematics) Solve() error {
	known := 0
	for _, q := range []*float64{k.S, k.U, k.V, k.A, k.T} {
		if q != nil {
			known++
		}
	}
	if known < 3 {
		return ErrUnderdetermined
	}

	for progress := true; progress; {
		progress = false
		set := func(dst **float64, val float64) {
			if *dst == nil {
				v := val
				*dst = &v
				progress = true
			}
		}

		// v = u + a t
		if k.U != nil && k.A != nil && k.T != nil {
			set(&k.V, *k.U+*k.A**k.T)
		}
		if k.V != nil && k.A != nil && k.T != nil {
			set(&k.U, *k.V-*k.A**k.T)
		}
		if k.V != nil && k.U != nil && k.T != nil && *k.T != 0 {
			set(&k.A, (*k.V-*k.U) / *k.T)
		}
		if k.V != nil && k.U != nil && k.A != nil && *k.A != 0 {
			set(&k.T, (*k.V-*k.U) / *k.A)
		}

		// s = u t + ½ a t²
		if k.U != nil && k.T != nil && k.A != nil {
			set(&k.S, *k.U**k.T+0.5**k.A**k.T**k.T)
		}

		// v² = u² + 2 a s
		if k.V != nil && k.U != nil && k.A != nil && *k.A != 0 {
			set(&k.S, (*k.V**k.V-*k.U**k.U)/(2**k.A))
		}
		if k.U != nil && k.A != nil && k.S != nil {
			if sq := *k.U**k.U + 2**k.A**k.S; sq >= 0 {
				set(&k.V, math.Sqrt(sq))
			}
		}

		// s = ½ (u + v) t
		if k.U != nil && k.V != nil && k.T != nil {
			set(&k.S, 0.5*(*k.U+*k.V)**k.T)
		}
		if k.U != nil && k.V != nil && k.S != nil && *k.U+*k.V != 0 {
			set(&k.T, 2**k.S/(*k.U+*k.V))
		}
	}
	return nil
}
