// Package mathx evaluates arithmetic expressions and solves low-degree
// polynomial equations for the calc, solve, and plot commands.
package mathx

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var (
	// ErrNotNumeric indicates the expression evaluated to a non-number.
	ErrNotNumeric = errors.New("mathx: expression is not numeric")

	// ErrBadRange indicates an empty or inverted sampling range.
	ErrBadRange = errors.New("mathx: invalid sampling range")
)

// evalEnv is the fixed vocabulary available to expressions. Anything
// outside it is a compile error, which keeps user input inert.
func evalEnv() map[string]any {
	return map[string]any{
		"pi":    math.Pi,
		"e":     math.E,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"sinh":  math.Sinh,
		"cosh":  math.Cosh,
		"tanh":  math.Tanh,
		"exp":   math.Exp,
		"ln":    math.Log,
		"log":   math.Log,
		"log10": math.Log10,
		"sqrt":  math.Sqrt,
		"abs":   math.Abs,
		"floor": math.Floor,
		"ceil":  math.Ceil,
		"pow":   math.Pow,
	}
}

// Eval evaluates a numeric expression such as "(2+3)^3" or "sin(pi/4)".
// Integer-valued results render without a mantissa.
func Eval(src string) (string, error) {
	env := evalEnv()
	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return "", fmt.Errorf("mathx: %w", err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return "", fmt.Errorf("mathx: %w", err)
	}
	f, err := toFloat(out)
	if err != nil {
		return "", err
	}
	return FormatFloat(f), nil
}

// Sample evaluates an expression of x at n evenly spaced points across
// [from, to], for plotting.
func Sample(src string, from, to float64, n int) ([]float64, error) {
	if n < 2 || to <= from {
		return nil, ErrBadRange
	}
	env := evalEnv()
	env["x"] = 0.0
	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("mathx: %w", err)
	}

	out := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range out {
		env["x"] = from + step*float64(i)
		v, err := runProgram(program, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func runProgram(program *vm.Program, env map[string]any) (float64, error) {
	v, err := expr.Run(program, env)
	if err != nil {
		return 0, fmt.Errorf("mathx: %w", err)
	}
	return toFloat(v)
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("%w: got %T", ErrNotNumeric, v)
	}
}

// FormatFloat renders f the way a calculator would: "125" rather than
// "125.000000", shortest round-trip form otherwise.
func FormatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
