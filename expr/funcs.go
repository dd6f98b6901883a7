package expr

import "math"

// function is a whitelisted math function. arity < 0 means "at least -arity
// arguments".
type function struct {
	arity int
	fn    func(args []float64) float64
}

func unary(fn func(float64) float64) function {
	return function{arity: 1, fn: func(a []float64) float64 { return fn(a[0]) }}
}

func binary(fn func(float64, float64) float64) function {
	return function{arity: 2, fn: func(a []float64) float64 { return fn(a[0], a[1]) }}
}

var functions = map[string]function{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"sinh":  unary(math.Sinh),
	"cosh":  unary(math.Cosh),
	"tanh":  unary(math.Tanh),
	"sqrt":  unary(math.Sqrt),
	"cbrt":  unary(math.Cbrt),
	"exp":   unary(math.Exp),
	"log":   unary(math.Log),
	"log2":  unary(math.Log2),
	"log10": unary(math.Log10),
	"abs":   unary(math.Abs),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"round": unary(math.Round),
	"trunc": unary(math.Trunc),
	"sign":  unary(sign),
	"atan2": binary(math.Atan2),
	"pow":   binary(math.Pow),
	"hypot": binary(math.Hypot),
	"mod":   binary(math.Mod),
	"min":   {arity: -1, fn: minOf},
	"max":   {arity: -1, fn: maxOf},
}

var constants = map[string]float64{
	"pi":  math.Pi,
	"PI":  math.Pi,
	"e":   math.E,
	"E":   math.E,
	"tau": 2 * math.Pi,
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

func minOf(a []float64) float64 {
	m := a[0]
	for _, v := range a[1:] {
		m = math.Min(m, v)
	}
	return m
}

func maxOf(a []float64) float64 {
	m := a[0]
	for _, v := range a[1:] {
		m = math.Max(m, v)
	}
	return m
}

// Functions returns the names of all callable functions.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	return names
}
