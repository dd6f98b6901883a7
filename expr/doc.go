// Package expr compiles and evaluates scalar formulas such as the x(t)
// and y(t) of a parametric curve.
//
// The language is deliberately small: numbers, named variables, the
// operators + - * / and ^ (also written **), unary signs, parentheses and
// calls to a fixed set of math functions. Point variables are read with
// p1[0] / p1[1] or p1.x / p1.y. The "Math." prefix is accepted and ignored,
// so formulas such as "Math.sin(t) * Math.PI" compile as well.
//
// Nothing outside this whitelist can be reached from a formula.
//
//	e, err := expr.Compile("200 + 100*cos(t)")
//	if err != nil {
//	    return err
//	}
//	x, err := e.Eval(expr.Env{Vars: map[string]float64{"t": 0.5}})
package expr
