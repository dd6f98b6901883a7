package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned for malformed formulas.
	ErrSyntax = errors.New("expr: syntax error")
	// ErrUnknownName is returned for functions, variables or points that do
	// not exist.
	ErrUnknownName = errors.New("expr: unknown name")
	// ErrArity is returned when a function is called with the wrong number
	// of arguments.
	ErrArity = errors.New("expr: wrong number of arguments")
	// ErrIndex is returned for point indexes other than 0 and 1.
	ErrIndex = errors.New("expr: bad point index")
)

// Env binds the names a formula may read.
// Vars holds scalars such as t; Points holds 2D points such as p0.
type Env struct {
	Vars   map[string]float64
	Points map[string][2]float64
}

// Expr is a compiled formula. It is immutable and may be evaluated any
// number of times with different environments.
type Expr struct {
	src  string
	root node
}

// Compile parses src. Function names and arities are checked here;
// variables are looked up at evaluation time.
func Compile(src string) (*Expr, error) {
	root, err := parse(src)
	if err != nil {
		return nil, err
	}
	return &Expr{src: src, root: root}, nil
}

// MustCompile is like Compile but panics on error.
// It is meant for formulas that are fixed at build time.
func MustCompile(src string) *Expr {
	e, err := Compile(src)
	if err != nil {
		panic(fmt.Sprintf("expr: Compile(%q): %v", src, err))
	}
	return e
}

// Eval evaluates the formula against env.
func (e *Expr) Eval(env Env) (float64, error) {
	return e.root.eval(&env)
}

// String returns the source text the formula was compiled from.
func (e *Expr) String() string {
	return e.src
}

// Eval compiles and evaluates src in one step.
func Eval(src string, env Env) (float64, error) {
	e, err := Compile(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(env)
}
