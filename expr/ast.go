package expr

import (
	"fmt"
	"math"
)

type node interface {
	eval(env *Env) (float64, error)
}

type nodeNumber struct {
	v float64
}

func (n nodeNumber) eval(*Env) (float64, error) { return n.v, nil }

type nodeVar struct {
	name string
}

func (n nodeVar) eval(env *Env) (float64, error) {
	if v, ok := env.Vars[n.name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownName, n.name)
}

// nodeComponent reads one coordinate of a point variable.
type nodeComponent struct {
	name  string
	index int
}

func (n nodeComponent) eval(env *Env) (float64, error) {
	p, ok := env.Points[n.name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownName, n.name)
	}
	return p[n.index], nil
}

type nodeUnary struct {
	op byte
	x  node
}

func (n nodeUnary) eval(env *Env) (float64, error) {
	v, err := n.x.eval(env)
	if err != nil {
		return 0, err
	}
	if n.op == '-' {
		return -v, nil
	}
	return v, nil
}

type nodeBinary struct {
	op          byte
	left, right node
}

func (n nodeBinary) eval(env *Env) (float64, error) {
	a, err := n.left.eval(env)
	if err != nil {
		return 0, err
	}
	b, err := n.right.eval(env)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		return a / b, nil
	case '^':
		return math.Pow(a, b), nil
	}
	return 0, fmt.Errorf("%w: operator %q", ErrSyntax, n.op)
}

type nodeCall struct {
	name string
	fn   function
	args []node
}

func (n nodeCall) eval(env *Env) (float64, error) {
	var buf [4]float64
	args := buf[:0]
	for _, a := range n.args {
		v, err := a.eval(env)
		if err != nil {
			return 0, err
		}
		args = append(args, v)
	}
	return n.fn.fn(args), nil
}
