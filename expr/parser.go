package expr

import (
	"fmt"
	"strings"
)

type parser struct {
	l   lexer
	cur token
}

func parse(src string) (node, error) {
	p := &parser{l: lexer{s: src}}
	p.next()
	if p.cur.kind == tokEOF {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return n, nil
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) unexpected() error {
	if p.cur.kind == tokEOF {
		return fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	return fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, p.cur.text, p.cur.pos)
}

func (p *parser) expect(k tokenKind, what string) error {
	if p.cur.kind != k {
		return fmt.Errorf("%w: expected %s at offset %d", ErrSyntax, what, p.cur.pos)
	}
	p.next()
	return nil
}

func (p *parser) parseExpr() (node, error) {
	return p.parseSum()
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

// parseUnary binds looser than ^, so -2^2 is -(2^2).
func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePower()
}

// parsePower is right-associative: 2^3^2 is 2^(3^2).
func (p *parser) parsePower() (node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokCaret {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeBinary{op: '^', left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return nodeNumber{v: v}, nil
	case tokIdent:
		name := strings.TrimPrefix(p.cur.text, "Math.")
		pos := p.cur.pos
		p.next()
		switch p.cur.kind {
		case tokLParen:
			return p.parseCall(name, pos)
		case tokLBracket:
			return p.parseIndex(name)
		}
		return resolveName(name)
	case tokLParen:
		p.next()
		ex, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return ex, nil
	default:
		return nil, p.unexpected()
	}
}

func (p *parser) parseCall(name string, pos int) (node, error) {
	fn, ok := functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: function %q at offset %d", ErrUnknownName, name, pos)
	}
	p.next()
	var args []node
	if p.cur.kind != tokRParen {
		for {
			ex, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, ex)
			if p.cur.kind != tokComma {
				break
			}
			p.next()
		}
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	if (fn.arity >= 0 && len(args) != fn.arity) || (fn.arity < 0 && len(args) < -fn.arity) {
		return nil, fmt.Errorf("%w: %s takes %s, got %d", ErrArity, name, arityText(fn.arity), len(args))
	}
	return nodeCall{name: name, fn: fn, args: args}, nil
}

func (p *parser) parseIndex(name string) (node, error) {
	p.next()
	if p.cur.kind != tokNumber {
		return nil, fmt.Errorf("%w: index of %q must be 0 or 1", ErrIndex, name)
	}
	idx := p.cur.num
	p.next()
	if err := p.expect(tokRBracket, "']'"); err != nil {
		return nil, err
	}
	if idx != 0 && idx != 1 {
		return nil, fmt.Errorf("%w: %s[%v]", ErrIndex, name, idx)
	}
	return nodeComponent{name: name, index: int(idx)}, nil
}

func resolveName(name string) (node, error) {
	if v, ok := constants[name]; ok {
		return nodeNumber{v: v}, nil
	}
	if base, ok := strings.CutSuffix(name, ".x"); ok {
		return nodeComponent{name: base, index: 0}, nil
	}
	if base, ok := strings.CutSuffix(name, ".y"); ok {
		return nodeComponent{name: base, index: 1}, nil
	}
	if strings.Contains(name, ".") {
		return nil, fmt.Errorf("%w %q", ErrUnknownName, name)
	}
	return nodeVar{name: name}, nil
}

func arityText(arity int) string {
	switch {
	case arity == 1:
		return "1 argument"
	case arity < 0:
		return fmt.Sprintf("at least %d argument(s)", -arity)
	default:
		return fmt.Sprintf("%d arguments", arity)
	}
}
