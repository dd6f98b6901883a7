package expr

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIllegal
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
)

type token struct {
	kind tokenKind
	text string
	pos  int
	num  float64
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) {
		r, w := l.peek()
		if !unicode.IsSpace(r) {
			break
		}
		l.i += w
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}

	start := l.i
	single := func(k tokenKind) token {
		l.i++
		return token{kind: k, text: l.s[start:l.i], pos: start}
	}

	switch l.s[l.i] {
	case '+':
		return single(tokPlus)
	case '-':
		return single(tokMinus)
	case '*':
		if l.i+1 < len(l.s) && l.s[l.i+1] == '*' {
			l.i += 2
			return token{kind: tokCaret, text: "**", pos: start}
		}
		return single(tokStar)
	case '/':
		return single(tokSlash)
	case '^':
		return single(tokCaret)
	case '(':
		return single(tokLParen)
	case ')':
		return single(tokRParen)
	case '[':
		return single(tokLBracket)
	case ']':
		return single(tokRBracket)
	case ',':
		return single(tokComma)
	}

	ch, width := l.peek()
	if isIdentStart(ch) {
		l.i += width
		for l.i < len(l.s) {
			c, w := l.peek()
			if isIdentContinue(c) {
				l.i += w
				continue
			}
			// A dot continues an identifier when a letter follows it,
			// as in Math.sin or p1.x.
			if c == '.' {
				if next, _ := utf8.DecodeRuneInString(l.s[l.i+1:]); isIdentStart(next) {
					l.i++
					continue
				}
			}
			break
		}
		return token{kind: tokIdent, text: l.s[start:l.i], pos: start}
	}
	if ch == '.' || isDigit(l.s[l.i]) {
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		f, err := strconv.ParseFloat(txt, 64)
		if err != nil || txt == "" {
			if l.i == start {
				l.i += width
			}
			return token{kind: tokIllegal, text: l.s[start:l.i], pos: start}
		}
		return token{kind: tokNumber, text: txt, pos: start, num: f}
	}

	l.i += width
	return token{kind: tokIllegal, text: l.s[start:l.i], pos: start}
}

// peek decodes the rune at the current offset.
func (l *lexer) peek() (rune, int) {
	return utf8.DecodeRuneInString(l.s[l.i:])
}

func scanNumber(s string, i int) int {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i > start && i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
