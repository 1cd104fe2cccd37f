// Package parser turns concrete syntax into kernel values: a hand-written
// recursive descent parser for formulas and a YAML loader for script files
// declaring rule sets and proofs.
//
// The formula grammar, loosest binding first:
//
//	formula := disj ( '->' formula )?        implication, right-associative
//	disj    := conj ( '|' conj )*
//	conj    := unary ( '&' unary )*
//	unary   := '~' unary | atom
//	atom    := VAR | 'T' | 'F' | '(' formula ')'
//
// Each operator accepts ASCII and unicode spellings: ~ ¬ !, & ∧ /\, | ∨ \/,
// -> → =>, and the constants T/F also read as 1/0. All spellings collapse to
// the same trees.
package parser

import (
	"fmt"
	"strings"

	"github.com/prooflang/tproof/internal/formula"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokVar
	tokTrue
	tokFalse
	tokNot
	tokAnd
	tokOr
	tokImp
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokVar:
		return "variable"
	case tokTrue, tokFalse:
		return "constant"
	case tokNot:
		return "'~'"
	case tokAnd:
		return "'&'"
	case tokOr:
		return "'|'"
	case tokImp:
		return "'->'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "?"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int // rune offset in the input
}

// SyntaxError reports a lexical or grammatical error with its rune offset.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("position %d: %s", e.Pos, e.Msg)
}

func lexFormula(s string) ([]token, error) {
	runes := []rune(s)
	var tokens []token
	emit := func(kind tokenKind, pos int, text string) {
		tokens = append(tokens, token{kind: kind, text: text, pos: pos})
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			i++
		case r == '(':
			emit(tokLParen, i, "(")
			i++
		case r == ')':
			emit(tokRParen, i, ")")
			i++
		case r == '~' || r == '¬' || r == '!':
			emit(tokNot, i, string(r))
			i++
		case r == '&' || r == '∧':
			emit(tokAnd, i, string(r))
			i++
		case r == '|' || r == '∨':
			emit(tokOr, i, string(r))
			i++
		case r == '→':
			emit(tokImp, i, "→")
			i++
		case r == '-' || r == '=':
			if i+1 >= len(runes) || runes[i+1] != '>' {
				return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected %q, want %q", string(r), string(r)+">")}
			}
			emit(tokImp, i, string(r)+">")
			i += 2
		case r == '/' || r == '\\':
			if i+1 >= len(runes) {
				return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected %q at end of input", string(r))}
			}
			pair := string(r) + string(runes[i+1])
			switch pair {
			case `/\`:
				emit(tokAnd, i, pair)
			case `\/`:
				emit(tokOr, i, pair)
			default:
				return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected %q", pair)}
			}
			i += 2
		case r == 'T' || r == '1':
			emit(tokTrue, i, string(r))
			i++
		case r == 'F' || r == '0':
			emit(tokFalse, i, string(r))
			i++
		case formula.ValidVarName(string(r)):
			emit(tokVar, i, string(r))
			i++
		default:
			return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected %q", string(r))}
		}
	}
	emit(tokEOF, len(runes), "")
	return tokens, nil
}

type formulaParser struct {
	tokens []token
	next   int
}

func (p *formulaParser) peek() token { return p.tokens[p.next] }

func (p *formulaParser) advance() token {
	t := p.tokens[p.next]
	if t.kind != tokEOF {
		p.next++
	}
	return t
}

func (p *formulaParser) errUnexpected(t token, want string) error {
	if t.kind == tokEOF {
		return &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("unexpected end of input, want %s", want)}
	}
	return &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("unexpected %q, want %s", t.text, want)}
}

// ParseFormula parses one formula in concrete syntax.
func ParseFormula(s string) (formula.Formula, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &SyntaxError{Pos: 0, Msg: "empty formula"}
	}
	tokens, err := lexFormula(s)
	if err != nil {
		return nil, err
	}
	p := &formulaParser{tokens: tokens}
	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errUnexpected(t, "end of input")
	}
	return f, nil
}

func (p *formulaParser) parseFormula() (formula.Formula, error) {
	left, err := p.parseDisj()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokImp {
		return left, nil
	}
	p.advance()
	right, err := p.parseFormula() // right-associative
	if err != nil {
		return nil, err
	}
	return formula.Imply(left, right), nil
}

func (p *formulaParser) parseDisj() (formula.Formula, error) {
	left, err := p.parseConj()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.advance()
		right, err := p.parseConj()
		if err != nil {
			return nil, err
		}
		left = formula.Disj(left, right)
	}
	return left, nil
}

func (p *formulaParser) parseConj() (formula.Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = formula.Conj(left, right)
	}
	return left, nil
}

func (p *formulaParser) parseUnary() (formula.Formula, error) {
	if p.peek().kind == tokNot {
		p.advance()
		f, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return formula.Not(f), nil
	}
	return p.parseAtom()
}

func (p *formulaParser) parseAtom() (formula.Formula, error) {
	t := p.advance()
	switch t.kind {
	case tokVar:
		v, err := formula.NewVar(t.text)
		if err != nil {
			return nil, &SyntaxError{Pos: t.pos, Msg: err.Error()}
		}
		return v, nil
	case tokTrue:
		return formula.True, nil
	case tokFalse:
		return formula.False, nil
	case tokLParen:
		f, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if closing := p.advance(); closing.kind != tokRParen {
			return nil, p.errUnexpected(closing, "')'")
		}
		return f, nil
	default:
		return nil, p.errUnexpected(t, "a variable, constant, negation or '('")
	}
}
