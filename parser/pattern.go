package parser

import (
	"github.com/vippsas/smlparse/ast"
	"github.com/vippsas/smlparse/errs"
	"github.com/vippsas/smlparse/infix"
	"github.com/vippsas/smlparse/token"
)

// parsePattern parses the atomic pattern forms of spec §4.6: `_`,
// constants, `[op]longvid`, `()`, `(pat)`, `(pat,...)`, `[pat,...]`. The
// nonAtomicOkay parameter is threaded through per spec §4.6's description
// of the parameter, even though this core, like the one it is grounded on,
// implements only the atomic forms. A pattern whose first token starts none
// of these forms raises NOT YET IMPLEMENTED. A pattern that begins like an
// atomic one and then continues (a layered `x as p`, a typed `x : t`, an
// infix constructor `x :: xs`, a constructor application `SOME x`) is read
// only up to its atomic prefix, and the caller then fails with a plain
// "Unexpected token." syntax error at the next token. Record patterns fail
// earlier, in the lexer, which has no token for '{'.
func (p *Parser) parsePattern(dict infix.Dict, nonAtomicOkay bool) (ast.Pattern, error) {
	_ = nonAtomicOkay
	tok, ok := p.peek()
	if !ok {
		return nil, p.errUnexpected()
	}
	switch {
	case tok.Is("_"):
		p.advance()
		return ast.PatWild{Tok: tok}, nil
	case isConstClass(tok.Class):
		p.advance()
		return ast.PatConst{Tok: tok}, nil
	case tok.Is("op"):
		opTok := p.advance()
		name, err := p.expectIdentLike()
		if err != nil {
			return nil, err
		}
		return ast.PatIdent{Op: &opTok, Name: name}, nil
	case tok.IsValueIdentifier():
		p.advance()
		return ast.PatIdent{Name: tok}, nil
	case tok.Is("("):
		return p.parseParenPattern(dict)
	case tok.Is("["):
		return p.parseListPattern(dict)
	default:
		return nil, errs.New(errs.NotYetImplemented, tok.Src, "Unsupported pattern form.")
	}
}

func (p *Parser) parseParenPattern(dict infix.Dict) (ast.Pattern, error) {
	left := p.advance()
	if tok, ok := p.peek(); ok && tok.Is(")") {
		right := p.advance()
		return ast.PatUnit{Left: left, Right: right}, nil
	}
	first, err := p.parsePattern(dict, true)
	if err != nil {
		return nil, err
	}
	tok, ok := p.peek()
	switch {
	case ok && tok.Is(")"):
		right := p.advance()
		return ast.PatParens{Left: left, Inner: first, Right: right}, nil
	case ok && tok.Is(","):
		elems := []ast.Pattern{first}
		var delims []token.Token
		for {
			t, ok := p.peek()
			if !ok || !t.Is(",") {
				break
			}
			delims = append(delims, p.advance())
			e, err := p.parsePattern(dict, true)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		right, err := p.expect(")")
		if err != nil {
			return nil, err
		}
		return ast.PatTuple{Left: left, Elems: elems, Delims: delims, Right: right}, nil
	default:
		return nil, p.errUnexpected()
	}
}

func (p *Parser) parseListPattern(dict infix.Dict) (ast.Pattern, error) {
	left := p.advance()
	if tok, ok := p.peek(); ok && tok.Is("]") {
		right := p.advance()
		return ast.PatList{Left: left, Right: right}, nil
	}
	first, err := p.parsePattern(dict, true)
	if err != nil {
		return nil, err
	}
	elems := []ast.Pattern{first}
	var delims []token.Token
	for {
		t, ok := p.peek()
		if !ok || !t.Is(",") {
			break
		}
		delims = append(delims, p.advance())
		e, err := p.parsePattern(dict, true)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	right, err := p.expect("]")
	if err != nil {
		return nil, err
	}
	return ast.PatList{Left: left, Elems: elems, Delims: delims, Right: right}, nil
}
