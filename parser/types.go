package parser

import (
	"github.com/vippsas/smlparse/ast"
	"github.com/vippsas/smlparse/errs"
	"github.com/vippsas/smlparse/token"
)

// parseType parses the type-expression grammar of spec §4.6: tyvars,
// (long) type constructors with 0/1/many arguments, tuple types, and
// right-associative arrow types. arrowOkay gates whether `->` may appear
// at this level -- tuple element types forbid it directly (the caller
// reaching them never sets arrowOkay), matching "ty -> ty ... permitted
// only when the caller allows arrows".
func (p *Parser) parseType(arrowOkay bool) (ast.Type, error) {
	left, err := p.parseTupleType()
	if err != nil {
		return nil, err
	}
	if arrowOkay {
		if tok, ok := p.peek(); ok && tok.Is("->") {
			arrow := p.advance()
			right, err := p.parseType(true)
			if err != nil {
				return nil, err
			}
			return ast.TypeArrow{Domain: left, Arrow: arrow, Range: right}, nil
		}
	}
	return left, nil
}

func (p *Parser) parseTupleType() (ast.Type, error) {
	first, err := p.parseAtomicType()
	if err != nil {
		return nil, err
	}
	tok, ok := p.peek()
	if !ok || !tok.IsStar() {
		return first, nil
	}
	elems := []ast.Type{first}
	var stars []token.Token
	for {
		t, ok := p.peek()
		if !ok || !t.IsStar() {
			break
		}
		stars = append(stars, p.advance())
		next, err := p.parseAtomicType()
		if err != nil {
			return nil, err
		}
		elems = append(elems, next)
	}
	return ast.TypeTuple{Elems: elems, Stars: stars}, nil
}

// parseAtomicType parses a single tyvar, parenthesised type (or
// comma-separated argument list), or bare type constructor, then hands off
// to parsePostfixTyCons to consume any following `longtycon` chain (e.g.
// "'a list list").
func (p *Parser) parseAtomicType() (ast.Type, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errUnexpected()
	}
	switch {
	case tok.Class == token.TyVar:
		p.advance()
		return p.parsePostfixTyCons(ast.One[ast.Type](ast.TypeVar{Tok: tok}))
	case tok.Is("("):
		left := p.advance()
		first, err := p.parseType(true)
		if err != nil {
			return nil, err
		}
		next, ok := p.peek()
		switch {
		case ok && next.Is(")"):
			right := p.advance()
			return p.parsePostfixTyCons(ast.One[ast.Type](ast.TypeParens{Left: left, Inner: first, Right: right}))
		case ok && next.Is(","):
			elems := []ast.Type{first}
			var delims []token.Token
			for {
				t, ok := p.peek()
				if !ok || !t.Is(",") {
					break
				}
				delims = append(delims, p.advance())
				e, err := p.parseType(true)
				if err != nil {
					return nil, err
				}
				elems = append(elems, e)
			}
			right, err := p.expect(")")
			if err != nil {
				return nil, err
			}
			con, err := p.expectLongTyCon()
			if err != nil {
				return nil, err
			}
			base := ast.TypeCon{Args: ast.Many(left, elems, delims, right), Con: con}
			return p.parsePostfixTyCons(ast.One[ast.Type](base))
		default:
			return nil, p.errUnexpected()
		}
	case tok.IsMaybeLongTyCon():
		p.advance()
		base := ast.TypeCon{Args: ast.Empty[ast.Type](), Con: tok}
		return p.parsePostfixTyCons(ast.One[ast.Type](base))
	default:
		return nil, p.errUnexpected()
	}
}

// parsePostfixTyCons consumes zero or more trailing `longtycon` tokens,
// each wrapping the previous result as that tycon's single argument.
func (p *Parser) parsePostfixTyCons(args ast.Seq[ast.Type]) (ast.Type, error) {
	for {
		tok, ok := p.peek()
		if !ok || !tok.IsMaybeLongTyCon() {
			break
		}
		con := p.advance()
		args = ast.One[ast.Type](ast.TypeCon{Args: args, Con: con})
	}
	if args.Kind == ast.SeqOne {
		return args.One, nil
	}
	return nil, errs.Newf(errs.SyntaxError, p.errPos(), "Unexpected token.",
		"Expected to see a type constructor")
}

func (p *Parser) expectLongTyCon() (token.Token, error) {
	tok, ok := p.peek()
	if !ok || !tok.IsMaybeLongTyCon() {
		return token.Token{}, errs.Newf(errs.SyntaxError, p.errPos(), "Unexpected token.",
			"Expected to see a type constructor")
	}
	return p.advance(), nil
}
