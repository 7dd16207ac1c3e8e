package parser

import (
	"github.com/vippsas/smlparse/ast"
	"github.com/vippsas/smlparse/errs"
	"github.com/vippsas/smlparse/infix"
	"github.com/vippsas/smlparse/token"
)

// parseExp parses a full expression (the unrestricted "Exp" layer of the
// restriction grammar, spec §4.6's AtExp < AppExp < InfExp < Exp): the
// raise/fn/case prefix forms, or else the infix/application/atomic layers
// below, followed by the after-expression loop for `:`, `handle`,
// `andalso`, `orelse`.
func (p *Parser) parseExp(dict infix.Dict) (ast.Expr, error) {
	var left ast.Expr
	var err error

	tok, ok := p.peek()
	switch {
	case ok && tok.Is("raise"):
		kw := p.advance()
		inner, ierr := p.parseExp(dict)
		if ierr != nil {
			return nil, ierr
		}
		left = ast.MaybeRotateLeft(ast.ExprRaise{Kw: kw, Expr: inner})
	case ok && tok.Is("fn"):
		kw := p.advance()
		m, merr := p.parseMatch(dict)
		if merr != nil {
			return nil, merr
		}
		left = ast.ExprFn{Kw: kw, Match: m}
	case ok && tok.Is("case"):
		kw := p.advance()
		scrut, serr := p.parseExp(dict)
		if serr != nil {
			return nil, serr
		}
		ofTok, oerr := p.expect("of")
		if oerr != nil {
			return nil, oerr
		}
		m, merr := p.parseMatch(dict)
		if merr != nil {
			return nil, merr
		}
		left = ast.ExprCase{Kw: kw, Scrutinee: scrut, Of: ofTok, Match: m}
	default:
		left, err = p.parseInfExp(dict)
		if err != nil {
			return nil, err
		}
	}
	return p.afterExpr(dict, left)
}

// afterExpr implements the after-expression loop: it inspects the next
// token and, as long as it is one of `:`, `handle`, `andalso`, `orelse`,
// folds a further continuation onto left; anything else (including a token
// that endsCurrentExp) stops the loop.
func (p *Parser) afterExpr(dict infix.Dict, left ast.Expr) (ast.Expr, error) {
	for {
		tok, ok := p.peek()
		if !ok || tok.EndsCurrentExp() {
			return left, nil
		}
		switch {
		case tok.Is(":"):
			colon := p.advance()
			ty, err := p.parseType(true)
			if err != nil {
				return nil, err
			}
			left = ast.ExprTyped{Expr: left, Colon: colon, Ty: ty}
		case tok.Is("handle"):
			kw := p.advance()
			m, err := p.parseMatch(dict)
			if err != nil {
				return nil, err
			}
			left = ast.MaybeRotateLeft(ast.ExprHandle{Expr: left, Kw: kw, Match: m})
		case tok.Is("andalso"):
			kw := p.advance()
			right, err := p.parseInfExp(dict)
			if err != nil {
				return nil, err
			}
			left = ast.MaybeRotateLeft(ast.ExprAndalso{Left: left, Kw: kw, Right: right})
		case tok.Is("orelse"):
			kw := p.advance()
			right, err := p.parseInfExp(dict)
			if err != nil {
				return nil, err
			}
			left = ast.MaybeRotateLeft(ast.ExprOrelse{Left: left, Kw: kw, Right: right})
		default:
			return left, nil
		}
	}
}

// parseInfExp builds the right-leaning infix tree of spec §4.5: it parses
// one AppExp, and if the next token is a dictionary-registered operator,
// recurses for the right-hand side and calls ast.MakeInfix to rebalance.
func (p *Parser) parseInfExp(dict infix.Dict) (ast.Expr, error) {
	left, err := p.parseAppExp(dict)
	if err != nil {
		return nil, err
	}
	tok, ok := p.peek()
	if !ok || !p.isInfixOperatorToken(tok, dict) {
		return left, nil
	}
	opTok := p.advance()
	right, err := p.parseInfExp(dict)
	if err != nil {
		return nil, err
	}
	return ast.MakeInfix(dict, left, opTok, right)
}

// parseAppExp is left-recursive application: atexp (atexp)*. It stops one
// token early whenever the next token is dictionary-registered as an infix
// operator, so parseInfExp gets first refusal on it (spec §4.6's "hard
// part": application is only the fallback continuation).
func (p *Parser) parseAppExp(dict infix.Dict) (ast.Expr, error) {
	left, err := p.parseAtExp(dict)
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.EndsCurrentExp() {
			break
		}
		if p.isInfixOperatorToken(tok, dict) {
			break
		}
		if !canStartAtExp(tok) {
			break
		}
		arg, err := p.parseAtExp(dict)
		if err != nil {
			return nil, err
		}
		left = ast.ExprApp{Fun: left, Arg: arg}
	}
	return left, nil
}

// parseAtExp parses the atomic expression forms of spec §4.6: constants,
// [op]longvid, (), (exp), (exp,...), (exp;...), [exp,...], let...end.
func (p *Parser) parseAtExp(dict infix.Dict) (ast.Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errUnexpected()
	}
	switch {
	case isConstClass(tok.Class):
		p.advance()
		return ast.ExprConst{Tok: tok}, nil
	case tok.Is("op"):
		opTok := p.advance()
		name, err := p.expectIdentLike()
		if err != nil {
			return nil, err
		}
		return ast.ExprIdent{Op: &opTok, Name: name}, nil
	case tok.IsValueIdentifier():
		if dict.Contains(tok.Text()) {
			return nil, errs.New(errs.SyntaxError, tok.Src, "Infix identifier not prefaced by 'op'.")
		}
		p.advance()
		return ast.ExprIdent{Name: tok}, nil
	case tok.Is("("):
		return p.parseParenExp(dict)
	case tok.Is("["):
		return p.parseListExp(dict)
	case tok.Is("let"):
		return p.parseLetExp(dict)
	default:
		return nil, p.errUnexpected()
	}
}

func (p *Parser) parseParenExp(dict infix.Dict) (ast.Expr, error) {
	left := p.advance()
	if tok, ok := p.peek(); ok && tok.Is(")") {
		right := p.advance()
		return ast.ExprUnit{Left: left, Right: right}, nil
	}

	first, err := p.parseExp(dict)
	if err != nil {
		return nil, err
	}
	tok, ok := p.peek()
	switch {
	case ok && tok.Is(")"):
		right := p.advance()
		return ast.ExprParens{Left: left, Inner: first, Right: right}, nil
	case ok && tok.Is(","):
		elems := []ast.Expr{first}
		var delims []token.Token
		for {
			t, ok := p.peek()
			if !ok || !t.Is(",") {
				break
			}
			delims = append(delims, p.advance())
			e, err := p.parseExp(dict)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		right, err := p.expect(")")
		if err != nil {
			return nil, err
		}
		return ast.ExprTuple{Left: left, Elems: elems, Delims: delims, Right: right}, nil
	case ok && tok.Is(";"):
		elems := []ast.Expr{first}
		var delims []token.Token
		for {
			t, ok := p.peek()
			if !ok || !t.Is(";") {
				break
			}
			delims = append(delims, p.advance())
			e, err := p.parseExp(dict)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		right, err := p.expect(")")
		if err != nil {
			return nil, err
		}
		return ast.ExprSequence{Left: left, Elems: elems, Delims: delims, Right: right}, nil
	default:
		return nil, p.errUnexpected()
	}
}

func (p *Parser) parseListExp(dict infix.Dict) (ast.Expr, error) {
	left := p.advance()
	if tok, ok := p.peek(); ok && tok.Is("]") {
		right := p.advance()
		return ast.ExprList{Left: left, Right: right}, nil
	}
	first, err := p.parseExp(dict)
	if err != nil {
		return nil, err
	}
	elems := []ast.Expr{first}
	var delims []token.Token
	for {
		t, ok := p.peek()
		if !ok || !t.Is(",") {
			break
		}
		delims = append(delims, p.advance())
		e, err := p.parseExp(dict)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	right, err := p.expect("]")
	if err != nil {
		return nil, err
	}
	return ast.ExprList{Left: left, Elems: elems, Delims: delims, Right: right}, nil
}

func (p *Parser) parseLetExp(dict infix.Dict) (ast.Expr, error) {
	kw := p.advance()
	decl, letDict, err := p.parseDeclSequence(dict)
	if err != nil {
		return nil, err
	}
	inTok, err := p.expect("in")
	if err != nil {
		return nil, err
	}
	first, err := p.parseExp(letDict)
	if err != nil {
		return nil, err
	}
	body := []ast.Expr{first}
	var delims []token.Token
	for {
		t, ok := p.peek()
		if !ok || !t.Is(";") {
			break
		}
		delims = append(delims, p.advance())
		e, err := p.parseExp(letDict)
		if err != nil {
			return nil, err
		}
		body = append(body, e)
	}
	endTok, err := p.expect("end")
	if err != nil {
		return nil, err
	}
	// letDict is intentionally not returned to the caller: fixity
	// declared inside this let never escapes it (spec §5).
	return ast.ExprLetInEnd{Let: kw, Decl: decl, In: inTok, Body: body, Delims: delims, End: endTok}, nil
}

func (p *Parser) parseMatch(dict infix.Dict) (ast.Match, error) {
	pat, err := p.parsePattern(dict, true)
	if err != nil {
		return ast.Match{}, err
	}
	arrow, err := p.expect("=>")
	if err != nil {
		return ast.Match{}, err
	}
	body, err := p.parseExp(dict)
	if err != nil {
		return ast.Match{}, err
	}
	clauses := []ast.MatchClause{{Pat: pat, Arrow: arrow, Body: body}}
	var bars []token.Token
	for {
		t, ok := p.peek()
		if !ok || !t.Is("|") {
			break
		}
		bars = append(bars, p.advance())
		pat, err := p.parsePattern(dict, true)
		if err != nil {
			return ast.Match{}, err
		}
		arrow, err := p.expect("=>")
		if err != nil {
			return ast.Match{}, err
		}
		body, err := p.parseExp(dict)
		if err != nil {
			return ast.Match{}, err
		}
		clauses = append(clauses, ast.MatchClause{Pat: pat, Arrow: arrow, Body: body})
	}
	return ast.Match{Clauses: clauses, Bars: bars}, nil
}
