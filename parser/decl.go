package parser

import (
	"github.com/vippsas/smlparse/ast"
	"github.com/vippsas/smlparse/errs"
	"github.com/vippsas/smlparse/infix"
	"github.com/vippsas/smlparse/token"
)

// parseDeclSequence parses zero or more declarations, each optionally
// followed by ';', collapsing them into a single Decl per spec §4.6. The
// returned Dict reflects every infix/infixr/nonfix declaration seen in this
// sequence, for the caller to thread to whatever follows at the same
// scope -- a `let` expression discards it on exit instead of propagating it
// further, which is what makes infix scoping local (spec §5).
func (p *Parser) parseDeclSequence(dict infix.Dict) (ast.Decl, infix.Dict, error) {
	tok, ok := p.peek()
	if !canStartDecl(tok, ok) {
		return ast.DecEmpty{At: p.emptyDeclMarker()}, dict, nil
	}

	var decls []ast.Decl
	var semis []*token.Token
	for {
		d, newDict, err := p.parseOneDecl(dict)
		if err != nil {
			return nil, dict, err
		}
		decls = append(decls, d)
		dict = newDict

		var semiPtr *token.Token
		if t, ok := p.peek(); ok && t.Is(";") {
			sep := p.advance()
			semiPtr = &sep
		}
		next, ok := p.peek()
		if !canStartDecl(next, ok) {
			if semiPtr != nil {
				semis = append(semis, semiPtr)
			}
			break
		}
		semis = append(semis, semiPtr)
	}

	if len(decls) == 1 {
		return decls[0], dict, nil
	}
	return ast.DecMultiple{Decls: decls, Semis: semis}, dict, nil
}

// emptyDeclMarker returns a token to anchor a DecEmpty's span at: the
// current token if any remains, else a zero-length slice at the tail of
// the file.
func (p *Parser) emptyDeclMarker() token.Token {
	if tok, ok := p.peek(); ok {
		return tok
	}
	return token.New(p.errPos(), token.Reserved)
}

func (p *Parser) parseOneDecl(dict infix.Dict) (ast.Decl, infix.Dict, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, dict, p.errUnexpected()
	}
	switch {
	case tok.Is("val"):
		return p.parseValDecl(dict)
	case tok.Is("fun"):
		return p.parseFunDecl(dict)
	case tok.Is("type"):
		return p.parseTypeDecl(dict)
	case tok.Is("infix"):
		return p.parseFixityDecl(dict, infix.Left)
	case tok.Is("infixr"):
		return p.parseFixityDecl(dict, infix.Right)
	case tok.Is("nonfix"):
		return p.parseNonfixDecl(dict)
	default:
		e, err := p.parseExp(dict)
		if err != nil {
			return nil, dict, err
		}
		return ast.DecExpr{Expr: e}, dict, nil
	}
}

// checkNoAndChain raises the spec §9 "not yet implemented" error for
// `and`-chained val/fun declarations, which this core does not support.
// "and" is not a member of the closed reserved-word set of spec §3, so it
// never actually lexes as Reserved here; this check is a no-op today and
// only fires if the reserved set is later extended to admit and-chains.
func (p *Parser) checkNoAndChain() error {
	if tok, ok := p.peek(); ok && tok.Is("and") {
		return errs.New(errs.NotYetImplemented, tok.Src, "'and'-chained declarations are not yet implemented.")
	}
	return nil
}

func (p *Parser) parseValDecl(dict infix.Dict) (ast.Decl, infix.Dict, error) {
	leading := p.leadingAtCursor()
	kw := p.advance()
	tyvars := p.parseTyVarSeq()

	var rec *token.Token
	if tok, ok := p.peek(); ok && tok.Is("rec") {
		t := p.advance()
		rec = &t
	}

	pat, err := p.parsePattern(dict, true)
	if err != nil {
		return nil, dict, err
	}
	eq, err := p.expect("=")
	if err != nil {
		return nil, dict, err
	}
	body, err := p.parseExp(dict)
	if err != nil {
		return nil, dict, err
	}
	if err := p.checkNoAndChain(); err != nil {
		return nil, dict, err
	}
	return ast.DecVal{Leading: leading, Kw: kw, TyVars: tyvars, Rec: rec, Pat: pat, Eq: eq, Body: body}, dict, nil
}

func (p *Parser) parseFunDecl(dict infix.Dict) (ast.Decl, infix.Dict, error) {
	leading := p.leadingAtCursor()
	kw := p.advance()
	tyvars := p.parseTyVarSeq()

	var opTok *token.Token
	if tok, ok := p.peek(); ok && tok.Is("op") {
		t := p.advance()
		opTok = &t
	}
	name, err := p.expectIdentLike()
	if err != nil {
		return nil, dict, err
	}

	var params []ast.Pattern
	for {
		tok, ok := p.peek()
		if !ok || !canStartAtPattern(tok) {
			break
		}
		pat, err := p.parsePattern(dict, false)
		if err != nil {
			return nil, dict, err
		}
		params = append(params, pat)
	}
	if len(params) == 0 {
		return nil, dict, errs.Newf(errs.SyntaxError, p.errPos(), "Unexpected token.",
			"Expected to see a function parameter")
	}

	var colon *token.Token
	var resultTy ast.Type
	if tok, ok := p.peek(); ok && tok.Is(":") {
		t := p.advance()
		colon = &t
		ty, err := p.parseType(true)
		if err != nil {
			return nil, dict, err
		}
		resultTy = ty
	}

	eq, err := p.expect("=")
	if err != nil {
		return nil, dict, err
	}
	body, err := p.parseExp(dict)
	if err != nil {
		return nil, dict, err
	}
	if tok, ok := p.peek(); ok && tok.Is("|") {
		return nil, dict, errs.New(errs.NotYetImplemented, tok.Src, "Multiple 'fun' clauses are not yet implemented.")
	}
	if err := p.checkNoAndChain(); err != nil {
		return nil, dict, err
	}
	return ast.DecFun{
		Leading: leading, Kw: kw, TyVars: tyvars, Op: opTok, Name: name,
		Params: params, Colon: colon, ResultTy: resultTy, Eq: eq, Body: body,
	}, dict, nil
}

func (p *Parser) parseTypeDecl(dict infix.Dict) (ast.Decl, infix.Dict, error) {
	leading := p.leadingAtCursor()
	kw := p.advance()
	tyvars := p.parseTyVarSeq()
	name, err := p.expectIdentLike()
	if err != nil {
		return nil, dict, err
	}
	eq, err := p.expect("=")
	if err != nil {
		return nil, dict, err
	}
	ty, err := p.parseType(true)
	if err != nil {
		return nil, dict, err
	}
	return ast.DecType{Leading: leading, Kw: kw, TyVars: tyvars, Name: name, Eq: eq, Ty: ty}, dict, nil
}

func isInfixableId(tok token.Token) bool {
	return tok.Class == token.Identifier || tok.IsStar()
}

func (p *Parser) parseFixityDecl(dict infix.Dict, assoc infix.Assoc) (ast.Decl, infix.Dict, error) {
	leading := p.leadingAtCursor()
	kw := p.advance()

	var digit *token.Token
	precedence := 0
	if tok, ok := p.peek(); ok && tok.Class == token.IntConst && len(tok.Text()) == 1 {
		t := p.advance()
		digit = &t
		precedence = int(t.Text()[0] - '0')
	}

	var ids []token.Token
	for {
		tok, ok := p.peek()
		if !ok || !isInfixableId(tok) {
			break
		}
		ids = append(ids, p.advance())
	}
	if len(ids) == 0 {
		return nil, dict, errs.Newf(errs.SyntaxError, p.errPos(), "Unexpected token.",
			"Expected to see an identifier")
	}

	newDict := dict
	for _, id := range ids {
		newDict = newDict.Insert(id.Text(), precedence, assoc)
	}

	if assoc == infix.Right {
		return ast.DecInfixr{Leading: leading, Kw: kw, Digit: digit, Ids: ids}, newDict, nil
	}
	return ast.DecInfix{Leading: leading, Kw: kw, Digit: digit, Ids: ids}, newDict, nil
}

func (p *Parser) parseNonfixDecl(dict infix.Dict) (ast.Decl, infix.Dict, error) {
	leading := p.leadingAtCursor()
	kw := p.advance()

	var ids []token.Token
	for {
		tok, ok := p.peek()
		if !ok || !isInfixableId(tok) {
			break
		}
		ids = append(ids, p.advance())
	}
	if len(ids) == 0 {
		return nil, dict, errs.Newf(errs.SyntaxError, p.errPos(), "Unexpected token.",
			"Expected to see an identifier")
	}

	newDict := dict
	for _, id := range ids {
		newDict = newDict.Remove(id.Text())
	}
	return ast.DecNonfix{Leading: leading, Kw: kw, Ids: ids}, newDict, nil
}

// parseTyVarSeq parses an optional `tyvar` or `(tyvar, tyvar, ...)` prefix
// appearing after val/fun/type (spec §3's SyntaxSeq, specialised to
// token.Token since a tyvar is always a single leaf token).
func (p *Parser) parseTyVarSeq() ast.Seq[token.Token] {
	tok, ok := p.peek()
	if !ok {
		return ast.Empty[token.Token]()
	}
	if tok.Class == token.TyVar {
		return ast.One(p.advance())
	}
	if !tok.Is("(") {
		return ast.Empty[token.Token]()
	}

	save := p.pos
	left := p.advance()
	first, ok := p.peek()
	if !ok || first.Class != token.TyVar {
		p.pos = save
		return ast.Empty[token.Token]()
	}
	elems := []token.Token{p.advance()}
	var delims []token.Token
	for {
		d, ok := p.peek()
		if !ok || !d.Is(",") {
			break
		}
		sep := p.advance()
		tv, ok := p.peek()
		if !ok || tv.Class != token.TyVar {
			p.pos = save
			return ast.Empty[token.Token]()
		}
		delims = append(delims, sep)
		elems = append(elems, p.advance())
	}
	right, ok := p.peek()
	if !ok || !right.Is(")") {
		p.pos = save
		return ast.Empty[token.Token]()
	}
	p.advance()
	return ast.Many(left, elems, delims, right)
}
