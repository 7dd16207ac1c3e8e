// Package parser is the recursive-descent driver of spec §4.6: it consumes
// the token array produced by the lexer, threads an infix.Dict through the
// declaration sequence (cloned-on-entry at every `let`, per spec §5/§9), and
// produces a CST.
//
// It follows the teacher's sqlparser.Parser in overall shape -- a cursor
// over a pre-scanned token slice, mutually recursive parse* methods, a
// single error type raised by panicking up to a recover() at the public
// entry point (sqlparser/parser.go's parseStatement/parseExpr pairing) --
// adapted here to return (node, error) directly, since this grammar's
// restriction layers (AtExp/AppExp/InfExp/Exp) are easier to keep straight
// as ordinary Go error returns than as a panic/recover control flow.
package parser

import (
	"fmt"

	"github.com/vippsas/smlparse/ast"
	"github.com/vippsas/smlparse/errs"
	"github.com/vippsas/smlparse/infix"
	"github.com/vippsas/smlparse/internal/debug"
	"github.com/vippsas/smlparse/lexer"
	"github.com/vippsas/smlparse/source"
	"github.com/vippsas/smlparse/token"
)

// Stats reports how much of the input the parser consumed, for the §6
// "Successfully parsed N out of M tokens" diagnostic line; callers in
// cli/cmd format and print it, never the parser itself.
type Stats struct {
	ConsumedTokens int
	TotalTokens    int
}

// Parse tokenises src and parses it to completion as a declaration sequence,
// the top-level construct of spec §4.6. Comment tokens are filtered out of
// the stream the parser consumes but are reattached to whichever
// val/fun/type/infix/infixr/nonfix declaration they immediately precede,
// read back through ast.LeadingComments (see SPEC_FULL.md's supplemented
// "docstring" feature).
func Parse(src source.Source) (ast.Decl, Stats, error) {
	rawToks, err := lexer.Tokens(src)
	if err != nil {
		return nil, Stats{}, err
	}

	var toks []token.Token
	var leading [][]token.Token
	var pending []token.Token
	for _, t := range rawToks {
		if t.Class == token.Comment {
			pending = append(pending, t)
			continue
		}
		toks = append(toks, t)
		leading = append(leading, pending)
		pending = nil
	}

	debug.Printf("parsing %s: %d tokens (%d comments filtered)", src.FileName(), len(toks), len(rawToks)-len(toks))

	p := &Parser{toks: toks, leading: leading, src: src}
	decl, _, err := p.parseDeclSequence(infix.InitialTopLevel())
	if err != nil {
		return nil, Stats{}, err
	}
	if p.pos != len(p.toks) {
		tok, _ := p.peek()
		return nil, Stats{}, errs.New(errs.SyntaxError, tok.Src, "Unexpected token.")
	}
	debug.Printf("parsed %s: consumed %d/%d tokens", src.FileName(), p.pos, len(toks))
	return decl, Stats{ConsumedTokens: p.pos, TotalTokens: len(toks)}, nil
}

// Parser holds the cursor over a pre-scanned, comment-filtered token array.
type Parser struct {
	toks    []token.Token
	leading [][]token.Token
	pos     int
	src     source.Source
}

func (p *Parser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *Parser) leadingAtCursor() []token.Token {
	if p.pos < len(p.leading) {
		return p.leading[p.pos]
	}
	return nil
}

// errPos returns a source slice to anchor an error message at: the next
// token's span, or a zero-length slice at the tail of the input if none
// remains.
func (p *Parser) errPos() source.Source {
	if tok, ok := p.peek(); ok {
		return tok.Src
	}
	if len(p.toks) > 0 {
		last := p.toks[len(p.toks)-1].Src
		return last.Drop(last.Length())
	}
	return p.src.Drop(p.src.Length())
}

func (p *Parser) errUnexpected() error {
	return errs.New(errs.SyntaxError, p.errPos(), "Unexpected token.")
}

func (p *Parser) expect(word string) (token.Token, error) {
	tok, ok := p.peek()
	if !ok || !tok.Is(word) {
		return token.Token{}, errs.Newf(errs.SyntaxError, p.errPos(), "Unexpected token.",
			fmt.Sprintf("Expected to see %s", token.RenderReserved(word)))
	}
	return p.advance(), nil
}

func (p *Parser) expectIdentLike() (token.Token, error) {
	tok, ok := p.peek()
	if !ok || tok.Class != token.Identifier {
		return token.Token{}, errs.Newf(errs.SyntaxError, p.errPos(), "Unexpected token.",
			"Expected to see an identifier")
	}
	return p.advance(), nil
}

func isConstClass(c token.Class) bool {
	switch c {
	case token.IntConst, token.HexIntConst, token.WordConst, token.HexWordConst,
		token.RealConst, token.CharConst, token.StringConst:
		return true
	}
	return false
}

func canStartAtExp(tok token.Token) bool {
	if isConstClass(tok.Class) || tok.Class == token.Identifier {
		return true
	}
	return tok.Is("(") || tok.Is("[") || tok.Is("let") || tok.Is("op")
}

func canStartAtPattern(tok token.Token) bool {
	if isConstClass(tok.Class) || tok.Class == token.Identifier {
		return true
	}
	return tok.Is("_") || tok.Is("(") || tok.Is("[") || tok.Is("op")
}

// isInfixOperatorToken reports whether tok, at the current position, should
// be consumed as an infix operator rather than as the start of another
// application argument -- the "hard part" the package doc of spec §1
// flags: an appexp's argument-continuation loop must stop one token early
// whenever that token is dictionary-registered, so the infix layer above it
// gets a chance to consume it as an operator instead.
func (p *Parser) isInfixOperatorToken(tok token.Token, dict infix.Dict) bool {
	if tok.Class == token.Identifier {
		return dict.Contains(tok.Text())
	}
	if tok.IsStar() || tok.Is("=") {
		return dict.Contains(tok.Text())
	}
	return false
}

func canStartDecl(tok token.Token, ok bool) bool {
	if !ok {
		return false
	}
	switch {
	case tok.Is("val"), tok.Is("fun"), tok.Is("type"),
		tok.Is("infix"), tok.Is("infixr"), tok.Is("nonfix"):
		return true
	}
	return canStartAtExp(tok)
}
