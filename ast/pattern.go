package ast

import "github.com/vippsas/smlparse/token"

// Pattern is the sum type of pattern CST nodes (spec §3, §4.6).
type Pattern interface {
	Spanning
	isPattern()
}

// PatWild is `_`.
type PatWild struct {
	Tok token.Token
}

func (PatWild) isPattern()                   {}
func (p PatWild) FirstToken() token.Token { return p.Tok }
func (p PatWild) LastToken() token.Token  { return p.Tok }

// PatConst is a literal constant pattern.
type PatConst struct {
	Tok token.Token
}

func (PatConst) isPattern()                   {}
func (p PatConst) FirstToken() token.Token { return p.Tok }
func (p PatConst) LastToken() token.Token  { return p.Tok }

// PatIdent is `[op] longvid`.
type PatIdent struct {
	Op   *token.Token
	Name token.Token
}

func (PatIdent) isPattern() {}
func (p PatIdent) FirstToken() token.Token {
	if p.Op != nil {
		return *p.Op
	}
	return p.Name
}
func (p PatIdent) LastToken() token.Token { return p.Name }

// PatUnit is `()`.
type PatUnit struct {
	Left, Right token.Token
}

func (PatUnit) isPattern()                   {}
func (p PatUnit) FirstToken() token.Token { return p.Left }
func (p PatUnit) LastToken() token.Token  { return p.Right }

// PatParens is `( pat )`.
type PatParens struct {
	Left  token.Token
	Inner Pattern
	Right token.Token
}

func (PatParens) isPattern()                   {}
func (p PatParens) FirstToken() token.Token { return p.Left }
func (p PatParens) LastToken() token.Token  { return p.Right }

// PatTuple is `( pat , pat , ... )`, at least two elements.
type PatTuple struct {
	Left   token.Token
	Elems  []Pattern
	Delims []token.Token
	Right  token.Token
}

func (PatTuple) isPattern()                   {}
func (p PatTuple) FirstToken() token.Token { return p.Left }
func (p PatTuple) LastToken() token.Token  { return p.Right }

// PatList is `[ pat , ... ]`.
type PatList struct {
	Left   token.Token
	Elems  []Pattern
	Delims []token.Token
	Right  token.Token
}

func (PatList) isPattern()                   {}
func (p PatList) FirstToken() token.Token { return p.Left }
func (p PatList) LastToken() token.Token  { return p.Right }
