package ast

import "github.com/vippsas/smlparse/token"

// Type is the sum type of type-expression CST nodes (spec §3, §4.6).
type Type interface {
	Spanning
	isType()
}

// TypeVar is a type variable, e.g. 'a.
type TypeVar struct {
	Tok token.Token
}

func (TypeVar) isType()                    {}
func (t TypeVar) FirstToken() token.Token { return t.Tok }
func (t TypeVar) LastToken() token.Token  { return t.Tok }

// TypeCon is a type constructor applied to zero, one, or many arguments:
// `longtycon`, `ty longtycon`, or `( ty , ty , ... ) longtycon`.
type TypeCon struct {
	Args Seq[Type] // Empty for nullary, One for a single postfix argument, Many for "(t1,...)"
	Con  token.Token
}

func (TypeCon) isType() {}
func (t TypeCon) FirstToken() token.Token {
	switch t.Args.Kind {
	case SeqOne:
		return t.Args.One.FirstToken()
	case SeqMany:
		return t.Args.Left
	default:
		return t.Con
	}
}
func (t TypeCon) LastToken() token.Token { return t.Con }

// TypeArrow is `ty -> ty`, right-associative.
type TypeArrow struct {
	Domain Type
	Arrow  token.Token
	Range  Type
}

func (TypeArrow) isType()                    {}
func (t TypeArrow) FirstToken() token.Token { return t.Domain.FirstToken() }
func (t TypeArrow) LastToken() token.Token  { return t.Range.LastToken() }

// TypeTuple is `ty * ty * ...`, at least two elements; arrows are forbidden
// inside the tuple's element types (spec §4.6).
type TypeTuple struct {
	Elems []Type
	Stars []token.Token // the '*' separators, len(Stars) == len(Elems)-1
}

func (TypeTuple) isType()                    {}
func (t TypeTuple) FirstToken() token.Token { return t.Elems[0].FirstToken() }
func (t TypeTuple) LastToken() token.Token  { return t.Elems[len(t.Elems)-1].LastToken() }

// TypeParens is `( ty )`.
type TypeParens struct {
	Left  token.Token
	Inner Type
	Right token.Token
}

func (TypeParens) isType()                    {}
func (t TypeParens) FirstToken() token.Token { return t.Left }
func (t TypeParens) LastToken() token.Token  { return t.Right }
