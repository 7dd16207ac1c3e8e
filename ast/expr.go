package ast

import "github.com/vippsas/smlparse/token"

// Expr is the sum type of expression CST nodes (spec §3, §4.6).
type Expr interface {
	Spanning
	isExpr()
}

// ExprConst is a literal constant (integer, word, real, char or string).
type ExprConst struct {
	Tok token.Token
}

func (ExprConst) isExpr()                   {}
func (e ExprConst) FirstToken() token.Token { return e.Tok }
func (e ExprConst) LastToken() token.Token  { return e.Tok }

// ExprIdent is a value identifier in expression position: `[op] longvid`.
type ExprIdent struct {
	Op   *token.Token // present iff the identifier was prefixed with `op`
	Name token.Token
}

func (ExprIdent) isExpr() {}
func (e ExprIdent) FirstToken() token.Token {
	if e.Op != nil {
		return *e.Op
	}
	return e.Name
}
func (e ExprIdent) LastToken() token.Token { return e.Name }

// ExprUnit is `()`.
type ExprUnit struct {
	Left, Right token.Token
}

func (ExprUnit) isExpr()                   {}
func (e ExprUnit) FirstToken() token.Token { return e.Left }
func (e ExprUnit) LastToken() token.Token  { return e.Right }

// ExprParens is `( exp )`.
type ExprParens struct {
	Left  token.Token
	Inner Expr
	Right token.Token
}

func (ExprParens) isExpr()                   {}
func (e ExprParens) FirstToken() token.Token { return e.Left }
func (e ExprParens) LastToken() token.Token  { return e.Right }

// ExprTuple is `( exp , exp , ... )`, at least two elements.
type ExprTuple struct {
	Left   token.Token
	Elems  []Expr
	Delims []token.Token // len(Delims) == len(Elems)-1
	Right  token.Token
}

func (ExprTuple) isExpr()                   {}
func (e ExprTuple) FirstToken() token.Token { return e.Left }
func (e ExprTuple) LastToken() token.Token  { return e.Right }

// ExprSequence is `( exp ; exp ; ... )`, at least two elements.
type ExprSequence struct {
	Left   token.Token
	Elems  []Expr
	Delims []token.Token // ';' tokens
	Right  token.Token
}

func (ExprSequence) isExpr()                   {}
func (e ExprSequence) FirstToken() token.Token { return e.Left }
func (e ExprSequence) LastToken() token.Token  { return e.Right }

// ExprList is `[ exp , exp , ... ]`, zero or more elements.
type ExprList struct {
	Left   token.Token
	Elems  []Expr
	Delims []token.Token
	Right  token.Token
}

func (ExprList) isExpr()                   {}
func (e ExprList) FirstToken() token.Token { return e.Left }
func (e ExprList) LastToken() token.Token  { return e.Right }

// ExprLetInEnd is `let dec in exp ; exp ; ... end`.
type ExprLetInEnd struct {
	Let    token.Token
	Decl   Decl
	In     token.Token
	Body   []Expr
	Delims []token.Token // ';' between Body elements, len == len(Body)-1
	End    token.Token
}

func (ExprLetInEnd) isExpr()                   {}
func (e ExprLetInEnd) FirstToken() token.Token { return e.Let }
func (e ExprLetInEnd) LastToken() token.Token  { return e.End }

// ExprApp is function application: `appexp atexp`.
type ExprApp struct {
	Fun Expr
	Arg Expr
}

func (ExprApp) isExpr()                   {}
func (e ExprApp) FirstToken() token.Token { return e.Fun.FirstToken() }
func (e ExprApp) LastToken() token.Token  { return e.Arg.LastToken() }

// ExprInfix is `infexp vid infexp`, rebalanced by MakeInfix per spec §4.5.
type ExprInfix struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (ExprInfix) isExpr()                   {}
func (e ExprInfix) FirstToken() token.Token { return e.Left.FirstToken() }
func (e ExprInfix) LastToken() token.Token  { return e.Right.LastToken() }

// ExprTyped is `exp : ty`.
type ExprTyped struct {
	Expr  Expr
	Colon token.Token
	Ty    Type
}

func (ExprTyped) isExpr()                   {}
func (e ExprTyped) FirstToken() token.Token { return e.Expr.FirstToken() }
func (e ExprTyped) LastToken() token.Token  { return e.Ty.LastToken() }

// ExprAndalso is `exp andalso exp`.
type ExprAndalso struct {
	Left  Expr
	Kw    token.Token
	Right Expr
}

func (ExprAndalso) isExpr()                   {}
func (e ExprAndalso) FirstToken() token.Token { return e.Left.FirstToken() }
func (e ExprAndalso) LastToken() token.Token  { return e.Right.LastToken() }

// ExprOrelse is `exp orelse exp`.
type ExprOrelse struct {
	Left  Expr
	Kw    token.Token
	Right Expr
}

func (ExprOrelse) isExpr()                   {}
func (e ExprOrelse) FirstToken() token.Token { return e.Left.FirstToken() }
func (e ExprOrelse) LastToken() token.Token  { return e.Right.LastToken() }

// ExprHandle is `exp handle match`.
type ExprHandle struct {
	Expr  Expr
	Kw    token.Token
	Match Match
}

func (ExprHandle) isExpr()                   {}
func (e ExprHandle) FirstToken() token.Token { return e.Expr.FirstToken() }
func (e ExprHandle) LastToken() token.Token  { return e.Match.LastToken() }

// ExprRaise is `raise exp`.
type ExprRaise struct {
	Kw   token.Token
	Expr Expr
}

func (ExprRaise) isExpr()                   {}
func (e ExprRaise) FirstToken() token.Token { return e.Kw }
func (e ExprRaise) LastToken() token.Token  { return e.Expr.LastToken() }

// ExprCase is `case exp of match`.
type ExprCase struct {
	Kw        token.Token
	Scrutinee Expr
	Of        token.Token
	Match     Match
}

func (ExprCase) isExpr()                   {}
func (e ExprCase) FirstToken() token.Token { return e.Kw }
func (e ExprCase) LastToken() token.Token  { return e.Match.LastToken() }

// ExprFn is `fn match`.
type ExprFn struct {
	Kw    token.Token
	Match Match
}

func (ExprFn) isExpr()                   {}
func (e ExprFn) FirstToken() token.Token { return e.Kw }
func (e ExprFn) LastToken() token.Token  { return e.Match.LastToken() }

// Match is one or more `pat => exp` clauses separated by `|` (spec GLOSSARY).
type Match struct {
	Clauses []MatchClause
	Bars    []token.Token // len(Bars) == len(Clauses)-1
}

func (m Match) FirstToken() token.Token { return m.Clauses[0].FirstToken() }
func (m Match) LastToken() token.Token  { return m.Clauses[len(m.Clauses)-1].LastToken() }

// MatchClause is one `pat => exp` arm of a Match.
type MatchClause struct {
	Pat   Pattern
	Arrow token.Token
	Body  Expr
}

func (c MatchClause) FirstToken() token.Token { return c.Pat.FirstToken() }
func (c MatchClause) LastToken() token.Token  { return c.Body.LastToken() }
