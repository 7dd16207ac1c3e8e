package ast

import (
	"github.com/vippsas/smlparse/errs"
	"github.com/vippsas/smlparse/infix"
	"github.com/vippsas/smlparse/token"
)

// MakeInfix is the infix reassembler of spec §4.5. The parser always builds
// a right-leaning tree first (on seeing `e1 op1 e2`, it recursively parses
// e2, which may itself become `a op2 b`); MakeInfix then inspects the
// freshly parsed right-hand side and rebalances it to honour the
// dictionary's precedence and associativity.
func MakeInfix(dict infix.Dict, left Expr, op token.Token, right Expr) (Expr, error) {
	rightInfix, ok := right.(ExprInfix)
	if !ok {
		return ExprInfix{Left: left, Op: op, Right: right}, nil
	}

	op1, op2 := op.Text(), rightInfix.Op.Text()
	switch {
	case dict.HigherPrecedence(op2, op1),
		dict.SamePrecedence(op1, op2) && dict.AssociatesRight(op1) && dict.AssociatesRight(op2):
		// right binds tighter (or same precedence, both right-associative):
		// keep the right-leaning shape as-is.
		return ExprInfix{Left: left, Op: op, Right: right}, nil

	case dict.HigherPrecedence(op1, op2),
		dict.SamePrecedence(op1, op2) && dict.AssociatesLeft(op1) && dict.AssociatesLeft(op2):
		// left binds tighter (or same precedence, both left-associative):
		// rotate, then recursively renormalise both the new inner and outer
		// node, since either combination might itself need further rotation.
		inner, err := MakeInfix(dict, left, op, rightInfix.Left)
		if err != nil {
			return nil, err
		}
		return MakeInfix(dict, inner, rightInfix.Op, rightInfix.Right)

	default:
		// same precedence, mixed or non-matching associativity: ambiguous.
		return nil, errs.New(errs.SyntaxError, rightInfix.Op.Src, "Ambiguous infix expression.")
	}
}

// maybeRotateLeft is named after the source routine FixExpPrecedence in
// spec §9's design notes. The parser calls it on every raise, handle,
// andalso and orelse node it builds (recorded in DESIGN.md).
//
// The after-expression loop builds andalso/orelse/handle nodes left-leaning:
// each new node takes everything parsed so far as its left operand. That
// shape is right except where an andalso follows an orelse: `a orelse b
// andalso c` arrives as (a orelse b) andalso c, although andalso binds
// tighter than orelse. maybeRotateLeft rotates that case into
// a orelse (b andalso c); every other node is returned unchanged.
func maybeRotateLeft(e Expr) Expr {
	and, ok := e.(ExprAndalso)
	if !ok {
		return e
	}
	or, ok := and.Left.(ExprOrelse)
	if !ok {
		return e
	}
	return ExprOrelse{Left: or.Left, Kw: or.Kw, Right: ExprAndalso{Left: or.Right, Kw: and.Kw, Right: and.Right}}
}

// MaybeRotateLeft exports the hook described above for the parser driver.
func MaybeRotateLeft(e Expr) Expr {
	return maybeRotateLeft(e)
}
