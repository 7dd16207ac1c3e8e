// Package ast is the CST (concrete syntax tree) model (spec §3, §4.7): a
// tagged-variant sum type per grammatical category, where every node
// records the tokens that produced it so the original token stream -- and
// hence the original source text -- is recoverable by an in-order walk.
//
// Each non-terminal is a sum type implemented Go-style as an interface with
// unexported marker methods, one concrete struct per variant, following the
// teacher's tagged-record approach (sqlparser.Create/Declare/Error are all
// plain structs threaded through by value; here we additionally need a
// closed sum, so each category gets its own marker interface).
package ast

import (
	"io"

	"github.com/vippsas/smlparse/source"
	"github.com/vippsas/smlparse/token"
)

// Spanning is satisfied by every CST node: it can report the first and last
// token that produced it.
type Spanning interface {
	FirstToken() token.Token
	LastToken() token.Token
}

// Span returns the source slice running from the start of n's first token
// through the end of n's last token -- inclusive of any interior tokens,
// whitespace and comments, since it is simply the substring of the original
// file spanning those two token positions.
func Span(n Spanning) source.Source {
	first, last := n.FirstToken(), n.LastToken()
	return first.Src.Slice(0, last.Src.AbsoluteEndOffset()-first.Src.AbsoluteStartOffset())
}

// Render writes n's original source text, byte for byte, to w. Because
// every node retains its originating tokens (spec §4.7), this is always
// exact: it is not a pretty-printer, just the recorded span's literal text.
func Render(n Spanning, w io.Writer) error {
	_, err := io.WriteString(w, Span(n).String())
	return err
}
