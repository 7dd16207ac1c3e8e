// Package errs defines the single error taxonomy surfaced by the lexers and
// parser: a LineError carrying a header, a source position, a short message
// and an optional longer explanation. Modelled on the teacher's
// sqlparser.Error / sqlcode.SQLCodeParseErrors, which likewise carry a
// Pos and a Message and format themselves as "file:line:col: message".
package errs

import (
	"fmt"

	"github.com/vippsas/smlparse/source"
)

// Header classifies why a LineError was raised.
type Header string

const (
	SyntaxError       Header = "SYNTAX ERROR"
	ParseError        Header = "PARSE ERROR"
	NotYetImplemented Header = "ERROR: NOT YET IMPLEMENTED"
)

// LineError is raised at the point of detection and propagates immediately;
// no partial tree is ever returned alongside one. See spec §7.
type LineError struct {
	Header  Header
	Pos     source.Source
	What    string
	Explain string
}

func (e LineError) Error() string {
	lc := e.Pos.AbsoluteStart()
	msg := fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.FileName(), lc.Line, lc.Col, e.Header, e.What)
	if e.Explain != "" {
		msg += " (" + e.Explain + ")"
	}
	return msg
}

// New builds a LineError at pos with header and what, no explanation.
func New(header Header, pos source.Source, what string) LineError {
	return LineError{Header: header, Pos: pos, What: what}
}

// Newf builds a LineError with an explanation.
func Newf(header Header, pos source.Source, what, explain string) LineError {
	return LineError{Header: header, Pos: pos, What: what, Explain: explain}
}

// Bug indicates the implementation itself found itself in an inconsistent
// state (a cursor invariant was broken, a table lookup that "can never
// fail" failed, etc). Bugs are never recoverable parse errors -- they are
// reported separately so callers do not confuse a deficiency in user input
// with a deficiency in this package. See spec §7.
type Bug struct {
	What string
}

func (b Bug) Error() string {
	return "BUG: " + b.What
}

// Panic raises a Bug; used at call sites that have already established the
// condition is an internal invariant violation, not user input.
func Panic(format string, args ...any) {
	panic(Bug{What: fmt.Sprintf(format, args...)})
}
