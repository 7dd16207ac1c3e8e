// Package debug is a tiny env-gated tracer, adapted from the teacher's
// sqlparser/internal/utils.DPrint: off by default, and when enabled prints
// straight to stdout in red rather than going through the structured logger,
// since it exists for a developer staring at a terminal during a parse,
// not for anything a log aggregator would ever see.
package debug

import (
	"fmt"
	"os"
)

var _, enabled = os.LookupEnv("SMLPARSE_DEBUG")

// Printf prints a trace line if SMLPARSE_DEBUG is set in the environment.
func Printf(format string, a ...any) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stdout, "\033[0;31mDEBUG:\033[0m ")
	fmt.Fprintf(os.Stdout, format, a...)
	fmt.Fprintln(os.Stdout)
}
