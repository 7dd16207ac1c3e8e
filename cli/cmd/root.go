// Package cmd wires the cobra command tree for the smlparse CLI, mirroring
// the teacher's one-subcommand-per-verb layout (cli/cmd/build.go, find.go):
// parse, tokens, and mlb each parse a file and report on it, leaving the
// core packages free of any CLI concern (spec's Non-goals exclude a CLI
// inside the parser itself).
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "smlparse",
		Short:        "smlparse",
		SilenceUsage: true,
		Long:         `A lexer and recursive-descent parser for a Standard-ML-family source language, plus its build-description (.mlb) lexer.`,
	}

	debugDump           bool
	suppressSuccessLine bool
	log                 = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&debugDump, "debug-dump", false, "repr-dump the parsed structure and tag the run with a correlation id")
	rootCmd.PersistentFlags().BoolVar(&suppressSuccessLine, "suppress-success-line", false, "suppress the 'Successfully parsed N out of M tokens' line")
	return rootCmd.Execute()
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
