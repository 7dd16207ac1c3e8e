package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vippsas/smlparse/manifest"
	"github.com/vippsas/smlparse/mlblexer"
	"github.com/vippsas/smlparse/source"
)

var manifestPath string

func init() {
	mlbCmd.Flags().StringVar(&manifestPath, "manifest", "", "YAML manifest mapping source-root aliases to paths, used to resolve $(ALIAS)/... paths")
	rootCmd.AddCommand(mlbCmd)
}

var mlbCmd = &cobra.Command{
	Use:   "mlb [file]",
	Short: "Lex a build-description (.mlb) file and list its paths and keywords",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		buf, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		f := source.NewFile(path, buf)

		var man manifest.Manifest
		if manifestPath != "" {
			mbuf, err := os.ReadFile(manifestPath)
			if err != nil {
				return err
			}
			man, err = manifest.Decode(mbuf)
			if err != nil {
				return err
			}
		}

		toks, recoveredErrs := scanBestEffort(f.Whole())
		for _, t := range toks {
			if t.Class == mlblexer.Path || t.Class == mlblexer.Reserved {
				text := t.Text()
				if t.Class == mlblexer.Path {
					text = man.Resolve(text)
				}
				fmt.Printf("%d:%d\t%v\t%q\n", t.Src.AbsoluteStart().Line, t.Src.AbsoluteStart().Col, t.Class, text)
			}
		}
		for _, rerr := range recoveredErrs {
			log.WithField("file", path).Warn(rerr)
		}

		if !suppressSuccessLine {
			fmt.Printf("Scanned %d tokens\n", len(toks))
		}
		return nil
	},
}

// scanBestEffort lists every token the build-description lexer can recover
// even past a lexical error, strictly a listing aid distinct from the core
// parser's first-violation-aborts contract (§7): on an error it resyncs one
// byte at a time via Lexer.Recover and keeps scanning, the way the teacher's
// Batch.Parse keeps calling NextToken to resynchronize past a bad statement
// (sqlparser/batch.go), rather than aborting at the first error. Every error
// hit along the way is collected and returned for the caller to report.
func scanBestEffort(src source.Source) ([]mlblexer.Token, []error) {
	l := mlblexer.New(src)
	var out []mlblexer.Token
	var errs []error
	for {
		tok, ok, err := l.Next()
		if err != nil {
			errs = append(errs, err)
			if !l.Recover() {
				return out, errs
			}
			continue
		}
		if !ok {
			return out, errs
		}
		out = append(out, tok)
	}
}
