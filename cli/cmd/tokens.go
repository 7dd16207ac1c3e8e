package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vippsas/smlparse/lexer"
	"github.com/vippsas/smlparse/source"
)

func init() {
	rootCmd.AddCommand(tokensCmd)
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Lex a source file and list its tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		buf, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		f := source.NewFile(path, buf)

		toks, err := lexer.Tokens(f.Whole())
		if err != nil {
			log.WithField("file", path).Error(err)
			return err
		}

		for _, t := range toks {
			fmt.Printf("%d:%d\t%v\t%q\n", t.Src.AbsoluteStart().Line, t.Src.AbsoluteStart().Col, t.Class, t.Text())
		}

		if !suppressSuccessLine {
			fmt.Printf("Scanned %d tokens\n", len(toks))
		}
		return nil
	},
}
