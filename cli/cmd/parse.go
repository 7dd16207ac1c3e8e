package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/repr"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/smlparse/lexer"
	"github.com/vippsas/smlparse/parser"
	"github.com/vippsas/smlparse/source"
	"github.com/vippsas/smlparse/token"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and report the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		buf, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		f := source.NewFile(path, buf)

		decl, stats, err := parser.Parse(f.Whole())
		if err != nil {
			log.WithField("file", path).Error(err)
			return err
		}

		if debugDump {
			runID, uerr := uuid.NewV4()
			if uerr != nil {
				return uerr
			}
			log.WithFields(logrus.Fields{"file": path, "run_id": runID.String()}).Info("dumping parsed CST")
			fmt.Println(repr.String(decl, repr.Indent("  ")))

			toks, terr := lexer.Tokens(f.Whole())
			if terr != nil {
				return terr
			}
			hist := reservedWordHistogram(toks)
			fmt.Println("reserved-word histogram:")
			for _, word := range sortedKeys(hist) {
				fmt.Printf("  %s\t%d\n", word, hist[word])
			}
		}

		if !suppressSuccessLine {
			fmt.Printf("Successfully parsed %d out of %d tokens\n", stats.ConsumedTokens, stats.TotalTokens)
		}
		return nil
	},
}

// reservedWordHistogram counts how many times each reserved-word token's
// text occurs in toks, for the --debug-dump diagnostic.
func reservedWordHistogram(toks []token.Token) map[string]int {
	hist := make(map[string]int)
	for _, t := range toks {
		if t.Class == token.Reserved {
			hist[t.Text()]++
		}
	}
	return hist
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
