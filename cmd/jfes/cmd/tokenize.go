package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-jfes/pkg/jfes"
	"github.com/spf13/cobra"
)

var (
	tokenizeExpr     string
	tokenizePoolSize int
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize a JSON document and print the resulting tokens",
	Long: `Tokenize a JSON document and print the flat token array the scanner
produces: type, byte span, and child count for each token.

Examples:
  jfes tokenize data.json
  jfes tokenize -e '{"a":1,"b":true}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().StringVarP(&tokenizeExpr, "eval", "e", "", "tokenize inline JSON instead of reading a file")
	tokenizeCmd.Flags().IntVar(&tokenizePoolSize, "pool-size", 1024, "token pool capacity")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	data, err := readInput(tokenizeExpr, args)
	if err != nil {
		return err
	}

	mode := jfes.ModeLenient
	if strictFlag {
		mode = jfes.ModeStrict
	}

	p := jfes.NewParser(mode)
	tokens := make([]jfes.Token, tokenizePoolSize)
	count, code := p.ParseTokens(data, tokens)
	if jfes.IsBad(code) {
		return fmt.Errorf("tokenize failed: %s", code)
	}

	for i := 0; i < count; i++ {
		t := tokens[i]
		fmt.Fprintf(cmd.OutOrStdout(), "[%-9s] start=%-4d end=%-4d size=%-3d %q\n",
			t.Type, t.Start, t.End, t.Size, spanOf(data, t))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "total tokens: %d\n", count)
	return nil
}

func spanOf(data []byte, t jfes.Token) string {
	if t.Start < 0 || t.End < t.Start || t.End > len(data) {
		return ""
	}
	return string(data[t.Start:t.End])
}

func readInput(expr string, args []string) ([]byte, error) {
	if expr != "" {
		return []byte(expr), nil
	}
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return nil, fmt.Errorf("either provide a file path or use -e/--eval for inline JSON")
}
