package cmd

import (
	"fmt"

	"github.com/cwbudde/go-jfes/pkg/jfes"
	"github.com/spf13/cobra"
)

var (
	parseExpr   string
	parsePretty bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse JSON into the DOM and re-serialize it",
	Long: `Parse a JSON document into the value tree and print it back out,
either compact or pretty. This round-trips through the full tokenizer and
DOM builder rather than just reformatting bytes (compare: jfes format).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline JSON instead of reading a file")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "pretty-print the result")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	data, err := readInput(parseExpr, args)
	if err != nil {
		return err
	}

	mode := jfes.ModeLenient
	if strictFlag {
		mode = jfes.ModeStrict
	}

	cfg := jfes.DefaultConfig()
	v, code := jfes.ParseToValue(cfg, mode, data)
	if jfes.IsBad(code) {
		return jfes.DescribeError(code, 0, data)
	}
	defer jfes.FreeValue(cfg, v)

	style := jfes.StyleCompact
	if parsePretty {
		style = jfes.StylePretty
	}
	opts := jfes.SerializeOptions{Style: style, IndentWidth: indentFlag}

	buf := make([]byte, jfes.EstimateSize(v, opts)+64)
	n, code := jfes.ValueToString(v, buf, opts)
	if jfes.IsBad(code) {
		return fmt.Errorf("serialize failed: %s", code)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(buf[:n]))
	return nil
}
