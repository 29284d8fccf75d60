package cmd

import (
	"fmt"

	"github.com/cwbudde/go-jfes/pkg/jfes"
	"github.com/spf13/cobra"
)

var getExpr string

var getCmd = &cobra.Command{
	Use:   "get <key> [file]",
	Short: "Parse JSON and look up a top-level object key via get-child",
	Long: `Parse a JSON document into the DOM and look up a single top-level key
using the library's own GetChild, as opposed to "jfes query"
which works on raw bytes without a DOM.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVarP(&getExpr, "eval", "e", "", "parse inline JSON instead of reading a file")
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	var fileArgs []string
	if len(args) > 1 {
		fileArgs = args[1:]
	}

	data, err := readInput(getExpr, fileArgs)
	if err != nil {
		return err
	}

	mode := jfes.ModeLenient
	if strictFlag {
		mode = jfes.ModeStrict
	}

	cfg := jfes.DefaultConfig()
	root, code := jfes.ParseToValue(cfg, mode, data)
	if jfes.IsBad(code) {
		return jfes.DescribeError(code, 0, data)
	}
	defer jfes.FreeValue(cfg, root)

	child := root.GetChild([]byte(key))
	if child == nil {
		return fmt.Errorf("key %q not found", key)
	}

	opts := jfes.SerializeOptions{Style: jfes.StyleCompact}
	buf := make([]byte, jfes.EstimateSize(child, opts)+64)
	n, code := jfes.ValueToString(child, buf, opts)
	if jfes.IsBad(code) {
		return fmt.Errorf("serialize failed: %s", code)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(buf[:n]))
	return nil
}
