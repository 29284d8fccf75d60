package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var queryExpr string

var queryCmd = &cobra.Command{
	Use:   "query <path> [file]",
	Short: "Extract a value from raw JSON bytes without building a DOM",
	Long: `Extract a value from a JSON document by a gjson path, without parsing
it into the library's value tree. This is a CLI-only convenience: the
library itself treats JSON Pointer/JSONPath as a non-goal — this
command sits outside the C1-C7 core, next to get-child rather than
replacing it.

Examples:
  jfes query children.0.name data.json
  jfes query b -e '{"a":1,"b":true}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVarP(&queryExpr, "eval", "e", "", "query inline JSON instead of reading a file")
}

func runQuery(cmd *cobra.Command, args []string) error {
	path := args[0]
	var fileArgs []string
	if len(args) > 1 {
		fileArgs = args[1:]
	}

	data, err := readInput(queryExpr, fileArgs)
	if err != nil {
		return err
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return fmt.Errorf("path %q not found", path)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}
