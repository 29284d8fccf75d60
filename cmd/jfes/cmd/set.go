package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

var setExpr string

var setCmd = &cobra.Command{
	Use:   "set <path> <value> [file]",
	Short: "Patch raw JSON bytes in place without a full parse/edit/serialize cycle",
	Long: `Patch a JSON document by a gjson-style path, directly on the bytes,
without routing through ParseToValue / SetObjectProperty / ValueToString.
Presented as the byte-patch counterpart to the in-memory DOM editor (C5):
useful when the caller wants one small change and doesn't need a tree.

Examples:
  jfes set name Ada data.json
  jfes set b.0 1 -e '{"b":[]}'`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().StringVarP(&setExpr, "eval", "e", "", "patch inline JSON instead of reading a file")
}

func runSet(cmd *cobra.Command, args []string) error {
	path, newValue := args[0], args[1]
	var fileArgs []string
	if len(args) > 2 {
		fileArgs = args[2:]
	}

	data, err := readInput(setExpr, fileArgs)
	if err != nil {
		return err
	}

	out, err := sjson.SetBytes(data, path, newValue)
	if err != nil {
		return fmt.Errorf("set failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
