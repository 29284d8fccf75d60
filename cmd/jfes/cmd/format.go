package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var (
	formatExpr    string
	formatCompact bool
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Reformat raw JSON bytes without building a DOM",
	Long: `Reformat a JSON byte stream compactly or with indentation, directly on
the bytes rather than through the library's own tokenizer/DOM/serializer
path (compare: jfes parse --pretty). Backed by tidwall/pretty.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVarP(&formatExpr, "eval", "e", "", "reformat inline JSON instead of reading a file")
	formatCmd.Flags().BoolVar(&formatCompact, "compact", false, "emit compact output instead of pretty")
}

func runFormat(cmd *cobra.Command, args []string) error {
	data, err := readInput(formatExpr, args)
	if err != nil {
		return err
	}

	var out []byte
	if formatCompact {
		out = pretty.Ugly(data)
	} else {
		out = pretty.PrettyOptions(data, &pretty.Options{
			Width:    80,
			Indent:   spaces(indentFlag),
			SortKeys: false,
		})
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

func spaces(n int) string {
	if n <= 0 {
		n = 4
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
