// Command jfes is a demonstration CLI around the jfes library. It is not
// part of the library's core contract: CLI drivers are external
// collaborators that exercise the tokenizer and DOM from the outside.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-jfes/cmd/jfes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
