package jfes

import "github.com/cwbudde/go-jfes/internal/jsonerr"

// DescribeError turns a failing status code into a human-readable error
// with source context, for callers (like the CLI) that want more than a
// bare status code. The scanner and DOM core never produce this
// themselves — there is no hidden error channel on the core — it is purely a
// presentation layer on top of them.
func DescribeError(code Status, offset int, source []byte) error {
	if IsGood(code) {
		return nil
	}
	return jsonerr.New(code, offset, source)
}
