// Package jsonerr formats parse failures with source context: a
// line/column header and a caret pointing at the offending byte. It sits
// above the allocation-free scanner core, which only ever returns a
// status.Code; jsonerr is used by the pkg/jfes facade and the CLI to turn
// that code into something a human can read.
package jsonerr

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-jfes/internal/status"
)

// ParseError is a human-facing wrapper around a status.Code, carrying the
// byte offset the caller attributes the failure to and the source it was
// scanning.
type ParseError struct {
	Code   status.Code
	Offset int
	Source []byte
}

// New builds a ParseError. A Success code should never be wrapped; callers
// only construct one when status.IsBad(code).
func New(code status.Code, offset int, source []byte) *ParseError {
	return &ParseError{Code: code, Offset: offset, Source: source}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Format()
}

// Format renders the error with a line:column header, the source line, and
// a caret pointing at the offending byte.
func (e *ParseError) Format() string {
	line, col := e.position()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at line %d:%d\n", e.Code, line, col)

	sourceLine := e.sourceLine(line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
		sb.WriteString("^")
	}

	return sb.String()
}

// position converts the byte offset into 1-indexed line/column.
func (e *ParseError) position() (line, col int) {
	line, col = 1, 1
	limit := e.Offset
	if limit > len(e.Source) {
		limit = len(e.Source)
	}
	for i := 0; i < limit; i++ {
		if e.Source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func (e *ParseError) sourceLine(lineNum int) string {
	lines := strings.Split(string(e.Source), "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
