package jsonerr

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-jfes/internal/status"
)

func TestErrorIncludesStatusCode(t *testing.T) {
	err := New(status.InvalidInput, 0, []byte(`{"a":}`))
	if !strings.Contains(err.Error(), status.InvalidInput.String()) {
		t.Fatalf("Error() = %q, want it to mention %q", err.Error(), status.InvalidInput)
	}
}

func TestPositionFirstLine(t *testing.T) {
	err := New(status.InvalidInput, 5, []byte(`{"a":}`))
	line, col := err.position()
	if line != 1 || col != 6 {
		t.Fatalf("position() = (%d, %d), want (1, 6)", line, col)
	}
}

func TestPositionAcrossNewlines(t *testing.T) {
	source := "{\n  \"a\":\n}"
	offset := strings.Index(source, "}")
	err := New(status.PartialInput, offset, []byte(source))

	line, col := err.position()
	if line != 3 {
		t.Fatalf("position() line = %d, want 3", line)
	}
	if col != 1 {
		t.Fatalf("position() col = %d, want 1", col)
	}
}

func TestFormatIncludesCaretLine(t *testing.T) {
	err := New(status.InvalidInput, 1, []byte(`{x}`))
	formatted := err.Format()

	lines := strings.Split(formatted, "\n")
	if len(lines) < 3 {
		t.Fatalf("Format() produced %d lines, want at least 3 (header, source, caret): %q", len(lines), formatted)
	}
	if !strings.Contains(lines[1], "{x}") {
		t.Fatalf("Format() source line = %q, want it to contain the source", lines[1])
	}
	if !strings.Contains(lines[2], "^") {
		t.Fatalf("Format() caret line = %q, want it to contain a caret", lines[2])
	}
}

func TestOffsetPastSourceEndClampsPosition(t *testing.T) {
	err := New(status.PartialInput, 1000, []byte(`{"a":1}`))
	line, col := err.position()
	if line != 1 {
		t.Fatalf("position() line = %d, want 1 (clamped to source length)", line)
	}
	if col != len(`{"a":1}`)+1 {
		t.Fatalf("position() col = %d, want %d", col, len(`{"a":1}`)+1)
	}
}
