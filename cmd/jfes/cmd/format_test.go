package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestRunFormatCompact(t *testing.T) {
	origExpr, origCompact := formatExpr, formatCompact
	defer func() { formatExpr, formatCompact = origExpr, origCompact }()

	formatExpr = "{\n  \"a\": 1\n}"
	formatCompact = true

	var out bytes.Buffer
	formatCmd.SetOut(&out)

	if err := runFormat(formatCmd, nil); err != nil {
		t.Fatalf("runFormat failed: %v", err)
	}

	got := strings.TrimSpace(out.String())
	if got != `{"a":1}` {
		t.Fatalf("got %q, want %q", got, `{"a":1}`)
	}
}

func TestRunFormatPretty(t *testing.T) {
	origExpr, origCompact, origIndent := formatExpr, formatCompact, indentFlag
	defer func() { formatExpr, formatCompact, indentFlag = origExpr, origCompact, origIndent }()

	formatExpr = `{"a":1}`
	formatCompact = false
	indentFlag = 2

	var out bytes.Buffer
	formatCmd.SetOut(&out)

	if err := runFormat(formatCmd, nil); err != nil {
		t.Fatalf("runFormat failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "\n  \"a\": 1\n") {
		t.Fatalf("output = %q, want a 2-space-indented body", got)
	}
}

func TestRunFormatPrettyNestedSnapshot(t *testing.T) {
	origExpr, origCompact, origIndent := formatExpr, formatCompact, indentFlag
	defer func() { formatExpr, formatCompact, indentFlag = origExpr, origCompact, origIndent }()

	formatExpr = `{"name":"Ada","roles":["admin","editor"],"address":{"number":42,"suite":null}}`
	formatCompact = false
	indentFlag = 2

	var out bytes.Buffer
	formatCmd.SetOut(&out)

	if err := runFormat(formatCmd, nil); err != nil {
		t.Fatalf("runFormat failed: %v", err)
	}

	snaps.MatchSnapshot(t, out.String())
}

func TestSpaces(t *testing.T) {
	if got := spaces(3); got != "   " {
		t.Errorf("spaces(3) = %q, want 3 spaces", got)
	}
	if got := spaces(0); got != "    " {
		t.Errorf("spaces(0) = %q, want the 4-space default", got)
	}
}
