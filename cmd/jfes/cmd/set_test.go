package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunSet(t *testing.T) {
	orig := setExpr
	defer func() { setExpr = orig }()
	setExpr = `{"name":"Ada","active":false}`

	var out bytes.Buffer
	setCmd.SetOut(&out)

	if err := runSet(setCmd, []string{"active", "true"}); err != nil {
		t.Fatalf("runSet failed: %v", err)
	}

	got := strings.TrimSpace(out.String())
	if !strings.Contains(got, `"active":"true"`) {
		t.Fatalf("got %q, want it to contain the patched field", got)
	}
	if !strings.Contains(got, `"name":"Ada"`) {
		t.Fatalf("got %q, want the untouched field preserved", got)
	}
}

func TestRunSetNewPath(t *testing.T) {
	orig := setExpr
	defer func() { setExpr = orig }()
	setExpr = `{"b":[]}`

	var out bytes.Buffer
	setCmd.SetOut(&out)

	if err := runSet(setCmd, []string{"b.0", "1"}); err != nil {
		t.Fatalf("runSet failed: %v", err)
	}

	got := strings.TrimSpace(out.String())
	if !strings.Contains(got, `"b":["1"]`) {
		t.Fatalf("got %q, want a new element appended to b", got)
	}
}
