package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := Root()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	defer root.SetArgs(nil)
	err := root.Execute()
	return out.String(), err
}

func TestNormalizeLiteralValues(t *testing.T) {
	out, err := runRoot(t, "catalog:normalize", "--field", "cooling_capacity", "0.9/2.5/3.2 kW", "2,5 kW", "няма")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("output lines = %d:\n%s", len(lines), out)
	}
	for i, want := range []string{"triple  0.9/2.5/3.2", "triple  2.5/2.5/2.5", "raw     няма"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
}

func TestNormalizeBTUValue(t *testing.T) {
	out, err := runRoot(t, "catalog:normalize", "--field", "btu", "12 000 BTU")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "number  12000") {
		t.Errorf("output = %q", out)
	}
}

func TestNormalizeUnknownField(t *testing.T) {
	_, err := runRoot(t, "catalog:normalize", "--field", "colour", "red")
	if err == nil || !strings.Contains(err.Error(), "unknown field") {
		t.Fatalf("err = %v, want unknown field", err)
	}
}
