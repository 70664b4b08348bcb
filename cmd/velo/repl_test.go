package main

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/velo/config"
	"github.com/zephyrtronium/velo/testutils"
)

// TestOpen tests detection of unfinished input.
func TestOpen(t *testing.T) {
	cases := map[string]struct {
		src  string
		want bool
	}{
		"Empty":         {"", false},
		"Plain":         {"IO.print {x}\n", false},
		"OpenBrace":     {"m = {\n", true},
		"NestedBrace":   {"m = {a {b}\n", true},
		"Closed":        {"m = {\n  IO.print {x}\n}.method\n", false},
		"OpenParen":     {"IO.print (x\n", true},
		"ParenInString": {"IO.print {(}\n", false},
		"StrayClose":    {"}\n", false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := open(c.src); got != c.want {
				t.Errorf("open(%q) = %v, want %v", c.src, got, c.want)
			}
		})
	}
}

// TestREPL tests a REPL session.
func TestREPL(t *testing.T) {
	vm, printed := testutils.NewVM()
	cfg := config.Default()
	cfg.Prompt = config.Prompt{PS1: "> ", PS2: ". "}
	in := strings.NewReader("m = {\n  IO.print #1\n}.method\nm {hi}\nnope\n")
	var out strings.Builder
	repl(vm, cfg, in, &out)
	if printed.String() != "hi\n" {
		t.Errorf("wrong program output %q", printed.String())
	}
	s := out.String()
	if !strings.Contains(s, "> . . ") {
		t.Errorf("no continuation prompts in %q", s)
	}
	if !strings.Contains(s, "Exception:\nAttributeNotFound") {
		t.Errorf("no exception report in %q", s)
	}
	if !strings.Contains(s, `VeloObject("hi")`) {
		t.Errorf("no result in %q", s)
	}
}
