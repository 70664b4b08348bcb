package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/zephyrtronium/velo"
	"github.com/zephyrtronium/velo/config"
)

// repl reads logical lines from in and evaluates each against vm, writing
// prompts, results, and errors to out. A line whose parentheses or braces are
// still open continues onto the next.
func repl(vm *velo.VM, cfg *config.Config, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, vm.Banner(cfg.Banner.TimeFormat))
	stdin := bufio.NewScanner(in)
	var src strings.Builder
	for {
		if src.Len() == 0 {
			fmt.Fprint(out, cfg.Prompt.PS1)
		} else {
			fmt.Fprint(out, cfg.Prompt.PS2)
		}
		if !stdin.Scan() {
			break
		}
		src.WriteString(stdin.Text())
		src.WriteByte('\n')
		if open(src.String()) {
			continue
		}
		x, err := vm.DoString(src.String())
		src.Reset()
		if err != nil {
			if e, ok := err.(*velo.Exception); ok {
				fmt.Fprintln(out, "Exception:")
				fmt.Fprintln(out, e.Report())
			} else {
				fmt.Fprintln(out, "Error:", err)
			}
			continue
		}
		if x != nil {
			fmt.Fprintln(out, x)
		}
	}
	fmt.Fprintln(out)
	if err := stdin.Err(); err != nil {
		fmt.Fprintln(out, err)
	}
}

// open reports whether src has an unclosed string literal or parenthesis.
// Parentheses inside string literals do not count.
func open(src string) bool {
	braces, parens := 0, 0
	for _, r := range src {
		switch r {
		case '{':
			braces++
		case '}':
			if braces > 0 {
				braces--
			}
		case '(':
			if braces == 0 {
				parens++
			}
		case ')':
			if braces == 0 && parens > 0 {
				parens--
			}
		}
	}
	return braces > 0 || parens > 0
}
