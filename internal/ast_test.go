package internal_test

import (
	"testing"

	"github.com/zephyrtronium/velo"
	"github.com/zephyrtronium/velo/internal"
	"github.com/zephyrtronium/velo/testutils"
)

// TestEval tests evaluation rules by executing Velo scripts.
func TestEval(t *testing.T) {
	cases := map[string]map[string]testutils.SourceTestCase{
		"Script": {
			"empty":     {Source: ``, Pass: func(r velo.Value, out string, err error) bool { return r == nil && err == nil }},
			"last":      {Source: "{a}\n{b}\n{c}", Pass: testutils.PassPayload("c")},
			"order":     {Source: "IO.print {1}\nIO.print {2}\nIO.print {3}", Pass: testutils.PassOutput("1\n2\n3\n")},
			"abortLate": {Source: "IO.print {1}\nnope\nIO.print {2}", Pass: func(r velo.Value, out string, err error) bool { return err != nil && out == "1\n" }},
		},
		"Assignment": {
			"value":    {Source: `a = {hi}`, Pass: testutils.PassPayload("hi")},
			"readBack": {Source: "a = {hi}\na", Pass: testutils.PassPayload("hi")},
			"dotted":   {Source: "o = new\no.x = {y}\no.x", Pass: testutils.PassPayload("y")},
			"chained":  {Source: "a = b = {v}\nb", Pass: testutils.PassPayload("v")},
			"shadow":   {Source: "p = new\np.x = {parent}\no = new p\no.x = {own}\np.x", Pass: testutils.PassPayload("parent")},
			"ownFirst": {Source: "p = new\np.x = {parent}\no = new p\no.x = {own}\no.x", Pass: testutils.PassPayload("own")},
			"noTarget": {Source: `nope.x = {y}`, Pass: testutils.PassFailure(velo.AttributeNotFound)},
			"order": {
				Source: "o = new\no.x = IO.print {value}\nIO.print o.x",
				Pass:   testutils.PassOutput("value\nvalue\n"),
			},
		},
		"Lookup": {
			"missing":  {Source: `nope`, Pass: testutils.PassFailure(velo.AttributeNotFound)},
			"onString": {Source: `{a}.nope`, Pass: testutils.PassFailure(velo.AttributeNotFound)},
			"inherit":  {Source: "p = new\np.x = {v}\no = new p\no.x", Pass: testutils.PassPayload("v")},
			"roots":    {Source: `String.concat`, Pass: testutils.PassFailure(velo.ArgumentOutOfRange)},
		},
		"MethodCall": {
			"nonMethod":  {Source: "a = {v}\na {ignored}", Pass: testutils.PassPayload("v")},
			"argsFirst":  {Source: "IO.print (IO.print {arg})", Pass: testutils.PassOutput("arg\narg\n")},
			"receiver":   {Source: "o = new\no.m = {self}.method\no.m", Pass: func(r velo.Value, out string, err error) bool { return err == nil && r != nil && r.String() == "VeloObject('object')" }},
			"methodProp": {Source: "m = {#1}.method\nm {x}", Pass: testutils.PassPayload("x")},
			"second":     {Source: "f = {#2}.method\nf {a}, {b}", Pass: testutils.PassPayload("b")},
		},
		"Argument": {
			"outOfRange": {Source: `#1`, Pass: testutils.PassFailure(velo.ArgumentOutOfRange)},
			"zero":       {Source: "m = {#0}.method\nm {x}", Pass: testutils.PassFailure(velo.ArgumentOutOfRange)},
			"tooFew":     {Source: "m = {#2}.method\nm {x}", Pass: testutils.PassFailure(velo.ArgumentOutOfRange)},
			"rebinds": {
				Source: "inner = {IO.print #1}.method\nouter = {inner #1.concat {!}\nIO.print #1}.method\nouter {a}",
				Pass:   testutils.PassOutput("a!\na\n"),
			},
			"recursion": {
				Source: "r = {\n  n = #1\n  if (n.equals {aaa}), {}, {\n    IO.print n\n    r n.concat {a}\n  }\n}.method\nr {a}",
				Pass:   testutils.PassOutput("a\naa\n"),
			},
			"sharedState": {
				Source: "r = {\n  n = #1\n  if (n.equals {aaa}), {}, {\n    r n.concat {a}\n    IO.print n\n  }\n}.method\nr {a}",
				Pass:   testutils.PassOutput("aaa\naaa\n"),
			},
		},
		"StringLiteral": {
			"fresh": {Source: "a = {x}\nb = {x}\na.y = {1}\nb.y", Pass: testutils.PassFailure(velo.AttributeNotFound)},
		},
		"MethodReceiver": {
			"assignTarget": {
				Source: "o = new\nget = {o}.method\nget.x = {v}\no.x",
				Pass:   testutils.PassPayload("v"),
			},
			"lookupTarget": {
				Source: "o = new\no.x = {v}\nget = {o}.method\nget.x",
				Pass:   testutils.PassPayload("v"),
			},
			"lookupOnArg": {
				Source: "o = new\no.x = {v}\nf = {#1.x}.method\nf {o}.method",
				Pass:   testutils.PassPayload("v"),
			},
			"assignOnArg": {
				Source: "o = new\nf = {#1.x = {v}}.method\nf {o}.method\no.x",
				Pass:   testutils.PassPayload("v"),
			},
			"notAnObject": {
				Source: "f = {#1.x}.method\nf {{}.method}.method",
				Pass:   testutils.PassFailure(velo.TypeMismatch),
			},
		},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			for name, c := range s {
				t.Run(name, c.TestFunc(name))
			}
		})
	}
}

// TestScriptEvalArgs tests that a script evaluated directly sees the receiver
// and arguments it is given.
func TestScriptEvalArgs(t *testing.T) {
	vm, _ := testutils.NewVM()
	s, err := internal.Parse("self\n#2")
	if err != nil {
		t.Fatal(err)
	}
	recv := vm.NewObject("receiver")
	arg := vm.NewString("two")
	r, err := s.Eval(vm, recv, []internal.Value{vm.NewString("one"), arg})
	if err != nil {
		t.Fatal(err)
	}
	if r != arg {
		t.Errorf("wrong result: have %v, want %v", r, arg)
	}
	self, err := s.Exprs[0].Eval(vm, recv, nil)
	if err != nil {
		t.Fatal(err)
	}
	if self != recv {
		t.Errorf("self gave %v, want %v", self, recv)
	}
}
