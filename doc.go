/*
Package velo implements Velo, a small prototype-based scripting language.

Velo is dynamic and classless. Every value is an object, and objects have no
classes, only an ordered list of parent objects to which they delegate the
attributes they lack. Behavior is expressed entirely through attribute lookup:
looking up a name that holds a method runs the method, and looking up anything
else simply produces it.

The interpreter can easily be embedded in another program. To start, use the
NewVM function to create and initialize the interpreter. The VM has fields for
the three root objects, Object, String, and IO, which can be given new
attributes with SetAttr to make Go functions available to Velo code. Output of
IO print goes to the VM's Sink, which writes UTF-8 to standard output unless
it is replaced.

Velo Primer

Hello World in Velo:

	IO.print {Hello, world!}

Braces delimit string literals. Braces inside a literal nest, and there are
no escapes, so a literal can hold any text with balanced braces, including
newlines. Evaluating a literal creates a new object whose parent is String
and whose payload is the text between the outermost braces.

The snippet above parses to a lookup of print on the result of IO, called with
one argument. A bare name such as IO is looked up on self, the receiver of
the running code. Top-level code runs against an object called the main
script, which delegates to Object, and Object holds the roots IO and String
as attributes. The print method writes the payload of its argument followed
by a newline.

Assignment sets an attribute on an object's own attribute table:

	greeting = {Hello, world!}
	IO.print greeting

Assignment never writes to a parent. A name followed by = sets the attribute
on self, and a dotted name such as a.b = c sets b on the result of a.

Arguments are separated by commas. Empty argument positions are skipped.
Parentheses group an expression so that it can be used as an argument, or so
that a lookup can be made on its result:

	IO.print ({Hello, }.concat {world!})

Methods are made from strings. The method attribute of a string parses its
payload and produces a method which evaluates that code when it runs:

	greet = {IO.print {Hello, }.concat #1}.method
	greet {there.}

Inside a method, #1 refers to the first argument of the call that is running
now, #2 to the second, and so on. Likewise self is always the object on
which the running method was looked up. Nothing is captured from the place
where the method's text was written.

New objects come from new, which creates an object delegating to Object, and
from extend, which makes its receiver delegate to another object ahead of
all its existing parents:

	extend IO
	print {Hello, world!}

The create method of a string runs the string's code against its argument
and returns the argument, which gives a way to build objects:

	Point = {
		x = {0}
		y = {0}
	}.create new

The only control flow is if. Its first argument is a condition, and a string
with empty text is false while everything else is true. The equals method of
strings produces {true} or {}. if runs the create method of whichever branch
it selects, passing the receiver of if:

	if ({a}.equals {b}), {IO.print {same}}, {IO.print {different}}

Recursion through methods gives loops. A branch of if runs with the receiver
of if as its only argument, so #1 inside a branch is not the argument of the
enclosing method; save it in an attribute first:

	count = {
		n = #1
		if (n.equals {XXX}), {IO.print {Done!}}, {
			IO.print n
			count n.concat {X}
		}
	}.method
	count {X}

Failures abort the running script and are reported as an *Exception whose
Kind is one of SyntaxError, AttributeNotFound, ArgumentOutOfRange,
MethodNotImplemented, or TypeMismatch. Each ErrorKind is itself an error, so
errors.Is(err, velo.AttributeNotFound) tests for a kind.
*/
package velo
