package velo

import (
	"io"

	"golang.org/x/text/encoding"

	"github.com/zephyrtronium/velo/internal"
)

// A VM processes Velo programs.
type VM = internal.VM

// Object is the basic type of Velo. Every value that is not a method is an
// Object.
//
// Always use NewObject, ObjectWith, or NewString to obtain new objects.
// Creating objects directly leaves them without a unique ID.
type Object = internal.Object

// A Method is a callable attribute value with either a native or a script
// body.
type Method = internal.Method

// Value is an *Object or a *Method.
type Value = internal.Value

// Attrs maps attribute names to values.
type Attrs = internal.Attrs

// A NativeFn is a statically compiled method body which can be run in a
// Velo VM.
type NativeFn = internal.NativeFn

// A Node is an evaluable element of a parsed program.
type Node = internal.Node

// Script is a parsed program: a sequence of expressions evaluated in order.
type Script = internal.Script

// An Exception is a failure raised while parsing or evaluating Velo code.
type Exception = internal.Exception

// ErrorKind classifies exceptions. Each kind is itself an error for use with
// errors.Is.
type ErrorKind = internal.ErrorKind

// Frame is one entry of an exception's stack.
type Frame = internal.Frame

// A Sink receives the output of IO print, one line per call.
type Sink = internal.Sink

// SinkFunc adapts a function to a Sink.
type SinkFunc = internal.SinkFunc

// WriterSink writes output lines to an io.Writer in a fixed encoding.
type WriterSink = internal.WriterSink

// Kinds of exceptions.
const (
	SyntaxError          = internal.SyntaxError
	AttributeNotFound    = internal.AttributeNotFound
	ArgumentOutOfRange   = internal.ArgumentOutOfRange
	MethodNotImplemented = internal.MethodNotImplemented
	TypeMismatch         = internal.TypeMismatch
)

// Version is the interpreter version.
const Version = internal.Version

// NewVM prepares a new VM to interpret Velo code.
func NewVM() *VM {
	return internal.NewVM()
}

// Parse parses Velo source into a Script.
func Parse(src string) (*Script, error) {
	return internal.Parse(src)
}

// NewWriterSink creates a sink that writes to w in the given encoding, or in
// UTF-8 if enc is nil.
func NewWriterSink(w io.Writer, enc encoding.Encoding) *WriterSink {
	return internal.NewWriterSink(w, enc)
}

// LookupEncoding finds an output encoding by short name or IANA name.
func LookupEncoding(name string) (encoding.Encoding, error) {
	return internal.LookupEncoding(name)
}

// NewExceptionf creates an Exception of the given kind with a formatted
// message.
func NewExceptionf(kind ErrorKind, format string, args ...interface{}) *Exception {
	return internal.NewExceptionf(kind, format, args...)
}

// ArgAt returns the argument at zero-based position n, raising
// ArgumentOutOfRange if there is no such argument.
func ArgAt(args []Value, n int, name string) (Value, error) {
	return internal.ArgAt(args, n, name)
}

// ObjectArgAt is like ArgAt, but raises TypeMismatch if the argument is not
// an object.
func ObjectArgAt(args []Value, n int, name string) (*Object, error) {
	return internal.ObjectArgAt(args, n, name)
}
