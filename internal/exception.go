package internal

import (
	"fmt"
	"strings"
)

// ErrorKind classifies the failures of Velo programs. An ErrorKind is itself
// an error, so errors.Is(err, AttributeNotFound) reports whether err is an
// Exception of that kind.
type ErrorKind int

// Kinds of Velo exceptions.
const (
	// SyntaxError means the scanner or parser could not derive a token or
	// production.
	SyntaxError ErrorKind = iota + 1
	// AttributeNotFound means a lookup exhausted an object and all of its
	// ancestors.
	AttributeNotFound
	// ArgumentOutOfRange means an argument reference or a native method
	// asked for an argument beyond the active argument list.
	ArgumentOutOfRange
	// MethodNotImplemented means a stub method with no body was run.
	MethodNotImplemented
	// TypeMismatch means a native method received a method where it needed
	// an object.
	TypeMismatch
)

var kindNames = [...]string{"", "SyntaxError", "AttributeNotFound", "ArgumentOutOfRange", "MethodNotImplemented", "TypeMismatch"}

// String returns the name of the kind.
func (k ErrorKind) String() string {
	if k < SyntaxError || k > TypeMismatch {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// Error returns the name of the kind.
func (k ErrorKind) Error() string {
	return k.String()
}

// Frame is one entry of an exception's stack.
type Frame struct {
	// Method is the title of the method that was running.
	Method string
	// Receiver describes the receiver of the method.
	Receiver string
}

// String formats the frame as it appears in an exception report.
func (f Frame) String() string {
	return fmt.Sprintf("%s on %s", f.Method, f.Receiver)
}

// An Exception is a failure raised while parsing or evaluating Velo code.
type Exception struct {
	Kind    ErrorKind
	Message string

	// Line and Col locate the offending token of a syntax error. They are
	// zero for other kinds.
	Line, Col int

	// Stack lists the methods the exception unwound through, innermost
	// first.
	Stack []Frame
}

// NewException creates an Exception of the given kind.
func NewException(kind ErrorKind, msg string) *Exception {
	return &Exception{Kind: kind, Message: msg}
}

// NewExceptionf creates an Exception of the given kind with a formatted
// message.
func NewExceptionf(kind ErrorKind, format string, args ...interface{}) *Exception {
	return NewException(kind, fmt.Sprintf(format, args...))
}

// syntaxErrorf creates a SyntaxError located at tok.
func syntaxErrorf(tok token, format string, args ...interface{}) *Exception {
	e := NewExceptionf(SyntaxError, format, args...)
	e.Line, e.Col = tok.Line, tok.Col
	return e
}

// Error returns the kind and message of the exception.
func (e *Exception) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v at %d:%d: %s", e.Kind, e.Line, e.Col, e.Message)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

// Is allows errors.Is to match an exception against its kind.
func (e *Exception) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// Report formats the exception with its stack, one frame per line.
func (e *Exception) Report() string {
	var b strings.Builder
	b.WriteString(e.Error())
	for _, f := range e.Stack {
		b.WriteString("\n\t")
		b.WriteString(f.String())
	}
	return b.String()
}

// unwind records that err passed out of the method with the given title. Only
// Exceptions gain frames; other errors are returned unchanged.
func unwind(err error, title string, receiver *Object) error {
	if e, ok := err.(*Exception); ok {
		e.Stack = append(e.Stack, Frame{Method: title, Receiver: receiver.String()})
	}
	return err
}
