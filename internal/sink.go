package internal

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// A Sink receives the output of IO print, one line per call. The line does
// not include its terminating newline.
type Sink interface {
	Print(line string) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(line string) error

// Print calls f(line).
func (f SinkFunc) Print(line string) error {
	return f(line)
}

// WriterSink writes lines to an io.Writer in a fixed encoding. Characters
// the encoding cannot represent are replaced with its replacement character.
type WriterSink struct {
	w   io.Writer
	enc *encoding.Encoder
}

// NewWriterSink creates a sink writing to w. If enc is nil, the output is
// UTF-8.
func NewWriterSink(w io.Writer, enc encoding.Encoding) *WriterSink {
	if enc == nil {
		enc = unicode.UTF8
	}
	return &WriterSink{w: w, enc: encoding.ReplaceUnsupported(enc.NewEncoder())}
}

// Print encodes line and a newline and writes them.
func (s *WriterSink) Print(line string) error {
	b, err := s.enc.String(line + "\n")
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.w, b)
	return err
}

// encodings are the short names accepted by LookupEncoding in addition to
// IANA charset names.
var encodings = map[string]encoding.Encoding{
	"utf8":    unicode.UTF8,
	"latin1":  charmap.ISO8859_1,
	"cp1252":  charmap.Windows1252,
	"ucs2":    unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf16":   unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"ucs4":    utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	"utf32":   utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	"utf32be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
}

// LookupEncoding finds an output encoding by name. Names are either one of
// the short names utf8, latin1, cp1252, ucs2, utf16, utf16be, ucs4, utf32,
// and utf32be, or an IANA charset name such as ISO-8859-15 or Shift_JIS.
// An empty name selects UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	if enc, ok := encodings[strings.ToLower(name)]; ok {
		return enc, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown output encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("output encoding %q is not supported", name)
	}
	return enc, nil
}
