package internal

import (
	"bytes"
	"testing"
)

// TestWriterSinkEncodings tests that the writer sink encodes lines in the
// requested encoding.
func TestWriterSinkEncodings(t *testing.T) {
	cases := map[string]struct {
		enc  string
		line string
		want []byte
	}{
		"default": {"", "hé", []byte("hé\n")},
		"utf8":    {"utf8", "hé", []byte("hé\n")},
		"latin1":  {"latin1", "hé", []byte{'h', 0xe9, '\n'}},
		"cp1252":  {"cp1252", "€", []byte{0x80, '\n'}},
		"utf16":   {"utf16", "hé", []byte{'h', 0, 0xe9, 0, '\n', 0}},
		"utf16be": {"utf16be", "h", []byte{0, 'h', 0, '\n'}},
		"ucs2":    {"UCS2", "h", []byte{'h', 0, '\n', 0}},
		"utf32":   {"utf32", "h", []byte{'h', 0, 0, 0, '\n', 0, 0, 0}},
		"utf32be": {"utf32be", "h", []byte{0, 0, 0, 'h', 0, 0, 0, '\n'}},
		"iana":    {"ISO-8859-15", "€", []byte{0xa4, '\n'}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			enc, err := LookupEncoding(c.enc)
			if err != nil {
				t.Fatal(err)
			}
			var b bytes.Buffer
			s := NewWriterSink(&b, enc)
			if err := s.Print(c.line); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(b.Bytes(), c.want) {
				t.Errorf("wrong output: have %x, want %x", b.Bytes(), c.want)
			}
		})
	}
}

// TestLookupEncodingUnknown tests that unknown encodings are errors.
func TestLookupEncodingUnknown(t *testing.T) {
	for _, name := range []string{"klingon", "utf-9"} {
		if enc, err := LookupEncoding(name); err == nil {
			t.Errorf("%s gave encoding %v", name, enc)
		}
	}
}

// TestNilWriterSinkEncoding tests that a sink with no encoding writes UTF-8.
func TestNilWriterSinkEncoding(t *testing.T) {
	var b bytes.Buffer
	s := NewWriterSink(&b, nil)
	if err := s.Print("☃"); err != nil {
		t.Fatal(err)
	}
	if b.String() != "☃\n" {
		t.Errorf("wrong output %q", b.String())
	}
}
