// Package input provides the sequence abstraction consumed by the matchers
// in package token: a borrowed byte slice or string, plus a Decoder that
// reads elements from its front.
package input

import (
	"strconv"
	"unicode/utf8"

	"github.com/chronos-tachyon/go-tokenclass/charclass"
)

// Seq is a sliceable run of storage units. Matchers never copy or modify a
// Seq; every result is a sub-slice of the caller's input.
type Seq interface {
	~[]byte | ~string
}

// Decoder returns the first element of s and its width in storage units.
//
// A width of 0 means s does not begin with a whole element: either s is
// empty, or atEOF is false and s holds only the start of a multi-byte
// encoding. When atEOF is true, an incomplete or invalid encoding decodes as
// utf8.RuneError with width 1, the same as unicode/utf8.
type Decoder[S Seq, T charclass.Element] func(s S, atEOF bool) (c T, width int)

var (
	_ Decoder[[]byte, byte] = Byte
	_ Decoder[string, byte] = ByteString
	_ Decoder[string, rune] = Rune
	_ Decoder[[]byte, rune] = RuneBytes
)

// Byte decodes one byte from a byte slice.
func Byte(s []byte, atEOF bool) (byte, int) {
	if len(s) == 0 {
		return 0, 0
	}
	return s[0], 1
}

// ByteString decodes one byte from a string.
func ByteString(s string, atEOF bool) (byte, int) {
	if len(s) == 0 {
		return 0, 0
	}
	return s[0], 1
}

// Rune decodes one UTF-8 encoded rune from a string.
func Rune(s string, atEOF bool) (rune, int) {
	switch {
	case len(s) == 0:
		return 0, 0
	case s[0] < utf8.RuneSelf:
		return rune(s[0]), 1
	case !atEOF && !utf8.FullRuneInString(s):
		return 0, 0
	}
	return utf8.DecodeRuneInString(s)
}

// RuneBytes decodes one UTF-8 encoded rune from a byte slice.
func RuneBytes(s []byte, atEOF bool) (rune, int) {
	switch {
	case len(s) == 0:
		return 0, 0
	case s[0] < utf8.RuneSelf:
		return rune(s[0]), 1
	case !atEOF && !utf8.FullRune(s):
		return 0, 0
	}
	return utf8.DecodeRune(s)
}

// Split divides s into the first n storage units and the rest. Both halves
// share storage with s.
func Split[S Seq](s S, n int) (head, tail S) {
	return s[:n], s[n:]
}

// Preview returns a short, quoted rendering of the start of s for traces and
// error messages: at most n storage units, followed by "…" if s is longer.
func Preview[S Seq](s S, n int) string {
	if len(s) <= n {
		return strconv.Quote(string(s))
	}
	return strconv.Quote(string(s[:n])) + "…"
}
