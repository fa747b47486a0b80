package token

import (
	"fmt"

	"github.com/chronos-tachyon/go-tokenclass/charclass"
	"github.com/chronos-tachyon/go-tokenclass/input"
)

// Parser consumes a prefix of in and returns the remaining suffix along with
// its result. On error, rest is in and out is the zero value.
type Parser[S input.Seq, O any] func(in S) (rest S, out O, err error)

// Matchers builds Parsers that read elements of type T from inputs of type S
// under a fixed Mode. The zero value is not usable; see New.
type Matchers[S input.Seq, T charclass.Element] struct {
	decode input.Decoder[S, T]
	mode   Mode
	trace  Tracer
}

// New returns Matchers that read elements with decode under mode.
func New[S input.Seq, T charclass.Element](decode input.Decoder[S, T], mode Mode) Matchers[S, T] {
	return Matchers[S, T]{decode: decode, mode: mode}
}

var (
	// CompleteBytes matches bytes of a []byte holding all remaining input.
	CompleteBytes = New[[]byte, byte](input.Byte, Complete)

	// StreamingBytes matches bytes of a []byte that more input may follow.
	StreamingBytes = New[[]byte, byte](input.Byte, Streaming)

	// CompleteText matches runes of a string holding all remaining input.
	CompleteText = New[string, rune](input.Rune, Complete)

	// StreamingText matches runes of a string that more input may follow.
	StreamingText = New[string, rune](input.Rune, Streaming)
)

// Mode returns the end-of-input policy m was built with.
func (m Matchers[S, T]) Mode() Mode {
	return m.mode
}

// WithTracer returns a copy of m whose Parsers report each call to fn.
// A nil fn turns tracing off.
func (m Matchers[S, T]) WithTracer(fn Tracer) Matchers[S, T] {
	m.trace = fn
	return m
}

// IsA returns a Parser for the longest non-empty prefix whose elements are
// all in p.
func (m Matchers[S, T]) IsA(p charclass.Pattern[T]) Parser[S, S] {
	return m.span(KindIsA, p, true)
}

// IsNot returns a Parser for the longest non-empty prefix whose elements are
// all outside p.
func (m Matchers[S, T]) IsNot(p charclass.Pattern[T]) Parser[S, S] {
	return m.span(KindIsNot, p, false)
}

// OneOf returns a Parser for a single leading element in p.
func (m Matchers[S, T]) OneOf(p charclass.Pattern[T]) Parser[S, T] {
	return m.one(KindOneOf, p, true)
}

// NoneOf returns a Parser for a single leading element outside p.
func (m Matchers[S, T]) NoneOf(p charclass.Pattern[T]) Parser[S, T] {
	return m.one(KindNoneOf, p, false)
}

func (m Matchers[S, T]) span(kind ErrorKind, p charclass.Pattern[T], polarity bool) Parser[S, S] {
	p = charclass.Optimize(p)
	decode, mode := m.decode, m.mode
	tr := newTracer[S](m.trace, kind, p)
	return func(in S) (S, S, error) {
		var zero S
		tr.emit(StageTry, in, "")

		r := scan(in, decode, p, polarity, mode.atEOF())
		switch mode.judgeRun(r, len(in)) {
		case verdictMatch:
			out, rest := input.Split(in, r.Width)
			if tr.enabled() {
				tr.emit(StageGot, in, " = "+input.Preview(out, previewLen))
			}
			return rest, out, nil

		case verdictPending:
			err := &Incomplete{Needed: 1}
			if tr.enabled() {
				tr.emit(StageMore, in, ": "+err.Error())
			}
			return in, zero, err
		}

		err := &Error[S]{Input: in, Kind: kind}
		if tr.enabled() {
			tr.emit(StageFail, in, ": "+err.Error())
		}
		return in, zero, err
	}
}

func (m Matchers[S, T]) one(kind ErrorKind, p charclass.Pattern[T], polarity bool) Parser[S, T] {
	p = charclass.Optimize(p)
	decode, mode := m.decode, m.mode
	tr := newTracer[S](m.trace, kind, p)
	return func(in S) (S, T, error) {
		var zero T
		tr.emit(StageTry, in, "")

		c, w := decode(in, mode.atEOF())
		switch mode.judgeOne(w, w > 0 && p.Contains(c) == polarity) {
		case verdictMatch:
			if tr.enabled() {
				tr.emit(StageGot, in, fmt.Sprintf(" = %q", c))
			}
			return in[w:], c, nil

		case verdictPending:
			err := &Incomplete{Needed: 1}
			if tr.enabled() {
				tr.emit(StageMore, in, ": "+err.Error())
			}
			return in, zero, err
		}

		err := &Error[S]{Input: in, Kind: kind}
		if tr.enabled() {
			tr.emit(StageFail, in, ": "+err.Error())
		}
		return in, zero, err
	}
}
