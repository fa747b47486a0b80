package token

import (
	"github.com/chronos-tachyon/go-tokenclass/charclass"
	"github.com/chronos-tachyon/go-tokenclass/input"
)

// run is the outcome of scanning the leading elements of a buffer.
type run struct {
	// Count is the number of elements that passed the test.
	Count int

	// Width is the number of storage units those elements occupy.
	Width int

	// Exhausted is true iff the scan stopped because no whole element was
	// left, rather than at an element that failed the test.
	Exhausted bool
}

// scan walks the leading elements of s while p.Contains(c) == polarity.
func scan[S input.Seq, T charclass.Element](s S, decode input.Decoder[S, T], p charclass.Pattern[T], polarity, atEOF bool) run {
	var r run
	for {
		c, w := decode(s[r.Width:], atEOF)
		if w == 0 {
			r.Exhausted = true
			return r
		}
		if p.Contains(c) != polarity {
			return r
		}
		r.Count++
		r.Width += w
	}
}
