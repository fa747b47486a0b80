package charclass

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"unicode"
)

type spanSlice[T Element] []span[T]

func (x spanSlice[T]) Len() int           { return len(x) }
func (x spanSlice[T]) Less(i, j int) bool { return x[i].Lo < x[j].Lo }
func (x spanSlice[T]) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

var _ sort.Interface = (spanSlice[byte])(nil)

var wellKnownControls = map[rune]byte{
	0x07: 'a',
	0x08: 'b',
	0x09: 't',
	0x0a: 'n',
	0x0b: 'v',
	0x0c: 'f',
	0x0d: 'r',
}

// limits returns the smallest and largest values of T.
func limits[T Element]() (floor, ceil T) {
	var zero T
	if _, ok := any(zero).(byte); ok {
		return zero, ^zero
	}
	lo, hi := int64(math.MinInt32), int64(math.MaxInt32)
	return T(lo), T(hi)
}

func forEachByte(p Pattern[byte], f func(b byte)) {
	for i := uint(0); i < 256; i++ {
		if p.Contains(byte(i)) {
			f(byte(i))
		}
	}
}

// genericString renders the members of a byte pattern, collapsing runs of
// three or more consecutive bytes into ranges.
func genericString(p Pattern[byte]) string {
	var runs []span[byte]
	forEachByte(p, func(b byte) {
		if n := len(runs); n > 0 && runs[n-1].Hi+1 == b {
			runs[n-1].Hi = b
			return
		}
		runs = append(runs, span[byte]{b, b})
	})
	var buf bytes.Buffer
	writeRuns(&buf, runs)
	return buf.String()
}

func tableString(t *unicode.RangeTable) string {
	var runs []span[rune]
	push := func(lo, hi rune) {
		if n := len(runs); n > 0 && runs[n-1].Hi+1 == lo {
			runs[n-1].Hi = hi
			return
		}
		runs = append(runs, span[rune]{lo, hi})
	}
	add := func(lo, hi, stride rune) {
		if stride == 1 {
			push(lo, hi)
			return
		}
		for r := lo; r <= hi; r += stride {
			push(r, r)
		}
	}
	for _, r16 := range t.R16 {
		add(rune(r16.Lo), rune(r16.Hi), rune(r16.Stride))
	}
	for _, r32 := range t.R32 {
		add(rune(r32.Lo), rune(r32.Hi), rune(r32.Stride))
	}
	if len(runs) == 0 {
		return None[rune]().String()
	}
	var buf bytes.Buffer
	writeRuns(&buf, runs)
	return buf.String()
}

func writeRuns[T Element](buf *bytes.Buffer, runs []span[T]) {
	buf.WriteByte('{')
	first := true
	sep := func() {
		if !first {
			buf.WriteByte(' ')
		}
		first = false
	}
	for _, s := range runs {
		switch {
		case s.Lo == s.Hi:
			sep()
			writeLiteral(buf, s.Lo)
		case s.Lo+1 == s.Hi:
			sep()
			writeLiteral(buf, s.Lo)
			sep()
			writeLiteral(buf, s.Hi)
		default:
			sep()
			buf.WriteString(s.String())
		}
	}
	buf.WriteByte('}')
}

func writeLiteral[T Element](buf *bytes.Buffer, c T) {
	if b, ok := any(c).(byte); ok {
		writeByteLiteral(buf, b)
		return
	}
	writeRuneLiteral(buf, rune(c))
}

func writeByteLiteral(buf *bytes.Buffer, b byte) {
	if ctrl, found := wellKnownControls[rune(b)]; found {
		buf.WriteByte('\'')
		buf.WriteByte('\\')
		buf.WriteByte(ctrl)
		buf.WriteByte('\'')
	} else if b == '\\' || b == '\'' {
		buf.WriteByte('\'')
		buf.WriteByte('\\')
		buf.WriteByte(b)
		buf.WriteByte('\'')
	} else if b >= 0x20 && b < 0x7f {
		buf.WriteByte('\'')
		buf.WriteByte(b)
		buf.WriteByte('\'')
	} else {
		fmt.Fprintf(buf, "$%02x", b)
	}
}

func writeRuneLiteral(buf *bytes.Buffer, r rune) {
	if ctrl, found := wellKnownControls[r]; found {
		buf.WriteByte('\'')
		buf.WriteByte('\\')
		buf.WriteByte(ctrl)
		buf.WriteByte('\'')
	} else if r == '\\' || r == '\'' {
		buf.WriteByte('\'')
		buf.WriteByte('\\')
		buf.WriteRune(r)
		buf.WriteByte('\'')
	} else if unicode.IsPrint(r) {
		buf.WriteByte('\'')
		buf.WriteRune(r)
		buf.WriteByte('\'')
	} else {
		fmt.Fprintf(buf, "$%04x", r)
	}
}
