package charclass

import (
	"bytes"
	"sort"
	"unicode"
)

// RangeKind selects which bounds of a Range apply, and whether they are
// inclusive.
type RangeKind uint8

const (
	// KindClosed is the range [Lo, Hi].
	KindClosed RangeKind = iota

	// KindHalfOpen is the range [Lo, Hi).
	KindHalfOpen

	// KindFrom is the range [Lo, ∞). Hi is ignored.
	KindFrom

	// KindBelow is the range (−∞, Hi). Lo is ignored.
	KindBelow

	// KindUpTo is the range (−∞, Hi]. Lo is ignored.
	KindUpTo
)

var rangeKindNames = []string{
	KindClosed:   "KindClosed",
	KindHalfOpen: "KindHalfOpen",
	KindFrom:     "KindFrom",
	KindBelow:    "KindBelow",
	KindUpTo:     "KindUpTo",
}

func (k RangeKind) String() string {
	if int(k) < len(rangeKindNames) {
		return rangeKindNames[k]
	}
	return "RangeKind(?)"
}

// Range represents a range of consecutive elements.
//
// A Range whose bounds admit no element (Lo > Hi for KindClosed, Lo >= Hi for
// KindHalfOpen, Hi at the bottom of the domain for KindBelow) represents the
// null set.
type Range[T Element] struct {
	Kind RangeKind
	Lo   T
	Hi   T
}

var _ Pattern[byte] = Range[byte]{}

// InRange returns the Range [lo, hi].
func InRange[T Element](lo, hi T) Range[T] {
	return Range[T]{Kind: KindClosed, Lo: lo, Hi: hi}
}

// HalfOpen returns the Range [lo, hi).
func HalfOpen[T Element](lo, hi T) Range[T] {
	return Range[T]{Kind: KindHalfOpen, Lo: lo, Hi: hi}
}

// From returns the Range [lo, ∞).
func From[T Element](lo T) Range[T] {
	return Range[T]{Kind: KindFrom, Lo: lo}
}

// Below returns the Range (−∞, hi).
func Below[T Element](hi T) Range[T] {
	return Range[T]{Kind: KindBelow, Hi: hi}
}

// UpTo returns the Range (−∞, hi].
func UpTo[T Element](hi T) Range[T] {
	return Range[T]{Kind: KindUpTo, Hi: hi}
}

func (r Range[T]) Contains(c T) bool {
	switch r.Kind {
	case KindClosed:
		return r.Lo <= c && c <= r.Hi
	case KindHalfOpen:
		return r.Lo <= c && c < r.Hi
	case KindFrom:
		return r.Lo <= c
	case KindBelow:
		return c < r.Hi
	case KindUpTo:
		return c <= r.Hi
	}
	return false
}

func (r Range[T]) String() string {
	var buf bytes.Buffer
	switch r.Kind {
	case KindClosed, KindHalfOpen, KindFrom:
		buf.WriteByte('[')
		writeLiteral(&buf, r.Lo)
	default:
		buf.WriteByte('(')
	}
	buf.WriteString("..")
	switch r.Kind {
	case KindClosed, KindUpTo:
		writeLiteral(&buf, r.Hi)
		buf.WriteByte(']')
	case KindHalfOpen, KindBelow:
		writeLiteral(&buf, r.Hi)
		buf.WriteByte(')')
	default:
		buf.WriteByte(')')
	}
	return buf.String()
}

// span returns r as inclusive bounds, or false if r is empty.
func (r Range[T]) span() (span[T], bool) {
	floor, ceil := limits[T]()
	switch r.Kind {
	case KindClosed:
		if r.Lo <= r.Hi {
			return span[T]{r.Lo, r.Hi}, true
		}
	case KindHalfOpen:
		if r.Lo < r.Hi {
			return span[T]{r.Lo, r.Hi - 1}, true
		}
	case KindFrom:
		return span[T]{r.Lo, ceil}, true
	case KindBelow:
		if r.Hi > floor {
			return span[T]{floor, r.Hi - 1}, true
		}
	case KindUpTo:
		return span[T]{floor, r.Hi}, true
	}
	return span[T]{}, false
}

type span[T Element] struct {
	Lo T
	Hi T
}

// String renders s as a closed range. Rune bounds outside the scalar
// domain render as open ends.
func (s span[T]) String() string {
	var zero T
	if _, isByte := any(zero).(byte); isByte {
		return InRange(s.Lo, s.Hi).String()
	}
	lo, hi, top := rune(s.Lo), rune(s.Hi), rune(unicode.MaxRune)
	switch {
	case hi < 0:
		return Below[T](0).String()
	case lo > top:
		return From(T(top + 1)).String()
	case lo < 0 && hi > unicode.MaxRune:
		return All[T]().String()
	case lo < 0:
		return UpTo(s.Hi).String()
	case hi > unicode.MaxRune:
		return From(s.Lo).String()
	}
	return InRange(s.Lo, s.Hi).String()
}

// Ranges returns a Pattern that matches any element that falls in one of the
// given Range entries.
//
// This is usually the best choice if most of the elements in your set are
// consecutive, and the number of such ranges is small.
func Ranges[T Element](rs ...Range[T]) Pattern[T] {
	spans := make([]span[T], 0, len(rs))
	for _, r := range rs {
		if s, ok := r.span(); ok {
			spans = append(spans, s)
		}
	}
	return &mRanges[T]{Spans: coalesceSpans(spans)}
}

type mRanges[T Element] struct {
	Spans []span[T]
}

var _ Pattern[rune] = (*mRanges[rune])(nil)

func (m *mRanges[T]) Contains(c T) bool {
	i := sort.Search(len(m.Spans), func(i int) bool {
		return m.Spans[i].Hi >= c
	})
	if i >= len(m.Spans) {
		return false
	}
	s := m.Spans[i]
	return s.Lo <= c && c <= s.Hi
}

func (m *mRanges[T]) String() string {
	switch len(m.Spans) {
	case 0:
		return None[T]().String()
	case 1:
		return m.Spans[0].String()
	}
	var buf bytes.Buffer
	buf.WriteByte('(')
	for i, s := range m.Spans {
		if i > 0 {
			buf.WriteString(" | ")
		}
		buf.WriteString(s.String())
	}
	buf.WriteByte(')')
	return buf.String()
}

func coalesceSpans[T Element](b []span[T]) []span[T] {
	// Because (*mRanges).Contains makes some assumptions for efficiency, we
	// have to guarantee that:
	//
	// - All span entries have Lo <= Hi (the caller filters empty ranges)
	//
	// - There are no overlapping or adjacent span entries
	//
	// - The span entries are sorted by Lo
	//
	sort.Sort(spanSlice[T](b))
	if len(b) < 2 {
		return b
	}

	// Recall that entries have already been sorted by Lo ascending, so
	// there are three cases:
	//
	// 1. Fully covered by the previous entry (discard)
	//
	// 2. Overlapping or adjacent (merge)
	//
	// 3. Disjoint (keep as-is)
	//
	c := make([]span[T], 0, len(b))
	for _, s := range b {
		n := len(c)
		switch {
		case n > 0 && c[n-1].Hi >= s.Hi:
			// Case 1
		case n > 0 && (c[n-1].Hi >= s.Lo || c[n-1].Hi+1 == s.Lo):
			// Case 2; c[n-1].Hi < s.Hi, so the +1 cannot wrap.
			c[n-1].Hi = s.Hi
		default:
			// Case 3
			c = append(c, s)
		}
	}
	return c
}
