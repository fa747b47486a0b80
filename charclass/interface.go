// Package charclass implements membership tests ("character classes") over
// bytes and runes.
//
// A Pattern describes a set of accepted elements: a single element, a range
// with any combination of bounds, an explicit set, a Unicode table, or a
// combination of other patterns.
package charclass

// Element is the domain a Pattern operates on: raw bytes or Unicode scalar
// values.
type Element interface {
	byte | rune
}

// Pattern is a predicate that returns true for certain elements.
//
// Implementations of Pattern must *not* change their state on a call to
// Contains, and Contains must be defined for every value of T.
type Pattern[T Element] interface {
	// Contains returns true iff c is in the set.
	Contains(c T) bool

	// String returns a string representation of the set.
	String() string
}

// Optimize returns a Pattern that matches the same set of elements, but
// possibly in a more efficient way. Composite byte patterns are flattened
// into a dense bitmap. If no better implementation can be found, returns p.
func Optimize[T Element](p Pattern[T]) Pattern[T] {
	bp, ok := any(p).(Pattern[byte])
	if !ok {
		return p
	}
	switch bp.(type) {
	case *mDense, mExact[byte], Range[byte], mAll[byte], mNone[byte]:
		return p
	}
	return any(asDense(bp)).(Pattern[T])
}

// Bytes appends each byte matched by p to out, in ascending order, then
// returns the updated slice.
func Bytes(p Pattern[byte], out []byte) []byte {
	forEachByte(p, func(b byte) { out = append(out, b) })
	return out
}

func asDense(p Pattern[byte]) *mDense {
	if md, ok := p.(*mDense); ok {
		return md
	}
	mm := &mDense{}
	forEachByte(p, mm.set)
	return mm
}
