package charclass

import (
	"bytes"
)

// Exactly returns a Pattern that matches one specific element.
//
// This is the best choice if you want to match exactly one byte or rune.
func Exactly[T Element](c T) Pattern[T] {
	return mExact[T]{C: c}
}

type mExact[T Element] struct{ C T }

var _ Pattern[rune] = mExact[rune]{}

func (m mExact[T]) Contains(c T) bool {
	return c == m.C
}

func (m mExact[T]) String() string {
	var buf bytes.Buffer
	writeLiteral(&buf, m.C)
	return buf.String()
}
