package charclass

import (
	"strings"
)

// Or returns a Pattern that matches iff any of the given Patterns match.
func Or[T Element](ps ...Pattern[T]) Pattern[T] {
	switch len(ps) {
	case 0:
		return None[T]()
	case 1:
		return ps[0]
	}
	l := make([]Pattern[T], len(ps))
	copy(l, ps)
	return &mUnion[T]{List: l}
}

type mUnion[T Element] struct {
	List []Pattern[T]
}

var _ Pattern[byte] = (*mUnion[byte])(nil)

func (m *mUnion[T]) Contains(c T) bool {
	for _, sub := range m.List {
		if sub.Contains(c) {
			return true
		}
	}
	return false
}

func (m *mUnion[T]) String() string {
	return joinString(m.List, " | ")
}

func joinString[T Element](ps []Pattern[T], sep string) string {
	var buf strings.Builder
	buf.WriteByte('(')
	for i, p := range ps {
		if i > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(p.String())
	}
	buf.WriteByte(')')
	return buf.String()
}
