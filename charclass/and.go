package charclass

// And returns a Pattern that matches iff all of the given Patterns match.
func And[T Element](ps ...Pattern[T]) Pattern[T] {
	switch len(ps) {
	case 0:
		return All[T]()
	case 1:
		return ps[0]
	}
	l := make([]Pattern[T], len(ps))
	copy(l, ps)
	return &mIntersection[T]{List: l}
}

type mIntersection[T Element] struct {
	List []Pattern[T]
}

var _ Pattern[rune] = (*mIntersection[rune])(nil)

func (m *mIntersection[T]) Contains(c T) bool {
	for _, sub := range m.List {
		if !sub.Contains(c) {
			return false
		}
	}
	return true
}

func (m *mIntersection[T]) String() string {
	return joinString(m.List, " & ")
}
