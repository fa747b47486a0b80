package charclass

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Set returns a Pattern that matches any of the given elements.
//
// Byte sets are stored as a 256-bit bitmap. Rune sets are stored as a
// *unicode.RangeTable, so only runes in [0, unicode.MaxRune] can be members.
func Set[T Element](given ...T) Pattern[T] {
	switch cs := any(given).(type) {
	case []byte:
		return any(denseSet(cs)).(Pattern[T])
	case []rune:
		rs := make([]rune, 0, len(cs))
		for _, r := range cs {
			if r >= 0 && r <= unicode.MaxRune {
				rs = append(rs, r)
			}
		}
		// rangetable.New sorts its argument in place, hence the copy.
		return any(Table(rangetable.New(rs...))).(Pattern[T])
	}
	panic("unreachable")
}

// Chars returns a Pattern that matches any element of s: its bytes if T is
// byte, or its runes if T is rune.
func Chars[T Element](s string) Pattern[T] {
	var zero T
	if _, ok := any(zero).(byte); ok {
		return Set(any([]byte(s)).([]T)...)
	}
	return Set(any([]rune(s)).([]T)...)
}

// Table returns a Pattern that matches any rune in t, such as unicode.Digit
// or unicode.Latin.
func Table(t *unicode.RangeTable) Pattern[rune] {
	return mTable{T: t}
}

type mTable struct {
	T *unicode.RangeTable
}

var _ Pattern[rune] = mTable{}

func (m mTable) Contains(r rune) bool {
	return unicode.Is(m.T, r)
}

func (m mTable) String() string {
	return tableString(m.T)
}

// Func returns a Pattern backed by an arbitrary predicate. The name is used
// as its String representation.
func Func[T Element](name string, f func(T) bool) Pattern[T] {
	return mFunc[T]{Name: name, F: f}
}

type mFunc[T Element] struct {
	Name string
	F    func(T) bool
}

func (m mFunc[T]) Contains(c T) bool { return m.F(c) }
func (m mFunc[T]) String() string    { return m.Name }
