package charclass

// Not returns a Pattern that inverts the given Pattern.
func Not[T Element](p Pattern[T]) Pattern[T] {
	switch sub := p.(type) {
	case mAll[T]:
		return None[T]()
	case mNone[T]:
		return All[T]()
	case mNegation[T]:
		return sub.Inner
	}
	return mNegation[T]{Inner: p}
}

type mNegation[T Element] struct {
	Inner Pattern[T]
}

func (m mNegation[T]) Contains(c T) bool {
	return !m.Inner.Contains(c)
}

func (m mNegation[T]) String() string {
	return "!" + m.Inner.String()
}
