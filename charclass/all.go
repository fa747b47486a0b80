package charclass

// All returns a Pattern that matches every element.
func All[T Element]() Pattern[T] { return mAll[T]{} }

type mAll[T Element] struct{}

var _ Pattern[byte] = mAll[byte]{}

func (m mAll[T]) Contains(c T) bool { return true }
func (m mAll[T]) String() string    { return "." }

// None returns a Pattern that never matches any element.
func None[T Element]() Pattern[T] { return mNone[T]{} }

type mNone[T Element] struct{}

var _ Pattern[byte] = mNone[byte]{}

func (m mNone[T]) Contains(c T) bool { return false }
func (m mNone[T]) String() string    { return "!." }
