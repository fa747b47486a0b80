package token

import (
	"errors"
	"fmt"

	"github.com/chronos-tachyon/go-tokenclass/input"
)

var (
	// ErrNoMatch is matched by every *Error, whatever its input type.
	ErrNoMatch = errors.New("no match")

	// ErrIncomplete is matched by every *Incomplete.
	ErrIncomplete = errors.New("incomplete input")
)

// ErrorKind identifies which matcher failed.
type ErrorKind uint8

const (
	// KindIsA marks a failed IsA: the input does not start with a member.
	KindIsA ErrorKind = iota + 1

	// KindIsNot marks a failed IsNot: the input does not start with a
	// non-member.
	KindIsNot

	// KindOneOf marks a failed OneOf.
	KindOneOf

	// KindNoneOf marks a failed NoneOf.
	KindNoneOf
)

var errorKindNames = []string{
	KindIsA:    "IsA",
	KindIsNot:  "IsNot",
	KindOneOf:  "OneOf",
	KindNoneOf: "NoneOf",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error reports that a matcher found nothing to consume. Input is the input
// the matcher was called with, not the position of the offending element.
type Error[S input.Seq] struct {
	Input S
	Kind  ErrorKind
}

func (e *Error[S]) Error() string {
	return fmt.Sprintf("github.com/chronos-tachyon/go-tokenclass/token: %v: no match @ %s", e.Kind, input.Preview(e.Input, previewLen))
}

// Is reports whether target is ErrNoMatch.
func (e *Error[S]) Is(target error) bool {
	return target == ErrNoMatch
}

func (e *Error[S]) errorKind() ErrorKind {
	return e.Kind
}

// Incomplete reports that a streaming matcher reached the end of its buffer
// before it could decide. The caller should retry with a longer buffer that
// begins at the same position.
type Incomplete struct {
	// Needed is the number of further elements known to be required.
	Needed int
}

func (e *Incomplete) Error() string {
	return fmt.Sprintf("github.com/chronos-tachyon/go-tokenclass/token: incomplete input: need %d more", e.Needed)
}

// Is reports whether target is ErrIncomplete.
func (e *Incomplete) Is(target error) bool {
	return target == ErrIncomplete
}

// KindOf returns the ErrorKind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var k interface{ errorKind() ErrorKind }
	if errors.As(err, &k) {
		return k.errorKind(), true
	}
	return 0, false
}

// IsIncomplete reports whether err asks for more input.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}
