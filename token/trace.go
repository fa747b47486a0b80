package token

import (
	"fmt"

	"github.com/chronos-tachyon/go-tokenclass/input"
)

// previewLen is the number of storage units shown by traces and errors.
const previewLen = 10

// Tracer receives one line per trace event. log.Println and
// (*testing.T).Log both satisfy it.
type Tracer func(v ...any)

// Stage names a point in a matcher call.
type Stage uint8

const (
	// StageTry is emitted when a Parser is called.
	StageTry Stage = iota

	// StageGot is emitted on success, with the matched output.
	StageGot

	// StageFail is emitted when the Parser returns an *Error.
	StageFail

	// StageMore is emitted when the Parser returns an *Incomplete.
	StageMore
)

var stageNames = []string{
	StageTry:  "TRY",
	StageGot:  "GOT",
	StageFail: "ERR",
	StageMore: "MORE",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

type tracer[S input.Seq] struct {
	fn   Tracer
	name string
}

func newTracer[S input.Seq](fn Tracer, kind ErrorKind, p fmt.Stringer) tracer[S] {
	if fn == nil {
		return tracer[S]{}
	}
	return tracer[S]{fn: fn, name: kind.String() + " " + p.String()}
}

func (t tracer[S]) enabled() bool {
	return t.fn != nil
}

// emit writes "<stage> <op> <pattern> <preview><suffix>".
func (t tracer[S]) emit(stage Stage, in S, suffix string) {
	if t.fn == nil {
		return
	}
	t.fn(stage.String() + " " + t.name + " " + input.Preview(in, previewLen) + suffix)
}
