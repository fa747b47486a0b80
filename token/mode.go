package token

// Mode selects how the end of the buffer is interpreted.
type Mode uint8

const (
	// Complete means the buffer holds all remaining input. Reaching its end
	// is a natural boundary.
	Complete Mode = iota

	// Streaming means the buffer is a prefix of input still arriving.
	// Reaching its end while still matching yields *Incomplete.
	Streaming
)

func (m Mode) String() string {
	switch m {
	case Complete:
		return "Complete"
	case Streaming:
		return "Streaming"
	}
	return "Mode(?)"
}

func (m Mode) atEOF() bool {
	return m != Streaming
}

type verdict uint8

const (
	verdictFail verdict = iota
	verdictMatch
	verdictPending
)

// judgeRun applies the mode's policy to the scan of a buffer of avail
// storage units.
func (m Mode) judgeRun(r run, avail int) verdict {
	if m == Streaming {
		return streamingRun(r, avail)
	}
	return completeRun(r)
}

// judgeOne applies the mode's policy to a single-element test. width is 0
// if no whole element was available.
func (m Mode) judgeOne(width int, ok bool) verdict {
	if m == Streaming {
		return streamingOne(width, ok)
	}
	return completeOne(width, ok)
}

func completeRun(r run) verdict {
	if r.Count == 0 {
		return verdictFail
	}
	return verdictMatch
}

func streamingRun(r run, avail int) verdict {
	switch {
	case avail == 0:
		return verdictFail
	case r.Exhausted:
		return verdictPending
	case r.Count == 0:
		return verdictFail
	}
	return verdictMatch
}

func completeOne(width int, ok bool) verdict {
	if width == 0 || !ok {
		return verdictFail
	}
	return verdictMatch
}

func streamingOne(width int, ok bool) verdict {
	switch {
	case width == 0:
		return verdictPending
	case !ok:
		return verdictFail
	}
	return verdictMatch
}
