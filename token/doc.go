// Package token provides four primitive parsers over a buffer of bytes or
// characters, each driven by a charclass.Pattern:
//
//	IsA     longest non-empty prefix of members
//	IsNot   longest non-empty prefix of non-members
//	OneOf   one leading member
//	NoneOf  one leading non-member
//
// Every parser comes in two modes. In Complete mode the buffer is all of the
// input, so its end ends the match. In Streaming mode the buffer may be
// followed by more input; a parser that reaches the end while still matching
// returns *Incomplete instead of guessing, and the caller should retry with a
// longer buffer.
//
//	rest, digits, err := token.CompleteBytes.IsA(charclass.InRange[byte]('0', '9'))(buf)
//
// Parsers never copy or modify their input. Results are sub-slices of it.
package token
