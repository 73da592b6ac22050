// Package parse is a small recursive-descent parser-combinator library for
// puzzle input.
//
// A Parser[T] is a plain function from the remaining input to a State[T].
// A State is either a success carrying a value and the unconsumed suffix,
// or a failure carrying an *Error and the suffix at which parsing failed.
// Parsers never mutate their input and never panic on malformed text.
//
// Building blocks:
//
//   - Primitives: Pure, Fail, Chars, Char, AnyChar, Tag, Any, Drop,
//     ManyChars, Number, NumberWithSeps, SignedNumber, SignedNumberWithSeps.
//   - Sequencing: And, AndThen, Ignore, Skip, Pair, Between.
//   - Choice: Parser.Or (backtracking), Parser.Xor (exactly one), Alt.
//   - Transformation: Map, Bind.
//   - Repetition: Many, Many1, Repeat, List, Line, ManyLines, GridOf.
//
// Errors:
//
// Every failure is an *Error whose Kind is one of the sentinels
// ErrParseInt, ErrUnexpectedChar, ErrUnmatchedTag, ErrGeneric,
// ErrRemainingUnparsed, ErrXorBothTrue or ErrEndOfString, so callers can
// use errors.Is. ErrRemainingUnparsed is produced only by State.Finish,
// which enforces "consume everything or fail" at the top level.
// Error.Caret renders a two-line diagnostic pointing at the failure.
//
// Example:
//
//	pt := parse.Pair(parse.Number(), ",", parse.Number())
//	pts, err := parse.ManyLines(pt, "\n").Parse("1,2\n3,4\n").Finish()
//	// pts == []parse.Tuple[int, int]{{1, 2}, {3, 4}}
package parse
