package parse

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every *Error unwraps to exactly one of these.
var (
	// ErrParseInt indicates a numeric literal with no digits or out of range.
	ErrParseInt = errors.New("parse: invalid integer")

	// ErrUnexpectedChar indicates a character rejected by a predicate.
	ErrUnexpectedChar = errors.New("parse: unexpected character")

	// ErrUnmatchedTag indicates the input does not start with a literal.
	ErrUnmatchedTag = errors.New("parse: unmatched tag")

	// ErrGeneric carries a free-form message from Fail, Bind or Grid.
	ErrGeneric = errors.New("parse: failed")

	// ErrRemainingUnparsed indicates Finish found unconsumed input.
	ErrRemainingUnparsed = errors.New("parse: remaining unparsed input")

	// ErrXorBothTrue indicates both branches of Xor matched.
	ErrXorBothTrue = errors.New("parse: both alternatives matched")

	// ErrEndOfString indicates a character was required but input was empty.
	ErrEndOfString = errors.New("parse: unexpected end of input")
)

// Error is a positioned parse failure.
type Error struct {
	Kind  error  // one of the Err* sentinels
	Char  rune   // offending character for ErrUnexpectedChar
	Text  string // tag, collected digits or message, depending on Kind
	Rest  string // remaining input at the point of failure
	Cause error  // underlying error surfaced through Bind, if any
}

// Error implements error.
func (e *Error) Error() string {
	var detail string
	switch e.Kind {
	case ErrUnexpectedChar:
		detail = fmt.Sprintf(" %q", e.Char)
	case ErrParseInt, ErrUnmatchedTag:
		detail = fmt.Sprintf(" %q", e.Text)
	case ErrGeneric:
		detail = ": " + e.Text
	}

	return fmt.Sprintf("%v%s at %q", e.Kind, detail, preview(e.Rest))
}

// Unwrap exposes both the kind and, when present, the cause.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}

	return []error{e.Kind}
}

// Offset returns the byte offset of the failure within input, assuming
// Rest is a suffix of input.
func (e *Error) Offset(input string) int {
	return len(input) - len(e.Rest)
}

// Position returns the 1-based line and column (in runes) of the failure
// within input.
func (e *Error) Position(input string) (line, col int) {
	before := input[:e.Offset(input)]
	line = strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}

	return line, len([]rune(before)) + 1
}

// Caret renders the offending line of input followed by a caret under the
// failing column.
func (e *Error) Caret(input string) string {
	off := e.Offset(input)
	start := strings.LastIndexByte(input[:off], '\n') + 1
	end := strings.IndexByte(input[off:], '\n')
	if end < 0 {
		end = len(input)
	} else {
		end += off
	}
	_, col := e.Position(input)

	return input[start:end] + "\n" + strings.Repeat(" ", col-1) + "^"
}

func preview(s string) string {
	const limit = 16
	if r := []rune(s); len(r) > limit {
		return string(r[:limit]) + "..."
	}

	return s
}

// State is the outcome of applying a parser to some input.
// Err is nil on success.
type State[T any] struct {
	Value T
	Rest  string
	Err   *Error
}

// Ok reports whether the parse succeeded.
func (s State[T]) Ok() bool { return s.Err == nil }

// Finish converts s into a (value, error) pair, failing with
// ErrRemainingUnparsed when input is left over.
func (s State[T]) Finish() (T, error) {
	var zero T
	if s.Err != nil {
		return zero, s.Err
	}
	if s.Rest != "" {
		return zero, &Error{Kind: ErrRemainingUnparsed, Rest: s.Rest}
	}

	return s.Value, nil
}

func success[T any](v T, rest string) State[T] {
	return State[T]{Value: v, Rest: rest}
}

func failure[T any](e *Error) State[T] {
	return State[T]{Rest: e.Rest, Err: e}
}

// Parser consumes a prefix of its input.
type Parser[T any] func(input string) State[T]

// Parse applies p to input.
func (p Parser[T]) Parse(input string) State[T] { return p(input) }

// Tuple holds the results of two sequenced parsers.
type Tuple[T, U any] struct {
	First  T
	Second U
}
