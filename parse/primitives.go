package parse

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Pure succeeds without consuming anything.
func Pure() Parser[struct{}] {
	return func(input string) State[struct{}] {
		return success(struct{}{}, input)
	}
}

// Fail always fails with ErrGeneric carrying msg.
func Fail[T any](msg string) Parser[T] {
	return func(input string) State[T] {
		return failure[T](&Error{Kind: ErrGeneric, Text: msg, Rest: input})
	}
}

// Chars consumes one character satisfying pred.
func Chars(pred func(rune) bool) Parser[rune] {
	return func(input string) State[rune] {
		if input == "" {
			return failure[rune](&Error{Kind: ErrEndOfString, Rest: input})
		}
		r, size := utf8.DecodeRuneInString(input)
		if !pred(r) {
			return failure[rune](&Error{Kind: ErrUnexpectedChar, Char: r, Rest: input})
		}

		return success(r, input[size:])
	}
}

// Char consumes exactly c.
func Char(c rune) Parser[rune] {
	return Chars(func(r rune) bool { return r == c })
}

// AnyChar consumes any single character.
func AnyChar() Parser[rune] {
	return Chars(func(rune) bool { return true })
}

// Tag consumes the literal s.
func Tag(s string) Parser[string] {
	return func(input string) State[string] {
		rest, ok := strings.CutPrefix(input, s)
		if !ok {
			return failure[string](&Error{Kind: ErrUnmatchedTag, Text: s, Rest: input})
		}

		return success(s, rest)
	}
}

// Any consumes the whole remaining input.
func Any() Parser[string] {
	return func(input string) State[string] {
		return success(input, "")
	}
}

// Drop consumes and discards the whole remaining input.
func Drop() Parser[struct{}] {
	return func(string) State[struct{}] {
		return success(struct{}{}, "")
	}
}

// ManyChars consumes the longest prefix whose characters all satisfy pred.
// It never fails; the result may be empty.
func ManyChars(pred func(rune) bool) Parser[string] {
	return func(input string) State[string] {
		end := strings.IndexFunc(input, func(r rune) bool { return !pred(r) })
		if end < 0 {
			end = len(input)
		}

		return success(input[:end], input[end:])
	}
}

// Number consumes a run of ASCII digits as a non-negative int.
func Number() Parser[int] {
	return NumberWithSeps("")
}

// NumberWithSeps consumes a maximal run of ASCII digits and characters from
// seps, ignoring the separators, e.g. NumberWithSeps(",") reads "12,345"
// as 12345. It fails with ErrParseInt at the start position when the run
// holds no digits or the value overflows int.
func NumberWithSeps(seps string) Parser[int] {
	return number(seps, false)
}

// SignedNumber consumes an optional leading '-' followed by a Number.
func SignedNumber() Parser[int] {
	return SignedNumberWithSeps("")
}

// SignedNumberWithSeps is SignedNumber with separator characters, see
// NumberWithSeps. A leading '-' is always the sign, even when '-' is also
// a separator.
func SignedNumberWithSeps(seps string) Parser[int] {
	return number(seps, true)
}

// number reads the sign into the digit string so that the full int range,
// math.MinInt included, parses.
func number(seps string, signed bool) Parser[int] {
	return func(input string) State[int] {
		var digits strings.Builder
		body := input
		if signed && strings.HasPrefix(body, "-") {
			digits.WriteByte('-')
			body = body[1:]
		}
		offset := len(input) - len(body)
		end := len(body)
		for i, r := range body {
			if isDigit(r) {
				digits.WriteRune(r)
				continue
			}
			if !strings.ContainsRune(seps, r) {
				end = i
				break
			}
		}
		n, err := strconv.Atoi(digits.String())
		if err != nil {
			return failure[int](&Error{Kind: ErrParseInt, Text: digits.String(), Rest: input})
		}

		return success(n, input[offset+end:])
	}
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
