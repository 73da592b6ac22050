package parse

import (
	"fmt"
	"iter"
	"strings"
)

// Lines yields the lines of s without their terminators. A trailing
// newline does not produce an empty final line and "\r\n" is accepted.
func Lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for rest := s; rest != ""; {
			var line string
			line, rest, _ = strings.Cut(rest, "\n")
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

// Chunks yields the blank-line separated sections of s, each trimmed of
// surrounding newlines.
func Chunks(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		text := strings.ReplaceAll(s, "\r\n", "\n")
		for _, chunk := range strings.Split(strings.Trim(text, "\n"), "\n\n") {
			if chunk == "" {
				continue
			}
			if !yield(chunk) {
				return
			}
		}
	}
}

// ParseLines runs p to completion on every line of s.
// The error names the 1-based line that failed.
func ParseLines[T any](s string, p Parser[T]) ([]T, error) {
	var out []T
	n := 0
	for line := range Lines(s) {
		n++
		v, err := p.Parse(line).Finish()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, v)
	}

	return out, nil
}
