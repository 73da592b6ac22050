package parse

import "errors"

// Or tries p and, if it fails, tries q against the same input.
func (p Parser[T]) Or(q Parser[T]) Parser[T] {
	return func(input string) State[T] {
		if st := p(input); st.Ok() {
			return st
		}

		return q(input)
	}
}

// Xor succeeds when exactly one of p and q matches the input. If both
// match it fails with ErrXorBothTrue at the original input; if neither
// matches it returns q's failure.
func (p Parser[T]) Xor(q Parser[T]) Parser[T] {
	return func(input string) State[T] {
		ps, qs := p(input), q(input)
		switch {
		case ps.Ok() && qs.Ok():
			return failure[T](&Error{Kind: ErrXorBothTrue, Rest: input})
		case ps.Ok():
			return ps
		default:
			return qs
		}
	}
}

// Alt tries each parser in turn against the same input and returns the
// first success, or the last failure.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(input string) State[T] {
		st := Fail[T]("no alternatives")(input)
		for _, p := range ps {
			if st = p(input); st.Ok() {
				return st
			}
		}

		return st
	}
}

// And runs p and, if it succeeds, runs q against the same input,
// returning q's result.
func And[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return func(input string) State[U] {
		if st := p(input); !st.Ok() {
			return failure[U](st.Err)
		}

		return q(input)
	}
}

// AndThen runs p then q on p's remainder and pairs their results.
func AndThen[T, U any](p Parser[T], q Parser[U]) Parser[Tuple[T, U]] {
	return func(input string) State[Tuple[T, U]] {
		ps := p(input)
		if !ps.Ok() {
			return failure[Tuple[T, U]](ps.Err)
		}
		qs := q(ps.Rest)
		if !qs.Ok() {
			return failure[Tuple[T, U]](qs.Err)
		}

		return success(Tuple[T, U]{First: ps.Value, Second: qs.Value}, qs.Rest)
	}
}

// Ignore runs p then q and keeps q's result.
func Ignore[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Map(AndThen(p, q), func(t Tuple[T, U]) U { return t.Second })
}

// Skip runs p then q and keeps p's result.
func Skip[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return Map(AndThen(p, q), func(t Tuple[T, U]) T { return t.First })
}

// Pair runs p, the literal sep, then q.
func Pair[T, U any](p Parser[T], sep string, q Parser[U]) Parser[Tuple[T, U]] {
	return AndThen(Skip(p, Tag(sep)), q)
}

// Between runs p enclosed by the literals open and close.
func Between[T any](open string, p Parser[T], close string) Parser[T] {
	return Skip(Ignore(Tag(open), p), Tag(close))
}

// Map transforms a successful result.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input string) State[U] {
		st := p(input)
		if !st.Ok() {
			return failure[U](st.Err)
		}

		return success(f(st.Value), st.Rest)
	}
}

// Bind transforms a successful result through a fallible function. An
// error from f becomes a failure positioned at p's start. An *Error
// returned by f keeps its kind; any other error becomes ErrGeneric with
// the error as Cause.
func Bind[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(input string) State[U] {
		st := p(input)
		if !st.Ok() {
			return failure[U](st.Err)
		}
		v, err := f(st.Value)
		if err == nil {
			return success(v, st.Rest)
		}
		var pe *Error
		if errors.As(err, &pe) {
			moved := *pe
			moved.Rest = input
			return failure[U](&moved)
		}

		return failure[U](&Error{Kind: ErrGeneric, Text: err.Error(), Rest: input, Cause: err})
	}
}
