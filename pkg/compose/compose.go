// Package compose sequences unary functions.
package compose

// Compose returns a function that applies f, then g.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Curried is Compose in three steps: supply f, then g, then the input.
//
//	label := Curried[int, bool, string]()(isPowerOfTwo)(toUpper)
func Curried[A, B, C any]() func(func(A) B) func(func(B) C) func(A) C {
	return func(f func(A) B) func(func(B) C) func(A) C {
		return func(g func(B) C) func(A) C {
			return Compose(f, g)
		}
	}
}

// Pipe applies fs left to right. With no functions it is Identity.
func Pipe[A any](fs ...func(A) A) func(A) A {
	return func(a A) A {
		for _, f := range fs {
			a = f(a)
		}
		return a
	}
}

func Identity[A any](a A) A {
	return a
}
