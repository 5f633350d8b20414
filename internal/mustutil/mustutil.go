// Package mustutil implements the invariant-checking helpers used by
// the compiler's internal packages. dfa/rx/vector are library
// packages with no process to exit, so these panic rather than log
// and exit — reserved for genuine programmer-error invariant
// violations, never for user-input errors (those are Diagnostics, not
// panics).
package mustutil

import "fmt"

// Mustf panics with the formatted message if cond is false.
func Mustf(cond bool, format string, a ...any) {
	if !cond {
		panic(fmt.Sprintf(format, a...))
	}
}

// NoError panics with context if err is non-nil.
func NoError(err error, context string) {
	if err != nil {
		panic(fmt.Sprintf("%s: %v", context, err))
	}
}
