// Package diag implements the diagnostic type shared by macro,
// compile, and syntax: diagnostics accumulate into a slice and are
// reported together rather than thrown mid-pipeline, reserving panics
// for genuine invariant violations rather than user-input errors.
package diag

import (
	"fmt"

	"lexgen/ast"
)

// Kind names a diagnostic category, covering both low-level syntax
// errors and the higher-level macro/pattern validation errors.
type Kind string

const (
	DuplicateMacro         Kind = "DuplicateMacro"
	RecursiveMacro         Kind = "RecursiveMacro"
	UndefinedMacro         Kind = "UndefinedMacro"
	UnicodeInAsciiMode     Kind = "UnicodeInAsciiMode"
	UnknownUnicodeCategory Kind = "UnknownUnicodeCategory"
	EndOfFileInRegex       Kind = "EndOfFileInRegex"
	UnsupportedRepetition  Kind = "UnsupportedRepetition"
	ShadowedClause         Kind = "ShadowedClause"

	ErrUnmatchedLpar       Kind = "ErrUnmatchedLpar"
	ErrUnmatchedRpar       Kind = "ErrUnmatchedRpar"
	ErrUnmatchedLbkt       Kind = "ErrUnmatchedLbkt"
	ErrUnmatchedRbkt       Kind = "ErrUnmatchedRbkt"
	ErrBadRange            Kind = "ErrBadRange"
	ErrExtraneousBackslash Kind = "ErrExtraneousBackslash"
	ErrBareClosure         Kind = "ErrBareClosure"
	ErrBadBackslash        Kind = "ErrBadBackslash"
	ErrExpectedLBrace      Kind = "ErrExpectedLBrace"
	ErrUnmatchedLBrace     Kind = "ErrUnmatchedLBrace"
	ErrUnexpectedEOF       Kind = "ErrUnexpectedEOF"
)

// Diagnostic is one accumulated compilation diagnostic, carrying
// enough detail for cmd/lexgen to report it and for tests to assert
// on its Kind.
type Diagnostic struct {
	Kind    Kind
	Message string
	Pos     ast.Position
}

// Error implements the error interface so a Diagnostic can be wrapped
// and compared wherever a single error value is expected.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Pos.Line, d.Pos.Column, d.Kind, d.Message)
}

// New builds a Diagnostic with a formatted message.
func New(kind Kind, pos ast.Position, format string, a ...any) Diagnostic {
	return Diagnostic{Kind: kind, Message: fmt.Sprintf(format, a...), Pos: pos}
}

// HasErrors reports whether diags contains at least one diagnostic;
// any diagnostic present means the caller must not emit output.
func HasErrors(diags []Diagnostic) bool {
	return len(diags) > 0
}
