// Package ast defines the surface-syntax AST handed from the parser
// collaborator (package syntax) to the compiler (package compile): a
// Specification made of macro declarations and rules, each rule a
// sequence of (pattern, action) clauses. This is the external
// interface described by the component design; it does not itself
// implement pattern validation or compilation.
package ast

import "lexgen/internal/ordermap"

// RuleId names a rule by its declared identifier.
type RuleId string

// Position marks a location in the source file, used to attach
// diagnostics (e.g. UnicodeInAsciiMode) to the character that caused
// them.
type Position struct {
	Line, Column int
}

// CodeFragment is an opaque fragment of target-language action code,
// carried through compilation verbatim for the emitter.
type CodeFragment struct {
	Text string
	Pos  Position
}

// MacroDecl is one `let name = pattern` declaration.
type MacroDecl struct {
	Name    string
	Pattern LexerPattern
	Pos     Position
}

// Clause is one `pattern { action }` alternative within a rule.
type Clause struct {
	Pattern LexerPattern
	Action  CodeFragment
}

// Rule is a named lexing rule: an optional parameter list (carried
// through to the emitted dispatch function's signature) and an
// ordered list of clauses tried in declaration order.
type Rule struct {
	Parameters []string
	Clauses    []Clause
}

// Specification is the top-level AST the parser collaborator produces
// and the compiler consumes.
type Specification struct {
	Header    *CodeFragment
	Footer    *CodeFragment
	Macros    []MacroDecl
	Rules     *ordermap.Map[RuleId, Rule]
	StartRule RuleId
}

// NewSpecification returns an empty Specification ready to be
// populated by a parser.
func NewSpecification() *Specification {
	return &Specification{Rules: ordermap.New[RuleId, Rule]()}
}

// LexerPattern is the sealed interface implemented by every surface
// pattern variant accepted from the parser. Unlike rx.Regex, patterns
// may reference macros and use extended forms (OneOrMore, Optional,
// Repetition, UnicodeCategory) that the macro preprocessor rewrites
// into the core regex algebra.
type LexerPattern interface {
	lexerPattern()
}

// Epsilon matches only the empty string.
type Epsilon struct{}

// EmptyPattern is the unmatchable language.
type EmptyPattern struct{}

// AnyPattern matches a single character from the active universe.
type AnyPattern struct{}

// CharacterPattern matches exactly one occurrence of C.
type CharacterPattern struct {
	C   rune
	Pos Position
}

// CharacterSetPattern matches one character from an explicit list of
// (lo, hi) inclusive ranges, as written in source (not yet built into
// a charset.Set — that happens during validation, once the universe
// is known).
type CharacterSetPattern struct {
	Ranges [][2]rune
	Negate bool
	Pos    Position
}

// UnicodeCategoryPattern matches any character in Unicode general
// category Category (e.g. "L", "Nd"). Valid only in Unicode mode.
type UnicodeCategoryPattern struct {
	Category string
	Pos      Position
}

// MacroPattern references a previously declared macro by name.
type MacroPattern struct {
	Name string
	Pos  Position
}

// NegatePattern matches any string P does not match, within the
// active universe.
type NegatePattern struct{ P LexerPattern }

// StarPattern matches zero or more repetitions of P.
type StarPattern struct{ P LexerPattern }

// OneOrMorePattern matches one or more repetitions of P (desugars to
// P . P* during validation).
type OneOrMorePattern struct{ P LexerPattern }

// OptionalPattern matches zero or one occurrence of P (desugars to
// ε | P during validation).
type OptionalPattern struct{ P LexerPattern }

// ConcatPattern matches P followed by Q.
type ConcatPattern struct{ P, Q LexerPattern }

// OrPattern matches P or Q.
type OrPattern struct{ P, Q LexerPattern }

// AndPattern matches strings accepted by both P and Q.
type AndPattern struct{ P, Q LexerPattern }

// RepetitionPattern matches between Lo and Hi repetitions of P (Hi
// nil means unbounded). Repetition counts, bounded or not, are parsed
// but rejected at translation time with UnsupportedRepetition.
type RepetitionPattern struct {
	P      LexerPattern
	Lo     int
	Hi     *int
	Pos    Position
}

// EndOfFilePattern marks the end-of-file token. Package syntax accepts
// it anywhere a pattern atom may appear; macro translation rejects it
// with EndOfFileInRegex wherever it appears, whether as an operand of
// another pattern constructor or as a whole clause pattern.
type EndOfFilePattern struct{ Pos Position }

func (Epsilon) lexerPattern()                {}
func (EmptyPattern) lexerPattern()           {}
func (AnyPattern) lexerPattern()             {}
func (CharacterPattern) lexerPattern()       {}
func (CharacterSetPattern) lexerPattern()    {}
func (UnicodeCategoryPattern) lexerPattern() {}
func (MacroPattern) lexerPattern()           {}
func (NegatePattern) lexerPattern()          {}
func (StarPattern) lexerPattern()            {}
func (OneOrMorePattern) lexerPattern()       {}
func (OptionalPattern) lexerPattern()        {}
func (ConcatPattern) lexerPattern()          {}
func (OrPattern) lexerPattern()              {}
func (AndPattern) lexerPattern()             {}
func (RepetitionPattern) lexerPattern()      {}
func (EndOfFilePattern) lexerPattern()       {}
