// Package macro implements macro validation and pattern translation:
// turning the surface ast.LexerPattern tree (which may reference named
// macros and use extended forms like r+, r?, UnicodeCategory) into the
// core rx.Regex algebra. Malformed input is rejected as soon as it is
// seen, in declaration order, rather than in a separate validation
// pass.
package macro

import (
	"unicode"

	"lexgen/ast"
	"lexgen/charset"
	"lexgen/config"
	"lexgen/diag"
	"lexgen/rx"
)

const asciiMax = 0x7F

// Preprocess validates and expands macros in declaration order,
// returning the fully expanded (but not yet universe-canonicalized)
// environment, the set of macro names that failed to validate, and
// the accumulated diagnostics. A macro whose own definition produced a
// diagnostic is added to badMacros so later references to it collapse
// to rx.Void{} instead of cascading a second diagnostic.
func Preprocess(macros []ast.MacroDecl, opts config.CompilationOptions) (map[string]rx.Regex, map[string]bool, []diag.Diagnostic) {
	env := make(map[string]rx.Regex)
	bad := make(map[string]bool)
	var diags []diag.Diagnostic

	for _, m := range macros {
		if _, exists := env[m.Name]; exists {
			diags = append(diags, diag.New(diag.DuplicateMacro, m.Pos, "macro %q already defined", m.Name))
			continue
		}
		r, ds := translate(m.Pattern, env, bad, opts, m.Name)
		env[m.Name] = r
		if len(ds) > 0 {
			bad[m.Name] = true
		}
		diags = append(diags, ds...)
	}
	return env, bad, diags
}

// Translate expands a rule-clause pattern against an already-built
// macro environment, applying the same rewrites used for macro bodies.
func Translate(p ast.LexerPattern, env map[string]rx.Regex, bad map[string]bool, opts config.CompilationOptions) (rx.Regex, []diag.Diagnostic) {
	return translate(p, env, bad, opts, "")
}

// defining is the name of the macro currently being expanded, used
// only to detect direct self-reference; it is empty when translating
// a rule clause rather than a macro body.
func translate(p ast.LexerPattern, env map[string]rx.Regex, bad map[string]bool, opts config.CompilationOptions, defining string) (rx.Regex, []diag.Diagnostic) {
	switch v := p.(type) {
	case ast.Epsilon:
		return rx.Eps{}, nil
	case ast.EmptyPattern:
		return rx.Void{}, nil
	case ast.AnyPattern:
		return rx.Any{}, nil
	case ast.CharacterPattern:
		var diags []diag.Diagnostic
		if !opts.Unicode && v.C > asciiMax {
			diags = append(diags, diag.New(diag.UnicodeInAsciiMode, v.Pos, "character %q outside ASCII universe", v.C))
		}
		return rx.Char{C: v.C}, diags
	case ast.CharacterSetPattern:
		var diags []diag.Diagnostic
		if !opts.Unicode {
			for _, r := range v.Ranges {
				if r[1] > asciiMax {
					diags = append(diags, diag.New(diag.UnicodeInAsciiMode, v.Pos, "character set range %c-%c outside ASCII universe", r[0], r[1]))
					break
				}
			}
		}
		set := charset.OfRanges(v.Ranges)
		if v.Negate {
			return rx.Not{R: rx.CharSet{Set: set}}, diags
		}
		return rx.CharSet{Set: set}, diags
	case ast.UnicodeCategoryPattern:
		var diags []diag.Diagnostic
		if !opts.Unicode {
			diags = append(diags, diag.New(diag.UnicodeInAsciiMode, v.Pos, "unicode category %q used without unicode mode", v.Category))
			return rx.Void{}, diags
		}
		set, ok := categorySet(v.Category, bmp)
		if !ok {
			diags = append(diags, diag.New(diag.UnknownUnicodeCategory, v.Pos, "unknown unicode category %q", v.Category))
			return rx.Void{}, diags
		}
		return rx.CharSet{Set: set}, diags
	case ast.MacroPattern:
		if v.Name == defining {
			return rx.Void{}, []diag.Diagnostic{diag.New(diag.RecursiveMacro, v.Pos, "macro %q references itself", v.Name)}
		}
		if bad[v.Name] {
			return rx.Void{}, nil
		}
		if r, ok := env[v.Name]; ok {
			return r, nil
		}
		return rx.Void{}, []diag.Diagnostic{diag.New(diag.UndefinedMacro, v.Pos, "undefined macro %q", v.Name)}
	case ast.NegatePattern:
		r, diags := translate(v.P, env, bad, opts, defining)
		return rx.Not{R: r}, diags
	case ast.StarPattern:
		r, diags := translate(v.P, env, bad, opts, defining)
		return rx.Star{R: r}, diags
	case ast.OneOrMorePattern:
		r, diags := translate(v.P, env, bad, opts, defining)
		return rx.Plus(r), diags
	case ast.OptionalPattern:
		r, diags := translate(v.P, env, bad, opts, defining)
		return rx.Optional(r), diags
	case ast.ConcatPattern:
		a, da := translate(v.P, env, bad, opts, defining)
		b, db := translate(v.Q, env, bad, opts, defining)
		return rx.Concat{A: a, B: b}, append(da, db...)
	case ast.OrPattern:
		a, da := translate(v.P, env, bad, opts, defining)
		b, db := translate(v.Q, env, bad, opts, defining)
		return rx.Or{A: a, B: b}, append(da, db...)
	case ast.AndPattern:
		a, da := translate(v.P, env, bad, opts, defining)
		b, db := translate(v.Q, env, bad, opts, defining)
		return rx.And{A: a, B: b}, append(da, db...)
	case ast.RepetitionPattern:
		return rx.Void{}, []diag.Diagnostic{diag.New(diag.UnsupportedRepetition, v.Pos, "repetition counts are not supported")}
	case ast.EndOfFilePattern:
		return rx.Void{}, []diag.Diagnostic{diag.New(diag.EndOfFileInRegex, v.Pos, "end-of-file marker cannot appear inside a pattern expression")}
	default:
		panic("macro: unrecognized pattern type")
	}
}

// bmp is the Unicode/BMP universe, [0x0000, 0xFFFF].
var bmp = charset.OfRange(0x0000, 0xFFFF)

// categorySet returns the subset of universe belonging to Unicode
// general category name (e.g. "L", "Nd"), sourced from the standard
// library's unicode.Categories range tables — the same tables
// regexp/syntax itself is built on (see DESIGN.md for why this one
// corner stays on the standard library).
func categorySet(name string, universe charset.Set) (charset.Set, bool) {
	rt, ok := unicode.Categories[name]
	if !ok {
		return charset.Empty(), false
	}
	s := charset.Empty()
	for _, r := range rt.R16 {
		if r.Stride == 1 {
			s = s.Add(rune(r.Lo), rune(r.Hi))
			continue
		}
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			s = s.Add(c, c)
		}
	}
	for _, r := range rt.R32 {
		if r.Stride == 1 {
			s = s.Add(rune(r.Lo), rune(r.Hi))
			continue
		}
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			s = s.Add(c, c)
		}
	}
	return charset.Intersect(s, universe), true
}
