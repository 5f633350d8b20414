package macro_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lexgen/ast"
	"lexgen/config"
	"lexgen/diag"
	"lexgen/macro"
	"lexgen/rx"
)

func ascii() config.CompilationOptions { return config.CompilationOptions{Unicode: false} }
func uni() config.CompilationOptions   { return config.CompilationOptions{Unicode: true} }

func TestDuplicateMacro(t *testing.T) {
	decls := []ast.MacroDecl{
		{Name: "a", Pattern: ast.CharacterPattern{C: 'a'}},
		{Name: "a", Pattern: ast.CharacterPattern{C: 'b'}},
	}
	env, _, diags := macro.Preprocess(decls, ascii())
	require.Len(t, diags, 1)
	require.Equal(t, diag.DuplicateMacro, diags[0].Kind)
	require.True(t, rx.Equal(rx.Char{C: 'a'}, env["a"]))
}

func TestRecursiveMacro(t *testing.T) {
	decls := []ast.MacroDecl{
		{Name: "m", Pattern: ast.ConcatPattern{
			P: ast.MacroPattern{Name: "m"},
			Q: ast.CharacterPattern{C: 'a'},
		}},
	}
	_, bad, diags := macro.Preprocess(decls, ascii())
	require.Len(t, diags, 1)
	require.Equal(t, diag.RecursiveMacro, diags[0].Kind)
	require.True(t, bad["m"])
}

func TestUndefinedMacroDoesNotCascade(t *testing.T) {
	decls := []ast.MacroDecl{
		{Name: "a", Pattern: ast.MacroPattern{Name: "missing"}},
		{Name: "b", Pattern: ast.MacroPattern{Name: "missing"}},
	}
	_, bad, diags := macro.Preprocess(decls, ascii())
	require.Len(t, diags, 1)
	require.Equal(t, diag.UndefinedMacro, diags[0].Kind)
	require.True(t, bad["a"])
}

func TestUnicodeInAsciiMode(t *testing.T) {
	_, _, diags := macro.Translate(ast.CharacterPattern{C: 'é'}, nil, nil, ascii())
	require.Len(t, diags, 1)
	require.Equal(t, diag.UnicodeInAsciiMode, diags[0].Kind)
}

func TestUnicodeCategoryResolves(t *testing.T) {
	r, diags := macro.Translate(ast.UnicodeCategoryPattern{Category: "Nd"}, nil, nil, uni())
	require.Empty(t, diags)
	cs, ok := r.(rx.CharSet)
	require.True(t, ok)
	require.True(t, cs.Set.Contains('5'))
	require.False(t, cs.Set.Contains('a'))
}

func TestUnknownUnicodeCategory(t *testing.T) {
	_, diags := macro.Translate(ast.UnicodeCategoryPattern{Category: "Zzzz"}, nil, nil, uni())
	require.Len(t, diags, 1)
	require.Equal(t, diag.UnknownUnicodeCategory, diags[0].Kind)
}

func TestOneOrMoreDesugarsToConcatStar(t *testing.T) {
	r, diags := macro.Translate(ast.OneOrMorePattern{P: ast.CharacterPattern{C: 'a'}}, nil, nil, ascii())
	require.Empty(t, diags)
	require.True(t, rx.Equal(rx.Plus(rx.Char{C: 'a'}), r))
}

func TestOptionalDesugarsToOrEps(t *testing.T) {
	r, diags := macro.Translate(ast.OptionalPattern{P: ast.CharacterPattern{C: 'a'}}, nil, nil, ascii())
	require.Empty(t, diags)
	require.True(t, rx.Equal(rx.Optional(rx.Char{C: 'a'}), r))
}

func TestRepetitionRejected(t *testing.T) {
	_, diags := macro.Translate(ast.RepetitionPattern{P: ast.CharacterPattern{C: 'a'}, Lo: 1, Hi: nil}, nil, nil, ascii())
	require.Len(t, diags, 1)
	require.Equal(t, diag.UnsupportedRepetition, diags[0].Kind)
}

func TestEndOfFileNestedRejected(t *testing.T) {
	_, diags := macro.Translate(ast.ConcatPattern{
		P: ast.CharacterPattern{C: 'a'},
		Q: ast.EndOfFilePattern{},
	}, nil, nil, ascii())
	require.Len(t, diags, 1)
	require.Equal(t, diag.EndOfFileInRegex, diags[0].Kind)
}

func TestMacroReferenceExpandsInline(t *testing.T) {
	decls := []ast.MacroDecl{
		{Name: "digit", Pattern: ast.CharacterSetPattern{Ranges: [][2]rune{{'0', '9'}}}},
	}
	env, _, diags := macro.Preprocess(decls, ascii())
	require.Empty(t, diags)

	r, diags := macro.Translate(ast.OneOrMorePattern{P: ast.MacroPattern{Name: "digit"}}, env, nil, ascii())
	require.Empty(t, diags)
	require.True(t, rx.Equal(rx.Plus(rx.CharSet{Set: env["digit"].(rx.CharSet).Set}), r))
}
