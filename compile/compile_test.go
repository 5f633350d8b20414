package compile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lexgen/ast"
	"lexgen/compile"
	"lexgen/config"
	"lexgen/graph"
)

func specWithOneRule(clauses ...ast.Clause) *ast.Specification {
	spec := ast.NewSpecification()
	spec.Rules.Set("Main", ast.Rule{Clauses: clauses})
	spec.StartRule = "Main"
	return spec
}

func TestCompileSimpleRule(t *testing.T) {
	spec := specWithOneRule(
		ast.Clause{Pattern: ast.CharacterPattern{C: 'a'}, Action: ast.CodeFragment{Text: "emitA()"}},
		ast.Clause{Pattern: ast.CharacterPattern{C: 'b'}, Action: ast.CodeFragment{Text: "emitB()"}},
	)

	out, diags := compile.Compile(spec, config.Default())
	require.Empty(t, diags)
	require.NotNil(t, out)
	require.Equal(t, ast.RuleId("Main"), out.StartRule)

	rule, ok := out.Rules.Get("Main")
	require.True(t, ok)
	require.Equal(t, []string{"emitA()", "emitB()"}, rule.ClauseActions)
	require.Equal(t, 0, rule.Dfa.RuleAcceptedByState[mustTransition(t, rule, 'a')])
	require.Equal(t, 1, rule.Dfa.RuleAcceptedByState[mustTransition(t, rule, 'b')])
}

func mustTransition(t *testing.T, rule compile.CompiledRule, c rune) graph.VertexId {
	t.Helper()
	dst, ok := rule.Dfa.Transitions.TransitionOn(rule.Dfa.InitialState, c)
	require.True(t, ok)
	return dst
}

func TestCompileRejectsUndefinedMacroWithoutOutput(t *testing.T) {
	spec := specWithOneRule(
		ast.Clause{Pattern: ast.MacroPattern{Name: "missing"}, Action: ast.CodeFragment{Text: "x()"}},
	)

	out, diags := compile.Compile(spec, config.Default())
	require.Nil(t, out)
	require.NotEmpty(t, diags)
}

func TestCompileMultipleRulesIndependent(t *testing.T) {
	spec := ast.NewSpecification()
	spec.Rules.Set("A", ast.Rule{Clauses: []ast.Clause{
		{Pattern: ast.CharacterPattern{C: 'x'}, Action: ast.CodeFragment{Text: "a()"}},
	}})
	spec.Rules.Set("B", ast.Rule{Clauses: []ast.Clause{
		{Pattern: ast.CharacterPattern{C: 'y'}, Action: ast.CodeFragment{Text: "b()"}},
	}})
	spec.StartRule = "A"

	out, diags := compile.Compile(spec, config.Default())
	require.Empty(t, diags)
	require.Equal(t, []ast.RuleId{"A", "B"}, out.Rules.Keys())
}
