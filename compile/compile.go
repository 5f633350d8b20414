// Package compile orchestrates macro preprocessing, per-rule pattern
// validation, and parallel per-rule DFA construction into a single
// CompiledSpecification ready for emit.
package compile

import (
	"sync"

	"lexgen/ast"
	"lexgen/charset"
	"lexgen/config"
	"lexgen/diag"
	"lexgen/dfa"
	"lexgen/internal/ordermap"
	"lexgen/macro"
	"lexgen/rx"
	"lexgen/vector"
)

// asciiUniverse and bmpUniverse are the two character universes a
// compilation can run against, selected by CompilationOptions.Unicode.
var (
	asciiUniverse = charset.OfRange(0x00, 0xFF)
	bmpUniverse   = charset.OfRange(0x0000, 0xFFFF)
)

func universeOf(opts config.CompilationOptions) charset.Set {
	if opts.Unicode {
		return bmpUniverse
	}
	return asciiUniverse
}

// CompiledRule is the compiled automaton for one rule together with
// the verbatim action source text of each of its clauses, indexed by
// clause (== accepting-state-tiebreak) index.
type CompiledRule struct {
	Dfa           dfa.LexerRuleDfa
	ClauseActions []string
}

// CompiledSpecification is the result of a successful compilation: a
// header/footer to splice verbatim around the generated scanner, and
// the compiled rules in declaration order (the order emit uses to
// assign contiguous combined state-id ranges).
type CompiledSpecification struct {
	Header, Footer string
	Rules          *ordermap.Map[ast.RuleId, CompiledRule]
	StartRule      ast.RuleId
}

// Compile validates and compiles spec under opts. A non-empty
// diagnostic slice means the returned specification, if any, must be
// discarded: compilation never yields partial output.
func Compile(spec *ast.Specification, opts config.CompilationOptions) (*CompiledSpecification, []diag.Diagnostic) {
	macroEnv, badMacros, diags := macro.Preprocess(spec.Macros, opts)
	if diag.HasErrors(diags) {
		return nil, diags
	}

	universe := universeOf(opts)
	ruleIds := spec.Rules.Keys()
	results := make([]ruleResult, len(ruleIds))

	var wg sync.WaitGroup
	for i, id := range ruleIds {
		rule, _ := spec.Rules.Get(id)
		wg.Add(1)
		go func(i int, id ast.RuleId, rule ast.Rule) {
			defer wg.Done()
			results[i] = compileRule(id, rule, macroEnv, badMacros, opts, universe)
		}(i, id, rule)
	}
	wg.Wait()

	var allDiags []diag.Diagnostic
	for _, r := range results {
		allDiags = append(allDiags, r.diags...)
	}
	if diag.HasErrors(allDiags) {
		return nil, allDiags
	}

	rules := ordermap.New[ast.RuleId, CompiledRule]()
	for _, r := range results {
		rules.Set(r.id, r.compiled)
	}

	header, footer := "", ""
	if spec.Header != nil {
		header = spec.Header.Text
	}
	if spec.Footer != nil {
		footer = spec.Footer.Text
	}

	return &CompiledSpecification{
		Header:    header,
		Footer:    footer,
		Rules:     rules,
		StartRule: spec.StartRule,
	}, nil
}

// ruleResult is one goroutine's contribution to Compile's pre-sized
// results slice, joined back in rule-declaration order regardless of
// which goroutine finishes first.
type ruleResult struct {
	id       ast.RuleId
	compiled CompiledRule
	diags    []diag.Diagnostic
}

// compileRule validates every clause of rule against macroEnv, then,
// if every clause validated cleanly, builds its DFA. It is safe to run
// concurrently with compileRule calls for other rules: it touches no
// state shared with them beyond the read-only macroEnv/badMacros/opts.
func compileRule(id ast.RuleId, rule ast.Rule, macroEnv map[string]rx.Regex, badMacros map[string]bool, opts config.CompilationOptions, universe charset.Set) (res ruleResult) {
	res.id = id

	vec := make(vector.Vector, len(rule.Clauses))
	actions := make([]string, len(rule.Clauses))
	var diags []diag.Diagnostic

	for i, clause := range rule.Clauses {
		r, ds := macro.Translate(clause.Pattern, macroEnv, badMacros, opts)
		vec[i] = r
		actions[i] = clause.Action.Text
		diags = append(diags, ds...)
	}
	res.diags = diags
	if diag.HasErrors(diags) {
		return res
	}

	res.compiled = CompiledRule{
		Dfa:           dfa.Build(vec, universe),
		ClauseActions: actions,
	}
	return res
}
