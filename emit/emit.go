// Package emit consumes a compile.CompiledSpecification and produces
// the Go source text of a scanner: combined trans/actions tables and
// one dispatch function per rule, spliced into a runtime template and
// passed through go/format and goimports.
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"lexgen/ast"
	"lexgen/compile"
)

// sentinel is "no transition" / "no accept" in the emitted tables.
const sentinel = 65535

// Emit renders spec as a complete Go source file.
func Emit(spec *compile.CompiledSpecification) ([]byte, error) {
	ruleIds := spec.Rules.Keys()

	offsets := make(map[ast.RuleId]int, len(ruleIds))
	total := 0
	maxChar := rune(0)
	for _, id := range ruleIds {
		rule, _ := spec.Rules.Get(id)
		offsets[id] = total
		total += rule.Dfa.Transitions.VertexCount()
		for _, e := range rule.Dfa.Transitions.All() {
			if hi, err := e.On.Max(); err == nil && hi > maxChar {
				maxChar = hi
			}
		}
	}

	trans := make([][]uint16, total)
	for i := range trans {
		row := make([]uint16, maxChar+1)
		for c := range row {
			row[c] = sentinel
		}
		trans[i] = row
	}
	actions := make([]uint16, total)
	for i := range actions {
		actions[i] = sentinel
	}

	for _, id := range ruleIds {
		rule, _ := spec.Rules.Get(id)
		off := offsets[id]
		for state, clause := range rule.Dfa.RuleAcceptedByState {
			actions[off+int(state)] = uint16(clause)
		}
		for _, e := range rule.Dfa.Transitions.All() {
			for _, r := range e.On.Ranges() {
				for c := r[0]; c <= r[1]; c++ {
					trans[off+int(e.Src)][c] = uint16(off + int(e.Dst))
				}
			}
		}
	}

	data := struct {
		Header         string
		Footer         string
		TransLiteral   string
		ActionsLiteral string
		Rules          []ruleData
	}{
		Header:         spec.Header,
		Footer:         spec.Footer,
		TransLiteral:   transLiteral(trans),
		ActionsLiteral: actionsLiteral(actions),
	}

	for _, id := range ruleIds {
		rule, _ := spec.Rules.Get(id)
		data.Rules = append(data.Rules, ruleData{
			Name:         string(id),
			InitialState: offsets[id] + int(rule.Dfa.InitialState),
			Cases:        casesLiteral(rule.ClauseActions),
		})
	}

	tmpl, err := template.New("lexer").Parse(runtimeTemplate)
	if err != nil {
		return nil, fmt.Errorf("emit: parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("emit: execute template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("emit: gofmt: %w", err)
	}
	return imports.Process("lexer.go", formatted, &imports.Options{
		TabWidth:  8,
		TabIndent: true,
		Comments:  true,
		Fragment:  true,
	})
}

type ruleData struct {
	Name         string
	InitialState int
	Cases        string
}

func transLiteral(trans [][]uint16) string {
	var b strings.Builder
	b.WriteString("[][]uint16{\n")
	for _, row := range trans {
		b.WriteString("\t{")
		for i, v := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%d", v)
		}
		b.WriteString("},\n")
	}
	b.WriteString("}")
	return b.String()
}

func actionsLiteral(actions []uint16) string {
	var b strings.Builder
	b.WriteString("[]uint16{")
	for i, v := range actions {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteString("}")
	return b.String()
}

func casesLiteral(clauseActions []string) string {
	var b strings.Builder
	for i, action := range clauseActions {
		fmt.Fprintf(&b, "case %d:\n%s\n", i, action)
	}
	return b.String()
}
