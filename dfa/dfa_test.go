package dfa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lexgen/charset"
	"lexgen/dfa"
	"lexgen/graph"
	"lexgen/rx"
	"lexgen/vector"
)

var ascii = charset.OfRange(0x00, 0x7F)

func TestSingleLiteralTwoStates(t *testing.T) {
	v := vector.Vector{rx.Char{C: 'a'}}
	d := dfa.Build(v, ascii)

	require.Equal(t, 2, d.Transitions.VertexCount())

	out := d.Transitions.Out(d.InitialState)
	require.Len(t, out, 1)
	require.True(t, out[0].On.Contains('a'))

	require.Equal(t, 0, d.RuleAcceptedByState[out[0].Dst])
}

func TestShorterClauseAcceptsBeforeLongerClause(t *testing.T) {
	// "ab" { A } | "a" { B } -- after reading 'a', clause 1 (B) accepts
	// while clause 0 (A) is still pending on 'b'.
	v := vector.Vector{
		rx.Concat{A: rx.Char{C: 'a'}, B: rx.Char{C: 'b'}},
		rx.Char{C: 'a'},
	}
	d := dfa.Build(v, ascii)

	afterA, ok := d.Transitions.TransitionOn(d.InitialState, 'a')
	require.True(t, ok)
	require.Contains(t, d.RuleAcceptedByState, afterA)
	require.Equal(t, 1, d.RuleAcceptedByState[afterA])

	afterAB, ok := d.Transitions.TransitionOn(afterA, 'b')
	require.True(t, ok)
	require.Equal(t, 0, d.RuleAcceptedByState[afterAB])
}

func TestPlusLoopsBackToSameState(t *testing.T) {
	digit := rx.CharSet{Set: charset.OfRange('0', '9')}
	v := vector.Vector{rx.Plus(digit)}
	d := dfa.Build(v, ascii)

	// r+ canonicalizes to r.r* -- after one digit the state is r*,
	// which must loop to itself on further digits.
	require.Equal(t, 2, d.Transitions.VertexCount())

	looped, ok := d.Transitions.TransitionOn(d.InitialState, '5')
	require.True(t, ok)
	again, ok := d.Transitions.TransitionOn(looped, '3')
	require.True(t, ok)
	require.Equal(t, looped, again)
}

func TestEveryStateReachableFromInitial(t *testing.T) {
	v := vector.Vector{
		rx.Concat{A: rx.Char{C: 'a'}, B: rx.Char{C: 'b'}},
	}
	d := dfa.Build(v, ascii)

	visited := map[graph.VertexId]bool{d.InitialState: true}
	queue := []graph.VertexId{d.InitialState}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range d.Transitions.Out(cur) {
			if !visited[e.Dst] {
				visited[e.Dst] = true
				queue = append(queue, e.Dst)
			}
		}
	}
	require.Equal(t, d.Transitions.VertexCount(), len(visited))
}
