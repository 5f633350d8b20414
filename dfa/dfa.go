// Package dfa implements the worklist DFA-construction algorithm over
// regular vectors: states are canonical regular vectors rather than
// NFA nil-closure node sets, and the "has this state already been
// built" test is the vector's own Key.
package dfa

import (
	"lexgen/charset"
	"lexgen/graph"
	"lexgen/internal/mustutil"
	"lexgen/vector"
)

// LexerRuleDfa is the compiled automaton for a single rule: the
// transition graph, the initial state, and the accept information the
// emitter needs to pick a clause when a run ends in an accepting
// state.
type LexerRuleDfa struct {
	Transitions graph.Graph
	InitialState graph.VertexId
	// RuleAcceptedByState maps an accepting state to the lowest-index
	// clause among its accepting clauses (the longest-match tie-break).
	RuleAcceptedByState map[graph.VertexId]int
	// AcceptingStates lists, per accepting state, the full set of clause
	// indices that accept there; only the minimum is used by the
	// emitter, and no stage turns the rest into a diagnostic.
	AcceptingStates map[graph.VertexId][]int
}

// compilationState is the worklist builder's mutable scratch space,
// discarded once a rule's compilation completes.
type compilationState struct {
	universe  charset.Set
	graph     graph.Graph
	vecToState map[string]graph.VertexId
	stateToVec map[graph.VertexId]vector.Vector
	pending    []graph.VertexId
}

// Build runs the worklist construction over the canonical regular
// vector v (one element per clause of a rule) and returns the
// resulting automaton.
func Build(v vector.Vector, universe charset.Set) LexerRuleDfa {
	cs := &compilationState{
		universe:   universe,
		graph:      graph.New(),
		vecToState: make(map[string]graph.VertexId),
		stateToVec: make(map[graph.VertexId]vector.Vector),
	}

	initial := v.Canonicalize(universe)
	initialID := cs.createState(initial)
	cs.pending = append(cs.pending, initialID)

	for len(cs.pending) > 0 {
		id := cs.pending[len(cs.pending)-1]
		cs.pending = cs.pending[:len(cs.pending)-1]
		cur := cs.stateToVec[id]

		if cur.IsEmpty() {
			continue // the dead-end state is never a transition target
		}

		classes := cur.DerivativeClasses(universe)
		for _, class := range classes {
			if class.IsEmpty() {
				continue
			}
			a, err := class.Min()
			mustutil.NoError(err, "dfa: derivative class must be non-empty")

			next := cur.Derivative(a).Canonicalize(universe)
			if next.IsEmpty() {
				continue
			}
			targetID := cs.stateOf(next)
			cs.graph.AddEdges(id, targetID, class)
		}
	}

	acceptedBy := make(map[graph.VertexId]int)
	accepting := make(map[graph.VertexId][]int)
	for id, vec := range cs.stateToVec {
		if clauses := vec.Accepting(); len(clauses) > 0 {
			accepting[id] = clauses
			min := clauses[0]
			for _, c := range clauses[1:] {
				if c < min {
					min = c
				}
			}
			acceptedBy[id] = min
		}
	}

	return LexerRuleDfa{
		Transitions:         cs.graph,
		InitialState:        initialID,
		RuleAcceptedByState: acceptedBy,
		AcceptingStates:     accepting,
	}
}

// createState allocates a fresh vertex for v, which must not already
// be present.
func (cs *compilationState) createState(v vector.Vector) graph.VertexId {
	key := v.Key()
	mustutil.Mustf(!existsKey(cs.vecToState, key), "dfa: state for vector %q already created", key)
	id := cs.graph.NewVertex()
	cs.vecToState[key] = id
	cs.stateToVec[id] = v
	return id
}

// stateOf returns the existing state for v, creating and enqueuing a
// fresh one on first sight.
func (cs *compilationState) stateOf(v vector.Vector) graph.VertexId {
	key := v.Key()
	if id, ok := cs.vecToState[key]; ok {
		return id
	}
	id := cs.createState(v)
	cs.pending = append(cs.pending, id)
	return id
}

func existsKey(m map[string]graph.VertexId, key string) bool {
	_, ok := m[key]
	return ok
}
