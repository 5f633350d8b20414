// Package graph implements the DFA transition graph: a labeled
// multigraph of vertices where every outgoing edge of a vertex is
// labeled by a disjoint charset.Set. Derivative-class partitioning
// always produces already-disjoint character sets, so a single
// CharSet-labeled edge kind suffices for every transition.
package graph

import "lexgen/charset"

// VertexId names a vertex. Vertex ids are allocated by NewVertex
// starting at 0, so the zero value is the first allocated vertex.
type VertexId int

type edgeKey struct {
	src, dst VertexId
}

// Graph is mutated in place by NewVertex and AddEdges; a copy of a
// Graph shares its edge map with the original. Each rule's compilation
// state owns its own Graph and uses it from a single goroutine.
type Graph struct {
	vertexCount int
	edges       map[edgeKey]charset.Set
}

// New returns an empty graph.
func New() Graph {
	return Graph{edges: make(map[edgeKey]charset.Set)}
}

// NewVertex allocates a fresh vertex id.
func (g *Graph) NewVertex() VertexId {
	id := VertexId(g.vertexCount)
	g.vertexCount++
	return id
}

// VertexCount returns the number of vertices allocated so far.
func (g *Graph) VertexCount() int { return g.vertexCount }

// AddEdges unions set into the (src, dst) edge label, creating the
// edge if it does not yet exist. The caller (the DFA builder) is
// responsible for ensuring that two distinct dst vertices reached
// from the same src never carry overlapping characters.
func (g *Graph) AddEdges(src, dst VertexId, set charset.Set) {
	if set.IsEmpty() {
		return
	}
	key := edgeKey{src, dst}
	if existing, ok := g.edges[key]; ok {
		g.edges[key] = charset.Union(existing, set)
	} else {
		g.edges[key] = set
	}
}

// Edge is a single labeled transition in the graph.
type Edge struct {
	Src, Dst VertexId
	On       charset.Set
}

// Out returns every outgoing edge of src, in no particular order.
func (g *Graph) Out(src VertexId) []Edge {
	var out []Edge
	for k, set := range g.edges {
		if k.src == src {
			out = append(out, Edge{k.src, k.dst, set})
		}
	}
	return out
}

// All returns every edge in the graph, in no particular order.
func (g *Graph) All() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for k, set := range g.edges {
		out = append(out, Edge{k.src, k.dst, set})
	}
	return out
}

// TransitionOn returns the destination vertex reached from src on
// character c, if any outgoing edge of src contains c.
func (g *Graph) TransitionOn(src VertexId, c rune) (VertexId, bool) {
	for k, set := range g.edges {
		if k.src == src && set.Contains(c) {
			return k.dst, true
		}
	}
	return 0, false
}
