// Package vector implements the regular vector: the fixed-length,
// per-clause vector of regexes that the DFA builder treats as a single
// state. One vector is associated with each rule; position i is the
// regex still to be matched for clause i.
package vector

import (
	"strings"

	"lexgen/charset"
	"lexgen/rx"
)

// Vector is an ordered, fixed-length sequence of regexes, one per
// clause of a rule.
type Vector []rx.Regex

// Canonicalize canonicalizes every element against U.
func (v Vector) Canonicalize(U charset.Set) Vector {
	out := make(Vector, len(v))
	for i, r := range v {
		out[i] = rx.Canonicalize(r, U)
	}
	return out
}

// Derivative computes the elementwise derivative of v with respect to a.
func (v Vector) Derivative(a rune) Vector {
	out := make(Vector, len(v))
	for i, r := range v {
		out[i] = rx.Derivative(r, a)
	}
	return out
}

// Nullable reports whether any clause accepts the empty string.
func (v Vector) Nullable() bool {
	for _, r := range v {
		if rx.Nullable(r) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether every clause is the unmatchable language
// (Void, or a CharSet with no elements).
func (v Vector) IsEmpty() bool {
	for _, r := range v {
		if !isVoid(r) {
			return false
		}
	}
	return true
}

func isVoid(r rx.Regex) bool {
	switch rv := r.(type) {
	case rx.Void:
		return true
	case rx.CharSet:
		return rv.Set.IsEmpty()
	default:
		return false
	}
}

// Accepting returns the sorted set of clause indices whose regex is
// nullable: the clauses that would match the empty remaining input at
// this state.
func (v Vector) Accepting() []int {
	var out []int
	for i, r := range v {
		if rx.Nullable(r) {
			out = append(out, i)
		}
	}
	return out
}

// DerivativeClasses computes the vector's derivative-class partition:
// the pairwise intersection (Meet) of each element's own partition.
// Any non-empty result class P guarantees Derivative(v, a) canonicalizes
// to the same vector for every a, b in P.
func (v Vector) DerivativeClasses(U charset.Set) []charset.Set {
	if len(v) == 0 {
		return []charset.Set{U}
	}
	classes := rx.DerivativeClasses(v[0], U)
	for _, r := range v[1:] {
		classes = rx.Meet(classes, rx.DerivativeClasses(r, U))
	}
	return classes
}

// Key returns a canonical, comparable string encoding of v suitable
// for use as a map key, used by the DFA builder to dedupe states by
// their canonical regular vector.
func (v Vector) Key() string {
	var b strings.Builder
	for _, r := range v {
		b.WriteString(r.String())
		b.WriteByte(0)
	}
	return b.String()
}
