package rx

import (
	"sort"

	"lexgen/charset"
)

// Canonicalize rewrites r to the normal form described by the package
// invariants: Any collapses to CharSet(U); CharSet collapses to
// Void/Char when its set has 0/1 elements; Concat/Or/And are
// left-associated; Or/And operands are sorted into a total order and
// CharSet operands fold together via union/intersection; the identity
// and absorption laws (r.ε=r, r.∅=∅, r|∅=r, r|Any=Any, r&∅=∅, r&Any=r,
// (r*)*=r*, ε*=∅*=ε, ¬¬r=r, ¬∅=Any, ¬Any=∅) are applied bottom-up.
//
// Canonicalize is idempotent: Canonicalize(Canonicalize(r, U), U) ==
// Canonicalize(r, U).
func Canonicalize(r Regex, U charset.Set) Regex {
	switch v := r.(type) {
	case Eps:
		return Eps{}
	case Void:
		return Void{}
	case Any:
		return canonicalCharSet(U)
	case Char:
		return v
	case CharSet:
		return canonicalCharSet(v.Set)
	case Not:
		return canonicalNot(Canonicalize(v.R, U), U)
	case Star:
		return canonicalStar(Canonicalize(v.R, U))
	case Concat:
		return canonicalConcat(Canonicalize(v.A, U), Canonicalize(v.B, U))
	case Or:
		return canonicalCombine(Canonicalize(v.A, U), Canonicalize(v.B, U), U, true)
	case And:
		return canonicalCombine(Canonicalize(v.A, U), Canonicalize(v.B, U), U, false)
	default:
		panic("rx: unrecognized regex in Canonicalize")
	}
}

func canonicalCharSet(s charset.Set) Regex {
	switch s.Count() {
	case 0:
		return Void{}
	case 1:
		c, _ := s.Min()
		return Char{c}
	default:
		return CharSet{s}
	}
}

// asCharSet reports whether r denotes a set of single characters
// (Void, Char, or CharSet), returning that set if so.
func asCharSet(r Regex) (charset.Set, bool) {
	switch v := r.(type) {
	case Void:
		return charset.Empty(), true
	case Char:
		return charset.Singleton(v.C), true
	case CharSet:
		return v.Set, true
	default:
		return charset.Set{}, false
	}
}

func canonicalNot(r Regex, U charset.Set) Regex {
	if v, ok := r.(Not); ok {
		return v.R // ¬¬r = r
	}
	if _, ok := r.(Void); ok {
		return canonicalCharSet(U) // ¬∅ = Any
	}
	if s, ok := asCharSet(r); ok && charset.Equal(s, U) {
		return Void{} // ¬Any = ∅
	}
	return Not{r}
}

func canonicalStar(r Regex) Regex {
	switch r.(type) {
	case Star:
		return r // (r*)* = r*
	case Eps:
		return Eps{} // ε* = ε
	case Void:
		return Eps{} // ∅* = ε
	default:
		return Star{r}
	}
}

func flattenConcat(r Regex) []Regex {
	if v, ok := r.(Concat); ok {
		return append(flattenConcat(v.A), flattenConcat(v.B)...)
	}
	return []Regex{r}
}

func canonicalConcat(a, b Regex) Regex {
	leaves := append(flattenConcat(a), flattenConcat(b)...)
	var kept []Regex
	for _, l := range leaves {
		if _, ok := l.(Eps); ok {
			continue // r.ε = ε.r = r
		}
		if _, ok := l.(Void); ok {
			return Void{} // r.∅ = ∅.r = ∅
		}
		kept = append(kept, l)
	}
	if len(kept) == 0 {
		return Eps{}
	}
	acc := kept[0]
	for _, l := range kept[1:] {
		acc = Concat{acc, l}
	}
	return acc
}

func flattenCombine(r Regex, isOr bool) []Regex {
	if isOr {
		if v, ok := r.(Or); ok {
			return append(flattenCombine(v.A, true), flattenCombine(v.B, true)...)
		}
	} else {
		if v, ok := r.(And); ok {
			return append(flattenCombine(v.A, false), flattenCombine(v.B, false)...)
		}
	}
	return []Regex{r}
}

func canonicalCombine(a, b Regex, U charset.Set, isOr bool) Regex {
	leaves := append(flattenCombine(a, isOr), flattenCombine(b, isOr)...)

	// Absorption: r|Any = Any; r&∅ = ∅.
	for _, l := range leaves {
		if isOr {
			if s, ok := asCharSet(l); ok && charset.Equal(s, U) {
				return canonicalCharSet(U)
			}
		} else if _, ok := l.(Void); ok {
			return Void{}
		}
	}

	var kept []Regex
	combinedSet := charset.Empty()
	haveSet := false
	for _, l := range leaves {
		if isOr {
			if _, ok := l.(Void); ok {
				continue // r|∅ = r
			}
		} else if s, ok := asCharSet(l); ok && charset.Equal(s, U) {
			continue // r&Any = r
		}
		if s, ok := asCharSet(l); ok {
			if !haveSet {
				combinedSet, haveSet = s, true
			} else if isOr {
				combinedSet = charset.Union(combinedSet, s)
			} else {
				combinedSet = charset.Intersect(combinedSet, s)
			}
			continue
		}
		kept = append(kept, l)
	}

	var all []Regex
	if haveSet {
		all = append(all, canonicalCharSet(combinedSet))
	}
	all = append(all, kept...)
	all = dedupeRegex(all)

	if len(all) == 0 {
		if isOr {
			return Void{} // identity of |
		}
		return canonicalCharSet(U) // identity of &
	}

	sort.Slice(all, func(i, j int) bool { return Compare(all[i], all[j]) < 0 })
	acc := all[0]
	for _, l := range all[1:] {
		if isOr {
			acc = Or{acc, l}
		} else {
			acc = And{acc, l}
		}
	}
	return acc
}

func dedupeRegex(list []Regex) []Regex {
	var out []Regex
	for _, l := range list {
		dup := false
		for _, o := range out {
			if Equal(l, o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	return out
}
