// Package charset implements the compact range-based character set used
// throughout the compiler: the character universe, regex character
// classes, and DFA edge labels are all charset.Set values.
package charset

import (
	"errors"
	"sort"
	"strings"
)

// ErrEmptySet is returned by Min and Max when the set has no elements.
var ErrEmptySet = errors.New("charset: empty set")

// rng is an inclusive, non-empty range [Lo, Hi].
type rng struct {
	Lo, Hi rune
}

// Set is an immutable sequence of disjoint, non-adjacent, strictly
// increasing inclusive ranges. The zero value is the empty set.
type Set struct {
	ranges []rng
}

// Empty returns the empty set.
func Empty() Set { return Set{} }

// Singleton returns the set containing only c.
func Singleton(c rune) Set { return Set{ranges: []rng{{c, c}}} }

// OfRange returns the set [lo, hi]. If hi < lo the result is empty.
func OfRange(lo, hi rune) Set {
	if hi < lo {
		return Empty()
	}
	return Set{ranges: []rng{{lo, hi}}}
}

// IsEmpty reports whether s has no elements.
func (s Set) IsEmpty() bool { return len(s.ranges) == 0 }

// Contains reports whether c is a member of s.
func (s Set) Contains(c rune) bool {
	ranges := s.ranges
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].Hi >= c })
	return i < len(ranges) && ranges[i].Lo <= c
}

// Count returns the number of code points in s.
func (s Set) Count() int {
	n := 0
	for _, r := range s.ranges {
		n += int(r.Hi-r.Lo) + 1
	}
	return n
}

// Min returns the smallest element of s, or ErrEmptySet if s is empty.
func (s Set) Min() (rune, error) {
	if s.IsEmpty() {
		return 0, ErrEmptySet
	}
	return s.ranges[0].Lo, nil
}

// Max returns the largest element of s, or ErrEmptySet if s is empty.
func (s Set) Max() (rune, error) {
	if s.IsEmpty() {
		return 0, ErrEmptySet
	}
	return s.ranges[len(s.ranges)-1].Hi, nil
}

// ForAll calls f for every range in s, in increasing order, stopping
// early if f returns false.
func (s Set) ForAll(f func(lo, hi rune) bool) {
	for _, r := range s.ranges {
		if !f(r.Lo, r.Hi) {
			return
		}
	}
}

// Ranges returns the set's normalized range sequence as (lo, hi) pairs,
// sorted and non-overlapping. The caller must not mutate the result's
// backing storage by relying on the returned slice being part of s.
func (s Set) Ranges() [][2]rune {
	out := make([][2]rune, len(s.ranges))
	for i, r := range s.ranges {
		out[i] = [2]rune{r.Lo, r.Hi}
	}
	return out
}

// OfRanges builds a set from a list of (lo, hi) pairs, normalizing
// overlaps and adjacency.
func OfRanges(pairs [][2]rune) Set {
	s := Empty()
	for _, p := range pairs {
		s = s.Add(p[0], p[1])
	}
	return s
}

// Add returns s with [lo, hi] merged in.
func (s Set) Add(lo, hi rune) Set {
	if hi < lo {
		return s
	}
	return Set{ranges: mergeInsert(s.ranges, rng{lo, hi})}
}

func mergeInsert(ranges []rng, add rng) []rng {
	out := make([]rng, 0, len(ranges)+1)
	i := 0
	for i < len(ranges) && ranges[i].Hi < add.Lo-1 {
		out = append(out, ranges[i])
		i++
	}
	merged := add
	for i < len(ranges) && ranges[i].Lo <= merged.Hi+1 {
		if ranges[i].Lo < merged.Lo {
			merged.Lo = ranges[i].Lo
		}
		if ranges[i].Hi > merged.Hi {
			merged.Hi = ranges[i].Hi
		}
		i++
	}
	out = append(out, merged)
	out = append(out, ranges[i:]...)
	return out
}

// Remove returns s with [lo, hi] removed.
func (s Set) Remove(lo, hi rune) Set {
	if hi < lo || s.IsEmpty() {
		return s
	}
	var out []rng
	for _, r := range s.ranges {
		if r.Hi < lo || r.Lo > hi {
			out = append(out, r)
			continue
		}
		if r.Lo < lo {
			out = append(out, rng{r.Lo, lo - 1})
		}
		if r.Hi > hi {
			out = append(out, rng{hi + 1, r.Hi})
		}
	}
	return Set{ranges: out}
}

// Union returns the union of s and t, in O(|s|+|t|) via a two-cursor
// merge over the sorted range sequences.
func Union(s, t Set) Set {
	merged := make([]rng, 0, len(s.ranges)+len(t.ranges))
	i, j := 0, 0
	for i < len(s.ranges) || j < len(t.ranges) {
		var next rng
		switch {
		case i >= len(s.ranges):
			next = t.ranges[j]
			j++
		case j >= len(t.ranges):
			next = s.ranges[i]
			i++
		case s.ranges[i].Lo <= t.ranges[j].Lo:
			next = s.ranges[i]
			i++
		default:
			next = t.ranges[j]
			j++
		}
		merged = mergeInsert(merged, next)
	}
	return Set{ranges: merged}
}

// Intersect returns the intersection of s and t via a two-cursor merge.
func Intersect(s, t Set) Set {
	var out []rng
	i, j := 0, 0
	for i < len(s.ranges) && j < len(t.ranges) {
		a, b := s.ranges[i], t.ranges[j]
		lo := a.Lo
		if b.Lo > lo {
			lo = b.Lo
		}
		hi := a.Hi
		if b.Hi < hi {
			hi = b.Hi
		}
		if lo <= hi {
			out = append(out, rng{lo, hi})
		}
		if a.Hi < b.Hi {
			i++
		} else {
			j++
		}
	}
	return Set{ranges: out}
}

// Difference returns the elements of s that are not in t.
func Difference(s, t Set) Set {
	out := s
	for _, r := range t.ranges {
		out = out.Remove(r.Lo, r.Hi)
	}
	return out
}

// Complement returns universe \ s.
func Complement(s, universe Set) Set {
	return Difference(universe, s)
}

// Equal reports structural equality of the normalized range sequences.
func Equal(s, t Set) bool {
	if len(s.ranges) != len(t.ranges) {
		return false
	}
	for i := range s.ranges {
		if s.ranges[i] != t.ranges[i] {
			return false
		}
	}
	return true
}

// Compare imposes a total order over sets, used by rx's canonical
// ordering of Or/And operands. Shorter sets sort first; ties break by
// the first differing range bound.
func Compare(s, t Set) int {
	if d := len(s.ranges) - len(t.ranges); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}
	for i := range s.ranges {
		a, b := s.ranges[i], t.ranges[i]
		if a.Lo != b.Lo {
			if a.Lo < b.Lo {
				return -1
			}
			return 1
		}
		if a.Hi != b.Hi {
			if a.Hi < b.Hi {
				return -1
			}
			return 1
		}
	}
	return 0
}

// String renders s as a bracketed range list, e.g. "[0-9A-Fa-f]".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range s.ranges {
		if r.Lo == r.Hi {
			b.WriteRune(r.Lo)
		} else {
			b.WriteRune(r.Lo)
			b.WriteByte('-')
			b.WriteRune(r.Hi)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Key returns a canonical, comparable string encoding of s suitable for
// use as a map key (used by rx/vector/dfa to dedupe derivative classes
// and DFA states without relying on Set's internal representation).
func (s Set) Key() string {
	var b strings.Builder
	for _, r := range s.ranges {
		b.WriteRune(r.Lo)
		b.WriteByte(0)
		b.WriteRune(r.Hi)
		b.WriteByte(1)
	}
	return b.String()
}
