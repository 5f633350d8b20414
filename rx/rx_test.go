package rx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lexgen/charset"
	"lexgen/rx"
)

var ascii = charset.OfRange(0x00, 0xFF)

func digits() rx.Regex {
	return rx.CharSet{Set: charset.OfRange('0', '9')}
}

func TestNullable(t *testing.T) {
	require.True(t, rx.Nullable(rx.Eps{}))
	require.False(t, rx.Nullable(rx.Void{}))
	require.False(t, rx.Nullable(rx.Any{}))
	require.False(t, rx.Nullable(digits()))
	require.True(t, rx.Nullable(rx.Star{R: digits()}))
	require.True(t, rx.Nullable(rx.Not{R: digits()}))
	require.False(t, rx.Nullable(rx.Not{R: rx.Star{R: digits()}}))
	require.True(t, rx.Nullable(rx.Or{A: digits(), B: rx.Eps{}}))
	require.False(t, rx.Nullable(rx.Concat{A: digits(), B: rx.Eps{}}))
	require.True(t, rx.Nullable(rx.And{A: rx.Eps{}, B: rx.Star{R: digits()}}))
}

func TestCanonicalizeAnyBecomesCharSet(t *testing.T) {
	got := rx.Canonicalize(rx.Any{}, ascii)
	require.Equal(t, rx.Canonicalize(rx.CharSet{Set: ascii}, ascii), got)
}

func TestCanonicalizeCharSetSizeCollapses(t *testing.T) {
	require.Equal(t, rx.Void{}, rx.Canonicalize(rx.CharSet{Set: charset.Empty()}, ascii))
	require.Equal(t, rx.Char{C: 'a'}, rx.Canonicalize(rx.CharSet{Set: charset.Singleton('a')}, ascii))
}

func TestCanonicalizeIdentities(t *testing.T) {
	a := digits()
	require.True(t, rx.Equal(a, rx.Canonicalize(rx.Concat{A: rx.Eps{}, B: a}, ascii)))
	require.True(t, rx.Equal(a, rx.Canonicalize(rx.Concat{A: a, B: rx.Eps{}}, ascii)))
	require.Equal(t, rx.Void{}, rx.Canonicalize(rx.Concat{A: a, B: rx.Void{}}, ascii))
	require.Equal(t, rx.Void{}, rx.Canonicalize(rx.Concat{A: rx.Void{}, B: a}, ascii))
	require.True(t, rx.Equal(a, rx.Canonicalize(rx.Or{A: a, B: rx.Void{}}, ascii)))
	require.True(t, rx.Equal(rx.Canonicalize(rx.CharSet{Set: ascii}, ascii), rx.Canonicalize(rx.Or{A: a, B: rx.Any{}}, ascii)))
	require.Equal(t, rx.Void{}, rx.Canonicalize(rx.And{A: a, B: rx.Void{}}, ascii))
	require.True(t, rx.Equal(a, rx.Canonicalize(rx.And{A: a, B: rx.Any{}}, ascii)))
}

func TestCanonicalizeStarIdempotent(t *testing.T) {
	star := rx.Canonicalize(rx.Star{R: digits()}, ascii)
	require.True(t, rx.Equal(star, rx.Canonicalize(rx.Star{R: star}, ascii)))
	require.Equal(t, rx.Eps{}, rx.Canonicalize(rx.Star{R: rx.Eps{}}, ascii))
	require.Equal(t, rx.Eps{}, rx.Canonicalize(rx.Star{R: rx.Void{}}, ascii))
}

func TestCanonicalizeNegation(t *testing.T) {
	a := digits()
	require.True(t, rx.Equal(rx.Canonicalize(a, ascii), rx.Canonicalize(rx.Not{R: rx.Not{R: a}}, ascii)))
	require.True(t, rx.Equal(rx.Canonicalize(rx.CharSet{Set: ascii}, ascii), rx.Canonicalize(rx.Not{R: rx.Void{}}, ascii)))
	require.Equal(t, rx.Void{}, rx.Canonicalize(rx.Not{R: rx.CharSet{Set: ascii}}, ascii))
}

func TestCanonicalizeOrCommutative(t *testing.T) {
	a, b := rx.Char{C: 'x'}, rx.Char{C: 'y'}
	lhs := rx.Canonicalize(rx.Or{A: a, B: b}, ascii)
	rhs := rx.Canonicalize(rx.Or{A: b, B: a}, ascii)
	require.True(t, rx.Equal(lhs, rhs))
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	r := rx.Or{A: rx.Concat{A: digits(), B: rx.Star{R: digits()}}, B: rx.Char{C: 'x'}}
	once := rx.Canonicalize(r, ascii)
	twice := rx.Canonicalize(once, ascii)
	require.True(t, rx.Equal(once, twice))
}

func TestCanonicalizeCharSetFolding(t *testing.T) {
	lower := rx.CharSet{Set: charset.OfRange('a', 'm')}
	upper := rx.CharSet{Set: charset.OfRange('g', 'z')}
	got := rx.Canonicalize(rx.Or{A: lower, B: upper}, ascii)
	want := rx.Canonicalize(rx.CharSet{Set: charset.OfRange('a', 'z')}, ascii)
	require.True(t, rx.Equal(want, got))
}

func TestDerivativeOfLiteral(t *testing.T) {
	lit := rx.Concat{A: rx.Char{C: 'a'}, B: rx.Char{C: 'b'}}
	d := rx.Canonicalize(rx.Derivative(lit, 'a'), ascii)
	require.True(t, rx.Equal(rx.Char{C: 'b'}, d))
	dead := rx.Canonicalize(rx.Derivative(lit, 'z'), ascii)
	require.Equal(t, rx.Void{}, dead)
}

func TestDerivativeOfStarLoopsBackToItself(t *testing.T) {
	d := digits()
	plus := rx.Canonicalize(rx.Plus(d), ascii)
	dDeriv := rx.Canonicalize(rx.Derivative(plus, '5'), ascii)
	star := rx.Canonicalize(rx.Star{R: d}, ascii)
	require.True(t, rx.Equal(star, dDeriv))
}

func TestDerivativeClassesAgreeWithinClass(t *testing.T) {
	r := rx.Canonicalize(rx.Concat{A: digits(), B: rx.Star{R: digits()}}, ascii)
	classes := rx.DerivativeClasses(r, ascii)
	for _, class := range classes {
		var reps []rune
		class.ForAll(func(lo, hi rune) bool {
			reps = append(reps, lo)
			if hi != lo {
				reps = append(reps, hi)
			}
			return true
		})
		var canon rx.Regex
		for i, a := range reps {
			d := rx.Canonicalize(rx.Derivative(r, a), ascii)
			if i == 0 {
				canon = d
				continue
			}
			require.Truef(t, rx.Equal(canon, d), "class %v: derivative mismatch at rune %q", class, a)
		}
	}
}

func TestDerivativeClassesPartitionUniverse(t *testing.T) {
	r := rx.Canonicalize(rx.Or{A: digits(), B: rx.Char{C: 'x'}}, ascii)
	classes := rx.DerivativeClasses(r, ascii)
	union := charset.Empty()
	for _, c := range classes {
		require.False(t, c.IsEmpty())
		union = charset.Union(union, c)
	}
	require.True(t, charset.Equal(union, ascii))
}
