package edn

import "math/big"

// ValueEqual implements spec.md §4.12's structural equality: identical
// variants compare by content, recursively for collections; it is agnostic
// to source spans and metadata (spec.md §3.2 invariant 7). NaN is never
// equal to itself (IEEE semantics, spec.md §8 property 3). BigInt and Int
// compare by mathematical value via decimal-digit comparison.
func ValueEqual(a, b *Value) bool {
	ak, bk := a.Kind(), b.Kind()

	if numericKind(ak) && numericKind(bk) {
		return numericEqual(a, b)
	}
	if ak != bk {
		return false
	}

	switch ak {
	case KindNil:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindCharacter:
		return a.charVal == b.charVal
	case KindString:
		as, aerr := a.StringGet()
		bs, berr := b.StringGet()
		return aerr == nil && berr == nil && as == bs
	case KindSymbol, KindKeyword:
		return a.namespace == b.namespace && a.name == b.name
	case KindList, KindVector:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !ValueEqual(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindSet:
		return setEqual(a.items, b.items)
	case KindMap:
		return mapEqual(a.pairs, b.pairs)
	case KindTagged:
		return a.tag == b.tag && ValueEqual(a.inner, b.inner)
	case KindExternal:
		return externalEqual(a, b)
	default:
		return false
	}
}

func numericKind(k Kind) bool {
	switch k {
	case KindInt, KindBigInt, KindFloat, KindBigDec, KindRatio, KindBigRatio:
		return true
	default:
		return false
	}
}

// numericEqual compares within the numeric family by exact kind except for
// Int/BigInt, which compare by mathematical value (spec.md §4.12): a
// mixed Int/Float or Int/Ratio comparison is always false because ratios
// with denominator 1 are promoted to Int at construction time (spec.md
// §3.2 invariant 4), so a true Int/Ratio(.../1) collision never arises.
func numericEqual(a, b *Value) bool {
	ak, bk := a.Kind(), b.Kind()
	if ak == KindFloat || bk == KindFloat {
		if ak != KindFloat || bk != KindFloat {
			return false
		}
		return a.floatVal == b.floatVal // NaN != NaN falls out of IEEE ==
	}
	if ak == KindBigDec || bk == KindBigDec {
		return ak == KindBigDec && bk == KindBigDec && a.bigNeg == b.bigNeg && a.bigDigits == b.bigDigits
	}
	if ak == KindRatio || bk == KindRatio || ak == KindBigRatio || bk == KindBigRatio {
		return ratioEqual(a, b)
	}
	// Only Int / BigInt remain: compare by mathematical value.
	return integerEqual(a, b)
}

func integerEqual(a, b *Value) bool {
	av := bigIntOf(a)
	bv := bigIntOf(b)
	return av.Cmp(bv) == 0
}

func bigIntOf(v *Value) *big.Int {
	n := new(big.Int)
	if v.Kind() == KindInt {
		n.SetInt64(v.intVal)
		return n
	}
	n.SetString(v.bigDigits, int(v.bigRadix))
	if v.bigNeg {
		n.Neg(n)
	}
	return n
}

func ratioEqual(a, b *Value) bool {
	an, ad := ratioOf(a)
	bn, bd := ratioOf(b)
	if an == nil || bn == nil {
		return false
	}
	// a/b == c/d  <=>  a*d == c*b, cross-multiplied with big.Int to avoid
	// overflow.
	l := new(big.Int).Mul(an, bd)
	r := new(big.Int).Mul(bn, ad)
	return l.Cmp(r) == 0
}

func ratioOf(v *Value) (num, den *big.Int) {
	switch v.Kind() {
	case KindRatio:
		return big.NewInt(v.ratioNum), big.NewInt(v.ratioDen)
	case KindBigRatio:
		n := new(big.Int)
		n.SetString(v.bigRatioNum, 10)
		d := new(big.Int)
		d.SetString(v.bigRatioDen, 10)
		if v.bigRatioNeg {
			n.Neg(n)
		}
		return n, d
	default:
		return nil, nil
	}
}

// setEqual compares two sets as unordered multisets of equal cardinality
// (spec.md §4.12); since sets reject duplicates at build time (spec.md §3.2
// invariant 3), this reduces to "every element of a has a distinct match in
// b".
func setEqual(a, b []*Value) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, av := range a {
		found := false
		for j, bv := range b {
			if !used[j] && ValueEqual(av, bv) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func mapEqual(a, b []MapEntry) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ae := range a {
		found := false
		for j, be := range b {
			if !used[j] && ValueEqual(ae.Key, be.Key) && ValueEqual(ae.Value, be.Value) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func externalEqual(a, b *Value) bool {
	if a.externalTypeID != b.externalTypeID {
		return false
	}
	if eq := lookupExternalEqual(a.externalTypeID); eq != nil {
		return eq(a.externalPayload, b.externalPayload)
	}
	// No registered equal-fn: pointer identity (spec.md §4.9).
	return a.externalPayload == b.externalPayload
}
